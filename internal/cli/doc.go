// Package cli holds the pieces shared by tmoapi's cobra commands.
//
// CommandFlags registers and carries the persistent flags (profile,
// credentials, output format). Executor runs a resource command end to end:
// it resolves settings, normalizes the date window for dated resources,
// fetches through the transport client behind a progress spinner and
// prints the rendered result. ListWriter prints the small aligned listings
// used by the profile commands.
//
// Spinners and colors only go to stderr, so stdout carries nothing but the
// rendered data and can be piped safely.
package cli
