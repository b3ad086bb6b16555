// Package api holds the types shared by everything that talks about the TMO API:
// the response envelope and the error taxonomy.
//
// All failures surfaced by tmoapi are *Error values. The kind decides the exit
// code of the CLI; the message is printed verbatim and is expected to tell the
// user how to fix the problem:
//
//	if errors.Is(err, api.ErrValidation) {
//	    // bad input, never retried
//	}
//
// Validation errors originate in configuration and date handling; the other
// kinds are produced by the transport client.
package api
