// Package client is the HTTP transport to the TMO API.
//
// Every call is a GET carrying the Token and Database headers from the
// resolved settings. Responses arrive wrapped in an envelope; the client
// unwraps it and hands the Data payload back as a render.Value with key
// order preserved.
//
// Failures map onto the api error kinds: 401 and 403 become authentication
// errors, other HTTP errors and failed envelopes become API errors, and
// connection problems or timeouts become network errors. Requests are not
// retried.
package client
