// Package errs defines the error types returned to API clients.
//
// Every failure that reaches the global error handler is either an
// *HTTPError already, or gets converted into one, so clients always receive
// the same JSON shape: code, message, status, field errors and an optional
// action hint.
package errs
