// Package validation binds request data and validates it.
//
// Rules are declared with `validator` struct tags; failures are converted
// into field errors the client can act on.
package validation
