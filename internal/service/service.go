// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// input from handlers, applies the domain rules (password hashing, caching,
// follow-up jobs) and calls repositories to read and persist data.
package service
