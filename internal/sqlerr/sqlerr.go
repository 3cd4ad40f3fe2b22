// Package sqlerr translates database driver errors.
//
// It turns PostgreSQL SQLSTATE codes reported by pgx into *errs.HTTPError
// values with user-friendly messages, e.g. a unique violation on
// users.email becomes "A User with this Email already exists" (400).
package sqlerr
