package model

import "time"

// User is a row of the users table.
//
// PasswordHash is never serialized to clients.
type User struct {
	ID           int64     `json:"id" db:"id"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateUserParams is an already validated creation payload.
// Password is the plain-text password; the service hashes it.
type CreateUserParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// NewUser is what the store persists on create.
type NewUser struct {
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}

// PatchUserParams is a partial update. Nil fields are left untouched.
type PatchUserParams struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

// UserPatch is what the store applies on patch; Password has been hashed.
type UserPatch struct {
	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash *string
}
