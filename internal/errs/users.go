package errs

import "fmt"

// Error codes for the users resource.
const (
	CodeInvalidQueryParameter = "INVALID_QUERY_PARAMETER"
	CodeInvalidIdentifier     = "INVALID_IDENTIFIER"
	CodeUserNotFound          = "USER_NOT_FOUND"
)

// NewInvalidQueryParameterError rejects a query parameter that is not a
// positive integer within range.
func NewInvalidQueryParameterError(name, value, reason string) *HTTPError {
	code := CodeInvalidQueryParameter
	return NewBadRequestError(
		fmt.Sprintf("Invalid query parameter %q: %s", name, reason),
		true,
		&code,
		[]FieldError{{Field: name, Error: fmt.Sprintf("%q %s", value, reason)}},
		nil,
	)
}

// NewInvalidIdentifierError rejects a user id that is not a positive integer.
func NewInvalidIdentifierError(value string) *HTTPError {
	code := CodeInvalidIdentifier
	return NewBadRequestError(
		fmt.Sprintf("Invalid user identifier %q", value),
		true,
		&code,
		[]FieldError{{Field: "id", Error: "must be a positive integer"}},
		nil,
	)
}

// NewUserNotFoundError reports that no user has the given id.
func NewUserNotFoundError(id int64) *HTTPError {
	code := CodeUserNotFound
	return NewNotFoundError(fmt.Sprintf("User %d not found", id), true, &code)
}
