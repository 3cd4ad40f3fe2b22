package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestHTTPError_IsAndAs(t *testing.T) {
	err := fmt.Errorf("loading user: %w", NewUserNotFoundError(7))

	assert.True(t, errors.Is(err, &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, CodeUserNotFound, httpErr.Code)
	assert.Equal(t, "User 7 not found", httpErr.Message)
}

func TestNewInvalidQueryParameterError(t *testing.T) {
	err := NewInvalidQueryParameterError("limit", "ten", "must be a positive integer")

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeInvalidQueryParameter, err.Code)
	require.Len(t, err.Errors, 1)
	assert.Equal(t, "limit", err.Errors[0].Field)
}

func TestNewInvalidIdentifierError(t *testing.T) {
	err := NewInvalidIdentifierError("abc")

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeInvalidIdentifier, err.Code)
	assert.Contains(t, err.Message, `"abc"`)
}

func TestWithMessage_DoesNotMutate(t *testing.T) {
	base := NewBadRequestError("original", false, nil, nil, nil)
	copied := base.WithMessage("changed")

	assert.Equal(t, "original", base.Message)
	assert.Equal(t, "changed", copied.Message)
	assert.Equal(t, base.Code, copied.Code)
}
