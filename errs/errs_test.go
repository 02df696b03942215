package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApiErrError(t *testing.T) {
	err := NewMissingRequiredFieldError("email", "")

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "email", err.Field)
	assert.Equal(t, "missing required field: Missing required field: email", err.Error())
	assert.Equal(t, "missing required field", err.Message())
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestApiErrMessageOverride(t *testing.T) {
	err := NewMissingRequiredFieldError("name", "Name, email, and message are required")

	assert.Equal(t, "Name, email, and message are required", err.Message())
	assert.ErrorIs(t, err, ErrMissingRequiredField)
	assert.Equal(t, "name", err.Field)
}

func TestApiErrGetFullError(t *testing.T) {
	inner := NewInternalErrorWithCause("inner", errors.New("boom"))
	outer := NewInternalErrorWithCause("outer", inner)

	assert.Equal(t, "outer -> inner -> boom", outer.GetFullError())
}

func TestApiErrAs(t *testing.T) {
	var err error = NewInvalidFieldError("noteID", "must be a UUID")

	var apiErr *ApiErr
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("note")

	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "note not found", err.Message())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewDatabaseError(t *testing.T) {
	t.Run("duplicate key", func(t *testing.T) {
		err := NewDatabaseError("create", "user", errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key"`))
		assert.Equal(t, http.StatusConflict, err.StatusCode)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("record not found", func(t *testing.T) {
		err := NewDatabaseError("find", "note", errors.New("record not found"))
		assert.Equal(t, http.StatusNotFound, err.StatusCode)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("connection", func(t *testing.T) {
		err := NewDatabaseError("find", "projects", errors.New("failed to connect: connection refused"))
		assert.Equal(t, http.StatusServiceUnavailable, err.StatusCode)
		assert.ErrorIs(t, err, ErrDatabaseConnection)
	})

	t.Run("generic", func(t *testing.T) {
		cause := errors.New("syntax error at or near")
		err := NewDatabaseError("find", "videos", cause)
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
		assert.ErrorIs(t, err, ErrDatabaseQuery)
		assert.Equal(t, "Failed to find videos", err.Details)
		assert.Equal(t, cause, err.Cause)
	})
}

func TestTokenErrors(t *testing.T) {
	assert.True(t, IsMissingTokenError(NewMissingTokenError()))
	assert.True(t, IsExpiredTokenError(NewExpiredTokenError()))
	assert.True(t, IsInvalidTokenError(NewInvalidTokenError()))
}

func TestInvalidCredentialsError(t *testing.T) {
	err := NewInvalidCredentialsError()

	assert.Equal(t, http.StatusUnauthorized, err.StatusCode)
	assert.Equal(t, "Invalid credentials", err.Message())
	assert.True(t, IsInvalidCredentialsError(err))
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
