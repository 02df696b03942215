package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rpupo63/ai-portfolio-site/errs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestResponder_WriteErrorHidesUnexpectedErrors(t *testing.T) {
	rec := httptest.NewRecorder()

	NewResponder(zerolog.Nop()).WriteError(rec, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error","status":"error"}`, rec.Body.String())
}

func TestResponder_WriteErrorApiErr(t *testing.T) {
	rec := httptest.NewRecorder()

	NewResponder(zerolog.Nop()).WriteError(rec, errs.NewMissingRequiredFieldError("email", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"missing required field","status":"error","field":"email","details":"Missing required field: email"}`, rec.Body.String())
}

func TestResponder_WriteErrorMessageOverride(t *testing.T) {
	rec := httptest.NewRecorder()

	NewResponder(zerolog.Nop()).WriteError(rec, errs.NewInvalidCredentialsError())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials","status":"error"}`, rec.Body.String())
}

func TestResponder_WriteErrorNeverSendsCause(t *testing.T) {
	rec := httptest.NewRecorder()

	NewResponder(zerolog.Nop()).WriteError(rec, errs.NewInternalErrorWithCause("Failed to fetch stats", errors.New("secret detail")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch stats","status":"error"}`, rec.Body.String())
}

func TestResponder_WriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	NewResponder(zerolog.Nop()).WriteJSON(rec, successResponse{Success: true})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}
