package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	e := NewAppError(http.StatusConflict, "seat already taken", ErrTeamFull)
	assert.Equal(t, "seat already taken", e.Error())

	e = NewAppError(http.StatusConflict, "", ErrTeamFull)
	assert.Equal(t, ErrTeamFull.Error(), e.Error())

	e = NewAppError(http.StatusConflict, "", nil)
	assert.Equal(t, "unknown error", e.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	e := Conflict("already resolved", ErrAlreadyProcessed)
	assert.ErrorIs(t, e, ErrAlreadyProcessed)
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("team not found").Code)
	assert.Equal(t, http.StatusBadRequest, BadRequest("bad sdg").Code)
	assert.Equal(t, http.StatusConflict, Conflict("dup", ErrDuplicateMember).Code)
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("no token").Code)
	assert.Equal(t, http.StatusForbidden, Forbidden("not owner").Code)
	assert.Equal(t, http.StatusInternalServerError, InternalError(errors.New("db down")).Code)
}

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrInvalidTransition, http.StatusBadRequest},
		{ErrOpeningClosed, http.StatusBadRequest},
		{ErrDuplicateMember, http.StatusConflict},
		{ErrDuplicateApplication, http.StatusConflict},
		{ErrAlreadyProcessed, http.StatusConflict},
		{ErrTeamFull, http.StatusConflict},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusCode(tc.err), tc.err.Error())
	}

	// AppError keeps its own code even when wrapping a sentinel.
	assert.Equal(t, http.StatusForbidden, StatusCode(Forbidden("not the opening owner")))
}
