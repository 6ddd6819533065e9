package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/valueplus/internal/apperr"
)

func TestError_IsByCode(t *testing.T) {
	err := fmt.Errorf("adding recommendation: %w", apperr.Validation("title", "title is required"))

	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.NotErrorIs(t, err, apperr.ErrAuth)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
	assert.Equal(t, "adding recommendation: title is required", err.Error())
}

func TestError_UnwrapsCause(t *testing.T) {
	cause := errors.New("provider offline")
	err := apperr.Auth("login failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, apperr.ErrAuth)
}

func TestCode_HTTPStatus(t *testing.T) {
	type testCase struct {
		code apperr.Code
		want int
	}

	tests := []testCase{
		{code: apperr.CodeValidation, want: http.StatusBadRequest},
		{code: apperr.CodeAuth, want: http.StatusUnauthorized},
		{code: apperr.CodeAccessDenied, want: http.StatusForbidden},
		{code: apperr.CodeNotFound, want: http.StatusNotFound},
		{code: "", want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestCodeOf_PlainError(t *testing.T) {
	assert.Equal(t, apperr.Code(""), apperr.CodeOf(errors.New("boom")))
}
