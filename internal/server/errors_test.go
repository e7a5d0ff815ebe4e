package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/career-compass/internal/engine"
	"github.com/jonathan/career-compass/internal/profile"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"email exists", &ErrEmailAlreadyExists{Email: "a@b.c"}, http.StatusConflict},
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"password mismatch", &ErrPasswordMismatch{}, http.StatusUnauthorized},
		{"user not found", &ErrUserNotFound{UserID: uuid.New()}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "password", Message: "too long"}, http.StatusBadRequest},
		{"malformed profile", &profile.MalformedProfileError{}, http.StatusUnprocessableEntity},
		{"empty catalog", engine.ErrEmptyCatalog, http.StatusServiceUnavailable},
		{"catalog not loaded", ErrCatalogUnavailable, http.StatusServiceUnavailable},
		{"wrapped", fmt.Errorf("register: %w", &ErrEmailAlreadyExists{}), http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	assert.Equal(t, "email already registered: a@b.c", (&ErrEmailAlreadyExists{Email: "a@b.c"}).Error())
	assert.Equal(t, "user not found: 00000000-0000-0000-0000-000000000001", (&ErrUserNotFound{UserID: id}).Error())
	assert.Equal(t, "validation error: password - too long", (&ErrValidation{Field: "password", Message: "too long"}).Error())
}
