package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticClaims struct{ id uuid.UUID }

func (c staticClaims) GetUserID() uuid.UUID { return c.id }

// mapValidator accepts only the tokens it knows.
type mapValidator map[string]uuid.UUID

func (m mapValidator) ValidateToken(token string) (UserIDGetter, error) {
	id, ok := m[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return staticClaims{id: id}, nil
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	validator := mapValidator{"good-token": userID}

	var seen uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetUserID(r)
		require.NoError(t, err)
		seen = id
		w.WriteHeader(http.StatusNoContent)
	})
	handler := AuthMiddleware(validator)(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid bearer", header: "Bearer good-token", wantStatus: http.StatusNoContent},
		{name: "lowercase scheme", header: "bearer good-token", wantStatus: http.StatusNoContent},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good-token", wantStatus: http.StatusUnauthorized},
		{name: "no token", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "extra parts", header: "Bearer good-token extra", wantStatus: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer bad-token", wantStatus: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = uuid.Nil
			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
				assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Bearer")
				assert.Equal(t, uuid.Nil, seen)
			} else {
				assert.Equal(t, userID, seen)
			}
		})
	}
}

func TestGetUserID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetUserID(req)
	assert.ErrorIs(t, err, ErrNoUser)

	req = req.WithContext(WithUserID(req.Context(), uuid.Nil))
	_, err = GetUserID(req)
	assert.ErrorIs(t, err, ErrNoUser)
}
