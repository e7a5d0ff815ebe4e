//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request RegisterRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			request: RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "password123"},
		},
		{
			name:    "missing name",
			request: RegisterRequest{Email: "ada@example.com", Password: "password123"},
			wantErr: true,
		},
		{
			name:    "invalid email",
			request: RegisterRequest{Name: "Ada", Email: "not-an-email", Password: "password123"},
			wantErr: true,
		},
		{
			name:    "short password",
			request: RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "short"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "a@b.co", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "a@b.co"}).Validate())
	assert.Error(t, (&LoginRequest{Password: "x"}).Validate())
}

func TestUpdatePasswordRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdatePasswordRequest{CurrentPassword: "old-password", NewPassword: "new-password"}).Validate())
	assert.Error(t, (&UpdatePasswordRequest{CurrentPassword: "same-password", NewPassword: "same-password"}).Validate())
	assert.Error(t, (&UpdatePasswordRequest{CurrentPassword: "old-password", NewPassword: "short"}).Validate())
}

func TestAssessment_Validate(t *testing.T) {
	assert.NoError(t, (&Assessment{ExplorationLevel: 0}).Validate())
	assert.NoError(t, (&Assessment{ExplorationLevel: 5}).Validate())
	assert.Error(t, (&Assessment{ExplorationLevel: 6}).Validate())
	assert.Error(t, (&Assessment{ExplorationLevel: -1}).Validate())
}

func TestUser_JSONOmitsSecrets(t *testing.T) {
	user := User{
		ID:          uuid.New(),
		Name:        "Ada",
		Email:       "ada@example.com",
		PasswordSet: true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	data, err := json.Marshal(AuthResponse{User: &user, Token: "tok"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "password_hash")
	assert.Contains(t, string(data), `"token":"tok"`)
}
