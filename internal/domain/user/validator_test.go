package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_ValidateRegister(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		userName  string
		email     string
		password  string
		wantError string
	}{
		{
			name:     "valid input",
			userName: "Jane Doe",
			email:    "jane@example.com",
			password: "testpassword123",
		},
		{
			name:      "missing name",
			userName:  "",
			email:     "jane@example.com",
			password:  "testpassword123",
			wantError: "name is required",
		},
		{
			name:      "name too short",
			userName:  "J",
			email:     "jane@example.com",
			password:  "testpassword123",
			wantError: "name must be at least 2 characters",
		},
		{
			name:      "missing email",
			userName:  "Jane",
			email:     "",
			password:  "testpassword123",
			wantError: "email is required",
		},
		{
			name:      "malformed email",
			userName:  "Jane",
			email:     "jane@@example",
			password:  "testpassword123",
			wantError: "email must be a valid address",
		},
		{
			name:      "missing password",
			userName:  "Jane",
			email:     "jane@example.com",
			password:  "",
			wantError: "password is required",
		},
		{
			name:      "short password",
			userName:  "Jane",
			email:     "jane@example.com",
			password:  "1234567",
			wantError: "password must be at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRegister(tt.userName, tt.email, tt.password)
			if tt.wantError == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantError)
			}
		})
	}
}

func TestValidator_ValidateLogin(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateLogin("jane@example.com", "whatever"))
	assert.Error(t, v.ValidateLogin("", "whatever"))
	assert.Error(t, v.ValidateLogin("jane@example.com", ""))
	assert.Error(t, v.ValidateLogin("not-an-email", "whatever"))
}
