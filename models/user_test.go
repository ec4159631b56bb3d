package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr string
	}{
		{"valid", CreateUserRequest{Username: "  gopher_1 ", Password: "longenough"}, ""},
		{"short username", CreateUserRequest{Username: "ab", Password: "longenough"}, "between 3 and 32"},
		{"bad chars", CreateUserRequest{Username: "go-pher", Password: "longenough"}, "letters, numbers"},
		{"short password", CreateUserRequest{Username: "gopher", Password: "short"}, "at least 8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				assert.Equal(t, "gopher_1", tt.req.Username)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	assert.Error(t, (&LoginRequest{Username: " ", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Username: "gopher"}).Validate())
	assert.NoError(t, (&LoginRequest{Username: "gopher", Password: "x"}).Validate())
}
