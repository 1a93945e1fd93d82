package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationErrorCarriesFieldMessages(t *testing.T) {
	err := RegisterRequest{
		Email:    "not-an-email",
		Username: "ab",
		Password: "weak",
	}.Validate()
	require.Error(t, err)

	appErr := NewValidationError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, "Validation failed", appErr.Message)

	fields, ok := appErr.Data.([]ValidationError)
	require.True(t, ok)

	byField := map[string]string{}
	for _, f := range fields {
		byField[f.Field] = f.Message
	}
	assert.Equal(t, "Invalid email format", byField["Email"])
	assert.Equal(t, "Username must be at least 3 characters", byField["Username"])
	assert.Equal(t, "Password must contain at least 8 characters with uppercase, lowercase and number", byField["Password"])
}

func TestValidStrongPassword(t *testing.T) {
	err := RegisterRequest{
		Email:    "dev@example.com",
		Username: "developer",
		Password: "Sup3rSecret",
	}.Validate()
	assert.NoError(t, err)
}
