package util

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := "test-secret"
	companyID := 7

	token, err := GenerateJWT(SessionClaims{UserID: 42, Role: "Admin", CompanyID: &companyID}, secret)
	require.NoError(t, err)

	session, err := ParseJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, 42, session.UserID)
	assert.Equal(t, "Admin", session.Role)
	require.NotNil(t, session.CompanyID)
	assert.Equal(t, 7, *session.CompanyID)
}

func TestJWTWithoutCompany(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateJWT(SessionClaims{UserID: 1, Role: "Donor"}, secret)
	require.NoError(t, err)

	session, err := ParseJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, 1, session.UserID)
	assert.Nil(t, session.CompanyID)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(SessionClaims{UserID: 1}, "secret-a")
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret-b")
	assert.Error(t, err)
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"lowercase scheme", "bearer abc", "abc"},
		{"missing header", "", ""},
		{"wrong scheme", "Basic abc", ""},
		{"no token", "Bearer", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := http.NewRequest("GET", "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, ExtractToken(r))
		})
	}
}
