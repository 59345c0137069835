package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "24h")

	token, expiresAt, err := svc.GenerateAccessToken(1, "fred@gmail.com", user.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(24*time.Hour).Unix(), expiresAt, 5)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "fred@gmail.com", claims.Email)
	assert.Equal(t, user.RoleAdmin, claims.Role)
	assert.Equal(t, expiresAt, claims.ExpiresAt)
}

func TestGenerateAccessToken_InvalidDuration(t *testing.T) {
	svc := NewJWTService("test-secret", "one day")

	_, _, err := svc.GenerateAccessToken(1, "fred@gmail.com", user.RoleAdmin)
	assert.Error(t, err)
}

func TestParseAccessToken_Tampered(t *testing.T) {
	svc := NewJWTService("test-secret", "24h")
	token, _, err := svc.GenerateAccessToken(2, "mary@brilliantafrica.com", user.RoleUser)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.ParseAccessToken(tampered)
	assert.Error(t, err)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("secret-a", "24h").GenerateAccessToken(1, "fred@gmail.com", user.RoleAdmin)
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", "24h").ParseAccessToken(token)
	assert.Error(t, err)
}

func TestParseAccessToken_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", "-1h")
	token, _, err := svc.GenerateAccessToken(1, "fred@gmail.com", user.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestClaimsFromMap(t *testing.T) {
	tests := []struct {
		name    string
		claims  map[string]interface{}
		wantErr bool
	}{
		{
			name:   "json numbers decode as float64",
			claims: map[string]interface{}{"type": "access", "id": float64(5), "email": "a@b.cd", "role": "user"},
		},
		{
			name:    "missing type",
			claims:  map[string]interface{}{"id": float64(5), "role": "user"},
			wantErr: true,
		},
		{
			name:    "refresh token type",
			claims:  map[string]interface{}{"type": "refresh", "id": float64(5), "role": "user"},
			wantErr: true,
		},
		{
			name:    "string id",
			claims:  map[string]interface{}{"type": "access", "id": "5", "role": "user"},
			wantErr: true,
		},
		{
			name:    "missing role",
			claims:  map[string]interface{}{"type": "access", "id": float64(5)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ClaimsFromMap(tt.claims)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedClaims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), c.UserID)
			assert.Equal(t, user.RoleUser, c.Role)
		})
	}
}
