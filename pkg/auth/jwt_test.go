package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name           string
		profileID      string
		expirationTime time.Time
		expectError    bool
	}{
		{
			name:           "Valid Token",
			profileID:      "8f8a7c0e-4c1b-4d6f-9d87-2f0c1f7d8e11",
			expirationTime: time.Now().Add(time.Hour),
		},
		{
			name:           "Expired Token still signs",
			profileID:      "8f8a7c0e-4c1b-4d6f-9d87-2f0c1f7d8e11",
			expirationTime: time.Now().Add(-time.Hour),
		},
		{
			name:           "Empty profile",
			profileID:      "",
			expirationTime: time.Now().Add(time.Hour),
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.profileID, tt.expirationTime)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expectError bool
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("p-1", time.Now().Add(time.Hour))
				return token
			},
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("p-1", time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Foreign secret",
			setup: func() string {
				token, _ := NewJWTService("other").GenerateJWT("p-1", time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Missing profile claim",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    issuer,
				})
				signedToken, _ := token.SignedString([]byte(testSecret))
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString := tt.tokenString
			if tt.setup != nil {
				tokenString = tt.setup()
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "p-1", claims.ProfileID)
			}
		})
	}
}

func upstreamToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("upstream-only"))
	assert.NoError(t, err)
	return token
}

func TestUserIDFromToken(t *testing.T) {
	tests := []struct {
		name        string
		token       func(t *testing.T) string
		expected    string
		expectError bool
	}{
		{
			name:     "Numeric id claim",
			token:    func(t *testing.T) string { return upstreamToken(t, jwt.MapClaims{"id": float64(4021)}) },
			expected: "4021",
		},
		{
			name:     "String user_id claim",
			token:    func(t *testing.T) string { return upstreamToken(t, jwt.MapClaims{"user_id": "u-77"}) },
			expected: "u-77",
		},
		{
			name:     "Subject fallback with bearer prefix",
			token:    func(t *testing.T) string { return "Bearer " + upstreamToken(t, jwt.MapClaims{"sub": "99"}) },
			expected: "99",
		},
		{
			name:        "No id in payload",
			token:       func(t *testing.T) string { return upstreamToken(t, jwt.MapClaims{"role": "user"}) },
			expectError: true,
		},
		{
			name:        "Opaque token",
			token:       func(*testing.T) string { return "not-a-jwt" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := UserIDFromToken(tt.token(t))
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}
