package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-testing"

func TestGenerateSessionToken(t *testing.T) {
	token, err := GenerateSessionToken("01012345678", testSecret, 15*time.Minute)
	require.NoError(t, err)
	require.NotNil(t, token)

	assert.NotEmpty(t, token.AccessToken)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), token.ExpiresAt, 5*time.Second)
}

func TestValidateToken(t *testing.T) {
	token, err := GenerateSessionToken("01012345678", testSecret, 15*time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{
			name:    "Valid token",
			token:   token.AccessToken,
			secret:  testSecret,
			wantErr: nil,
		},
		{
			name:    "Invalid secret",
			token:   token.AccessToken,
			secret:  "wrong-secret",
			wantErr: ErrInvalidToken,
		},
		{
			name:    "Invalid token format",
			token:   "invalid.token.format",
			secret:  testSecret,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "Empty token",
			token:   "",
			secret:  testSecret,
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.secret)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				require.NotNil(t, claims)
				assert.Equal(t, "01012345678", claims.Phone)
				assert.Equal(t, "01012345678", claims.Subject)
				assert.NotEmpty(t, claims.ID)
			}
		})
	}
}

func TestExpiredToken(t *testing.T) {
	token, err := GenerateSessionToken("01012345678", testSecret, -time.Minute)
	require.NoError(t, err)

	claims, err := ValidateToken(token.AccessToken, testSecret)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, claims)
}

func TestSessionTokensAreDistinct(t *testing.T) {
	first, err := GenerateSessionToken("01012345678", testSecret, time.Hour)
	require.NoError(t, err)
	second, err := GenerateSessionToken("01012345678", testSecret, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first.AccessToken, second.AccessToken)
}
