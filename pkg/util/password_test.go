package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "Valid password",
			password: "secret1",
			wantErr:  false,
		},
		{
			name:     "Korean characters",
			password: "비밀번호123",
			wantErr:  false,
		},
		{
			name:     "Exactly 72 bytes",
			password: strings.Repeat("a", MaxPasswordBytes),
			wantErr:  false,
		},
		{
			name:     "Longer than bcrypt limit",
			password: strings.Repeat("a", MaxPasswordBytes+1),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, hash)
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, tt.password, hash)
				assert.True(t, strings.HasPrefix(hash, "$2a$"))
			}
		})
	}
}

func TestVerifyPassword(t *testing.T) {
	password := "secret1"
	hash, err := HashPassword(password)
	assert.NoError(t, err)

	longest := strings.Repeat("a", MaxPasswordBytes)
	longestHash, err := HashPassword(longest)
	assert.NoError(t, err)

	tests := []struct {
		name           string
		hashedPassword string
		password       string
		want           bool
	}{
		{
			name:           "Correct password",
			hashedPassword: hash,
			password:       password,
			want:           true,
		},
		{
			name:           "Case differs",
			hashedPassword: hash,
			password:       "Secret1",
			want:           false,
		},
		{
			name:           "Trailing space",
			hashedPassword: hash,
			password:       "secret1 ",
			want:           false,
		},
		{
			name:           "Full 72 bytes",
			hashedPassword: longestHash,
			password:       longest,
			want:           true,
		},
		{
			name:           "Suffix past bcrypt limit",
			hashedPassword: longestHash,
			password:       longest + "EXTRA",
			want:           false,
		},
		{
			name:           "Invalid hash",
			hashedPassword: "invalid-hash",
			password:       password,
			want:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyPassword(tt.hashedPassword, tt.password))
		})
	}
}
