package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		errMsg   string
		wantErr  bool
	}{
		{
			name:     "successful hash",
			password: "secret123",
		},
		{
			name:     "unicode password",
			password: "пароль12345678",
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true,
			errMsg:   "password cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Empty(t, hash)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, PasswordCost, cost)
		})
	}
}

func TestHashPassword_Salted(t *testing.T) {
	// одинаковый пароль дает разные хеши
	hash1, err := HashPassword("secret123")
	require.NoError(t, err)
	hash2, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
}

func TestVerifyPassword(t *testing.T) {
	validHash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		wantErr   error
		name      string
		hash      string
		password  string
		wantMatch bool
	}{
		{
			name:      "matching password",
			hash:      string(validHash),
			password:  "secret123",
			wantMatch: true,
		},
		{
			name:     "wrong password",
			hash:     string(validHash),
			password: "wrong",
		},
		{
			name:     "empty password",
			hash:     string(validHash),
			password: "",
		},
		{
			name:     "empty hash",
			hash:     "",
			password: "secret123",
			wantErr:  ErrMalformedHash,
		},
		{
			name:     "plaintext stored instead of hash",
			hash:     "secret123",
			password: "secret123",
			wantErr:  ErrMalformedHash,
		},
		{
			name:     "truncated hash",
			hash:     string(validHash[:20]),
			password: "secret123",
			wantErr:  ErrMalformedHash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := VerifyPassword(tt.hash, tt.password)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, match)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMatch, match)
		})
	}
}

func TestHashAndVerify_Integration(t *testing.T) {
	passwords := []string{
		"secret123",
		"another_password_12345",
		"P@ssw0rd!@#$",
	}

	for _, password := range passwords {
		t.Run(password, func(t *testing.T) {
			hash, err := HashPassword(password)
			require.NoError(t, err)

			ok, err := VerifyPassword(hash, password)
			require.NoError(t, err)
			assert.True(t, ok, "верный пароль должен пройти проверку")

			ok, err = VerifyPassword(hash, password+"_wrong")
			require.NoError(t, err)
			assert.False(t, ok, "неверный пароль не должен пройти проверку")
		})
	}
}
