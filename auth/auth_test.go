package auth

import (
	"strings"
	"testing"
	"time"

	"messager/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "Tr0ub4dor&3-horse"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("wrong-password", hash)
	req.NoError(err)
	req.False(match)
}

func TestCompareMalformedHash(t *testing.T) {
	req := require.New(t)

	_, err := ComparePassword("whatever", "not-a-hash")
	req.Error(err)

	_, err = ComparePassword("whatever", "$argon2id$v=abc$m=1,t=1,p=1$c2FsdA$aGFzaA")
	req.Error(err)

	_, err = ComparePassword("whatever", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA")
	req.Error(err)
}

func TestRegistrationValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr error
	}{
		{"Valid request", RegisterRequest{"alice", "ComplexPass123!"}, nil},
		{"Handle too short", RegisterRequest{"al", "ComplexPass123!"}, errors.ErrInvalidPayload},
		{"Handle with symbols", RegisterRequest{"alice!", "ComplexPass123!"}, errors.ErrInvalidPayload},
		{"Password too short", RegisterRequest{"alice", "Short1!"}, errors.ErrInvalidPayload},
		{"Password too long", RegisterRequest{"alice", strings.Repeat("a", 73)}, errors.ErrInvalidPayload},
		{"Missing digit", RegisterRequest{"alice", "NoDigitPass!"}, errors.ErrInvalidPassword},
		{"Missing special char", RegisterRequest{"alice", "NoSpecialChar123"}, errors.ErrInvalidPassword},
		{"Missing uppercase", RegisterRequest{"alice", "nouppercase123!"}, errors.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestComplexityErrorNamesMissingClasses(t *testing.T) {
	err := ValidateRegister(RegisterRequest{"alice", "nouppercaseorsymbol1"})
	require.ErrorIs(t, err, errors.ErrInvalidPassword)
	require.Contains(t, err.Error(), "uppercase letter, symbol")
}

func TestTokenRoundTrip(t *testing.T) {
	req := require.New(t)
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.GenerateToken("0xA11CE", []string{"user"})
	req.NoError(err)

	claims, err := issuer.ValidateToken(token)
	req.NoError(err)
	req.Equal("0xA11CE", claims.UserID)
	req.Equal([]string{"user"}, claims.Roles)
}

func TestTokenRejections(t *testing.T) {
	req := require.New(t)
	issuer := NewTokenIssuer("test-secret", time.Hour)

	t.Run("other secret", func(t *testing.T) {
		token, err := NewTokenIssuer("other-secret", time.Hour).GenerateToken("0xA11CE", nil)
		req.NoError(err)
		_, err = issuer.ValidateToken(token)
		require.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := NewTokenIssuer("test-secret", -time.Minute).GenerateToken("0xA11CE", nil)
		req.NoError(err)
		_, err = issuer.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.ValidateToken("invalid-token-string")
		require.Error(t, err)
	})
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
