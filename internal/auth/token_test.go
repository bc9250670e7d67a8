package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testKey      = []byte("0123456789abcdef0123456789abcdef")
	otherTestKey = []byte("fedcba9876543210fedcba9876543210")
)

func newTokenServices(t *testing.T, key []byte) map[string]TokenService {
	t.Helper()
	p, err := NewPasetoService(key)
	require.NoError(t, err)
	j, err := NewJWTService(key)
	require.NoError(t, err)
	return map[string]TokenService{"paseto": p, "jwt": j}
}

func TestTokenServices_RoundTrip(t *testing.T) {
	for name, svc := range newTokenServices(t, testKey) {
		t.Run(name, func(t *testing.T) {
			userID := uuid.New()

			token, err := svc.CreateToken(userID, "ada@example.com", SessionTokenDuration)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			claims, err := svc.VerifyToken(token)
			require.NoError(t, err)
			assert.Equal(t, userID.String(), claims.UserID)
			assert.Equal(t, "ada@example.com", claims.Email)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt, 2*time.Second)
			assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt, 2*time.Second)
		})
	}
}

func TestTokenServices_Expired(t *testing.T) {
	for name, svc := range newTokenServices(t, testKey) {
		t.Run(name, func(t *testing.T) {
			token, err := svc.CreateToken(uuid.New(), "ada@example.com", -time.Minute)
			require.NoError(t, err)

			_, err = svc.VerifyToken(token)
			assert.ErrorIs(t, err, ErrExpiredToken)
		})
	}
}

func TestTokenServices_WrongKey(t *testing.T) {
	issuers := newTokenServices(t, testKey)
	verifiers := newTokenServices(t, otherTestKey)

	for name, issuer := range issuers {
		t.Run(name, func(t *testing.T) {
			token, err := issuer.CreateToken(uuid.New(), "ada@example.com", time.Hour)
			require.NoError(t, err)

			_, err = verifiers[name].VerifyToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenServices_Malformed(t *testing.T) {
	for name, svc := range newTokenServices(t, testKey) {
		t.Run(name, func(t *testing.T) {
			for _, token := range []string{"", "garbage", "v4.local.AAAA", "a.b.c"} {
				_, err := svc.VerifyToken(token)
				assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
			}
		})
	}
}

func TestTokenServices_Tampered(t *testing.T) {
	for name, svc := range newTokenServices(t, testKey) {
		t.Run(name, func(t *testing.T) {
			token, err := svc.CreateToken(uuid.New(), "ada@example.com", time.Hour)
			require.NoError(t, err)

			// Flip a character in the middle of the payload
			mid := len(token) / 2
			replacement := "A"
			if token[mid] == 'A' {
				replacement = "B"
			}
			tampered := token[:mid] + replacement + token[mid+1:]

			_, err = svc.VerifyToken(tampered)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestPasetoService_ClockDrivesExpiry(t *testing.T) {
	svc, err := NewPasetoService(testKey)
	require.NoError(t, err)

	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.CreateToken(uuid.New(), "ada@example.com", SessionTokenDuration)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(SessionTokenDuration - time.Second) }
	_, err = svc.VerifyToken(token)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(SessionTokenDuration) }
	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc, err := NewJWTService(testKey)
	require.NoError(t, err)

	claims := &jwtClaims{
		UserID: uuid.NewString(),
		Email:  "ada@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenServices_KeyLength(t *testing.T) {
	_, err := NewPasetoService([]byte("short"))
	assert.Error(t, err)

	_, err = NewPasetoService([]byte(strings.Repeat("k", 33)))
	assert.Error(t, err)

	_, err = NewJWTService([]byte("short"))
	assert.Error(t, err)

	_, err = NewJWTService([]byte(strings.Repeat("k", 64)))
	assert.NoError(t, err)
}
