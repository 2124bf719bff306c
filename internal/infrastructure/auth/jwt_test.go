package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leafsmp/internal/shared/errors"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func TestJWTService_RoundTrip(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)}
	svc := NewJWTService("test-secret", 0).WithClock(clock.Now)

	token, exp, err := svc.GenerateAdminToken("Kanhaiya")
	require.NoError(t, err)
	assert.Equal(t, clock.now.Add(24*time.Hour), exp)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "Kanhaiya", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	issued := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issued}
	svc := NewJWTService("test-secret", 24*time.Hour).WithClock(clock.Now)

	token, _, err := svc.GenerateAdminToken("Kanhaiya")
	require.NoError(t, err)

	clock.now = issued.Add(23*time.Hour + 59*time.Minute)
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	clock.now = issued.Add(24*time.Hour + time.Minute)
	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeTokenExpired, errors.GetAppError(err).Type)
}

func TestJWTService_RejectsForgedTokens(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	other := NewJWTService("other-secret", time.Hour)

	forged, _, err := other.GenerateAdminToken("Kanhaiya")
	require.NoError(t, err)

	userRole := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Username: "Steve",
		Role:     "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	wrongRole, err := userRole.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Username:         "Kanhaiya",
		Role:             "admin",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer},
	})
	noExpiry, err := noExp.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Username: "Kanhaiya",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"wrong secret": forged,
		"wrong role":   wrongRole,
		"no expiry":    noExpiry,
		"alg none":     unsigned,
		"garbage":      "not.a.token",
		"empty":        "",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token)
			require.Error(t, err)
			assert.Equal(t, errors.ErrorTypeTokenInvalid, errors.GetAppError(err).Type)
		})
	}
}
