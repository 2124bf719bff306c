package auth

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"leafsmp/internal/shared/biztime"
	"leafsmp/internal/shared/constants"
	"leafsmp/internal/shared/errors"
)

const (
	DefaultTokenTTL = 24 * time.Hour
	issuer          = "leafsmp"
)

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies staff tokens (HS256).
type JWTService struct {
	secret []byte
	ttl    time.Duration
	clock  biztime.Clock
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  biztime.NowUTC,
	}
}

// WithClock replaces the time source for both signing and verification.
func (s *JWTService) WithClock(clock biztime.Clock) *JWTService {
	s.clock = clock
	return s
}

func (s *JWTService) TTL() time.Duration {
	return s.ttl
}

func (s *JWTService) GenerateAdminToken(username string) (string, time.Time, error) {
	now := s.clock().UTC()
	exp := now.Add(s.ttl)

	claims := &Claims{
		Username: username,
		Role:     constants.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign admin token: %w", err)
	}
	return signed, exp, nil
}

// Verify parses tokenString and returns its claims. Failures are AuthErrors:
// token_expired for an expired token, token_invalid for anything else.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.NewTokenExpiredError()
		}
		return nil, errors.NewTokenInvalidError(err.Error())
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.NewTokenInvalidError("malformed claims")
	}
	if claims.Role != constants.RoleAdmin || claims.Username == "" {
		return nil, errors.NewTokenInvalidError("token does not carry the admin role")
	}
	return claims, nil
}
