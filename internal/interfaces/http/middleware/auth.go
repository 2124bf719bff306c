package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"leafsmp/internal/infrastructure/auth"
	"leafsmp/internal/shared/constants"
	"leafsmp/internal/shared/errors"
	"leafsmp/internal/shared/logger"
	"leafsmp/internal/shared/utils"
)

// TokenVerifier decodes a staff bearer token.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	tokens TokenVerifier
	logger logger.Interface
}

func NewAuthMiddleware(tokens TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// RequireAdmin rejects requests without a valid admin token: no token is
// "authentication required", anything unverifiable is "invalid token".
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.AbortWithError(c, errors.NewAuthRequiredError())
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify admin token",
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
				"error", err)
			utils.AbortWithError(c, err)
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches the admin identity when a valid token is present and
// otherwise lets the request through untouched.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		if claims, err := m.tokens.Verify(token); err == nil {
			setIdentity(c, claims)
		}

		c.Next()
	}
}

// AdminUsername returns the identity set by RequireAdmin or OptionalAuth.
func AdminUsername(c *gin.Context) string {
	return c.GetString(constants.ContextKeyAdminUsername)
}

func setIdentity(c *gin.Context, claims *auth.Claims) {
	c.Set(constants.ContextKeyAdminUsername, claims.Username)
	c.Set(constants.ContextKeyAdminRole, claims.Role)
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader(constants.HeaderAuthorization)
	if header == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		// A malformed header still counts as a token so it is reported as
		// invalid rather than missing.
		return header, true
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
