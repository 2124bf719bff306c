package usecases

import (
	"context"
	"time"

	"leafsmp/internal/shared/errors"
	"leafsmp/internal/shared/logger"
)

// CredentialVerifier checks a username/password pair against the configured
// staff list.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

type TokenIssuer interface {
	GenerateAdminToken(username string) (token string, expiresAt time.Time, err error)
}

type AdminLoginCommand struct {
	Username  string
	Password  string
	IPAddress string
}

type AdminLoginResult struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

type AdminLoginExecutor interface {
	Execute(ctx context.Context, cmd AdminLoginCommand) (*AdminLoginResult, error)
}

type LoginMetrics interface {
	AdminLogin(success bool)
}

type AdminLoginUseCase struct {
	credentials CredentialVerifier
	tokens      TokenIssuer
	metrics     LoginMetrics
	logger      logger.Interface
}

func NewAdminLoginUseCase(
	credentials CredentialVerifier,
	tokens TokenIssuer,
	metrics LoginMetrics,
	logger logger.Interface,
) *AdminLoginUseCase {
	return &AdminLoginUseCase{
		credentials: credentials,
		tokens:      tokens,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute returns the same invalid-credentials error for an unknown username
// and for a wrong password.
func (uc *AdminLoginUseCase) Execute(ctx context.Context, cmd AdminLoginCommand) (*AdminLoginResult, error) {
	if cmd.Username == "" || cmd.Password == "" || !uc.credentials.Verify(cmd.Username, cmd.Password) {
		uc.logger.Warnw("admin login rejected", "ip", cmd.IPAddress)
		uc.count(false)
		return nil, errors.NewInvalidCredentialsError()
	}

	token, expiresAt, err := uc.tokens.GenerateAdminToken(cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to sign admin token", "username", cmd.Username, "error", err)
		return nil, errors.NewInternalError("Failed to sign token")
	}

	uc.logger.Infow("admin logged in", "username", cmd.Username, "ip", cmd.IPAddress)
	uc.count(true)

	return &AdminLoginResult{
		Token:     token,
		Username:  cmd.Username,
		ExpiresAt: expiresAt,
	}, nil
}

func (uc *AdminLoginUseCase) count(success bool) {
	if uc.metrics != nil {
		uc.metrics.AdminLogin(success)
	}
}
