package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/utils"
	"github.com/MKhiriev/go-record-sync/models"
)

// authService is the concrete implementation of AuthService.
// It issues and verifies HMAC-SHA256 account tokens and decides the account
// status reported to sync clients.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// restricted lists the accounts that may authenticate but not sync.
	restricted []string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.ServerApp, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		restricted:    slices.Clone(cfg.RestrictedAccounts),
		logger:        logger,
	}
}

// CreateToken issues a signed JWT whose subject is accountID.
//
// Returns ErrEmptyAccountID for an empty id or a wrapped
// ErrTokenCreationFailed if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, accountID string) (models.Token, error) {
	if accountID == "" {
		return models.Token{}, ErrEmptyAccountID
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, accountID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "authService.CreateToken").
			Str("account_id", accountID).
			Msg("failed to issue account token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().
			Str("func", "authService.ParseToken").
			Err(err).
			Msg("rejected account token")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) AccountStatus(_ context.Context, accountID string) models.AccountStatus {
	switch {
	case accountID == "":
		return models.AccountStatusNoAccount
	case slices.Contains(a.restricted, accountID):
		return models.AccountStatusRestricted
	default:
		return models.AccountStatusAvailable
	}
}
