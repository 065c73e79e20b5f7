package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-life-records/internal/adapter"
	"github.com/MKhiriev/go-life-records/internal/logger"
	"github.com/MKhiriev/go-life-records/internal/utils"
	"github.com/MKhiriev/go-life-records/models"
)

// authService is the concrete implementation of AuthService. The identity
// provider is the only authority on a token; nothing is stored locally.
type authService struct {
	identityProvider adapter.IdentityProvider

	logger *logger.Logger
}

// NewAuthService constructs an AuthService backed by identityProvider.
func NewAuthService(identityProvider adapter.IdentityProvider, logger *logger.Logger) AuthService {
	return &authService{
		identityProvider: identityProvider,
		logger:           logger,
	}
}

// VerifyToken returns the identity the provider reports for token.
//
// When token is a JWT its claims are decoded without verification and
// attached to the identity. A sub claim naming another user than the
// provider is rejected.
//
// Returns:
//   - ErrUnauthenticated if token is empty.
//   - adapter.ErrInvalidToken (as *adapter.ProviderError) if the provider
//     rejects the token.
//   - adapter.ErrProviderUnavailable if the provider cannot be reached.
//   - ErrEmptyIdentity or ErrTokenSubjectMismatch for inconsistent answers.
func (a *authService) VerifyToken(ctx context.Context, token string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.Identity{}, ErrUnauthenticated
	}

	identity, err := a.identityProvider.GetUser(ctx, token)
	if err != nil {
		log.Err(err).Str("func", "*authService.VerifyToken").Msg("identity provider rejected token")
		return models.Identity{}, fmt.Errorf("token verification failed: %w", err)
	}

	if identity.ID == "" {
		log.Error().Str("func", "*authService.VerifyToken").Msg("identity provider returned no user id")
		return models.Identity{}, ErrEmptyIdentity
	}

	claims, err := utils.ParseUnverifiedClaims(token)
	if err != nil {
		// opaque tokens are fine, the provider accepted them
		return identity, nil
	}

	if sub, _ := claims.GetSubject(); sub != "" && sub != identity.ID {
		log.Warn().Str("func", "*authService.VerifyToken").Str("sub", sub).Str("id", identity.ID).Msg("token subject mismatch")
		return models.Identity{}, ErrTokenSubjectMismatch
	}

	identity.Claims = claims
	return identity, nil
}
