package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoBearerToken is returned when the Authorization header does not
	// carry a bearer token.
	ErrNoBearerToken = errors.New("missing Authorization Bearer token")
	// ErrNotJWT is returned when a token cannot be decoded as a JWT.
	ErrNotJWT = errors.New("token is not a JWT")
)

var bearerPattern = regexp.MustCompile(`(?i)^Bearer\s+(.+)$`)

// ParseBearerToken extracts the token from an Authorization header value of
// the form "Bearer <token>". The scheme is matched case-insensitively.
//
// Example usage:
//
//	token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
func ParseBearerToken(authorizationHeader string) (string, error) {
	m := bearerPattern.FindStringSubmatch(strings.TrimSpace(authorizationHeader))
	if m == nil {
		return "", ErrNoBearerToken
	}

	token := strings.TrimSpace(m[1])
	if token == "" {
		return "", ErrNoBearerToken
	}
	return token, nil
}

// ParseUnverifiedClaims decodes the claims of a JWT without checking its
// signature. The identity provider remains the authority on validity; the
// claims only enrich an identity the provider has already confirmed.
func ParseUnverifiedClaims(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}
	return claims, nil
}
