package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidToken indicates that the identity provider rejected the token.
	ErrInvalidToken = errors.New("invalid auth token")
	// ErrProviderUnavailable indicates that the identity provider could not be
	// reached or answered with an unreadable body.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

// ProviderError is returned when the identity provider answers with a non-2xx
// status. Status and Body are kept for diagnostics.
type ProviderError struct {
	Status int
	Body   string
}

func (e *ProviderError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s (%d)", ErrInvalidToken, e.Status)
	}
	return fmt.Sprintf("%s (%d): %s", ErrInvalidToken, e.Status, e.Body)
}

// Unwrap makes every ProviderError match [ErrInvalidToken].
func (e *ProviderError) Unwrap() error {
	return ErrInvalidToken
}
