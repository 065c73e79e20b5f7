package service

import "errors"

var (
	// ErrUnauthenticated is returned when an operation that needs a caller
	// gets no token or no verified identity.
	ErrUnauthenticated = errors.New("missing Authorization Bearer token")

	// ErrTokenSubjectMismatch is returned when the sub claim of a JWT names a
	// different user than the identity provider does.
	ErrTokenSubjectMismatch = errors.New("invalid auth token: subject does not match identity")

	// ErrEmptyIdentity is returned when the identity provider accepts a token
	// but reports no user id.
	ErrEmptyIdentity = errors.New("invalid auth token: identity provider returned no user id")

	ErrUnknownKind = errors.New("unknown resource kind")

	ErrStorageUnavailable = errors.New("storage unavailable")
)
