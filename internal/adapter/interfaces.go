// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external systems the service
// depends on.
//
// The primary abstraction is [IdentityProvider], which verifies bearer tokens
// against the hosted authentication service. The package ships an HTTP
// implementation ([NewHTTPIdentityProvider]) built on resty.
//
// Error values defined in errors.go let callers use [errors.Is] to tell a
// rejected token ([ErrInvalidToken]) from an unreachable provider
// ([ErrProviderUnavailable]).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-life-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_provider_mock.go -package=mock

// IdentityProvider resolves a bearer token to the identity it was issued for.
type IdentityProvider interface {
	// GetUser asks the provider who token belongs to. It performs exactly one
	// outbound call.
	//
	// A token the provider rejects yields an error wrapping
	// [ErrInvalidToken] (as a *[ProviderError]); a transport failure yields
	// an error wrapping [ErrProviderUnavailable].
	GetUser(ctx context.Context, token string) (models.Identity, error)
}
