package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-life-records/internal/config"
	"github.com/MKhiriev/go-life-records/internal/logger"
	"github.com/MKhiriev/go-life-records/internal/utils"
	"github.com/MKhiriev/go-life-records/models"
)

const userPath = "/auth/v1/user"

type httpIdentityProvider struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// NewHTTPIdentityProvider constructs an HTTP implementation of
// [IdentityProvider] for a Supabase-compatible auth service.
//
// Returns an error if cfg.URL is empty or cannot be parsed as a valid URL.
func NewHTTPIdentityProvider(cfg config.Identity, logger *logger.Logger) (IdentityProvider, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid identity provider url: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpIdentityProvider{client: client, apiKey: cfg.APIKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// providerUser is the subset of the provider's user object we read.
type providerUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// GetUser implements [IdentityProvider]. It sends GET /auth/v1/user with the
// project key in the apikey header and the caller's token as a bearer
// credential.
func (h *httpIdentityProvider) GetUser(ctx context.Context, token string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("apikey", h.apiKey).
		SetAuthToken(token).
		SetHeader("Accept", "application/json").
		Get(userPath)
	if err != nil {
		log.Err(err).Str("func", "httpIdentityProvider.GetUser").Msg("identity provider request failed")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Debug().Str("func", "httpIdentityProvider.GetUser").Int("status", resp.StatusCode()).Msg("token rejected by identity provider")
		return models.Identity{}, err
	}

	var user providerUser
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		log.Err(err).Str("func", "httpIdentityProvider.GetUser").Msg("undecodable identity provider response")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	return models.Identity{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}
