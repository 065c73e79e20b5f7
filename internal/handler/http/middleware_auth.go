package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-life-records/internal/logger"
	"github.com/MKhiriev/go-life-records/internal/utils"
	"github.com/MKhiriev/go-life-records/models"
)

// auth is an HTTP middleware that requires a verified caller.
//
// It extracts the bearer token from the "Authorization" header, verifies it
// via [service.AuthService.VerifyToken] and stores the identity in the
// request context under [utils.IdentityCtxKey]. Requests without a valid
// token are answered with 401; a failing identity provider yields 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := h.identify(r)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.auth").Msg("caller was not verified")
			writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), utils.IdentityCtxKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// identify verifies the bearer token of r with the identity provider.
func (h *Handler) identify(r *http.Request) (models.Identity, error) {
	token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		return models.Identity{}, err
	}

	return h.services.AuthService.VerifyToken(r.Context(), token)
}
