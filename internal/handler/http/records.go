package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-life-records/internal/logger"
	"github.com/MKhiriev/go-life-records/internal/utils"
	"github.com/MKhiriev/go-life-records/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// listRecords serves GET /{kind}. Only non-public modes verify the caller.
func (h *Handler) listRecords(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		req := models.ListRequest{
			Kind: kind,
			Mode: models.ParseListMode(query.Get("mode")),
			From: parseOffset(query.Get("from")),
		}
		if limit, ok := parseCount(query.Get("limit")); ok {
			req.Limit = models.Some(limit)
		}

		if req.Mode != models.ListModePublic {
			identity, err := h.identify(r)
			if err != nil {
				logger.FromRequest(r).Err(err).Str("func", "*Handler.listRecords").Msg("caller was not verified")
				writeError(w, r, err)
				return
			}
			req.Identity = identity
		}

		records, err := h.services.RecordService.List(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		utils.WriteData(w, r, records, http.StatusOK)
	}
}

// createRecord serves POST /{kind}.
func (h *Handler) createRecord(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := utils.GetIdentityFromContext(r.Context())

		input, err := decodeRecordInput(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		record, err := h.services.RecordService.Create(r.Context(), models.CreateRequest{
			Kind:     kind,
			Identity: identity,
			Input:    input,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		utils.WriteData(w, r, record, http.StatusOK)
	}
}

// updateRecord serves PUT and PATCH /{kind}/{id}.
func (h *Handler) updateRecord(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := utils.GetIdentityFromContext(r.Context())

		input, err := decodeRecordInput(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		record, err := h.services.RecordService.Update(r.Context(), models.UpdateRequest{
			Kind:     kind,
			Identity: identity,
			ID:       chi.URLParam(r, "id"),
			Input:    input,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		utils.WriteData(w, r, record, http.StatusOK)
	}
}

// deleteRecord serves DELETE /{kind}/{id}.
func (h *Handler) deleteRecord(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := utils.GetIdentityFromContext(r.Context())

		deleted, err := h.services.RecordService.Delete(r.Context(), models.DeleteRequest{
			Kind:     kind,
			Identity: identity,
			ID:       chi.URLParam(r, "id"),
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		utils.WriteData(w, r, deleted, http.StatusOK)
	}
}

// decodeRecordInput reads the JSON object of a create or update. An empty
// body is an empty payload.
func decodeRecordInput(r *http.Request) (models.RecordInput, error) {
	var input models.RecordInput
	if r.Body == nil {
		return input, nil
	}

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		if errors.Is(err, io.EOF) {
			return models.RecordInput{}, nil
		}
		return models.RecordInput{}, fmt.Errorf("%w: %w", ErrInvalidJSONBody, err)
	}

	return input, nil
}

// parseOffset returns 0 for anything that is not a non-negative integer.
func parseOffset(raw string) uint64 {
	n, ok := parseCount(raw)
	if !ok {
		return 0
	}
	return n
}

// parseCount parses a non-negative integer that fits a Postgres bigint.
func parseCount(raw string) (uint64, bool) {
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return 0, false
	}
	return n, true
}
