package utils

import (
	"net/http"

	"github.com/MKhiriev/go-life-records/models"
	"github.com/go-chi/render"
)

// ContentTypeJSON is the content type of every response body.
const ContentTypeJSON = "application/json; charset=utf-8"

// WriteData renders data inside the success envelope {"data": ...}.
//
// Example usage:
//
//	utils.WriteData(w, r, record, http.StatusCreated)
func WriteData(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	writeEnvelope(w, r, models.DataResponse{Data: data}, statusCode)
}

// WriteError renders message inside the failure envelope {"error": ...}.
//
// Example usage:
//
//	utils.WriteError(w, r, "Not found", http.StatusNotFound)
func WriteError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	writeEnvelope(w, r, models.ErrorResponse{Error: message}, statusCode)
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, v any, statusCode int) {
	render.Status(r, statusCode)
	render.JSON(charsetWriter{w}, r, v)
}

// charsetWriter pins the JSON content type with an explicit charset when the
// status line is written; render.JSON sets a bare application/json.
type charsetWriter struct {
	http.ResponseWriter
}

func (c charsetWriter) WriteHeader(statusCode int) {
	c.Header().Set("Content-Type", ContentTypeJSON)
	c.ResponseWriter.WriteHeader(statusCode)
}
