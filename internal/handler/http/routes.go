package http

import (
	"github.com/MKhiriev/go-life-records/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// netlifyPrefix keeps the paths of the serverless deployment working.
const netlifyPrefix = "/.netlify/functions"

// Init builds the router. Every kind in models.Definitions gets
//
//	GET    /{kind}        list (mode=public needs no token)
//	POST   /{kind}        create or merge by fingerprint
//	PUT    /{kind}/{id}   partial update
//	PATCH  /{kind}/{id}   partial update
//	DELETE /{kind}/{id}   delete
//
// both at the root and under /.netlify/functions. Any other method and path
// combination answers 405.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(
		h.withTraceID,
		h.withLogging,
		middleware.Recoverer,
		middleware.StripSlashes,
		withNoStore,
		withGZip,
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(methodNotAllowed)
	router.MethodNotAllowed(methodNotAllowed)

	router.Get("/healthz", h.health)

	for _, prefix := range []string{"", netlifyPrefix} {
		for _, def := range models.Definitions {
			collection := prefix + "/" + string(def.Kind)
			item := collection + "/{id}"

			router.Get(collection, h.listRecords(def.Kind))

			// routes with authorization
			router.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post(collection, h.createRecord(def.Kind))
				r.Put(item, h.updateRecord(def.Kind))
				r.Patch(item, h.updateRecord(def.Kind))
				r.Delete(item, h.deleteRecord(def.Kind))
			})
		}
	}

	return router
}
