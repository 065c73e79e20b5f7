// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-life-records/internal/app"
	"github.com/MKhiriev/go-life-records/internal/utils"
)

// methodNotAllowed is registered as both the NotFound and the
// MethodNotAllowed handler of the router, so every method and path
// combination without a route answers 405 with a JSON error body.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, r, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}
