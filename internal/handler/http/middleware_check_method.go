// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-diary/internal/utils"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler. Known paths requested with an unregistered
// method answer 404 Not Found instead of chi's 405, so route existence is
// not revealed. Parameterised patterns such as /api/entries/{id} are
// resolved with [chi.Mux.Match].
//
// Usage:
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
