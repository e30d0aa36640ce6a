package server

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orbitwatch/orbitwatch/internal/server/handlers"
	"github.com/orbitwatch/orbitwatch/internal/server/response"
)

// newRouter builds the route table for the API.
func newRouter(h *handlers.Handlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/satellites", h.Satellites)
	mux.HandleFunc("/api/v1/satellites/", func(w http.ResponseWriter, r *http.Request) {
		// The bare collection path with a trailing slash lists satellites;
		// anything after it is treated as a NORAD catalog number.
		if strings.TrimSuffix(r.URL.Path, "/") == "/api/v1/satellites" {
			h.Satellites(w, r)
			return
		}
		h.Satellite(w, r)
	})
	mux.HandleFunc("/api/v1/launches", h.Launches)
	mux.HandleFunc("/api/v1/stats", h.Stats)
	mux.HandleFunc("/api/v1/fun-facts", h.FunFacts)
	mux.HandleFunc("/api/v1/live", h.Live)

	mux.HandleFunc("/health", h.Health)
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Endpoint not found", r.URL.Path)
	})

	return mux
}
