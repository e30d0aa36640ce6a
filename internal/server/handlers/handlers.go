// Package handlers implements the HTTP handlers for the orbitwatch API.
package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/orbitwatch/orbitwatch/internal/server/response"
	"github.com/orbitwatch/orbitwatch/internal/service"
	"github.com/orbitwatch/orbitwatch/pkg/logging"
)

// Handlers holds the dependencies for all API handlers.
type Handlers struct {
	svc     *service.Service
	logger  *zerolog.Logger
	started time.Time
}

// New creates a Handlers instance backed by the given service.
func New(svc *service.Service, logger *zerolog.Logger) *Handlers {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handlers{
		svc:     svc,
		logger:  logger,
		started: time.Now(),
	}
}

// Satellites handles GET /api/v1/satellites.
func (h *Handlers) Satellites(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.MethodNotAllowed(w, r.Method)
		return
	}

	sats, err := h.svc.Satellites(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("satellites request failed")
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, sats)
}

// Satellite handles GET /api/v1/satellites/{noradID}.
func (h *Handlers) Satellite(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.MethodNotAllowed(w, r.Method)
		return
	}

	raw := extractPathParam(r.URL.Path, "/api/v1/satellites/")
	if raw == "" {
		response.BadRequest(w, "Missing NORAD catalog number", "")
		return
	}
	noradID, err := strconv.Atoi(raw)
	if err != nil || noradID <= 0 {
		response.BadRequest(w, "Invalid NORAD catalog number", "expected a positive integer, got "+raw)
		return
	}

	sat, err := h.svc.Satellite(r.Context(), noradID)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, sat)
}

// Launches handles GET /api/v1/launches.
func (h *Handlers) Launches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.MethodNotAllowed(w, r.Method)
		return
	}

	launches, err := h.svc.Launches(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("launches request failed")
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, launches)
}

// Stats handles GET /api/v1/stats.
func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.MethodNotAllowed(w, r.Method)
		return
	}

	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("stats request failed")
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, stats)
}

// FunFacts handles GET /api/v1/fun-facts.
func (h *Handlers) FunFacts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.MethodNotAllowed(w, r.Method)
		return
	}

	facts, err := h.svc.FunFacts(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("fun facts request failed")
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, facts)
}

// Live handles GET /api/v1/live.
func (h *Handlers) Live(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.MethodNotAllowed(w, r.Method)
		return
	}

	live, err := h.svc.Live(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("live request failed")
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, live)
}

// Health handles GET /health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.MethodNotAllowed(w, r.Method)
		return
	}

	response.OK(w, map[string]any{
		"status":         "ok",
		"uptime_seconds": int(time.Since(h.started).Seconds()),
	})
}

// extractPathParam returns the remainder of path after prefix, trimmed of
// any trailing slash. Returns "" when the remainder contains further
// path segments.
func extractPathParam(path, prefix string) string {
	param := strings.TrimPrefix(path, prefix)
	param = strings.TrimSuffix(param, "/")
	if param == "" || strings.Contains(param, "/") {
		return ""
	}
	return param
}
