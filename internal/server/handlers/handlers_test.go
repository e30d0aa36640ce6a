package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitwatch/orbitwatch/internal/feeds/celestrak"
	"github.com/orbitwatch/orbitwatch/internal/feeds/launchlib"
	"github.com/orbitwatch/orbitwatch/internal/feeds/spacex"
	"github.com/orbitwatch/orbitwatch/internal/server/cache"
	"github.com/orbitwatch/orbitwatch/internal/service"
)

type stubOperator struct{}

func (stubOperator) Starlink(_ context.Context) []spacex.StarlinkEntry {
	return []spacex.StarlinkEntry{
		{
			ID:      "entry-1",
			Version: "v1.5",
			SpaceTrack: &spacex.SpaceTrack{
				ObjectName: "STARLINK-3001",
				NoradCatID: 50000,
				LaunchDate: "2021-11-13",
				Periapsis:  540,
				Apoapsis:   560,
			},
		},
	}
}

func (stubOperator) Launches(_ context.Context) ([]spacex.RawLaunch, error) {
	return []spacex.RawLaunch{
		{ID: "l1", Name: "Starlink Group 4-1", DateUTC: "2021-11-13T12:19:00.000Z"},
	}, nil
}

func (stubOperator) Cores(_ context.Context) ([]spacex.Core, error)           { return nil, nil }
func (stubOperator) Rockets(_ context.Context) ([]spacex.Rocket, error)       { return nil, nil }
func (stubOperator) Launchpads(_ context.Context) ([]spacex.Launchpad, error) { return nil, nil }
func (stubOperator) Payloads(_ context.Context) ([]spacex.Payload, error)     { return nil, nil }

type stubElements struct{}

func (stubElements) Group(_ context.Context, _ string) []celestrak.GP { return nil }

type stubSchedule struct{}

func (stubSchedule) Search(_ context.Context, _ string, _ int) ([]launchlib.Launch, error) {
	return nil, nil
}

func (stubSchedule) Upcoming(_ context.Context, _ string, _ int) ([]launchlib.Launch, error) {
	return nil, nil
}

func (stubSchedule) Previous(_ context.Context, _ string, _ int) ([]launchlib.Launch, error) {
	return []launchlib.Launch{{ID: "past-1", Net: "2024-04-28T02:00:00Z"}}, nil
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestHandlers() *Handlers {
	logger := zerolog.Nop()
	svc := service.New(stubOperator{}, stubElements{}, stubSchedule{}, cache.New(time.Minute, 0), &logger)
	return New(svc, &logger)
}

func doRequest(t *testing.T, handle http.HandlerFunc, method, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	handle(rec, httptest.NewRequest(method, target, nil))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestSatellitesHandler(t *testing.T) {
	h := newTestHandlers()
	rec, env := doRequest(t, h.Satellites, http.MethodGet, "/api/v1/satellites")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Nil(t, env.Error)

	var sats []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &sats))
	require.Len(t, sats, 1)
	assert.Equal(t, float64(50000), sats[0]["noradId"])
}

func TestSatelliteHandlerByNoradID(t *testing.T) {
	h := newTestHandlers()
	rec, env := doRequest(t, h.Satellite, http.MethodGet, "/api/v1/satellites/50000")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Nil(t, env.Error)

	var sat map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &sat))
	assert.Equal(t, "STARLINK-3001", sat["name"])
}

func TestSatelliteHandlerNotFound(t *testing.T) {
	h := newTestHandlers()
	rec, env := doRequest(t, h.Satellite, http.MethodGet, "/api/v1/satellites/12345")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestSatelliteHandlerInvalidID(t *testing.T) {
	h := newTestHandlers()
	rec, env := doRequest(t, h.Satellite, http.MethodGet, "/api/v1/satellites/not-a-number")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)
}

func TestLaunchesHandler(t *testing.T) {
	h := newTestHandlers()
	rec, env := doRequest(t, h.Launches, http.MethodGet, "/api/v1/launches")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Nil(t, env.Error)

	var launches []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &launches))
	require.Len(t, launches, 1)
}

func TestStatsHandler(t *testing.T) {
	h := newTestHandlers()
	rec, env := doRequest(t, h.Stats, http.MethodGet, "/api/v1/stats")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Nil(t, env.Error)

	var cs map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &cs))
	assert.Equal(t, float64(1), cs["totalSatellites"])
}

func TestFunFactsHandler(t *testing.T) {
	h := newTestHandlers()
	rec, env := doRequest(t, h.FunFacts, http.MethodGet, "/api/v1/fun-facts")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Nil(t, env.Error)

	var facts []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &facts))
	assert.Len(t, facts, 8)
}

func TestLiveHandler(t *testing.T) {
	h := newTestHandlers()
	rec, env := doRequest(t, h.Live, http.MethodGet, "/api/v1/live")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Nil(t, env.Error)

	var live map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &live))
	assert.Equal(t, false, live["isLiveNow"])
}

func TestHealthHandler(t *testing.T) {
	h := newTestHandlers()
	rec, env := doRequest(t, h.Health, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Nil(t, env.Error)
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandlers()
	rec, env := doRequest(t, h.Satellites, http.MethodPost, "/api/v1/satellites")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "METHOD_NOT_ALLOWED", env.Error.Code)
}
