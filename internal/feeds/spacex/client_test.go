package spacex

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarlinkFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/starlink", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"id": "5eed7714096e590006985637",
				"version": "v1.0",
				"launch": "5eb87d30ffd86e000604b378",
				"height_km": 547.1,
				"spaceTrack": {
					"OBJECT_NAME": "STARLINK-1038",
					"NORAD_CAT_ID": 44756,
					"LAUNCH_DATE": "2019-11-11",
					"ECCENTRICITY": 0.0001913,
					"PERIAPSIS": 546.3,
					"APOAPSIS": 548.9
				}
			}
		]`))
	}))
	defer srv.Close()

	entries := NewWithBaseURL(srv.URL).Starlink(context.Background())
	require.Len(t, entries, 1)
	assert.Equal(t, "v1.0", entries[0].Version)
	require.NotNil(t, entries[0].SpaceTrack)
	assert.Equal(t, 44756, entries[0].SpaceTrack.NoradCatID)
	assert.Equal(t, "STARLINK-1038", entries[0].SpaceTrack.ObjectName)
	require.NotNil(t, entries[0].HeightKm)
	assert.Equal(t, 547.1, *entries[0].HeightKm)
}

func TestStarlinkEmptyOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	entries := NewWithBaseURL(srv.URL).Starlink(context.Background())
	assert.Empty(t, entries)
}

func TestLaunchesPropagateError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewWithBaseURL(srv.URL).Launches(context.Background())
	require.Error(t, err)
}

func TestLaunchCollections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/launches":
			_, _ = w.Write([]byte(`[{"id": "l1", "flight_number": 95, "name": "Starlink-1 v1.0", "date_utc": "2020-01-07T02:19:00.000Z", "cores": [{"core": "c1", "flight": 4}]}]`))
		case "/cores":
			_, _ = w.Write([]byte(`[{"id": "c1", "serial": "B1049", "reuse_count": 3}]`))
		case "/rockets":
			_, _ = w.Write([]byte(`[{"id": "r1", "name": "Falcon 9"}]`))
		case "/launchpads":
			_, _ = w.Write([]byte(`[{"id": "p1", "name": "CCSFS SLC 40", "full_name": "Cape Canaveral", "locality": "Cape Canaveral"}]`))
		case "/payloads":
			_, _ = w.Write([]byte(`[{"id": "pl1", "name": "Starlink 2", "type": "Satellite"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewWithBaseURL(srv.URL)
	ctx := context.Background()

	launches, err := client.Launches(ctx)
	require.NoError(t, err)
	require.Len(t, launches, 1)
	assert.Equal(t, 95, launches[0].FlightNumber)
	require.Len(t, launches[0].Cores, 1)
	require.NotNil(t, launches[0].Cores[0].Flight)
	assert.Equal(t, 4, *launches[0].Cores[0].Flight)

	cores, err := client.Cores(ctx)
	require.NoError(t, err)
	require.Len(t, cores, 1)
	assert.Equal(t, "B1049", cores[0].Serial)

	rockets, err := client.Rockets(ctx)
	require.NoError(t, err)
	require.Len(t, rockets, 1)

	pads, err := client.Launchpads(ctx)
	require.NoError(t, err)
	require.Len(t, pads, 1)

	payloads, err := client.Payloads(ctx)
	require.NoError(t, err)
	require.Len(t, payloads, 1)
}
