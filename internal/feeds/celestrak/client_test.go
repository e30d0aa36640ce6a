package celestrak

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "starlink", r.URL.Query().Get("GROUP"))
		assert.Equal(t, "json", r.URL.Query().Get("FORMAT"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"OBJECT_NAME": "STARLINK-1008",
				"OBJECT_ID": "2019-074B",
				"NORAD_CAT_ID": 44714,
				"EPOCH": "2024-05-01T12:00:00",
				"ECCENTRICITY": 0.0001549,
				"INCLINATION": 53.05,
				"PERIAPSIS": 546.7,
				"APOAPSIS": 548.4,
				"BSTAR": 0.00033,
				"LAUNCH_DATE": "2019-11-11",
				"DECAYED": 0
			}
		]`))
	}))
	defer srv.Close()

	sets := NewWithBaseURL(srv.URL).Group(context.Background(), "starlink")
	require.Len(t, sets, 1)
	assert.Equal(t, 44714, sets[0].NoradCatID)
	assert.Equal(t, "2019-074B", sets[0].ObjectID)
	assert.Equal(t, 0.0001549, sets[0].Eccentricity)
	assert.Nil(t, sets[0].DecayDate)
}

func TestGroupEmptyOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	sets := NewWithBaseURL(srv.URL).Group(context.Background(), "starlink")
	assert.Empty(t, sets)
}

func TestGroupEmptyOnMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("No GP data found"))
	}))
	defer srv.Close()

	sets := NewWithBaseURL(srv.URL).Group(context.Background(), "starlink")
	assert.Empty(t, sets)
}
