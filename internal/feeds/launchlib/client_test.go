package launchlib

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/launch/", r.URL.Path)
		assert.Equal(t, "starlink", r.URL.Query().Get("search"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Equal(t, "-net", r.URL.Query().Get("ordering"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"count": 1,
			"results": [
				{
					"id": "abc-123",
					"name": "Falcon 9 Block 5 | Starlink Group 6-2",
					"net": "2023-03-17T19:26:00Z",
					"status": {"id": 3, "name": "Launch Successful", "abbrev": "Success"},
					"webcast_live": false,
					"rocket": {
						"configuration": {"name": "Falcon 9", "full_name": "Falcon 9 Block 5"},
						"launcher_stage": [
							{
								"launcher": {"serial_number": "B1071", "flights": 8},
								"landing": {"success": true, "type": {"abbrev": "ASDS"}}
							}
						]
					},
					"pad": {"name": "Space Launch Complex 4E", "location": {"name": "Vandenberg SFB, CA, USA"}},
					"vidURLs": [{"url": "https://example.com/webcast", "title": "Launch", "source": "youtube.com"}]
				}
			]
		}`))
	}))
	defer srv.Close()

	launches, err := NewWithBaseURL(srv.URL).Search(context.Background(), "starlink", 100)
	require.NoError(t, err)
	require.Len(t, launches, 1)

	l := launches[0]
	assert.Equal(t, "abc-123", l.ID)
	assert.Equal(t, StatusIDSuccess, l.Status.ID)
	require.NotNil(t, l.Rocket)
	require.Len(t, l.Rocket.LauncherStage, 1)
	assert.Equal(t, "B1071", l.Rocket.LauncherStage[0].Launcher.SerialNumber)
	require.NotNil(t, l.Pad)
	assert.Equal(t, "Vandenberg SFB, CA, USA", l.Pad.Location.Name)
	require.Len(t, l.VidURLs, 1)
}

func TestUpcomingAndPreviousPaths(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count": 0, "results": []}`))
	}))
	defer srv.Close()

	client := NewWithBaseURL(srv.URL)
	_, err := client.Upcoming(context.Background(), "starlink", 1)
	require.NoError(t, err)
	_, err = client.Previous(context.Background(), "starlink", 5)
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, "/launch/upcoming/", paths[0])
	assert.Equal(t, "/launch/previous/", paths[1])
}

func TestSearchPropagatesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewWithBaseURL(srv.URL).Search(context.Background(), "starlink", 100)
	require.Error(t, err)
}
