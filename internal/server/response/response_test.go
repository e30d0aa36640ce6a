package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitwatch/orbitwatch/pkg/errors"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, map[string]int{"count": 3})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode(t, rec)
	assert.Nil(t, resp.Error)
	assert.NotNil(t, resp.Data)
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "satellite not found", "44714")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "44714", resp.Error.Details)
}

func TestErrorFromType(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ErrorFromType(rec, errors.NewNotFoundError("satellite", "44714"))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("feed unavailable", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ErrorFromType(rec, errors.ErrFeedUnavailable)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("unclassified", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ErrorFromType(rec, assert.AnError)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
