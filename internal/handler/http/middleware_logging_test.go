package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveLogged(t *testing.T, next http.HandlerFunc) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	l := zerolog.New(&buf)

	req := httptest.NewRequest(http.MethodGet, "/api/blobs/envsync/projects/p1", nil)
	req = req.WithContext(l.WithContext(req.Context()))
	newTestHandler(t, service.Services{}).withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestWithLogging(t *testing.T) {
	t.Run("records status and size", func(t *testing.T) {
		entry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("sealed"))
		})

		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, http.MethodGet, entry["method"])
		assert.Equal(t, "/api/blobs/envsync/projects/p1", entry["uri"])
		assert.EqualValues(t, http.StatusCreated, entry["status"])
		assert.EqualValues(t, 6, entry["size"])
		assert.Contains(t, entry, "duration")
	})

	t.Run("implicit 200", func(t *testing.T) {
		entry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {})
		assert.EqualValues(t, http.StatusOK, entry["status"])
		assert.EqualValues(t, 0, entry["size"])
	})

	t.Run("server error is logged as error", func(t *testing.T) {
		entry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		assert.Equal(t, "error", entry["level"])
	})
}
