package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	type blobInfo struct {
		Key     string `json:"key"`
		Version int64  `json:"version"`
	}

	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{"blob list", []blobInfo{{"envsync/projects/p1", 3}}, http.StatusOK, `[{"key":"envsync/projects/p1","version":3}]`},
		{"created", blobInfo{"envsync/vault/key", 1}, http.StatusCreated, `{"key":"envsync/vault/key","version":1}`},
		{"nil", nil, http.StatusOK, "null"},
		{"empty object", struct{}{}, http.StatusConflict, "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteJSON(rec, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWriteJSON_UnmarshalableData(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
