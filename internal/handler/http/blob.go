package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-env-keeper/internal/app"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/utils"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, ok := blobKeyFromRequest(w, r)
	if !ok {
		return
	}

	blob, err := h.services.BlobService.GetBlob(r.Context(), key)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Str("func", "*Handler.getBlob").Str("key", key).Int("status", status).Msg("error getting blob")
		return
	}

	utils.WriteJSON(w, blob, http.StatusOK)
}

func (h *Handler) putBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.BlobPutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.putBlob").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	resp, err := h.services.BlobService.PutBlob(r.Context(), req)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Str("func", "*Handler.putBlob").
			Str("key", req.Key).
			Int64("base_version", req.BaseVersion).
			Int("status", status).
			Msg("error storing blob")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) deleteBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, ok := blobKeyFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.BlobService.DeleteBlob(r.Context(), key); err != nil {
		status := writeError(w, err)
		log.Err(err).Str("func", "*Handler.deleteBlob").Str("key", key).Int("status", status).Msg("error deleting blob")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// blobKeyFromRequest reads the key from the /api/blobs/* wildcard. The
// wildcard is still escaped when the router matched on the raw path.
func blobKeyFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := chi.URLParam(r, "*")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(key)
		if err != nil {
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return "", false
		}
		key = unescaped
	}

	if strings.TrimSpace(key) == "" {
		http.Error(w, app.MsgEmptyBlobKey, http.StatusBadRequest)
		return "", false
	}
	return key, true
}
