package http

import (
	"net/http"

	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/utils"
	"github.com/MKhiriev/go-env-keeper/models"
)

// listBlobs answers GET /api/blobs with the key and version of every blob
// under the optional prefix query parameter. Clients compare it with their
// sync metadata to plan a run.
func (h *Handler) listBlobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	prefix := r.URL.Query().Get("prefix")

	blobs, err := h.services.BlobService.ListBlobs(ctx, prefix)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Str("func", "*Handler.listBlobs").Str("prefix", prefix).Int("status", status).Msg("error listing blobs")
		return
	}

	response := models.BlobListResponse{
		Blobs:  blobs,
		Length: len(blobs),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
