package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-env-keeper/internal/app"
	"github.com/MKhiriev/go-env-keeper/internal/utils"
	"github.com/MKhiriev/go-env-keeper/models"
)

// blobHashing checks the integrity hash of a blob upload. The hash is the
// HMAC of the request's key, data and nonce under the shared hash key. The
// check is skipped when the server runs without a hash key.
func (h *Handler) blobHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.integrityCheck {
			next.ServeHTTP(w, r)
			return
		}

		h.logger.Debug().Str("func", "*Handler.blobHashing").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.blobHashing").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		var req models.BlobPutRequest
		if err := json.Unmarshal(body, &req); err != nil {
			h.logger.Err(err).Str("func", "*Handler.blobHashing").Msg("failed to decode JSON")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		hashedBody := utils.HashHex(req.HashPayload())
		if !utils.EqualHex(hashedBody, strings.ToLower(req.Hash)) {
			h.logger.Error().Str("func", "*Handler.blobHashing").
				Str("key", req.Key).
				Str("hash from request", req.Hash).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		h.logger.Debug().Str("func", "*Handler.blobHashing").
			Str("key", req.Key).
			Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
