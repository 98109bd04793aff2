package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-env-keeper/internal/app"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/internal/utils"
)

// auth admits requests carrying a valid bearer token and puts the token's
// user ID into the request context. Everything else gets 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		raw, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("rejected request without bearer token")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), raw)
		if errors.Is(err, service.ErrTokenIsExpired) {
			log.Debug().Err(err).Msg("rejected expired token")
			http.Error(w, app.MsgTokenIsExpired, http.StatusUnauthorized)
			return
		}
		if err != nil {
			log.Warn().Err(err).Msg("rejected invalid token")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), token.UserID)))
	})
}
