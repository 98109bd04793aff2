package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-env-keeper/internal/app"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/internal/store"
)

// errorResponse is the status and body written for a service error. The
// body is one of the app.Msg* strings the client maps back to an error.
type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrIntegrityCheckFailed, http.StatusBadRequest, app.MsgIntegrityCheckFailed},
	{service.ErrNotAuthenticated, http.StatusBadRequest, app.MsgNoUserIDProvided},
	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
	{store.ErrBlobNotFound, http.StatusNotFound, app.MsgBlobNotFound},
	{store.ErrVersionConflict, http.StatusConflict, app.MsgVersionConflict},
}

// responseFromError returns the status code and message for err. Unknown
// errors, including every storage failure, become 500.
func responseFromError(err error) (int, string) {
	for _, r := range errorResponses {
		if errors.Is(err, r.target) {
			return r.status, r.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func writeError(w http.ResponseWriter, err error) int {
	status, message := responseFromError(err)
	http.Error(w, message, status)
	return status
}
