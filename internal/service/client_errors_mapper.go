// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-env-keeper/internal/adapter"
	"github.com/MKhiriev/go-env-keeper/internal/app"
	"github.com/MKhiriev/go-env-keeper/internal/store"
)

// adapterErrors pairs a transport status and the server's message with the
// error the client acts on. The first match wins.
var adapterErrors = []struct {
	status  error
	message string
	err     error
}{
	{adapter.ErrBadRequest, app.MsgInvalidDataProvided, ErrInvalidDataProvided},
	{adapter.ErrBadRequest, app.MsgEmptyBlobKey, ErrInvalidDataProvided},
	{adapter.ErrBadRequest, app.MsgNoUserIDProvided, ErrNotAuthenticated},
	{adapter.ErrBadRequest, app.MsgIntegrityCheckFailed, ErrIntegrityCheckFailed},
	{adapter.ErrUnauthorized, app.MsgInvalidLoginPassword, ErrWrongPassword},
	{adapter.ErrUnauthorized, app.MsgTokenIsExpired, ErrTokenIsExpired},
	{adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid, ErrTokenIsExpiredOrInvalid},
	{adapter.ErrNotFound, app.MsgBlobNotFound, store.ErrBlobNotFound},
	{adapter.ErrConflict, app.MsgLoginAlreadyExists, store.ErrLoginAlreadyExists},
	{adapter.ErrConflict, app.MsgVersionConflict, store.ErrVersionConflict},
	{adapter.ErrBadGateway, app.MsgRegistrationFailed, ErrRegisterOnServer},
	{adapter.ErrBadGateway, app.MsgLoginFailed, ErrLoginOnServer},
	{adapter.ErrInternalServerError, app.MsgInternalServerError, ErrServerFailure},
}

// mapAdapterError turns a transport error into the service or store error
// named by the server's message. Unknown errors are returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := responseMessage(err)
	for _, e := range adapterErrors {
		if msg == e.message && errors.Is(err, e.status) {
			return e.err
		}
	}
	return err
}

// responseMessage returns the body part of "<status>: <body>".
func responseMessage(err error) string {
	_, body, found := strings.Cut(err.Error(), ": ")
	if !found {
		return err.Error()
	}
	return strings.TrimSpace(body)
}
