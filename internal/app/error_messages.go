// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// envkeeper server handlers and the client error mapper.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. The client matches on the same strings to turn a
// transport error back into a domain error, so the wording is part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied email/password
	// combination does not match any existing account.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID
	// but none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgEmptyBlobKey is returned for blob requests without a key.
	MsgEmptyBlobKey = "empty blob key"

	// MsgIntegrityCheckFailed is returned when the upload hash does not
	// match the request payload.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgRegistrationFailed is returned when the signup handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a token.
	MsgLoginFailed = "login failed"

	// MsgLoginAlreadyExists is returned when a signup attempt is rejected
	// because the email is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgBlobNotFound is returned when a read or delete targets a blob
	// that does not exist for the current user.
	MsgBlobNotFound = "blob not found"

	// MsgVersionConflict is returned when an optimistic-locking check fails:
	// the base version supplied by the client no longer matches the stored
	// version. The client should pull before retrying.
	MsgVersionConflict = "version conflict, please sync"
)
