// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuthTokens is the credential pair handed out by the sync server.
type AuthTokens struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Session is the persisted authentication of the client. It is written on
// every successful login/signup and read once at startup.
type Session struct {
	Tokens    AuthTokens `json:"tokens"`
	User      User       `json:"user"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// Expired reports whether the session is no longer usable at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
