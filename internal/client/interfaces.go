// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-env-keeper/internal/tui"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UserInterface is the interactive front end run by [App].
type UserInterface interface {
	Run(ctx context.Context, start tui.Selection) error
}

// BackgroundWorkers run next to the user interface for the lifetime of
// [App].
type BackgroundWorkers interface {
	Run(ctx context.Context)
	Stop()
}
