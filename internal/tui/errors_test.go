// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeServerUnavailableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "refused", err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), want: "Отсутствует сеть или Сервер недоступен"},
		{name: "timeout", err: errors.New("Get \"http://x\": context deadline exceeded"), want: "Отсутствует сеть или Сервер недоступен"},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeServerUnavailableError(tt.err))
		})
	}
}

func TestSyncOutcomeMessage(t *testing.T) {
	assert.Contains(t, syncOutcomeMessage(models.SyncOutcome{}, service.ErrNotAuthenticated), "envkeeper login")
	assert.Contains(t, syncOutcomeMessage(models.SyncOutcome{}, errors.New("no such host")), "Сервер недоступен")

	withErrors := models.SyncOutcome{Errors: []string{"push p1: boom", "pull p2: bang"}}
	msg := syncOutcomeMessage(withErrors, fmt.Errorf("%w: %s", service.ErrSync, withErrors.ErrorMessage()))
	assert.Contains(t, msg, "push p1: boom; pull p2: bang")

	assert.Contains(t, syncOutcomeMessage(models.SyncOutcome{Conflicts: 1}, nil), "конфликтов: 1")
}

func TestDiffErrorMessage(t *testing.T) {
	assert.Equal(t, "Значения совпадают, переносить нечего", diffErrorMessage(service.ErrPromotionNotAllowed))

	err := &service.PromotionError{Key: "API_KEY", Err: errors.New("locked")}
	assert.Equal(t, "не удалось перенести API_KEY: locked", diffErrorMessage(err))
}
