package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-env-keeper/models"
)

func TestNextState(t *testing.T) {
	allStates := []models.SyncState{
		models.StateDisconnected(),
		models.StateIdle(),
		models.StateSyncing(),
		models.StateConflict(),
		models.StateError("boom"),
	}

	tests := []struct {
		name    string
		trigger syncTrigger
		want    func(current models.SyncState) models.SyncState
	}{
		{
			name:    "authenticated → Idle",
			trigger: authenticated(),
			want:    func(models.SyncState) models.SyncState { return models.StateIdle() },
		},
		{
			name:    "syncRequested → Syncing unless Disconnected",
			trigger: syncRequested(),
			want: func(c models.SyncState) models.SyncState {
				if c.Is(models.SyncDisconnected) {
					return c
				}
				return models.StateSyncing()
			},
		},
		{
			name:    "syncCompleted/clean → Idle",
			trigger: syncCompleted(models.SyncOutcome{Pushed: 2}),
			want:    func(models.SyncState) models.SyncState { return models.StateIdle() },
		},
		{
			name:    "syncCompleted/errors → Error(joined)",
			trigger: syncCompleted(models.SyncOutcome{Errors: []string{"Push failed: a", "Pull failed: b"}}),
			want: func(models.SyncState) models.SyncState {
				return models.StateError("Push failed: a; Pull failed: b")
			},
		},
		{
			name:    "syncCompleted/conflicts beat errors → Conflict",
			trigger: syncCompleted(models.SyncOutcome{Conflicts: 1, Errors: []string{"x"}}),
			want:    func(models.SyncState) models.SyncState { return models.StateConflict() },
		},
		{
			name:    "syncFailed → Error(err)",
			trigger: syncFailed(errors.New("offline")),
			want:    func(models.SyncState) models.SyncState { return models.StateError("offline") },
		},
		{
			name:    "conflictResolved → Idle",
			trigger: conflictResolved(),
			want:    func(models.SyncState) models.SyncState { return models.StateIdle() },
		},
		{
			name:    "statusRefreshed → reported state",
			trigger: statusRefreshed(models.StateError("remote")),
			want:    func(models.SyncState) models.SyncState { return models.StateError("remote") },
		},
		{
			name:    "loggedOut → Disconnected",
			trigger: loggedOut(),
			want:    func(models.SyncState) models.SyncState { return models.StateDisconnected() },
		},
		{
			name:    "authFailed → unchanged",
			trigger: authFailed(),
			want:    func(c models.SyncState) models.SyncState { return c },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, current := range allStates {
				assert.Equal(t, tc.want(current), nextState(current, tc.trigger), "from %s", current)
			}
		})
	}
}

func TestNextState_SyncFailedWithoutError(t *testing.T) {
	got := nextState(models.StateSyncing(), syncFailed(nil))
	assert.True(t, got.Is(models.SyncError))
	assert.NotEmpty(t, got.Message())
}
