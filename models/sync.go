// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SyncStateKind is the discriminator of [SyncState].
type SyncStateKind int

const (
	SyncDisconnected SyncStateKind = iota
	SyncIdle
	SyncSyncing
	SyncConflict
	SyncError
)

var syncStateNames = map[SyncStateKind]string{
	SyncDisconnected: "disconnected",
	SyncIdle:         "idle",
	SyncSyncing:      "syncing",
	SyncConflict:     "conflict",
	SyncError:        "error",
}

func (k SyncStateKind) String() string {
	if name, ok := syncStateNames[k]; ok {
		return name
	}
	return "unknown"
}

// SyncState is the single current mode of the local/remote relationship.
// Only the error mode carries data; use the State* constructors to build
// values so the message is never set on other modes.
type SyncState struct {
	kind    SyncStateKind
	message string
}

func StateDisconnected() SyncState { return SyncState{kind: SyncDisconnected} }
func StateIdle() SyncState         { return SyncState{kind: SyncIdle} }
func StateSyncing() SyncState      { return SyncState{kind: SyncSyncing} }
func StateConflict() SyncState     { return SyncState{kind: SyncConflict} }

// StateError builds the error mode with the given message.
func StateError(message string) SyncState {
	return SyncState{kind: SyncError, message: message}
}

// Kind returns the discriminator.
func (s SyncState) Kind() SyncStateKind { return s.kind }

// Message returns the error message; it is empty for every other mode.
func (s SyncState) Message() string { return s.message }

// Is reports whether s is of the given kind.
func (s SyncState) Is(kind SyncStateKind) bool { return s.kind == kind }

func (s SyncState) String() string {
	if s.kind == SyncError {
		return fmt.Sprintf("error: %s", s.message)
	}
	return s.kind.String()
}

// MarshalJSON encodes plain modes as a string ("idle") and the error mode
// as an object ({"error": "..."}).
func (s SyncState) MarshalJSON() ([]byte, error) {
	if s.kind == SyncError {
		return json.Marshal(map[string]string{"error": s.message})
	}
	return json.Marshal(s.kind.String())
}

// UnmarshalJSON is the inverse of [SyncState.MarshalJSON].
func (s *SyncState) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		for kind, n := range syncStateNames {
			if n == name && kind != SyncError {
				*s = SyncState{kind: kind}
				return nil
			}
		}
		return fmt.Errorf("unknown sync state %q", name)
	}

	var obj map[string]string
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	msg, ok := obj["error"]
	if !ok {
		return errors.New("sync state object must contain an error field")
	}
	*s = StateError(msg)
	return nil
}

// SyncStatus is a snapshot of the remote relationship as reported by the
// remote accessor.
type SyncStatus struct {
	State          SyncState  `json:"state"`
	LastSync       *time.Time `json:"last_sync,omitempty"`
	PendingChanges int        `json:"pending_changes"`
	User           *User      `json:"user,omitempty"`
}

// SyncOutcome is the result of one sync attempt. Errors do not prevent the
// counts from being recorded.
type SyncOutcome struct {
	Pushed    int      `json:"pushed"`
	Pulled    int      `json:"pulled"`
	Conflicts int      `json:"conflicts"`
	Errors    []string `json:"errors"`
}

// ErrorMessage joins the reported errors with "; ".
func (o SyncOutcome) ErrorMessage() string {
	return strings.Join(o.Errors, "; ")
}

// SyncEventType is the kind of a [SyncEvent].
type SyncEventType string

const (
	SyncEventCreated  SyncEventType = "created"
	SyncEventPush     SyncEventType = "push"
	SyncEventPull     SyncEventType = "pull"
	SyncEventUpdated  SyncEventType = "updated"
	SyncEventConflict SyncEventType = "conflict"
	SyncEventResolved SyncEventType = "resolved"
)

// SyncEvent is one entry of the sync history.
type SyncEvent struct {
	ID            string        `json:"id"`
	Type          SyncEventType `json:"event_type"`
	ProjectID     string        `json:"project_id,omitempty"`
	EnvironmentID string        `json:"environment_id,omitempty"`
	Key           string        `json:"variable_key,omitempty"`
	Message       string        `json:"details,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
}

// ConflictRecord describes a divergence the remote accessor cannot merge
// on its own. LocalValue and RemoteValue hold serialized project snapshots.
type ConflictRecord struct {
	ID               string    `json:"id"`
	ProjectID        string    `json:"project_id"`
	EnvironmentID    *string   `json:"environment_id,omitempty"`
	Key              *string   `json:"variable_key,omitempty"`
	LocalValue       string    `json:"local_value"`
	RemoteValue      string    `json:"remote_value"`
	LocalModifiedAt  time.Time `json:"local_modified"`
	RemoteModifiedAt time.Time `json:"remote_modified"`
}

// ConflictResolution is the user's choice for a [ConflictRecord].
type ConflictResolution string

const (
	KeepLocal  ConflictResolution = "keep_local"
	KeepRemote ConflictResolution = "keep_remote"
	KeepBoth   ConflictResolution = "keep_both"
	Merge      ConflictResolution = "merge"
)

// ParseConflictResolution accepts the canonical names and the short CLI
// forms "local", "remote", "both".
func ParseConflictResolution(s string) (ConflictResolution, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "keep_local", "local":
		return KeepLocal, true
	case "keep_remote", "remote":
		return KeepRemote, true
	case "keep_both", "both":
		return KeepBoth, true
	case "merge":
		return Merge, true
	default:
		return "", false
	}
}

// SyncMetadata tracks the replication state of one local project.
type SyncMetadata struct {
	ProjectID     string    `json:"project_id"`
	RemoteID      string    `json:"remote_id,omitempty"`
	LocalVersion  int64     `json:"local_version"`
	RemoteVersion *int64    `json:"remote_version,omitempty"`
	Dirty         bool      `json:"is_dirty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProjectSnapshot is the plaintext unit of replication. It is serialized
// to JSON and encrypted before leaving the client.
type ProjectSnapshot struct {
	Project      Project               `json:"project"`
	Environments []EnvironmentSnapshot `json:"environments"`
}

// EnvironmentSnapshot is one environment with its decrypted records.
type EnvironmentSnapshot struct {
	Environment Environment `json:"environment"`
	Records     []Record    `json:"records"`
}
