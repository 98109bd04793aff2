package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-env-keeper/models"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")

	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
	// ErrServerFailure is an unexpected failure reported by the sync server.
	ErrServerFailure = errors.New("sync server failure")

	// ErrIntegrityCheckFailed is returned when an uploaded blob does not
	// match its hash.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")
)

// vault
var (
	// ErrVaultLocked is returned by every vault operation before Unlock.
	ErrVaultLocked = errors.New("vault is locked")
	// ErrDecryption wraps failures to open a stored value.
	ErrDecryption = errors.New("decryption failed")
	// ErrProjectAlreadyExists is returned when a project name is taken.
	ErrProjectAlreadyExists = errors.New("project already exists")
)

// reconciliation
var (
	// ErrPromotionNotAllowed is returned when an unchanged entry is promoted.
	ErrPromotionNotAllowed = errors.New("promotion is not allowed for unchanged entries")

	// ErrNotAuthenticated is returned by remote operations without a session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSync wraps the joined error list of a sync that reported errors.
	ErrSync = errors.New("sync failed")

	// ErrConflictNotFound is returned when resolving an unknown conflict.
	ErrConflictNotFound = errors.New("conflict not found")

	// ErrUnknownResolution is returned for a resolution outside the
	// four supported strategies.
	ErrUnknownResolution = errors.New("unknown conflict resolution")

	// ErrVaultKeyMismatch is returned by sync when the account already
	// holds a different vault key than this device.
	ErrVaultKeyMismatch = errors.New("local vault key differs from the account key")
)

// PromotionError describes a failed write of a promotion. Err is the
// underlying cause and is reachable through errors.Is / errors.As.
type PromotionError struct {
	Key       string
	Kind      models.DiffKind
	Direction models.Direction
	Err       error
}

func (e *PromotionError) Error() string {
	return fmt.Sprintf("promote %s entry %q %s: %v", e.Kind, e.Key, e.Direction, e.Err)
}

func (e *PromotionError) Unwrap() error {
	return e.Err
}
