package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/store"
	"github.com/MKhiriev/go-env-keeper/models"
)

// DefaultHistoryLimit is the number of events SyncManager keeps after a
// refresh.
const DefaultHistoryLimit = 50

// SyncSnapshot is an immutable view of [SyncManager]. Slices are copies.
type SyncSnapshot struct {
	State          models.SyncState
	LastSync       *time.Time
	PendingChanges int
	User           *models.User
	Conflicts      []models.ConflictRecord
	History        []models.SyncEvent
	Loading        bool
	LastError      string
	LastOutcome    *models.SyncOutcome
}

// SyncManager owns the sync state of the client. It drives a [RemoteSync]
// and persists the session between runs. All methods are safe for
// concurrent use; no lock is held while the remote is called.
type SyncManager struct {
	remote   RemoteSync
	sessions store.SessionStore
	logger   *logger.Logger
	now      func() time.Time

	historyLimit int

	mu          sync.Mutex
	state       models.SyncState
	lastSync    *time.Time
	pending     int
	user        *models.User
	conflicts   []models.ConflictRecord
	history     []models.SyncEvent
	loading     int
	lastError   string
	lastOutcome *models.SyncOutcome

	subscribers map[int]chan SyncSnapshot
	nextSubID   int
}

// NewSyncManager returns a disconnected manager. Call RestoreSession once
// at startup to pick up a saved session.
func NewSyncManager(remote RemoteSync, sessions store.SessionStore, logger *logger.Logger) *SyncManager {
	return &SyncManager{
		remote:       remote,
		sessions:     sessions,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
		historyLimit: DefaultHistoryLimit,
		state:        models.StateDisconnected(),
		subscribers:  make(map[int]chan SyncSnapshot),
	}
}

// ── state access ────────────────────────────────────────────────────────────

// State returns the current state.
func (m *SyncManager) State() models.SyncState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Connected reports whether a session is active.
func (m *SyncManager) Connected() bool {
	return !m.State().Is(models.SyncDisconnected)
}

// Snapshot returns a copy of the whole manager state.
func (m *SyncManager) Snapshot() SyncSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *SyncManager) snapshotLocked() SyncSnapshot {
	snap := SyncSnapshot{
		State:          m.state,
		PendingChanges: m.pending,
		Conflicts:      append([]models.ConflictRecord(nil), m.conflicts...),
		History:        append([]models.SyncEvent(nil), m.history...),
		Loading:        m.loading > 0,
		LastError:      m.lastError,
	}
	if m.lastSync != nil {
		t := *m.lastSync
		snap.LastSync = &t
	}
	if m.user != nil {
		u := *m.user
		snap.User = &u
	}
	if m.lastOutcome != nil {
		o := *m.lastOutcome
		o.Errors = append([]string(nil), o.Errors...)
		snap.LastOutcome = &o
	}
	return snap
}

// Subscribe returns a channel receiving a snapshot after every change,
// starting with the current one. The channel keeps only the latest value.
// Calling the returned func unsubscribes and closes the channel.
func (m *SyncManager) Subscribe() (<-chan SyncSnapshot, func()) {
	ch := make(chan SyncSnapshot, 1)

	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = ch
	ch <- m.snapshotLocked()
	m.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subscribers, id)
			m.mu.Unlock()
			close(ch)
		})
	}
}

// publishLocked replaces whatever is buffered in each subscriber channel
// with the current snapshot. m.mu must be held.
func (m *SyncManager) publishLocked() {
	snap := m.snapshotLocked()
	for _, ch := range m.subscribers {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

// transition applies trigger and notifies subscribers.
func (m *SyncManager) transition(trigger syncTrigger, mutate func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = nextState(m.state, trigger)
	if mutate != nil {
		mutate()
	}
	m.publishLocked()
}

// ── session ─────────────────────────────────────────────────────────────────

// RestoreSession reinstates the saved session. It never fails: any problem
// leaves the manager disconnected.
func (m *SyncManager) RestoreSession(ctx context.Context) {
	log := logger.FromContext(ctx)

	session, err := m.sessions.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			log.Err(err).Str("func", "*SyncManager.RestoreSession").Msg("error loading saved session")
		}
		return
	}

	// Without a saved expiry the remote reads it from the token.
	if !session.ExpiresAt.IsZero() && session.Expired(m.now()) {
		log.Info().Msg("saved session expired")
		m.clearSession(ctx)
		return
	}

	if err = m.remote.RestoreSession(ctx, session); err != nil {
		log.Err(err).Str("func", "*SyncManager.RestoreSession").Msg("error restoring session")
		m.clearSession(ctx)
		return
	}

	user := session.User
	m.transition(authenticated(), func() { m.user = &user })
	m.RefreshStatus(ctx)
}

func (m *SyncManager) clearSession(ctx context.Context) {
	if err := m.sessions.Clear(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*SyncManager.clearSession").Msg("error clearing session")
	}
}

// Login authenticates against the sync server and saves the session.
func (m *SyncManager) Login(ctx context.Context, email, password string) error {
	session, err := m.remote.Login(ctx, email, password)
	return m.afterAuth(ctx, session, err)
}

// Signup registers a new account and saves the session.
func (m *SyncManager) Signup(ctx context.Context, email, password, name string) error {
	session, err := m.remote.Signup(ctx, email, password, name)
	return m.afterAuth(ctx, session, err)
}

func (m *SyncManager) afterAuth(ctx context.Context, session models.Session, err error) error {
	log := logger.FromContext(ctx)

	if err != nil {
		m.transition(authFailed(), func() { m.lastError = err.Error() })
		return err
	}

	if saveErr := m.sessions.Save(ctx, session); saveErr != nil {
		log.Err(saveErr).Str("func", "*SyncManager.afterAuth").Msg("error saving session")
	}

	user := session.User
	m.transition(authenticated(), func() {
		m.user = &user
		m.lastError = ""
	})
	m.RefreshStatus(ctx)
	return nil
}

// Logout drops the session and every piece of remote state.
func (m *SyncManager) Logout(ctx context.Context) {
	m.remote.Logout(ctx)
	m.clearSession(ctx)

	m.transition(loggedOut(), func() {
		m.user = nil
		m.pending = 0
		m.lastSync = nil
		m.conflicts = nil
		m.history = nil
		m.lastError = ""
		m.lastOutcome = nil
	})
}

// ── refresh ─────────────────────────────────────────────────────────────────

// RefreshStatus replaces the local view with the remote status and open
// conflicts. Errors are logged and otherwise ignored.
func (m *SyncManager) RefreshStatus(ctx context.Context) {
	log := logger.FromContext(ctx)

	status, err := m.remote.Status(ctx)
	if err != nil {
		log.Err(err).Str("func", "*SyncManager.RefreshStatus").Msg("error fetching sync status")
		return
	}
	conflicts, err := m.remote.Conflicts(ctx)
	if err != nil {
		log.Err(err).Str("func", "*SyncManager.RefreshStatus").Msg("error fetching conflicts")
		return
	}

	m.transition(statusRefreshed(status.State), func() {
		m.lastSync = status.LastSync
		m.pending = status.PendingChanges
		if status.User != nil {
			m.user = status.User
		}
		m.conflicts = conflicts
	})
}

// RefreshHistory reloads up to limit history events; limit <= 0 uses
// [DefaultHistoryLimit]. Errors are logged and otherwise ignored.
func (m *SyncManager) RefreshHistory(ctx context.Context, limit int) {
	if limit <= 0 {
		limit = m.historyLimit
	}

	history, err := m.remote.History(ctx, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*SyncManager.RefreshHistory").Msg("error fetching sync history")
		return
	}

	m.mu.Lock()
	m.history = history
	m.publishLocked()
	m.mu.Unlock()
}

// ── sync ────────────────────────────────────────────────────────────────────

// Sync runs one sync. The counts and last sync time are recorded even when
// the outcome carries errors; in that case the returned error wraps ErrSync.
//
// Parameters:
//   - ctx: cancels the pull and push requests; its logger receives the
//     sync's trace ID.
//
// Returns:
//   - the outcome of the run, also published to subscribers;
//   - ErrNotAuthenticated while disconnected, with no state change;
//   - the transport error when the run could not start or finish.
//
// Conflicts found by the run move the state to Conflict even when the run
// also reported errors.
func (m *SyncManager) Sync(ctx context.Context) (models.SyncOutcome, error) {
	log := logger.FromContext(ctx)

	m.mu.Lock()
	if m.state.Is(models.SyncDisconnected) {
		m.mu.Unlock()
		return models.SyncOutcome{}, ErrNotAuthenticated
	}
	m.loading++
	m.state = nextState(m.state, syncRequested())
	m.publishLocked()
	m.mu.Unlock()

	outcome, err := m.remote.SyncNow(ctx)

	if err != nil {
		log.Err(err).Str("func", "*SyncManager.Sync").Msg("sync failed")
		m.transition(syncFailed(err), func() { m.lastError = err.Error() })
	} else {
		now := m.now()
		m.transition(syncCompleted(outcome), func() {
			o := outcome
			m.lastOutcome = &o
			m.lastSync = &now
			m.lastError = outcome.ErrorMessage()
		})
	}

	m.RefreshStatus(ctx)
	m.RefreshHistory(ctx, 0)

	m.mu.Lock()
	m.loading--
	m.publishLocked()
	m.mu.Unlock()

	switch {
	case err != nil:
		return outcome, err
	case len(outcome.Errors) > 0:
		return outcome, fmt.Errorf("%w: %s", ErrSync, outcome.ErrorMessage())
	default:
		return outcome, nil
	}
}

// ResolveConflict applies resolution to one open conflict and refreshes.
func (m *SyncManager) ResolveConflict(ctx context.Context, conflictID string, resolution models.ConflictResolution, resolvedData *string) error {
	if err := m.remote.ResolveConflict(ctx, conflictID, resolution, resolvedData); err != nil {
		m.mu.Lock()
		m.lastError = err.Error()
		m.publishLocked()
		m.mu.Unlock()
		return err
	}

	m.transition(conflictResolved(), nil)
	m.RefreshStatus(ctx)
	m.RefreshHistory(ctx, 0)
	return nil
}
