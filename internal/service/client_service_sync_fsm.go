package service

import "github.com/MKhiriev/go-env-keeper/models"

type syncTriggerKind int

const (
	triggerAuthenticated syncTriggerKind = iota
	triggerSyncRequested
	triggerSyncCompleted
	triggerSyncFailed
	triggerConflictResolved
	triggerStatusRefreshed
	triggerLoggedOut
	triggerAuthFailed
)

// syncTrigger is an event fed into nextState. Only the fields of its kind
// are read.
type syncTrigger struct {
	kind    syncTriggerKind
	outcome models.SyncOutcome
	err     error
	status  models.SyncState
}

func authenticated() syncTrigger    { return syncTrigger{kind: triggerAuthenticated} }
func syncRequested() syncTrigger    { return syncTrigger{kind: triggerSyncRequested} }
func conflictResolved() syncTrigger { return syncTrigger{kind: triggerConflictResolved} }
func loggedOut() syncTrigger        { return syncTrigger{kind: triggerLoggedOut} }
func authFailed() syncTrigger       { return syncTrigger{kind: triggerAuthFailed} }

func syncCompleted(outcome models.SyncOutcome) syncTrigger {
	return syncTrigger{kind: triggerSyncCompleted, outcome: outcome}
}

func syncFailed(err error) syncTrigger {
	return syncTrigger{kind: triggerSyncFailed, err: err}
}

func statusRefreshed(state models.SyncState) syncTrigger {
	return syncTrigger{kind: triggerStatusRefreshed, status: state}
}

// nextState is the transition function of the sync state machine. It is
// total: every (state, trigger) pair yields a state.
//
// Conflicts take precedence over errors when a sync completes. A sync
// cannot be requested while disconnected.
func nextState(current models.SyncState, trigger syncTrigger) models.SyncState {
	switch trigger.kind {
	case triggerAuthenticated, triggerConflictResolved:
		return models.StateIdle()

	case triggerSyncRequested:
		if current.Is(models.SyncDisconnected) {
			return current
		}
		return models.StateSyncing()

	case triggerSyncCompleted:
		switch {
		case trigger.outcome.Conflicts > 0:
			return models.StateConflict()
		case len(trigger.outcome.Errors) == 0:
			return models.StateIdle()
		default:
			return models.StateError(trigger.outcome.ErrorMessage())
		}

	case triggerSyncFailed:
		msg := "unknown error"
		if trigger.err != nil {
			msg = trigger.err.Error()
		}
		return models.StateError(msg)

	case triggerStatusRefreshed:
		return trigger.status

	case triggerLoggedOut:
		return models.StateDisconnected()

	default: // triggerAuthFailed
		return current
	}
}
