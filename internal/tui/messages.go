package tui

import (
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/models"
)

// NavigateTo asks [RootModel] to switch pages. A non-nil Payload is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// Selection names the two environments of a comparison.
type Selection struct {
	Project models.Project
	Left    models.Environment
	Right   models.Environment
}

func (s Selection) ready() bool {
	return s.Left.ID != "" && s.Right.ID != "" && s.Left.ID != s.Right.ID
}

type unlockResultMsg struct {
	err error
}

type projectsLoadedMsg struct {
	items []models.Project
	err   error
}

type environmentsLoadedMsg struct {
	items []models.Environment
	err   error
}

type openDiffMsg struct {
	selection Selection
}

type diffLoadedMsg struct {
	result models.DiffResult
	status string
	err    error
}

type openSyncPanelMsg struct {
	back string
}

type syncSnapshotMsg struct {
	snapshot service.SyncSnapshot
}

type syncDoneMsg struct {
	outcome models.SyncOutcome
	err     error
}

type refreshedMsg struct{}

type resolvedMsg struct {
	resolution models.ConflictResolution
	err        error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type clearFlashMsg struct{}
