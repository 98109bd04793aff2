package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrUserQuit   = errors.New("вышел из программы")
	errNoServices = errors.New("tui: client services are not configured")
)

// syncManager is the part of [service.SyncManager] the TUI drives.
type syncManager interface {
	Sync(ctx context.Context) (models.SyncOutcome, error)
	ResolveConflict(ctx context.Context, conflictID string, resolution models.ConflictResolution, resolvedData *string) error
	RefreshStatus(ctx context.Context)
	RefreshHistory(ctx context.Context, limit int)
	Subscribe() (<-chan service.SyncSnapshot, func())
}

type TUI struct {
	vault     service.ClientVaultService
	sync      syncManager
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.VaultService == nil || services.SyncManager == nil {
		return nil, errNoServices
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{
		vault:     services.VaultService,
		sync:      services.SyncManager,
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// Run blocks until the user quits. A ready start selection opens the diff
// viewer directly; otherwise the environment picker is shown first. A
// locked vault always asks for the master password.
func (t *TUI) Run(ctx context.Context, start Selection) error {
	snapshots, unsubscribe := t.sync.Subscribe()
	defer unsubscribe()

	root := t.newRoot(ctx, snapshots, start)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("tui program failed")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRoot(ctx context.Context, snapshots <-chan service.SyncSnapshot, start Selection) RootModel {
	next := NavigateTo{Page: pagePicker}
	if start.ready() {
		next = NavigateTo{Page: pageDiff, Payload: openDiffMsg{selection: start}}
	}

	pages := map[string]tea.Model{
		pageUnlock: NewUnlockModel(ctx, t.vault, next),
		pagePicker: NewPickerModel(ctx, t.vault),
		pageDiff:   NewDiffModel(ctx, t.vault),
		pageSync:   NewSyncPanelModel(ctx, t.sync),
	}

	startPage := pageUnlock
	var initial tea.Msg
	if t.vault.IsUnlocked() {
		startPage = next.Page
		initial = next.Payload
	}

	return NewRootModel(ctx, t.sync, snapshots, pages, startPage, initial, t.buildInfo)
}
