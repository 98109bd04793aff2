package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const historyRows = 10

// SyncPanelModel renders the sync manager snapshot: account, state,
// pending changes, open conflicts and recent history. Conflicts are
// resolved from here with the keep-local/remote/both strategies.
type SyncPanelModel struct {
	ctx  context.Context
	sync syncManager

	snapshot service.SyncSnapshot
	back     string
	idx      int
	busy     bool
	status   string
	errMsg   string
}

func NewSyncPanelModel(ctx context.Context, sync syncManager) *SyncPanelModel {
	return &SyncPanelModel{ctx: ctx, sync: sync, back: pagePicker}
}

func (m *SyncPanelModel) Init() tea.Cmd {
	return m.cmdRefresh()
}

func (m *SyncPanelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openSyncPanelMsg:
		if msg.back != "" {
			m.back = msg.back
		}
		m.status = ""
		m.errMsg = ""
		return m, m.cmdRefresh()
	case syncSnapshotMsg:
		m.snapshot = msg.snapshot
		m.idx = clamp(m.idx, len(m.snapshot.Conflicts))
		return m, nil
	case refreshedMsg:
		return m, nil
	case resolvedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Конфликт разрешён: " + resolutionLabel(msg.resolution)
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *SyncPanelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.snapshot.Conflicts)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.reload):
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.keepLocal):
		return m.resolve(models.KeepLocal)
	case key.Matches(msg, keys.keepRemote):
		return m.resolve(models.KeepRemote)
	case key.Matches(msg, keys.keepBoth):
		return m.resolve(models.KeepBoth)
	case key.Matches(msg, keys.esc):
		back := m.back
		return m, func() tea.Msg { return NavigateTo{Page: back} }
	}
	return m, nil
}

func (m *SyncPanelModel) resolve(resolution models.ConflictResolution) (tea.Model, tea.Cmd) {
	if m.busy || m.idx >= len(m.snapshot.Conflicts) {
		return m, nil
	}
	m.busy = true
	m.status = ""
	return m, m.cmdResolve(m.snapshot.Conflicts[m.idx].ID, resolution)
}

func (m *SyncPanelModel) View() string {
	snap := m.snapshot
	var b strings.Builder

	b.WriteString("Аккаунт       │ ")
	if snap.User != nil {
		b.WriteString(snap.User.Email)
	} else {
		b.WriteString("вход не выполнен (envkeeper login)")
	}
	b.WriteString("\nСостояние     │ ")
	b.WriteString(syncStateLabel(snap.State))
	b.WriteString("\nПоследняя     │ ")
	if snap.LastSync != nil {
		b.WriteString(snap.LastSync.Local().Format(time.DateTime))
	} else {
		b.WriteString("-")
	}
	fmt.Fprintf(&b, "\nНе отправлено │ %d\n", snap.PendingChanges)

	if snap.LastOutcome != nil {
		o := snap.LastOutcome
		fmt.Fprintf(&b, "Итог          │ отправлено %d, получено %d, конфликтов %d\n", o.Pushed, o.Pulled, o.Conflicts)
	}
	if snap.LastError != "" {
		b.WriteString(errorStyle.Render("Ошибка        │ " + snap.LastError))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Конфликты"))
	b.WriteString("\n")
	if len(snap.Conflicts) == 0 {
		b.WriteString("нет\n")
	}
	for i, c := range snap.Conflicts {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		row := fmt.Sprintf("%s %-12s │ локально %s │ сервер %s",
			cursor, fitText(c.ProjectID, 12),
			c.LocalModifiedAt.Local().Format(time.DateTime),
			c.RemoteModifiedAt.Local().Format(time.DateTime))
		if i == m.idx {
			row = selectedRowStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("История"))
	b.WriteString("\n")
	if len(snap.History) == 0 {
		b.WriteString("пусто\n")
	}
	for i, event := range snap.History {
		if i == historyRows {
			break
		}
		fmt.Fprintf(&b, "%s  %-9s %s\n",
			event.Timestamp.Local().Format(time.DateTime), event.Type, fitText(event.Message, 60))
	}

	if m.busy {
		b.WriteString("\nРазрешение конфликта...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(titleStyle.Render("СИНХРОНИЗАЦИЯ"), strings.TrimRight(b.String(), "\n"),
		"s: синхр. │ u: обновить │ 1: оставить локальное │ 2: взять с сервера │ 3: оставить оба │ esc: назад")
}

func (m *SyncPanelModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	sync := m.sync
	return func() tea.Msg {
		sync.RefreshStatus(ctx)
		sync.RefreshHistory(ctx, service.DefaultHistoryLimit)
		return refreshedMsg{}
	}
}

func (m *SyncPanelModel) cmdResolve(conflictID string, resolution models.ConflictResolution) tea.Cmd {
	ctx := m.ctx
	sync := m.sync
	return func() tea.Msg {
		err := sync.ResolveConflict(ctx, conflictID, resolution, nil)
		return resolvedMsg{resolution: resolution, err: err}
	}
}

func syncStateLabel(state models.SyncState) string {
	switch state.Kind() {
	case models.SyncIdle:
		return "готово"
	case models.SyncSyncing:
		return "синхронизация"
	case models.SyncConflict:
		return "есть конфликты"
	case models.SyncError:
		return "ошибка: " + state.Message()
	default:
		return "нет подключения"
	}
}

func resolutionLabel(resolution models.ConflictResolution) string {
	switch resolution {
	case models.KeepLocal:
		return "оставлена локальная версия"
	case models.KeepRemote:
		return "взята версия с сервера"
	case models.KeepBoth:
		return "сохранены обе версии"
	default:
		return "объединено"
	}
}
