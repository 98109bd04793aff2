package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageUnlock = "unlock"
	pagePicker = "picker"
	pageDiff   = "diff"
	pageSync   = "sync"
)

// inputCapturer is implemented by pages that own a focused text input.
// While it reports true, single-letter global hotkeys are passed through.
type inputCapturer interface {
	capturesInput() bool
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global hotkeys (ctrl+c, sync, build info)
// 3) handles NavigateTo messages
// 4) follows the sync manager subscription and renders the status line
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx     context.Context
	sync    syncManager
	pages   map[string]tea.Model
	current tea.Model
	initial tea.Msg

	snapshots <-chan service.SyncSnapshot
	snapshot  service.SyncSnapshot
	spinner   spinner.Model
	spinning  bool
	flash     string

	quitByUser    bool
	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage. initial, when not
// nil, is delivered to the start page right after Init.
func NewRootModel(
	ctx context.Context,
	sync syncManager,
	snapshots <-chan service.SyncSnapshot,
	pages map[string]tea.Model,
	startPage string,
	initial tea.Msg,
	buildInfo models.AppBuildInfo,
) RootModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return RootModel{
		ctx:       ctx,
		sync:      sync,
		snapshots: snapshots,
		pages:     pages,
		current:   pages[startPage],
		initial:   initial,
		spinner:   s,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForSnapshot(r.snapshots)}
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	if r.initial != nil {
		initial := r.initial
		cmds = append(cmds, func() tea.Msg { return initial })
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if model, cmd, handled := r.handleGlobalKey(keyMsg); handled {
			return model, cmd
		}
	}

	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	switch msg := msg.(type) {
	case syncSnapshotMsg:
		r.snapshot = msg.snapshot
		cmds := []tea.Cmd{waitForSnapshot(r.snapshots)}
		cmds = append(cmds, r.broadcast(msg)...)
		if r.snapshot.Loading && !r.spinning {
			r.spinning = true
			cmds = append(cmds, r.spinner.Tick)
		}
		return r, tea.Batch(cmds...)
	case spinner.TickMsg:
		if !r.snapshot.Loading {
			r.spinning = false
			return r, nil
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd
	case syncDoneMsg:
		r.flash = syncOutcomeMessage(msg.outcome, msg.err)
		return r, cmdClearFlash()
	case clearFlashMsg:
		r.flash = ""
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if key.Matches(msg, keys.forceQuit) {
		r.quitByUser = true
		return r, tea.Quit, true
	}

	if r.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			r.showBuildInfo = false
		}
		return r, nil, true
	}

	if r.typing() {
		return r, nil, false
	}

	switch {
	case key.Matches(msg, keys.buildInfo) && r.isPickerPage():
		r.showBuildInfo = true
		return r, nil, true
	case key.Matches(msg, keys.sync) && !r.isUnlockPage():
		if r.snapshot.Loading {
			return r, nil, true
		}
		return r, cmdSync(r.ctx, r.sync), true
	}
	return r, nil, false
}

// broadcast hands msg to every registered page.
func (r *RootModel) broadcast(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	for name, page := range r.pages {
		updated, cmd := page.Update(msg)
		r.pages[name] = updated
		if page == r.current {
			r.current = updated
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("ENVKEEPER", "", "")
	}
	return r.current.View() + "\n\n" + r.statusLine()
}

func (r RootModel) statusLine() string {
	var b strings.Builder
	b.WriteString("Синхронизация: ")
	b.WriteString(syncStateLabel(r.snapshot.State))
	if r.snapshot.Loading {
		b.WriteString(" ")
		b.WriteString(r.spinner.View())
	}
	if r.snapshot.PendingChanges > 0 {
		b.WriteString(" │ не отправлено: ")
		b.WriteString(strconv.Itoa(r.snapshot.PendingChanges))
	}
	if r.snapshot.LastSync != nil {
		b.WriteString(" │ последняя: ")
		b.WriteString(r.snapshot.LastSync.Local().Format(time.TimeOnly))
	}
	line := helpStyle.Render(b.String())
	if r.flash != "" {
		line += "\n" + r.flash
	}
	return line
}

func (r RootModel) typing() bool {
	c, ok := r.current.(inputCapturer)
	return ok && c.capturesInput()
}

func (r RootModel) isPickerPage() bool {
	_, ok := r.current.(*PickerModel)
	return ok
}

func (r RootModel) isUnlockPage() bool {
	_, ok := r.current.(*UnlockModel)
	return ok
}

func waitForSnapshot(ch <-chan service.SyncSnapshot) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return nil
		}
		return syncSnapshotMsg{snapshot: snap}
	}
}

func cmdSync(ctx context.Context, sync syncManager) tea.Cmd {
	return func() tea.Msg {
		outcome, err := sync.Sync(ctx)
		return syncDoneMsg{outcome: outcome, err: err}
	}
}

func cmdClearFlash() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearFlashMsg{}
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
