package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	keyColWidth   = 28
	valueColWidth = 24
	maskedValue   = "••••••"
)

// diffTabs are the kind filters in tab order.
var diffTabs = []string{
	models.DiffFilterAll,
	models.DiffAdded.String(),
	models.DiffRemoved.String(),
	models.DiffModified.String(),
	models.DiffUnchanged.String(),
}

var diffTabLabels = map[string]string{
	models.DiffFilterAll:          "все",
	models.DiffAdded.String():     "добавлено",
	models.DiffRemoved.String():   "удалено",
	models.DiffModified.String():  "изменено",
	models.DiffUnchanged.String(): "без изменений",
}

// DiffModel shows the comparison of two environments. The visible rows are
// the kind tab filter followed by the search filter.
type DiffModel struct {
	ctx   context.Context
	vault service.ClientVaultService

	selection Selection
	result    models.DiffResult
	loaded    bool
	loading   bool

	tab       int
	search    textinput.Model
	searching bool
	idx       int
	reveal    bool

	status string
	errMsg string
}

func NewDiffModel(ctx context.Context, vault service.ClientVaultService) *DiffModel {
	search := textinput.New()
	search.Placeholder = "ключ или значение"
	search.CharLimit = 128
	search.Width = 40
	search.Prompt = ""

	return &DiffModel{ctx: ctx, vault: vault, search: search}
}

func (m *DiffModel) Init() tea.Cmd {
	return nil
}

func (m *DiffModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openDiffMsg:
		m.selection = msg.selection
		m.loaded = false
		m.tab = 0
		m.idx = 0
		m.search.SetValue("")
		m.status = ""
		m.errMsg = ""
		m.loading = true
		return m, m.cmdCompare()
	case diffLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = diffErrorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.result = msg.result
		m.loaded = true
		m.idx = clamp(m.idx, len(m.visible()))
		if msg.status != "" {
			m.status = msg.status
			return m, cmdClearStatus()
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось скопировать: " + msg.err.Error()
			return m, nil
		}
		m.status = "Сводка скопирована в буфер обмена"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *DiffModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc, keys.enter) {
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.idx = clamp(m.idx, len(m.visible()))
	return m, cmd
}

func (m *DiffModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.visible())-1 {
			m.idx++
		}
	case key.Matches(msg, keys.tab, keys.right):
		m.tab = (m.tab + 1) % len(diffTabs)
		m.idx = 0
	case key.Matches(msg, keys.backtab, keys.left):
		m.tab = (m.tab - 1 + len(diffTabs)) % len(diffTabs)
		m.idx = 0
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.reveal):
		m.reveal = !m.reveal
	case key.Matches(msg, keys.reload):
		if m.selection.ready() && !m.loading {
			m.loading = true
			return m, m.cmdCompare()
		}
	case key.Matches(msg, keys.promoteLTR):
		return m.promote(models.LeftToRight)
	case key.Matches(msg, keys.promoteRTL):
		return m.promote(models.RightToLeft)
	case key.Matches(msg, keys.copy):
		if m.loaded {
			return m, cmdCopyToClipboard(service.FormatSummary(m.result, m.selection.Left.Name, m.selection.Right.Name))
		}
	case key.Matches(msg, keys.syncPanel):
		return m, func() tea.Msg {
			return NavigateTo{Page: pageSync, Payload: openSyncPanelMsg{back: pageDiff}}
		}
	case key.Matches(msg, keys.esc):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.idx = 0
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pagePicker} }
	}
	return m, nil
}

func (m *DiffModel) promote(direction models.Direction) (tea.Model, tea.Cmd) {
	entry, ok := m.current()
	if !ok || m.loading {
		return m, nil
	}
	m.loading = true
	m.status = ""
	return m, m.cmdPromote(entry, direction)
}

func (m *DiffModel) capturesInput() bool { return m.searching }

func (m *DiffModel) visible() []models.DiffEntry {
	return service.FilterBySearch(service.FilterByKind(m.result, diffTabs[m.tab]), m.search.Value())
}

func (m *DiffModel) current() (models.DiffEntry, bool) {
	entries := m.visible()
	if m.idx < 0 || m.idx >= len(entries) {
		return models.DiffEntry{}, false
	}
	return entries[m.idx], true
}

func (m *DiffModel) View() string {
	title := fmt.Sprintf("СРАВНЕНИЕ: %s │ %s ↔ %s",
		m.selection.Project.Name, m.selection.Left.Name, m.selection.Right.Name)

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\nПоиск: [")
	b.WriteString(m.search.View())
	b.WriteString("]\n\n")

	switch {
	case m.loading && !m.loaded:
		b.WriteString("Загрузка...\n")
	case !m.loaded:
		b.WriteString("-\n")
	default:
		m.renderEntries(&b)
		stats := service.Statistics(m.result)
		fmt.Fprintf(&b, "\nВсего ключей: %d │ различий: %d\n", stats.TotalRecords, stats.TotalChanges)
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

	hotKeys := "tab: вид │ /: поиск │ >: влево→вправо │ <: вправо→влево │ c: копировать сводку │ r: значения │ u: обновить │ s: синхр. │ p: синхронизация │ esc: назад"
	if m.searching {
		hotKeys = "enter/esc: завершить поиск"
	}
	return renderPage(titleStyle.Render(title), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *DiffModel) renderTabs() string {
	tabs := make([]string, len(diffTabs))
	for i, filter := range diffTabs {
		label := fmt.Sprintf("%s %d", diffTabLabels[filter], len(service.FilterByKind(m.result, filter)))
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = inactiveTabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *DiffModel) renderEntries(b *strings.Builder) {
	entries := m.visible()
	if len(entries) == 0 {
		b.WriteString("Нет записей\n")
		return
	}

	fmt.Fprintf(b, "    %-*s │ %-*s │ %-*s\n",
		keyColWidth, "Ключ", valueColWidth, m.selection.Left.Name, valueColWidth, m.selection.Right.Name)
	b.WriteString(strings.Repeat("─", 4+keyColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", valueColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", valueColWidth))
	b.WriteString("\n")

	for i, entry := range entries {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		row := fmt.Sprintf("%s %s  %-*s │ %-*s │ %-*s",
			cursor,
			kindSign(entry.Kind),
			keyColWidth, fitText(entry.Key, keyColWidth),
			valueColWidth, fitText(m.displayValue(entry.LeftValue, entry.LeftRecord), valueColWidth),
			valueColWidth, fitText(m.displayValue(entry.RightValue, entry.RightRecord), valueColWidth),
		)
		row = kindStyle(entry.Kind).Render(row)
		if i == m.idx {
			row = selectedRowStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
}

func (m *DiffModel) displayValue(value *string, record *models.Record) string {
	if value == nil {
		return "-"
	}
	if record != nil && record.Secret && !m.reveal {
		return maskedValue
	}
	return valueOrDash(value)
}

func kindSign(kind models.DiffKind) string {
	switch kind {
	case models.DiffAdded:
		return "+"
	case models.DiffRemoved:
		return "-"
	case models.DiffModified:
		return "~"
	default:
		return "="
	}
}

func kindStyle(kind models.DiffKind) lipgloss.Style {
	switch kind {
	case models.DiffAdded:
		return addedStyle
	case models.DiffRemoved:
		return removedStyle
	case models.DiffModified:
		return modifiedStyle
	default:
		return unchangedStyle
	}
}

func (m *DiffModel) cmdCompare() tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	sel := m.selection
	return func() tea.Msg {
		result, err := vault.Compare(ctx, sel.Left.ID, sel.Right.ID)
		return diffLoadedMsg{result: result, err: err}
	}
}

func (m *DiffModel) cmdPromote(entry models.DiffEntry, direction models.Direction) tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	sel := m.selection
	return func() tea.Msg {
		result, err := vault.PromoteEntry(ctx, entry, direction, sel.Left.ID, sel.Right.ID)
		if err != nil {
			return diffLoadedMsg{err: err}
		}
		return diffLoadedMsg{result: result, status: promotedMessage(entry, direction, sel)}
	}
}

func promotedMessage(entry models.DiffEntry, direction models.Direction, sel Selection) string {
	switch {
	case entry.Kind == models.DiffAdded && direction == models.LeftToRight:
		return fmt.Sprintf("%s добавлен в %s", entry.Key, sel.Left.Name)
	case entry.Kind == models.DiffRemoved && direction == models.RightToLeft:
		return fmt.Sprintf("%s добавлен в %s", entry.Key, sel.Right.Name)
	case entry.Kind == models.DiffModified && direction == models.LeftToRight:
		return fmt.Sprintf("%s обновлён в %s", entry.Key, sel.Right.Name)
	case entry.Kind == models.DiffModified:
		return fmt.Sprintf("%s обновлён в %s", entry.Key, sel.Left.Name)
	default:
		return fmt.Sprintf("%s: переносить нечего", entry.Key)
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
