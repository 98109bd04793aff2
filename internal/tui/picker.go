package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type pickStage int

const (
	pickProject pickStage = iota
	pickLeft
	pickRight
)

// PickerModel walks the user through project, left and right environment
// and opens the diff viewer for the chosen pair.
type PickerModel struct {
	ctx   context.Context
	vault service.ClientVaultService

	stage    pickStage
	projects []models.Project
	envs     []models.Environment
	idx      int
	loading  bool
	errMsg   string

	project models.Project
	left    models.Environment
}

func NewPickerModel(ctx context.Context, vault service.ClientVaultService) *PickerModel {
	return &PickerModel{ctx: ctx, vault: vault}
}

func (m *PickerModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoadProjects()
}

func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.projects = msg.items
		m.idx = clamp(m.idx, len(m.projects))
		return m, nil
	case environmentsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.stage = pickProject
			return m, nil
		}
		m.errMsg = ""
		m.envs = msg.items
		m.idx = 0
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < m.rows()-1 {
			m.idx++
		}
	case key.Matches(msg, keys.esc):
		m.back()
	case key.Matches(msg, keys.syncPanel):
		return m, func() tea.Msg {
			return NavigateTo{Page: pageSync, Payload: openSyncPanelMsg{back: pagePicker}}
		}
	case key.Matches(msg, keys.enter):
		return m.choose()
	}
	return m, nil
}

func (m *PickerModel) choose() (tea.Model, tea.Cmd) {
	if m.loading || m.idx >= m.rows() {
		return m, nil
	}

	switch m.stage {
	case pickProject:
		m.project = m.projects[m.idx]
		m.stage = pickLeft
		m.loading = true
		m.envs = nil
		return m, m.cmdLoadEnvironments(m.project.ID)
	case pickLeft:
		if len(m.envs) < 2 {
			m.errMsg = "В проекте меньше двух окружений"
			return m, nil
		}
		m.left = m.envs[m.idx]
		m.stage = pickRight
		m.errMsg = ""
		if m.idx == 0 {
			m.idx = 1
		} else {
			m.idx = 0
		}
		return m, nil
	default:
		right := m.envs[m.idx]
		if right.ID == m.left.ID {
			m.errMsg = "Выберите другое окружение"
			return m, nil
		}
		m.errMsg = ""
		sel := Selection{Project: m.project, Left: m.left, Right: right}
		return m, func() tea.Msg {
			return NavigateTo{Page: pageDiff, Payload: openDiffMsg{selection: sel}}
		}
	}
}

func (m *PickerModel) back() {
	m.errMsg = ""
	switch m.stage {
	case pickRight:
		m.stage = pickLeft
		m.idx = indexOfEnvironment(m.envs, m.left.ID)
	case pickLeft:
		m.stage = pickProject
		m.idx = indexOfProject(m.projects, m.project.ID)
	}
}

func (m *PickerModel) rows() int {
	if m.stage == pickProject {
		return len(m.projects)
	}
	return len(m.envs)
}

func (m *PickerModel) View() string {
	var b strings.Builder

	title, header, items := m.table()
	if m.loading {
		b.WriteString("Загрузка...\n")
	} else if len(items) == 0 {
		if m.stage == pickProject {
			b.WriteString("Нет проектов. Создайте проект: envkeeper project create <имя>\n")
		} else {
			b.WriteString("Нет окружений\n")
		}
	} else {
		renderTable(&b, header, items, m.idx)
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(titleStyle.Render(title), strings.TrimRight(b.String(), "\n"),
		"enter: выбрать │ ↑/↓: навигация │ esc: назад │ p: синхронизация │ s: синхр. │ v: версия")
}

func (m *PickerModel) table() (string, string, []string) {
	switch m.stage {
	case pickProject:
		items := make([]string, len(m.projects))
		for i, p := range m.projects {
			items[i] = p.Name
		}
		return "ПРОЕКТЫ", "Проект", items
	case pickLeft:
		return "ПРОЕКТ " + m.project.Name + ": ЛЕВОЕ ОКРУЖЕНИЕ", "Окружение", environmentNames(m.envs, "")
	default:
		return "ПРОЕКТ " + m.project.Name + ": ПРАВОЕ ОКРУЖЕНИЕ", "Окружение", environmentNames(m.envs, m.left.ID)
	}
}

func renderTable(b *strings.Builder, header string, items []string, selected int) {
	idColWidth := lipgloss.Width("ID")
	if w := lipgloss.Width(fmt.Sprintf("%d", len(items))); w > idColWidth {
		idColWidth = w
	}
	idColWidth += 2 // "<marker> <id>"

	nameColWidth := lipgloss.Width(header)
	for _, item := range items {
		if w := lipgloss.Width(item); w > nameColWidth {
			nameColWidth = w
		}
	}

	fmt.Fprintf(b, "%-*s │ %-*s\n", idColWidth, "ID", nameColWidth, header)
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", nameColWidth))
	b.WriteString("\n")

	for i, item := range items {
		cursor := " "
		if i == selected {
			cursor = ">"
		}
		row := fmt.Sprintf("%-*s │ %-*s", idColWidth, fmt.Sprintf("%s %d", cursor, i+1), nameColWidth, item)
		if i == selected {
			row = selectedRowStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
}

func environmentNames(envs []models.Environment, markedID string) []string {
	names := make([]string, len(envs))
	for i, env := range envs {
		name := fmt.Sprintf("%s (%s)", env.Name, env.Type)
		if env.ID == markedID {
			name += " ← слева"
		}
		names[i] = name
	}
	return names
}

func indexOfProject(projects []models.Project, id string) int {
	for i, p := range projects {
		if p.ID == id {
			return i
		}
	}
	return 0
}

func indexOfEnvironment(envs []models.Environment, id string) int {
	for i, env := range envs {
		if env.ID == id {
			return i
		}
	}
	return 0
}

func (m *PickerModel) cmdLoadProjects() tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	return func() tea.Msg {
		items, err := vault.ListProjects(ctx)
		return projectsLoadedMsg{items: items, err: err}
	}
}

func (m *PickerModel) cmdLoadEnvironments(projectID string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	return func() tea.Msg {
		items, err := vault.ListEnvironments(ctx, projectID)
		return environmentsLoadedMsg{items: items, err: err}
	}
}
