// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// UnlockModel is the Bubble Tea model for the master password screen. It
// dispatches an async unlock of the local vault on submission and, on
// success, emits the navigation it was built with.
type UnlockModel struct {
	ctx   context.Context
	vault service.ClientVaultService
	next  NavigateTo

	input      textinput.Model
	submitting bool
	errMsg     string
}

// NewUnlockModel creates an [UnlockModel] with a focused, masked password input.
func NewUnlockModel(ctx context.Context, vault service.ClientVaultService, next NavigateTo) *UnlockModel {
	input := textinput.New()
	input.Placeholder = "мастер-пароль"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return &UnlockModel{
		ctx:   ctx,
		vault: vault,
		next:  next,
		input: input,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *UnlockModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. enter submits the password, every other
// key goes to the input.
func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case unlockResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = unlockErrorMessage(msg.err)
			m.input.SetValue("")
			return m, nil
		}
		m.errMsg = ""
		m.input.SetValue("")
		next := m.next
		return m, func() tea.Msg { return next }
	case tea.KeyMsg:
		if key.Matches(msg, keys.enter) {
			if m.submitting {
				return m, nil
			}
			password := m.input.Value()
			if strings.TrimSpace(password) == "" {
				m.errMsg = "Мастер-пароль обязателен"
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdUnlock(password)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *UnlockModel) View() string {
	var b strings.Builder
	b.WriteString("Мастер-пароль │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Открытие хранилища...]\n")
	} else {
		b.WriteString("\n[Открыть]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(titleStyle.Render("ХРАНИЛИЩЕ"), strings.TrimRight(b.String(), "\n"), "enter: подтвердить")
}

func (m *UnlockModel) capturesInput() bool { return true }

func (m *UnlockModel) cmdUnlock(password string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	return func() tea.Msg {
		return unlockResultMsg{err: vault.Unlock(ctx, password)}
	}
}
