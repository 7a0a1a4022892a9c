// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	emailCharLimit    = 254
	passwordCharLimit = 72
)

// LoginModel is the login screen. On success a [LoginResult] is produced
// and handled by [RootModel] to finish the login flow.
type LoginModel struct {
	ctx     context.Context
	session Session

	form       inputGroup
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, session Session) *LoginModel {
	return &LoginModel{
		ctx:     ctx,
		session: session,
		form: newInputGroup(
			newInput("email", emailCharLimit, false),
			newInput("password", passwordCharLimit, true),
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - [LoginResult]: clears the submitting state, shows the error if any.
//   - esc: back to the menu.
//   - tab / shift+tab: moves focus.
//   - enter: next field, or submit on the last one.
//
// Other keys go to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = authErrorMessage(result.Err)
			m.form.setValue(1, "")
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			m.form.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if !m.form.isLast() {
				m.form.focusNext()
				return m, nil
			}
			return m, m.submit()
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	creds := models.Credentials{
		Email:    strings.TrimSpace(m.form.value(0)),
		Password: m.form.value(1),
	}
	if creds.Email == "" || creds.Password == "" {
		m.errMsg = "email and password are required"
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		_, err := session.Login(ctx, creds)
		return LoginResult{Email: creds.NormalizedEmail(), Err: err}
	}
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(renderTable([][2]string{
		{"Email", m.form.view(0)},
		{"Password", m.form.view(1)},
	}))

	if m.submitting {
		b.WriteString("\n\n[Logging in...]")
	} else {
		b.WriteString("\n\n[Log in]")
	}
	renderMessages(&b, "", m.errMsg)

	return renderPage("LOG IN", b.String(), "esc: back │ tab: next field │ enter: submit")
}
