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
	registerEmail = iota
	registerPassword
	registerRepeat
)

// RegisterModel is the sign-up screen. After a successful sign-up it goes
// back to the menu with a [RegisterSuccessNotice].
//
// The account password only authenticates the session. Entries are
// encrypted with a master password that is asked for on unlock and never
// sent to the server.
type RegisterModel struct {
	ctx     context.Context
	session Session

	form       inputGroup
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, session Session) *RegisterModel {
	return &RegisterModel{
		ctx:     ctx,
		session: session,
		form: newInputGroup(
			newInput("email", emailCharLimit, false),
			newInput("password", passwordCharLimit, true),
			newInput("repeat password", passwordCharLimit, true),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = authErrorMessage(result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    pageMenu,
				Payload: RegisterSuccessNotice{Email: result.Email},
			}
		}
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

func (m *RegisterModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	creds := models.Credentials{
		Email:    strings.TrimSpace(m.form.value(registerEmail)),
		Password: m.form.value(registerPassword),
	}
	switch {
	case creds.Email == "" || creds.Password == "":
		m.errMsg = "email and password are required"
		return nil
	case creds.Password != m.form.value(registerRepeat):
		m.errMsg = "passwords do not match"
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		user, err := session.Signup(ctx, creds)
		email := user.Email
		if email == "" {
			email = creds.NormalizedEmail()
		}
		return RegisterResult{Email: email, Err: err}
	}
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(renderTable([][2]string{
		{"Email", m.form.view(registerEmail)},
		{"Password", m.form.view(registerPassword)},
		{"Repeat password", m.form.view(registerRepeat)},
	}))

	if m.submitting {
		b.WriteString("\n\n[Signing up...]")
	} else {
		b.WriteString("\n\n[Sign up]")
	}
	renderMessages(&b, "", m.errMsg)

	return renderPage("SIGN UP", b.String(), "esc: back │ tab: next field │ enter: submit")
}
