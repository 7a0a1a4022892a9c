// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// NavigateTo switches the active page of a [RootModel]. A non-nil Payload
// is delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login flow when Err is nil.
type LoginResult struct {
	Email string
	Err   error
}

type RegisterResult struct {
	Email string
	Err   error
}

// RegisterSuccessNotice is shown by the menu after a sign-up.
type RegisterSuccessNotice struct {
	Email string
}

type refreshedMsg struct {
	err error
}

type unlockedMsg struct {
	err error
}

// viewLoadedMsg carries a decrypted entry. edit opens the form instead of
// the detail screen.
type viewLoadedMsg struct {
	view models.DecryptedView
	edit bool
	err  error
}

type savedMsg struct {
	updated bool
	err     error
}

type deletedMsg struct {
	title string
	err   error
}

type loggedOutMsg struct {
	err error
}
