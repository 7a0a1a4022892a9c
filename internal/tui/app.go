// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/models"
)

// RootModel routes the login flow between the menu, login and sign-up
// pages. It ends the program once a login succeeds, leaving the account
// email in place for the main loop.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	buildInfo models.AppBuildInfo
	aboutOpen bool

	email      string
	quitByUser bool
}

func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := r.handleKey(msg); handled {
			return r, cmd
		}
	case NavigateTo:
		return r.navigate(msg)
	case LoginResult:
		if msg.Err == nil {
			r.email = msg.Email
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}

	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

// handleKey consumes the keys that belong to the router rather than the
// page. While the about window is open every key is consumed.
func (r *RootModel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	onMenu := r.onMenu()

	switch msg.String() {
	case "ctrl+c":
		r.quitByUser = true
		return true, tea.Quit
	case "v":
		if onMenu {
			r.aboutOpen = !r.aboutOpen
			return true, nil
		}
	case "esc":
		if r.aboutOpen {
			r.aboutOpen = false
			return true, nil
		}
	case "q":
		if onMenu && !r.aboutOpen {
			r.quitByUser = true
			return true, tea.Quit
		}
	}

	return r.aboutOpen, nil
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.aboutOpen = false
	r.current = next
	if nav.Payload == nil {
		return r, next.Init()
	}

	payload := nav.Payload
	return r, func() tea.Msg { return payload }
}

func (r RootModel) View() string {
	switch {
	case r.aboutOpen:
		return renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		return renderPage("GO PASS VAULT", "", "")
	}
	return r.current.View()
}

func (r RootModel) onMenu() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
