// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

type loopMode int

const (
	modeList loopMode = iota
	modeFilter
	modeUnlock
	modeDetail
	modeForm
	modeConfirmDelete
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// mainLoopModel drives the vault screens. Every vault call that may block on
// the network or on key derivation runs in a tea.Cmd; while one is running
// busy is set and only quitting is accepted.
type mainLoopModel struct {
	ctx       context.Context
	vault     Vault
	session   Session
	generator PasswordGenerator
	email     string

	mode   loopMode
	rows   []listRow
	idx    int
	hidden int

	filter textinput.Model
	unlock textinput.Model

	detail models.DecryptedView
	reveal bool

	form    recordForm
	pending listRow

	busy    string
	spinner spinner.Model
	status  string
	errMsg  string

	logout bool
}

func newMainLoopModel(ctx context.Context, v Vault, session Session, gen PasswordGenerator, email string) mainLoopModel {
	filter := newInput("filter by title or username", 256, false)
	unlock := newInput("master password", 1024, true)

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:       ctx,
		vault:     v,
		session:   session,
		generator: gen,
		email:     email,
		filter:    filter,
		unlock:    unlock,
		spinner:   s,
		busy:      "Loading",
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdRefresh())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case refreshedMsg:
		m.busy = ""
		if errors.Is(msg.err, vault.ErrStaleResponse) {
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = errorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.reload()
		return m, nil

	case unlockedMsg:
		m.busy = ""
		if msg.err != nil {
			m.errMsg = errorMessage(msg.err)
			m.mode = modeUnlock
			cmd := m.unlock.Focus()
			return m, cmd
		}
		m.mode = modeList
		m.errMsg = ""
		m.status = "vault unlocked"
		m.reload()
		return m, nil

	case viewLoadedMsg:
		m.busy = ""
		if msg.err != nil {
			m.errMsg = errorMessage(msg.err)
			m.reload()
			return m, nil
		}
		m.errMsg = ""
		if msg.edit {
			m.form = newRecordForm(&msg.view, false)
			m.mode = modeForm
			return m, textinput.Blink
		}
		m.detail = msg.view
		m.reveal = false
		m.mode = modeDetail
		return m, nil

	case savedMsg:
		m.busy = ""
		if msg.err != nil {
			m.form.errMsg = errorMessage(msg.err)
			return m, nil
		}
		m.closeForm()
		if msg.updated {
			m.filter.Reset()
			m.status = "entry updated, vault locked: unlock to see the changes"
		} else {
			m.status = "entry saved"
		}
		m.busy = "Refreshing"
		return m, m.cmdRefresh()

	case deletedMsg:
		m.busy = ""
		m.mode = modeList
		m.detail = models.DecryptedView{}
		m.pending = listRow{}
		if msg.err != nil {
			m.errMsg = errorMessage(msg.err)
		} else {
			m.errMsg = ""
			m.status = "entry \"" + msg.title + "\" deleted"
		}
		m.reload()
		return m, nil

	case loggedOutMsg:
		m.busy = ""
		m.logout = true
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.busy != "" {
			return m, nil
		}
		return m.handleKey(msg)
	}

	cmd := m.updateFocusedInput(msg)
	return m, cmd
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeFilter:
		return m.handleFilterKey(msg)
	case modeUnlock:
		return m.handleUnlockKey(msg)
	case modeDetail:
		return m.handleDetailKey(msg)
	case modeForm:
		return m.handleFormKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m mainLoopModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	unlocked := m.vault.State() == vault.Unlocked
	m.status = ""

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		m.busy = "Refreshing"
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.enter):
		row, ok := m.current()
		if !ok {
			return m, nil
		}
		if row.encrypted {
			cmd := m.startUnlock()
			return m, cmd
		}
		m.busy = "Decrypting"
		return m, m.cmdView(row.id, false)
	case key.Matches(msg, keys.unlock):
		if unlocked {
			return m, nil
		}
		cmd := m.startUnlock()
		return m, cmd
	case key.Matches(msg, keys.lock):
		if !unlocked {
			return m, nil
		}
		m.vault.Lock()
		m.filter.Reset()
		m.status = "vault locked"
		m.reload()
	case key.Matches(msg, keys.filter):
		if !unlocked {
			m.errMsg = "unlock the vault to filter entries"
			return m, nil
		}
		m.mode = modeFilter
		cmd := m.filter.Focus()
		return m, cmd
	case key.Matches(msg, keys.esc):
		if m.filter.Value() != "" {
			m.filter.Reset()
			m.reload()
		}
		m.errMsg = ""
	case key.Matches(msg, keys.newItem):
		m.form = newRecordForm(nil, !unlocked)
		m.mode = modeForm
		m.errMsg = ""
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		row, ok := m.current()
		if !ok {
			return m, nil
		}
		if row.encrypted {
			m.errMsg = "unlock the vault to edit entries"
			return m, nil
		}
		m.busy = "Decrypting"
		return m, m.cmdView(row.id, true)
	case key.Matches(msg, keys.delete):
		row, ok := m.current()
		if !ok {
			return m, nil
		}
		m.pending = row
		m.mode = modeConfirmDelete
	case key.Matches(msg, keys.logout):
		m.busy = "Logging out"
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m mainLoopModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.filter.Reset()
		m.filter.Blur()
		m.mode = modeList
		m.reload()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.filter.Blur()
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.idx = 0
	m.reload()
	return m, cmd
}

func (m *mainLoopModel) startUnlock() tea.Cmd {
	m.mode = modeUnlock
	m.errMsg = ""
	m.unlock.Reset()
	return m.unlock.Focus()
}

func (m mainLoopModel) handleUnlockKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.unlock.Reset()
		m.unlock.Blur()
		m.mode = modeList
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.enter):
		secret := []byte(m.unlock.Value())
		m.unlock.Reset()
		if len(secret) == 0 {
			m.errMsg = "master password is required"
			return m, nil
		}
		m.errMsg = ""
		m.busy = "Unlocking"
		return m, cmdUnlock(m.vault, secret)
	}

	var cmd tea.Cmd
	m.unlock, cmd = m.unlock.Update(msg)
	return m, cmd
}

func (m mainLoopModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.detail = models.DecryptedView{}
		m.reveal = false
		m.mode = modeList
		m.status = ""
		m.reload()
	case key.Matches(msg, keys.reveal):
		m.reveal = !m.reveal
	case key.Matches(msg, keys.copy):
		m.copyToClipboard("password", m.detail.Payload.Password)
	case key.Matches(msg, keys.copyUser):
		m.copyToClipboard("username", m.detail.Username)
	case key.Matches(msg, keys.edit):
		view := m.detail
		m.detail = models.DecryptedView{}
		m.form = newRecordForm(&view, false)
		m.mode = modeForm
		m.status = ""
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		m.pending = listRow{id: m.detail.ID, title: m.detail.Title, username: m.detail.Username}
		m.mode = modeConfirmDelete
	}

	return m, nil
}

func (m *mainLoopModel) copyToClipboard(what, text string) {
	if text == "" {
		m.status = "nothing to copy"
		return
	}
	if err := writeClipboard(text); err != nil {
		m.errMsg = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.errMsg = ""
	m.status = what + " copied to clipboard"
}

func (m mainLoopModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.closeForm()
		m.reload()
		return m, nil
	case key.Matches(msg, keys.generate):
		password, err := m.generator.Generate(generator.DefaultOptions())
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		m.form.fields.setValue(fieldPassword, password)
		m.form.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.save):
		cmd := m.submitForm()
		return m, cmd
	case key.Matches(msg, keys.tab):
		m.form.fields.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.fields.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.form.fields.isLast() {
			cmd := m.submitForm()
			return m, cmd
		}
		m.form.fields.focusNext()
		return m, nil
	}

	cmd := m.form.fields.update(msg)
	return m, cmd
}

func (m *mainLoopModel) submitForm() tea.Cmd {
	rec := m.form.record()
	secret := m.form.secret()
	if m.form.askSecret && len(secret) == 0 {
		m.form.errMsg = "master password is required while the vault is locked"
		return nil
	}

	m.form.errMsg = ""
	m.busy = "Saving"

	ctx, v, id := m.ctx, m.vault, m.form.id
	return func() tea.Msg {
		defer clear(secret)

		var err error
		if id == "" {
			_, err = v.Create(ctx, rec, secret)
		} else {
			_, err = v.Update(ctx, id, rec, secret)
		}
		return savedMsg{updated: id != "", err: err}
	}
}

func (m *mainLoopModel) closeForm() {
	m.form = recordForm{}
	m.mode = modeList
}

func (m mainLoopModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		row := m.pending
		m.busy = "Deleting"
		ctx, v := m.ctx, m.vault
		return m, func() tea.Msg {
			return deletedMsg{title: row.label(), err: v.Delete(ctx, row.id)}
		}
	case key.Matches(msg, keys.no):
		m.pending = listRow{}
		if m.detail.ID != "" {
			m.mode = modeDetail
		} else {
			m.mode = modeList
		}
	}

	return m, nil
}

// updateFocusedInput forwards non-key messages, e.g. cursor blinks.
func (m *mainLoopModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case modeFilter:
		m.filter, cmd = m.filter.Update(msg)
	case modeUnlock:
		m.unlock, cmd = m.unlock.Update(msg)
	case modeForm:
		if len(m.form.fields.inputs) > 0 {
			cmd = m.form.fields.update(msg)
		}
	}
	return cmd
}

// reload rebuilds the rows from the vault: plaintext rows while unlocked,
// encrypted placeholders otherwise.
func (m *mainLoopModel) reload() {
	if m.vault.State() == vault.Unlocked {
		views, err := m.vault.Filter(m.filter.Value())
		if err != nil {
			m.errMsg = errorMessage(err)
			m.rows = nil
		} else {
			m.rows = rowsFromViews(views)
		}
		m.hidden = m.vault.Hidden()
	} else {
		m.rows = rowsFromRecords(m.vault.Records())
		m.hidden = 0
	}

	if m.idx >= len(m.rows) {
		m.idx = len(m.rows) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) current() (listRow, bool) {
	if m.idx < 0 || m.idx >= len(m.rows) {
		return listRow{}, false
	}
	return m.rows[m.idx], true
}

func (m mainLoopModel) cmdRefresh() tea.Cmd {
	ctx, v := m.ctx, m.vault
	return func() tea.Msg {
		return refreshedMsg{err: v.Refresh(ctx)}
	}
}

// cmdUnlock wipes secret once the vault has taken its own copy.
func cmdUnlock(v Vault, secret []byte) tea.Cmd {
	return func() tea.Msg {
		err := v.Unlock(secret)
		clear(secret)
		return unlockedMsg{err: err}
	}
}

func (m mainLoopModel) cmdView(id string, edit bool) tea.Cmd {
	v := m.vault
	return func() tea.Msg {
		view, err := v.View(id)
		return viewLoadedMsg{view: view, edit: edit, err: err}
	}
}

func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return loggedOutMsg{err: session.Logout(ctx)}
	}
}

func (m mainLoopModel) View() string {
	switch m.mode {
	case modeForm:
		return m.form.View(m.busy)
	case modeDetail:
		return m.viewDetail()
	case modeConfirmDelete:
		return renderPage("VAULT", renderConfirmDelete(m.pending), "")
	case modeUnlock:
		return m.viewUnlock()
	default:
		return m.viewList()
	}
}

func (m mainLoopModel) header() string {
	state := m.vault.State().String()
	line := fmt.Sprintf("%s │ %s", valueOrDash(m.email), strings.ToUpper(state))
	if m.busy != "" {
		line += "  " + m.spinner.View() + " " + m.busy + "..."
	}
	return line
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")

	unlocked := m.vault.State() == vault.Unlocked
	if unlocked && (m.mode == modeFilter || m.filter.Value() != "") {
		b.WriteString("Filter: [" + m.filter.View() + "]\n\n")
	}

	b.WriteString(renderList(m.rows, m.idx))

	if m.hidden > 0 {
		fmt.Fprintf(&b, "\n\n%d entries could not be decrypted and are hidden: lock and unlock to retry", m.hidden)
	}
	renderMessages(&b, m.status, m.errMsg)

	hotKeys := "enter: unlock │ u: unlock │ n: new │ d: delete │ r: refresh │ l: log out │ q: quit"
	if unlocked {
		hotKeys = "enter: open │ /: filter │ n: new │ e: edit │ d: delete │ x: lock │ r: refresh │ l: log out │ q: quit"
	}
	if m.mode == modeFilter {
		hotKeys = "enter: done │ esc: clear filter"
	}

	return renderPage("VAULT", b.String(), hotKeys)
}

func (m mainLoopModel) viewUnlock() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(renderTable([][2]string{{"Master password", "[" + m.unlock.View() + "]"}}))
	renderMessages(&b, "", m.errMsg)

	return renderPage("UNLOCK VAULT", b.String(), "enter: unlock │ esc: back")
}

func (m mainLoopModel) viewDetail() string {
	var b strings.Builder
	b.WriteString(renderDetail(m.detail, m.reveal))
	renderMessages(&b, m.status, m.errMsg)

	return renderPage("ENTRY", b.String(), "space: reveal │ c: copy password │ u: copy username │ e: edit │ d: delete │ esc: back")
}
