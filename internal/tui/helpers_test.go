// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

// fakeVault mimics the lock semantics of vault.Vault over fixed views.
type fakeVault struct {
	state   vault.State
	views   []models.DecryptedView
	payload map[string]models.RecordPayload
	hidden  int

	refreshErr error
	unlockErr  error
	viewErr    error
	saveErr    error
	deleteErr  error

	unlockSecret []byte
	saveSecret   []byte
	created      []models.PlainRecord
	updated      map[string]models.PlainRecord
	deleted      []string
	refreshes    int
}

func newFakeVault(views ...models.DecryptedView) *fakeVault {
	return &fakeVault{
		views:   views,
		payload: map[string]models.RecordPayload{},
		updated: map[string]models.PlainRecord{},
	}
}

func (f *fakeVault) State() vault.State { return f.state }

func (f *fakeVault) Records() []models.VaultRecord {
	records := make([]models.VaultRecord, 0, len(f.views))
	for _, v := range f.views {
		records = append(records, models.VaultRecord{ID: v.ID, Title: "enc", CreatedAt: v.CreatedAt})
	}
	return records
}

func (f *fakeVault) Hidden() int { return f.hidden }

func (f *fakeVault) Refresh(context.Context) error {
	f.refreshes++
	return f.refreshErr
}

func (f *fakeVault) Unlock(secret []byte) error {
	f.unlockSecret = slices.Clone(secret)
	if f.unlockErr != nil {
		return f.unlockErr
	}
	f.state = vault.Unlocked
	return nil
}

func (f *fakeVault) Lock() { f.state = vault.Locked }

func (f *fakeVault) Filter(query string) ([]models.DecryptedView, error) {
	if f.state != vault.Unlocked {
		return nil, vault.ErrLocked
	}
	var out []models.DecryptedView
	for _, v := range f.views {
		q := strings.ToLower(query)
		if strings.Contains(strings.ToLower(v.Title), q) || strings.Contains(strings.ToLower(v.Username), q) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVault) View(id string) (models.DecryptedView, error) {
	if f.viewErr != nil {
		return models.DecryptedView{}, f.viewErr
	}
	for _, v := range f.views {
		if v.ID == id {
			v.Payload = f.payload[id]
			return v, nil
		}
	}
	return models.DecryptedView{}, vault.ErrNotFoundOrUnauthorized
}

func (f *fakeVault) Create(_ context.Context, rec models.PlainRecord, secret []byte) (models.VaultRecord, error) {
	f.saveSecret = slices.Clone(secret)
	if f.saveErr != nil {
		return models.VaultRecord{}, f.saveErr
	}
	f.created = append(f.created, rec)
	return models.VaultRecord{ID: "new"}, nil
}

func (f *fakeVault) Update(_ context.Context, id string, rec models.PlainRecord, secret []byte) (models.VaultRecord, error) {
	f.saveSecret = slices.Clone(secret)
	if f.saveErr != nil {
		return models.VaultRecord{}, f.saveErr
	}
	f.updated[id] = rec
	f.state = vault.Locked
	return models.VaultRecord{ID: id}, nil
}

func (f *fakeVault) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	f.views = slices.DeleteFunc(f.views, func(v models.DecryptedView) bool { return v.ID == id })
	return nil
}

type fakeSession struct {
	loginErr  error
	signupErr error
	logoutErr error

	lastCreds models.Credentials
	logouts   int
}

func (f *fakeSession) Signup(_ context.Context, creds models.Credentials) (models.User, error) {
	f.lastCreds = creds
	if f.signupErr != nil {
		return models.User{}, f.signupErr
	}
	return models.User{UserID: 1, Email: creds.NormalizedEmail()}, nil
}

func (f *fakeSession) Login(_ context.Context, creds models.Credentials) (models.Token, error) {
	f.lastCreds = creds
	if f.loginErr != nil {
		return models.Token{}, f.loginErr
	}
	return models.Token{UserID: 1}, nil
}

func (f *fakeSession) Logout(context.Context) error {
	f.logouts++
	return f.logoutErr
}

type fakeGenerator struct {
	password string
	err      error
}

func (f fakeGenerator) Generate(generator.Options) (string, error) {
	return f.password, f.err
}

var createdAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func sampleViews() []models.DecryptedView {
	return []models.DecryptedView{
		{ID: "r2", Title: "GitHub", Username: "octo", CreatedAt: createdAt.Add(time.Hour)},
		{ID: "r1", Title: "Mail", Username: "me@example.com", CreatedAt: createdAt},
	}
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+g":
		return tea.KeyMsg{Type: tea.KeyCtrlG}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// send delivers msg and returns the updated model of the same type.
func send[M tea.Model](t *testing.T, m M, msg tea.Msg) (M, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	typed, ok := next.(M)
	require.True(t, ok, "unexpected model type %T", next)
	return typed, cmd
}

// typeText sends text one rune at a time.
func typeText[M tea.Model](t *testing.T, m M, text string) M {
	t.Helper()
	for _, r := range text {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// run executes cmd and returns its message.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}
