// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	fieldTitle = iota
	fieldUsername
	fieldPassword
	fieldURL
	fieldNotes
	fieldSecret
)

// recordForm creates an entry, or edits the entry id when id is set.
// While the vault is locked the form also asks for the master password.
type recordForm struct {
	id        string
	askSecret bool
	fields    inputGroup
	errMsg    string
}

func newRecordForm(view *models.DecryptedView, askSecret bool) recordForm {
	inputs := []textinput.Model{
		newInput("title", 256, false),
		newInput("username", 256, false),
		newInput("password (ctrl+g: generate)", 128, false),
		newInput("https://", 2048, false),
		newInput("notes", 4096, false),
	}
	if askSecret {
		inputs = append(inputs, newInput("master password", 1024, true))
	}

	f := recordForm{
		askSecret: askSecret,
		fields:    newInputGroup(inputs...),
	}

	if view != nil {
		f.id = view.ID
		f.fields.setValue(fieldTitle, view.Title)
		f.fields.setValue(fieldUsername, view.Username)
		f.fields.setValue(fieldPassword, view.Payload.Password)
		f.fields.setValue(fieldURL, view.Payload.URL)
		f.fields.setValue(fieldNotes, view.Payload.Notes)
	}

	return f
}

func (f recordForm) editing() bool {
	return f.id != ""
}

func (f recordForm) record() models.PlainRecord {
	return models.PlainRecord{
		Title:    strings.TrimSpace(f.fields.value(fieldTitle)),
		Username: strings.TrimSpace(f.fields.value(fieldUsername)),
		Payload: models.RecordPayload{
			Password: f.fields.value(fieldPassword),
			URL:      strings.TrimSpace(f.fields.value(fieldURL)),
			Notes:    f.fields.value(fieldNotes),
		},
	}
}

// secret is nil when the form does not ask for it.
func (f recordForm) secret() []byte {
	if !f.askSecret {
		return nil
	}
	return []byte(f.fields.value(fieldSecret))
}

func (f recordForm) View(busy string) string {
	rows := [][2]string{
		{"Title", f.fields.view(fieldTitle)},
		{"Username", f.fields.view(fieldUsername)},
		{"Password", f.fields.view(fieldPassword)},
		{"URL", f.fields.view(fieldURL)},
		{"Notes", f.fields.view(fieldNotes)},
	}
	if f.askSecret {
		rows = append(rows, [2]string{"Master password", f.fields.view(fieldSecret)})
	}

	var b strings.Builder
	b.WriteString(renderTable(rows))
	if busy != "" {
		b.WriteString("\n\n[" + busy + "...]")
	}
	renderMessages(&b, "", f.errMsg)

	title := "NEW ENTRY"
	if f.editing() {
		title = "EDIT ENTRY"
	}
	return renderPage(title, b.String(), "tab: next field │ ctrl+g: generate password │ ctrl+s: save │ esc: cancel")
}
