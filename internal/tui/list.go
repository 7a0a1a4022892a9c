// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	encryptedLabel = "encrypted entry"
	titleColumn    = 28
	usernameColumn = 24
)

// listRow is one line of the vault list. Rows built while the vault is
// locked carry no plaintext.
type listRow struct {
	id        string
	title     string
	username  string
	createdAt time.Time
	encrypted bool
}

func (r listRow) label() string {
	if r.encrypted {
		return encryptedLabel
	}
	return r.title
}

func rowsFromRecords(records []models.VaultRecord) []listRow {
	rows := make([]listRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, listRow{id: r.ID, createdAt: r.CreatedAt, encrypted: true})
	}
	return rows
}

func rowsFromViews(views []models.DecryptedView) []listRow {
	rows := make([]listRow, 0, len(views))
	for _, v := range views {
		rows = append(rows, listRow{id: v.ID, title: v.Title, username: v.Username, createdAt: v.CreatedAt})
	}
	return rows
}

func renderList(rows []listRow, idx int) string {
	if len(rows) == 0 {
		return "No entries"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %-*s │ %-*s │ %s\n", titleColumn, "Title", usernameColumn, "Username", "Created")
	b.WriteString("──")
	b.WriteString(strings.Repeat("─", titleColumn))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", usernameColumn))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", len(timeLayout)))
	b.WriteString("\n")

	for i, row := range rows {
		cursor := "  "
		if i == idx {
			cursor = "> "
		}

		title := fmt.Sprintf("%-*s", titleColumn, fitText(row.label(), titleColumn))
		username := fmt.Sprintf("%-*s", usernameColumn, fitText(row.username, usernameColumn))
		if row.encrypted {
			title = lockedStyle.Render(title)
		}

		fmt.Fprintf(&b, "%s%s │ %s │ %s\n", cursor, title, username, formatTime(row.createdAt))
	}

	return strings.TrimRight(b.String(), "\n")
}
