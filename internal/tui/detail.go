// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

const maskedPassword = "••••••••"

func renderDetail(view models.DecryptedView, reveal bool) string {
	password := maskedPassword
	if reveal {
		password = view.Payload.Password
	}

	return renderTable([][2]string{
		{"Title", view.Title},
		{"Username", valueOrDash(view.Username)},
		{"Password", password},
		{"URL", valueOrDash(view.Payload.URL)},
		{"Notes", valueOrDash(strings.ReplaceAll(view.Payload.Notes, "\n", " "))},
		{"Created", formatTime(view.CreatedAt)},
	})
}
