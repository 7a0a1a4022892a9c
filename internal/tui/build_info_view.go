// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := renderTable([][2]string{
		{"Application", "GoPassVault"},
		{"Version", valueOrNA(info.BuildVersion())},
		{"Date", valueOrNA(info.BuildDate())},
		{"Commit", valueOrNA(info.BuildCommit())},
	})

	return renderPage("ABOUT", body, "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
