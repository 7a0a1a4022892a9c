// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

func renderConfirmDelete(row listRow) string {
	content := "Delete \"" + row.label() + "\"?\n\n"
	content += "y: yes    n: no"
	return overlayBoxStyle.Render(content)
}
