// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{in: "short", max: 10, want: "short"},
		{in: "exactly", max: 7, want: "exactly"},
		{in: "truncated text", max: 9, want: "trunca..."},
		{in: "abcdef", max: 2, want: "ab"},
		{in: "пароль-длинный", max: 8, want: "парол..."},
		{in: "anything", max: 0, want: "anything"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestRenderTableAlignsLabels(t *testing.T) {
	out := renderTable([][2]string{{"A", "1"}, {"Long", "2"}})
	assert.Equal(t, "A    │ 1\nLong │ 2", out)
}

func TestRenderList_Empty(t *testing.T) {
	assert.Equal(t, "No entries", renderList(nil, 0))
}
