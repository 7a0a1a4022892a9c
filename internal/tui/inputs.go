// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const inputWidth = 40

// inputGroup is a list of text inputs with exactly one focused.
type inputGroup struct {
	inputs []textinput.Model
	focus  int
}

func newInput(placeholder string, charLimit int, masked bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Width = inputWidth
	if masked {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func newInputGroup(inputs ...textinput.Model) inputGroup {
	g := inputGroup{inputs: inputs}
	if len(g.inputs) > 0 {
		g.inputs[0].Focus()
	}
	return g
}

func (g *inputGroup) focusNext() {
	g.setFocus((g.focus + 1) % len(g.inputs))
}

func (g *inputGroup) focusPrev() {
	g.setFocus((g.focus - 1 + len(g.inputs)) % len(g.inputs))
}

func (g *inputGroup) setFocus(i int) {
	g.inputs[g.focus].Blur()
	g.focus = i
	g.inputs[g.focus].Focus()
}

func (g *inputGroup) isLast() bool {
	return g.focus == len(g.inputs)-1
}

func (g *inputGroup) value(i int) string {
	return g.inputs[i].Value()
}

func (g *inputGroup) setValue(i int, v string) {
	g.inputs[i].SetValue(v)
}

// update forwards msg to the focused input.
func (g *inputGroup) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	g.inputs[g.focus], cmd = g.inputs[g.focus].Update(msg)
	return cmd
}

// reset clears every input and focuses the first one.
func (g *inputGroup) reset() {
	for i := range g.inputs {
		g.inputs[i].Reset()
	}
	g.setFocus(0)
}

func (g *inputGroup) view(i int) string {
	return "[" + g.inputs[i].View() + "]"
}
