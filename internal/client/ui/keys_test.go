package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestClassifyKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want eventKind
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, eventSubmit},
		{"alt+enter", tea.KeyMsg{Type: tea.KeyEnter, Alt: true}, eventNewline},
		{"ctrl+j", tea.KeyMsg{Type: tea.KeyCtrlJ}, eventNewline},
		{"runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")}, eventType},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, eventType},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, eventFocus},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, eventFocus},
		{"pgup", tea.KeyMsg{Type: tea.KeyPgUp}, eventScroll},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, eventQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, eventQuit},
	}

	m := newTestModel()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.classify(tt.msg))
		})
	}
}

func TestClassifyKeysWithButtonFocused(t *testing.T) {
	m := newTestModel()
	m, _ = send(t, m, keyTab)

	assert.Equal(t, eventButton, m.classify(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, eventButton, m.classify(tea.KeyMsg{Type: tea.KeySpace}))
	assert.Equal(t, eventNone, m.classify(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}))
	assert.Equal(t, eventFocus, m.classify(keyTab))
}
