package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// eventKind is what a raw terminal message means to the chat view
type eventKind int

const (
	eventNone eventKind = iota
	eventType           // editing keys, handled by the textarea
	eventSubmit         // Enter without Shift
	eventNewline        // Shift+Enter
	eventButton         // submit control activated
	eventFocus          // move focus between textarea and button
	eventScroll         // history scrolling
	eventQuit
)

// transition moves the model in response to one event
type transition func(m Model, msg tea.Msg) (Model, tea.Cmd)

// transitions is the dispatch table for input events
var transitions = map[eventKind]transition{
	eventType:    Model.typeKey,
	eventSubmit:  Model.submit,
	eventNewline: Model.newline,
	eventButton:  Model.submit,
	eventFocus:   Model.toggleFocus,
	eventScroll:  Model.scroll,
	eventQuit:    Model.quit,
}

// classify maps a key or mouse message to an event.
//
// Terminals report Shift+Enter the same as Enter, so the sequences they can
// actually deliver for it (alt+enter, ctrl+j) stand in for Shift+Enter.
func (m Model) classify(msg tea.Msg) eventKind {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return eventQuit
		case tea.KeyTab, tea.KeyShiftTab:
			return eventFocus
		case tea.KeyPgUp, tea.KeyPgDown:
			return eventScroll
		}

		if m.focus == focusButton {
			if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace {
				return eventButton
			}
			return eventNone
		}

		switch msg.Type {
		case tea.KeyEnter:
			if msg.Alt {
				return eventNewline
			}
			return eventSubmit
		case tea.KeyCtrlJ:
			return eventNewline
		}
		return eventType

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			return eventScroll
		case tea.MouseButtonLeft:
			if msg.Action == tea.MouseActionPress && m.layout.button.contains(msg.X, msg.Y) {
				return eventButton
			}
		}
	}
	return eventNone
}
