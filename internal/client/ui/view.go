package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"◐", "◓", "◑", "◒"}

// View renders the history, the input box and the status line
func (m Model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.history.View(),
		m.viewInput(),
		m.viewStatus(),
	)
}

// viewInput renders the textarea with the submit button under it
func (m Model) viewInput() string {
	button := buttonStyle.Render(submitLabel)
	if m.focus == focusButton {
		button = focusedButtonStyle.Render(submitLabel)
	}
	buttonRow := lipgloss.PlaceHorizontal(m.layout.innerWidth, lipgloss.Right, button)

	box := lipgloss.JoinVertical(lipgloss.Left, m.input.View(), buttonRow)
	return inputBoxStyle.Width(m.layout.width - inputBoxStyle.GetHorizontalBorderSize()).Render(box)
}

// viewStatus renders key hints, the waiting indicator or the last reply failure
func (m Model) viewStatus() string {
	var left string
	switch {
	case m.err != nil:
		left = errorStyle.Render("✗ Reply failed: " + m.err.Error())
	case m.State() == StateAwaiting:
		frame := spinnerFrames[m.loadingDots%len(spinnerFrames)]
		left = spinnerStyle.Render(frame) + " " +
			instructionStyle.Render("Waiting for a reply"+strings.Repeat(".", m.loadingDots))
	}

	hints := instructionStyle.Render(
		highlightStyle.Render("ENTER") + " send  •  " +
			highlightStyle.Render("ALT+ENTER") + " newline  •  " +
			highlightStyle.Render("TAB") + " button  •  ESC quit")

	gap := m.layout.width - lipgloss.Width(left) - lipgloss.Width(hints)
	if gap < 1 {
		// Not enough room for both; the status message wins
		if left != "" {
			return truncate(left, m.layout.width)
		}
		return truncate(hints, m.layout.width)
	}
	return left + strings.Repeat(" ", gap) + hints
}

func truncate(s string, width int) string {
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
