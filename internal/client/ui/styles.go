package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - earthy tones for dark backgrounds
var (
	primaryColor   = lipgloss.Color("#E8C4A0") // Light warm beige
	secondaryColor = lipgloss.Color("#7EBB81") // Light forest green
	accentColor    = lipgloss.Color("#A8C9A4") // Soft sage green
	successColor   = lipgloss.Color("#B5D99C") // Bright sage
	mutedColor     = lipgloss.Color("#B8A890") // Light taupe
	fgColor        = lipgloss.Color("#F5F3ED") // Warm white
	userColor      = lipgloss.Color("#6FA8DC") // Button blue
	hoverColor     = lipgloss.Color("#E69138") // Focused button orange
	panelColor     = lipgloss.Color("#2E2E2E")
)

// Styles
var (
	userBubbleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(userColor).
			Foreground(fgColor).
			Padding(0, 1)

	assistantBubbleStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(secondaryColor).
				Foreground(primaryColor).
				Padding(0, 1)

	senderLabelStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(panelColor).
			Background(userColor).
			Bold(true).
			Padding(0, 1)

	focusedButtonStyle = buttonStyle.
				Background(hoverColor)

	instructionStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)

	highlightStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E07B7B")).
			Bold(true)
)
