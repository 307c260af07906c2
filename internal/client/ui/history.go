package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/craftchat/internal/conversation"
)

// HistoryOrder returns msgs newest first. This is the order entries are
// emitted in; the renderer stacks them bottom-up so the newest one ends up
// visually at the bottom.
func HistoryOrder(msgs []conversation.Message) []conversation.Message {
	out := make([]conversation.Message, len(msgs))
	for i, msg := range msgs {
		out[len(msgs)-1-i] = msg
	}
	return out
}

// renderHistory renders the full history for a viewport of the given size,
// anchored to the bottom edge.
func renderHistory(msgs []conversation.Message, width, height int) string {
	entries := HistoryOrder(msgs)

	// Reverse stacking: each older entry goes above the ones already placed
	stack := make([]string, len(entries))
	for i, msg := range entries {
		stack[len(entries)-1-i] = renderEntry(msg, width)
	}

	content := strings.Join(stack, "\n")
	if lipgloss.Height(content) < height {
		content = strings.Repeat("\n", height-lipgloss.Height(content)) + content
	}
	return content
}

// renderEntry renders one message. User messages sit on the right, anything
// else on the left with the assistant treatment.
func renderEntry(msg conversation.Message, width int) string {
	style := assistantBubbleStyle
	label := "Assistant"
	align := lipgloss.Left
	if msg.IsUser() {
		style = userBubbleStyle
		label = "You"
		align = lipgloss.Right
	}

	maxText := width*3/4 - style.GetHorizontalFrameSize()
	if maxText < 1 {
		maxText = 1
	}
	textWidth := lipgloss.Width(msg.Text)
	if textWidth > maxText {
		textWidth = maxText
	}

	bubble := style.Width(textWidth + style.GetHorizontalPadding()).Render(msg.Text)
	entry := lipgloss.JoinVertical(align, senderLabelStyle.Render(label), bubble)

	return lipgloss.PlaceHorizontal(width, align, entry)
}
