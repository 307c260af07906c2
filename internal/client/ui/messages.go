package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yourusername/craftchat/internal/conversation"
	"github.com/yourusername/craftchat/internal/responder"
)

// replyMsg is sent when the responder produced an answer
type replyMsg struct {
	requestID string
	text      string
}

// replyErrMsg is sent when the responder failed
type replyErrMsg struct {
	requestID string
	err       error
}

// tickMsg is sent periodically to animate the waiting indicator
type tickMsg time.Time

// respondCmd asks r for a reply to question off the update loop
func respondCmd(r responder.Responder, timeout time.Duration, requestID, question string, history []conversation.Message) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		text, err := r.Respond(ctx, question, history)
		if err != nil {
			return replyErrMsg{requestID: requestID, err: err}
		}
		return replyMsg{requestID: requestID, text: text}
	}
}

// tickCmd returns a command that sends tick messages for animations
func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
