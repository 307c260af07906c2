package responder

import (
	"context"

	"github.com/yourusername/craftchat/internal/client/connection"
	"github.com/yourusername/craftchat/internal/conversation"
	"github.com/yourusername/craftchat/internal/protocol"
	"go.uber.org/zap"
)

// Remote forwards questions to an external answer service over a websocket
type Remote struct {
	mgr    *connection.Manager
	logger *zap.Logger
}

// NewRemote creates a responder for the service at url. The connection is
// opened lazily on the first question.
func NewRemote(url string, logger *zap.Logger) *Remote {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Remote{
		mgr:    connection.NewManager(url, logger),
		logger: logger.Named("remote"),
	}
	r.mgr.OnEvent(r.logEvent)
	return r
}

// Respond asks the service and waits for its answer
func (r *Remote) Respond(ctx context.Context, question string, history []conversation.Message) (string, error) {
	text, err := r.mgr.Ask(ctx, question, toTurns(history))
	if err != nil {
		return "", err
	}
	return cleanReply(text), nil
}

// Close drops the connection
func (r *Remote) Close() {
	r.mgr.Disconnect()
}

func (r *Remote) logEvent(event connection.Event) {
	switch e := event.(type) {
	case connection.ConnectedEvent:
		r.logger.Info("answer service connected")
	case connection.DisconnectedEvent:
		if e.Error != nil {
			r.logger.Warn("answer service disconnected", zap.Error(e.Error))
		}
	case connection.ErrorEvent:
		r.logger.Warn("answer service error", zap.String("request_id", e.RequestID), zap.String("message", e.Message))
	}
}

func toTurns(history []conversation.Message) []protocol.Turn {
	if len(history) == 0 {
		return nil
	}
	turns := make([]protocol.Turn, len(history))
	for i, msg := range history {
		turns[i] = protocol.Turn{Sender: msg.Sender.String(), Text: msg.Text}
	}
	return turns
}
