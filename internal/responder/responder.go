// Package responder produces assistant replies to user questions. It is the
// extension point behind the chat view: a reply is appended to the conversation
// as an assistant message once Respond returns.
package responder

import (
	"context"
	"fmt"

	"github.com/yourusername/craftchat/internal/config"
	"github.com/yourusername/craftchat/internal/conversation"
	"go.uber.org/zap"
)

// Responder answers a question given the messages that preceded it
type Responder interface {
	Respond(ctx context.Context, question string, history []conversation.Message) (string, error)
}

// Func adapts an ordinary function to Responder
type Func func(ctx context.Context, question string, history []conversation.Message) (string, error)

func (f Func) Respond(ctx context.Context, question string, history []conversation.Message) (string, error) {
	return f(ctx, question, history)
}

// FromConfig builds the configured responder. It returns a nil Responder for
// the "none" kind. The returned close func is always safe to call.
func FromConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Responder, func(), error) {
	noop := func() {}

	switch cfg.Responder.Kind {
	case config.ResponderNone, "":
		return nil, noop, nil

	case config.ResponderGemini:
		g, err := NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
		if err != nil {
			return nil, noop, err
		}
		return g, noop, nil

	case config.ResponderRemote:
		r := NewRemote(cfg.Remote.URL, logger)
		return r, r.Close, nil
	}

	return nil, noop, fmt.Errorf("unknown responder %q", cfg.Responder.Kind)
}
