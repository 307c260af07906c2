package responder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yourusername/craftchat/internal/conversation"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ErrEmptyReply is returned when the model produced no text
var ErrEmptyReply = errors.New("empty response from model")

// contentGenerator is the part of *genai.Models the Gemini responder uses
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini answers questions with a Google Gemini model
type Gemini struct {
	models contentGenerator
	model  string
	logger *zap.Logger
}

// NewGemini creates a Gemini responder backed by the genai client
func NewGemini(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return newGemini(client.Models, model, logger), nil
}

func newGemini(models contentGenerator, model string, logger *zap.Logger) *Gemini {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gemini{
		models: models,
		model:  model,
		logger: logger.Named("gemini"),
	}
}

// Respond sends the filled prompt to the model and returns its text
func (g *Gemini) Respond(ctx context.Context, question string, history []conversation.Message) (string, error) {
	prompt := BuildPrompt(question, history)
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := g.models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		g.logger.Warn("generate content failed", zap.String("model", g.model), zap.Error(err))
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", ErrEmptyReply
	}

	g.logger.Debug("reply generated", zap.String("model", g.model), zap.Int("chars", len(text)))
	return text, nil
}

// responseText joins the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range cand.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return cleanReply(b.String())
}
