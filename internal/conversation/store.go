// Package conversation holds the in-memory state behind the chat view: the
// ordered message history and the uncommitted draft.
package conversation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidSubmission is returned by Validate for empty or whitespace-only text
var ErrInvalidSubmission = errors.New("submission is empty")

// Store is the single source of truth for one conversation.
// Messages are append-only; nothing is persisted.
type Store struct {
	messages []Message
	draft    string
	now      func() time.Time
	newID    func() string
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source used for CreatedAt
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator overrides how message IDs are produced
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// NewStore creates an empty conversation
func NewStore(opts ...Option) *Store {
	s := &Store{
		messages: []Message{},
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate trims text and rejects it if nothing is left
func Validate(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrInvalidSubmission
	}
	return trimmed, nil
}

// Append adds a user message. Empty submissions are ignored and report false.
func (s *Store) Append(text string) bool {
	_, ok := s.add(text, SenderUser)
	return ok
}

// AppendReply adds an assistant message produced by a responder
func (s *Store) AppendReply(text string) bool {
	_, ok := s.add(text, SenderAssistant)
	return ok
}

func (s *Store) add(text string, sender Sender) (Message, bool) {
	trimmed, err := Validate(text)
	if err != nil {
		return Message{}, false
	}

	msg := Message{
		ID:        s.newID(),
		Text:      trimmed,
		Sender:    sender,
		CreatedAt: s.now(),
	}
	s.messages = append(s.messages, msg)
	return msg, true
}

// Submit appends the current draft as a user message.
// The draft is cleared only when the message was accepted.
func (s *Store) Submit() (Message, bool) {
	msg, ok := s.add(s.draft, SenderUser)
	if ok {
		s.draft = ""
	}
	return msg, ok
}

// Draft returns the uncommitted input text
func (s *Store) Draft() string {
	return s.draft
}

// SetDraft replaces the uncommitted input text
func (s *Store) SetDraft(text string) {
	s.draft = text
}

// Messages returns a copy of the history in insertion order
func (s *Store) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages
func (s *Store) Len() int {
	return len(s.messages)
}

// Last returns the most recent message, if any
func (s *Store) Last() (Message, bool) {
	if len(s.messages) == 0 {
		return Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}

// Recent returns up to n of the newest messages in insertion order
func (s *Store) Recent(n int) []Message {
	msgs := s.messages
	if n > 0 && len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}
