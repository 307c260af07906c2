package conversation

import "time"

// Sender tags who authored a message
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Valid reports whether s is one of the known sender tags
func (s Sender) Valid() bool {
	switch s {
	case SenderUser, SenderAssistant:
		return true
	}
	return false
}

func (s Sender) String() string {
	return string(s)
}

// Message is a single entry in the conversation history
type Message struct {
	ID        string
	Text      string
	Sender    Sender
	CreatedAt time.Time
}

// IsUser reports whether the message was authored by the local user
func (m Message) IsUser() bool {
	return m.Sender == SenderUser
}
