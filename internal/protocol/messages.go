package protocol //wire format between the chat client and a remote answer service
// WebSocket message types and payloads
import "encoding/json"

// MessageType defines the type of WebSocket message
type MessageType string

const (
	// Client -> Server
	MsgAsk MessageType = "ask" // a question plus recent history

	// Server -> Client
	MsgAnswer MessageType = "answer"
	MsgError  MessageType = "error"
)

// Message is the wrapper for all WebSocket messages
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Turn is one prior exchange entry sent along with a question
type Turn struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// AskPayload is sent when the user submits a question
type AskPayload struct {
	RequestID string `json:"request_id"`
	Question  string `json:"question"`
	History   []Turn `json:"history,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// AnswerPayload carries the service's reply to an AskPayload
type AnswerPayload struct {
	RequestID string `json:"request_id"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// ErrorPayload contains error information.
// RequestID is empty for errors not tied to a question.
type ErrorPayload struct {
	RequestID string `json:"request_id,omitempty"`
	Message   string `json:"message"`
}

// EncodeMessage encodes a message with its payload
func EncodeMessage(msgType MessageType, payload interface{}) ([]byte, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	msg := Message{
		Type:    msgType,
		Payload: payloadBytes,
	}

	return json.Marshal(msg)
}

// DecodeMessage decodes a message
func DecodeMessage(data []byte) (*Message, error) {
	var msg Message
	err := json.Unmarshal(data, &msg)
	return &msg, err
}

// DecodePayload unmarshals the payload of msg into v
func DecodePayload(msg *Message, v interface{}) error {
	return json.Unmarshal(msg.Payload, v)
}
