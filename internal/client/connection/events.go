package connection

// Event represents events from the connection manager
type Event interface {
	isEvent()
}

// ConnectedEvent is sent when connection is established
type ConnectedEvent struct{}

func (ConnectedEvent) isEvent() {}

// DisconnectedEvent is sent when connection is lost
type DisconnectedEvent struct {
	Error error
}

func (DisconnectedEvent) isEvent() {}

// ErrorEvent is sent when the service reports an error
type ErrorEvent struct {
	RequestID string
	Message   string
}

func (ErrorEvent) isEvent() {}

// AnswerEvent is sent when an answer arrives for a pending question
type AnswerEvent struct {
	RequestID string
	Text      string
}

func (AnswerEvent) isEvent() {}
