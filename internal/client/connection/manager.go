package connection

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/yourusername/craftchat/internal/protocol"
	"go.uber.org/zap"
)

const (
	writeWait        = 10 * time.Second
	handshakeTimeout = 10 * time.Second
)

var (
	// ErrNotConnected is returned when sending without an open connection
	ErrNotConnected = errors.New("not connected to answer service")
	// ErrDisconnected is delivered to questions still pending when the connection drops
	ErrDisconnected = errors.New("connection to answer service lost")
)

// ServiceError is an error reported by the answer service for one question
type ServiceError struct {
	RequestID string
	Message   string
}

func (e *ServiceError) Error() string {
	return "answer service: " + e.Message
}

// Manager manages the WebSocket connection to the answer service
type Manager struct {
	serverURL     string
	conn          *websocket.Conn
	pending       *Pending
	eventCallback func(Event)
	connected     bool
	logger        *zap.Logger
	mu            sync.RWMutex
	connMu        sync.Mutex // serializes dialing
	writeMu       sync.Mutex
	done          chan struct{}
}

// NewManager creates a new connection manager
func NewManager(serverURL string, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		serverURL: serverURL,
		pending:   NewPending(),
		connected: false,
		logger:    logger.Named("connection"),
		done:      make(chan struct{}),
	}
}

// OnEvent sets the callback for events
func (m *Manager) OnEvent(callback func(Event)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventCallback = callback
}

// Connect establishes a WebSocket connection to the answer service.
// It is a no-op when a connection is already open.
func (m *Manager) Connect(ctx context.Context) error {
	m.connMu.Lock()
	defer m.connMu.Unlock()

	if m.IsConnected() {
		return nil
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: handshakeTimeout,
	}

	conn, _, err := dialer.DialContext(ctx, m.serverURL, nil)
	if err != nil {
		m.sendEvent(DisconnectedEvent{Error: err})
		return fmt.Errorf("dial %s: %w", m.serverURL, err)
	}

	m.mu.Lock()
	m.conn = conn
	m.connected = true
	// Fresh done channel per connection so reconnects work
	m.done = make(chan struct{})
	done := m.done
	m.mu.Unlock()

	go m.readPump(conn, done)

	m.logger.Info("connected", zap.String("url", m.serverURL))
	m.sendEvent(ConnectedEvent{})
	return nil
}

// Disconnect closes the WebSocket connection
func (m *Manager) Disconnect() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return
	}

	m.connected = false

	if m.done != nil {
		select {
		case <-m.done:
			// Already closed
		default:
			close(m.done)
		}
	}

	if m.conn != nil {
		m.conn.Close()
	}
}

// IsConnected returns whether the manager is connected
func (m *Manager) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}

// Ask sends a question and blocks until its answer arrives, the service reports
// an error for it, the connection drops, or ctx ends.
func (m *Manager) Ask(ctx context.Context, question string, history []protocol.Turn) (string, error) {
	if err := m.Connect(ctx); err != nil {
		return "", err
	}

	requestID := uuid.New().String()
	resultCh := m.pending.Add(requestID)

	err := m.sendMessage(protocol.MsgAsk, protocol.AskPayload{
		RequestID: requestID,
		Question:  question,
		History:   history,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		m.pending.Remove(requestID)
		return "", fmt.Errorf("send question: %w", err)
	}
	m.logger.Debug("question sent", zap.String("request_id", requestID))

	select {
	case res := <-resultCh:
		return res.Text, res.Err
	case <-ctx.Done():
		m.pending.Remove(requestID)
		return "", ctx.Err()
	}
}

// Outstanding returns the number of questions still waiting for an answer
func (m *Manager) Outstanding() int {
	return m.pending.Len()
}

// sendMessage sends a message to the server
func (m *Manager) sendMessage(msgType protocol.MessageType, payload interface{}) error {
	m.mu.RLock()
	conn := m.conn
	connected := m.connected
	m.mu.RUnlock()

	if !connected || conn == nil {
		return ErrNotConnected
	}

	msg, err := protocol.EncodeMessage(msgType, payload)
	if err != nil {
		return err
	}

	// gorilla/websocket allows one concurrent writer
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, msg)
}

// readPump reads messages from the WebSocket connection
func (m *Manager) readPump(conn *websocket.Conn, done chan struct{}) {
	var readErr error
	defer func() {
		m.mu.Lock()
		current := m.conn == conn
		if current {
			m.connected = false
		}
		conn.Close()
		m.mu.Unlock()

		// A stale socket must not fail questions waiting on the live one
		if !current {
			return
		}
		m.pending.FailAll(ErrDisconnected)
		m.sendEvent(DisconnectedEvent{Error: readErr})
	}()

	for {
		select {
		case <-done:
			return
		default:
			_, message, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					m.logger.Warn("websocket read failed", zap.Error(err))
					readErr = err
				}
				return
			}

			m.handleMessage(message)
		}
	}
}

// handleMessage processes incoming messages
func (m *Manager) handleMessage(data []byte) {
	msg, err := protocol.DecodeMessage(data)
	if err != nil {
		m.logger.Warn("decode message", zap.Error(err))
		return
	}

	switch msg.Type {
	case protocol.MsgAnswer:
		var payload protocol.AnswerPayload
		if err := protocol.DecodePayload(msg, &payload); err != nil {
			m.logger.Warn("decode answer payload", zap.Error(err))
			return
		}
		if !m.pending.Resolve(payload.RequestID, Result{Text: payload.Text}) {
			m.logger.Debug("answer for unknown request", zap.String("request_id", payload.RequestID))
		}
		m.sendEvent(AnswerEvent{RequestID: payload.RequestID, Text: payload.Text})

	case protocol.MsgError:
		var payload protocol.ErrorPayload
		if err := protocol.DecodePayload(msg, &payload); err != nil {
			m.logger.Warn("decode error payload", zap.Error(err))
			return
		}
		if payload.RequestID != "" {
			m.pending.Resolve(payload.RequestID, Result{Err: &ServiceError{
				RequestID: payload.RequestID,
				Message:   payload.Message,
			}})
		}
		m.logger.Warn("service error", zap.String("request_id", payload.RequestID), zap.String("message", payload.Message))
		m.sendEvent(ErrorEvent{RequestID: payload.RequestID, Message: payload.Message})

	default:
		m.logger.Debug("unhandled message type", zap.String("type", string(msg.Type)))
	}
}

// sendEvent sends an event to the callback if set
func (m *Manager) sendEvent(event Event) {
	m.mu.RLock()
	callback := m.eventCallback
	m.mu.RUnlock()

	if callback != nil {
		callback(event)
	}
}
