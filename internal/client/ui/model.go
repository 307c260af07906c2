package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/yourusername/craftchat/internal/conversation"
	"github.com/yourusername/craftchat/internal/responder"
	"go.uber.org/zap"
)

const (
	placeholderText = "What do you wanna know?"
	submitLabel     = "Enter ➤"

	defaultReplyTimeout = 60 * time.Second
	defaultHistoryTurns = 6
)

// InputState is the observable state of the input control
type InputState int

const (
	// StateIdle means no reply is outstanding
	StateIdle InputState = iota
	// StateAwaiting means at least one responder call is in flight
	StateAwaiting
)

// focusTarget is the control that receives keyboard input
type focusTarget int

const (
	focusInput focusTarget = iota
	focusButton
)

// Model is the chat view: a history viewport above a multi-line input box
type Model struct {
	store        *conversation.Store
	responder    responder.Responder
	replyTimeout time.Duration
	historyTurns int
	logger       *zap.Logger

	input   textarea.Model
	history viewport.Model
	focus   focusTarget
	layout  layout

	pending     int  // outstanding reply requests
	ticking     bool // a tickMsg is scheduled
	loadingDots int
	err         error // last reply failure, shown in the status line
}

// Option configures a Model
type Option func(*Model)

// WithResponder wires the reply seam. Without it submissions only append.
func WithResponder(r responder.Responder, timeout time.Duration, historyTurns int) Option {
	return func(m *Model) {
		m.responder = r
		if timeout > 0 {
			m.replyTimeout = timeout
		}
		if historyTurns >= 0 {
			m.historyTurns = historyTurns
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates the chat view over store
func New(store *conversation.Store, opts ...Option) Model {
	ta := textarea.New()
	ta.Placeholder = placeholderText
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	// Enter and its newline variants are dispatched by the view itself
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.SetValue(store.Draft())
	ta.Focus()

	m := Model{
		store:        store,
		replyTimeout: defaultReplyTimeout,
		historyTurns: defaultHistoryTurns,
		logger:       zap.NewNop(),
		input:        ta,
		history:      viewport.New(80, 20),
		focus:        focusInput,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.resize(80, 24)
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg, tea.MouseMsg:
		if next, ok := transitions[m.classify(msg)]; ok {
			return next(m, msg)
		}
		return m, nil

	case replyMsg:
		m.pending--
		if m.store.AppendReply(msg.text) {
			m.err = nil
			m.refreshHistory()
		} else {
			m.logger.Warn("empty reply dropped", zap.String("request_id", msg.requestID))
		}
		return m, nil

	case replyErrMsg:
		m.pending--
		m.err = msg.err
		m.logger.Warn("reply failed", zap.String("request_id", msg.requestID), zap.Error(msg.err))
		return m, nil

	case tickMsg:
		if m.State() == StateAwaiting {
			m.ticking = true
			m.loadingDots = (m.loadingDots + 1) % 4
			return m, tickCmd()
		}
		m.ticking = false
		m.loadingDots = 0
		return m, nil
	}

	// Cursor blink and other textarea internals
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// State reports whether a reply is outstanding
func (m Model) State() InputState {
	if m.pending > 0 {
		return StateAwaiting
	}
	return StateIdle
}

// Draft returns the current uncommitted input
func (m Model) Draft() string {
	return m.store.Draft()
}

// Messages returns the conversation history in insertion order
func (m Model) Messages() []conversation.Message {
	return m.store.Messages()
}

// typeKey forwards an editing key to the textarea and mirrors the result into the draft
func (m Model) typeKey(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.syncDraft()
	return m, cmd
}

// newline inserts a line break into the draft without submitting
func (m Model) newline(_ tea.Msg) (Model, tea.Cmd) {
	m.input.InsertString("\n")
	m.syncDraft()
	return m, nil
}

// submit validates the draft, appends it and clears the input.
// A rejected draft leaves everything untouched.
func (m Model) submit(_ tea.Msg) (Model, tea.Cmd) {
	m.store.SetDraft(m.input.Value())

	sent, ok := m.store.Submit()
	if !ok {
		return m, nil
	}

	m.input.Reset()
	m.fitInput()
	m.logger.Debug("message appended", zap.String("id", sent.ID), zap.Int("count", m.store.Len()))

	return m, m.requestReply(sent)
}

// requestReply starts a responder call for the message just sent, if one is wired
func (m *Model) requestReply(sent conversation.Message) tea.Cmd {
	if m.responder == nil {
		return nil
	}

	// Prior turns only; the question itself travels separately
	history := m.store.Recent(m.historyTurns + 1)
	if len(history) > 0 {
		history = history[:len(history)-1]
	}
	if m.historyTurns == 0 {
		history = nil
	}

	requestID := uuid.New().String()
	m.pending++
	m.err = nil

	cmd := respondCmd(m.responder, m.replyTimeout, requestID, sent.Text, history)
	// One animation chain at a time; a scheduled tick re-arms itself while awaiting
	if !m.ticking {
		m.ticking = true
		return tea.Batch(cmd, tickCmd())
	}
	return cmd
}

// toggleFocus moves keyboard focus between the textarea and the submit button
func (m Model) toggleFocus(_ tea.Msg) (Model, tea.Cmd) {
	if m.focus == focusInput {
		m.focus = focusButton
		m.input.Blur()
		return m, nil
	}
	m.focus = focusInput
	return m, m.input.Focus()
}

// scroll forwards paging keys and the mouse wheel to the history viewport
func (m Model) scroll(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m Model) quit(_ tea.Msg) (Model, tea.Cmd) {
	return m, tea.Quit
}

// syncDraft copies the textarea contents into the store and refits the input height
func (m *Model) syncDraft() {
	m.store.SetDraft(m.input.Value())
	m.fitInput()
}

// resize recomputes the layout for a new terminal size
func (m *Model) resize(width, height int) {
	m.layout = computeLayout(width, height, m.layout.inputRows)
	m.input.SetWidth(m.layout.innerWidth)
	m.fitInput()
}

// fitInput grows or shrinks the textarea with its content
func (m *Model) fitInput() {
	rows := inputRowsFor(m.input.Value(), m.layout.innerWidth)
	m.layout = computeLayout(m.layout.width, m.layout.height, rows)
	m.input.SetHeight(rows)

	m.history.Width = m.layout.width
	m.history.Height = m.layout.historyHeight
	m.refreshHistory()
}

// refreshHistory re-renders every message into the viewport and pins it to the newest entry
func (m *Model) refreshHistory() {
	m.history.SetContent(renderHistory(m.store.Messages(), m.layout.width, m.layout.historyHeight))
	m.history.GotoBottom()
}
