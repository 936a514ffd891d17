package tui

import (
	"context"
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/anketa/internal/core/answer"
	"github.com/example/anketa/internal/core/questionnaire"
	"github.com/example/anketa/internal/core/session"
	"github.com/example/anketa/internal/ports/primary"
)

type phase int

const (
	phaseLoading phase = iota
	phaseAnswering
	phaseSubmitting
	phaseDone
	phaseFailed
)

// loadedMsg is the result of a fetch. ticket identifies the fetch that
// produced it.
type loadedMsg struct {
	ticket string
	sess   session.Session
	err    error
}

// submittedMsg is the result of a submission. ticket is the session id.
type submittedMsg struct {
	ticket string
	resp   *primary.SubmitResponse
	err    error
}

// Model is the bubbletea model of one questionnaire-filling session.
type Model struct {
	ctx             context.Context
	cancel          context.CancelFunc
	service         primary.QuestionnaireService
	logger          *zap.Logger
	questionnaireID string

	// ticket tags in-flight results. Results carrying any other ticket belong
	// to a session that is gone and are dropped.
	ticket string
	phase  phase

	sess    session.Session
	page    int
	cursor  int
	failure string
	closed  bool // questionnaire closed or deleted; nothing left to retry
	sent    int

	input   textinput.Model
	spinner spinner.Model
	width   int
	styles  Styles
}

// New creates the model for filling questionnaireID.
func New(ctx context.Context, service primary.QuestionnaireService, questionnaireID string, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(ctx)

	ti := textinput.New()
	ti.Placeholder = "Ваш ответ…"
	ti.CharLimit = 2000
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:             ctx,
		cancel:          cancel,
		service:         service,
		logger:          logger,
		questionnaireID: questionnaireID,
		ticket:          uuid.NewString(),
		phase:           phaseLoading,
		input:           ti,
		spinner:         sp,
		styles:          DefaultStyles(),
	}
}

// Init starts the fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

// Err returns the failure that ended the session, if any.
func (m Model) Err() error {
	if m.phase == phaseFailed && m.failure != "" {
		return errors.New(m.failure)
	}
	return nil
}

// Completed reports whether the answers were submitted.
func (m Model) Completed() bool { return m.phase == phaseDone }

func (m Model) load() tea.Cmd {
	ctx, svc, id, ticket := m.ctx, m.service, m.questionnaireID, m.ticket
	return func() tea.Msg {
		sess, err := svc.Load(ctx, id)
		return loadedMsg{ticket: ticket, sess: sess, err: err}
	}
}

func (m Model) submit() tea.Cmd {
	ctx, svc, sess := m.ctx, m.service, m.sess
	return func() tea.Msg {
		resp, err := svc.Submit(ctx, primary.SubmitRequest{Session: sess})
		return submittedMsg{ticket: sess.ID, resp: resp, err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseLoading && m.phase != phaseSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		return m.handleLoaded(msg)

	case submittedMsg:
		return m.handleSubmitted(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.onTextPage() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if msg.ticket != m.ticket || m.phase != phaseLoading {
		m.logger.Debug("dropping stale load result", zap.String("ticket", msg.ticket))
		return m, nil
	}
	if msg.err != nil {
		m.phase = phaseFailed
		m.failure = failureMessage(msg.err)
		m.closed = isClosed(msg.err)
		return m, nil
	}
	m.sess = msg.sess
	m.ticket = msg.sess.ID
	m.phase = phaseAnswering
	return m, m.enterPage(0)
}

func (m Model) handleSubmitted(msg submittedMsg) (tea.Model, tea.Cmd) {
	if msg.ticket != m.ticket || m.phase != phaseSubmitting {
		m.logger.Debug("dropping stale submit result", zap.String("ticket", msg.ticket))
		return m, nil
	}
	if msg.resp != nil {
		m.sent = msg.resp.Sent
	}

	switch {
	case msg.err == nil:
		m.sess = msg.resp.Session
		m.phase = phaseDone
		m.failure = ""
		return m, nil

	case errors.Is(msg.err, primary.ErrValidationFailed):
		m.sess = msg.resp.Session
		m.phase = phaseAnswering
		m.failure = ""
		page := 0
		if first, ok := m.sess.Errors.First(); ok {
			page = m.sess.Questionnaire.Index(first.QuestionID)
		}
		return m, m.enterPage(page)

	case isClosed(msg.err):
		m.phase = phaseFailed
		m.failure = failureMessage(msg.err)
		m.closed = true
		return m, nil

	default:
		// Answers stay as they were so the user can retry.
		m.phase = phaseAnswering
		m.failure = failureMessage(msg.err)
		return m, m.enterPage(m.page)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "esc" {
		m.cancel()
		return m, tea.Quit
	}

	switch m.phase {
	case phaseLoading, phaseSubmitting:
		return m, nil
	case phaseDone:
		if key == "enter" || key == "q" {
			m.cancel()
			return m, tea.Quit
		}
		return m, nil
	case phaseFailed:
		switch key {
		case "q":
			m.cancel()
			return m, tea.Quit
		case "r":
			if m.closed {
				return m, nil
			}
			m.phase = phaseLoading
			m.failure = ""
			m.ticket = uuid.NewString()
			return m, tea.Batch(m.spinner.Tick, m.load())
		}
		return m, nil
	}

	// Answering
	switch key {
	case "ctrl+s":
		return m.startSubmit()
	case "tab", "pgdown":
		return m, m.enterPage(m.page + 1)
	case "shift+tab", "pgup":
		return m, m.enterPage(m.page - 1)
	case "enter":
		if m.page >= len(m.sess.Questionnaire.Questions)-1 {
			return m.startSubmit()
		}
		return m, m.enterPage(m.page + 1)
	}

	q, ok := m.current()
	if !ok {
		if key == "q" {
			m.cancel()
			return m, tea.Quit
		}
		return m, nil
	}

	switch typed := q.(type) {
	case questionnaire.TextQuestion:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.sess, _ = m.sess.SetAnswer(typed.ID, answer.Text(m.input.Value()))
		return m, cmd

	case questionnaire.SingleChoiceQuestion, questionnaire.DropdownQuestion:
		options := questionnaire.OptionsOf(typed)
		switch key {
		case "up", "k":
			m.cursor = clamp(m.cursor-1, 0, len(options)-1)
		case "down", "j":
			m.cursor = clamp(m.cursor+1, 0, len(options)-1)
		case " ", "space", "x":
			if len(options) > 0 {
				m.sess, _ = m.sess.SetAnswer(q.QuestionID(), answer.Choose(options[m.cursor].ID))
			}
		case "q":
			m.cancel()
			return m, tea.Quit
		}

	case questionnaire.MultiChoiceQuestion:
		switch key {
		case "up", "k":
			m.cursor = clamp(m.cursor-1, 0, len(typed.Options)-1)
		case "down", "j":
			m.cursor = clamp(m.cursor+1, 0, len(typed.Options)-1)
		case " ", "space", "x":
			if len(typed.Options) > 0 {
				m.sess, _ = m.sess.ToggleOption(typed.ID, typed.Options[m.cursor].ID)
			}
		case "q":
			m.cancel()
			return m, tea.Quit
		}

	case questionnaire.ScaleQuestion:
		current, _ := m.scaleValue(typed)
		switch key {
		case "left", "h":
			m.sess, _ = m.sess.SetAnswer(typed.ID, answer.ScaleValue(clamp(current-1, 1, typed.Divisions)))
		case "right", "l":
			m.sess, _ = m.sess.SetAnswer(typed.ID, answer.ScaleValue(clamp(current+1, 1, typed.Divisions)))
		case "q":
			m.cancel()
			return m, tea.Quit
		default:
			if n, err := strconv.Atoi(key); err == nil && typed.InRange(n) {
				m.sess, _ = m.sess.SetAnswer(typed.ID, answer.ScaleValue(n))
			}
		}

	default:
		if key == "q" {
			m.cancel()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) startSubmit() (tea.Model, tea.Cmd) {
	m.phase = phaseSubmitting
	m.failure = ""
	m.input.Blur()
	return m, tea.Batch(m.spinner.Tick, m.submit())
}

// enterPage moves to page i (clamped) and prepares its widgets.
func (m *Model) enterPage(i int) tea.Cmd {
	n := len(m.sess.Questionnaire.Questions)
	if n == 0 {
		m.page = 0
		return nil
	}
	m.page = clamp(i, 0, n-1)
	m.cursor = 0

	q := m.sess.Questionnaire.Questions[m.page]
	if _, isText := q.(questionnaire.TextQuestion); isText {
		v, _ := m.sess.Answers.Get(q.QuestionID())
		text, _ := v.(answer.Text)
		m.input.SetValue(string(text))
		m.input.CursorEnd()
		return m.input.Focus()
	}

	m.input.Blur()
	if sel, ok := m.selectedOptionIndex(q); ok {
		m.cursor = sel
	}
	return nil
}

func (m Model) current() (questionnaire.Question, bool) {
	if m.sess.Questionnaire == nil || m.page >= len(m.sess.Questionnaire.Questions) {
		return nil, false
	}
	return m.sess.Questionnaire.Questions[m.page], true
}

func (m Model) onTextPage() bool {
	if m.phase != phaseAnswering {
		return false
	}
	q, ok := m.current()
	if !ok {
		return false
	}
	_, isText := q.(questionnaire.TextQuestion)
	return isText
}

func (m Model) selectedOptionIndex(q questionnaire.Question) (int, bool) {
	v, _ := m.sess.Answers.Get(q.QuestionID())
	sel, ok := v.(answer.Selection)
	if !ok || !sel.Chosen {
		return 0, false
	}
	for i, opt := range questionnaire.OptionsOf(q) {
		if opt.ID == sel.OptionID {
			return i, true
		}
	}
	return 0, false
}

func (m Model) scaleValue(q questionnaire.ScaleQuestion) (int, bool) {
	v, _ := m.sess.Answers.Get(q.ID)
	if sv, ok := v.(answer.ScaleValue); ok {
		return int(sv), true
	}
	return q.Midpoint(), false
}

// isClosed reports whether err means the questionnaire is gone for good.
func isClosed(err error) bool {
	failure, ok := primary.AsFailure(err)
	return ok && failure.Kind == primary.FailureNotFound
}

func failureMessage(err error) string {
	if failure, ok := primary.AsFailure(err); ok {
		return failure.Message
	}
	return err.Error()
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
