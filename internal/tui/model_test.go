package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/anketa/internal/core/answer"
	"github.com/example/anketa/internal/core/questionnaire"
	"github.com/example/anketa/internal/core/session"
	"github.com/example/anketa/internal/core/validation"
	"github.com/example/anketa/internal/ports/primary"
)

// mockService implements primary.QuestionnaireService for testing
type mockService struct {
	loadErr   error
	submitErr error
	sessionID string

	submitted []session.Session
}

func (m *mockService) Load(ctx context.Context, id string) (session.Session, error) {
	if m.loadErr != nil {
		return session.Session{}, m.loadErr
	}
	sid := m.sessionID
	if sid == "" {
		sid = "S-1"
	}
	return session.New(sid, testQuestionnaire()), nil
}

func (m *mockService) Submit(ctx context.Context, req primary.SubmitRequest) (*primary.SubmitResponse, error) {
	m.submitted = append(m.submitted, req.Session)
	validated := req.Session.Validate()
	if !validated.Valid() {
		return &primary.SubmitResponse{Session: validated}, primary.ErrValidationFailed
	}
	if m.submitErr != nil {
		return &primary.SubmitResponse{Session: validated, Sent: 1}, m.submitErr
	}
	return &primary.SubmitResponse{Session: validated.Complete(), Sent: len(validated.Questionnaire.Questions)}, nil
}

func testQuestionnaire() *questionnaire.Questionnaire {
	return &questionnaire.Questionnaire{
		ID:    "15",
		Title: "Опрос",
		Questions: []questionnaire.Question{
			questionnaire.NewText(1, "Имя"),
			questionnaire.NewSingleChoice(2, "Цвет", []questionnaire.Option{
				{ID: 21, Text: "Красный", Order: 1},
				{ID: 22, Text: "Синий", Order: 2},
			}),
			questionnaire.NewMultiChoice(3, "Фрукты", []questionnaire.Option{
				{ID: 31, Text: "Яблоко", Order: 1},
				{ID: 32, Text: "Груша", Order: 2},
			}),
			questionnaire.NewScale(4, "Настроение", "Плохо", "Хорошо", 5),
		},
	}
}

// collect runs cmd and returns the messages it produces, expanding batches.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func find[T tea.Msg](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, msg := range msgs {
		if typed, ok := msg.(T); ok {
			return typed
		}
	}
	var zero T
	t.Fatalf("no %T among %v", zero, msgs)
	return zero
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// loaded returns a model that has finished loading.
func loaded(t *testing.T, svc *mockService) Model {
	t.Helper()
	m := New(context.Background(), svc, "15", nil)
	msg := find[loadedMsg](t, collect(m.Init()))
	m, _ = update(t, m, msg)
	if m.phase != phaseAnswering {
		t.Fatalf("phase = %v after load", m.phase)
	}
	return m
}

func TestModel_Load(t *testing.T) {
	m := loaded(t, &mockService{})

	if m.ticket != "S-1" {
		t.Errorf("ticket = %q, want the session id", m.ticket)
	}
	if m.page != 0 || !m.input.Focused() {
		t.Errorf("expected focused text input on first page")
	}
	view := m.View()
	if !strings.Contains(view, "Опрос") || !strings.Contains(view, "Вопрос 1 из 4") {
		t.Errorf("unexpected view:\n%s", view)
	}
}

func TestModel_LoadFailure(t *testing.T) {
	svc := &mockService{loadErr: &primary.Failure{Kind: primary.FailureGeneric, Message: "Произошла ошибка при загрузке анкеты."}}
	m := New(context.Background(), svc, "15", nil)
	m, _ = update(t, m, find[loadedMsg](t, collect(m.Init())))

	if m.phase != phaseFailed {
		t.Fatalf("phase = %v, want failed", m.phase)
	}
	if !strings.Contains(m.View(), "Произошла ошибка при загрузке анкеты.") {
		t.Errorf("failure not shown:\n%s", m.View())
	}
	if !strings.Contains(m.View(), "r: повторить") {
		t.Errorf("retry hint missing:\n%s", m.View())
	}
	if m.Err() == nil {
		t.Error("Err() should report the load failure")
	}

	// Retrying issues a new fetch under a new ticket.
	svc.loadErr = nil
	old := m.ticket
	m, cmd := update(t, m, key("r"))
	if m.phase != phaseLoading || m.ticket == old {
		t.Fatalf("retry did not restart loading")
	}
	m, _ = update(t, m, find[loadedMsg](t, collect(cmd)))
	if m.phase != phaseAnswering {
		t.Errorf("phase = %v after retry", m.phase)
	}
}

func TestModel_ClosedQuestionnaireOnLoad(t *testing.T) {
	closed := &primary.Failure{Kind: primary.FailureNotFound, Message: "Анкета закрыта или была удалена"}
	svc := &mockService{loadErr: closed}
	m := New(context.Background(), svc, "15", nil)
	m, _ = update(t, m, find[loadedMsg](t, collect(m.Init())))

	if m.phase != phaseFailed {
		t.Fatalf("phase = %v, want failed", m.phase)
	}
	view := m.View()
	if !strings.Contains(view, closed.Message) {
		t.Errorf("failure not shown:\n%s", view)
	}
	if strings.Contains(view, "повторить") {
		t.Errorf("retry must not be offered for a closed questionnaire:\n%s", view)
	}

	svc.loadErr = nil
	m, cmd := update(t, m, key("r"))
	if m.phase != phaseFailed || cmd != nil {
		t.Errorf("r restarted the session: phase %v, cmd %v", m.phase, cmd != nil)
	}

	_, cmd = update(t, m, key("q"))
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestModel_ClosedQuestionnaireOnSubmit(t *testing.T) {
	closed := &primary.Failure{Kind: primary.FailureNotFound, Message: "Не удалось отправить ответ. Возможно, анкета была закрыта или удалена."}
	svc := &mockService{submitErr: closed}
	m := loaded(t, svc)

	m, _ = update(t, m, key("Иван"))
	m, _ = update(t, m, key("tab"))
	m, _ = update(t, m, key("space"))
	m, _ = update(t, m, key("tab"))
	m, _ = update(t, m, key("space"))

	m, cmd := update(t, m, key("ctrl+s"))
	m, _ = update(t, m, find[submittedMsg](t, collect(cmd)))

	if m.phase != phaseFailed {
		t.Fatalf("phase = %v, want failed", m.phase)
	}
	if !strings.Contains(m.View(), closed.Message) {
		t.Errorf("failure not shown:\n%s", m.View())
	}
	if strings.Contains(m.View(), "повторить") {
		t.Errorf("retry must not be offered for a closed questionnaire:\n%s", m.View())
	}
	if m.Err() == nil {
		t.Error("Err() should report the failure")
	}

	for _, k := range []string{"ctrl+s", "r", "enter"} {
		m, cmd = update(t, m, key(k))
		if m.phase != phaseFailed || cmd != nil {
			t.Errorf("%s after a closed questionnaire: phase %v, cmd %v", k, m.phase, cmd != nil)
		}
	}
	if len(svc.submitted) != 1 {
		t.Errorf("submitted %d times, want 1", len(svc.submitted))
	}
}

func TestModel_DropsStaleResults(t *testing.T) {
	svc := &mockService{}
	m := New(context.Background(), svc, "15", nil)
	stale := loadedMsg{ticket: "someone-else", sess: session.New("S-9", testQuestionnaire())}

	m, _ = update(t, m, stale)
	if m.phase != phaseLoading {
		t.Fatalf("stale load result was applied")
	}

	m, _ = update(t, m, find[loadedMsg](t, collect(m.Init())))
	m, _ = update(t, m, submittedMsg{ticket: "S-9", resp: &primary.SubmitResponse{Session: session.New("S-9", testQuestionnaire()).Complete()}})
	if m.phase != phaseAnswering || m.sess.ID != "S-1" {
		t.Errorf("submit result of another session was applied: phase %v, session %s", m.phase, m.sess.ID)
	}
}

func TestModel_AnswerEveryKindAndSubmit(t *testing.T) {
	svc := &mockService{}
	m := loaded(t, svc)

	// Page 1: text
	m, _ = update(t, m, key("Иван"))
	if v, _ := m.sess.Answers.Get(1); v != answer.Text("Иван") {
		t.Fatalf("text answer = %v", v)
	}
	m, _ = update(t, m, key("enter"))

	// Page 2: single choice, pick the second option
	m, _ = update(t, m, key("down"))
	m, _ = update(t, m, key("space"))
	if v, _ := m.sess.Answers.Get(2); v != answer.Choose(22) {
		t.Fatalf("choice answer = %v", v)
	}
	m, _ = update(t, m, key("tab"))

	// Page 3: multi choice, toggle both then untoggle the first
	m, _ = update(t, m, key("space"))
	m, _ = update(t, m, key("down"))
	m, _ = update(t, m, key("space"))
	m, _ = update(t, m, key("up"))
	m, _ = update(t, m, key("space"))
	v, _ := m.sess.Answers.Get(3)
	if set, _ := v.(answer.Selections); len(set) != 1 || !set.Contains(32) {
		t.Fatalf("multi answer = %v", v)
	}
	m, _ = update(t, m, key("tab"))

	// Page 4: scale starts at the midpoint
	m, _ = update(t, m, key("right"))
	if v, _ := m.sess.Answers.Get(4); v != answer.ScaleValue(4) {
		t.Fatalf("scale answer = %v", v)
	}
	m, _ = update(t, m, key("5"))
	m, _ = update(t, m, key("right"))
	if v, _ := m.sess.Answers.Get(4); v != answer.ScaleValue(5) {
		t.Fatalf("scale must stay in range, got %v", v)
	}

	// Enter on the last page submits
	m, cmd := update(t, m, key("enter"))
	if m.phase != phaseSubmitting {
		t.Fatalf("phase = %v, want submitting", m.phase)
	}
	m, _ = update(t, m, find[submittedMsg](t, collect(cmd)))
	if !m.Completed() {
		t.Fatalf("phase = %v, want done", m.phase)
	}
	if !strings.Contains(m.View(), "Спасибо") {
		t.Errorf("thank-you view missing:\n%s", m.View())
	}
	if len(svc.submitted) != 1 {
		t.Errorf("submitted %d times", len(svc.submitted))
	}
}

func TestModel_ValidationJumpsToFirstError(t *testing.T) {
	m := loaded(t, &mockService{})
	m, _ = update(t, m, key("Иван"))
	m, _ = update(t, m, key("tab"))
	m, _ = update(t, m, key("tab"))
	m, _ = update(t, m, key("tab"))

	m, cmd := update(t, m, key("ctrl+s"))
	m, _ = update(t, m, find[submittedMsg](t, collect(cmd)))

	if m.phase != phaseAnswering {
		t.Fatalf("phase = %v, want answering", m.phase)
	}
	if m.page != 1 {
		t.Errorf("page = %d, want the single-choice page", m.page)
	}
	if !strings.Contains(m.View(), validation.MsgSingleChoice) {
		t.Errorf("error message not shown:\n%s", m.View())
	}

	// Answering clears that question's error only.
	m, _ = update(t, m, key("space"))
	if m.sess.Errors.Has(2) || !m.sess.Errors.Has(3) {
		t.Errorf("errors = %v", m.sess.Errors)
	}
}

func TestModel_SubmitFailureKeepsAnswers(t *testing.T) {
	failure := &primary.Failure{Kind: primary.FailureGeneric, Message: "Произошла непредвиденная ошибка при отправке ответов."}
	svc := &mockService{submitErr: failure}
	m := loaded(t, svc)

	m, _ = update(t, m, key("Иван"))
	m, _ = update(t, m, key("tab"))
	m, _ = update(t, m, key("space"))
	m, _ = update(t, m, key("tab"))
	m, _ = update(t, m, key("space"))
	before := m.sess.Answers.Snapshot()

	m, cmd := update(t, m, key("ctrl+s"))
	m, _ = update(t, m, find[submittedMsg](t, collect(cmd)))

	if m.phase != phaseAnswering {
		t.Fatalf("phase = %v, want answering", m.phase)
	}
	if !strings.Contains(m.View(), failure.Message) {
		t.Errorf("failure banner missing:\n%s", m.View())
	}
	after := m.sess.Answers.Snapshot()
	for id, v := range before {
		if answer.Describe(after[id]) != answer.Describe(v) {
			t.Errorf("answer %d changed from %v to %v", id, v, after[id])
		}
	}
}

func TestModel_KeysIgnoredWhileSubmitting(t *testing.T) {
	m := loaded(t, &mockService{})
	m.phase = phaseSubmitting

	m, cmd := update(t, m, key("ctrl+s"))
	if cmd != nil {
		t.Error("a second submission must not start while one is in flight")
	}
	if m.phase != phaseSubmitting {
		t.Errorf("phase = %v", m.phase)
	}
}

func TestModel_QuitCancelsContext(t *testing.T) {
	m := loaded(t, &mockService{})
	m, cmd := update(t, m, key("esc"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.ctx.Err() == nil {
		t.Error("quitting must cancel in-flight work")
	}
}

func TestModel_TextPageTypesQ(t *testing.T) {
	m := loaded(t, &mockService{})
	m, cmd := update(t, m, key("q"))
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Fatal("q on a text page must be typed, not quit")
		}
	}
	if v, _ := m.sess.Answers.Get(1); v != answer.Text("q") {
		t.Errorf("text = %v", v)
	}
}

func TestModel_EmptyQuestionnaire(t *testing.T) {
	m := New(context.Background(), &mockService{}, "15", nil)
	empty := session.New("S-1", &questionnaire.Questionnaire{ID: "15", Title: "Пусто"})
	m, _ = update(t, m, loadedMsg{ticket: m.ticket, sess: empty})

	if !strings.Contains(m.View(), "нет вопросов") {
		t.Errorf("unexpected view:\n%s", m.View())
	}
	m, cmd := update(t, m, key("enter"))
	if m.phase != phaseSubmitting || cmd == nil {
		t.Errorf("enter should submit an empty questionnaire")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, lo, hi, want int }{
		{5, 1, 3, 3},
		{0, 1, 3, 1},
		{2, 1, 3, 2},
		{1, 0, -1, 0},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

