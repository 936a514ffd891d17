// Package validation checks answers against the per-kind emptiness rules.
// Validate is a pure function of the questions and the answer store.
package validation

import (
	"strconv"
	"strings"

	"github.com/example/anketa/internal/core/answer"
	"github.com/example/anketa/internal/core/questionnaire"
)

// Messages shown for each kind of unanswered question.
const (
	MsgFreeText     = "Пожалуйста, заполните это поле"
	MsgSingleChoice = "Пожалуйста, выберите один вариант"
	MsgMultiChoice  = "Пожалуйста, выберите хотя бы один вариант"
	MsgScale        = "Пожалуйста, выберите значение на шкале"
	MsgDropdown     = "Пожалуйста, выберите один вариант из списка"
)

// FieldError is the validation failure of one question.
type FieldError struct {
	QuestionID int
	Message    string
}

// Errors holds the failing questions in declaration order. A question that
// is absent passes.
type Errors []FieldError

// Empty reports whether validation succeeded.
func (e Errors) Empty() bool { return len(e) == 0 }

// Get returns the message for a question.
func (e Errors) Get(questionID int) (string, bool) {
	for _, fe := range e {
		if fe.QuestionID == questionID {
			return fe.Message, true
		}
	}
	return "", false
}

// Has reports whether a question currently fails.
func (e Errors) Has(questionID int) bool {
	_, ok := e.Get(questionID)
	return ok
}

// First returns the earliest failing question, the focus target.
func (e Errors) First() (FieldError, bool) {
	if len(e) == 0 {
		return FieldError{}, false
	}
	return e[0], true
}

// Without returns a copy without the question's entry. The receiver is
// returned as-is when there is nothing to clear.
func (e Errors) Without(questionID int) Errors {
	if !e.Has(questionID) {
		return e
	}
	out := make(Errors, 0, len(e)-1)
	for _, fe := range e {
		if fe.QuestionID != questionID {
			out = append(out, fe)
		}
	}
	return out
}

// Map returns the errors keyed by question id.
func (e Errors) Map() map[int]string {
	out := make(map[int]string, len(e))
	for _, fe := range e {
		out[fe.QuestionID] = fe.Message
	}
	return out
}

// Validate returns the failing questions in declaration order.
func Validate(questions []questionnaire.Question, store answer.Store) Errors {
	var errs Errors
	for _, q := range questions {
		v, _ := store.Get(q.QuestionID())
		if msg, invalid := Check(q, v); invalid {
			errs = append(errs, FieldError{QuestionID: q.QuestionID(), Message: msg})
		}
	}
	return errs
}

// Check applies the emptiness rule of q's kind to v. Unsupported questions
// always pass.
func Check(q questionnaire.Question, v answer.Value) (string, bool) {
	switch q.(type) {
	case questionnaire.TextQuestion:
		return MsgFreeText, !hasText(v)
	case questionnaire.SingleChoiceQuestion:
		return MsgSingleChoice, !hasSelection(v)
	case questionnaire.MultiChoiceQuestion:
		set, ok := v.(answer.Selections)
		return MsgMultiChoice, !ok || len(set) == 0
	case questionnaire.ScaleQuestion:
		_, ok := ScaleNumber(v)
		return MsgScale, !ok
	case questionnaire.DropdownQuestion:
		return MsgDropdown, !hasSelection(v)
	default:
		return "", false
	}
}

// ScaleNumber reads v as an integer division. Text is accepted when it
// parses as an integer.
func ScaleNumber(v answer.Value) (int, bool) {
	switch typed := v.(type) {
	case answer.ScaleValue:
		return int(typed), true
	case answer.Text:
		n, err := strconv.Atoi(strings.TrimSpace(string(typed)))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func hasText(v answer.Value) bool {
	text, ok := v.(answer.Text)
	return ok && strings.TrimSpace(string(text)) != ""
}

func hasSelection(v answer.Value) bool {
	switch typed := v.(type) {
	case nil:
		return false
	case answer.Text:
		return typed != ""
	case answer.Selection:
		return typed.Chosen
	default:
		return true
	}
}
