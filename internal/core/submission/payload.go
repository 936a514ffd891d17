// Package submission contains the pure part of answer submission: the
// per-question payloads and the ordered plan of pending requests.
package submission

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/anketa/internal/core/answer"
	"github.com/example/anketa/internal/core/questionnaire"
	"github.com/example/anketa/internal/core/validation"
)

// Internal faults. They mean the store holds something the validator should
// not have let through.
var (
	ErrInvalidReference = errors.New("answer references an unknown option")
	ErrOutOfRange       = errors.New("scale value out of range")
	ErrInvalidValue     = errors.New("answer has the wrong shape for its question")
)

// Payload is the JSON body of one answer POST. Exactly one field is set.
type Payload struct {
	AnswerText     *string `json:"AnswerText,omitempty"`
	AnswerClose    *int    `json:"AnswerClose,omitempty"`
	AnswerMultiple []int   `json:"AnswerMultiple,omitempty"`
	AnswerScale    *int    `json:"AnswerScale,omitempty"`
}

// TextPayload builds {AnswerText}.
func TextPayload(s string) Payload { return Payload{AnswerText: &s} }

// ClosePayload builds {AnswerClose}.
func ClosePayload(order int) Payload { return Payload{AnswerClose: &order} }

// MultiplePayload builds {AnswerMultiple}.
func MultiplePayload(orders []int) Payload { return Payload{AnswerMultiple: orders} }

// ScalePayload builds {AnswerScale}.
func ScalePayload(v int) Payload { return Payload{AnswerScale: &v} }

// Field returns the name of the set field, for logging.
func (p Payload) Field() string {
	switch {
	case p.AnswerText != nil:
		return "AnswerText"
	case p.AnswerClose != nil:
		return "AnswerClose"
	case p.AnswerMultiple != nil:
		return "AnswerMultiple"
	case p.AnswerScale != nil:
		return "AnswerScale"
	default:
		return ""
	}
}

// BuildPayload converts a validated answer into its wire payload.
// ok is false for questions that are never submitted.
func BuildPayload(q questionnaire.Question, v answer.Value) (p Payload, ok bool, err error) {
	id := q.QuestionID()
	switch typed := q.(type) {
	case questionnaire.TextQuestion:
		text, isText := v.(answer.Text)
		trimmed := strings.TrimSpace(string(text))
		if !isText || trimmed == "" {
			return Payload{}, false, fmt.Errorf("%w: question %d", ErrInvalidValue, id)
		}
		return TextPayload(trimmed), true, nil

	case questionnaire.SingleChoiceQuestion:
		return closePayload(id, typed.Options, v)

	case questionnaire.DropdownQuestion:
		return closePayload(id, typed.Options, v)

	case questionnaire.MultiChoiceQuestion:
		set, isSet := v.(answer.Selections)
		if !isSet {
			return Payload{}, false, fmt.Errorf("%w: question %d", ErrInvalidValue, id)
		}
		orders := make([]int, 0, len(set))
		for _, optionID := range set {
			if opt, found := questionnaire.FindOption(typed.Options, optionID); found {
				orders = append(orders, opt.Order)
			}
		}
		if len(orders) != len(set) {
			return Payload{}, false, fmt.Errorf("%w: question %d selects %v", ErrInvalidReference, id, []int(set))
		}
		return MultiplePayload(orders), true, nil

	case questionnaire.ScaleQuestion:
		n, isNumber := validation.ScaleNumber(v)
		if !isNumber || !typed.InRange(n) {
			return Payload{}, false, fmt.Errorf("%w: question %d value %s not in [1, %d]",
				ErrOutOfRange, id, answer.Describe(v), typed.Divisions)
		}
		return ScalePayload(n), true, nil

	default:
		return Payload{}, false, nil
	}
}

func closePayload(id int, options []questionnaire.Option, v answer.Value) (Payload, bool, error) {
	optionID, ok := selectedOption(v)
	if !ok {
		return Payload{}, false, fmt.Errorf("%w: question %d", ErrInvalidValue, id)
	}
	opt, found := questionnaire.FindOption(options, optionID)
	if !found {
		return Payload{}, false, fmt.Errorf("%w: question %d option %d", ErrInvalidReference, id, optionID)
	}
	return ClosePayload(opt.Order), true, nil
}

func selectedOption(v answer.Value) (int, bool) {
	switch typed := v.(type) {
	case answer.Selection:
		return typed.OptionID, typed.Chosen
	case answer.Text:
		n, err := strconv.Atoi(strings.TrimSpace(string(typed)))
		return n, err == nil
	default:
		return 0, false
	}
}
