// Package session holds the state of one questionnaire-viewing session.
// Every operation is a pure function returning the next state; nothing is
// shared between sessions.
package session

import (
	"errors"
	"fmt"

	"github.com/example/anketa/internal/core/answer"
	"github.com/example/anketa/internal/core/questionnaire"
	"github.com/example/anketa/internal/core/submission"
	"github.com/example/anketa/internal/core/validation"
)

// ErrNotMultiChoice is returned when toggling an option of a question that
// is not multi-choice.
var ErrNotMultiChoice = errors.New("question is not multi-choice")

// Session is the answer store and validation state of one questionnaire.
type Session struct {
	ID            string
	Questionnaire *questionnaire.Questionnaire
	Answers       answer.Store
	Errors        validation.Errors
	Completed     bool
}

// New starts a session with freshly initialized answers.
func New(id string, q *questionnaire.Questionnaire) Session {
	return Session{
		ID:            id,
		Questionnaire: q,
		Answers:       answer.Init(q.Questions),
	}
}

// SetAnswer replaces the answer of a question and clears its validation error.
func (s Session) SetAnswer(questionID int, v answer.Value) (Session, error) {
	answers, err := s.Answers.With(questionID, v)
	if err != nil {
		return s, err
	}
	s.Answers = answers
	s.Errors = s.Errors.Without(questionID)
	return s, nil
}

// ToggleOption flips one option of a multi-choice question and clears its
// validation error.
func (s Session) ToggleOption(questionID, optionID int) (Session, error) {
	q, ok := s.Questionnaire.Question(questionID)
	if !ok {
		return s, fmt.Errorf("%w: %d", answer.ErrUnknownQuestion, questionID)
	}
	if _, multi := q.(questionnaire.MultiChoiceQuestion); !multi {
		return s, fmt.Errorf("%w: %d", ErrNotMultiChoice, questionID)
	}
	answers, err := s.Answers.Toggle(questionID, optionID)
	if err != nil {
		return s, err
	}
	s.Answers = answers
	s.Errors = s.Errors.Without(questionID)
	return s, nil
}

// Validate recomputes the validation errors wholesale.
func (s Session) Validate() Session {
	s.Errors = validation.Validate(s.Questionnaire.Questions, s.Answers)
	return s
}

// Valid reports whether the current errors are empty.
func (s Session) Valid() bool { return s.Errors.Empty() }

// Plan returns the submission plan for this session's questionnaire.
func (s Session) Plan() submission.Plan {
	return submission.NewPlan(s.Questionnaire)
}

// Complete marks the session as submitted.
func (s Session) Complete() Session {
	s.Completed = true
	return s
}
