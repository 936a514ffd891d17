// Package answer contains the answer values and the per-session answer store.
// The store is immutable: every mutation returns a new Store.
package answer

import (
	"errors"
	"fmt"
	"slices"

	"github.com/example/anketa/internal/core/questionnaire"
)

// ErrUnknownQuestion is returned when a question id is not part of the store.
var ErrUnknownQuestion = errors.New("unknown question")

// Value is a closed variant of the answer shapes. A nil Value means
// "undefined".
type Value interface {
	isValue()
}

// Text is a free-text answer. The empty Text is the unanswered sentinel for
// text, single-choice and dropdown questions.
type Text string

// Selection is a single option pick.
type Selection struct {
	OptionID int
	Chosen   bool
}

// Selections is a set of option ids. Insertion order is kept but carries no
// meaning; duplicates are never stored.
type Selections []int

// ScaleValue is a division on a scale question.
type ScaleValue int

func (Text) isValue()       {}
func (Selection) isValue()  {}
func (Selections) isValue() {}
func (ScaleValue) isValue() {}

// Choose returns a chosen Selection for the option.
func Choose(optionID int) Selection {
	return Selection{OptionID: optionID, Chosen: true}
}

// NewSelections builds a set from ids, dropping duplicates.
func NewSelections(ids ...int) Selections {
	out := make(Selections, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// Contains reports whether the option is selected.
func (s Selections) Contains(optionID int) bool {
	return slices.Contains(s, optionID)
}

// Toggle returns a new set with optionID removed if present, added otherwise.
// The receiver is never modified.
func (s Selections) Toggle(optionID int) Selections {
	out := make(Selections, 0, len(s)+1)
	found := false
	for _, id := range s {
		if id == optionID {
			found = true
			continue
		}
		out = append(out, id)
	}
	if !found {
		out = append(out, optionID)
	}
	return out
}

// Describe renders a value for logs and terminal output.
func Describe(v Value) string {
	switch typed := v.(type) {
	case nil:
		return "<undefined>"
	case Text:
		return fmt.Sprintf("%q", string(typed))
	case Selection:
		if !typed.Chosen {
			return "<none>"
		}
		return fmt.Sprintf("option %d", typed.OptionID)
	case Selections:
		return fmt.Sprintf("options %v", []int(typed))
	case ScaleValue:
		return fmt.Sprintf("%d", int(typed))
	default:
		return fmt.Sprintf("%v", typed)
	}
}

// Initial returns the unanswered value for a question.
func Initial(q questionnaire.Question) Value {
	switch typed := q.(type) {
	case questionnaire.MultiChoiceQuestion:
		return Selections{}
	case questionnaire.ScaleQuestion:
		return ScaleValue(typed.Midpoint())
	default:
		return Text("")
	}
}

// Store maps question ids to their current answer.
type Store struct {
	values map[int]Value
	order  []int
}

// Init builds the initial store with exactly one entry per question.
func Init(questions []questionnaire.Question) Store {
	s := Store{
		values: make(map[int]Value, len(questions)),
		order:  make([]int, 0, len(questions)),
	}
	for _, q := range questions {
		id := q.QuestionID()
		if _, dup := s.values[id]; !dup {
			s.order = append(s.order, id)
		}
		s.values[id] = Initial(q)
	}
	return s
}

// Len returns the number of entries.
func (s Store) Len() int { return len(s.order) }

// IDs returns the question ids in declaration order.
func (s Store) IDs() []int { return slices.Clone(s.order) }

// Get returns the stored value for a question.
func (s Store) Get(questionID int) (Value, bool) {
	v, ok := s.values[questionID]
	return v, ok
}

// With returns a store where questionID holds v. A Selections value is
// stored as a copy with duplicates dropped.
func (s Store) With(questionID int, v Value) (Store, error) {
	if _, ok := s.values[questionID]; !ok {
		return s, fmt.Errorf("%w: %d", ErrUnknownQuestion, questionID)
	}
	if set, ok := v.(Selections); ok {
		v = NewSelections(set...)
	}
	next := s.clone()
	next.values[questionID] = v
	return next, nil
}

// Toggle flips optionID in the set stored for questionID. A non-set value
// is treated as the empty set.
func (s Store) Toggle(questionID, optionID int) (Store, error) {
	current, ok := s.values[questionID]
	if !ok {
		return s, fmt.Errorf("%w: %d", ErrUnknownQuestion, questionID)
	}
	set, _ := current.(Selections)
	return s.With(questionID, set.Toggle(optionID))
}

// Snapshot returns a copy of the entries, for display and comparison.
func (s Store) Snapshot() map[int]Value {
	out := make(map[int]Value, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

func (s Store) clone() Store {
	values := make(map[int]Value, len(s.values))
	for k, v := range s.values {
		values[k] = v
	}
	return Store{values: values, order: s.order}
}
