package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/anketa/internal/core/answer"
	"github.com/example/anketa/internal/core/questionnaire"
	"github.com/example/anketa/internal/core/session"
)

// AnswerFile is the YAML document accepted by `anketa submit`:
//
//	answers:
//	  1: Иван            # free text
//	  2: 22              # option id (or option text) for single choice and dropdown
//	  3: [31, 33]        # option ids (or texts) for multi choice
//	  4: 3               # scale division
//
// Questions left out keep their initial answer.
type AnswerFile struct {
	Answers map[int]yaml.Node `yaml:"answers"`
}

// ParseAnswerFile decodes an answers document.
func ParseAnswerFile(r io.Reader) (*AnswerFile, error) {
	var file AnswerFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse answers: %w", err)
	}
	return &file, nil
}

// Apply writes every answer of the file into the session, in question order.
func (f *AnswerFile) Apply(s session.Session) (session.Session, error) {
	for _, q := range s.Questionnaire.Questions {
		node, ok := f.Answers[q.QuestionID()]
		if !ok {
			continue
		}
		next, err := applyAnswer(s, q, &node)
		if err != nil {
			return s, fmt.Errorf("question %d: %w", q.QuestionID(), err)
		}
		s = next
	}
	for id := range f.Answers {
		if _, ok := s.Questionnaire.Question(id); !ok {
			return s, fmt.Errorf("question %d: %w", id, answer.ErrUnknownQuestion)
		}
	}
	return s, nil
}

func applyAnswer(s session.Session, q questionnaire.Question, node *yaml.Node) (session.Session, error) {
	id := q.QuestionID()
	switch typed := q.(type) {
	case questionnaire.TextQuestion:
		if node.Kind != yaml.ScalarNode {
			return s, fmt.Errorf("expected text")
		}
		return s.SetAnswer(id, answer.Text(node.Value))

	case questionnaire.SingleChoiceQuestion, questionnaire.DropdownQuestion:
		if node.Kind != yaml.ScalarNode {
			return s, fmt.Errorf("expected a single option")
		}
		opt, err := resolveOption(questionnaire.OptionsOf(typed), node.Value)
		if err != nil {
			return s, err
		}
		return s.SetAnswer(id, answer.Choose(opt.ID))

	case questionnaire.MultiChoiceQuestion:
		values, err := scalarList(node)
		if err != nil {
			return s, err
		}
		ids := make([]int, 0, len(values))
		for _, v := range values {
			opt, err := resolveOption(typed.Options, v)
			if err != nil {
				return s, err
			}
			ids = append(ids, opt.ID)
		}
		return s.SetAnswer(id, answer.NewSelections(ids...))

	case questionnaire.ScaleQuestion:
		n, err := strconv.Atoi(strings.TrimSpace(node.Value))
		if node.Kind != yaml.ScalarNode || err != nil {
			return s, fmt.Errorf("expected a number from 1 to %d", typed.Divisions)
		}
		return s.SetAnswer(id, answer.ScaleValue(n))

	default:
		return s, fmt.Errorf("questions of type %d cannot be answered", int(q.Kind()))
	}
}

// resolveOption accepts an option id or, failing that, the exact option text.
func resolveOption(options []questionnaire.Option, value string) (questionnaire.Option, error) {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil {
		if opt, ok := questionnaire.FindOption(options, n); ok {
			return opt, nil
		}
	}
	for _, opt := range options {
		if opt.Text == value {
			return opt, nil
		}
	}
	return questionnaire.Option{}, fmt.Errorf("no option %q", value)
}

func scalarList(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return []string{node.Value}, nil
	case yaml.SequenceNode:
		values := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("expected a list of options")
			}
			values = append(values, item.Value)
		}
		return values, nil
	default:
		return nil, fmt.Errorf("expected a list of options")
	}
}
