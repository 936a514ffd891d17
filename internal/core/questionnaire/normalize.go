package questionnaire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrStructure reports a fetched payload without a usable question list.
var ErrStructure = errors.New("questionnaire payload has no question list")

// RawAuthor is the wire shape of the questionnaire author.
type RawAuthor struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// RawOption is the wire shape of an option.
type RawOption struct {
	ID         int    `json:"id"`
	OptionText string `json:"optionText"`
	Order      int    `json:"order"`
}

// RawQuestion is the wire shape of a question record.
type RawQuestion struct {
	ID             int         `json:"id"`
	Text           string      `json:"text"`
	QuestionTypeID TypeTag     `json:"questionTypeId"`
	Options        []RawOption `json:"options,omitempty"`
}

// RawQuestionnaire is the wire shape of the fetch response. Questions is kept
// raw so that a missing or non-array list can be told apart from an empty one.
type RawQuestionnaire struct {
	Title     string          `json:"title"`
	Author    *RawAuthor      `json:"author"`
	Questions json.RawMessage `json:"questions"`
}

// TypeTag accepts the question type either as a JSON number or as a numeric string.
type TypeTag int

// UnmarshalJSON implements json.Unmarshaler.
func (t *TypeTag) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*t = TypeTag(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("question type must be a number: %s", string(data))
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("question type must be a number: %q", s)
	}
	*t = TypeTag(n)
	return nil
}

// DecodeQuestionnaire decodes a fetch response body and normalizes it.
func DecodeQuestionnaire(id string, body []byte) (*Questionnaire, error) {
	var raw RawQuestionnaire
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStructure, err)
	}
	return Normalize(id, raw)
}

// Normalize turns a raw questionnaire into typed questions. Either the whole
// list is normalized or ErrStructure is returned; there is no partial result.
func Normalize(id string, raw RawQuestionnaire) (*Questionnaire, error) {
	list := bytes.TrimSpace(raw.Questions)
	if len(list) == 0 || list[0] != '[' {
		return nil, ErrStructure
	}

	var records []RawQuestion
	if err := json.Unmarshal(list, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStructure, err)
	}

	q := &Questionnaire{
		ID:        id,
		Title:     raw.Title,
		Questions: make([]Question, 0, len(records)),
	}
	if raw.Author != nil {
		q.Author = Author{FirstName: raw.Author.FirstName, LastName: raw.Author.LastName}
	}
	for _, r := range records {
		q.Questions = append(q.Questions, NormalizeQuestion(r))
	}
	return q, nil
}

// NormalizeQuestion converts one raw record into its typed variant.
func NormalizeQuestion(r RawQuestion) Question {
	switch Kind(r.QuestionTypeID) {
	case KindFreeText:
		return NewText(r.ID, r.Text)
	case KindSingleChoice:
		return NewSingleChoice(r.ID, r.Text, convertOptions(r.Options))
	case KindMultiChoice:
		return NewMultiChoice(r.ID, r.Text, convertOptions(r.Options))
	case KindDropdown:
		return NewDropdown(r.ID, r.Text, convertOptions(r.Options))
	case KindScale:
		return DecodeScale(r.ID, r.Text)
	default:
		return UnsupportedQuestion{Base: Base{ID: r.ID, Text: r.Text}, RawKind: int(r.QuestionTypeID)}
	}
}

// DecodeScale reads the encoded "prompt|left|right|divisions" text of a
// scale question.
func DecodeScale(id int, text string) ScaleQuestion {
	parts := strings.Split(text, ScaleDelimiter)
	if len(parts) < 4 {
		prompt := parts[0]
		if prompt == "" {
			prompt = text
		}
		return NewScale(id, prompt, DefaultLeftLabel, DefaultRightLabel, DefaultDivisions)
	}

	divisions, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil || divisions <= 0 {
		divisions = DefaultDivisions
	}
	return NewScale(id, parts[0], parts[1], parts[2], divisions)
}

// EncodeScale is the inverse of DecodeScale.
func EncodeScale(prompt, left, right string, divisions int) string {
	return strings.Join([]string{prompt, left, right, strconv.Itoa(divisions)}, ScaleDelimiter)
}

func convertOptions(raw []RawOption) []Option {
	if len(raw) == 0 {
		return nil
	}
	options := make([]Option, 0, len(raw))
	for _, r := range raw {
		options = append(options, Option{ID: r.ID, Text: r.OptionText, Order: r.Order})
	}
	return options
}
