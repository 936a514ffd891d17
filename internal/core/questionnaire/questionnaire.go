// Package questionnaire contains the pure questionnaire model and the
// normalizer that turns fetched records into typed questions.
package questionnaire

// Kind is the question type tag. The numeric values are the wire
// questionTypeId values.
type Kind int

const (
	KindFreeText     Kind = 1
	KindSingleChoice Kind = 2
	KindMultiChoice  Kind = 3
	KindScale        Kind = 4
	KindDropdown     Kind = 5
)

// String returns a short human name for the kind.
func (k Kind) String() string {
	switch k {
	case KindFreeText:
		return "text"
	case KindSingleChoice:
		return "single"
	case KindMultiChoice:
		return "multi"
	case KindScale:
		return "scale"
	case KindDropdown:
		return "dropdown"
	default:
		return "unknown"
	}
}

// Scale defaults applied when the encoded text is incomplete.
const (
	DefaultDivisions  = 5
	DefaultLeftLabel  = "Min"
	DefaultRightLabel = "Max"

	// ScaleDelimiter separates the encoded parts of a scale question's text.
	ScaleDelimiter = "|"
)

// Author is the questionnaire owner.
type Author struct {
	FirstName string
	LastName  string
}

// Option is one selectable answer of a choice question.
// Order is what goes over the wire when the option is selected.
type Option struct {
	ID    int
	Text  string
	Order int
}

// Question is a closed variant with one case per question kind.
type Question interface {
	QuestionID() int
	Prompt() string
	Kind() Kind
	sealed()
}

// Base holds the fields every question kind shares.
type Base struct {
	ID   int
	Text string
}

func (b Base) QuestionID() int { return b.ID }
func (b Base) Prompt() string  { return b.Text }
func (Base) sealed()           {}

// TextQuestion is answered with free text.
type TextQuestion struct {
	Base
}

func (TextQuestion) Kind() Kind { return KindFreeText }

// SingleChoiceQuestion is answered with exactly one option (radio buttons).
type SingleChoiceQuestion struct {
	Base
	Options []Option
}

func (SingleChoiceQuestion) Kind() Kind { return KindSingleChoice }

// MultiChoiceQuestion is answered with one or more options (checkboxes).
type MultiChoiceQuestion struct {
	Base
	Options []Option
}

func (MultiChoiceQuestion) Kind() Kind { return KindMultiChoice }

// DropdownQuestion is answered with exactly one option from a list.
type DropdownQuestion struct {
	Base
	Options []Option
}

func (DropdownQuestion) Kind() Kind { return KindDropdown }

// ScaleQuestion is answered with an integer in [1, Divisions].
type ScaleQuestion struct {
	Base
	LeftLabel  string
	RightLabel string
	Divisions  int
}

func (ScaleQuestion) Kind() Kind { return KindScale }

// Midpoint is the middle division, rounding up on even counts.
func (q ScaleQuestion) Midpoint() int {
	return (q.Divisions + 1) / 2
}

// InRange reports whether v is a valid division.
func (q ScaleQuestion) InRange(v int) bool {
	return v >= 1 && v <= q.Divisions
}

// UnsupportedQuestion carries a type tag this client does not know.
// It is shown but never validated or submitted.
type UnsupportedQuestion struct {
	Base
	RawKind int
}

func (q UnsupportedQuestion) Kind() Kind { return Kind(q.RawKind) }

// NewText builds a TextQuestion.
func NewText(id int, prompt string) TextQuestion {
	return TextQuestion{Base: Base{ID: id, Text: prompt}}
}

// NewSingleChoice builds a SingleChoiceQuestion.
func NewSingleChoice(id int, prompt string, options []Option) SingleChoiceQuestion {
	return SingleChoiceQuestion{Base: Base{ID: id, Text: prompt}, Options: options}
}

// NewMultiChoice builds a MultiChoiceQuestion.
func NewMultiChoice(id int, prompt string, options []Option) MultiChoiceQuestion {
	return MultiChoiceQuestion{Base: Base{ID: id, Text: prompt}, Options: options}
}

// NewDropdown builds a DropdownQuestion.
func NewDropdown(id int, prompt string, options []Option) DropdownQuestion {
	return DropdownQuestion{Base: Base{ID: id, Text: prompt}, Options: options}
}

// NewScale builds a ScaleQuestion. Non-positive divisions fall back to the default.
func NewScale(id int, prompt, left, right string, divisions int) ScaleQuestion {
	if divisions <= 0 {
		divisions = DefaultDivisions
	}
	return ScaleQuestion{
		Base:       Base{ID: id, Text: prompt},
		LeftLabel:  left,
		RightLabel: right,
		Divisions:  divisions,
	}
}

// OptionsOf returns the options of a choice-like question, or nil.
func OptionsOf(q Question) []Option {
	switch typed := q.(type) {
	case SingleChoiceQuestion:
		return typed.Options
	case MultiChoiceQuestion:
		return typed.Options
	case DropdownQuestion:
		return typed.Options
	default:
		return nil
	}
}

// FindOption looks up an option by identifier.
func FindOption(options []Option, id int) (Option, bool) {
	for _, o := range options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Questionnaire is a fetched, normalized questionnaire. It is immutable for
// the lifetime of a session.
type Questionnaire struct {
	ID        string
	Title     string
	Author    Author
	Questions []Question
}

// AuthorName joins the author's names.
func (q *Questionnaire) AuthorName() string {
	switch {
	case q.Author.FirstName == "":
		return q.Author.LastName
	case q.Author.LastName == "":
		return q.Author.FirstName
	default:
		return q.Author.FirstName + " " + q.Author.LastName
	}
}

// Question returns the question with the given identifier.
func (q *Questionnaire) Question(id int) (Question, bool) {
	for _, question := range q.Questions {
		if question.QuestionID() == id {
			return question, true
		}
	}
	return nil, false
}

// Index returns the position of the question in declaration order, or -1.
func (q *Questionnaire) Index(id int) int {
	for i, question := range q.Questions {
		if question.QuestionID() == id {
			return i
		}
	}
	return -1
}
