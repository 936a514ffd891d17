package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/example/anketa/internal/core/questionnaire"
)

// Renderer turns markdown into terminal output.
type Renderer interface {
	Render(in string) (string, error)
}

// NewTerminalRenderer returns the glamour renderer used on a real terminal.
func NewTerminalRenderer() (Renderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
}

// Markdown describes a questionnaire as a markdown document.
func Markdown(q *questionnaire.Questionnaire) string {
	var sb strings.Builder

	title := q.Title
	if title == "" {
		title = "Анкета " + q.ID
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)
	if name := q.AuthorName(); name != "" {
		fmt.Fprintf(&sb, "_Автор: %s_\n\n", name)
	}

	if len(q.Questions) == 0 {
		sb.WriteString("В анкете нет вопросов.\n")
		return sb.String()
	}

	for i, question := range q.Questions {
		fmt.Fprintf(&sb, "## %d. %s\n\n", i+1, question.Prompt())
		fmt.Fprintf(&sb, "`id: %d` `%s`\n\n", question.QuestionID(), question.Kind())

		switch typed := question.(type) {
		case questionnaire.SingleChoiceQuestion, questionnaire.DropdownQuestion:
			for _, opt := range questionnaire.OptionsOf(typed) {
				fmt.Fprintf(&sb, "- ( ) %s `%d`\n", opt.Text, opt.ID)
			}
			sb.WriteString("\n")
		case questionnaire.MultiChoiceQuestion:
			for _, opt := range typed.Options {
				fmt.Fprintf(&sb, "- [ ] %s `%d`\n", opt.Text, opt.ID)
			}
			sb.WriteString("\n")
		case questionnaire.ScaleQuestion:
			fmt.Fprintf(&sb, "%s (1) … (%d) %s\n\n", typed.LeftLabel, typed.Divisions, typed.RightLabel)
		case questionnaire.UnsupportedQuestion:
			sb.WriteString("> Этот тип вопроса не поддерживается и не будет отправлен.\n\n")
		}
	}
	return sb.String()
}
