package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/example/anketa/internal/core/answer"
	"github.com/example/anketa/internal/core/questionnaire"
)

// View renders the current phase.
func (m Model) View() string {
	var body string
	switch m.phase {
	case phaseLoading:
		body = m.spinner.View() + " Загрузка анкеты…"
	case phaseFailed:
		help := "r: повторить • q: выход"
		if m.closed {
			help = "q: выход"
		}
		body = m.styles.Banner.Render(m.failure) + "\n\n" + m.styles.Help.Render(help)
	case phaseDone:
		body = m.viewDone()
	default:
		body = m.viewQuestion()
	}
	return m.styles.Frame.Render(body)
}

func (m Model) viewDone() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Success.Render("Спасибо! Ваши ответы отправлены."))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Counter.Render(fmt.Sprintf("Принято ответов: %d", m.sent)))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Help.Render("enter: выход"))
	return sb.String()
}

func (m Model) viewQuestion() string {
	qn := m.sess.Questionnaire
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render(qn.Title))
	if name := qn.AuthorName(); name != "" {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Author.Render(name))
	}
	sb.WriteString("\n\n")

	if m.failure != "" {
		sb.WriteString(m.styles.Banner.Render(m.failure))
		sb.WriteString("\n\n")
	}

	q, ok := m.current()
	if !ok {
		sb.WriteString("В анкете нет вопросов.\n\n")
		sb.WriteString(m.help(nil))
		return sb.String()
	}

	sb.WriteString(m.styles.Counter.Render(m.pager()))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Prompt.Render(q.Prompt()))
	sb.WriteString("\n\n")

	switch typed := q.(type) {
	case questionnaire.TextQuestion:
		sb.WriteString(m.input.View())
	case questionnaire.SingleChoiceQuestion:
		sb.WriteString(m.viewChoices(typed.Options, m.isChosen(q), "( )", "(•)"))
	case questionnaire.DropdownQuestion:
		sb.WriteString(m.viewDropdown(typed))
	case questionnaire.MultiChoiceQuestion:
		v, _ := m.sess.Answers.Get(typed.ID)
		set, _ := v.(answer.Selections)
		sb.WriteString(m.viewChoices(typed.Options, set.Contains, "[ ]", "[x]"))
	case questionnaire.ScaleQuestion:
		sb.WriteString(m.viewScale(typed))
	default:
		sb.WriteString(m.styles.Help.Render("Этот тип вопроса не поддерживается и будет пропущен."))
	}
	sb.WriteString("\n")

	if msg, has := m.sess.Errors.Get(q.QuestionID()); has {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Error.Render(msg))
		sb.WriteString("\n")
	}

	if m.phase == phaseSubmitting {
		sb.WriteString("\n")
		sb.WriteString(m.spinner.View() + " Отправка ответов…")
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.help(q))
	return sb.String()
}

// pager renders "Вопрос i из N" followed by one dot per question; failing
// questions are marked.
func (m Model) pager() string {
	questions := m.sess.Questionnaire.Questions
	dots := make([]string, len(questions))
	for i, q := range questions {
		switch {
		case i == m.page:
			dots[i] = "●"
		case m.sess.Errors.Has(q.QuestionID()):
			dots[i] = m.styles.Error.Render("●")
		default:
			dots[i] = "○"
		}
	}
	return fmt.Sprintf("Вопрос %d из %d  %s", m.page+1, len(questions), strings.Join(dots, ""))
}

func (m Model) isChosen(q questionnaire.Question) func(int) bool {
	v, _ := m.sess.Answers.Get(q.QuestionID())
	sel, ok := v.(answer.Selection)
	return func(optionID int) bool {
		return ok && sel.Chosen && sel.OptionID == optionID
	}
}

func (m Model) viewChoices(options []questionnaire.Option, chosen func(int) bool, off, on string) string {
	lines := make([]string, 0, len(options))
	for i, opt := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("▸ ")
		}
		mark, style := off, m.styles.Option
		if chosen(opt.ID) {
			mark, style = on, m.styles.Selected
		}
		lines = append(lines, cursor+style.Render(mark+" "+opt.Text))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewDropdown(q questionnaire.DropdownQuestion) string {
	current := "(выберите вариант)"
	if i, ok := m.selectedOptionIndex(q); ok {
		current = q.Options[i].Text
	}
	header := m.styles.Selected.Render("▾ " + current)
	return header + "\n" + m.viewChoices(q.Options, m.isChosen(q), " ", "✓")
}

func (m Model) viewScale(q questionnaire.ScaleQuestion) string {
	value, _ := m.scaleValue(q)
	cells := make([]string, 0, q.Divisions)
	for i := 1; i <= q.Divisions; i++ {
		style := m.styles.Scale
		if i == value {
			style = m.styles.ScaleOn
		}
		cells = append(cells, style.Render(fmt.Sprint(i)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, cells...)
	labels := m.styles.Help.Render(q.LeftLabel) + "  …  " + m.styles.Help.Render(q.RightLabel)
	return row + "\n" + labels
}

func (m Model) help(q questionnaire.Question) string {
	parts := []string{"tab/shift+tab: вопросы", "enter: далее", "ctrl+s: отправить", "esc: выход"}
	switch q.(type) {
	case questionnaire.SingleChoiceQuestion, questionnaire.DropdownQuestion:
		parts = append([]string{"↑/↓: выбор", "space: отметить"}, parts...)
	case questionnaire.MultiChoiceQuestion:
		parts = append([]string{"↑/↓: выбор", "space: переключить"}, parts...)
	case questionnaire.ScaleQuestion:
		parts = append([]string{"←/→ или 1-9: значение"}, parts...)
	}
	if m.page >= len(m.sess.Questionnaire.Questions)-1 {
		parts[len(parts)-3] = "enter: отправить"
	}
	return m.styles.Help.Render(strings.Join(parts, " • "))
}
