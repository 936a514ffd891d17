// Package cli contains thin adapters that translate CLI operations to service
// calls and write human-readable output.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/anketa/internal/core/session"
	"github.com/example/anketa/internal/ports/primary"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
	warnText = color.New(color.FgYellow).SprintFunc()
)

// QuestionnaireAdapter is a thin adapter that translates CLI operations to
// QuestionnaireService calls. It depends only on the service interface,
// enabling easy testing with mocks.
type QuestionnaireAdapter struct {
	service  primary.QuestionnaireService
	renderer Renderer
	out      io.Writer
}

// NewQuestionnaireAdapter creates a new QuestionnaireAdapter. renderer may be
// nil, in which case markdown is printed as is.
func NewQuestionnaireAdapter(service primary.QuestionnaireService, renderer Renderer, out io.Writer) *QuestionnaireAdapter {
	return &QuestionnaireAdapter{
		service:  service,
		renderer: renderer,
		out:      out,
	}
}

// Show prints a questionnaire.
func (a *QuestionnaireAdapter) Show(ctx context.Context, questionnaireID string) (session.Session, error) {
	sess, err := a.service.Load(ctx, questionnaireID)
	if err != nil {
		return sess, err
	}

	doc := Markdown(sess.Questionnaire)
	if a.renderer != nil {
		rendered, err := a.renderer.Render(doc)
		if err != nil {
			return sess, fmt.Errorf("failed to render questionnaire: %w", err)
		}
		doc = rendered
	}
	fmt.Fprint(a.out, doc)
	return sess, nil
}

// Submit loads a questionnaire, applies the answers file and submits it.
// Validation errors are listed in question order.
func (a *QuestionnaireAdapter) Submit(ctx context.Context, questionnaireID string, answers *AnswerFile) (*primary.SubmitResponse, error) {
	sess, err := a.service.Load(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	sess, err = answers.Apply(sess)
	if err != nil {
		return nil, fmt.Errorf("invalid answers file: %w", err)
	}

	resp, err := a.service.Submit(ctx, primary.SubmitRequest{
		Session: sess,
		OnProgress: func(p primary.Progress) {
			fmt.Fprintf(a.out, "%s %d/%d question %d\n", okMark, p.Sent, p.Total, p.QuestionID)
		},
	})
	if errors.Is(err, primary.ErrValidationFailed) {
		a.printValidation(resp.Session)
		return resp, err
	}
	if err != nil {
		if resp != nil && resp.Sent > 0 {
			fmt.Fprintln(a.out, warnText(fmt.Sprintf("%d answer(s) were accepted before the error.", resp.Sent)))
		}
		return resp, err
	}

	fmt.Fprintf(a.out, "%s Спасибо! Ответы отправлены (%d).\n", okMark, resp.Sent)
	return resp, nil
}

func (a *QuestionnaireAdapter) printValidation(s session.Session) {
	fmt.Fprintln(a.out, "Some questions need an answer:")
	for _, fe := range s.Errors {
		n := s.Questionnaire.Index(fe.QuestionID) + 1
		prompt := ""
		if q, ok := s.Questionnaire.Question(fe.QuestionID); ok {
			prompt = q.Prompt()
		}
		fmt.Fprintf(a.out, "  %s %d. %s (id %d): %s\n", failMark, n, prompt, fe.QuestionID, fe.Message)
	}
}
