// Package primary defines the primary ports (driving side) of the application.
package primary

import (
	"context"
	"errors"

	"github.com/example/anketa/internal/core/session"
)

// ErrValidationFailed is returned by Submit when answers fail validation.
// The returned session carries the per-question errors.
var ErrValidationFailed = errors.New("answers failed validation")

// QuestionnaireService defines the primary port for answering questionnaires.
type QuestionnaireService interface {
	// Load fetches and normalizes a questionnaire and starts a session for it.
	Load(ctx context.Context, questionnaireID string) (session.Session, error)

	// Submit validates the session and, if it passes, sends one answer per
	// question in order, stopping at the first failure.
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error)
}

// SubmitRequest contains parameters for submitting a session.
type SubmitRequest struct {
	Session  session.Session
	InFlight bool
	// OnProgress is called after each answer is accepted. Optional.
	OnProgress func(Progress)
}

// SubmitResponse contains the result of a submission attempt.
// Session is the validated session; it is marked completed on success.
type SubmitResponse struct {
	Session session.Session
	Sent    int
}

// Progress reports one accepted answer.
type Progress struct {
	QuestionID int
	Sent       int
	Total      int
}
