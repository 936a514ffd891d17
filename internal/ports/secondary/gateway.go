// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"fmt"

	"github.com/example/anketa/internal/core/submission"
)

// QuestionnaireGateway defines the secondary port for the remote questionnaire API.
type QuestionnaireGateway interface {
	// FetchQuestionnaire returns the raw response body of the questionnaire.
	FetchQuestionnaire(ctx context.Context, questionnaireID string) ([]byte, error)

	// PostAnswer sends the answer of one question.
	PostAnswer(ctx context.Context, questionnaireID string, questionID int, payload submission.Payload) error
}

// StatusError is a non-2xx response of the remote API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote API responded with status %d", e.StatusCode)
}
