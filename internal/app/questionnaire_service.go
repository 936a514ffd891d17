package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/anketa/internal/core/questionnaire"
	"github.com/example/anketa/internal/core/session"
	"github.com/example/anketa/internal/core/submission"
	"github.com/example/anketa/internal/ports/primary"
	"github.com/example/anketa/internal/ports/secondary"
)

// QuestionnaireServiceImpl implements the QuestionnaireService interface.
type QuestionnaireServiceImpl struct {
	gateway     secondary.QuestionnaireGateway
	pipeline    *SubmissionPipeline
	credentials primary.CredentialService
	logger      *zap.Logger
}

// NewQuestionnaireService creates a new QuestionnaireService with injected dependencies.
// credentials is optional and only used to warn about expired tokens.
func NewQuestionnaireService(
	gateway secondary.QuestionnaireGateway,
	pipeline *SubmissionPipeline,
	credentials primary.CredentialService,
	logger *zap.Logger,
) *QuestionnaireServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestionnaireServiceImpl{
		gateway:     gateway,
		pipeline:    pipeline,
		credentials: credentials,
		logger:      logger,
	}
}

// Load fetches and normalizes a questionnaire and starts a session for it.
func (s *QuestionnaireServiceImpl) Load(ctx context.Context, questionnaireID string) (session.Session, error) {
	s.warnOnExpiredToken(ctx)

	body, err := s.gateway.FetchQuestionnaire(ctx, questionnaireID)
	if err != nil {
		failure := classifyLoad(err)
		s.logger.Warn("failed to load questionnaire",
			zap.String("questionnaire_id", questionnaireID),
			zap.String("kind", string(failure.Kind)),
			zap.Error(err))
		return session.Session{}, failure
	}

	q, err := questionnaire.DecodeQuestionnaire(questionnaireID, body)
	if err != nil {
		s.logger.Error("questionnaire payload is malformed",
			zap.String("questionnaire_id", questionnaireID),
			zap.Error(err))
		return session.Session{}, classifyLoad(err)
	}

	sess := session.New(uuid.NewString(), q)
	s.logger.Debug("questionnaire loaded",
		zap.String("questionnaire_id", questionnaireID),
		zap.String("session_id", sess.ID),
		zap.Int("questions", len(q.Questions)))
	return sess, nil
}

// Submit validates the session and sends its answers in question order.
func (s *QuestionnaireServiceImpl) Submit(ctx context.Context, req primary.SubmitRequest) (*primary.SubmitResponse, error) {
	validated := req.Session.Validate()

	guard := submission.CanSubmit(submission.SubmitContext{
		Errors:    validated.Errors,
		InFlight:  req.InFlight,
		Completed: validated.Completed,
	})
	if !guard.Allowed {
		if !validated.Valid() && !req.InFlight && !validated.Completed {
			return &primary.SubmitResponse{Session: validated}, fmt.Errorf("%w: %s", primary.ErrValidationFailed, guard.Reason)
		}
		return &primary.SubmitResponse{Session: req.Session}, guard.Error()
	}

	plan := validated.Plan()
	total := plan.Len()
	sent, err := s.pipeline.Run(ctx, plan, validated.Answers, func(step submission.Step, sent int) {
		if req.OnProgress != nil {
			req.OnProgress(primary.Progress{
				QuestionID: step.Question.QuestionID(),
				Sent:       sent,
				Total:      total,
			})
		}
	})
	if err != nil {
		failure := classifySubmit(err)
		fields := []zap.Field{
			zap.String("questionnaire_id", plan.QuestionnaireID),
			zap.String("session_id", validated.ID),
			zap.Int("sent", sent),
			zap.String("kind", string(failure.Kind)),
			zap.Error(err),
		}
		if failure.Kind == primary.FailureInternal || errors.Is(err, context.Canceled) {
			s.logger.Error("submission aborted", fields...)
		} else {
			s.logger.Warn("submission rejected", fields...)
		}
		return &primary.SubmitResponse{Session: validated, Sent: sent}, failure
	}

	s.logger.Info("questionnaire submitted",
		zap.String("questionnaire_id", plan.QuestionnaireID),
		zap.String("session_id", validated.ID),
		zap.Int("sent", sent))
	return &primary.SubmitResponse{Session: validated.Complete(), Sent: sent}, nil
}

func (s *QuestionnaireServiceImpl) warnOnExpiredToken(ctx context.Context) {
	if s.credentials == nil {
		return
	}
	identity, err := s.credentials.Whoami(ctx)
	if err != nil {
		return
	}
	if identity.Expired {
		s.logger.Warn("stored token has expired",
			zap.String("subject", identity.Subject),
			zap.Time("expires_at", identity.ExpiresAt))
	}
}

// Ensure QuestionnaireServiceImpl implements the interface
var _ primary.QuestionnaireService = (*QuestionnaireServiceImpl)(nil)
