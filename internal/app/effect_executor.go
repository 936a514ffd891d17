// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/example/anketa/internal/core/effects"
	"github.com/example/anketa/internal/core/submission"
	"github.com/example/anketa/internal/ctxutil"
	"github.com/example/anketa/internal/ports/secondary"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place I/O happens.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) error
}

// DefaultEffectExecutor implements EffectExecutor with real I/O.
type DefaultEffectExecutor struct {
	gateway secondary.QuestionnaireGateway
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewEffectExecutor creates a new DefaultEffectExecutor. A nil limiter means
// answer requests are not spaced out.
func NewEffectExecutor(gateway secondary.QuestionnaireGateway, limiter *rate.Limiter, logger *zap.Logger) *DefaultEffectExecutor {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultEffectExecutor{
		gateway: gateway,
		limiter: limiter,
		logger:  logger,
	}
}

// Execute processes a slice of effects, executing each in sequence.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	for _, eff := range effs {
		if err := e.executeOne(ctx, eff); err != nil {
			return fmt.Errorf("failed to execute %s effect: %w", eff.EffectType(), err)
		}
	}
	return nil
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect) error {
	switch typed := eff.(type) {
	case submission.PostAnswerEffect:
		return e.executePostAnswer(ctx, typed)
	case effects.CompositeEffect:
		return e.Execute(ctx, typed.Effects)
	case effects.NoEffect:
		return nil
	case effects.LogEffect:
		e.executeLog(typed)
		return nil
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executePostAnswer(ctx context.Context, eff submission.PostAnswerEffect) error {
	if err := e.limiter.Wait(ctx); err != nil {
		return err
	}

	ctx, requestID := ctxutil.WithNewRequestID(ctx)
	e.logger.Debug("posting answer",
		zap.String("questionnaire_id", eff.QuestionnaireID),
		zap.Int("question_id", eff.QuestionID),
		zap.String("field", eff.Payload.Field()),
		zap.String("request_id", requestID))

	return e.gateway.PostAnswer(ctx, eff.QuestionnaireID, eff.QuestionID, eff.Payload)
}

func (e *DefaultEffectExecutor) executeLog(eff effects.LogEffect) {
	fields := make([]zap.Field, 0, len(eff.Fields))
	for k, v := range eff.Fields {
		fields = append(fields, zap.Any(k, v))
	}
	switch eff.Level {
	case effects.LevelDebug:
		e.logger.Debug(eff.Message, fields...)
	case effects.LevelWarn:
		e.logger.Warn(eff.Message, fields...)
	case effects.LevelError:
		e.logger.Error(eff.Message, fields...)
	default:
		e.logger.Info(eff.Message, fields...)
	}
}
