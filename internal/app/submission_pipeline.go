package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/anketa/internal/core/answer"
	"github.com/example/anketa/internal/core/effects"
	"github.com/example/anketa/internal/core/submission"
)

// StepError reports the plan step at which a submission stopped.
type StepError struct {
	Step submission.Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("question %d (step %d): %v", e.Step.Question.QuestionID(), e.Step.Index+1, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// SubmissionPipeline consumes a submission plan one step at a time. A step's
// request is built only after the previous request resolved, and the first
// failure stops the run: later steps are never built or sent.
type SubmissionPipeline struct {
	executor EffectExecutor
	logger   *zap.Logger
}

// NewSubmissionPipeline creates a pipeline on top of an effect executor.
func NewSubmissionPipeline(executor EffectExecutor, logger *zap.Logger) *SubmissionPipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionPipeline{executor: executor, logger: logger}
}

// Run executes the plan against the given answers. It returns how many
// answers were accepted before it finished or stopped. onSent is optional and
// is called after each accepted answer.
func (p *SubmissionPipeline) Run(ctx context.Context, plan submission.Plan, store answer.Store, onSent func(step submission.Step, sent int)) (int, error) {
	sent := 0
	pending := plan.Steps
	for len(pending) > 0 {
		step := pending[0]
		pending = pending[1:]

		if err := ctx.Err(); err != nil {
			return sent, &StepError{Step: step, Err: err}
		}

		eff, err := plan.Effect(step, store)
		if err != nil {
			return sent, &StepError{Step: step, Err: err}
		}

		if err := p.executor.Execute(ctx, []effects.Effect{eff}); err != nil {
			p.logger.Debug("submission stopped",
				zap.Int("question_id", step.Question.QuestionID()),
				zap.Int("remaining", len(pending)),
				zap.Error(err))
			return sent, &StepError{Step: step, Err: err}
		}

		if _, posted := eff.(submission.PostAnswerEffect); posted {
			sent++
			if onSent != nil {
				onSent(step, sent)
			}
		}
	}
	return sent, nil
}
