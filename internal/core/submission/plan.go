package submission

import (
	"fmt"

	"github.com/example/anketa/internal/core/answer"
	"github.com/example/anketa/internal/core/effects"
	"github.com/example/anketa/internal/core/questionnaire"
	"github.com/example/anketa/internal/core/validation"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// SubmitContext provides context for the submit guard.
type SubmitContext struct {
	Errors    validation.Errors
	InFlight  bool
	Completed bool
}

// CanSubmit evaluates whether a submission may start.
// Rules:
// - No submission may already be running
// - A completed session is not submitted twice
// - Validation must have passed
func CanSubmit(ctx SubmitContext) GuardResult {
	if ctx.InFlight {
		return GuardResult{Allowed: false, Reason: "submission already in progress"}
	}
	if ctx.Completed {
		return GuardResult{Allowed: false, Reason: "answers were already submitted"}
	}
	if !ctx.Errors.Empty() {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%d question(s) need an answer", len(ctx.Errors)),
		}
	}
	return GuardResult{Allowed: true}
}

// PostAnswerEffect describes one answer POST.
type PostAnswerEffect struct {
	QuestionnaireID string
	QuestionID      int
	Payload         Payload
}

func (e PostAnswerEffect) EffectType() string { return "post_answer" }

// Step is one pending operation of a plan.
type Step struct {
	Index    int
	Question questionnaire.Question
}

// Plan is the ordered list of pending answer requests, one per question, in
// declaration order. Steps are consumed one at a time and their effect is
// only built when the step is reached.
type Plan struct {
	QuestionnaireID string
	Steps           []Step
}

// NewPlan builds the plan for a questionnaire.
func NewPlan(q *questionnaire.Questionnaire) Plan {
	steps := make([]Step, 0, len(q.Questions))
	for i, question := range q.Questions {
		steps = append(steps, Step{Index: i, Question: question})
	}
	return Plan{QuestionnaireID: q.ID, Steps: steps}
}

// Len returns the number of steps.
func (p Plan) Len() int { return len(p.Steps) }

// Effect builds the effect of a step from the current answers. Questions of
// an unsupported kind produce a warning log instead of a request.
func (p Plan) Effect(step Step, store answer.Store) (effects.Effect, error) {
	id := step.Question.QuestionID()
	v, _ := store.Get(id)

	payload, ok, err := BuildPayload(step.Question, v)
	if err != nil {
		return nil, err
	}
	if !ok {
		return effects.LogEffect{
			Level:   effects.LevelWarn,
			Message: "skipping question of unsupported type",
			Fields:  map[string]any{"question_id": id, "type": int(step.Question.Kind())},
		}, nil
	}
	return PostAnswerEffect{
		QuestionnaireID: p.QuestionnaireID,
		QuestionID:      id,
		Payload:         payload,
	}, nil
}
