package app

import (
	"errors"
	"net/http"

	"github.com/example/anketa/internal/core/questionnaire"
	"github.com/example/anketa/internal/core/submission"
	"github.com/example/anketa/internal/ports/primary"
	"github.com/example/anketa/internal/ports/secondary"
)

// User-facing messages for failed loads.
const (
	MsgLoadStructure    = "Не удалось загрузить структуру анкеты."
	MsgLoadNotFound     = "Анкета закрыта или была удалена"
	MsgLoadUnauthorized = "Доступ запрещен. Возможно, вам нужно войти в систему."
	MsgLoadGeneric      = "Произошла ошибка при загрузке анкеты."
)

// User-facing messages for failed submissions.
const (
	MsgSubmitNotFound     = "Не удалось отправить ответ. Возможно, анкета была закрыта или удалена."
	MsgSubmitUnauthorized = "Ошибка прав доступа при отправке ответов."
	MsgSubmitGeneric      = "Произошла непредвиденная ошибка при отправке ответов."
)

// classifyLoad maps a fetch error to the failure shown to the user.
func classifyLoad(err error) *primary.Failure {
	if errors.Is(err, questionnaire.ErrStructure) {
		return &primary.Failure{Kind: primary.FailureStructure, Message: MsgLoadStructure, Err: err}
	}
	switch statusKind(err) {
	case primary.FailureNotFound:
		return &primary.Failure{Kind: primary.FailureNotFound, Message: MsgLoadNotFound, Err: err}
	case primary.FailureUnauthorized:
		return &primary.Failure{Kind: primary.FailureUnauthorized, Message: MsgLoadUnauthorized, Err: err}
	default:
		return &primary.Failure{Kind: primary.FailureGeneric, Message: MsgLoadGeneric, Err: err}
	}
}

// classifySubmit maps a pipeline error to the failure shown to the user.
// Invalid references and range faults are internal: they get the generic
// message but keep their own kind.
func classifySubmit(err error) *primary.Failure {
	if errors.Is(err, submission.ErrInvalidReference) ||
		errors.Is(err, submission.ErrOutOfRange) ||
		errors.Is(err, submission.ErrInvalidValue) {
		return &primary.Failure{Kind: primary.FailureInternal, Message: MsgSubmitGeneric, Err: err}
	}
	switch statusKind(err) {
	case primary.FailureNotFound:
		return &primary.Failure{Kind: primary.FailureNotFound, Message: MsgSubmitNotFound, Err: err}
	case primary.FailureUnauthorized:
		return &primary.Failure{Kind: primary.FailureUnauthorized, Message: MsgSubmitUnauthorized, Err: err}
	default:
		return &primary.Failure{Kind: primary.FailureGeneric, Message: MsgSubmitGeneric, Err: err}
	}
}

func statusKind(err error) primary.FailureKind {
	var statusErr *secondary.StatusError
	if !errors.As(err, &statusErr) {
		return primary.FailureGeneric
	}
	switch statusErr.StatusCode {
	case http.StatusNotFound:
		return primary.FailureNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return primary.FailureUnauthorized
	default:
		return primary.FailureGeneric
	}
}
