package cli

import (
	"context"
	"errors"

	"github.com/example/anketa/internal/core/questionnaire"
	"github.com/example/anketa/internal/core/session"
	"github.com/example/anketa/internal/ports/primary"
)

// mockQuestionnaireService implements primary.QuestionnaireService for testing
type mockQuestionnaireService struct {
	loadFn   func(ctx context.Context, id string) (session.Session, error)
	submitFn func(ctx context.Context, req primary.SubmitRequest) (*primary.SubmitResponse, error)

	// Track calls for verification
	lastSubmitReq primary.SubmitRequest
	submitCalls   int
}

func (m *mockQuestionnaireService) Load(ctx context.Context, id string) (session.Session, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx, id)
	}
	return session.New("S-1", sampleQuestionnaire()), nil
}

func (m *mockQuestionnaireService) Submit(ctx context.Context, req primary.SubmitRequest) (*primary.SubmitResponse, error) {
	m.lastSubmitReq = req
	m.submitCalls++
	if m.submitFn != nil {
		return m.submitFn(ctx, req)
	}
	validated := req.Session.Validate()
	if !validated.Valid() {
		return &primary.SubmitResponse{Session: validated}, primary.ErrValidationFailed
	}
	total := len(validated.Questionnaire.Questions)
	for i, q := range validated.Questionnaire.Questions {
		if req.OnProgress != nil {
			req.OnProgress(primary.Progress{QuestionID: q.QuestionID(), Sent: i + 1, Total: total})
		}
	}
	return &primary.SubmitResponse{Session: validated.Complete(), Sent: total}, nil
}

// mockCredentialService implements primary.CredentialService for testing
type mockCredentialService struct {
	identity *primary.Identity
	err      error

	lastToken string
	loggedOut bool
}

func (m *mockCredentialService) Login(ctx context.Context, token string) (*primary.Identity, error) {
	m.lastToken = token
	return m.identity, m.err
}

func (m *mockCredentialService) Logout(ctx context.Context) error {
	m.loggedOut = true
	return m.err
}

func (m *mockCredentialService) Whoami(ctx context.Context) (*primary.Identity, error) {
	return m.identity, m.err
}

// mockLettersService implements primary.LettersService for testing
type mockLettersService struct {
	first, second string
	remembered    bool

	checked [][2]string
}

func (m *mockLettersService) Check(ctx context.Context, a, b string) (string, error) {
	m.checked = append(m.checked, [2]string{a, b})
	if a == "bad1" {
		return "", errors.New("Ошибка")
	}
	return "да ", nil
}

func (m *mockLettersService) LastWords(ctx context.Context) (string, string, bool, error) {
	return m.first, m.second, m.remembered, nil
}

// sampleQuestionnaire has one question of every supported kind.
func sampleQuestionnaire() *questionnaire.Questionnaire {
	return &questionnaire.Questionnaire{
		ID:     "15",
		Title:  "Опрос",
		Author: questionnaire.Author{FirstName: "Olga", LastName: "Ivanova"},
		Questions: []questionnaire.Question{
			questionnaire.NewText(1, "Имя"),
			questionnaire.NewSingleChoice(2, "Цвет", []questionnaire.Option{
				{ID: 21, Text: "Красный", Order: 1},
				{ID: 22, Text: "Синий", Order: 2},
			}),
			questionnaire.NewMultiChoice(3, "Фрукты", []questionnaire.Option{
				{ID: 31, Text: "Яблоко", Order: 1},
				{ID: 32, Text: "Груша", Order: 2},
				{ID: 33, Text: "Слива", Order: 3},
			}),
			questionnaire.NewScale(4, "Настроение", "Плохо", "Хорошо", 5),
			questionnaire.NewDropdown(5, "Город", []questionnaire.Option{
				{ID: 51, Text: "Москва", Order: 1},
				{ID: 52, Text: "Казань", Order: 2},
			}),
		},
	}
}
