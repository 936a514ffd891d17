package app

import (
	"context"
	"fmt"

	"github.com/example/anketa/internal/core/letters"
	"github.com/example/anketa/internal/ports/primary"
	"github.com/example/anketa/internal/ports/secondary"
)

// Settings keys for the remembered words.
const (
	settingFirstWord  = "letters.first_word"
	settingSecondWord = "letters.second_word"
)

// LettersServiceImpl implements the LettersService interface.
type LettersServiceImpl struct {
	settings secondary.SettingsStore
}

// NewLettersService creates a new LettersService.
func NewLettersService(settings secondary.SettingsStore) *LettersServiceImpl {
	return &LettersServiceImpl{settings: settings}
}

// Check validates both words, remembers them and returns the answer line.
// Invalid words are neither checked nor remembered.
func (s *LettersServiceImpl) Check(ctx context.Context, first, second string) (string, error) {
	result, err := letters.CheckWords(first, second)
	if err != nil {
		return "", err
	}

	if err := s.settings.Set(ctx, settingFirstWord, first); err != nil {
		return "", fmt.Errorf("failed to remember words: %w", err)
	}
	if err := s.settings.Set(ctx, settingSecondWord, second); err != nil {
		return "", fmt.Errorf("failed to remember words: %w", err)
	}
	return result, nil
}

// LastWords returns the most recently checked pair, if any.
func (s *LettersServiceImpl) LastWords(ctx context.Context) (string, string, bool, error) {
	first, ok, err := s.settings.Get(ctx, settingFirstWord)
	if err != nil || !ok {
		return "", "", false, err
	}
	second, ok, err := s.settings.Get(ctx, settingSecondWord)
	if err != nil || !ok {
		return "", "", false, err
	}
	return first, second, true, nil
}

// Ensure LettersServiceImpl implements the interface
var _ primary.LettersService = (*LettersServiceImpl)(nil)
