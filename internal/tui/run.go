package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/example/anketa/internal/ports/primary"
)

// Run fills questionnaireID interactively until the user quits. It returns
// the load failure if the questionnaire could not be opened.
func Run(ctx context.Context, service primary.QuestionnaireService, questionnaireID string, logger *zap.Logger) error {
	model := New(ctx, service, questionnaireID, logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	if m, ok := final.(Model); ok {
		m.cancel()
		return m.Err()
	}
	return nil
}
