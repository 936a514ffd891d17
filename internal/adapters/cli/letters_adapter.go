package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/anketa/internal/core/letters"
	"github.com/example/anketa/internal/ports/primary"
)

// LettersAdapter translates the letters command to LettersService calls.
type LettersAdapter struct {
	service primary.LettersService
	out     io.Writer
}

// NewLettersAdapter creates a new LettersAdapter.
func NewLettersAdapter(service primary.LettersService, out io.Writer) *LettersAdapter {
	return &LettersAdapter{service: service, out: out}
}

// About prints the task statement.
func (a *LettersAdapter) About() {
	fmt.Fprintln(a.out, letters.About)
}

// Check answers for the given words, or for the last pair when none are given.
func (a *LettersAdapter) Check(ctx context.Context, words []string) (string, error) {
	var first, second string
	switch len(words) {
	case 2:
		first, second = words[0], words[1]
	case 0:
		var ok bool
		var err error
		first, second, ok, err = a.service.LastWords(ctx)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("give two words, e.g. anketa letters процессор информация")
		}
		fmt.Fprintf(a.out, "%s %s\n", first, second)
	default:
		return "", fmt.Errorf("expected two words, got %d", len(words))
	}

	result, err := a.service.Check(ctx, first, second)
	if err != nil {
		return "", err
	}
	fmt.Fprintln(a.out, result)
	return result, nil
}
