package primary

import "context"

// LettersService defines the primary port for the letter-membership check.
type LettersService interface {
	// Check validates both words, remembers them and returns the answer line.
	Check(ctx context.Context, first, second string) (string, error)

	// LastWords returns the most recently checked pair, if any.
	LastWords(ctx context.Context) (first, second string, ok bool, err error)
}
