package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/anketa/internal/wire"
)

// LettersCmd returns the letters command
func LettersCmd() *cobra.Command {
	var about bool

	cmd := &cobra.Command{
		Use:   "letters [first-word second-word]",
		Short: "Check which letters of one word occur in another",
		Long: `For every distinct letter of the first word, print "да" if it occurs in the
second word and "нет" otherwise. Words may contain Latin and Cyrillic letters only.

Without arguments the last checked pair is reused.

Examples:
  anketa letters процессор информация
  anketa letters
  anketa letters --about`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.LettersAdapter()
			if about {
				adapter.About()
				return nil
			}
			_, err := adapter.Check(cmd.Context(), args)
			return err
		},
	}

	cmd.Flags().BoolVar(&about, "about", false, "Print the task statement")

	return cmd
}
