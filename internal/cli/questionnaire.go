package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/anketa/internal/adapters/cli"
	"github.com/example/anketa/internal/tui"
	"github.com/example/anketa/internal/wire"
)

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [questionnaire-id]",
		Short: "Print a questionnaire",
		Long: `Fetch a questionnaire and print its questions as rendered markdown.

Option IDs are shown next to each option so they can be used in an answers file.

Examples:
  anketa show 15`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateQuestionnaireID(args[0]); err != nil {
				return err
			}
			adapter, err := wire.QuestionnaireAdapter()
			if err != nil {
				return err
			}
			_, err = adapter.Show(cmd.Context(), args[0])
			return err
		},
	}
}

// FillCmd returns the fill command
func FillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fill [questionnaire-id]",
		Short: "Fill in a questionnaire interactively",
		Long: `Open a questionnaire in the terminal, one page per question.

Keys:
  tab / shift+tab   next / previous question
  ↑ ↓ space         choose options
  ← → 1-9           scale value
  enter             next question; on the last one, submit
  ctrl+s            submit
  esc / ctrl+c      quit (an in-flight submission is cancelled)

Logs are written to the configured log_file, or ~/.anketa/anketa.log.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateQuestionnaireID(args[0]); err != nil {
				return err
			}
			return tui.Run(cmd.Context(), wire.QuestionnaireService(), args[0], wire.Logger().Named("tui"))
		},
	}
}

// SubmitCmd returns the submit command
func SubmitCmd() *cobra.Command {
	var answersPath string

	cmd := &cobra.Command{
		Use:   "submit [questionnaire-id]",
		Short: "Submit answers from a YAML file",
		Long: `Load a questionnaire, apply the answers from a YAML file, validate and submit.

Answers are sent one question at a time, in question order. The first
rejected answer stops the submission.

Answers file:
  answers:
    1: Иван          # free text
    2: 22            # option ID or option text
    3: [31, 33]      # several options
    4: 3             # scale value

Examples:
  anketa submit 15 --answers answers.yaml
  anketa submit 15 -a -   # read answers from stdin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateQuestionnaireID(args[0]); err != nil {
				return err
			}

			in := os.Stdin
			if answersPath != "-" {
				f, err := os.Open(answersPath)
				if err != nil {
					return fmt.Errorf("failed to open answers file: %w", err)
				}
				defer f.Close()
				in = f
			}

			answers, err := cliadapter.ParseAnswerFile(in)
			if err != nil {
				return err
			}

			adapter, err := wire.QuestionnaireAdapter()
			if err != nil {
				return err
			}
			_, err = adapter.Submit(cmd.Context(), args[0], answers)
			return err
		},
	}

	cmd.Flags().StringVarP(&answersPath, "answers", "a", "", "YAML answers file ('-' for stdin)")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}
