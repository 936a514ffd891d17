package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/anketa/internal/cli"
	"github.com/example/anketa/internal/version"
	"github.com/example/anketa/internal/wire"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "anketa",
		Short:   "Fill in and submit questionnaires from the terminal",
		Version: version.String(),
		Long: `anketa loads a questionnaire from the questionnaire API, lets you answer it
interactively or from a YAML file, and submits the answers one question at a time.

Configuration lives in ~/.anketa/config.yaml (see 'anketa config show').`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// config commands must work even when the current file is invalid
			if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
				return nil
			}
			return wire.Configure(wire.Options{
				Verbose:     verbose,
				Interactive: cmd.Name() == "fill",
			})
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = wire.Logger().Sync()
			_ = wire.Close()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Questionnaires
	rootCmd.AddCommand(cli.ShowCmd())
	rootCmd.AddCommand(cli.FillCmd())
	rootCmd.AddCommand(cli.SubmitCmd())

	// Credentials
	rootCmd.AddCommand(cli.LoginCmd())
	rootCmd.AddCommand(cli.LogoutCmd())
	rootCmd.AddCommand(cli.WhoamiCmd())

	rootCmd.AddCommand(cli.LettersCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgRed).Sprint("Error: ")+err.Error())
		_ = wire.Close()
		os.Exit(1)
	}
}
