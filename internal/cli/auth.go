package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/anketa/internal/wire"
)

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the bearer token used for the questionnaire API",
		Long: `Store a bearer token in ~/.anketa/anketa.db.

The token is read from --token, or from stdin when the flag is omitted.
ANKETA_TOKEN, when set, takes precedence over the stored token.

Examples:
  anketa login --token eyJhbGciOi...
  pbpaste | anketa login`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("no token given: use --token or pipe it on stdin")
				}
				token = strings.TrimSpace(line)
			}
			return wire.CredentialAdapter().Login(cmd.Context(), token)
		},
	}

	cmd.Flags().StringVarP(&token, "token", "t", "", "Bearer token")

	return cmd
}

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CredentialAdapter().Logout(cmd.Context())
		},
	}
}

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show what the current token claims",
		Long: `Decode the current token without verifying it and print its subject and expiry.
The server remains the authority on whether the token is accepted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CredentialAdapter().Whoami(cmd.Context())
		},
	}
}
