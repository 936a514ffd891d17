package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/anketa/internal/config"
)

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change ~/.anketa/config.yaml",
	}

	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configSetCmd())

	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the configuration file and active environment overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.Dir()
			if err != nil {
				return err
			}
			return showConfig(cmd.OutOrStdout(), dir, os.Getenv)
		},
	}
}

func configSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Change one configuration value",
		Long: `Change one value in config.yaml.

Keys: base_url, timeout, submit_interval, log_file, log_level

Examples:
  anketa config set base_url https://forms.example.org
  anketa config set submit_interval 250ms`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.Dir()
			if err != nil {
				return err
			}
			return setConfig(cmd.OutOrStdout(), dir, args[0], args[1])
		},
	}
}

func showConfig(out io.Writer, dir string, getenv func(string) string) error {
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprintf(out, "# %s\n", dir)
	fmt.Fprint(out, string(data))

	overrides := []struct{ env, key string }{
		{config.BaseURLEnv, "base_url"},
		{config.LogLevelEnv, "log_level"},
		{config.TokenEnv, "token"},
	}
	for _, o := range overrides {
		if getenv(o.env) != "" {
			fmt.Fprintf(out, "%s %s overrides %s\n", color.New(color.FgYellow).Sprint("!"), o.env, o.key)
		}
	}
	return nil
}

func setConfig(out io.Writer, dir, key, value string) error {
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := config.SaveConfig(dir, cfg); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s = %s\n", color.New(color.FgGreen).Sprint("✓"), key, value)
	return nil
}
