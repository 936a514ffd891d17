package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/example/anketa/internal/config"
)

func TestValidateQuestionnaireID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr string
	}{
		{name: "numeric", id: "15"},
		{name: "slug", id: "team-survey_2"},
		{name: "empty", id: "", wantErr: "must not be empty"},
		{name: "pasted link", id: "https://forms.example.org/questionnaire/access/15", wantErr: "Pass only the ID, e.g. 15"},
		{name: "spaces", id: "1 5", wantErr: "invalid questionnaire ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateQuestionnaireID(tt.id)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

// TestCommandStructure verifies every command is registered with usable metadata.
func TestCommandStructure(t *testing.T) {
	commands := []*cobra.Command{
		ShowCmd(), FillCmd(), SubmitCmd(), LoginCmd(), LogoutCmd(), WhoamiCmd(), LettersCmd(), ConfigCmd(),
	}
	for _, cmd := range commands {
		if cmd.Short == "" {
			t.Errorf("%s should have a Short description", cmd.Use)
		}
		if cmd.RunE == nil && !cmd.HasSubCommands() {
			t.Errorf("%s does nothing", cmd.Use)
		}
	}

	submit := SubmitCmd()
	if submit.Flags().Lookup("answers") == nil {
		t.Error("submit should have an --answers flag")
	}

	var names []string
	for _, sub := range ConfigCmd().Commands() {
		names = append(names, sub.Name())
	}
	if strings.Join(names, ",") != "set,show" {
		t.Errorf("config subcommands = %v", names)
	}
}

func TestShowAndSetConfig(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	if err := setConfig(&out, dir, "submit_interval", "500ms"); err != nil {
		t.Fatalf("setConfig failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, config.FileName)); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	out.Reset()
	env := map[string]string{config.TokenEnv: "tok"}
	if err := showConfig(&out, dir, func(k string) string { return env[k] }); err != nil {
		t.Fatalf("showConfig failed: %v", err)
	}
	output := out.String()
	if !strings.Contains(output, "submit_interval: 500ms") {
		t.Errorf("saved value not shown:\n%s", output)
	}
	if !strings.Contains(output, "ANKETA_TOKEN overrides token") {
		t.Errorf("override not reported:\n%s", output)
	}
	if strings.Contains(output, "tok\n") {
		t.Errorf("token value must not be printed:\n%s", output)
	}
}

func TestSetConfig_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	if err := setConfig(&bytes.Buffer{}, dir, "timeout", "forever"); err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, err := os.Stat(filepath.Join(dir, config.FileName)); !os.IsNotExist(err) {
		t.Error("invalid value must not be saved")
	}
}
