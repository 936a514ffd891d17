package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/example/anketa/internal/core/letters"
)

func TestLettersAdapter_Check(t *testing.T) {
	tests := []struct {
		name        string
		words       []string
		svc         *mockLettersService
		wantErr     bool
		wantChecked [2]string
	}{
		{name: "two words", words: []string{"кот", "ток"}, svc: &mockLettersService{}, wantChecked: [2]string{"кот", "ток"}},
		{name: "reuses last words", svc: &mockLettersService{first: "abc", second: "cab", remembered: true}, wantChecked: [2]string{"abc", "cab"}},
		{name: "nothing remembered", svc: &mockLettersService{}, wantErr: true},
		{name: "one word", words: []string{"abc"}, svc: &mockLettersService{}, wantErr: true},
		{name: "invalid word", words: []string{"bad1", "x"}, svc: &mockLettersService{}, wantErr: true, wantChecked: [2]string{"bad1", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			adapter := NewLettersAdapter(tt.svc, &out)

			_, err := adapter.Check(context.Background(), tt.words)
			if tt.wantErr != (err != nil) {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantChecked != ([2]string{}) {
				if len(tt.svc.checked) != 1 || tt.svc.checked[0] != tt.wantChecked {
					t.Errorf("checked = %v, want %v", tt.svc.checked, tt.wantChecked)
				}
			}
		})
	}
}

func TestLettersAdapter_About(t *testing.T) {
	var out bytes.Buffer
	NewLettersAdapter(&mockLettersService{}, &out).About()
	if strings.TrimSpace(out.String()) != letters.About {
		t.Errorf("About printed %q", out.String())
	}
}
