package input

import (
	"strings"
	"testing"
)

func withStdin(t *testing.T, s string) {
	t.Helper()
	old := stdin
	stdin = strings.NewReader(s)
	t.Cleanup(func() { stdin = old })
}

func TestPromptReturnsTypedValue(t *testing.T) {
	withStdin(t, "Shared/Utils.swift\n")

	got := Prompt("File", "default.swift")
	if got != "Shared/Utils.swift" {
		t.Errorf("Prompt() = %q, want %q", got, "Shared/Utils.swift")
	}
}

func TestPromptEmptyReturnsDefault(t *testing.T) {
	withStdin(t, "\n")

	got := Prompt("File", "default.swift")
	if got != "default.swift" {
		t.Errorf("Prompt() = %q, want default", got)
	}
}

func TestPromptTrimsWhitespace(t *testing.T) {
	withStdin(t, "  App.swift  \n")

	if got := Prompt("File", ""); got != "App.swift" {
		t.Errorf("Prompt() = %q, want %q", got, "App.swift")
	}
}

func TestConfirmAnswers(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		defaultYes bool
		want       bool
	}{
		{"explicit yes", "y\n", false, true},
		{"explicit YES", "YES\n", false, true},
		{"explicit no", "n\n", true, false},
		{"enter takes default yes", "\n", true, true},
		{"enter takes default no", "\n", false, false},
		{"garbage is no", "maybe\n", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withStdin(t, tt.line)

			if got := Confirm("Proceed?", tt.defaultYes); got != tt.want {
				t.Errorf("Confirm(%q, %v) = %v, want %v", tt.line, tt.defaultYes, got, tt.want)
			}
		})
	}
}
