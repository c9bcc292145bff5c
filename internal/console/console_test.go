package console

import (
	"bytes"
	"strings"
	"testing"

	"gifnorm/internal/detect"
)

func TestInteractive_Ask(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase y", "y\n", true},
		{"yes", "yes\n", true},
		{"uppercase", "Y\n", true},
		{"padded", "  y  \n", true},
		{"n", "n\n", false},
		{"no", "no\n", false},
		{"empty line", "\n", false},
		{"gibberish", "maybe\n", false},
		{"eof", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewInteractive(strings.NewReader(tt.input), &out)
			got := p.Ask("Continue?")
			if got != tt.want {
				t.Errorf("Ask() = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), "(y/n)") {
				t.Errorf("prompt missing y/n hint: %q", out.String())
			}
		})
	}
}

func TestInteractive_ReadLine(t *testing.T) {
	var out bytes.Buffer
	p := NewInteractive(strings.NewReader("  /tmp/media \n"), &out)
	got, err := p.ReadLine("Enter the folder path: ")
	if err != nil {
		t.Fatalf("ReadLine() error = %v", err)
	}
	if got != "/tmp/media" {
		t.Errorf("ReadLine() = %q, want %q", got, "/tmp/media")
	}
	if out.String() != "Enter the folder path: " {
		t.Errorf("prompt = %q", out.String())
	}
}

func TestInteractive_ConfirmDelete(t *testing.T) {
	var out bytes.Buffer
	p := NewInteractive(strings.NewReader("y\n"), &out)
	if !p.ConfirmDelete(detect.TagHTML, 3) {
		t.Error("affirmative answer not honored")
	}
	if !strings.Contains(out.String(), "3 HTML files") {
		t.Errorf("prompt wording: %q", out.String())
	}
}

func TestFlagAnswers(t *testing.T) {
	f := FlagAnswers{DeleteHTML: true}
	if !f.ConfirmDelete(detect.TagHTML, 1) {
		t.Error("html flag not honored")
	}
	if f.ConfirmDelete(detect.TagTextError, 1) {
		t.Error("errors must stay kept without the flag")
	}
	if f.ConfirmDelete(detect.TagUnknown, 1) {
		t.Error("unknown bucket is never deletable")
	}
}
