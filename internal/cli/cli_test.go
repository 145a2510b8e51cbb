package cli

import (
	"os"
	"testing"
)

func init() {
	// Plain mode so style helpers return raw text.
	SetMode(ModePlain)
}

func TestDetect(t *testing.T) {
	devnull, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatal(err)
	}
	defer devnull.Close()

	tests := []struct {
		name    string
		noColor string
		term    string
		file    *os.File
	}{
		{"NO_COLOR", "1", "xterm", os.Stdout},
		{"TERM=dumb", "", "dumb", os.Stdout},
		{"nil file", "", "xterm", nil},
		{"not a terminal", "", "xterm", devnull},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("TERM", tt.term)
			if got := Detect(tt.file); got != ModePlain {
				t.Errorf("Detect() = %v, want plain", got)
			}
		})
	}
}

func TestSetMode(t *testing.T) {
	orig := CurrentMode()
	defer SetMode(orig)

	SetMode(ModeColor)
	if !EnableColors() || CurrentMode().String() != "color" {
		t.Error("colors off in color mode")
	}
	SetMode(ModePlain)
	if EnableColors() || CurrentMode().String() != "plain" {
		t.Error("colors on in plain mode")
	}
}
