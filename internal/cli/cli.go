// Package cli formats terminal output for the sqlforge command: colored
// labels, rustc-style error reports, aligned tables and SQL listings.
package cli

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Mode selects between styled and plain output.
type Mode int

const (
	ModeColor Mode = iota
	ModePlain
)

func (m Mode) String() string {
	if m == ModeColor {
		return "color"
	}
	return "plain"
}

var (
	modeMu  sync.RWMutex
	modeSet bool
	mode    Mode
)

// Detect picks the mode for f. Color needs a terminal, an empty NO_COLOR
// and a TERM other than "dumb".
func Detect(f *os.File) Mode {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" || f == nil {
		return ModePlain
	}
	if fd := f.Fd(); isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return ModeColor
	}
	return ModePlain
}

// CurrentMode returns the process-wide mode, detecting it from stdout on
// first use.
func CurrentMode() Mode {
	modeMu.RLock()
	m, ok := mode, modeSet
	modeMu.RUnlock()
	if ok {
		return m
	}

	modeMu.Lock()
	defer modeMu.Unlock()
	if !modeSet {
		mode, modeSet = Detect(os.Stdout), true
	}
	return mode
}

// SetMode overrides detection, e.g. for --no-color or tests.
func SetMode(m Mode) {
	modeMu.Lock()
	mode, modeSet = m, true
	modeMu.Unlock()
}

// EnableColors reports whether style helpers emit ANSI sequences.
func EnableColors() bool {
	return CurrentMode() == ModeColor
}
