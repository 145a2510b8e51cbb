package cli

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/hlop3z/sqlforge/internal/alerr"
)

// FormatError renders err in rustc style:
//
//	error[E1002]: project file not found
//	  --> shop.json
//	   |
//	   | table: users
//	note: ...
//	help: ...
//
// Errors without a code are rendered as a single "error: ..." line.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	var ae *alerr.Error
	if !errors.As(err, &ae) {
		return Error("error") + ": " + err.Error() + "\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s[%s]: %s\n", Error("error"), Code(string(ae.GetCode())), ae.GetMessage())
	if path := ae.Path(); path != "" {
		fmt.Fprintf(&b, "  %s %s\n", Arrow(), FilePath(path))
	}

	if ctx := ae.GetContext(); len(ctx) > 0 {
		gutter(&b, "")
		for _, k := range slices.Sorted(maps.Keys(ctx)) {
			gutter(&b, formatDetail(k, ctx[k]))
		}
	}

	trailer := func(label string, lines ...string) {
		for _, l := range lines {
			fmt.Fprintf(&b, "%s: %s\n", label, l)
		}
	}
	trailer(Note("note"), ae.Notes()...)
	trailer(Help("help"), ae.Helps()...)
	if cause := ae.GetCause(); cause != nil {
		trailer(Note("cause"), cause.Error())
	}
	return b.String()
}

// gutter writes one "   | text" line of the detail block.
func gutter(b *strings.Builder, text string) {
	if text == "" {
		fmt.Fprintf(b, "   %s\n", Pipe())
		return
	}
	fmt.Fprintf(b, "   %s %s\n", Pipe(), text)
}

// formatDetail renders list values one per line under their key.
func formatDetail(key string, v any) string {
	list, ok := v.([]string)
	if !ok {
		return fmt.Sprintf("%s: %v", key, v)
	}
	if len(list) == 1 {
		return key + ": " + list[0]
	}
	return key + ":\n      - " + strings.Join(list, "\n      - ")
}

// FormatWarning renders "warning: msg", optionally scoped to a subject such
// as a table name.
func FormatWarning(subject, msg string) string {
	if subject != "" {
		return Warning("warning") + ": " + FilePath(subject) + ": " + msg + "\n"
	}
	return Warning("warning") + ": " + msg + "\n"
}

// FormatNote renders "note: msg".
func FormatNote(msg string) string {
	return Note("note") + ": " + msg + "\n"
}

// FormatHelp renders "help: msg".
func FormatHelp(msg string) string {
	return Help("help") + ": " + msg + "\n"
}

// FormatSuccess renders "success: msg".
func FormatSuccess(msg string) string {
	return Success("success") + ": " + msg + "\n"
}
