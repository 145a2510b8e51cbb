// Package alerr defines the coded errors returned by sqlforge's host-facing
// surfaces: payload loading, action parsing, storage, configuration and the
// CLI. Every error carries a stable code, a message and optional details;
// wrapping keeps the cause reachable through errors.Unwrap.
//
// The generation core never returns these. Schema problems there are
// reported inline as SQL comments.
package alerr

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Code is a stable error identifier of the form E{family}{number}.
type Code string

const (
	// E1xxx: reading or decoding a project payload.
	ErrProjectInvalid  Code = "E1001"
	ErrProjectNotFound Code = "E1002"
	ErrProjectFormat   Code = "E1003" // unsupported file extension
	ErrProjectEncode   Code = "E1004"

	// E2xxx: user input.
	ErrInvalidIdentifier Code = "E2001"
	ErrReservedWord      Code = "E2002"
	ErrTableInvalid      Code = "E2003"
	ErrValueFormat       Code = "E2004" // manual value does not fit its column type
	ErrUnknownAction     Code = "E2005"

	// E3xxx: producing or writing a script.
	ErrGenerate     Code = "E3001"
	ErrOutputWrite  Code = "E3002"
	ErrFingerprint  Code = "E3003"
	ErrWatchFailure Code = "E3004"

	// E4xxx: configuration.
	ErrConfigInvalid Code = "E4001"

	// E8xxx: the local project and history store.
	ErrStoreInit  Code = "E8001"
	ErrStoreRead  Code = "E8002"
	ErrStoreWrite Code = "E8003"

	EInternalError Code = "E9001"
)

var families = map[byte]string{
	'1': "project",
	'2': "input",
	'3': "generate",
	'4': "config",
	'8': "store",
	'9': "internal",
}

// Category names the family a code belongs to, or "unknown".
func (c Code) Category() string {
	if len(c) < 2 || c[0] != 'E' {
		return "unknown"
	}
	if name, ok := families[c[1]]; ok {
		return name
	}
	return "unknown"
}

// Error is a coded error. Build it with New or Wrap and attach details
// with the With* methods, which return the receiver for chaining.
type Error struct {
	code    Code
	message string
	path    string
	details map[string]any
	notes   []string
	helps   []string
	cause   error
}

// New returns an Error with no cause.
func New(code Code, msg string) *Error {
	return &Error{code: code, message: msg}
}

// Wrap returns an Error caused by err. A nil err yields the same as New.
func Wrap(code Code, err error, msg string) *Error {
	e := New(code, msg)
	e.cause = err
	return e
}

// WrapStore wraps a storage failure as "failed to <op>", scoped to table
// when one is given.
func WrapStore(code Code, err error, op, table string) *Error {
	e := Wrap(code, err, "failed to "+op)
	if table != "" {
		e.WithTable(table)
	}
	return e
}

// Error renders the code and message, then the path, the details in key
// order and the cause, one per indented line:
//
//	[E2003] table fails validation
//	  errors: [Primary key is required.]
//	  table: users
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.code, e.message)
	if e.path != "" {
		fmt.Fprintf(&b, "\n  path: %s", e.path)
	}
	for _, k := range slices.Sorted(maps.Keys(e.details)) {
		fmt.Fprintf(&b, "\n  %s: %v", k, e.details[k])
	}
	if e.cause != nil {
		fmt.Fprintf(&b, "\n  cause: %v", e.cause)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches any *Error with the same code, so errors.Is(err, New(code, ""))
// works as a code check.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.code == e.code
}

func (e *Error) GetCode() Code      { return e.code }
func (e *Error) GetMessage() string { return e.message }
func (e *Error) GetCause() error    { return e.cause }
func (e *Error) Path() string       { return e.path }
func (e *Error) Notes() []string    { return e.notes }
func (e *Error) Helps() []string    { return e.helps }

// GetContext returns a copy of the free-form details. Path, notes and helps
// have their own accessors.
func (e *Error) GetContext() map[string]any {
	return maps.Clone(e.details)
}

// With sets a detail, replacing any earlier value under key.
func (e *Error) With(key string, value any) *Error {
	if e.details == nil {
		e.details = make(map[string]any)
	}
	e.details[key] = value
	return e
}

func (e *Error) WithTable(table string) *Error {
	return e.With("table", table)
}

// WithPath records the file the error refers to.
func (e *Error) WithPath(path string) *Error {
	e.path = path
	return e
}

// WithNote appends a line rendered as "note: ...".
func (e *Error) WithNote(note string) *Error {
	e.notes = append(e.notes, note)
	return e
}

// WithHelp appends a line rendered as "help: ...".
func (e *Error) WithHelp(help string) *Error {
	e.helps = append(e.helps, help)
	return e
}

// GetErrorCode returns the code of the first *Error in err's chain, or "".
func GetErrorCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return ""
}

// Is reports whether err's chain carries code.
func Is(err error, code Code) bool {
	return code != "" && GetErrorCode(err) == code
}
