// Package testutil provides test helpers for sqlforge: schema fixtures,
// whitespace-insensitive SQL assertions, error code assertions, golden
// files, and SQLite checks for the store.
//
// Golden files live in the calling package's testdata/ directory. Refresh
// them with:
//
//	go test ./internal/artifact -update-golden
package testutil

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/hlop3z/sqlforge/internal/alerr"
)

var updateGolden = flag.Bool("update-golden", false, "update golden files")

// -----------------------------------------------------------------------------
// SQL
// -----------------------------------------------------------------------------

var whitespace = regexp.MustCompile(`\s+`)

// NormalizeSQL collapses whitespace runs to one space and trims the ends.
// Case is kept: quoted identifiers are case sensitive in every dialect.
func NormalizeSQL(sql string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(sql, " "))
}

// AssertSQL fails when got and want differ beyond whitespace layout.
func AssertSQL(t *testing.T, got, want string) {
	t.Helper()
	if g, w := NormalizeSQL(got), NormalizeSQL(want); g != w {
		t.Errorf("sql differs\n got: %s\nwant: %s\n\nraw:\n%s", g, w, got)
	}
}

// AssertSQLContains fails when fragment does not occur in sql once both are
// normalized.
func AssertSQLContains(t *testing.T, sql, fragment string) {
	t.Helper()
	if !strings.Contains(NormalizeSQL(sql), NormalizeSQL(fragment)) {
		t.Errorf("sql lacks fragment %q\n\n%s", NormalizeSQL(fragment), sql)
	}
}

// -----------------------------------------------------------------------------
// Errors
// -----------------------------------------------------------------------------

// AssertError fails unless err carries code somewhere in its chain.
func AssertError(t *testing.T, err error, code alerr.Code) {
	t.Helper()
	switch got := alerr.GetErrorCode(err); {
	case err == nil:
		t.Errorf("want error %s, got nil", code)
	case got != code:
		t.Errorf("error code %q, want %s: %v", got, code, err)
	}
}

// Must stops the test on a non-nil err.
func Must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// -----------------------------------------------------------------------------
// Golden Files
// -----------------------------------------------------------------------------

// Golden compares got with testdata/<name>.golden, or rewrites the file
// when the tests run with -update-golden.
func Golden(t *testing.T, name, got string) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")
	if *updateGolden {
		WriteFile(t, path, got)
		return
	}

	want, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		t.Fatalf("%s missing; create it with -update-golden\n\n%s", path, got)
	case err != nil:
		t.Fatal(err)
	case got != string(want):
		t.Errorf("%s is stale (refresh with -update-golden)\n--- got\n%s\n--- want\n%s", path, got, want)
	}
}

// WriteFile writes content to path, creating missing directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
