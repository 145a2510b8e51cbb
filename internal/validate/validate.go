// Package validate checks tables and manually entered values before any SQL
// is generated. Validation never panics and never returns early: every
// problem found is reported as a human-readable message.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hlop3z/sqlforge/internal/alerr"
	"github.com/hlop3z/sqlforge/internal/model"
	"github.com/hlop3z/sqlforge/internal/strutil"
)

// Structural error messages, in the order Table reports them.
const (
	MsgTableNameRequired = "Table name is required."
	MsgColumnRequired    = "At least one column is required."
	MsgPrimaryKeyMissing = "Primary key is required."
	MsgSinglePrimaryKey  = "Only one primary key column is supported."
	msgAutoIncrementOnPK = "AUTO INCREMENT is only allowed on the primary key (column: %s)."
)

// maxIdentifierLength is the SQL Server identifier limit, the largest of the
// three dialects.
const maxIdentifierLength = 128

// -----------------------------------------------------------------------------
// Result
// -----------------------------------------------------------------------------

// Result is the outcome of a validation. Warnings never affect Valid.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}

func (r *Result) addError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Valid = false
}

func (r *Result) addWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Err returns nil for a valid result, or an alerr error listing every message.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return alerr.New(alerr.ErrTableInvalid, fmt.Sprintf("%d validation error(s)", len(r.Errors))).
		With("errors", r.Errors)
}

// -----------------------------------------------------------------------------
// Identifiers
// -----------------------------------------------------------------------------

// identifierRegex matches plain identifiers: a letter, then letters and digits
// in groups separated by single underscores.
var identifierRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*(_[A-Za-z0-9]+)*$`)

// Identifier checks that name is usable unquoted in all three dialects.
func Identifier(name string) error {
	if name == "" {
		return alerr.New(alerr.ErrInvalidIdentifier, "identifier cannot be empty")
	}
	if len(name) > maxIdentifierLength {
		return alerr.New(alerr.ErrInvalidIdentifier,
			fmt.Sprintf("identifier exceeds maximum length of %d characters", maxIdentifierLength)).
			With("name", name).
			With("length", len(name))
	}
	if !identifierRegex.MatchString(name) {
		err := alerr.New(alerr.ErrInvalidIdentifier,
			"identifier may only contain letters, digits and single underscores, and must start with a letter").
			With("got", name)
		if s := strutil.SanitizeIdentifier(name); s != "" && s != name && identifierRegex.MatchString(s) {
			err.With("suggestion", s)
		}
		return err
	}
	return ReservedWordError(name)
}

// identifierWarning renders an Identifier error as a one-line warning.
func identifierWarning(kind, name string, err error) string {
	msg := err.Error()
	if e, ok := err.(*alerr.Error); ok {
		msg = e.GetMessage()
		if s, ok := e.GetContext()["suggestion"].(string); ok && s != "" {
			msg += " (suggestion: " + s + ")"
		}
	}
	return fmt.Sprintf("%s '%s': %s", kind, name, msg)
}

// -----------------------------------------------------------------------------
// Tables
// -----------------------------------------------------------------------------

// Table checks the structural rules a table must satisfy before generation.
// Errors are reported in a fixed order: name, columns, primary key presence,
// primary key count, then each auto-increment column that is not a key.
func Table(t *model.Table) Result {
	res := Result{Valid: true}
	if t == nil {
		res.addError(MsgTableNameRequired)
		res.addError(MsgColumnRequired)
		res.addError(MsgPrimaryKeyMissing)
		return res
	}

	if strings.TrimSpace(t.Name) == "" {
		res.addError(MsgTableNameRequired)
	}
	if len(t.Columns) == 0 {
		res.addError(MsgColumnRequired)
	}

	pks := t.PrimaryKeys()
	if len(pks) == 0 {
		res.addError(MsgPrimaryKeyMissing)
	}
	if len(pks) > 1 {
		res.addError(MsgSinglePrimaryKey)
	}
	for _, c := range t.Columns {
		if c.IsAutoIncrement && !c.IsPrimaryKey {
			res.addError(fmt.Sprintf(msgAutoIncrementOnPK, c.Name))
		}
	}

	tableWarnings(t, &res)
	return res
}

func tableWarnings(t *model.Table, res *Result) {
	if t.Name != "" {
		if err := Identifier(t.Name); err != nil {
			res.addWarning(identifierWarning("table", t.Name, err))
		}
	}

	seen := make(map[string]bool, len(t.Columns))
	nonKey := 0
	for _, c := range t.Columns {
		if !c.IsPrimaryKey {
			nonKey++
		}
		if c.Name == "" {
			res.addWarning("column name is empty")
			continue
		}
		if seen[c.Name] {
			res.addWarning(fmt.Sprintf("duplicate column name '%s'", c.Name))
		}
		seen[c.Name] = true

		if err := Identifier(c.Name); err != nil {
			res.addWarning(identifierWarning("column", c.Name, err))
		}
		if (c.ForeignKeyTable == "") != (c.ForeignKeyColumn == "") {
			res.addWarning(fmt.Sprintf("column '%s': foreign key needs both a table and a column; it will be ignored", c.Name))
		}
	}

	if len(t.Columns) > 0 && nonKey == 0 {
		res.addWarning("table has no non-PK columns; the Update procedure cannot be generated")
	}
}

// -----------------------------------------------------------------------------
// Values
// -----------------------------------------------------------------------------

var (
	integerRegex  = regexp.MustCompile(`^-?\d+$`)
	decimalRegex  = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	dateRegex     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimeRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
)

var booleanLiterals = map[string]bool{
	"0": true, "1": true,
	"True": true, "False": true,
	"true": true, "false": true,
}

// Value checks a manually entered value against its column's generic type.
// Empty values and the NULL and (AUTO) sentinels always pass. Text types are
// not checked.
func Value(raw, genericType string) Result {
	res := Result{Valid: true}
	if raw == "" || strings.EqualFold(raw, model.NullToken) || raw == model.AutoToken {
		return res
	}

	t := strings.ToUpper(genericType)
	switch {
	case strings.Contains(t, "INT"):
		if !integerRegex.MatchString(raw) {
			res.addError("Must be a whole number.")
		}
	case strings.Contains(t, "DECIMAL"), strings.Contains(t, "FLOAT"), strings.Contains(t, "NUMERIC"):
		if !decimalRegex.MatchString(raw) {
			res.addError("Must be a number (e.g. 10.5).")
		}
	case t == "DATE":
		if !dateRegex.MatchString(raw) {
			res.addError("Expected date format: YYYY-MM-DD.")
		}
	case strings.Contains(t, "DATETIME"), strings.Contains(t, "TIMESTAMP"):
		if !dateTimeRegex.MatchString(raw) {
			res.addError("Expected date-time format: YYYY-MM-DD HH:MM:SS.")
		}
	case t == "BIT", t == "BOOLEAN":
		if !booleanLiterals[raw] {
			res.addError("Must be 0, 1, True or False.")
		}
	}
	return res
}

// RowError reports the invalid cells of one manually entered row.
type RowError struct {
	Row      int      `json:"row"` // zero-based row index
	Column   string   `json:"column"`
	Value    string   `json:"value"`
	Messages []string `json:"messages"`
}

func (e RowError) String() string {
	return fmt.Sprintf("row %d, column %s: %s", e.Row+1, e.Column, strings.Join(e.Messages, " "))
}

// Rows runs Value over every cell of every row, in row then column order.
// Cells for auto-increment columns are skipped since they are never inserted.
func Rows(t *model.Table) []RowError {
	if t == nil {
		return nil
	}
	var out []RowError
	for i, row := range t.Rows {
		for _, c := range t.Columns {
			if c.IsAutoIncrement {
				continue
			}
			raw, ok := row[c.Name]
			if !ok {
				continue
			}
			if res := Value(raw, c.SQLType); !res.Valid {
				out = append(out, RowError{Row: i, Column: c.Name, Value: raw, Messages: res.Errors})
			}
		}
	}
	return out
}
