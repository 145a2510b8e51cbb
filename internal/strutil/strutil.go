// Package strutil provides string helpers for SQL naming and text layout
// used throughout the sqlforge codebase.
package strutil

import (
	"strings"
	"unicode"
)

// -----------------------------------------------------------------------------
// SQL Naming
// -----------------------------------------------------------------------------

// ForeignKeyName returns the constraint name for a foreign key column.
// Example: ForeignKeyName("orders", "user_id") -> "orders_user_id_FK"
func ForeignKeyName(table, column string) string {
	return table + "_" + column + "_FK"
}

// ParamName returns the routine parameter name for a column, using the
// given prefix ("@" for SQL Server, "p_" elsewhere).
// Example: ParamName("p_", "email") -> "p_email"
func ParamName(prefix, column string) string {
	return prefix + column
}

// SanitizeIdentifier turns arbitrary text into a plain SQL identifier:
// runs of characters other than letters, digits and underscore collapse to a
// single underscore, leading and trailing underscores are dropped, and a
// leading digit gets a "t" prefix.
// Examples: "order items" -> "order_items", "2024 sales" -> "t2024_sales"
func SanitizeIdentifier(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingSep := false
	for _, r := range s {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			if r == '_' {
				pendingSep = true
				continue
			}
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}

	out := b.String()
	if out != "" && unicode.IsDigit(rune(out[0])) {
		out = "t" + out
	}
	return out
}

// -----------------------------------------------------------------------------
// Type Inspection
// -----------------------------------------------------------------------------

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToUpper(s), strings.ToUpper(substr))
}

// ContainsAnyFold reports whether any of the substrings is within s, ignoring case.
func ContainsAnyFold(s string, substrs ...string) bool {
	upper := strings.ToUpper(s)
	for _, sub := range substrs {
		if strings.Contains(upper, strings.ToUpper(sub)) {
			return true
		}
	}
	return false
}

// -----------------------------------------------------------------------------
// Formatting
// -----------------------------------------------------------------------------

// IndentLines indents every item and joins them with sep.
// Example: IndentLines([]string{"a", "b"}, 4, ",\n") -> "    a,\n    b"
func IndentLines(items []string, spaces int, sep string) string {
	prefix := strings.Repeat(" ", spaces)
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = prefix + item
	}
	return strings.Join(out, sep)
}

// CommentLines prefixes each line with "-- " so the text is inert SQL.
func CommentLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = "-- " + line
	}
	return strings.Join(lines, "\n")
}
