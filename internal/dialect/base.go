// Package dialect provides database-specific SQL generation.
// This file contains shared helper functions used by all dialect implementations.
package dialect

import (
	"strings"

	"github.com/hlop3z/sqlforge/internal/model"
	"github.com/hlop3z/sqlforge/internal/strutil"
)

// WriteList writes each item through fn, comma separated. Callers pass
// QuoteIdent for column lists and ParamRef for routine arguments.
func WriteList(b *strings.Builder, items []string, fn func(string) string) {
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fn(item))
	}
}

// quotedKeywords are the type fragments whose values are written as string literals.
var quotedKeywords = []string{"CHAR", "TEXT", "DATE", "TIME", "TIMESTAMP", "UUID", "BOOLEAN", "BIT"}

// isNullish reports whether a raw cell means SQL NULL.
func isNullish(raw string) bool {
	v := strings.TrimSpace(raw)
	return v == "" || strings.EqualFold(v, model.NullToken) || v == model.AutoToken
}

// formatValue is the literal policy shared by every dialect: the only
// escaping is doubling single quotes inside quoted literals.
func formatValue(raw, genericType string) string {
	if isNullish(raw) {
		return "NULL"
	}
	if strutil.ContainsAnyFold(genericType, quotedKeywords...) {
		return "'" + strings.ReplaceAll(raw, "'", "''") + "'"
	}
	return raw
}

// isMaxVarchar reports whether the type is VARCHAR(MAX) in any casing.
func isMaxVarchar(genericType string) bool {
	return strutil.ContainsFold(genericType, "VARCHAR(MAX)")
}

// paramList renders parameter declarations one per line, indented four spaces.
func paramList(params []Param, decl func(Param) string) string {
	lines := make([]string, len(params))
	for i, p := range params {
		lines[i] = decl(p)
	}
	return strutil.IndentLines(lines, 4, ",\n")
}

// body indents routine statement lines four spaces.
func body(lines []string) string {
	return strutil.IndentLines(lines, 4, "\n")
}
