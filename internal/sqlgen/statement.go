package sqlgen

import (
	"github.com/hlop3z/sqlforge/internal/rules"
	"github.com/hlop3z/sqlforge/internal/strutil"
)

// Kind identifies which builder produced a Statement.
type Kind int

const (
	KindDatabase    Kind = iota // CREATE DATABASE / USE header
	KindCreateTable             // CREATE TABLE
	KindProcedure               // stored procedure or function
	KindInsert                  // bulk INSERT of entered rows
)

func (k Kind) String() string {
	switch k {
	case KindDatabase:
		return "database"
	case KindCreateTable:
		return "table"
	case KindProcedure:
		return "procedure"
	case KindInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Statement is the result of a builder: either SQL or a diagnostic
// explaining why the SQL could not be produced. Never both.
type Statement struct {
	Kind       Kind
	Table      string
	Action     rules.Action // set for procedures
	SQL        string
	Diagnostic string
}

// IsDiagnostic reports whether the builder declined to produce SQL.
func (s Statement) IsDiagnostic() bool {
	return s.Diagnostic != ""
}

// IsEmpty reports whether there is nothing to emit.
func (s Statement) IsEmpty() bool {
	return s.SQL == "" && s.Diagnostic == ""
}

// Text renders the statement for a script. Diagnostics become SQL comments
// so the script stays executable.
func (s Statement) Text() string {
	if s.IsDiagnostic() {
		return strutil.CommentLines(s.Diagnostic)
	}
	return s.SQL
}

func diagnostic(kind Kind, table string, action rules.Action, msg string) Statement {
	return Statement{Kind: kind, Table: table, Action: action, Diagnostic: msg}
}
