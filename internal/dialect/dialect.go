// Package dialect provides the per-engine pieces of SQL generation.
// Each dialect implements identifier quoting, generic type mapping, literal
// formatting and the statement wrappers (CREATE TABLE, procedures) that
// differ between SQL Server, MySQL and PostgreSQL.
//
// FormatValue doubles single quotes and does nothing else. It is meant for
// scripts a developer reviews before running, not for untrusted input.
// QuoteIdent performs no escaping at all; sanitize names first.
package dialect

import (
	"strings"
)

// Name is a canonical dialect token.
type Name string

// Supported dialects.
const (
	SQLServer  Name = "sqlserver"
	MySQL      Name = "mysql"
	PostgreSQL Name = "postgresql"
)

// Default is used when a dialect name cannot be resolved.
const Default = SQLServer

// -----------------------------------------------------------------------------
// Sub-interfaces
// -----------------------------------------------------------------------------

// TypeMapper maps generic column types and literal values.
type TypeMapper interface {
	// MapType rewrites a generic type for the dialect.
	// Unknown types pass through with their original spelling.
	MapType(genericType string) string

	// FormatValue renders a raw cell as a SQL literal.
	// Empty, NULL and (AUTO) become NULL; textual types are quoted.
	FormatValue(raw, genericType string) string
}

// SQLFormatter covers identifier and parameter spelling.
type SQLFormatter interface {
	// QuoteIdent quotes a table or column name.
	// SQL Server: [name], MySQL: `name`, PostgreSQL: "name"
	QuoteIdent(name string) string

	// ParamRef returns how a routine body refers to the parameter for column.
	// SQL Server: @name, others: p_name
	ParamRef(column string) string

	// ParamDecl returns one parameter declaration.
	// SQL Server: @name TYPE, MySQL: IN p_name TYPE, PostgreSQL: p_name TYPE
	ParamDecl(p Param) string

	// BatchTerminator returns the line that ends a batch ("GO"), or "".
	BatchTerminator() string
}

// DDLGenerator produces the dialect-specific parts of DDL.
type DDLGenerator interface {
	// DatabaseHeader returns the create-if-missing and select-database script.
	DatabaseHeader(name string) string

	// AutoIncrement returns the column type and identity clause for an
	// auto-increment integer column. The clause may be empty when the type
	// itself carries the behavior (SERIAL).
	AutoIncrement(mappedType string) (typ, clause string)

	// CurrentTimestampDefault returns the DEFAULT clause for auto-populated
	// date and time columns.
	CurrentTimestampDefault() string

	// TableWrapper wraps column and constraint lines into a CREATE TABLE statement.
	TableWrapper(quotedName, body string) string
}

// RoutineGenerator produces stored procedures and functions.
type RoutineGenerator interface {
	// RoutineWrapper renders a complete routine definition.
	RoutineWrapper(r Routine) string

	// InsertDefaultValues returns an INSERT that supplies no columns.
	InsertDefaultValues(quotedTable string) string
}

// Dialect is the full strategy for one database engine.
type Dialect interface {
	// Name returns the canonical token (sqlserver, mysql, postgresql).
	Name() Name

	// DisplayName returns the human form (SQL Server, MySQL, PostgreSQL).
	DisplayName() string

	TypeMapper
	SQLFormatter
	DDLGenerator
	RoutineGenerator
}

// -----------------------------------------------------------------------------
// Routines
// -----------------------------------------------------------------------------

// RoutineKind tells a dialect whether a routine changes data or returns rows.
type RoutineKind int

const (
	// Command routines modify data (Insert, Update, Delete).
	Command RoutineKind = iota
	// Query routines return rows of their table (GetById, SelectAll).
	Query
)

// Param is a routine parameter bound to a column.
type Param struct {
	Column string // column name; the dialect derives the parameter name
	Type   string // already mapped type
}

// Routine describes a stored procedure or function to render.
type Routine struct {
	Name   string
	Kind   RoutineKind
	Table  string   // unquoted table name, used for row-returning signatures
	Params []Param  // in column order
	Body   []string // statement lines without indentation
}

// -----------------------------------------------------------------------------
// Lookup
// -----------------------------------------------------------------------------

// names maps every accepted spelling to its canonical token.
// Keys are lowercased and trimmed.
var names = map[string]Name{
	"sqlserver":  SQLServer,
	"sql server": SQLServer,
	"mssql":      SQLServer,
	"mysql":      MySQL,
	"postgresql": PostgreSQL,
	"postgres":   PostgreSQL,
}

// Parse resolves a dialect name or display name.
// Matching ignores case and surrounding whitespace.
func Parse(raw string) (Name, bool) {
	n, ok := names[strings.ToLower(strings.TrimSpace(raw))]
	return n, ok
}

// Normalize resolves raw to a canonical token, falling back to SQL Server for
// anything it does not recognize.
func Normalize(raw string) Name {
	if n, ok := Parse(raw); ok {
		return n
	}
	return Default
}

// Get returns the dialect for raw after normalization. It never returns nil.
func Get(raw string) Dialect {
	switch Normalize(raw) {
	case MySQL:
		return MySQLDialect()
	case PostgreSQL:
		return Postgres()
	default:
		return SQLServerDialect()
	}
}

// Names returns the canonical tokens of all supported dialects.
func Names() []string {
	return []string{string(SQLServer), string(MySQL), string(PostgreSQL)}
}

// All returns every dialect implementation in Names order.
func All() []Dialect {
	return []Dialect{SQLServerDialect(), MySQLDialect(), Postgres()}
}
