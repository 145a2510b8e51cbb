// Package sqlforge is the public API for generating SQL Server, MySQL and
// PostgreSQL scripts from an abstract table description: database header,
// CREATE TABLE, five CRUD routines and bulk INSERT statements.
//
// Every function takes the dialect as a string. Unknown dialects fall back
// to SQL Server; nothing here returns an error for a bad dialect.
//
//	tbl := &sqlforge.Table{Name: "users", Columns: []sqlforge.Column{...}}
//	fmt.Println(sqlforge.BuildCreateTable(tbl, "MySQL"))
package sqlforge

import (
	"github.com/hlop3z/sqlforge/internal/artifact"
	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/model"
	"github.com/hlop3z/sqlforge/internal/rules"
	"github.com/hlop3z/sqlforge/internal/sample"
	"github.com/hlop3z/sqlforge/internal/sqlgen"
	"github.com/hlop3z/sqlforge/internal/validate"
)

// Schema model.
type (
	Project = model.Project
	Table   = model.Table
	Column  = model.Column
	Row     = model.Row
)

// Action selects a part of the generated script.
type Action = rules.Action

// Actions.
const (
	ActionDatabase  = rules.Database
	ActionTable     = rules.Table
	ActionInsert    = rules.Insert
	ActionGetByID   = rules.GetByID
	ActionSelectAll = rules.SelectAll
	ActionUpdate    = rules.Update
	ActionDelete    = rules.Delete
	ActionData      = rules.Data
)

// Script is an assembled, block-structured SQL script.
type Script = artifact.Script

// Block is one entry of a Script.
type Block = artifact.Block

// Canonical dialect names.
const (
	SQLServer  = string(dialect.SQLServer)
	MySQL      = string(dialect.MySQL)
	PostgreSQL = string(dialect.PostgreSQL)
)

// NormalizeDialect maps a display or canonical dialect name to its canonical
// form, falling back to "sqlserver".
func NormalizeDialect(raw string) string {
	return string(dialect.Normalize(raw))
}

// Dialects returns the canonical names of the supported dialects.
func Dialects() []string {
	return dialect.Names()
}

// BuildDatabaseHeader returns the create-if-missing and select-database
// script, or "" when name is blank.
func BuildDatabaseHeader(name, dialectName string) string {
	return sqlgen.DatabaseHeader(name, dialect.Get(dialectName)).Text()
}

// BuildCreateTable returns the CREATE TABLE statement for t, or a comment
// when t has no columns.
func BuildCreateTable(t *Table, dialectName string) string {
	return sqlgen.CreateTable(t, dialect.Get(dialectName)).Text()
}

// BuildCRUDProcedures returns one routine per requested CRUD action in the
// order Insert, GetById, SelectAll, Update, Delete. Actions that cannot be
// generated yield a comment in their slot.
func BuildCRUDProcedures(t *Table, dialectName string, actions ...Action) []string {
	stmts := sqlgen.CRUDProcedures(t, dialect.Get(dialectName), rules.NewActionSet(actions...))
	out := make([]string, len(stmts))
	for i, s := range stmts {
		out[i] = s.Text()
	}
	return out
}

// BuildBulkInsert returns one multi-row INSERT for the table's entered rows,
// or "" when there is nothing to insert.
func BuildBulkInsert(t *Table, dialectName string) string {
	return sqlgen.BulkInsert(t, dialect.Get(dialectName)).Text()
}

// ValidateTable reports whether t can be generated and the reasons it cannot.
func ValidateTable(t *Table) (bool, []string) {
	res := validate.Table(t)
	return res.Valid, res.Errors
}

// ValidateValue checks a manually entered value against a column type.
func ValidateValue(raw, genericType string) (bool, []string) {
	res := validate.Value(raw, genericType)
	return res.Valid, res.Errors
}

// FormatValue returns the SQL literal for raw in a VALUES list.
func FormatValue(raw, genericType, dialectName string) string {
	return dialect.Get(dialectName).FormatValue(raw, genericType)
}

// QuoteIdentifier wraps name in the dialect's identifier delimiters.
func QuoteIdentifier(name, dialectName string) string {
	return dialect.Get(dialectName).QuoteIdent(name)
}

// MapType rewrites a generic column type for the dialect.
func MapType(genericType, dialectName string) string {
	return dialect.Get(dialectName).MapType(genericType)
}

// Generate assembles the script for p using the project's own dialect.
func Generate(p *Project, actions ...Action) *Script {
	return GenerateWith(p, actions)
}

// GenerateWith is Generate with options.
func GenerateWith(p *Project, actions []Action, opts ...Option) *Script {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return artifact.Build(p, rules.NewActionSet(actions...), artifact.Options{
		Logger:     cfg.Logger,
		StrictData: cfg.StrictData,
	})
}

// ParseActions parses a comma separated action list such as
// "table,insert" or "all".
func ParseActions(list string) ([]Action, error) {
	set, err := rules.ParseActionSet(list)
	if err != nil {
		return nil, err
	}
	return set.Slice(), nil
}

// FillSample appends n plausible rows to t, guessing values from column
// names and types. The same seed always yields the same rows.
func FillSample(t *Table, n int, seed uint64) []Row {
	return sample.Fill(t, n, seed)
}

// LoadProject reads a JSON or YAML project file.
func LoadProject(path string) (*Project, error) {
	return model.LoadFile(path)
}

// SaveProject writes p as JSON or YAML depending on the file extension.
func SaveProject(path string, p *Project) error {
	return model.SaveFile(path, p)
}
