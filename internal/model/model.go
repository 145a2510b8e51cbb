// Package model defines the abstract schema description that every SQL
// builder reads: projects, tables, columns and manually entered rows.
//
// Values of these types are treated as read-only by the generators.
package model

import "strings"

// Sentinels a row cell may hold instead of a literal value.
const (
	NullToken = "NULL"   // explicit SQL NULL
	AutoToken = "(AUTO)" // value assigned by the database
)

// -----------------------------------------------------------------------------
// Column
// -----------------------------------------------------------------------------

// Column describes one table column.
// SQLType is the generic type as typed by the user (e.g. "INT", "VARCHAR(MAX)");
// dialect mapping happens at generation time.
type Column struct {
	Name             string `json:"name" yaml:"name"`
	SQLType          string `json:"sql_type" yaml:"sql_type"`
	Nullable         bool   `json:"nullable" yaml:"nullable"`
	IsPrimaryKey     bool   `json:"is_primary_key" yaml:"is_primary_key"`
	IsAutoIncrement  bool   `json:"is_auto_increment" yaml:"is_auto_increment"`
	ForeignKeyTable  string `json:"foreign_key_table" yaml:"foreign_key_table"`
	ForeignKeyColumn string `json:"foreign_key_column" yaml:"foreign_key_column"`
}

// NewColumn returns a nullable, non-key column.
func NewColumn(name, sqlType string) Column {
	return Column{Name: name, SQLType: sqlType, Nullable: true}
}

// HasForeignKey reports whether both foreign key fields are set.
func (c Column) HasForeignKey() bool {
	return c.ForeignKeyTable != "" && c.ForeignKeyColumn != ""
}

// -----------------------------------------------------------------------------
// Table
// -----------------------------------------------------------------------------

// Row maps a column name to its raw string value, NullToken or AutoToken.
type Row map[string]string

// Table is an ordered list of columns plus optional sample rows.
type Table struct {
	Name    string   `json:"name" yaml:"name"`
	Columns []Column `json:"columns" yaml:"columns,omitempty"`
	Rows    []Row    `json:"rows" yaml:"rows,omitempty"`
}

// PrimaryKeys returns the primary key columns in declaration order.
func (t *Table) PrimaryKeys() []Column {
	var pks []Column
	for _, c := range t.Columns {
		if c.IsPrimaryKey {
			pks = append(pks, c)
		}
	}
	return pks
}

// PrimaryKey returns the first primary key column.
func (t *Table) PrimaryKey() (Column, bool) {
	for _, c := range t.Columns {
		if c.IsPrimaryKey {
			return c, true
		}
	}
	return Column{}, false
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// HasAutoIncrementKey reports whether any primary key column is auto-increment.
func (t *Table) HasAutoIncrementKey() bool {
	for _, c := range t.Columns {
		if c.IsPrimaryKey && c.IsAutoIncrement {
			return true
		}
	}
	return false
}

// -----------------------------------------------------------------------------
// Project
// -----------------------------------------------------------------------------

// Project is the unit of generation: an optional database name, a target
// DBMS (canonical token or display name) and the tables in output order.
type Project struct {
	DatabaseName string  `json:"database_name" yaml:"database_name"`
	DBMS         string  `json:"dbms" yaml:"dbms"`
	Tables       []Table `json:"tables" yaml:"tables,omitempty"`
}

// Table returns a pointer to the named table, or nil.
func (p *Project) Table(name string) *Table {
	for i := range p.Tables {
		if p.Tables[i].Name == name {
			return &p.Tables[i]
		}
	}
	return nil
}

// StoreName is the key a project is saved under: the trimmed database name,
// or "default" when it is blank.
func (p *Project) StoreName() string {
	if name := strings.TrimSpace(p.DatabaseName); name != "" {
		return name
	}
	return "default"
}
