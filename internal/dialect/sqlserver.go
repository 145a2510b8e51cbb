package dialect

import (
	"fmt"
	"strings"
)

// sqlServer implements the Dialect interface for Microsoft SQL Server.
type sqlServer struct{}

// SQLServerDialect returns the SQL Server dialect implementation.
func SQLServerDialect() Dialect {
	return &sqlServer{}
}

func (d *sqlServer) Name() Name {
	return SQLServer
}

func (d *sqlServer) DisplayName() string {
	return "SQL Server"
}

// -----------------------------------------------------------------------------
// Types and values
// -----------------------------------------------------------------------------

// MapType returns the input unchanged: generic types are written in T-SQL.
func (d *sqlServer) MapType(genericType string) string {
	return genericType
}

func (d *sqlServer) FormatValue(raw, genericType string) string {
	return formatValue(raw, genericType)
}

// -----------------------------------------------------------------------------
// Identifiers
// -----------------------------------------------------------------------------

func (d *sqlServer) QuoteIdent(name string) string {
	return "[" + name + "]"
}

func (d *sqlServer) ParamRef(column string) string {
	return "@" + column
}

func (d *sqlServer) ParamDecl(p Param) string {
	return d.ParamRef(p.Column) + " " + p.Type
}

func (d *sqlServer) BatchTerminator() string {
	return "GO"
}

// -----------------------------------------------------------------------------
// DDL
// -----------------------------------------------------------------------------

func (d *sqlServer) DatabaseHeader(name string) string {
	return fmt.Sprintf(`IF NOT EXISTS (SELECT * FROM sys.databases WHERE name = '%s')
BEGIN
    CREATE DATABASE %s;
END
GO

USE %s;
GO`, name, d.QuoteIdent(name), d.QuoteIdent(name))
}

func (d *sqlServer) AutoIncrement(mappedType string) (string, string) {
	return mappedType, "IDENTITY(1,1)"
}

func (d *sqlServer) CurrentTimestampDefault() string {
	return "DEFAULT GETDATE()"
}

func (d *sqlServer) TableWrapper(quotedName, body string) string {
	return "CREATE TABLE " + quotedName + " (\n" + body + "\n);\nGO"
}

// -----------------------------------------------------------------------------
// Routines
// -----------------------------------------------------------------------------

func (d *sqlServer) RoutineWrapper(r Routine) string {
	var b strings.Builder
	b.WriteString("CREATE PROCEDURE ")
	b.WriteString(r.Name)
	b.WriteString("\n")
	if len(r.Params) > 0 {
		b.WriteString(paramList(r.Params, d.ParamDecl))
		b.WriteString("\n")
	}
	b.WriteString("AS\nBEGIN\n")
	b.WriteString(body(r.Body))
	b.WriteString("\nEND\nGO")
	return b.String()
}

func (d *sqlServer) InsertDefaultValues(quotedTable string) string {
	return "INSERT INTO " + quotedTable + " DEFAULT VALUES;"
}
