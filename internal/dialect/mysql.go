package dialect

import (
	"fmt"
	"strings"

	"github.com/hlop3z/sqlforge/internal/strutil"
)

// mySQL implements the Dialect interface for MySQL.
type mySQL struct{}

// MySQLDialect returns the MySQL dialect implementation.
func MySQLDialect() Dialect {
	return &mySQL{}
}

func (d *mySQL) Name() Name {
	return MySQL
}

func (d *mySQL) DisplayName() string {
	return "MySQL"
}

// -----------------------------------------------------------------------------
// Types and values
// -----------------------------------------------------------------------------

// MapType rewrites VARCHAR(MAX) to TEXT and DATETIME2 to DATETIME.
func (d *mySQL) MapType(genericType string) string {
	switch {
	case isMaxVarchar(genericType):
		return "TEXT"
	case strutil.ContainsFold(genericType, "DATETIME2"):
		return "DATETIME"
	default:
		return genericType
	}
}

func (d *mySQL) FormatValue(raw, genericType string) string {
	return formatValue(raw, genericType)
}

// -----------------------------------------------------------------------------
// Identifiers
// -----------------------------------------------------------------------------

func (d *mySQL) QuoteIdent(name string) string {
	return "`" + name + "`"
}

func (d *mySQL) ParamRef(column string) string {
	return strutil.ParamName("p_", column)
}

func (d *mySQL) ParamDecl(p Param) string {
	return "IN " + d.ParamRef(p.Column) + " " + p.Type
}

func (d *mySQL) BatchTerminator() string {
	return ""
}

// -----------------------------------------------------------------------------
// DDL
// -----------------------------------------------------------------------------

func (d *mySQL) DatabaseHeader(name string) string {
	return fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s;\nUSE %s;", d.QuoteIdent(name), d.QuoteIdent(name))
}

func (d *mySQL) AutoIncrement(mappedType string) (string, string) {
	return mappedType, "AUTO_INCREMENT"
}

func (d *mySQL) CurrentTimestampDefault() string {
	return "DEFAULT CURRENT_TIMESTAMP"
}

func (d *mySQL) TableWrapper(quotedName, body string) string {
	return "CREATE TABLE IF NOT EXISTS " + quotedName + " (\n" + body + "\n);"
}

// -----------------------------------------------------------------------------
// Routines
// -----------------------------------------------------------------------------

// RoutineWrapper switches the client delimiter so the body can contain ';'.
func (d *mySQL) RoutineWrapper(r Routine) string {
	var b strings.Builder
	b.WriteString("DELIMITER $$\nCREATE PROCEDURE ")
	b.WriteString(r.Name)
	if len(r.Params) > 0 {
		b.WriteString("(\n")
		b.WriteString(paramList(r.Params, d.ParamDecl))
		b.WriteString("\n)\n")
	} else {
		b.WriteString("()\n")
	}
	b.WriteString("BEGIN\n")
	b.WriteString(body(r.Body))
	b.WriteString("\nEND $$\nDELIMITER ;")
	return b.String()
}

func (d *mySQL) InsertDefaultValues(quotedTable string) string {
	return "INSERT INTO " + quotedTable + " () VALUES ();"
}
