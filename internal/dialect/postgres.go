package dialect

import (
	"fmt"
	"strings"

	"github.com/hlop3z/sqlforge/internal/strutil"
)

// postgres implements the Dialect interface for PostgreSQL.
type postgres struct{}

// Postgres returns the PostgreSQL dialect implementation.
func Postgres() Dialect {
	return &postgres{}
}

func (d *postgres) Name() Name {
	return PostgreSQL
}

func (d *postgres) DisplayName() string {
	return "PostgreSQL"
}

// -----------------------------------------------------------------------------
// Types and values
// -----------------------------------------------------------------------------

// MapType rewrites VARCHAR(MAX) to TEXT, any DATETIME to TIMESTAMP and a
// bare BIT to BOOLEAN.
func (d *postgres) MapType(genericType string) string {
	switch {
	case isMaxVarchar(genericType):
		return "TEXT"
	case strutil.ContainsFold(genericType, "DATETIME"):
		return "TIMESTAMP"
	case strings.EqualFold(genericType, "BIT"):
		return "BOOLEAN"
	default:
		return genericType
	}
}

func (d *postgres) FormatValue(raw, genericType string) string {
	return formatValue(raw, genericType)
}

// -----------------------------------------------------------------------------
// Identifiers
// -----------------------------------------------------------------------------

func (d *postgres) QuoteIdent(name string) string {
	return `"` + name + `"`
}

func (d *postgres) ParamRef(column string) string {
	return strutil.ParamName("p_", column)
}

func (d *postgres) ParamDecl(p Param) string {
	return d.ParamRef(p.Column) + " " + p.Type
}

func (d *postgres) BatchTerminator() string {
	return ""
}

// -----------------------------------------------------------------------------
// DDL
// -----------------------------------------------------------------------------

// DatabaseHeader relies on psql's \gexec and \c meta-commands.
func (d *postgres) DatabaseHeader(name string) string {
	return fmt.Sprintf("SELECT 'CREATE DATABASE %s' WHERE NOT EXISTS (SELECT FROM pg_database WHERE datname = '%s')\\gexec\n\\c %s;",
		d.QuoteIdent(name), name, name)
}

// AutoIncrement replaces the type with SERIAL or BIGSERIAL.
func (d *postgres) AutoIncrement(mappedType string) (string, string) {
	if strutil.ContainsFold(mappedType, "BIG") {
		return "BIGSERIAL", ""
	}
	return "SERIAL", ""
}

func (d *postgres) CurrentTimestampDefault() string {
	return "DEFAULT CURRENT_TIMESTAMP"
}

func (d *postgres) TableWrapper(quotedName, body string) string {
	return "CREATE TABLE IF NOT EXISTS " + quotedName + " (\n" + body + "\n);"
}

// -----------------------------------------------------------------------------
// Routines
// -----------------------------------------------------------------------------

// RoutineWrapper renders Query routines as SQL functions returning SETOF the
// table, and Command routines as plpgsql procedures.
func (d *postgres) RoutineWrapper(r Routine) string {
	if r.Kind == Query {
		return d.function(r)
	}

	var b strings.Builder
	b.WriteString("CREATE OR REPLACE PROCEDURE ")
	b.WriteString(r.Name)
	if len(r.Params) > 0 {
		b.WriteString("(\n")
		b.WriteString(paramList(r.Params, d.ParamDecl))
		b.WriteString("\n)\n")
	} else {
		b.WriteString("()\n")
	}
	b.WriteString("LANGUAGE plpgsql\nAS $$\nBEGIN\n")
	b.WriteString(body(r.Body))
	b.WriteString("\nEND;\n$$;")
	return b.String()
}

func (d *postgres) function(r Routine) string {
	decls := make([]string, len(r.Params))
	for i, p := range r.Params {
		decls[i] = d.ParamDecl(p)
	}

	var b strings.Builder
	b.WriteString("CREATE OR REPLACE FUNCTION ")
	b.WriteString(r.Name)
	b.WriteString("(")
	b.WriteString(strings.Join(decls, ", "))
	b.WriteString(")\nRETURNS SETOF ")
	b.WriteString(d.QuoteIdent(r.Table))
	b.WriteString("\nLANGUAGE sql\nAS $$\n")
	b.WriteString(body(r.Body))
	b.WriteString("\n$$;")
	return b.String()
}

func (d *postgres) InsertDefaultValues(quotedTable string) string {
	return "INSERT INTO " + quotedTable + " DEFAULT VALUES;"
}
