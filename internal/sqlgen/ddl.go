package sqlgen

import (
	"strings"

	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/model"
	"github.com/hlop3z/sqlforge/internal/strutil"
)

// DatabaseHeader returns the create-if-missing and select-database script.
// A blank name yields an empty statement.
func DatabaseHeader(name string, d dialect.Dialect) Statement {
	name = strings.TrimSpace(name)
	if name == "" {
		return Statement{Kind: KindDatabase}
	}
	if d == nil {
		d = dialect.Get("")
	}
	return Statement{Kind: KindDatabase, SQL: d.DatabaseHeader(name)}
}

// CreateTable returns the CREATE TABLE statement for t: one line per column
// followed by one FOREIGN KEY constraint per referencing column.
func CreateTable(t *model.Table, d dialect.Dialect) Statement {
	if t == nil {
		t = &model.Table{}
	}
	if len(t.Columns) == 0 {
		return diagnostic(KindCreateTable, t.Name, "", "Table "+t.Name+" has no columns")
	}

	b := New(d)
	lines := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		lines = append(lines, columnDef(b, c))
	}
	for _, c := range t.Columns {
		if !c.HasForeignKey() {
			continue
		}
		b.ForeignKeyTo(strutil.ForeignKeyName(t.Name, c.Name), c.Name, c.ForeignKeyTable, c.ForeignKeyColumn)
		lines = append(lines, b.Take())
	}

	body := strutil.IndentLines(lines, 4, ",\n")
	return Statement{
		Kind:  KindCreateTable,
		Table: t.Name,
		SQL:   b.Dialect().TableWrapper(b.Dialect().QuoteIdent(t.Name), body),
	}
}

// columnDef renders "<name> <type> [identity] [PRIMARY KEY] [NOT NULL]".
//
// Auto-increment integer columns get the dialect's identity clause (or SERIAL
// type), auto-increment date/time columns default to the current timestamp.
// NOT NULL is only written for plain columns that are neither nullable nor
// a primary key.
func columnDef(b *Builder, c model.Column) string {
	d := b.Dialect()
	typ := d.MapType(c.SQLType)
	clause := ""

	if c.IsAutoIncrement {
		switch {
		case strutil.ContainsAnyFold(typ, "INT", "SERIAL"):
			typ, clause = d.AutoIncrement(typ)
		case strutil.ContainsAnyFold(typ, "DATE", "TIME"):
			clause = d.CurrentTimestampDefault()
		}
	}

	b.Ident(c.Name).Space().Raw(typ).Clause(clause)
	if c.IsPrimaryKey {
		b.PrimaryKey()
	}
	if !c.IsAutoIncrement && !c.Nullable && !c.IsPrimaryKey {
		b.NotNull()
	}
	return b.Take()
}
