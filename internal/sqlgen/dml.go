package sqlgen

import (
	"fmt"
	"strings"

	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/model"
	"github.com/hlop3z/sqlforge/internal/rules"
)

// ----------------------------------------------------------------------------
// CRUD procedures
// ----------------------------------------------------------------------------

// CRUDProcedures returns one statement per requested CRUD action, in the
// fixed order Insert, GetById, SelectAll, Update, Delete. Non-CRUD members of
// the set are ignored.
func CRUDProcedures(t *model.Table, d dialect.Dialect, set rules.ActionSet) []Statement {
	actions := set.CRUD()
	out := make([]Statement, 0, len(actions))
	for _, a := range actions {
		out = append(out, Procedure(t, d, a))
	}
	return out
}

// Procedure builds a single CRUD routine. Actions that need a primary key
// yield a diagnostic when the table has none.
func Procedure(t *model.Table, d dialect.Dialect, action rules.Action) Statement {
	if t == nil {
		t = &model.Table{}
	}
	b := New(d)
	name := rules.ProcedureName(t.Name, action)

	var (
		r   dialect.Routine
		msg string
	)
	switch action {
	case rules.Insert:
		r = insertRoutine(b, t)
	case rules.GetByID:
		r, msg = getByIDRoutine(b, t)
	case rules.SelectAll:
		r = selectAllRoutine(b, t)
	case rules.Update:
		r, msg = updateRoutine(b, t)
	case rules.Delete:
		r, msg = deleteRoutine(b, t)
	default:
		msg = fmt.Sprintf("%q is not a CRUD action", string(action))
	}
	if msg != "" {
		return diagnostic(KindProcedure, t.Name, action, "Cannot generate "+name+": "+msg)
	}

	r.Name = name
	r.Table = t.Name
	return Statement{
		Kind:   KindProcedure,
		Table:  t.Name,
		Action: action,
		SQL:    b.Dialect().RoutineWrapper(r),
	}
}

const msgNoPrimaryKey = "Table has no Primary Key"

func params(d dialect.Dialect, cols []model.Column) []dialect.Param {
	out := make([]dialect.Param, len(cols))
	for i, c := range cols {
		out[i] = dialect.Param{Column: c.Name, Type: d.MapType(c.SQLType)}
	}
	return out
}

func names(cols []model.Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Name
	}
	return out
}

// insertRoutine takes every column except an auto-increment primary key.
func insertRoutine(b *Builder, t *model.Table) dialect.Routine {
	skipKey := t.HasAutoIncrementKey()
	var cols []model.Column
	for _, c := range t.Columns {
		if c.IsPrimaryKey && skipKey {
			continue
		}
		cols = append(cols, c)
	}

	qt := b.Dialect().QuoteIdent(t.Name)
	if len(cols) == 0 {
		return dialect.Routine{Kind: dialect.Command, Body: []string{b.Dialect().InsertDefaultValues(qt)}}
	}

	first := b.Raw("INSERT INTO ").Raw(qt).Raw(" (").Idents(names(cols)...).Raw(")").Take()
	second := b.Raw("VALUES (").Params(names(cols)...).Raw(");").Take()
	return dialect.Routine{
		Kind:   dialect.Command,
		Params: params(b.Dialect(), cols),
		Body:   []string{first, second},
	}
}

func getByIDRoutine(b *Builder, t *model.Table) (dialect.Routine, string) {
	pk, ok := t.PrimaryKey()
	if !ok {
		return dialect.Routine{}, msgNoPrimaryKey
	}
	stmt := b.Raw("SELECT * FROM ").Ident(t.Name).Raw(" WHERE ").Ident(pk.Name).Raw(" = ").Param(pk.Name).Raw(";").Take()
	return dialect.Routine{
		Kind:   dialect.Query,
		Params: params(b.Dialect(), []model.Column{pk}),
		Body:   []string{stmt},
	}, ""
}

func selectAllRoutine(b *Builder, t *model.Table) dialect.Routine {
	stmt := b.Raw("SELECT * FROM ").Ident(t.Name).Raw(";").Take()
	return dialect.Routine{Kind: dialect.Query, Body: []string{stmt}}
}

// updateRoutine takes every column as a parameter; the key feeds the WHERE
// clause and the rest the SET clause.
func updateRoutine(b *Builder, t *model.Table) (dialect.Routine, string) {
	pk, ok := t.PrimaryKey()
	if !ok {
		return dialect.Routine{}, msgNoPrimaryKey
	}

	var sets []string
	for _, c := range t.Columns {
		if c.IsPrimaryKey {
			continue
		}
		sets = append(sets, b.Ident(c.Name).Raw(" = ").Param(c.Name).Take())
	}
	if len(sets) == 0 {
		return dialect.Routine{}, fmt.Sprintf("Table '%s' has no non-PK columns to update", t.Name)
	}

	stmt := b.Raw("UPDATE ").Ident(t.Name).
		Raw(" SET ").Raw(strings.Join(sets, ", ")).
		Raw(" WHERE ").Ident(pk.Name).Raw(" = ").Param(pk.Name).Raw(";").Take()
	return dialect.Routine{
		Kind:   dialect.Command,
		Params: params(b.Dialect(), t.Columns),
		Body:   []string{stmt},
	}, ""
}

func deleteRoutine(b *Builder, t *model.Table) (dialect.Routine, string) {
	pk, ok := t.PrimaryKey()
	if !ok {
		return dialect.Routine{}, msgNoPrimaryKey
	}
	stmt := b.Raw("DELETE FROM ").Ident(t.Name).Raw(" WHERE ").Ident(pk.Name).Raw(" = ").Param(pk.Name).Raw(";").Take()
	return dialect.Routine{
		Kind:   dialect.Command,
		Params: params(b.Dialect(), []model.Column{pk}),
		Body:   []string{stmt},
	}, ""
}

// ----------------------------------------------------------------------------
// Bulk INSERT
// ----------------------------------------------------------------------------

// BulkInsert renders the table's entered rows as one multi-row INSERT.
// Auto-increment columns are left out; missing cells become NULL. The
// statement is empty when there are no rows or no insertable columns.
func BulkInsert(t *model.Table, d dialect.Dialect) Statement {
	if t == nil {
		t = &model.Table{}
	}
	empty := Statement{Kind: KindInsert, Table: t.Name, Action: rules.Data}

	var cols []model.Column
	for _, c := range t.Columns {
		if !c.IsAutoIncrement {
			cols = append(cols, c)
		}
	}
	if len(t.Rows) == 0 || len(cols) == 0 {
		return empty
	}

	b := New(d)
	tuples := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		vals := make([]string, len(cols))
		for j, c := range cols {
			vals[j] = b.Dialect().FormatValue(row[c.Name], c.SQLType)
		}
		tuples[i] = "(" + strings.Join(vals, ", ") + ")"
	}

	b.Raw("INSERT INTO ").Ident(t.Name).Raw(" (").Idents(names(cols)...).Raw(") VALUES").Newline().
		Raw(strings.Join(tuples, ",\n")).Raw(";")
	if term := b.Dialect().BatchTerminator(); term != "" {
		b.Newline().Raw(term)
	}

	empty.SQL = b.String()
	return empty
}
