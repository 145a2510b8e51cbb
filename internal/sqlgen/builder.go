// Package sqlgen builds SQL text from the schema model. The builders are
// dialect-agnostic: everything that differs between engines is delegated to a
// dialect.Dialect.
package sqlgen

import (
	"strings"

	"github.com/hlop3z/sqlforge/internal/dialect"
)

// Builder accumulates one SQL fragment at a time. Every append method
// returns the builder so calls chain; Take hands the text over and starts
// a new fragment.
type Builder struct {
	d   dialect.Dialect
	out strings.Builder
}

// New returns a Builder for d, or for the default dialect when d is nil.
func New(d dialect.Dialect) *Builder {
	if d == nil {
		d = dialect.Get("")
	}
	return &Builder{d: d}
}

func (b *Builder) Dialect() dialect.Dialect { return b.d }

func (b *Builder) write(parts ...string) *Builder {
	for _, p := range parts {
		b.out.WriteString(p)
	}
	return b
}

// ----------------------------------------------------------------------------
// Names and Parameters
// ----------------------------------------------------------------------------

// Ident writes name quoted for the dialect.
func (b *Builder) Ident(name string) *Builder {
	return b.write(b.d.QuoteIdent(name))
}

// Idents writes names quoted and comma separated.
func (b *Builder) Idents(names ...string) *Builder {
	dialect.WriteList(&b.out, names, b.d.QuoteIdent)
	return b
}

// Param writes the routine parameter bound to column: @email or p_email.
func (b *Builder) Param(column string) *Builder {
	return b.write(b.d.ParamRef(column))
}

// Params writes routine parameter references, comma separated.
func (b *Builder) Params(columns ...string) *Builder {
	dialect.WriteList(&b.out, columns, b.d.ParamRef)
	return b
}

// ----------------------------------------------------------------------------
// Column Definitions
// ----------------------------------------------------------------------------

func (b *Builder) PrimaryKey() *Builder { return b.write(" PRIMARY KEY") }
func (b *Builder) NotNull() *Builder    { return b.write(" NOT NULL") }

// Clause writes " clause", or nothing for an empty clause.
func (b *Builder) Clause(clause string) *Builder {
	if clause == "" {
		return b
	}
	return b.write(" ", clause)
}

// ForeignKeyTo writes a named single-column constraint:
//
//	CONSTRAINT name FOREIGN KEY (column) REFERENCES refTable (refColumn)
func (b *Builder) ForeignKeyTo(name, column, refTable, refColumn string) *Builder {
	return b.write("CONSTRAINT ").Ident(name).
		write(" FOREIGN KEY (").Ident(column).
		write(") REFERENCES ").Ident(refTable).
		write(" (").Ident(refColumn).write(")")
}

// ----------------------------------------------------------------------------
// Text
// ----------------------------------------------------------------------------

// Raw writes sql unchanged.
func (b *Builder) Raw(sql string) *Builder { return b.write(sql) }
func (b *Builder) Space() *Builder         { return b.write(" ") }
func (b *Builder) Newline() *Builder       { return b.write("\n") }

func (b *Builder) String() string { return b.out.String() }

// Take returns the fragment built so far and empties the builder.
func (b *Builder) Take() string {
	defer b.out.Reset()
	return b.out.String()
}
