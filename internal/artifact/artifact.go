// Package artifact assembles a complete SQL script for a project: it validates
// every table, runs the statement builders selected by the caller and joins
// the results in a fixed order.
package artifact

import (
	"io"
	"log/slog"
	"strings"

	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/model"
	"github.com/hlop3z/sqlforge/internal/rules"
	"github.com/hlop3z/sqlforge/internal/sqlgen"
	"github.com/hlop3z/sqlforge/internal/strutil"
	"github.com/hlop3z/sqlforge/internal/validate"
)

// BlockSeparator separates blocks in the rendered script.
const BlockSeparator = "\n\n"

// BlockKind classifies a script block.
type BlockKind int

const (
	BlockHeader    BlockKind = iota // database header
	BlockErrors                     // validation errors for a skipped table
	BlockTable                      // CREATE TABLE
	BlockProcedure                  // CRUD routine
	BlockData                       // bulk INSERT of entered rows
)

func (k BlockKind) String() string {
	switch k {
	case BlockHeader:
		return "header"
	case BlockErrors:
		return "errors"
	case BlockTable:
		return "table"
	case BlockProcedure:
		return "procedure"
	case BlockData:
		return "data"
	default:
		return "unknown"
	}
}

// Block is one entry of the script.
type Block struct {
	Kind   BlockKind
	Table  string
	Action rules.Action

	// Text is the rendered SQL or comment block.
	Text string

	// Diagnostic is true when Text is a comment standing in for SQL that
	// could not be generated.
	Diagnostic bool
}

// Script is the assembled output for one project.
type Script struct {
	Dialect dialect.Name
	Blocks  []Block
}

// String joins all blocks with a blank line.
func (s *Script) String() string {
	if s == nil {
		return ""
	}
	parts := make([]string, len(s.Blocks))
	for i, b := range s.Blocks {
		parts[i] = b.Text
	}
	return strings.Join(parts, BlockSeparator)
}

// IsEmpty reports whether the script has no blocks.
func (s *Script) IsEmpty() bool {
	return s == nil || len(s.Blocks) == 0
}

// Diagnostics returns the blocks that stand in for SQL that was not generated.
func (s *Script) Diagnostics() []Block {
	if s == nil {
		return nil
	}
	var out []Block
	for _, b := range s.Blocks {
		if b.Diagnostic {
			out = append(out, b)
		}
	}
	return out
}

// HasDiagnostics reports whether any block is a diagnostic.
func (s *Script) HasDiagnostics() bool {
	return len(s.Diagnostics()) > 0
}

// Options tune the assembler.
type Options struct {
	// Logger receives debug and warning records. Nil discards them.
	Logger *slog.Logger

	// StrictData replaces the INSERT block of a table whose entered rows
	// fail value validation with a diagnostic listing the bad cells.
	StrictData bool
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Build assembles the script for p. The project's dialect is normalized
// first. Tables failing structural validation contribute a single error
// block and are otherwise skipped. A project without tables yields an empty
// script.
func Build(p *model.Project, actions rules.ActionSet, opts Options) *Script {
	log := opts.logger()
	if p == nil || len(p.Tables) == 0 {
		return &Script{Dialect: dialect.Normalize("")}
	}

	d := dialect.Get(p.DBMS)
	script := &Script{Dialect: d.Name()}
	log.Debug("assembling script",
		"database", p.DatabaseName,
		"dialect", d.Name(),
		"tables", len(p.Tables),
		"actions", actions.String(),
	)

	if actions.Has(rules.Database) {
		if s := sqlgen.DatabaseHeader(p.DatabaseName, d); !s.IsEmpty() {
			script.add(BlockHeader, s)
		}
	}

	for i := range p.Tables {
		t := &p.Tables[i]
		log.Debug("building table", "table", t.Name)

		res := validate.Table(t)
		if !res.Valid {
			log.Warn("skipping invalid table", "table", t.Name, "errors", len(res.Errors))
			script.Blocks = append(script.Blocks, errorBlock(t.Name, res.Errors))
			continue
		}
		for _, w := range res.Warnings {
			log.Debug("table warning", "table", t.Name, "warning", w)
		}

		if actions.Has(rules.Table) {
			script.add(BlockTable, sqlgen.CreateTable(t, d))
		}
		for _, s := range sqlgen.CRUDProcedures(t, d, actions) {
			script.add(BlockProcedure, s)
		}
		if actions.Has(rules.Data) && len(t.Rows) > 0 {
			script.addData(t, d, opts, log)
		}
	}
	return script
}

func (s *Script) add(kind BlockKind, st sqlgen.Statement) {
	s.Blocks = append(s.Blocks, Block{
		Kind:       kind,
		Table:      st.Table,
		Action:     st.Action,
		Text:       st.Text(),
		Diagnostic: st.IsDiagnostic(),
	})
}

func (s *Script) addData(t *model.Table, d dialect.Dialect, opts Options, log *slog.Logger) {
	if opts.StrictData {
		if bad := validate.Rows(t); len(bad) > 0 {
			log.Warn("rejecting entered rows", "table", t.Name, "cells", len(bad))
			msgs := make([]string, len(bad))
			for i, e := range bad {
				msgs[i] = e.String()
			}
			s.Blocks = append(s.Blocks, Block{
				Kind:       BlockData,
				Table:      t.Name,
				Action:     rules.Data,
				Text:       strutil.CommentLines("Invalid data for " + t.Name + "\n" + strings.Join(msgs, "\n")),
				Diagnostic: true,
			})
			return
		}
	}

	st := sqlgen.BulkInsert(t, d)
	if st.IsEmpty() {
		return
	}
	s.Blocks = append(s.Blocks, Block{
		Kind:   BlockData,
		Table:  t.Name,
		Action: rules.Data,
		Text:   DataCaption(t.Name) + "\n" + st.SQL,
	})
}

// DataCaption is the comment line placed above a table's entered rows.
func DataCaption(table string) string {
	return "-- Data entered for " + table
}

// ErrorsHeader is the first line of a skipped table's error block.
func ErrorsHeader(table string) string {
	return "-- ERRORS for " + table + " --"
}

func errorBlock(table string, errs []string) Block {
	return Block{
		Kind:       BlockErrors,
		Table:      table,
		Text:       ErrorsHeader(table) + "\n" + strutil.CommentLines(strings.Join(errs, "\n")),
		Diagnostic: true,
	}
}
