package validate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hlop3z/sqlforge/internal/alerr"
)

// Keyword groups. A name in any group is rejected regardless of the target
// dialect, so a project can be regenerated for another DBMS unchanged.
const (
	standardWords = `add all alter and any as asc between by case check column
		constraint create cross current database default delete desc distinct drop
		else end exists false fetch for foreign from full grant group having if in
		index inner insert into is join key left like limit not null offset on or
		order outer primary references revoke right select set table then to true
		union unique update using values view when where with`

	postgresWords = `abort analyze array begin cast commit copy do except explain
		freeze ilike intersect isnull lateral leading localtime lock natural notnull
		only placing returning rollback row savepoint similar some symmetric
		trailing truncate user vacuum variadic verbose window`

	sqlServerWords = `backup browse clustered exec execute go identity merge
		nonclustered proc procedure top tran transaction trigger`

	mySQLWords = `auto_increment delimiter div ignore interval mod regexp replace
		rlike show sql unsigned xor`

	// Type names, easily mistaken for columns.
	typeWords = `bool boolean date enum json jsonb uuid serial bigserial`
)

// reservedBy maps a lower-case word to the groups that reserve it.
var reservedBy = func() map[string][]string {
	m := make(map[string][]string)
	for _, g := range []struct{ name, words string }{
		{"SQL", standardWords},
		{"PostgreSQL", postgresWords},
		{"SQL Server", sqlServerWords},
		{"MySQL", mySQLWords},
		{"type names", typeWords},
	} {
		for _, w := range strings.Fields(g.words) {
			m[w] = append(m[w], g.name)
		}
	}
	return m
}()

// IsReservedWord reports whether s, in any case, is a reserved word.
func IsReservedWord(s string) bool {
	_, ok := reservedBy[strings.ToLower(s)]
	return ok
}

// ReservedIn lists the keyword groups that reserve s, or nil.
func ReservedIn(s string) []string {
	return slices.Clone(reservedBy[strings.ToLower(s)])
}

// ReservedWordError returns an ErrReservedWord error for a reserved s and
// nil otherwise.
func ReservedWordError(s string) error {
	groups := ReservedIn(s)
	if groups == nil {
		return nil
	}
	return alerr.New(alerr.ErrReservedWord, fmt.Sprintf("'%s' is a reserved word (%s)", s, strings.Join(groups, ", "))).
		With("identifier", s).
		With("suggestion", s+"_col or "+s+"_table")
}
