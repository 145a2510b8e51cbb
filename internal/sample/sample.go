// Package sample generates plausible rows for a table so that users can fill
// the bulk INSERT section without typing data by hand. Output is fully
// determined by the seed.
package sample

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/hlop3z/sqlforge/internal/model"
	"github.com/hlop3z/sqlforge/internal/strutil"
)

// FixedPassword is written to password-like columns.
const FixedPassword = "P@ssw0rd123!"

// Generator produces sample values from a seeded random source.
// A Generator is not safe for concurrent use.
type Generator struct {
	src *rand.ChaCha8
	rng *rand.Rand
}

// New returns a generator whose output depends only on seed.
func New(seed uint64) *Generator {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	src := rand.NewChaCha8(key)
	return &Generator{src: src, rng: rand.New(src)}
}

// Rows returns n rows for t. Auto-increment columns are left out so the
// database assigns them. Row indexes start at 1 and feed key and *_id columns.
func (g *Generator) Rows(t *model.Table, n int) []model.Row {
	if t == nil || n <= 0 {
		return nil
	}
	rows := make([]model.Row, 0, n)
	for i := 1; i <= n; i++ {
		row := make(model.Row, len(t.Columns))
		for _, c := range t.Columns {
			if c.IsAutoIncrement {
				continue
			}
			row[c.Name] = g.Value(c, i)
		}
		rows = append(rows, row)
	}
	return rows
}

// Fill appends n generated rows to t and returns them.
func Fill(t *model.Table, n int, seed uint64) []model.Row {
	rows := New(seed).Rows(t, n)
	if t != nil {
		t.Rows = append(t.Rows, rows...)
	}
	return rows
}

type typeClass int

const (
	classText typeClass = iota
	classInteger
	classDecimal
	classBoolean
	classDate
	classDateTime
	classUUID
)

func classify(sqlType string) typeClass {
	t := strings.ToUpper(sqlType)
	switch {
	case strings.Contains(t, "INT"):
		return classInteger
	case strutil.ContainsAnyFold(t, "DECIMAL", "NUMERIC", "FLOAT", "REAL", "DOUBLE", "MONEY"):
		return classDecimal
	case strings.Contains(t, "BOOL"), t == "BIT":
		return classBoolean
	case strings.Contains(t, "DATETIME"), strings.Contains(t, "TIMESTAMP"):
		return classDateTime
	case strings.Contains(t, "DATE"):
		return classDate
	case strings.Contains(t, "TIME"):
		return classDateTime
	case strings.Contains(t, "UUID"), strings.Contains(t, "UNIQUEIDENTIFIER"):
		return classUUID
	default:
		return classText
	}
}

// Value returns one sample value for c in row idx. Numeric, boolean and
// temporal columns always get values that pass validate.Value for their
// type; name heuristics only pick the flavor of text columns.
func (g *Generator) Value(c model.Column, idx int) string {
	name := strings.ToLower(c.Name)

	switch classify(c.SQLType) {
	case classInteger:
		return g.integer(c, name, idx)
	case classDecimal:
		if strutil.ContainsAnyFold(name, "price", "prix", "amount", "cost") {
			return g.decimal(10, 500)
		}
		return g.decimal(0, 100)
	case classBoolean:
		return strconv.Itoa(g.rng.IntN(2))
	case classDate:
		return g.date(name).Format("2006-01-02")
	case classDateTime:
		return g.date(name).Format("2006-01-02 15:04:05")
	case classUUID:
		return g.uuid()
	}

	if c.IsPrimaryKey {
		return fit(fmt.Sprintf("%s_%d", strings.ToUpper(strutil.SanitizeIdentifier(c.Name)), idx), c.SQLType)
	}
	return fit(g.text(name, idx), c.SQLType)
}

func (g *Generator) integer(c model.Column, name string, idx int) string {
	switch {
	case c.IsPrimaryKey, name == "id", strings.HasSuffix(name, "_id"), c.HasForeignKey():
		return strconv.Itoa(idx)
	case strings.Contains(name, "age"):
		return strconv.Itoa(18 + g.rng.IntN(73))
	case strutil.ContainsAnyFold(name, "year", "annee"):
		return strconv.Itoa(1990 + g.rng.IntN(36))
	default:
		return strconv.Itoa(g.rng.IntN(1001))
	}
}

func (g *Generator) decimal(lo, hi float64) string {
	v := lo + g.rng.Float64()*(hi-lo)
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func (g *Generator) uuid() string {
	id, err := uuid.NewRandomFromReader(g.src)
	if err != nil {
		return uuid.Nil.String()
	}
	return id.String()
}

// text picks a text flavor from the column name, checked in a fixed order.
func (g *Generator) text(name string, idx int) string {
	switch {
	case strutil.ContainsAnyFold(name, "mail"):
		return g.email()
	case strutil.ContainsAnyFold(name, "prenom", "firstname", "first_name"):
		return pick(g.rng, firstNames)
	case strutil.ContainsAnyFold(name, "lastname", "last_name", "surname", "nom"):
		return pick(g.rng, lastNames)
	case strutil.ContainsAnyFold(name, "phone", "tel"):
		return g.phone()
	case strutil.ContainsAnyFold(name, "address", "adresse", "street"):
		return fmt.Sprintf("%d %s", 1+g.rng.IntN(200), pick(g.rng, streets))
	case strutil.ContainsAnyFold(name, "city", "ville"):
		return pick(g.rng, cities)
	case strutil.ContainsAnyFold(name, "zip", "postal"):
		return fmt.Sprintf("%05d", 1000+g.rng.IntN(98000))
	case strutil.ContainsAnyFold(name, "country", "pays"):
		return pick(g.rng, countries)
	case strings.Contains(name, "date"):
		return g.date(name).Format("2006-01-02")
	case strutil.ContainsAnyFold(name, "description", "comment", "bio"):
		return g.sentence(10)
	case strutil.ContainsAnyFold(name, "title", "titre"):
		return strings.TrimSuffix(g.sentence(3), ".")
	case strutil.ContainsAnyFold(name, "login", "user", "pseudo"):
		return strings.ToLower(pick(g.rng, firstNames)) + strconv.Itoa(g.rng.IntN(100))
	case strutil.ContainsAnyFold(name, "pass", "pwd"):
		return FixedPassword
	case strutil.ContainsAnyFold(name, "url", "site", "link"):
		return "https://www." + pick(g.rng, domains) + "/" + pick(g.rng, words)
	case strings.Contains(name, "uuid"):
		return g.uuid()
	case strings.Contains(name, "name"):
		return fmt.Sprintf("NAME_%d", idx)
	case strutil.ContainsAnyFold(name, "number", "num"):
		return fmt.Sprintf("NUM-%03d", idx)
	default:
		return pick(g.rng, words)
	}
}

func (g *Generator) email() string {
	first := strings.ToLower(pick(g.rng, firstNames))
	last := strings.ToLower(pick(g.rng, lastNames))
	return first + "." + last + "@" + pick(g.rng, domains)
}

func (g *Generator) phone() string {
	return fmt.Sprintf("+33 %d %02d %02d %02d %02d",
		1+g.rng.IntN(9), g.rng.IntN(100), g.rng.IntN(100), g.rng.IntN(100), g.rng.IntN(100))
}

func (g *Generator) sentence(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = pick(g.rng, words)
	}
	s := strings.Join(parts, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

func pick(rng *rand.Rand, from []string) string {
	return from[rng.IntN(len(from))]
}

var lengthRe = regexp.MustCompile(`(?i)CHAR\s*\(\s*(\d+)\s*\)`)

// fit truncates v to the declared length of a CHAR/VARCHAR type.
func fit(v, sqlType string) string {
	m := lengthRe.FindStringSubmatch(sqlType)
	if m == nil {
		return v
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 || len(v) <= n {
		return v
	}
	return v[:n]
}
