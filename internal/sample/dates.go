package sample

import (
	"time"

	"github.com/hlop3z/sqlforge/internal/strutil"
)

// anchor is the reference point for generated dates.
var anchor = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// date returns a birth date for birth-like names, otherwise a moment within
// the decade before anchor.
func (g *Generator) date(name string) time.Time {
	if strutil.ContainsAnyFold(name, "birth", "naissance", "dob") {
		age := 18 + g.rng.IntN(72)
		return anchor.AddDate(-age, 0, -g.rng.IntN(365))
	}
	secs := g.rng.Int64N(int64(10 * 365 * 24 * time.Hour / time.Second))
	return anchor.Add(-time.Duration(secs) * time.Second).Truncate(time.Second)
}
