package alerr

import (
	"strings"
)

// maxEdits bounds how far a suggestion may be from the input.
const maxEdits = 3

// editDistance is the Levenshtein distance between a and b, counted in runes.
func editDistance(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}
	for i, ra := range a {
		diag := row[0]
		row[0] = i + 1
		for j, rb := range b {
			sub := diag
			if ra != rb {
				sub++
			}
			diag = row[j+1]
			row[j+1] = min(row[j+1]+1, row[j]+1, sub)
		}
	}
	return row[len(b)]
}

// FindClosestMatch returns the option nearest to input, ignoring case, in
// its original spelling. The nearest option within maxEdits, and never
// further than the input is long, wins; ties keep the first. When nothing is
// that close, the first option starting with input (three runes or more)
// is taken instead.
func FindClosestMatch(input string, options []string) (string, bool) {
	needle := []rune(strings.ToLower(input))
	if len(needle) == 0 {
		return "", false
	}

	limit := min(maxEdits, len(needle)-1)
	best, bestDist := "", limit+1
	for _, opt := range options {
		if d := editDistance(needle, []rune(strings.ToLower(opt))); d < bestDist {
			best, bestDist = opt, d
		}
	}
	if best != "" || len(needle) < 3 {
		return best, best != ""
	}

	prefix := string(needle)
	for _, opt := range options {
		if strings.HasPrefix(strings.ToLower(opt), prefix) {
			return opt, true
		}
	}
	return "", false
}

// SuggestSimilar formats the closest option as "did you mean 'X'?", or
// returns "" when nothing is close.
func SuggestSimilar(input string, options []string) string {
	match, ok := FindClosestMatch(input, options)
	if !ok {
		return ""
	}
	return "did you mean '" + match + "'?"
}
