package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table lays rows out in left-aligned columns under a header and a dashed
// rule. Widths are measured in terminal cells, so styled or wide text still
// lines up.
type Table struct {
	cols int
	rows [][]string // rows[0] is the header
}

func NewTable(headers ...string) *Table {
	return &Table{cols: len(headers), rows: [][]string{headers}}
}

// AddRow appends a row; missing cells are blank and extra cells dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, t.cols)
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Len counts the rows below the header.
func (t *Table) Len() int { return len(t.rows) - 1 }

func (t *Table) String() string {
	if t.cols == 0 {
		return ""
	}

	widths := make([]int, t.cols)
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	rule := make([]string, t.cols)
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}

	var b strings.Builder
	writeRow(&b, t.rows[0], widths, Header)
	writeRow(&b, rule, widths, Dim)
	for _, row := range t.rows[1:] {
		writeRow(&b, row, widths, nil)
	}
	return b.String()
}

// writeRow pads every cell but the last, so lines carry no trailing blanks.
func writeRow(b *strings.Builder, cells []string, widths []int, style func(string) string) {
	last := len(cells) - 1
	for last > 0 && cells[last] == "" {
		last--
	}
	for i := 0; i <= last; i++ {
		cell := cells[i]
		if i < last {
			cell += strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
		}
		if style != nil {
			cell = style(cell)
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(cell)
	}
	b.WriteByte('\n')
}

// FormatCount renders a count with the singular or plural noun.
func FormatCount(count int, singular, plural string) string {
	noun := plural
	if count == 1 {
		noun = singular
	}
	return fmt.Sprintf("%d %s", count, noun)
}

// FormatKeyValue renders "key: value" with a muted key.
func FormatKeyValue(key, value string) string {
	return Dim(key+":") + " " + value
}

// sqlKeywords are highlighted at the start of a script line.
var sqlKeywords = []string{
	"CREATE OR REPLACE", "CREATE", "INSERT INTO", "SELECT", "UPDATE", "DELETE FROM",
	"BEGIN", "END", "AS", "USE", "GO", "DELIMITER", "RETURNS", "LANGUAGE", "VALUES", "IF",
}

// SQL renders a script for the terminal: comment lines are muted and a
// leading keyword is highlighted. Plain mode returns the script unchanged.
func SQL(script string) string {
	if !EnableColors() {
		return script
	}
	lines := strings.Split(script, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(trimmed)]
		if strings.HasPrefix(trimmed, "--") {
			lines[i] = indent + Dim(trimmed)
			continue
		}
		for _, kw := range sqlKeywords {
			if strings.HasPrefix(trimmed, kw) && (len(trimmed) == len(kw) || !isWordByte(trimmed[len(kw)])) {
				lines[i] = indent + Keyword(kw) + trimmed[len(kw):]
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
