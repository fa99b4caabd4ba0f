// Package consoletable renders aligned text tables for the terminal.
package consoletable

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

const (
	defaultMargin      = 2
	defaultIndentation = 2
)

// Table is a text table with a title and a header row.
// Numbers are right aligned, everything else is left aligned.
type Table struct {
	// Margin between columns
	Margin int
	// Indentation of the first column
	Indentation int

	header []string
	rows   [][]any
	title  string
}

// New returns a new table with the given column headers.
func New(title string, header ...string) *Table {
	return &Table{
		Margin:      defaultMargin,
		Indentation: defaultIndentation,
		header:      header,
		title:       title,
	}
}

// AddRow adds a row to the table. Panics when the number of cells does not match the header.
func (t *Table) AddRow(cells ...any) {
	if len(cells) != len(t.header) {
		panic(fmt.Sprintf("rows need to have %d cells, got %d", len(t.header), len(cells)))
	}
	t.rows = append(t.rows, cells)
}

// Len returns the number of rows without header.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) error {
	var b strings.Builder
	if t.title != "" {
		fmt.Fprintf(&b, "%s:\n\n", t.title)
	}
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = utf8.RuneCountInString(h)
	}
	rendered := make([][]string, len(t.rows))
	for r, row := range t.rows {
		rendered[r] = make([]string, len(row))
		for i, v := range row {
			s := renderCell(v)
			rendered[r][i] = s
			widths[i] = max(widths[i], utf8.RuneCountInString(s))
		}
	}
	margin := strings.Repeat(" ", t.Margin)
	writeRow := func(cells []string, rightAlign func(i int) bool) {
		b.WriteString(strings.Repeat(" ", t.Indentation))
		for i, s := range cells {
			pad := strings.Repeat(" ", widths[i]-utf8.RuneCountInString(s))
			if rightAlign(i) {
				b.WriteString(pad + s)
			} else {
				b.WriteString(s + pad)
			}
			if i < len(cells)-1 {
				b.WriteString(margin)
			}
		}
		b.WriteString("\n")
	}
	leftOnly := func(int) bool { return false }
	writeRow(t.header, leftOnly)
	separator := make([]string, len(widths))
	for i, n := range widths {
		separator[i] = strings.Repeat("-", n)
	}
	writeRow(separator, leftOnly)
	for r, row := range t.rows {
		writeRow(rendered[r], func(i int) bool { return isNumber(row[i]) })
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int64, float64:
		return true
	}
	return false
}

func renderCell(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case string:
		if x == "" {
			return "-"
		}
		return x
	case int:
		return humanize.Comma(int64(x))
	case int64:
		return humanize.Comma(x)
	case float64:
		return humanize.FormatFloat("#,###.#", x)
	case time.Time:
		if x.IsZero() {
			return "-"
		}
		return humanize.Time(x)
	case []string:
		return strings.Join(x, ", ")
	case bool:
		if x {
			return "yes"
		}
		return "no"
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}
