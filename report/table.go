package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// table is a grid drawn with +-| borders; every row has len(header) cells.
type table struct {
	header []string
	rows   [][]string
}

func newTable(header ...string) *table {
	return &table{header: header}
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

// write renders the header and rows, padding by rune count so "π" aligns.
func (t *table) write(w io.Writer) error {
	widths := make([]int, len(t.header))
	for c, h := range t.header {
		widths[c] = utf8.RuneCountInString(h)
	}
	for _, r := range t.rows {
		for c := range r {
			if n := utf8.RuneCountInString(r[c]); n > widths[c] {
				widths[c] = n
			}
		}
	}

	var sb strings.Builder
	border := func() {
		for _, wd := range widths {
			sb.WriteByte('+')
			sb.WriteString(strings.Repeat("-", wd+2))
		}
		sb.WriteString("+\n")
	}
	line := func(r []string) {
		for c := range r {
			sb.WriteString("| ")
			sb.WriteString(r[c])
			sb.WriteString(strings.Repeat(" ", widths[c]-utf8.RuneCountInString(r[c])+1))
		}
		sb.WriteString("|\n")
	}

	border()
	line(t.header)
	border()
	for _, r := range t.rows {
		line(r)
	}
	border()

	_, err := io.WriteString(w, sb.String())
	return err
}

// printer groups integers ("10,000"); English grouping keeps output stable
// regardless of the host locale.
var printer = message.NewPrinter(language.English)

func formatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// formatFixed prints v with the given decimals, but never fewer than one so a
// whole-number estimate still reads "3.0".
func formatFixed(v float64, decimals int) string {
	if decimals < 1 {
		decimals = 1
	}
	return fmt.Sprintf("%.*f", decimals, v)
}
