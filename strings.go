// strings deals with string representation of relations

package rel

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

// PrintTable writes the named fields of every record to standard output as
// a table, see FprintTable.  It returns r so that it can sit in the middle
// of a chain.
func (r *Relation) PrintTable(keys ...string) *Relation {
	if err := r.FprintTable(os.Stdout, keys...); err != nil && r.err == nil {
		return withErr(err)
	}
	return r
}

// FprintTable writes the named fields of every record to w as a table: a
// header of the names, a line of dashes as wide as the table, and one row
// per record.  Each key may hold several names separated by spaces.
// Columns holding only numbers are right aligned, the rest are left
// aligned.  A field that a record does not have is printed blank.
func (r *Relation) FprintTable(w io.Writer, keys ...string) error {
	if r.err != nil {
		return r.err
	}
	names := splitNames(keys)
	if len(names) == 0 {
		return errors.Wrap(ErrNoNames, "printTable")
	}
	_, err := io.WriteString(w, tabTable(r.recs, names))
	return errors.Wrap(err, "rel: printTable")
}

// String renders every field of the relation as a table, with the fields
// in sorted order.
func (r *Relation) String() string {
	if r.err != nil {
		return "Relation(error: " + r.err.Error() + ")"
	}
	seen := map[string]struct{}{}
	var names []string
	for _, rec := range r.recs {
		for k := range rec {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				names = append(names, k)
			}
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("Relation(%d records)\n", len(r.recs))
	}
	sort.Strings(names)
	return tabTable(r.recs, names)
}

// tabTable lays out the named fields of recs as aligned text.
func tabTable(recs []Record, names []string) string {
	cells := make([][]string, len(recs))
	widths := make([]int, len(names))
	numeric := make([]bool, len(names))
	for j, name := range names {
		widths[j] = runewidth.StringWidth(name)
		numeric[j] = true
	}
	for i, rec := range recs {
		cells[i] = make([]string, len(names))
		for j, name := range names {
			v, ok := rec[name]
			if !ok || v == nil {
				continue
			}
			if _, isNum := toFloat(v); !isNum {
				numeric[j] = false
			}
			cells[i][j] = formatValue(v)
			if cw := runewidth.StringWidth(cells[i][j]); cw > widths[j] {
				widths[j] = cw
			}
		}
	}

	total := len(names) - 1
	for _, cw := range widths {
		total += cw
	}

	s := new(strings.Builder)
	writeRow(s, names, widths, numeric)
	s.WriteString(strings.Repeat("-", total))
	s.WriteString("\n")
	for _, row := range cells {
		writeRow(s, row, widths, numeric)
	}
	return s.String()
}

func writeRow(s *strings.Builder, row []string, widths []int, numeric []bool) {
	line := make([]string, len(row))
	for j, cell := range row {
		if numeric[j] {
			line[j] = runewidth.FillLeft(cell, widths[j])
		} else {
			line[j] = runewidth.FillRight(cell, widths[j])
		}
	}
	s.WriteString(strings.TrimRight(strings.Join(line, " "), " "))
	s.WriteString("\n")
}

// formatValue converts a field value to its table text.
func formatValue(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case []Record:
		return fmt.Sprintf("[%d records]", len(x))
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(x)
	}
	return fmt.Sprint(v)
}
