// Package sparktable is the consumer side of the sparkline cell values: a
// table whose rows are sorted, searched and exported by the values' ordering
// and canonical text.
package sparktable

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/carbocation/sparkline"
	"golang.org/x/exp/slices"
)

type Row []sparkline.Comparable

type Table struct {
	Columns []string
	Rows    []Row

	// Verbose logs sorts and policy changes.
	Verbose bool
}

func New(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// Append adds a row. Every column needs a non-nil cell.
func (t *Table) Append(cells ...sparkline.Comparable) error {
	if len(cells) != len(t.Columns) {
		return pfx.Err(fmt.Errorf("Expected %d cells, got %d", len(t.Columns), len(cells)))
	}

	for i, cell := range cells {
		if cell == nil {
			return pfx.Err(fmt.Errorf("Cell for column %q is nil", t.Columns[i]))
		}
	}

	t.Rows = append(t.Rows, append(Row(nil), cells...))

	return nil
}

func (t *Table) column(name string) (int, error) {
	for i, v := range t.Columns {
		if v == name {
			return i, nil
		}
	}

	return -1, fmt.Errorf("Column %q is not found. Valid columns include: %s", name, strings.Join(t.Columns, ", "))
}

// SortBy stably sorts the rows by the named column. If any pair of cells
// cannot be compared, the sort is abandoned and the rows keep their previous
// order.
func (t *Table) SortBy(name string, descending bool) error {
	col, err := t.column(name)
	if err != nil {
		return pfx.Err(err)
	}

	if t.Verbose {
		log.Printf("Sorting %d rows by %s (descending: %v)\n", len(t.Rows), name, descending)
	}

	var sortErr error
	sorted := slices.Clone(t.Rows)
	slices.SortStableFunc(sorted, func(a, b Row) int {
		if sortErr != nil {
			return 0
		}

		c, err := compareCells(a[col], b[col])
		if err != nil {
			sortErr = err
			return 0
		}

		if descending {
			return -c
		}
		return c
	})

	if sortErr != nil {
		return pfx.Err(fmt.Errorf("Column %s: %w", name, sortErr))
	}

	t.Rows = sorted

	return nil
}

func compareCells(a, b sparkline.Comparable) (int, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("%w: nil cell", sparkline.ErrInvalidState)
	}

	return a.CompareTo(b)
}

// SetColumnPolicy switches every numeric series in the named column to
// policy, so that the next SortBy uses the new aggregation.
func (t *Table) SetColumnPolicy(name string, policy sparkline.SortPolicy) error {
	col, err := t.column(name)
	if err != nil {
		return pfx.Err(err)
	}

	series := make([]*sparkline.NumericSeries, 0, len(t.Rows))
	for i, row := range t.Rows {
		s, ok := row[col].(*sparkline.NumericSeries)
		if !ok {
			return pfx.Err(fmt.Errorf("Row %d of column %s holds %T, not a numeric series", i, name, row[col]))
		}
		series = append(series, s)
	}

	for _, s := range series {
		s.SetPolicy(policy)
	}

	if t.Verbose {
		log.Printf("Column %s now sorts by %s\n", name, policy)
	}

	return nil
}

// WriteTSV writes a header line followed by the canonical text of every cell.
func (t *Table) WriteTSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(t.Columns); err != nil {
		return pfx.Err(err)
	}

	for _, row := range t.Rows {
		if err := cw.Write(row.Strings()); err != nil {
			return pfx.Err(err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// Search returns the indices of rows where any cell's canonical text contains
// query.
func (t *Table) Search(query string) []int {
	out := make([]int, 0)
	for i, row := range t.Rows {
		for _, cell := range row.Strings() {
			if strings.Contains(cell, query) {
				out = append(out, i)
				break
			}
		}
	}

	return out
}

// Strings returns the canonical text of each cell. Nil cells are empty.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, cell := range r {
		if cell != nil {
			out[i] = cell.String()
		}
	}

	return out
}
