// Package dataset contains the in-memory tabular model shared by the loader,
// the inspector, and the prepare command.
package dataset

import (
	"strconv"
	"strings"
	"time"
)

// Type is the semantic type assigned to a column at load time.
// It is decided once by the loader and never re-inferred.
type Type string

const (
	TypeDate    Type = "date"
	TypeNumeric Type = "numeric"
	TypeText    Type = "text"
)

// missingToken is the canonical fingerprint of a missing cell. It cannot
// collide with any parsed value because real cells never render to it.
const missingToken = "\x00"

// Column holds one typed column of values. Exactly one of the value slices is
// populated, matching Type; Missing marks cells that were absent or failed
// coercion. All slices have the dataset's row count.
type Column struct {
	Name    string
	Type    Type
	Floats  []float64
	Times   []time.Time
	Strings []string
	Missing []bool
}

// MissingCount returns the number of missing cells in the column.
func (c *Column) MissingCount() int {
	n := 0
	for _, m := range c.Missing {
		if m {
			n++
		}
	}
	return n
}

// UniqueCount returns the number of distinct non-missing values.
// An entirely missing column reports zero, not one.
func (c *Column) UniqueCount() int {
	seen := make(map[string]struct{})
	for i := range c.Missing {
		if c.Missing[i] {
			continue
		}
		seen[c.cellToken(i)] = struct{}{}
	}
	return len(seen)
}

// NonMissing returns the column's non-missing numeric values in row order.
// It returns nil for non-numeric columns.
func (c *Column) NonMissing() []float64 {
	if c.Type != TypeNumeric {
		return nil
	}
	vals := make([]float64, 0, len(c.Floats))
	for i, v := range c.Floats {
		if !c.Missing[i] {
			vals = append(vals, v)
		}
	}
	return vals
}

// cellToken returns a canonical string form of the cell at row i, used for
// uniqueness and duplicate-row fingerprints. Text values are quoted so a cell
// that literally contains the missing token or the row-key separator cannot
// collide with either.
func (c *Column) cellToken(i int) string {
	if c.Missing[i] {
		return missingToken
	}
	switch c.Type {
	case TypeNumeric:
		return strconv.FormatFloat(c.Floats[i], 'g', -1, 64)
	case TypeDate:
		return c.Times[i].Format(time.RFC3339Nano)
	default:
		return strconv.Quote(c.Strings[i])
	}
}

// Dataset is an immutable, column-oriented tabular structure. It is created
// once by Load and treated as read-only afterwards, so it is safe to share
// across goroutines.
type Dataset struct {
	columns []*Column
	rows    int
}

// Rows returns the number of data rows.
func (d *Dataset) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dataset) Cols() int { return len(d.columns) }

// Columns returns the columns in declared (header) order.
func (d *Dataset) Columns() []*Column { return d.columns }

// Column returns the named column, or false if not present.
func (d *Dataset) Column(name string) (*Column, bool) {
	for _, c := range d.columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// NumericColumns returns the numeric columns in declared order.
func (d *Dataset) NumericColumns() []*Column {
	var out []*Column
	for _, c := range d.columns {
		if c.Type == TypeNumeric {
			out = append(out, c)
		}
	}
	return out
}

// RowKey returns a canonical fingerprint of row i across all columns.
// Two rows have equal keys exactly when every cell (including missing
// markers) matches, which is what duplicate detection needs.
func (d *Dataset) RowKey(i int) string {
	parts := make([]string, len(d.columns))
	for j, c := range d.columns {
		parts[j] = c.cellToken(i)
	}
	return strings.Join(parts, "\x1f")
}
