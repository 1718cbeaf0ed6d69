// Package render formats an inspection report as human-readable text.
// Rendering is purely a presentation layer: the same report always renders
// to identical bytes.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/tsprep/tsprep/internal/inspect"
)

// Config controls report rendering.
type Config struct {
	Color          bool // colorize section headers
	Correlation    bool // include the correlation matrix section
	FloatPrecision int  // significant digits for floats
}

// DefaultConfig returns plain (uncolored) rendering with the correlation
// section included and 6 significant digits.
func DefaultConfig() *Config {
	return &Config{
		Color:          false,
		Correlation:    true,
		FloatPrecision: 6,
	}
}

// Report renders the full multi-section report. If config is nil, default
// configuration is used.
func Report(rep *inspect.Report, cfg *Config) string {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	var b strings.Builder

	b.WriteString(cfg.header("Dimensions"))
	fmt.Fprintf(&b, "Rows: %d\nColumns: %d\n", rep.Rows, rep.Columns)

	b.WriteString(cfg.header("Data Types"))
	dtypes := newTable("Column", "Type")
	for el := rep.DTypes.Front(); el != nil; el = el.Next() {
		dtypes.addRow(el.Key, string(el.Value))
	}
	b.WriteString(dtypes.String())

	b.WriteString(cfg.header("Missing Values"))
	missing := newTable("Column", "Missing")
	for el := rep.MissingCounts.Front(); el != nil; el = el.Next() {
		missing.addRow(el.Key, strconv.Itoa(el.Value))
	}
	b.WriteString(missing.String())

	b.WriteString(cfg.header("Unique Values"))
	unique := newTable("Column", "Unique")
	for el := rep.UniqueCounts.Front(); el != nil; el = el.Next() {
		unique.addRow(el.Key, strconv.Itoa(el.Value))
	}
	b.WriteString(unique.String())

	b.WriteString(cfg.header("Duplicate Rows"))
	fmt.Fprintf(&b, "Count: %d\n", rep.DuplicateRows)

	b.WriteString(cfg.header("Summary Statistics"))
	if rep.Summary.Len() == 0 {
		b.WriteString("(no numeric columns)\n")
	} else {
		summary := newTable("Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max")
		for el := rep.Summary.Front(); el != nil; el = el.Next() {
			s := el.Value
			summary.addRow(el.Key,
				strconv.Itoa(s.Count),
				cfg.float(s.Mean), cfg.float(s.Std),
				cfg.float(s.Min), cfg.float(s.Q25), cfg.float(s.Median),
				cfg.float(s.Q75), cfg.float(s.Max))
		}
		b.WriteString(summary.String())
	}

	// The report always carries the correlation matrix; the config only
	// decides whether to show it.
	if cfg.Correlation {
		b.WriteString(cfg.header("Correlation Matrix"))
		if rep.Correlation == nil || len(rep.Correlation.Columns) == 0 {
			b.WriteString("(no numeric columns)\n")
		} else {
			corr := newTable(append([]string{""}, rep.Correlation.Columns...)...)
			for i, name := range rep.Correlation.Columns {
				row := make([]string, 0, len(rep.Correlation.Columns)+1)
				row = append(row, name)
				for _, v := range rep.Correlation.Values[i] {
					row = append(row, cfg.float(v))
				}
				corr.addRow(row...)
			}
			b.WriteString(corr.String())
		}
	}

	b.WriteString(cfg.header("Outlier Counts"))
	if rep.Outliers.Len() == 0 {
		b.WriteString("(no numeric columns)\n")
	} else {
		outliers := newTable("Column", "Outliers")
		for el := rep.Outliers.Front(); el != nil; el = el.Next() {
			outliers.addRow(el.Key, strconv.Itoa(el.Value))
		}
		b.WriteString(outliers.String())
	}

	return b.String()
}

func (c *Config) header(title string) string {
	line := fmt.Sprintf("=== %s ===", title)
	if c.Color {
		line = color.Cyan.Render(line)
	}
	return "\n" + line + "\n"
}

func (c *Config) float(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', c.FloatPrecision, 64)
}

// table builds a left-aligned text table with runewidth-aware padding so
// multi-byte column names line up.
type table struct {
	headers []string
	rows    [][]string
}

func newTable(headers ...string) *table {
	return &table{headers: headers}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) String() string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && runewidth.StringWidth(cell) > widths[i] {
				widths[i] = runewidth.StringWidth(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
		}
		b.WriteString("\n")
	}

	writeRow(t.headers)
	sep := make([]string, len(t.headers))
	for i := range sep {
		sep[i] = strings.Repeat("-", widths[i])
	}
	writeRow(sep)
	for _, row := range t.rows {
		writeRow(row)
	}
	return b.String()
}
