package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrSourceNotFound is returned when the source file is missing or unreadable.
// No partial dataset is ever produced alongside it.
var ErrSourceNotFound = errors.New("source not found")

// Options controls how a tabular source is parsed and typed.
type Options struct {
	DateColumn    string   // designated date column; coerced to TypeDate when present
	DateFormats   []string // Go reference layouts, tried in order
	MissingValues []string // cell tokens treated as missing (compared after trimming)
}

// DefaultOptions returns the parsing defaults: a "Date" column with a
// best-effort format list and the usual missing-value tokens.
func DefaultOptions() Options {
	return Options{
		DateColumn: "Date",
		DateFormats: []string{
			"2006-01-02",
			"2006-01-02 15:04:05",
			"2006-01-02T15:04:05",
			"2006/01/02",
			"01/02/2006",
			"02-Jan-2006",
		},
		MissingValues: []string{"", "NA", "N/A", "NaN", "nan", "null"},
	}
}

// Load reads the full tabular content of a CSV or XLSX file into a Dataset.
// A missing or unreadable file yields an error wrapping ErrSourceNotFound.
func Load(path string, opts Options) (*Dataset, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return loadExcel(path, opts)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	defer f.Close()

	ds, err := LoadFromReader(f, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ds, nil
}

// LoadFromReader reads CSV content from r. Exposed so tests and callers with
// in-memory sources can skip the filesystem.
func LoadFromReader(r io.Reader, opts Options) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("missing header row")
	}

	return build(records[0], records[1:], opts)
}

// loadExcel reads the first sheet of an XLSX workbook through excelize.
func loadExcel(path string, opts Options) (*Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("missing header row")
	}

	return build(rows[0], rows[1:], opts)
}

// build assembles a typed Dataset from a header and raw string rows.
// Rows shorter than the header are padded with missing cells; extra cells
// beyond the header are dropped.
func build(header []string, rows [][]string, opts Options) (*Dataset, error) {
	ncol := len(header)
	if ncol == 0 {
		return nil, errors.New("header row has no columns")
	}

	names := make([]string, ncol)
	for j, h := range header {
		names[j] = strings.TrimSpace(h)
	}

	// Column-major raw cells, trimmed.
	raw := make([][]string, ncol)
	for j := range raw {
		raw[j] = make([]string, len(rows))
	}
	for i, rec := range rows {
		for j := 0; j < ncol; j++ {
			if j < len(rec) {
				raw[j][i] = strings.TrimSpace(rec[j])
			}
		}
	}

	missing := missingSet(opts.MissingValues)

	columns := make([]*Column, ncol)
	for j, name := range names {
		if name == opts.DateColumn {
			columns[j] = buildDateColumn(name, raw[j], missing, opts.DateFormats)
			continue
		}
		columns[j] = buildValueColumn(name, raw[j], missing)
	}

	return &Dataset{columns: columns, rows: len(rows)}, nil
}

func missingSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens)+1)
	set[""] = struct{}{}
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// buildDateColumn coerces cells with the configured layouts. Cells that fail
// every layout become missing rather than failing the load.
func buildDateColumn(name string, cells []string, missing map[string]struct{}, layouts []string) *Column {
	col := &Column{
		Name:    name,
		Type:    TypeDate,
		Times:   make([]time.Time, len(cells)),
		Missing: make([]bool, len(cells)),
	}
	for i, cell := range cells {
		if _, ok := missing[cell]; ok {
			col.Missing[i] = true
			continue
		}
		t, ok := parseDate(cell, layouts)
		if !ok {
			col.Missing[i] = true
			continue
		}
		col.Times[i] = t
	}
	return col
}

// buildValueColumn types a non-date column: numeric if every non-missing cell
// parses as a float, text otherwise.
func buildValueColumn(name string, cells []string, missing map[string]struct{}) *Column {
	miss := make([]bool, len(cells))
	floats := make([]float64, len(cells))
	numeric := true
	for i, cell := range cells {
		if _, ok := missing[cell]; ok {
			miss[i] = true
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			numeric = false
			break
		}
		floats[i] = v
	}

	if numeric {
		return &Column{Name: name, Type: TypeNumeric, Floats: floats, Missing: miss}
	}

	// Text column: only the missing tokens count as missing.
	col := &Column{
		Name:    name,
		Type:    TypeText,
		Strings: make([]string, len(cells)),
		Missing: make([]bool, len(cells)),
	}
	for i, cell := range cells {
		if _, ok := missing[cell]; ok {
			col.Missing[i] = true
			continue
		}
		col.Strings[i] = cell
	}
	return col
}

func parseDate(s string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
