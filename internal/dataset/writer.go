package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCSV writes the dataset to path with normalized cell values: dates in
// ISO form, numerics in shortest round-trip form, missing cells empty.
func WriteCSV(d *Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := make([]string, d.Cols())
	for j, c := range d.Columns() {
		header[j] = c.Name
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, d.Cols())
	for i := 0; i < d.Rows(); i++ {
		for j, c := range d.Columns() {
			record[j] = formatCell(c, i)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	w.Flush()
	return w.Error()
}

func formatCell(c *Column, i int) string {
	if c.Missing[i] {
		return ""
	}
	switch c.Type {
	case TypeDate:
		t := c.Times[i]
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format("2006-01-02 15:04:05")
	case TypeNumeric:
		return strconv.FormatFloat(c.Floats[i], 'f', -1, 64)
	default:
		return c.Strings[i]
	}
}
