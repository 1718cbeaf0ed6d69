package inspect

import (
	"errors"
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
	"golang.org/x/sync/errgroup"

	"github.com/tsprep/tsprep/internal/dataset"
	"github.com/tsprep/tsprep/internal/logger"
)

// ErrEmptyDataset is returned when Inspect receives a dataset with zero rows.
// The call fails atomically; no partial report is produced.
var ErrEmptyDataset = errors.New("dataset is empty")

// defaultIQRMultiplier is the classic Tukey fence width.
const defaultIQRMultiplier = 1.5

// Inspector computes inspection reports. It holds no per-call state, so one
// Inspector may serve concurrent callers on different datasets.
type Inspector struct {
	log           *logger.Logger
	iqrMultiplier float64
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithIQRMultiplier overrides the outlier fence width in IQR units.
func WithIQRMultiplier(k float64) Option {
	return func(ins *Inspector) {
		if k > 0 {
			ins.iqrMultiplier = k
		}
	}
}

// New creates an Inspector with the given logger. A nil logger falls back to
// a no-op logger so the core stays usable without observability wiring.
func New(log *logger.Logger, opts ...Option) *Inspector {
	if log == nil {
		log = logger.NewNop()
	}
	ins := &Inspector{
		log:           log,
		iqrMultiplier: defaultIQRMultiplier,
	}
	for _, opt := range opts {
		opt(ins)
	}
	return ins
}

// Inspect computes the full report for a loaded dataset. It never mutates
// the dataset, and repeated calls on the same dataset produce identical
// reports.
func (ins *Inspector) Inspect(ds *dataset.Dataset) (*Report, error) {
	if ds == nil {
		return nil, errors.New("dataset is nil")
	}
	if ds.Rows() == 0 {
		return nil, fmt.Errorf("%w: no rows to inspect", ErrEmptyDataset)
	}

	rep := &Report{
		Rows:    ds.Rows(),
		Columns: ds.Cols(),
	}
	ins.log.WithSection("shape").Infow("computed dataset dimensions",
		"rows", rep.Rows, "columns", rep.Columns)

	rep.DTypes = dtypeMap(ds)
	ins.log.WithSection("dtypes").Infow("collected column types", "columns", rep.DTypes.Len())

	rep.MissingCounts = missingMap(ds)
	totalMissing := 0
	for el := rep.MissingCounts.Front(); el != nil; el = el.Next() {
		totalMissing += el.Value
	}
	if totalMissing > 0 {
		ins.log.WithSection("missing").Warnw("missing values found", "cells", totalMissing)
	} else {
		ins.log.WithSection("missing").Info("no missing values detected")
	}

	rep.UniqueCounts = uniqueMap(ds)
	ins.log.WithSection("unique").Info("counted distinct values per column")

	rep.DuplicateRows = duplicateRows(ds)
	ins.log.WithSection("duplicates").Infow("counted duplicate rows", "count", rep.DuplicateRows)

	numeric := ds.NumericColumns()
	summaries, outlierCounts, err := ins.numericSections(numeric)
	if err != nil {
		return nil, err
	}

	rep.Summary = orderedmap.NewOrderedMap[string, ColumnSummary]()
	rep.Outliers = orderedmap.NewOrderedMap[string, int]()
	for i, c := range numeric {
		rep.Summary.Set(c.Name, summaries[i])
		rep.Outliers.Set(c.Name, outlierCounts[i])
	}
	ins.log.WithSection("summary").Infow("computed summary statistics", "numeric_columns", len(numeric))

	rep.Correlation = correlationMatrix(numeric)
	ins.log.WithSection("correlation").Infow("computed correlation matrix", "numeric_columns", len(numeric))
	ins.log.WithSection("outliers").Info("counted outliers per numeric column")

	return rep, nil
}

// numericSections computes summary statistics and outlier counts per numeric
// column, one goroutine per column. Each goroutine reads only its column and
// writes only its own slot, so no locking is needed; the ordered maps are
// assembled afterwards in declared column order.
func (ins *Inspector) numericSections(numeric []*dataset.Column) ([]ColumnSummary, []int, error) {
	summaries := make([]ColumnSummary, len(numeric))
	outlierCounts := make([]int, len(numeric))

	var g errgroup.Group
	for i, col := range numeric {
		i, col := i, col
		g.Go(func() error {
			values := col.NonMissing()
			s, err := summarize(values)
			if err != nil {
				return fmt.Errorf("column %s: %w", col.Name, err)
			}
			summaries[i] = s
			outlierCounts[i] = CountOutliers(values, ins.iqrMultiplier)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return summaries, outlierCounts, nil
}

func dtypeMap(ds *dataset.Dataset) *orderedmap.OrderedMap[string, dataset.Type] {
	m := orderedmap.NewOrderedMap[string, dataset.Type]()
	for _, c := range ds.Columns() {
		m.Set(c.Name, c.Type)
	}
	return m
}

func missingMap(ds *dataset.Dataset) *orderedmap.OrderedMap[string, int] {
	m := orderedmap.NewOrderedMap[string, int]()
	for _, c := range ds.Columns() {
		m.Set(c.Name, c.MissingCount())
	}
	return m
}

func uniqueMap(ds *dataset.Dataset) *orderedmap.OrderedMap[string, int] {
	m := orderedmap.NewOrderedMap[string, int]()
	for _, c := range ds.Columns() {
		m.Set(c.Name, c.UniqueCount())
	}
	return m
}

// duplicateRows counts rows that exactly repeat an earlier row across all
// columns. The first occurrence is not counted, only the repeats.
func duplicateRows(ds *dataset.Dataset) int {
	seen := make(map[string]struct{}, ds.Rows())
	dups := 0
	for i := 0; i < ds.Rows(); i++ {
		key := ds.RowKey(i)
		if _, ok := seen[key]; ok {
			dups++
			continue
		}
		seen[key] = struct{}{}
	}
	return dups
}
