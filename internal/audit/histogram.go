package audit

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"goeda/domain/core"
	"goeda/domain/report"
	"goeda/domain/table"
)

// HistogramBins buckets a numeric column into equal-width bins and returns
// the edges and counts, data for an external chart renderer.
func HistogramBins(tbl *table.Table, column string, bins int) (*report.Histogram, error) {
	if bins < 1 {
		return nil, core.NewInvalidInputError("bin count must be at least 1")
	}

	col, err := tbl.NumericColumn(column)
	if err != nil {
		return nil, err
	}

	values := col.NonNull()
	if len(values) == 0 {
		return nil, core.NewInsufficientDataError(column, "all values are null")
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	min := sorted[0]
	max := sorted[len(sorted)-1]

	// A constant column collapses to one bin holding everything.
	if min == max {
		return &report.Histogram{
			Column: column,
			Edges:  []float64{min, max},
			Counts: []int{len(sorted)},
		}, nil
	}

	dividers := make([]float64, bins+1)
	floats.Span(dividers, min, max)
	// stat.Histogram buckets into half-open intervals, so nudge the last
	// divider up to keep the maximum value inside the final bin.
	dividers[bins] = math.Nextafter(max, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)

	hist := &report.Histogram{
		Column: column,
		Edges:  dividers,
		Counts: make([]int, len(counts)),
	}
	hist.Edges[bins] = max
	for i, c := range counts {
		hist.Counts[i] = int(c)
	}

	return hist, nil
}
