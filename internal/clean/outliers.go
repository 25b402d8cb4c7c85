package clean

import (
	"log"

	"github.com/montanaflynn/stats"

	"goeda/domain/core"
	"goeda/domain/table"
	"goeda/internal/audit"
)

// ReplaceOutliersMedian replaces every value of a numeric column strictly
// outside its IQR bounds with the column median and returns the median used.
// The bounds follow the same policy as the auditor, and the median is
// computed before any replacement, over all non-null values including the
// ones about to be replaced. Re-running against the same options is a no-op:
// the median lies inside the original bounds, so no remaining value is
// outside them.
func ReplaceOutliersMedian(tbl *table.Table, column string, opts audit.BoundsOptions) (float64, error) {
	col, err := tbl.NumericColumn(column)
	if err != nil {
		return 0, err
	}

	values := col.NonNull()
	if len(values) == 0 {
		return 0, core.NewInsufficientDataError(column, "no non-null values to compute bounds from")
	}

	bounds, err := audit.ComputeBounds(values, opts)
	if err != nil {
		return 0, err
	}

	median, err := stats.Median(values)
	if err != nil {
		return 0, err
	}

	replaced := 0
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			continue
		}
		if v := col.Float(i); !bounds.Contains(v) {
			col.SetFloat(i, median)
			replaced++
		}
	}

	log.Printf("[Clean] replaced %d outliers in column %q with median %v (bounds [%v, %v])",
		replaced, column, median, bounds.Lower, bounds.Upper)
	return median, nil
}
