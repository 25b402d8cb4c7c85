// Package clean holds the remediation half of the toolkit: operations that
// mutate one column of a table in place and return the replacement value
// used. Callers that need a non-destructive run clone the table first.
package clean

import (
	"log"

	"github.com/montanaflynn/stats"

	"goeda/domain/core"
	"goeda/domain/table"
)

// ImputeMissingMedian replaces every null cell of a numeric column with the
// median of its non-null values and returns the median used. Applying it a
// second time is a no-op since no nulls remain.
func ImputeMissingMedian(tbl *table.Table, column string) (float64, error) {
	col, err := tbl.NumericColumn(column)
	if err != nil {
		return 0, err
	}

	values := col.NonNull()
	if len(values) == 0 {
		return 0, core.NewInsufficientDataError(column, "no non-null values to compute a median from")
	}

	median, err := stats.Median(values)
	if err != nil {
		return 0, err
	}

	filled := 0
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			col.SetFloat(i, median)
			filled++
		}
	}

	log.Printf("[Clean] imputed %d missing cells in column %q with median %v", filled, column, median)
	return median, nil
}
