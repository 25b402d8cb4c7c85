package audit

import (
	"goeda/domain/core"
	"goeda/domain/report"
	"goeda/domain/table"
)

// SampleLimit caps the number of outlier values carried in a report
const SampleLimit = 10

// AuditOutliers computes IQR bounds for one numeric column and reports the
// values strictly outside them, with descriptive statistics of the outlier
// subset and up to SampleLimit sample values in original row order. A report
// is always returned on success; no outliers is a valid result.
func AuditOutliers(tbl *table.Table, column string, opts BoundsOptions) (*report.OutlierReport, error) {
	col, err := tbl.NumericColumn(column)
	if err != nil {
		return nil, err
	}

	totalRows := tbl.NumRows()
	if totalRows == 0 {
		return nil, core.NewInvalidInputError("table has no rows")
	}

	values := col.NonNull()
	if len(values) == 0 {
		return nil, core.NewInsufficientDataError(column, "all values are null")
	}

	bounds, err := ComputeBounds(values, opts)
	if err != nil {
		return nil, err
	}

	var outliers []float64
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			continue
		}
		if v := col.Float(i); !bounds.Contains(v) {
			outliers = append(outliers, v)
		}
	}

	rep := &report.OutlierReport{
		ID:           core.ReportID(core.NewID()),
		Column:       column,
		TotalRows:    totalRows,
		Bounds:       bounds,
		OutlierCount: len(outliers),
		Percentage:   report.Round2(float64(len(outliers)) / float64(totalRows) * 100),
		ComputedAt:   core.Now(),
	}

	if len(outliers) > 0 {
		describe, err := DescribeValues(outliers)
		if err != nil {
			return nil, err
		}
		rep.Stats = &describe

		sample := outliers
		if len(sample) > SampleLimit {
			sample = sample[:SampleLimit]
		}
		rep.Sample = append([]float64(nil), sample...)
	}

	return rep, nil
}
