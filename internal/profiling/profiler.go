// Package profiling computes full statistical profiles of table columns,
// the supplemental layer around the targeted audits: describe stats, shape
// moments, a normality check, and categorical cardinality.
package profiling

import (
	"github.com/montanaflynn/stats"

	"goeda/domain/core"
	"goeda/domain/report"
	"goeda/domain/table"
	"goeda/internal/audit"
)

// Profiler produces column and table profiles
type Profiler struct {
	// TopValues caps the number of categorical top values in a profile
	TopValues int
	// Bounds is the outlier policy used for numeric outlier counts
	Bounds audit.BoundsOptions
}

// NewProfiler returns a profiler with the default outlier policy and a
// ten-value categorical cap.
func NewProfiler() *Profiler {
	return &Profiler{
		TopValues: 10,
		Bounds:    audit.DefaultBoundsOptions(),
	}
}

// ProfileTable profiles every column of a table
func (p *Profiler) ProfileTable(tbl *table.Table) (*report.TableProfile, error) {
	if tbl == nil || tbl.NumCols() == 0 {
		return nil, core.NewInvalidInputError("table has no columns")
	}

	profile := &report.TableProfile{
		ID:         core.ReportID(core.NewID()),
		Dataset:    core.DatasetID(tbl.Name()),
		TotalRows:  tbl.NumRows(),
		ComputedAt: core.Now(),
	}

	for _, col := range tbl.Columns() {
		cp, err := p.ProfileColumn(tbl, col.Name())
		if err != nil {
			return nil, err
		}
		profile.Columns = append(profile.Columns, cp)
	}

	return profile, nil
}

// ProfileColumn profiles a single column of a table
func (p *Profiler) ProfileColumn(tbl *table.Table, column string) (report.ColumnProfile, error) {
	col, err := tbl.Column(column)
	if err != nil {
		return report.ColumnProfile{}, err
	}

	nulls := col.NullCount()
	rows := col.Len()
	missingPct := 0.0
	if rows > 0 {
		missingPct = report.Round2(float64(nulls) / float64(rows) * 100)
	}

	profile := report.ColumnProfile{
		Column:     column,
		Kind:       col.Kind(),
		SampleSize: rows,
		Missing: report.MissingStats{
			NullCount:  nulls,
			Percentage: missingPct,
		},
	}

	if col.IsNumeric() {
		numeric, err := p.profileNumeric(col)
		if err != nil {
			return report.ColumnProfile{}, err
		}
		profile.Numeric = numeric
	} else {
		categorical, err := p.profileCategorical(tbl, column)
		if err != nil {
			return report.ColumnProfile{}, err
		}
		profile.Categorical = categorical
	}

	return profile, nil
}

func (p *Profiler) profileNumeric(col *table.Column) (*report.NumericProfile, error) {
	values := col.NonNull()
	if len(values) == 0 {
		return nil, core.NewInsufficientDataError(col.Name(), "all values are null")
	}

	describe, err := audit.DescribeValues(values)
	if err != nil {
		return nil, err
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return nil, err
	}
	stdDev, err := stats.StandardDeviation(values)
	if err != nil {
		return nil, err
	}

	isNormal, normalityP := testNormality(values)

	bounds, err := audit.ComputeBounds(values, p.Bounds)
	if err != nil {
		return nil, err
	}

	zeroCount := 0
	outlierCount := 0
	for _, v := range values {
		if v == 0 {
			zeroCount++
		}
		if !bounds.Contains(v) {
			outlierCount++
		}
	}

	return &report.NumericProfile{
		Describe:     describe,
		Skewness:     sampleSkewness(values, mean, stdDev),
		Kurtosis:     sampleKurtosis(values, mean, stdDev),
		IsNormal:     isNormal,
		NormalityP:   normalityP,
		ZeroCount:    zeroCount,
		OutlierCount: outlierCount,
	}, nil
}

func (p *Profiler) profileCategorical(tbl *table.Table, column string) (*report.CategoricalProfile, error) {
	freq, err := audit.Frequency(tbl, column)
	if err != nil {
		return nil, err
	}

	profile := &report.CategoricalProfile{
		UniqueCount: len(freq.Entries),
	}
	if len(freq.Entries) > 0 {
		profile.Mode = freq.Entries[0].Value
		profile.ModeFrequency = freq.Entries[0].Count
	}

	top := freq.Entries
	if len(top) > p.TopValues {
		top = top[:p.TopValues]
	}
	profile.TopValues = append([]report.FrequencyEntry(nil), top...)

	return profile, nil
}
