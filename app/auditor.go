// Package app wires the audit, clean and profiling operations around one
// table instance for the CLI and the reporting API.
package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"goeda/domain/report"
	"goeda/domain/table"
	"goeda/internal/audit"
	"goeda/internal/clean"
	"goeda/internal/profiling"
	"goeda/internal/render"
)

// Auditor binds audit and remediation operations to a single table.
// Audits are read-only and safe to run concurrently; remediations mutate the
// table and must not race with anything else touching it.
type Auditor struct {
	tbl      *table.Table
	bounds   audit.BoundsOptions
	profiler *profiling.Profiler
}

// NewAuditor creates an auditor over a table with the given bound policy
func NewAuditor(tbl *table.Table, bounds audit.BoundsOptions) *Auditor {
	profiler := profiling.NewProfiler()
	profiler.Bounds = bounds
	return &Auditor{
		tbl:      tbl,
		bounds:   bounds,
		profiler: profiler,
	}
}

// Table returns the underlying table
func (a *Auditor) Table() *table.Table { return a.tbl }

// Missing audits null counts across all columns
func (a *Auditor) Missing() (*report.MissingSummary, error) {
	return audit.AuditMissing(a.tbl)
}

// Outliers audits one numeric column against the configured bound policy
func (a *Auditor) Outliers(column string) (*report.OutlierReport, error) {
	return audit.AuditOutliers(a.tbl, column, a.bounds)
}

// Frequency tabulates the distinct values of one column
func (a *Auditor) Frequency(column string) (*report.FrequencyTable, error) {
	return audit.Frequency(a.tbl, column)
}

// Histogram buckets one numeric column into equal-width bins
func (a *Auditor) Histogram(column string, bins int) (*report.Histogram, error) {
	return audit.HistogramBins(a.tbl, column, bins)
}

// Profile computes the full statistical profile of the table
func (a *Auditor) Profile() (*report.TableProfile, error) {
	return a.profiler.ProfileTable(a.tbl)
}

// ImputeMissing fills the nulls of one numeric column with its median
func (a *Auditor) ImputeMissing(column string) (float64, error) {
	return clean.ImputeMissingMedian(a.tbl, column)
}

// ReplaceOutliers replaces the out-of-bounds values of one numeric column
// with its median
func (a *Auditor) ReplaceOutliers(column string) (float64, error) {
	return clean.ReplaceOutliersMedian(a.tbl, column, a.bounds)
}

// ScanOutliers audits every numeric column concurrently and returns the
// reports in column order. Auditors only read the table, so the fan-out is
// safe as long as no remediation runs at the same time.
func (a *Auditor) ScanOutliers(ctx context.Context) ([]*report.OutlierReport, error) {
	var numeric []string
	for _, col := range a.tbl.Columns() {
		if col.IsNumeric() {
			numeric = append(numeric, col.Name())
		}
	}

	reports := make([]*report.OutlierReport, len(numeric))
	g, _ := errgroup.WithContext(ctx)
	for i, column := range numeric {
		i, column := i, column
		g.Go(func() error {
			rep, err := audit.AuditOutliers(a.tbl, column, a.bounds)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// MarkdownReport assembles the full dataset report in markdown
func (a *Auditor) MarkdownReport(ctx context.Context) (string, error) {
	profile, err := a.Profile()
	if err != nil {
		return "", err
	}
	missing, err := a.Missing()
	if err != nil {
		return "", err
	}
	outliers, err := a.ScanOutliers(ctx)
	if err != nil {
		return "", err
	}
	return render.DatasetMarkdown(profile, missing, outliers), nil
}
