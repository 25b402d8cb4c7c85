package audit

import (
	"goeda/domain/core"
	"goeda/domain/report"
	"goeda/domain/table"
)

// AuditMissing scans every column of a table and reports null counts and
// percentages for the columns that have any. A table without nulls yields a
// valid empty summary; a table without columns is an error.
func AuditMissing(tbl *table.Table) (*report.MissingSummary, error) {
	if tbl == nil || tbl.NumCols() == 0 {
		return nil, core.NewInvalidInputError("table has no columns")
	}

	totalRows := tbl.NumRows()
	summary := &report.MissingSummary{
		ID:         core.ReportID(core.NewID()),
		Dataset:    core.DatasetID(tbl.Name()),
		TotalRows:  totalRows,
		ComputedAt: core.Now(),
	}

	for _, col := range tbl.Columns() {
		nulls := col.NullCount()
		if nulls == 0 {
			continue
		}
		percentage := 0.0
		if totalRows > 0 {
			percentage = report.Round2(float64(nulls) / float64(totalRows) * 100)
		}
		summary.Columns = append(summary.Columns, report.MissingColumn{
			Column:     col.Name(),
			NullCount:  nulls,
			Percentage: percentage,
		})
	}

	return summary, nil
}
