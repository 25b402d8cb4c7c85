package audit

import (
	"math"
	"testing"

	"goeda/domain/core"
	"goeda/domain/table"
)

func TestAuditMissing_OnlyAffectedColumns(t *testing.T) {
	tbl := table.New("test")
	_ = tbl.AddColumn(table.NewNumericColumn("a", []float64{1, 2, 3, 4, 5}))
	_ = tbl.AddColumn(table.NewNumericColumn("b", []float64{1, math.NaN(), 3, math.NaN(), 5}))

	summary, err := AuditMissing(tbl)
	if err != nil {
		t.Fatalf("AuditMissing failed: %v", err)
	}

	if summary.TotalRows != 5 {
		t.Errorf("TotalRows = %d, want 5", summary.TotalRows)
	}
	if summary.Dataset != core.DatasetID("test") {
		t.Errorf("Dataset = %q, want \"test\"", summary.Dataset)
	}
	if summary.AffectedColumns() != 1 {
		t.Fatalf("AffectedColumns = %d, want 1", summary.AffectedColumns())
	}
	entry := summary.Columns[0]
	if entry.Column != "b" {
		t.Errorf("affected column = %q, want \"b\"", entry.Column)
	}
	if entry.NullCount != 2 {
		t.Errorf("NullCount = %d, want 2", entry.NullCount)
	}
	if entry.Percentage != 40.00 {
		t.Errorf("Percentage = %v, want 40.00", entry.Percentage)
	}
}

func TestAuditMissing_CleanTable(t *testing.T) {
	tbl := table.New("test")
	_ = tbl.AddColumn(table.NewCategoricalColumn("city", []string{"a", "b"}))

	summary, err := AuditMissing(tbl)
	if err != nil {
		t.Fatalf("AuditMissing failed: %v", err)
	}
	if !summary.IsClean() {
		t.Error("table without nulls should yield a clean summary")
	}
	if summary.AffectedColumns() != 0 {
		t.Errorf("AffectedColumns = %d, want 0", summary.AffectedColumns())
	}
}

func TestAuditMissing_CountsCategoricalNulls(t *testing.T) {
	tbl := table.New("test")
	_ = tbl.AddColumn(table.NewCategoricalColumn("city", []string{"a", "", "", "b"}))

	summary, err := AuditMissing(tbl)
	if err != nil {
		t.Fatalf("AuditMissing failed: %v", err)
	}
	if summary.AffectedColumns() != 1 || summary.Columns[0].NullCount != 2 {
		t.Errorf("unexpected summary: %+v", summary.Columns)
	}
	if summary.Columns[0].Percentage != 50.00 {
		t.Errorf("Percentage = %v, want 50.00", summary.Columns[0].Percentage)
	}
}

func TestAuditMissing_EmptyTable(t *testing.T) {
	_, err := AuditMissing(table.New("empty"))
	if !core.IsPreconditionError(err) {
		t.Errorf("expected invalid-input error for a table without columns, got %v", err)
	}
}
