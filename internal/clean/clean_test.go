package clean

import (
	"math"
	"testing"

	"goeda/domain/core"
	"goeda/domain/table"
	"goeda/internal/audit"
)

func TestImputeMissingMedian_SpecimenColumn(t *testing.T) {
	tbl := table.New("test")
	_ = tbl.AddColumn(table.NewNumericColumn("x", []float64{math.NaN(), 5, 7, math.NaN(), 9}))

	median, err := ImputeMissingMedian(tbl, "x")
	if err != nil {
		t.Fatalf("ImputeMissingMedian failed: %v", err)
	}
	if median != 7 {
		t.Errorf("median = %v, want 7", median)
	}

	col, _ := tbl.Column("x")
	want := []float64{7, 5, 7, 7, 9}
	for i, w := range want {
		if col.Float(i) != w {
			t.Errorf("row %d = %v, want %v", i, col.Float(i), w)
		}
	}
	if col.NullCount() != 0 {
		t.Errorf("NullCount = %d, want 0 after imputation", col.NullCount())
	}
}

func TestImputeMissingMedian_Idempotent(t *testing.T) {
	tbl := table.New("test")
	_ = tbl.AddColumn(table.NewNumericColumn("x", []float64{math.NaN(), 5, 7, math.NaN(), 9}))

	if _, err := ImputeMissingMedian(tbl, "x"); err != nil {
		t.Fatalf("first imputation failed: %v", err)
	}

	// Second pass sees no nulls; median is now over the filled column
	median, err := ImputeMissingMedian(tbl, "x")
	if err != nil {
		t.Fatalf("second imputation failed: %v", err)
	}
	if median != 7 {
		t.Errorf("second median = %v, want 7", median)
	}

	col, _ := tbl.Column("x")
	want := []float64{7, 5, 7, 7, 9}
	for i, w := range want {
		if col.Float(i) != w {
			t.Errorf("second pass changed row %d to %v", i, col.Float(i))
		}
	}
}

func TestImputeMissingMedian_Preconditions(t *testing.T) {
	tbl := table.New("test")
	_ = tbl.AddColumn(table.NewCategoricalColumn("city", []string{"a"}))
	_ = tbl.AddColumn(table.NewNumericColumn("allnull", []float64{math.NaN()}))

	if _, err := ImputeMissingMedian(tbl, "city"); !core.IsPreconditionError(err) {
		t.Errorf("categorical column: expected ErrNonNumericColumn, got %v", err)
	}
	if _, err := ImputeMissingMedian(tbl, "allnull"); !core.IsPreconditionError(err) {
		t.Errorf("all-null column: expected ErrInsufficientData, got %v", err)
	}
	if _, err := ImputeMissingMedian(tbl, "nope"); !core.IsColumnNotFoundError(err) {
		t.Errorf("absent column: expected ErrColumnNotFound, got %v", err)
	}
}

func TestReplaceOutliersMedian_SpecimenColumn(t *testing.T) {
	tbl := table.New("test")
	_ = tbl.AddColumn(table.NewNumericColumn("x", []float64{1, 2, 2, 3, 100}))

	median, err := ReplaceOutliersMedian(tbl, "x", audit.DefaultBoundsOptions())
	if err != nil {
		t.Fatalf("ReplaceOutliersMedian failed: %v", err)
	}
	if median != 2 {
		t.Errorf("median = %v, want 2", median)
	}

	col, _ := tbl.Column("x")
	want := []float64{1, 2, 2, 3, 2}
	for i, w := range want {
		if col.Float(i) != w {
			t.Errorf("row %d = %v, want %v", i, col.Float(i), w)
		}
	}
}

func TestReplaceOutliersMedian_ReauditIsClean(t *testing.T) {
	opts := audit.DefaultBoundsOptions()

	tbl := table.New("test")
	_ = tbl.AddColumn(table.NewNumericColumn("x", []float64{1, 2, 2, 3, 100}))

	// Bounds on the original data, before remediation
	col, _ := tbl.Column("x")
	originalBounds, err := audit.ComputeBounds(col.NonNull(), opts)
	if err != nil {
		t.Fatalf("ComputeBounds failed: %v", err)
	}

	if _, err := ReplaceOutliersMedian(tbl, "x", opts); err != nil {
		t.Fatalf("ReplaceOutliersMedian failed: %v", err)
	}

	// Every remaining value lies inside the original bounds
	for _, v := range col.NonNull() {
		if !originalBounds.Contains(v) {
			t.Errorf("value %v still outside original bounds [%v, %v]",
				v, originalBounds.Lower, originalBounds.Upper)
		}
	}

	// A second remediation pass is a no-op
	before := col.NonNull()
	if _, err := ReplaceOutliersMedian(tbl, "x", opts); err != nil {
		t.Fatalf("second ReplaceOutliersMedian failed: %v", err)
	}
	after := col.NonNull()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("second pass changed row %d: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestReplaceOutliersMedian_LeavesNullsAlone(t *testing.T) {
	tbl := table.New("test")
	_ = tbl.AddColumn(table.NewNumericColumn("x", []float64{1, math.NaN(), 2, 2, 3, 100}))

	if _, err := ReplaceOutliersMedian(tbl, "x", audit.DefaultBoundsOptions()); err != nil {
		t.Fatalf("ReplaceOutliersMedian failed: %v", err)
	}

	col, _ := tbl.Column("x")
	if !col.IsNull(1) {
		t.Error("outlier remediation must not touch null cells")
	}
}

func TestReplaceOutliersMedian_OtherColumnsUntouched(t *testing.T) {
	tbl := table.New("test")
	_ = tbl.AddColumn(table.NewNumericColumn("x", []float64{1, 2, 2, 3, 100}))
	_ = tbl.AddColumn(table.NewNumericColumn("y", []float64{10, 20, 30, 40, 50}))

	if _, err := ReplaceOutliersMedian(tbl, "x", audit.DefaultBoundsOptions()); err != nil {
		t.Fatalf("ReplaceOutliersMedian failed: %v", err)
	}

	y, _ := tbl.Column("y")
	for i, w := range []float64{10, 20, 30, 40, 50} {
		if y.Float(i) != w {
			t.Errorf("column y row %d changed to %v", i, y.Float(i))
		}
	}
}
