package report

import (
	"math"
	"strconv"
	"strings"

	"goeda/domain/core"
	"goeda/domain/table"
)

// Bounds holds the IQR-derived outlier thresholds for one column
type Bounds struct {
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
	IQR    float64 `json:"iqr"`
	Factor float64 `json:"factor"`
	Lower  float64 `json:"lower"`
	Upper  float64 `json:"upper"`
}

// Contains reports whether v lies inside [Lower, Upper]. Values strictly
// outside the bounds are outliers.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}

// Describe holds the descriptive statistics of a value set, in the order the
// original summaries present them.
type Describe struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"25%"`
	Median float64 `json:"50%"`
	Q75    float64 `json:"75%"`
	Max    float64 `json:"max"`
}

// MissingColumn is one row of a missing-value summary
type MissingColumn struct {
	Column     string  `json:"column"`
	NullCount  int     `json:"null_count"`
	Percentage float64 `json:"percentage"`
}

// MissingSummary reports null counts for every affected column of a table.
// Columns without nulls are omitted; an empty summary is valid.
type MissingSummary struct {
	ID         core.ReportID   `json:"id"`
	Dataset    core.DatasetID  `json:"dataset"`
	TotalRows  int             `json:"total_rows"`
	Columns    []MissingColumn `json:"columns"`
	ComputedAt core.Timestamp  `json:"computed_at"`
}

// AffectedColumns returns the number of columns that contain nulls
func (s *MissingSummary) AffectedColumns() int {
	return len(s.Columns)
}

// IsClean returns true when no column has missing values
func (s *MissingSummary) IsClean() bool {
	return len(s.Columns) == 0
}

// OutlierReport describes the out-of-bounds values of one numeric column.
// A report is always returned; absence of outliers is a valid result, not an
// error, and is signalled by HasOutliers.
type OutlierReport struct {
	ID           core.ReportID  `json:"id"`
	Column       string         `json:"column"`
	TotalRows    int            `json:"total_rows"`
	Bounds       Bounds         `json:"bounds"`
	OutlierCount int            `json:"outlier_count"`
	Percentage   float64        `json:"percentage"`
	Stats        *Describe      `json:"stats,omitempty"`
	Sample       []float64      `json:"sample,omitempty"`
	ComputedAt   core.Timestamp `json:"computed_at"`
}

// HasOutliers reports whether any value fell outside the bounds
func (r *OutlierReport) HasOutliers() bool {
	return r.OutlierCount > 0
}

// FrequencyEntry is one distinct value with its occurrence count
type FrequencyEntry struct {
	Value        string  `json:"value"`
	Count        int     `json:"count"`
	Percentage   float64 `json:"percentage"`
	PercentLabel string  `json:"percent_label"`
}

// FrequencyTable tabulates the distinct non-null values of one column,
// sorted by count descending with ties in first-appearance order.
type FrequencyTable struct {
	Column     string           `json:"column"`
	TotalCells int              `json:"total_cells"`
	Entries    []FrequencyEntry `json:"entries"`
	ComputedAt core.Timestamp   `json:"computed_at"`
}

// Histogram holds equal-width bin edges and counts for a numeric column,
// ready for an external renderer.
type Histogram struct {
	Column string    `json:"column"`
	Edges  []float64 `json:"edges"` // len(Counts)+1 dividers
	Counts []int     `json:"counts"`
}

// MissingStats tracks missing-value counts for a profiled column
type MissingStats struct {
	NullCount  int     `json:"null_count"`
	Percentage float64 `json:"percentage"`
}

// NumericProfile contains the numeric-specific profile of a column
type NumericProfile struct {
	Describe     Describe `json:"describe"`
	Skewness     float64  `json:"skewness"`
	Kurtosis     float64  `json:"kurtosis"`
	IsNormal     bool     `json:"is_normal"`
	NormalityP   float64  `json:"normality_p"`
	ZeroCount    int      `json:"zero_count"`
	OutlierCount int      `json:"outlier_count"`
}

// CategoricalProfile contains the categorical-specific profile of a column
type CategoricalProfile struct {
	Mode          string           `json:"mode"`
	ModeFrequency int              `json:"mode_frequency"`
	UniqueCount   int              `json:"unique_count"`
	TopValues     []FrequencyEntry `json:"top_values"`
}

// ColumnProfile is the complete statistical profile of one column
type ColumnProfile struct {
	Column      string              `json:"column"`
	Kind        table.Kind          `json:"kind"`
	SampleSize  int                 `json:"sample_size"`
	Missing     MissingStats        `json:"missing"`
	Numeric     *NumericProfile     `json:"numeric,omitempty"`
	Categorical *CategoricalProfile `json:"categorical,omitempty"`
}

// TableProfile aggregates the profiles of every column of a table
type TableProfile struct {
	ID         core.ReportID   `json:"id"`
	Dataset    core.DatasetID  `json:"dataset"`
	TotalRows  int             `json:"total_rows"`
	Columns    []ColumnProfile `json:"columns"`
	ComputedAt core.Timestamp  `json:"computed_at"`
}

// Round2 rounds to two decimal places, the precision every percentage in the
// summaries carries.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatPercent renders a percentage the way the original summaries did:
// rounded to two decimals, trailing zeros trimmed but at least one decimal
// digit kept ("60.0%", "33.33%").
func FormatPercent(v float64) string {
	s := strconv.FormatFloat(Round2(v), 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s + "%"
}
