package render

import (
	"fmt"
	"strings"
	"time"

	"goeda/domain/report"
)

// MissingMarkdown renders a missing-value summary as a markdown section
func MissingMarkdown(s *report.MissingSummary) string {
	var b strings.Builder
	b.WriteString("## Missing Values\n\n")

	if s.IsClean() {
		b.WriteString("No missing values.\n")
		return b.String()
	}

	b.WriteString("| Column | Missing | Percentage |\n")
	b.WriteString("|---|---:|---:|\n")
	for _, c := range s.Columns {
		fmt.Fprintf(&b, "| %s | %d | %.2f%% |\n", c.Column, c.NullCount, c.Percentage)
	}
	fmt.Fprintf(&b, "\n%d of the table's columns contain missing values.\n", s.AffectedColumns())
	return b.String()
}

// OutliersMarkdown renders an outlier report as a markdown section
func OutliersMarkdown(r *report.OutlierReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### Outliers: %s\n\n", r.Column)

	if !r.HasOutliers() {
		b.WriteString("No outliers.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Bounds [%.2f, %.2f] at factor %.2g. %d outliers (%.2f%% of rows).\n\n",
		r.Bounds.Lower, r.Bounds.Upper, r.Bounds.Factor, r.OutlierCount, r.Percentage)

	d := r.Stats
	b.WriteString("| count | mean | std | min | 25% | 50% | 75% | max |\n")
	b.WriteString("|---:|---:|---:|---:|---:|---:|---:|---:|\n")
	fmt.Fprintf(&b, "| %d | %.4f | %.4f | %v | %v | %v | %v | %v |\n\n",
		d.Count, d.Mean, d.StdDev, d.Min, d.Q25, d.Median, d.Q75, d.Max)

	fmt.Fprintf(&b, "First values: %s\n", formatValues(r.Sample))
	return b.String()
}

// FrequencyMarkdown renders a frequency table as a markdown section
func FrequencyMarkdown(f *report.FrequencyTable) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### Frequencies: %s\n\n", f.Column)
	b.WriteString("| Value | Count | Percentage |\n")
	b.WriteString("|---|---:|---:|\n")
	for _, e := range f.Entries {
		fmt.Fprintf(&b, "| %s | %d | %s |\n", e.Value, e.Count, e.PercentLabel)
	}
	return b.String()
}

// DatasetMarkdown assembles the full markdown report for one table: profile
// header, missing-value summary, then per-column outlier sections.
func DatasetMarkdown(profile *report.TableProfile, missing *report.MissingSummary, outliers []*report.OutlierReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Dataset Report: %s\n\n", profile.Dataset)
	fmt.Fprintf(&b, "%d rows, %d columns.\n\n", profile.TotalRows, len(profile.Columns))

	b.WriteString(MissingMarkdown(missing))
	b.WriteString("\n## Outliers\n\n")
	for _, r := range outliers {
		b.WriteString(OutliersMarkdown(r))
		b.WriteString("\n")
	}

	b.WriteString("## Columns\n\n")
	b.WriteString("| Column | Kind | Missing % | Unique / Outliers |\n")
	b.WriteString("|---|---|---:|---:|\n")
	for _, c := range profile.Columns {
		detail := ""
		if c.Numeric != nil {
			detail = fmt.Sprintf("%d outliers", c.Numeric.OutlierCount)
		}
		if c.Categorical != nil {
			detail = fmt.Sprintf("%d unique", c.Categorical.UniqueCount)
		}
		fmt.Fprintf(&b, "| %s | %s | %.2f%% | %s |\n", c.Column, c.Kind, c.Missing.Percentage, detail)
	}

	if !profile.ComputedAt.IsZero() {
		fmt.Fprintf(&b, "\n_Generated %s, report %s_\n",
			profile.ComputedAt.Time().Format(time.RFC3339), profile.ID)
	}

	return b.String()
}
