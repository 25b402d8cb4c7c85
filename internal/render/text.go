// Package render formats report values for display. Computation never
// prints; everything user-facing goes through here.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"goeda/domain/report"
)

// MissingText renders a missing-value summary as console text
func MissingText(s *report.MissingSummary) string {
	var b strings.Builder
	b.WriteString(" ============== Missing Value Summary ============== \n")

	if s.IsClean() {
		b.WriteString("No missing values in this table.\n")
	} else {
		w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "Column\tMissing\tPercentage (%)")
		for _, c := range s.Columns {
			fmt.Fprintf(w, "%s\t%d\t%.2f\n", c.Column, c.NullCount, c.Percentage)
		}
		w.Flush()
	}

	fmt.Fprintf(&b, "\nTotal columns with missing values: %d\n", s.AffectedColumns())
	return b.String()
}

// OutliersText renders an outlier report as console text
func OutliersText(r *report.OutlierReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, " ============== Outlier Summary: %s ============== \n", r.Column)

	if !r.HasOutliers() {
		b.WriteString("No outliers in this column.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Lower bound: %.2f\n", r.Bounds.Lower)
	fmt.Fprintf(&b, "Upper bound: %.2f\n", r.Bounds.Upper)
	fmt.Fprintf(&b, "\nNumber of outliers: %d\n", r.OutlierCount)
	fmt.Fprintf(&b, "Percentage of outliers: %.2f%%\n", r.Percentage)

	b.WriteString("\nOutlier statistics:\n")
	b.WriteString(describeText(r.Stats))

	b.WriteString("\nFirst outlier values:\n")
	b.WriteString(formatValues(r.Sample))
	b.WriteString("\n")
	return b.String()
}

// FrequencyText renders a frequency table as console text
func FrequencyText(f *report.FrequencyTable) string {
	var b strings.Builder
	fmt.Fprintf(&b, " ============== Frequency Table: %s ============== \n", f.Column)

	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Value\tCount\tPercentage")
	for _, e := range f.Entries {
		fmt.Fprintf(w, "%s\t%d\t%s\n", e.Value, e.Count, e.PercentLabel)
	}
	w.Flush()
	return b.String()
}

// ProfileText renders a table profile as console text
func ProfileText(p *report.TableProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, " ============== Profile: %s ============== \n", p.Dataset)
	fmt.Fprintf(&b, "Rows: %d  Columns: %d\n\n", p.TotalRows, len(p.Columns))

	for _, c := range p.Columns {
		fmt.Fprintf(&b, "%s (%s)\n", c.Column, c.Kind)
		fmt.Fprintf(&b, "  missing: %d (%.2f%%)\n", c.Missing.NullCount, c.Missing.Percentage)
		if c.Numeric != nil {
			d := c.Numeric.Describe
			fmt.Fprintf(&b, "  mean=%.4f std=%.4f min=%v q1=%v median=%v q3=%v max=%v\n",
				d.Mean, d.StdDev, d.Min, d.Q25, d.Median, d.Q75, d.Max)
			fmt.Fprintf(&b, "  skew=%.3f kurtosis=%.3f outliers=%d zeros=%d\n",
				c.Numeric.Skewness, c.Numeric.Kurtosis, c.Numeric.OutlierCount, c.Numeric.ZeroCount)
		}
		if c.Categorical != nil {
			fmt.Fprintf(&b, "  unique=%d mode=%q (%d)\n",
				c.Categorical.UniqueCount, c.Categorical.Mode, c.Categorical.ModeFrequency)
		}
	}
	return b.String()
}

func describeText(d *report.Describe) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "count\t%d\n", d.Count)
	fmt.Fprintf(w, "mean\t%.6f\n", d.Mean)
	fmt.Fprintf(w, "std\t%.6f\n", d.StdDev)
	fmt.Fprintf(w, "min\t%v\n", d.Min)
	fmt.Fprintf(w, "25%%\t%v\n", d.Q25)
	fmt.Fprintf(w, "50%%\t%v\n", d.Median)
	fmt.Fprintf(w, "75%%\t%v\n", d.Q75)
	fmt.Fprintf(w, "max\t%v\n", d.Max)
	w.Flush()
	return b.String()
}

func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
