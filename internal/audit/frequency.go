package audit

import (
	"sort"

	"goeda/domain/core"
	"goeda/domain/report"
	"goeda/domain/table"
)

// Frequency tabulates the distinct non-null values of one column with counts
// and percentages, sorted by count descending. Ties keep first-appearance
// order. Works on both categorical and numeric columns.
func Frequency(tbl *table.Table, column string) (*report.FrequencyTable, error) {
	col, err := tbl.Column(column)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var order []string
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			continue
		}
		key := col.CellString(i)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	freq := &report.FrequencyTable{
		Column:     column,
		TotalCells: total,
		ComputedAt: core.Now(),
	}

	for _, value := range order {
		count := counts[value]
		percentage := float64(count) / float64(total) * 100
		freq.Entries = append(freq.Entries, report.FrequencyEntry{
			Value:        value,
			Count:        count,
			Percentage:   report.Round2(percentage),
			PercentLabel: report.FormatPercent(percentage),
		})
	}

	sort.SliceStable(freq.Entries, func(i, j int) bool {
		return freq.Entries[i].Count > freq.Entries[j].Count
	})

	return freq, nil
}
