package audit

import (
	"sort"

	"github.com/montanaflynn/stats"

	"goeda/domain/core"
	"goeda/domain/report"
)

// DescribeValues computes the descriptive statistics of a value set: count,
// mean, sample standard deviation, min, quartiles, max.
func DescribeValues(values []float64) (report.Describe, error) {
	if len(values) == 0 {
		return report.Describe{}, core.NewInvalidInputError("cannot describe an empty value set")
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return report.Describe{}, err
	}

	// Sample std dev is undefined for a single value; report zero instead of
	// NaN so reports stay JSON-encodable.
	stdDev := 0.0
	if len(values) > 1 {
		stdDev, err = stats.StandardDeviationSample(values)
		if err != nil {
			return report.Describe{}, err
		}
	}

	min, err := stats.Min(values)
	if err != nil {
		return report.Describe{}, err
	}

	max, err := stats.Max(values)
	if err != nil {
		return report.Describe{}, err
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return report.Describe{
		Count:  len(values),
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Q25:    interpolatedQuantile(sorted, 25),
		Median: interpolatedQuantile(sorted, 50),
		Q75:    interpolatedQuantile(sorted, 75),
		Max:    max,
	}, nil
}
