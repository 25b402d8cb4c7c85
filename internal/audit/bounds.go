package audit

import (
	"math"
	"sort"

	"goeda/domain/core"
	"goeda/domain/report"
)

// BoundsOptions configures IQR outlier bound computation. One policy is
// shared by the auditor and the remediator.
type BoundsOptions struct {
	// Factor scales the IQR when deriving the bounds
	Factor float64
	// FloorAtZero clamps the lower bound to zero, the domain floor for
	// non-negative metrics. Disable for signed data.
	FloorAtZero bool
}

// DefaultBoundsOptions returns the standard 1.5*IQR policy with the zero floor
func DefaultBoundsOptions() BoundsOptions {
	return BoundsOptions{Factor: 1.5, FloorAtZero: true}
}

// ComputeBounds derives the outlier thresholds from the quartiles of values
func ComputeBounds(values []float64, opts BoundsOptions) (report.Bounds, error) {
	if len(values) == 0 {
		return report.Bounds{}, core.NewInvalidInputError("cannot compute bounds of an empty value set")
	}
	if opts.Factor <= 0 {
		return report.Bounds{}, core.NewInvalidInputError("bounds factor must be positive")
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	q1 := interpolatedQuantile(sorted, 25)
	q3 := interpolatedQuantile(sorted, 75)
	iqr := q3 - q1

	lower := q1 - opts.Factor*iqr
	if opts.FloorAtZero {
		lower = math.Max(0, lower)
	}
	upper := q3 + opts.Factor*iqr

	return report.Bounds{
		Q1:     q1,
		Q3:     q3,
		IQR:    iqr,
		Factor: opts.Factor,
		Lower:  lower,
		Upper:  upper,
	}, nil
}

// interpolatedQuantile computes the p-th percentile (0-100) of an ascending
// sorted slice using linear interpolation between closest ranks, matching
// how the bound examples in the tests are derived. Nearest-rank percentiles
// disagree with this definition on small samples.
func interpolatedQuantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	h := (p / 100) * float64(n-1)
	lo := int(math.Floor(h))
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
