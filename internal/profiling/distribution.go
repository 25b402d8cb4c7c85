package profiling

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// sampleSkewness computes the adjusted Fisher-Pearson coefficient of skewness
func sampleSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sum := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sum += d * d * d
	}

	skewness := sum / n

	// Bias correction for sample skewness
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skewness * correction
}

// sampleKurtosis computes sample kurtosis (not excess)
func sampleKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sum := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sum += d * d * d * d
	}

	kurtosis := sum / n
	excess := kurtosis - 3

	// Bias correction for sample excess kurtosis
	if n > 3 {
		correction := (n - 1) / ((n - 2) * (n - 3))
		excess = excess*correction + 6/(n+1)
	}

	return excess + 3
}

// testNormality runs a moment-based normality check, an approximation of the
// Shapiro-Wilk test using skewness and kurtosis against a chi-squared
// reference distribution.
func testNormality(data []float64) (isNormal bool, pValue float64) {
	if len(data) < 3 {
		return false, 1.0
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return false, 1.0
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return false, 1.0
	}

	skewness := sampleSkewness(data, mean, stdDev)
	kurtosis := sampleKurtosis(data, mean, stdDev)

	// Combined test statistic over both moments
	testStat := math.Abs(skewness) + math.Abs(kurtosis-3)/2

	chiDist := distuv.ChiSquared{K: 2}
	pValue = 1 - chiDist.CDF(testStat*testStat)

	return pValue > 0.05, pValue
}
