package fence

import (
	"math"
	"sort"

	"github.com/datavet/validation-algorithms/common"
	"github.com/datavet/validation-algorithms/model"
)

// Quartiles estimates Q1 and Q3 with the median-of-halves method:
// sort ascending, split around the overall median (the median element itself
// is excluded when the count is odd), then Q1 / Q3 are the medians of the
// lower / upper half. The input is not modified.
func Quartiles(values []float64) (model.Quartiles, error) {
	if len(values) < minSampleSize() {
		return model.Quartiles{}, common.ErrorInsufficientData
	}
	if err := checkComparable(values); err != nil {
		return model.Quartiles{}, err
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	var lower, upper []float64
	if n%2 == 0 {
		lower, upper = sorted[:n/2], sorted[n/2:]
	} else {
		lower, upper = sorted[:n/2], sorted[n/2+1:]
	}

	return model.Quartiles{
		Q1: medianSorted(lower),
		Q3: medianSorted(upper),
	}, nil
}

// Median uses the same even/odd rule as the quartile halves.
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, common.ErrorInsufficientData
	}
	if err := checkComparable(values); err != nil {
		return 0, err
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return medianSorted(sorted), nil
}

func medianSorted(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func checkComparable(values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return common.ErrorNonNumericValue
		}
	}
	return nil
}
