package fence

import (
	"math"

	"github.com/datavet/validation-algorithms/common"
	"github.com/datavet/validation-algorithms/model"
)

// NewFence derives the acceptance interval from the quartiles:
// [Q1 - IQR*multiplier, Q3 + IQR*multiplier]. A zero IQR collapses the fence
// to a single point, which is the expected behavior for a degenerate series,
// not an error. Limits keep full precision, rounding before comparison would
// shift boundary values in or out of range.
func NewFence(quartiles model.Quartiles, multiplier float64) (model.Fence, error) {
	if multiplier <= 0 || math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
		return model.Fence{}, common.ErrorInvalidMultiplier
	}

	iqr := quartiles.IQR()
	return model.Fence{
		Lower: quartiles.Q1 - iqr*multiplier,
		Upper: quartiles.Q3 + iqr*multiplier,
	}, nil
}
