package fence

import (
	"github.com/datavet/validation-algorithms/model"
	"github.com/datavet/validation-algorithms/utils"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
)

// Profile computes the summary statistics attached to a report for diagnostic
// display. Values are rounded for rendering, fence comparisons never go
// through them. Callers have already checked the series is non-empty and
// numeric, an empty input yields a zero profile.
func Profile(values []float64) model.SequenceProfile {
	if len(values) == 0 {
		return model.SequenceProfile{}
	}

	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	stdDev, _ := stats.StandardDeviation(values)

	return model.SequenceProfile{
		Mean:   utils.FormatFloat(mean, 6),
		Median: utils.FormatFloat(median, 6),
		StdDev: utils.FormatFloat(stdDev, 6),
		Min:    floats.Min(values),
		Max:    floats.Max(values),
	}
}
