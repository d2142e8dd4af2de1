package model

import "fmt"

// Quartiles holds the first and third quartile of a series, Q1 <= Q3.
// Both collapse to the same value for a degenerate (all equal) series.
type Quartiles struct {
	Q1 float64 `json:"q1"`
	Q3 float64 `json:"q3"`
}

func (q Quartiles) IQR() float64 {
	return q.Q3 - q.Q1
}

// Fence is the acceptance interval [Lower, Upper]. Values equal to a limit
// are inside the fence, only strict violations count as outliers.
type Fence struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

func (f Fence) Contains(value float64) bool {
	return value >= f.Lower && value <= f.Upper
}

// Outlier references one flagged value by its position in the original,
// unsorted series.
type Outlier struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// SequenceProfile carries summary statistics for diagnostic display.
type SequenceProfile struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// OutlierReport is the scan result for a single series. Outliers is empty
// (never nil) when every value sits inside the fence, whether that means the
// overall check passes is up to the caller.
type OutlierReport struct {
	Quartiles  Quartiles       `json:"quartiles"`
	Fence      Fence           `json:"fence"`
	Multiplier float64         `json:"multiplier"`
	SampleSize int             `json:"sample_size"`
	Outliers   []Outlier       `json:"outliers"`
	Profile    SequenceProfile `json:"profile"`
}

func (r *OutlierReport) HasOutliers() bool {
	return r != nil && len(r.Outliers) > 0
}

// GroupEntry pairs a group key with that group's independent report.
type GroupEntry struct {
	Key    string         `json:"key"`
	Report *OutlierReport `json:"report"`
}

// GroupReport lists per-group reports in the dataset's insertion order.
// Groups with zero outliers still get an entry.
type GroupReport struct {
	Entries []GroupEntry `json:"entries"`
}

func (g *GroupReport) HasOutliers() bool {
	if g == nil {
		return false
	}
	for _, entry := range g.Entries {
		if entry.Report.HasOutliers() {
			return true
		}
	}
	return false
}

func (g *GroupReport) OutlierCount() int {
	if g == nil {
		return 0
	}
	count := 0
	for _, entry := range g.Entries {
		if entry.Report != nil {
			count += len(entry.Report.Outliers)
		}
	}
	return count
}

// Deviation describes one flagged value as its signed distance past the
// violated fence limit. Amount = Value - Limit, so values over the upper
// limit get a positive amount and values under the lower limit a negative one.
type Deviation struct {
	GroupKey string  `json:"group_key,omitempty"`
	Index    int     `json:"index"`
	Value    float64 `json:"value"`
	Limit    float64 `json:"limit"`
	Amount   float64 `json:"amount"`
}

func (d Deviation) String() string {
	return fmt.Sprintf("Deviation(%+g, %v)", d.Amount, d.Limit)
}
