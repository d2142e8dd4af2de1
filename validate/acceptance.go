package validate

import (
	"math"

	"github.com/datavet/validation-algorithms/model"
)

// Acceptance is a pure filter over flagged values: it returns true for a
// difference that should be excused. The scanner knows nothing about
// acceptance, filtering happens strictly after the scan.
type Acceptance func(d model.Deviation) bool

func (a Acceptance) And(other Acceptance) Acceptance {
	return func(d model.Deviation) bool {
		return a(d) && other(d)
	}
}

func (a Acceptance) Or(other Acceptance) Acceptance {
	return func(d model.Deviation) bool {
		return a(d) || other(d)
	}
}

// AcceptedDeviation excuses differences whose distance past the limit is
// within tolerance (absolute value).
func AcceptedDeviation(tolerance float64) Acceptance {
	return func(d model.Deviation) bool {
		return math.Abs(d.Amount) <= tolerance
	}
}

// AcceptedKeys excuses every difference from the given groups.
func AcceptedKeys(keys ...string) Acceptance {
	keySet := make(map[string]bool, len(keys))
	for _, key := range keys {
		keySet[key] = true
	}
	return func(d model.Deviation) bool {
		return keySet[d.GroupKey]
	}
}

// AcceptedLimit excuses up to n differences in order. The returned value is
// stateful, build a fresh one per Accept call.
func AcceptedLimit(n int) Acceptance {
	accepted := 0
	return func(d model.Deviation) bool {
		if accepted < n {
			accepted++
			return true
		}
		return false
	}
}

// Accept filters a validation failure through an acceptance. A nil error or
// a non-validation error passes through untouched. When every difference is
// excused the failure becomes a pass, otherwise a new ValidationError keeps
// the remaining differences in their original order.
func Accept(err error, acceptance Acceptance) error {
	verr, ok := err.(*ValidationError)
	if !ok || acceptance == nil {
		return err
	}

	remaining := []model.Deviation{}
	for _, d := range verr.differences {
		if !acceptance(d) {
			remaining = append(remaining, d)
		}
	}

	if len(remaining) == 0 {
		return nil
	}

	remainingKeys := make(map[string]bool, len(remaining))
	for _, d := range remaining {
		remainingKeys[d.GroupKey] = true
	}
	diagnostics := []groupDiagnostic{}
	for _, diag := range verr.diagnostics {
		if remainingKeys[diag.key] {
			diagnostics = append(diagnostics, diag)
		}
	}

	return &ValidationError{
		description: verr.description,
		grouped:     verr.grouped,
		differences: remaining,
		diagnostics: diagnostics,
	}
}
