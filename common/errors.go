package common

import "errors"

var (
	// ErrorInsufficientData: quartiles are undefined for fewer than 2 values,
	// so a fence can't be computed for such a sequence.
	ErrorInsufficientData = errors.New("insufficient data, need at least 2 values")

	// ErrorInvalidMultiplier: the fence multiplier must be a positive finite number.
	ErrorInvalidMultiplier = errors.New("invalid multiplier, must be positive and finite")

	// ErrorNonNumericValue: NaN and Inf values can't be ordered against fence limits.
	ErrorNonNumericValue = errors.New("non numeric value in sequence")

	// ErrorDuplicateGroupKey: group keys in a grouped dataset must be unique.
	ErrorDuplicateGroupKey = errors.New("duplicate group key")

	ErrorInvalidValue = errors.New("invalid value")
)
