package fence

// The conventional Tukey multipliers are 1.5 (mild) and 3.0 (extreme).
// 2.2 follows the toolkit's documented examples and sits between the two.
const DefaultMultiplier = 2.2

func minSampleSize() int {
	return 2
}
