package eval

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ThresholdRange generates evenly spaced candidate thresholds from min
// (inclusive) to max (exclusive) with the given step.
func ThresholdRange(min, max, step float64) []float64 {
	var thresholds []float64
	for t := min; t < max; t += step {
		thresholds = append(thresholds, t)
	}
	return thresholds
}

// ScoreQuantiles returns k candidate thresholds at evenly spaced
// empirical quantiles of the observed scores, clamped into [0, 1] so
// they are always valid sweep input. Quantile-placed candidates
// concentrate where scores actually fall instead of wasting sweep work
// on empty score ranges.
func ScoreQuantiles(instances []ScoredInstance, k int) ([]float64, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: quantile count %d, want at least 1", ErrInvalidArgument, k)
	}
	if len(instances) == 0 {
		return nil, fmt.Errorf("%w: empty instance set", ErrInvalidArgument)
	}

	scores := make([]float64, len(instances))
	for i, inst := range instances {
		scores[i] = inst.Score
	}
	sort.Float64s(scores)

	thresholds := make([]float64, k)
	for i := 1; i <= k; i++ {
		p := float64(i) / float64(k+1)
		q := stat.Quantile(p, stat.Empirical, scores, nil)
		thresholds[i-1] = clamp01(q)
	}

	return thresholds, nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
