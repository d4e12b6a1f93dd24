// Package eval evaluates binary classifiers under severe class imbalance.
//
// The evaluator consumes plain (label, score) pairs produced by any
// upstream model and derives precision-recall and sensitivity-specificity
// curves, trapezoidal areas under them, and per-threshold contingency
// reports. It holds no model state and performs no I/O.
package eval

import (
	"context"
	"fmt"
)

// ScoredInstance is one evaluation example: a true label and the score
// the classifier assigned to it.
type ScoredInstance struct {
	// Label is true for the rare/positive class (e.g. fraud).
	Label bool
	// Score is the classifier output in [0, 1]; higher means more
	// likely positive.
	Score float64
}

// Scorer produces a score in [0, 1] for a single feature vector.
// Any trained detector exposing per-sample prediction satisfies it.
type Scorer interface {
	PredictOne(sample []float64) (float64, error)
}

// ScoreLabeled runs the scorer over labeled samples and pairs each score
// with its true label. samples and labels must have equal length.
func ScoreLabeled(s Scorer, samples [][]float64, labels []bool) ([]ScoredInstance, error) {
	if len(samples) != len(labels) {
		return nil, fmt.Errorf("%w: %d samples for %d labels", ErrInvalidArgument, len(samples), len(labels))
	}

	instances := make([]ScoredInstance, len(samples))
	for i, sample := range samples {
		score, err := s.PredictOne(sample)
		if err != nil {
			return nil, fmt.Errorf("scoring sample %d: %w", i, err)
		}
		instances[i] = ScoredInstance{Label: labels[i], Score: score}
	}

	return instances, nil
}

// Collect drains scored instances from a channel until it is closed or
// the context is cancelled.
func Collect(ctx context.Context, in <-chan ScoredInstance) ([]ScoredInstance, error) {
	var instances []ScoredInstance

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case inst, ok := <-in:
			if !ok {
				return instances, nil
			}
			instances = append(instances, inst)
		}
	}
}

// countLabels returns the number of positive and negative instances.
func countLabels(instances []ScoredInstance) (pos, neg int) {
	for _, inst := range instances {
		if inst.Label {
			pos++
		} else {
			neg++
		}
	}
	return pos, neg
}

// requireBothLabels enforces the evaluation-set invariant: at least one
// positive and one negative instance, else ratios conditioned on a label
// are undefined.
func requireBothLabels(instances []ScoredInstance) (pos, neg int, err error) {
	pos, neg = countLabels(instances)
	if pos == 0 || neg == 0 {
		return 0, 0, fmt.Errorf("%w: need at least one positive and one negative instance (got %d positive, %d negative)",
			ErrInsufficientData, pos, neg)
	}
	return pos, neg, nil
}
