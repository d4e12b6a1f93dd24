package eval

import (
	"gonum.org/v1/gonum/floats"
)

// Point is one operating point on an evaluation curve.
type Point struct {
	X float64
	Y float64
}

// Curve is an ordered sequence of operating points with X increasing as
// the decision threshold relaxes. Built once per evaluation run and not
// mutated afterward.
type Curve []Point

// PrecisionRecallCurve sweeps the decision threshold over every distinct
// observed score, from most to least restrictive, and records
// (recall, precision) at each operating point.
//
// The most restrictive point classifies nothing positive; its precision
// is a 0/0 ratio and is clamped to 0 so the curve starts at (0, 0)
// instead of an undefined spike.
func PrecisionRecallCurve(instances []ScoredInstance) (Curve, error) {
	return buildCurve(instances, func(tp, fp, pos, _ int) Point {
		return Point{
			X: float64(tp) / float64(pos),
			Y: float64(tp) / float64(tp+fp),
		}
	})
}

// SensitivitySpecificityCurve sweeps the decision threshold over every
// distinct observed score and records (1 - specificity, sensitivity) at
// each operating point, so X grows as the threshold relaxes. The most
// restrictive point is (0, 0).
func SensitivitySpecificityCurve(instances []ScoredInstance) (Curve, error) {
	return buildCurve(instances, func(tp, fp, pos, neg int) Point {
		return Point{
			X: float64(fp) / float64(neg),
			Y: float64(tp) / float64(pos),
		}
	})
}

// buildCurve walks instances in descending score order, classifying
// score >= s positive at each distinct score s and emitting one point
// per distinct value once all ties are consumed.
func buildCurve(instances []ScoredInstance, point func(tp, fp, pos, neg int) Point) (Curve, error) {
	pos, neg, err := requireBothLabels(instances)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, len(instances))
	order := make([]int, len(instances))
	for i, inst := range instances {
		scores[i] = inst.Score
	}
	floats.Argsort(scores, order)

	// Most restrictive operating point: nothing predicted positive.
	curve := Curve{{X: 0, Y: 0}}

	tp, fp := 0, 0
	for i := len(order) - 1; i >= 0; i-- {
		if instances[order[i]].Label {
			tp++
		} else {
			fp++
		}
		if i > 0 && scores[i-1] == scores[i] {
			continue
		}
		curve = append(curve, point(tp, fp, pos, neg))
	}

	return curve, nil
}
