package eval

// ConfusionMatrix is a 2x2 contingency table of true labels against
// predictions at a fixed threshold.
type ConfusionMatrix struct {
	TruePositives  int
	FalsePositives int
	TrueNegatives  int
	FalseNegatives int
}

// Total returns the number of instances counted.
func (m ConfusionMatrix) Total() int {
	return m.TruePositives + m.FalsePositives + m.TrueNegatives + m.FalseNegatives
}

// Precision is the fraction of predicted positives that are truly
// positive. Zero denominator resolves to 0.
func (m ConfusionMatrix) Precision() float64 {
	return ratio(m.TruePositives, m.TruePositives+m.FalsePositives)
}

// Recall is the fraction of true positives predicted positive.
// Zero denominator resolves to 0.
func (m ConfusionMatrix) Recall() float64 {
	return ratio(m.TruePositives, m.TruePositives+m.FalseNegatives)
}

// Sensitivity is an alias for Recall.
func (m ConfusionMatrix) Sensitivity() float64 {
	return m.Recall()
}

// Specificity is the fraction of true negatives predicted negative.
// Zero denominator resolves to 0.
func (m ConfusionMatrix) Specificity() float64 {
	return ratio(m.TrueNegatives, m.TrueNegatives+m.FalsePositives)
}

// Accuracy is the fraction of all instances classified correctly.
func (m ConfusionMatrix) Accuracy() float64 {
	return ratio(m.TruePositives+m.TrueNegatives, m.Total())
}

// F1 is the harmonic mean of precision and recall; 0 when both are 0.
func (m ConfusionMatrix) F1() float64 {
	p, r := m.Precision(), m.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// ratio divides counts with the 0/0 -> 0 convention so derived rates
// stay total-orderable instead of propagating NaN.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// matrixAt cross-tabulates instances against the rule predicted = score > t.
func matrixAt(instances []ScoredInstance, t float64) ConfusionMatrix {
	var m ConfusionMatrix
	for _, inst := range instances {
		predicted := inst.Score > t
		switch {
		case inst.Label && predicted:
			m.TruePositives++
		case inst.Label && !predicted:
			m.FalseNegatives++
		case !inst.Label && predicted:
			m.FalsePositives++
		default:
			m.TrueNegatives++
		}
	}
	return m
}
