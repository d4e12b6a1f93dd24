package eval

import (
	"fmt"
	"math"
	"sync"
)

// ThresholdReport cross-tabulates true labels against predictions at a
// single decision threshold, with counts and within-true-label
// frequencies. Each frequency is the count divided by the number of
// instances sharing that true label; a label arm with zero instances
// reports 0 rather than NaN so reports stay comparable.
type ThresholdReport struct {
	Threshold float64
	Matrix    ConfusionMatrix

	TruePositiveRate  float64
	FalseNegativeRate float64
	FalsePositiveRate float64
	TrueNegativeRate  float64
}

// Sweeper computes ThresholdReports over caller-chosen thresholds.
type Sweeper struct {
	workers int
}

// SweepOption configures a Sweeper.
type SweepOption func(*Sweeper)

// WithWorkers sets the number of goroutines used to compute reports.
// Thresholds are independent and read-only over the shared instance
// set, so results are identical at any worker count.
func WithWorkers(n int) SweepOption {
	return func(s *Sweeper) {
		s.workers = n
	}
}

// NewSweeper creates a Sweeper with the given options.
func NewSweeper(opts ...SweepOption) *Sweeper {
	s := &Sweeper{workers: 1}

	for _, opt := range opts {
		opt(s)
	}

	if s.workers < 1 {
		s.workers = 1
	}

	return s
}

// Sweep runs a default sequential Sweeper over the thresholds.
func Sweep(instances []ScoredInstance, thresholds []float64) (map[float64]ThresholdReport, error) {
	return NewSweeper().Sweep(instances, thresholds)
}

// Sweep produces a report per threshold, keyed by threshold value.
// An instance is predicted positive when score > t. Duplicate and
// unsorted thresholds are tolerated; each is processed independently.
// Fails fast on an empty instance set, an empty threshold set, or a
// threshold outside [0, 1].
func (s *Sweeper) Sweep(instances []ScoredInstance, thresholds []float64) (map[float64]ThresholdReport, error) {
	if len(instances) == 0 {
		return nil, fmt.Errorf("%w: empty instance set", ErrInvalidArgument)
	}
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("%w: empty threshold set", ErrInvalidArgument)
	}
	for _, t := range thresholds {
		if math.IsNaN(t) || t < 0 || t > 1 {
			return nil, fmt.Errorf("%w: threshold %v outside [0, 1]", ErrInvalidArgument, t)
		}
	}

	reports := make(map[float64]ThresholdReport, len(thresholds))

	if s.workers == 1 {
		for _, t := range thresholds {
			reports[t] = reportAt(instances, t)
		}
		return reports, nil
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	work := make(chan float64)

	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range work {
				r := reportAt(instances, t)
				mu.Lock()
				reports[t] = r
				mu.Unlock()
			}
		}()
	}

	for _, t := range thresholds {
		work <- t
	}
	close(work)
	wg.Wait()

	return reports, nil
}

// PickThreshold sweeps the candidates plus the baseline threshold and
// returns the value with the highest true-negative rate among those
// whose true-positive rate is no lower than the baseline's. Ties prefer
// the higher true-positive rate, then the lower threshold. The baseline
// itself is returned when no candidate improves on it.
func (s *Sweeper) PickThreshold(instances []ScoredInstance, candidates []float64, baseline float64) (float64, error) {
	swept := make([]float64, 0, len(candidates)+1)
	swept = append(swept, candidates...)
	swept = append(swept, baseline)

	reports, err := s.Sweep(instances, swept)
	if err != nil {
		return 0, err
	}

	base := reports[baseline]
	best, bestReport := baseline, base

	for _, t := range candidates {
		r := reports[t]
		if r.TruePositiveRate < base.TruePositiveRate {
			continue
		}
		if betterOperatingPoint(r, t, bestReport, best) {
			best, bestReport = t, r
		}
	}

	return best, nil
}

func betterOperatingPoint(r ThresholdReport, t float64, cur ThresholdReport, curT float64) bool {
	if r.TrueNegativeRate != cur.TrueNegativeRate {
		return r.TrueNegativeRate > cur.TrueNegativeRate
	}
	if r.TruePositiveRate != cur.TruePositiveRate {
		return r.TruePositiveRate > cur.TruePositiveRate
	}
	return t < curT
}

// reportAt builds the contingency table and row-normalized frequencies
// for one threshold.
func reportAt(instances []ScoredInstance, t float64) ThresholdReport {
	m := matrixAt(instances, t)

	return ThresholdReport{
		Threshold:         t,
		Matrix:            m,
		TruePositiveRate:  ratio(m.TruePositives, m.TruePositives+m.FalseNegatives),
		FalseNegativeRate: ratio(m.FalseNegatives, m.TruePositives+m.FalseNegatives),
		FalsePositiveRate: ratio(m.FalsePositives, m.FalsePositives+m.TrueNegatives),
		TrueNegativeRate:  ratio(m.TrueNegatives, m.FalsePositives+m.TrueNegatives),
	}
}
