package eval

import (
	"fmt"
	"math"
)

// AUC computes the area under the curve with the trapezoidal rule over
// consecutive point pairs. The signed areas are summed and the absolute
// value returned, so a curve traversed in decreasing-X order yields the
// same result.
func (c Curve) AUC() (float64, error) {
	if len(c) < 2 {
		return 0, fmt.Errorf("%w: area under a curve needs at least 2 points, got %d", ErrInsufficientData, len(c))
	}

	var area float64
	for i := 0; i < len(c)-1; i++ {
		area += (c[i+1].X - c[i].X) * (c[i].Y + c[i+1].Y) / 2
	}

	return math.Abs(area), nil
}
