package exprtree

import "math"

// Point is a sample of an expression.
type Point struct {
	X, Y float64
}

// Finite reports whether the sample's value is a finite number.
func (p Point) Finite() bool {
	return !math.IsInf(p.Y, 0) && !math.IsNaN(p.Y)
}

// Sample evaluates e at n evenly spaced values of X from lo to hi inclusive.
// If n is 1, the only sample is at lo. If n is not positive, the result is
// nil. Samples where e is undefined have infinite or NaN Y.
func Sample(e *Expr, lo, hi float64, n int) []Point {
	if n <= 0 {
		return nil
	}
	pts := make([]Point, n)
	if n == 1 {
		pts[0] = Point{lo, e.Eval(lo)}
		return pts
	}
	step := (hi - lo) / float64(n-1)
	for i := range pts {
		x := lo + float64(i)*step
		if i == n-1 {
			// Avoid accumulated rounding at the end of the interval.
			x = hi
		}
		pts[i] = Point{x, e.Eval(x)}
	}
	return pts
}
