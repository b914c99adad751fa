package stats

import "math"

// MinMaxScale rescales x into [0, 1]. A constant slice maps to 0. The
// minimum maps to exactly 0 and the maximum to exactly 1, even when the
// range exceeds the float64 limit.
func MinMaxScale(x []float64) []float64 {
	lo, hi := MinMax(x)
	return affine(x, lo, hi/2-lo/2)
}

// Standardize rescales x to zero mean and unit population variance.
// A constant slice maps to 0.
func Standardize(x []float64) []float64 {
	return affine(x, Mean(x), Std(x)/2)
}

// RobustScale centres x on its median and divides by its IQR.
// A slice with zero IQR maps to 0.
func RobustScale(x []float64) []float64 {
	q1, q3 := Quartiles(x)
	return affine(x, Median(x), q3/2-q1/2)
}

// affine computes (v - shift) / (2*half), or 0 when half is 0. Operands are
// halved before subtracting so finite inputs never overflow. NaN passes
// through.
func affine(x []float64, shift, half float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		switch {
		case math.IsNaN(v):
			out[i] = v
		case half != 0:
			out[i] = (v/2 - shift/2) / half
		default:
			out[i] = 0
		}
	}
	return out
}
