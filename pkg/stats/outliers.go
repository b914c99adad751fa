package stats

import "math"

// DefaultIQRMultiplier is Tukey's fence constant.
const DefaultIQRMultiplier = 1.5

// Fence is the closed interval outside of which a value is an outlier.
type Fence struct {
	Lower, Upper float64
}

// IQRFence computes [Q1 - k*IQR, Q3 + k*IQR] over the non-NaN values of x.
func IQRFence(x []float64, k float64) Fence {
	q1, q3 := Quartiles(x)
	iqr := q3 - q1
	return Fence{Lower: q1 - k*iqr, Upper: q3 + k*iqr}
}

// Outside reports whether v lies strictly outside the fence. NaN never does.
func (f Fence) Outside(v float64) bool {
	return v < f.Lower || v > f.Upper
}

// Clip bounds v to the fence. NaN passes through.
func (f Fence) Clip(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return math.Min(math.Max(v, f.Lower), f.Upper)
}

// OutlierIndices returns, in ascending order, the positions of x lying
// outside the k*IQR fence.
func OutlierIndices(x []float64, k float64) []int {
	f := IQRFence(x, k)
	out := []int{}
	for i, v := range x {
		if f.Outside(v) {
			out = append(out, i)
		}
	}
	return out
}

// ClipOutliers bounds every value of x to its k*IQR fence.
func ClipOutliers(x []float64, k float64) []float64 {
	f := IQRFence(x, k)
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = f.Clip(v)
	}
	return out
}
