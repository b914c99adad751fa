// Package stats holds the descriptive statistics used by the preprocessing
// stages. Every function skips NaN entries, which is how missing cells are
// represented in numeric columns.
package stats

import (
	"math"
	"slices"
)

// Present returns the non-NaN values of x.
func Present(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	x = Present(x)
	if len(x) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	if math.IsInf(sum, 0) && Finite(x) {
		// the running sum overflowed; average scaled terms instead
		n := float64(len(x))
		sum = 0
		for _, v := range x {
			sum += v / n
		}
		return sum
	}
	return sum / float64(len(x))
}

// Finite reports whether x holds no infinite value. NaN entries are ignored.
func Finite(x []float64) bool {
	for _, v := range x {
		if math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Variance computes the population variance.
func Variance(x []float64) float64 {
	x = Present(x)
	n := float64(len(x))
	if n == 0 {
		return 0
	}
	mean := Mean(x)
	ss := 0.0
	for _, v := range x {
		d := v - mean
		ss += d * d
	}
	return ss / n
}

// Std computes the population standard deviation. When the squared
// deviations of finite values overflow, they are rescaled by the largest
// deviation first.
func Std(x []float64) float64 {
	variance := Variance(x)
	if !math.IsInf(variance, 1) || !Finite(x) {
		return math.Sqrt(variance)
	}
	x = Present(x)
	half := Mean(x) / 2
	dev := make([]float64, len(x))
	scale := 0.0
	for i, v := range x {
		dev[i] = v/2 - half
		scale = math.Max(scale, math.Abs(dev[i]))
	}
	ss := 0.0
	for _, d := range dev {
		r := d / scale
		ss += r * r
	}
	return 2 * scale * math.Sqrt(ss/float64(len(x)))
}

// MinMax returns the minimum and maximum values in the slice.
func MinMax(x []float64) (float64, float64) {
	x = Present(x)
	if len(x) == 0 {
		return 0, 0
	}
	lo, hi := x[0], x[0]
	for _, v := range x[1:] {
		if v < lo {
			lo = v
		} else if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Median returns the median value of the slice.
func Median(x []float64) float64 {
	return Percentile(x, 50)
}

// Mode returns the most frequent value; on a tie the value that reached the
// top count first wins.
func Mode[T comparable](x []T) T {
	var mode T
	counts := make(map[T]int, len(x))
	best := 0
	for _, v := range x {
		counts[v]++
		if counts[v] > best {
			best = counts[v]
			mode = v
		}
	}
	return mode
}

// Percentile returns the p-th percentile (0 <= p <= 100) using linear
// interpolation between closest ranks: rank = p/100 * (n-1).
func Percentile(x []float64, p float64) float64 {
	cp := Present(x)
	n := len(cp)
	if n == 0 {
		return math.NaN()
	}
	slices.Sort(cp)
	if p <= 0 {
		return cp[0]
	}
	if p >= 100 {
		return cp[n-1]
	}
	rank := p / 100 * float64(n-1)
	lower := int(rank)
	upper := lower + 1
	weight := rank - float64(lower)
	if weight == 0 || upper >= n || cp[lower] == cp[upper] {
		return cp[lower]
	}
	lo, hi := cp[lower], cp[upper]
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return lo + (hi-lo)*weight
	}
	// halves keep hi-lo finite for values near the float64 limits
	return (lo/2 + (hi/2-lo/2)*weight) * 2
}

// Quartiles returns the first and third quartiles.
func Quartiles(x []float64) (q1, q3 float64) {
	return Percentile(x, 25), Percentile(x, 75)
}
