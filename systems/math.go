package systems

import "fmt"

// modInt returns a non-negative modulus.
func modInt(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func signInt(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// torusAbs returns the unsigned per-axis distance, taking the wrap when it
// is strictly shorter than half the axis.
func torusAbs(d, size int) int {
	d = absInt(d)
	if 2*d > size {
		d = size - d
	}
	return d
}

// torusDelta returns the signed per-axis shortest displacement.
func torusDelta(d, size int) int {
	if 2*absInt(d) > size {
		return -signInt(d) * (size - absInt(d))
	}
	return d
}

// mustf panics when an internal invariant is broken. These indicate logic
// defects, not bad input.
func mustf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("invariant violated: "+format, args...))
	}
}
