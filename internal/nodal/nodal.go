// Package nodal solves the small dense complex linear systems produced by
// nodal analysis: Y·v = i, with Y the node admittance matrix and i the
// source current vector.
package nodal

import (
	"errors"
	"math/cmplx"
)

// ErrSingular is returned when elimination cannot find a usable pivot.
// For physically valid component values the admittance matrix is always
// regular, so callers treat this as an internal fault.
var ErrSingular = errors.New("nodal: singular admittance matrix")

// Solve solves a·x = b in place by Gaussian elimination with partial
// pivoting and returns the solution vector. Both a and b are clobbered.
// a must be square and len(b) must match its dimension.
func Solve(a [][]complex128, b []complex128) ([]complex128, error) {
	n := len(a)

	for k := 0; k < n; k++ {
		// Pick the largest remaining magnitude in column k as the pivot.
		pivot := k
		best := cmplx.Abs(a[k][k])
		for r := k + 1; r < n; r++ {
			if m := cmplx.Abs(a[r][k]); m > best {
				best = m
				pivot = r
			}
		}
		if best == 0 {
			return nil, ErrSingular
		}
		if pivot != k {
			a[k], a[pivot] = a[pivot], a[k]
			b[k], b[pivot] = b[pivot], b[k]
		}

		for r := k + 1; r < n; r++ {
			if a[r][k] == 0 {
				continue
			}
			m := a[r][k] / a[k][k]
			a[r][k] = 0
			for c := k + 1; c < n; c++ {
				a[r][c] -= m * a[k][c]
			}
			b[r] -= m * b[k]
		}
	}

	// Back substitution.
	x := make([]complex128, n)
	for k := n - 1; k >= 0; k-- {
		sum := b[k]
		for c := k + 1; c < n; c++ {
			sum -= a[k][c] * x[c]
		}
		x[k] = sum / a[k][k]
	}

	return x, nil
}
