// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jacobi provides a stabilized Jacobi iteration for solving dense
// linear systems that are not necessarily diagonally dominant.
package jacobi

import (
	"math"
	"time"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
)

// Solve solves the system of n linear equations
//  A*x = y,
// where A is a dense n×n matrix stored in row-major order and n is determined
// by the length of y.
//
// Before iterating, the diagonal of a private copy of A is augmented by the
// stabilizer vector (see Stabilizer) so that the iteration matrix becomes
// strictly diagonally dominant. Each sweep then computes
//  x_i = (y_i + s_i*xx_i - Σ_{k≠i} A_ik*xx_k) / (A_ii + s_i),
// where xx is the previous iterate and s is the stabilizer, so that a fixed
// point of the sweep solves the original system. The data reconstructed from
// the new iterate is compared with y in addition to the change in x, and the
// iteration stops when the largest relative change drops below
// settings.Tolerance.
//
// a and y are not modified. Convergence is not guaranteed for arbitrary
// matrices. If the iteration limit is reached, Solve returns
// ErrIterationLimit; if the iterate or the reconstructed data stop being
// finite, ErrNotFinite; if a stabilized diagonal entry is zero, a
// *SingularError. In all cases the returned Result holds the last iterate
// and the statistics. At least one sweep is always done.
//
// Tolerance should not be chosen smaller than the relative noise in y.
func Solve(a blas64.General, y []float64, settings Settings) (Result, error) {
	stats := Stats{StartTime: time.Now()}

	n := len(y)
	if a.Rows != n {
		panic("jacobi: mismatched dimensions")
	}
	checkSquare(a)
	if n == 0 {
		return Result{Stats: stats}, nil
	}

	defaultSettings(&settings)
	if settings.Tolerance < dlamchE || 1 <= settings.Tolerance {
		panic("jacobi: invalid tolerance")
	}
	if settings.MaxIterations < 0 {
		panic("jacobi: negative iteration limit")
	}

	w := workspace(a)
	s := stabilize(w)

	x := make([]float64, n)
	for i := 0; i < n; i++ {
		d := w.Data[i*w.Stride+i]
		if d == 0 {
			stats.Runtime = time.Since(stats.StartTime)
			return Result{X: x, Stats: stats}, &SingularError{Row: i}
		}
		x[i] = y[i] / d
	}

	err := iterate(w, s, y, x, settings, &stats)

	stats.Runtime = time.Since(stats.StartTime)
	return Result{
		X:             x,
		LowConfidence: err == nil && stats.Iterations == 1,
		Stats:         stats,
	}, err
}

func iterate(w blas64.General, s, y, x []float64, settings Settings, stats *Stats) error {
	n := len(x)
	ld := w.Stride
	bi := blas64.Implementation()

	first := 1
	if settings.ScanFirstRow {
		first = 0
	}

	xx := make([]float64, n)
	yy := make([]float64, n)
	for {
		copy(xx, x)

		// Jacobi sweep: only the previous iterate appears on the right.
		for i := 0; i < n; i++ {
			row := w.Data[i*ld : i*ld+n]
			off := floats.Dot(row[:i], xx[:i]) + floats.Dot(row[i+1:], xx[i+1:])
			x[i] = (y[i] + s[i]*xx[i] - off) / row[i]
		}

		// Model data of the unstabilized system.
		bi.Dgemv(blas.NoTrans, n, n, 1, w.Data, ld, x, 1, 0, yy, 1)
		stats.MatVec++
		for i, si := range s {
			yy[i] -= si * x[i]
		}

		var devmax float64
		for i := first; i < n; i++ {
			if xx[i] != 0 {
				devmax = math.Max(devmax, math.Abs(x[i]/xx[i]-1))
			}
			if y[i] != 0 {
				devmax = math.Max(devmax, math.Abs(yy[i]/y[i]-1))
			}
		}

		stats.Iterations++
		stats.Deviation = devmax
		stats.ResidualNorm = floats.Distance(yy, y, 2)

		// A NaN deviation compares false against any tolerance.
		if math.IsNaN(devmax) || !finite(x) || !finite(yy) {
			return ErrNotFinite
		}
		if devmax < settings.Tolerance {
			return nil
		}
		if stats.Iterations == settings.MaxIterations {
			return ErrIterationLimit
		}
	}
}

// workspace returns a contiguous copy of the n×n matrix a.
func workspace(a blas64.General) blas64.General {
	n := a.Rows
	w := blas64.General{
		Rows:   n,
		Cols:   n,
		Stride: n,
		Data:   make([]float64, n*n),
	}
	for i := 0; i < n; i++ {
		copy(w.Data[i*n:i*n+n], a.Data[i*a.Stride:i*a.Stride+n])
	}
	return w
}

func finite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

const dlamchE = 1.0 / (1 << 53)
