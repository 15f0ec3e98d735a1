// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jacobi

import "time"

// DefaultMaxIterations is the iteration limit used when
// Settings.MaxIterations is zero.
const DefaultMaxIterations = 10000

// Settings holds various settings for
// solving a linear system.
type Settings struct {
	// Tolerance specifies the relative
	// accuracy of the final approximate
	// solution. Iteration stops when no
	// scanned component of the solution
	// or of the reconstructed data
	// changes by a relative amount of
	// Tolerance or more.
	// Tolerance must be smaller than one
	// and greater than the machine
	// epsilon. It should not be smaller
	// than the relative noise in the
	// data.
	// If it is zero, it will be set to
	// 1e-6.
	Tolerance float64

	// MaxIterations is the limit on the
	// number of sweeps.
	// If it is zero, it will be set to
	// DefaultMaxIterations.
	MaxIterations int

	// ScanFirstRow includes the first
	// equation in the convergence check.
	// By default the check covers rows
	// 1 to n-1 only, which leaves the
	// first component of the solution
	// unchecked.
	ScanFirstRow bool
}

// DefaultSettings returns the settings
// used for zero fields of Settings.
func DefaultSettings() Settings {
	return Settings{
		Tolerance:     1e-6,
		MaxIterations: DefaultMaxIterations,
	}
}

func defaultSettings(s *Settings) {
	if s.Tolerance == 0 {
		s.Tolerance = 1e-6
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = DefaultMaxIterations
	}
}

// Result holds the result of a stabilized Jacobi solve.
type Result struct {
	// X is the approximate solution.
	X []float64
	// LowConfidence is set when the
	// iteration converged after a single
	// sweep. The solution may then not be
	// unique at the given tolerance.
	LowConfidence bool
	// Stats holds the statistics of the
	// solve.
	Stats Stats
}

// Stats holds statistics about a stabilized Jacobi solve.
type Stats struct {
	// Iterations is the number of
	// completed sweeps.
	Iterations int
	// MatVec is the number of
	// matrix-vector products.
	MatVec int
	// Deviation is the largest relative
	// change seen in the last sweep.
	Deviation float64
	// ResidualNorm is the final norm of
	// y - A*x for the original matrix.
	ResidualNorm float64
	// StartTime is an approximate time
	// when the solve was started.
	StartTime time.Time
	// Runtime is an approximate duration
	// of the solve.
	Runtime time.Duration
}
