// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jacobi

import (
	"errors"
	"fmt"
)

var (
	// ErrIterationLimit is returned when Settings.MaxIterations sweeps
	// did not reach the requested tolerance. Reordering the equations
	// (see ReverseRows) or relaxing the tolerance may help.
	ErrIterationLimit = errors.New("jacobi: iteration limit reached")

	// ErrNotFinite is returned when the iterate diverges to NaN or ±Inf.
	ErrNotFinite = errors.New("jacobi: iterate not finite")
)

// SingularError is returned when a diagonal entry of the stabilized
// matrix is zero. This happens for rows with no non-zero coefficient.
type SingularError struct {
	Row int
}

func (e *SingularError) Error() string {
	return fmt.Sprintf("jacobi: zero stabilized diagonal in row %d", e.Row)
}
