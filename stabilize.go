// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jacobi

import (
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
)

// Stabilizer returns the vector s that Solve adds to the diagonal of the
// square matrix a. For each row,
//  s_i = Σ_{k≠i} |A_ik|,
// and if A_ii <= 0 it is replaced by 1.1*s_i + |A_ii|. a is not modified.
func Stabilizer(a blas64.General) []float64 {
	checkSquare(a)
	return stabilize(workspace(a))
}

// stabilize adds the stabilizer to the diagonal of w in place and returns it.
func stabilize(w blas64.General) []float64 {
	n := w.Rows
	s := make([]float64, n)
	for i := 0; i < n; i++ {
		row := w.Data[i*w.Stride : i*w.Stride+n]
		s[i] = floats.Norm(row[:i], 1) + floats.Norm(row[i+1:], 1)
		if row[i] <= 0 {
			s[i] = 1.1*s[i] + math.Abs(row[i])
		}
		row[i] += s[i]
	}
	return s
}

// ReverseRows returns copies of a and y with the order of the equations
// reversed, so that row i of the result is row n-1-i of the input. The
// reordered system has the same solution. Reordering can make Solve
// converge for matrices whose large entries lie on the anti-diagonal.
func ReverseRows(a blas64.General, y []float64) (blas64.General, []float64) {
	checkSquare(a)
	n := a.Rows
	if len(y) != n {
		panic("jacobi: mismatched dimensions")
	}
	r := blas64.General{
		Rows:   n,
		Cols:   n,
		Stride: n,
		Data:   make([]float64, n*n),
	}
	ry := make([]float64, n)
	for i := 0; i < n; i++ {
		j := n - 1 - i
		copy(r.Data[i*n:i*n+n], a.Data[j*a.Stride:j*a.Stride+n])
		ry[i] = y[j]
	}
	return r, ry
}

func checkSquare(a blas64.General) {
	n := a.Rows
	if a.Cols != n {
		panic("jacobi: matrix not square")
	}
	if n > 0 && (a.Stride < n || len(a.Data) < (n-1)*a.Stride+n) {
		panic("jacobi: insufficient matrix data")
	}
}
