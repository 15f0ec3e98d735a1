// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jacobi

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

type testCase struct {
	name string
	a    blas64.General
	want []float64
	y    []float64
}

// dominant returns a strictly diagonally dominant n×n system with positive
// entries whose solution is drawn from [1,2).
func dominant(n int, rnd *rand.Rand) testCase {
	a := blas64.General{
		Rows:   n,
		Cols:   n,
		Stride: n,
		Data:   make([]float64, n*n),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Data[i*n+j] = rnd.Float64()
		}
		a.Data[i*n+i] += float64(n)
	}
	want := make([]float64, n)
	for i := range want {
		want[i] = 1 + rnd.Float64()
	}
	return testCase{
		name: fmt.Sprintf("dominant n=%v", n),
		a:    a,
		want: want,
		y:    matVec(a, want),
	}
}

func matVec(a blas64.General, x []float64) []float64 {
	y := make([]float64, a.Rows)
	blas64.Implementation().Dgemv(blas.NoTrans, a.Rows, a.Cols, 1, a.Data, a.Stride, x, 1, 0, y, 1)
	return y
}

func general(n int, data ...float64) blas64.General {
	if len(data) != n*n {
		panic("bad test matrix")
	}
	return blas64.General{Rows: n, Cols: n, Stride: n, Data: data}
}

// equicorrelated returns an n×n system, n >= 2, with diagonal d and all
// off-diagonal entries c, where 0 <= d < c. The stabilized sweep multiplies
// the initial error by n*c/(d+(n-1)*c) > 1 each time, so the iteration
// diverges unless all components of the solution are equal.
func equicorrelated(n int, rnd *rand.Rand) testCase {
	c := 1 + rnd.Float64()
	d := rnd.Float64() / 2
	a := blas64.General{
		Rows:   n,
		Cols:   n,
		Stride: n,
		Data:   make([]float64, n*n),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Data[i*n+j] = c
		}
		a.Data[i*n+i] = d
	}
	want := make([]float64, n)
	for i := range want {
		want[i] = 1 + rnd.Float64()
	}
	return testCase{
		name: fmt.Sprintf("equicorrelated n=%v c=%.3f d=%.3f", n, c, d),
		a:    a,
		want: want,
		y:    matVec(a, want),
	}
}
