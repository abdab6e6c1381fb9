/*
 * ci_test.go, part of goasd.
 *
 * Copyright 2026 The goasd authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ci

import (
	"math"
	"math/rand"
	"testing"

	asd "github.com/rmera/goasd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

//random returns an orthonormal block of nstates states.
func random(Te *testing.T, key asd.MonomerKey, norb, nstates int, seed int64) *Vector {
	Te.Helper()
	V, err := Zeros(key, norb, nstates)
	require.NoError(Te, err)
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < nstates; i++ {
		for j := 0; j < V.NDet(); j++ {
			V.Set(i, j, r.Float64()-0.5)
		}
	}
	require.NoError(Te, V.Orthonormalize())
	return V
}

func TestStrings(Te *testing.T) {
	s := occStrings(4, 2)
	assert.Equal(Te, []uint64{3, 5, 6, 9, 10, 12}, s)
	assert.Equal(Te, []uint64{0}, occStrings(3, 0))
	assert.Equal(Te, []uint64{7}, occStrings(3, 3))
	V, err := Zeros(asd.MonomerKey{Nelea: 2, Neleb: 1}, 4, 1)
	require.NoError(Te, err)
	assert.Equal(Te, 24, V.NDet())
	for i := 0; i < V.NDet(); i++ {
		a, b := V.Det(i)
		j, ok := V.Index(a, b)
		assert.True(Te, ok)
		assert.Equal(Te, i, j)
	}
	_, err = Zeros(asd.MonomerKey{Nelea: 3}, 2, 1)
	assert.Error(Te, err)
}

func TestOrthonormalize(Te *testing.T) {
	V := random(Te, asd.MonomerKey{Nelea: 1, Neleb: 1}, 3, 4, 1)
	S, err := V.Overlap(V)
	require.NoError(Te, err)
	assert.True(Te, mat.EqualApprox(S, eye(4), 1e-12))
}

func eye(n int) *mat.Dense {
	ret := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		ret.Set(i, i, 1)
	}
	return ret
}

//TestSingleDeterminant checks the one- and two-body elements of a closed determinant.
func TestSingleDeterminant(Te *testing.T) {
	V, err := FromDeterminants(asd.MonomerKey{Nelea: 2}, 2, [][]Term{{{Alpha: "11", Beta: "00", C: 1}}})
	require.NoError(Te, err)
	var B Builder
	one, err := B.Elements(V, V, asd.NewOpString(asd.CreateAlpha, asd.AnnihilateAlpha))
	require.NoError(Te, err)
	assert.Equal(Te, []int{1, 1, 2, 2}, one.Shape())
	assert.InDelta(Te, 1.0, one.At(0, 0, 0, 0), 1e-14)
	assert.InDelta(Te, 1.0, one.At(0, 0, 1, 1), 1e-14)
	assert.InDelta(Te, 0.0, one.At(0, 0, 0, 1), 1e-14)
	two, err := B.Elements(V, V, asd.NewOpString(asd.CreateAlpha, asd.CreateAlpha, asd.AnnihilateAlpha, asd.AnnihilateAlpha))
	require.NoError(Te, err)
	assert.InDelta(Te, 1.0, two.At(0, 0, 0, 1, 1, 0), 1e-14)
	assert.InDelta(Te, -1.0, two.At(0, 0, 0, 1, 0, 1), 1e-14)
	assert.InDelta(Te, 0.0, two.At(0, 0, 0, 0, 0, 0), 1e-14)
	id, err := B.Elements(V, V, "")
	require.NoError(Te, err)
	assert.InDelta(Te, 1.0, id.At(0, 0), 1e-14)
}

//TestAnticommutation checks <a_q a+_p> = delta_pq <1> - <a+_p a_q> on random states.
func TestAnticommutation(Te *testing.T) {
	V := random(Te, asd.MonomerKey{Nelea: 2, Neleb: 1}, 4, 3, 7)
	var B Builder
	for _, spin := range []int{0, 1} {
		c := asd.NewOp(true, spin)
		a := asd.NewOp(false, spin)
		ca, err := B.Elements(V, V, asd.NewOpString(c, a))
		require.NoError(Te, err)
		ac, err := B.Elements(V, V, asd.NewOpString(a, c))
		require.NoError(Te, err)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				for p := 0; p < 4; p++ {
					for q := 0; q < 4; q++ {
						want := -ca.At(i, j, p, q)
						if p == q && i == j {
							want += 1
						}
						assert.InDelta(Te, want, ac.At(i, j, q, p), 1e-12)
					}
				}
			}
		}
	}
}

//TestNumberOperator checks that sum_p <a+_p a_p> counts the electrons.
func TestNumberOperator(Te *testing.T) {
	V := random(Te, asd.MonomerKey{Nelea: 2, Neleb: 2}, 3, 2, 3)
	var B Builder
	for spin, n := range []float64{2, 2} {
		e, err := B.Elements(V, V, asd.NewOpString(asd.NewOp(true, spin), asd.NewOp(false, spin)))
		require.NoError(Te, err)
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				var tr float64
				for p := 0; p < 3; p++ {
					tr += e.At(i, j, p, p)
				}
				want := 0.0
				if i == j {
					want = n
				}
				assert.InDelta(Te, want, tr, 1e-12)
			}
		}
	}
}

//TestTransfer checks the elements between blocks with different electron counts.
func TestTransfer(Te *testing.T) {
	ket, err := FromDeterminants(asd.MonomerKey{Nelea: 1}, 1, [][]Term{{{Alpha: "1", Beta: "0", C: 1}}})
	require.NoError(Te, err)
	bra, err := FromDeterminants(asd.MonomerKey{Neleb: 1}, 1, [][]Term{{{Alpha: "0", Beta: "1", C: 1}}})
	require.NoError(Te, err)
	var B Builder
	flip, err := B.Elements(bra, ket, asd.NewOpString(asd.CreateBeta, asd.AnnihilateAlpha))
	require.NoError(Te, err)
	assert.InDelta(Te, 1.0, flip.At(0, 0, 0, 0), 1e-14)
	_, err = B.Elements(bra, ket, asd.NewOpString(asd.CreateAlpha, asd.AnnihilateAlpha))
	assert.Error(Te, err)
	both, err := FromDeterminants(asd.MonomerKey{Nelea: 1, Neleb: 1}, 1, [][]Term{{{Alpha: "1", Beta: "1", C: 1}}})
	require.NoError(Te, err)
	//a+_b acting on the alpha electron has to pass it.
	cb, err := B.Elements(both, ket, asd.NewOpString(asd.CreateBeta))
	require.NoError(Te, err)
	assert.InDelta(Te, -1.0, cb.At(0, 0, 0), 1e-14)
	assert.False(Te, math.IsNaN(cb.At(0, 0, 0)))
}

func TestFromDeterminantsErrors(Te *testing.T) {
	_, err := FromDeterminants(asd.MonomerKey{Nelea: 1}, 2, [][]Term{{{Alpha: "11", Beta: "00", C: 1}}})
	assert.Error(Te, err)
	_, err = FromDeterminants(asd.MonomerKey{Nelea: 1}, 2, [][]Term{{{Alpha: "1x", Beta: "00", C: 1}}})
	assert.Error(Te, err)
}
