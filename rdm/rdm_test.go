/*
 * rdm_test.go, part of goasd.
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

package rdm

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/goasd/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//twoElectrons returns the 1- and 2-RDMs of one electron in each of two orbitals,
//with opposite spins.
func twoElectrons() (*RDM, *RDM) {
	g1 := New(1, 2)
	g1.Set(1, 0, 0)
	g1.Set(1, 1, 1)
	g2 := New(2, 2)
	g2.Set(1, 0, 0, 1, 1)
	g2.Set(1, 1, 1, 0, 0)
	g2.Set(-1, 0, 1, 1, 0)
	g2.Set(-1, 1, 0, 0, 1)
	return g1, g2
}

func random(n, norb int, seed int64) *RDM {
	r := rand.New(rand.NewSource(seed))
	R := New(n, norb)
	for i := range R.Tensor().Data() {
		R.Tensor().Data()[i] = r.NormFloat64()
	}
	return R
}

func TestNew(Te *testing.T) {
	R := New(3, 2)
	assert.Equal(Te, []int{2, 2, 2, 2, 2, 2}, R.Tensor().Shape())
	assert.Equal(Te, 3, R.Order())
	assert.Equal(Te, 2, R.NOrb())
	assert.Panics(Te, func() { New(0, 2) })
	_, err := FromTensor(1, tensor.Zeros(2, 3))
	assert.Error(Te, err)
	_, err = FromTensor(2, tensor.Zeros(2, 2))
	assert.Error(Te, err)
	F, err := FromTensor(1, tensor.Zeros(3, 3))
	require.NoError(Te, err)
	assert.Equal(Te, 3, F.NOrb())
	assert.Error(Te, R.Add(New(2, 2)))
}

func TestTraces(Te *testing.T) {
	g1, g2 := twoElectrons()
	assert.InDelta(Te, 2, g1.Trace(), 1e-12)
	assert.InDelta(Te, 2, g2.Trace(), 1e-12)
	p, err := g2.PartialTrace()
	require.NoError(Te, err)
	assert.True(Te, p.EqualApprox(g1, 1e-12), p.Tensor().String())
	_, err = g1.PartialTrace()
	assert.Error(Te, err)
	g3 := random(3, 2, 1)
	p3, err := g3.PartialTrace()
	require.NoError(Te, err)
	var want float64
	for k := 0; k < 2; k++ {
		want += g3.At(1, 0, 0, 1, k, k)
	}
	assert.InDelta(Te, want, p3.At(1, 0, 0, 1), 1e-12)
}

func TestSymmetrize(Te *testing.T) {
	R := New(2, 2)
	R.Set(1, 0, 1, 1, 0)
	assert.InDelta(Te, 1, R.MaxAsymmetry(), 1e-12)
	R.Symmetrize()
	assert.InDelta(Te, 0.5, R.At(0, 1, 1, 0), 1e-12)
	assert.InDelta(Te, 0.5, R.At(1, 0, 0, 1), 1e-12)
	assert.InDelta(Te, 1, R.Trace()+R.At(0, 1, 1, 0)+R.At(1, 0, 0, 1), 1e-12)
	for n := 1; n <= 3; n++ {
		G := random(n, 3, int64(n))
		G.Symmetrize()
		assert.Less(Te, G.MaxAsymmetry(), 1e-12, "order %d", n)
		H := G.Clone()
		H.Symmetrize()
		assert.True(Te, H.EqualApprox(G, 1e-12), "symmetrization is not idempotent for order %d", n)
	}
	_, g2 := twoElectrons()
	assert.Less(Te, g2.MaxAsymmetry(), 1e-12)
}

func TestNaturalOccupations(Te *testing.T) {
	g1 := New(1, 2)
	g1.Set(1, 0, 0)
	g1.Set(1, 1, 1)
	g1.Set(0.5, 0, 1)
	g1.Set(0.5, 1, 0)
	occ, err := g1.NaturalOccupations()
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{1.5, 0.5}, occ, 1e-10)
	_, g2 := twoElectrons()
	_, err = g2.NaturalOccupations()
	assert.Error(Te, err)
}

func TestDump(Te *testing.T) {
	R := random(2, 3, 7)
	var b bytes.Buffer
	require.NoError(Te, R.Write(&b))
	S, err := Read(&b)
	require.NoError(Te, err)
	assert.True(Te, S.EqualApprox(R, 0))
	name := filepath.Join(Te.TempDir(), "gamma2.rdm")
	T := New(2, 3)
	T.Set(0.25, 0, 1, 2, 0)
	T.Set(1e-9, 1, 1, 1, 1)
	require.NoError(Te, T.WriteFile(name, 1e-6))
	U, err := ReadFile(name)
	require.NoError(Te, err)
	assert.Equal(Te, 0.25, U.At(0, 1, 2, 0))
	assert.Equal(Te, 0.0, U.At(1, 1, 1, 1))
	_, err = Read(strings.NewReader("this is not a dump"))
	assert.Error(Te, err)
	_, err = ReadFile(filepath.Join(Te.TempDir(), "missing.rdm"))
	assert.Error(Te, err)
}

func TestJSON(Te *testing.T) {
	R := random(1, 4, 3)
	j, err := json.Marshal(R)
	require.NoError(Te, err)
	S := new(RDM)
	require.NoError(Te, json.Unmarshal(j, S))
	assert.True(Te, S.EqualApprox(R, 0))
	assert.Error(Te, json.Unmarshal([]byte(`{"order":2,"norb":2,"data":[1,2]}`), S))
}
