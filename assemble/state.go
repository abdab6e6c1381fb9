/*
 * state.go, part of goasd.
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

package assemble

import (
	"fmt"

	asd "github.com/rmera/goasd"
	"github.com/rmera/goasd/gamma"
	"github.com/rmera/goasd/tensor"
	"gonum.org/v1/gonum/mat"
)

//StateKey identifies the coefficients of one adiabatic state in one dimer subspace.
type StateKey struct {
	State    int
	Subspace int
}

//StateTensor holds the coefficients of adiabatic states, split by dimer subspace.
//The block for a subspace has shape [nA, nB], the numbers of monomer A and B states.
type StateTensor struct {
	blocks  *gamma.Forest[StateKey]
	offsets []int
	states  []int
}

//Offsets returns the first row of each subspace in an adiabat matrix for subspaces.
//The last element is the total dimension.
func Offsets(subspaces []asd.DimerSubspace) []int {
	ret := make([]int, len(subspaces)+1)
	for i, s := range subspaces {
		ret[i+1] = ret[i] + s.Dim()
	}
	return ret
}

//NewStateTensor takes the given states (columns) of adiabats, whose rows are the
//product basis ordered by subspace and, within a subspace, with the B state running
//fastest, and splits them into subspace blocks.
func NewStateTensor(adiabats mat.Matrix, subspaces []asd.DimerSubspace, states ...int) (*StateTensor, error) {
	offsets := Offsets(subspaces)
	r, c := adiabats.Dims()
	if r != offsets[len(subspaces)] {
		return nil, asd.NewError(fmt.Sprintf("adiabats have %d rows, the subspaces span %d product states", r, offsets[len(subspaces)]), "NewStateTensor")
	}
	S := &StateTensor{blocks: gamma.NewForest[StateKey](), offsets: offsets, states: states}
	for _, st := range states {
		if st < 0 || st >= c {
			return nil, asd.NewError(fmt.Sprintf("state %d requested, only %d available", st, c), "NewStateTensor")
		}
		for i, s := range subspaces {
			na, nb := s.NStates(asd.MonomerA), s.NStates(asd.MonomerB)
			b := tensor.Zeros(na, nb)
			for a := 0; a < na; a++ {
				for j := 0; j < nb; j++ {
					b.Set(adiabats.At(offsets[i]+a*nb+j, st), a, j)
				}
			}
			if err := S.blocks.Accumulate(StateKey{State: st, Subspace: i}, b); err != nil {
				return nil, asd.ErrDecorate(err, "NewStateTensor")
			}
		}
	}
	return S, nil
}

//Block returns the [nA, nB] coefficient block of state in the given subspace, or nil
//if the StateTensor doesn't contain it.
func (S *StateTensor) Block(state, subspace int) *tensor.Dense {
	return S.blocks.Get(StateKey{State: state, Subspace: subspace})
}

//States returns the adiabatic states in the StateTensor.
func (S *StateTensor) States() []int {
	return S.states
}

//Norm2 returns the squared norm of state.
func (S *StateTensor) Norm2(state int) float64 {
	var ret float64
	for i := 0; i < len(S.offsets)-1; i++ {
		b := S.Block(state, i)
		if b == nil {
			continue
		}
		for _, v := range b.Data() {
			ret += v * v
		}
	}
	return ret
}
