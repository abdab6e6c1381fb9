/*
 * passes.go, part of goasd.
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
	"cmp"
	"fmt"

	asd "github.com/rmera/goasd"
	"github.com/rmera/goasd/gamma"
	"github.com/rmera/goasd/tensor"
)

//HalfKey identifies a half-transformed block: the monomer A bra tag, the ket subspace
//and the monomer A operator string.
type HalfKey struct {
	BraTag int
	Ket    int
	Op     asd.OpString
}

func (K HalfKey) Compare(o HalfKey) int {
	if c := cmp.Compare(K.BraTag, o.BraTag); c != 0 {
		return c
	}
	if c := cmp.Compare(K.Ket, o.Ket); c != 0 {
		return c
	}
	return cmp.Compare(K.Op, o.Op)
}

//WorkKey identifies a worktensor block: the bra and ket subspaces and the monomer
//A operator string.
type WorkKey struct {
	Bra int
	Ket int
	Op  asd.OpString
}

//byTag returns, for each monomer tag of side, the subspaces containing it.
func byTag(subspaces []asd.DimerSubspace, side asd.Side) map[int][]int {
	ret := make(map[int][]int)
	for i, s := range subspaces {
		t := s.Tag(side)
		ret[t] = append(ret[t], i)
	}
	return ret
}

//HalfPass contracts every monomer A gamma block (J', J, op), of shape [nA', nA, orb...],
//with the coefficients of state in each subspace whose A tag is J. The results, of shape
//[nA', orb..., nB], are keyed by (J', subspace, op).
func HalfPass(gf *gamma.Forest[gamma.Key], st *StateTensor, subspaces []asd.DimerSubspace, state int) (*gamma.Forest[HalfKey], error) {
	half := gamma.NewForest[HalfKey]()
	tags := byTag(subspaces, asd.MonomerA)
	for _, k := range gf.Keys(gamma.Key.Compare) {
		if k.Side != asd.MonomerA {
			continue
		}
		g := gf.Get(k)
		for _, i := range tags[k.Ket] {
			c := st.Block(state, i)
			if c == nil {
				return nil, asd.NewError(fmt.Sprintf("no coefficients for state %d in subspace %d", state, i), "HalfPass")
			}
			h, err := tensor.Contract(g, []int{1}, c, []int{0})
			if err != nil {
				return nil, asd.ErrDecorate(err, fmt.Sprintf("HalfPass %s %d-%d %s", k.Side, k.Bra, k.Ket, k.Op))
			}
			if err := half.Accumulate(HalfKey{BraTag: k.Bra, Ket: i, Op: k.Op}, h); err != nil {
				return nil, asd.ErrDecorate(err, "HalfPass")
			}
		}
	}
	return half, nil
}

//WorkPass contracts the half-transformed blocks with the coefficients of state in
//the bra subspace of every pair. The resulting worktensor blocks have shape
//[nB', orb..., nB].
func WorkPass(half *gamma.Forest[HalfKey], st *StateTensor, pairs []Pair, state int) (*gamma.Forest[WorkKey], error) {
	work := gamma.NewForest[WorkKey]()
	ops := make(map[[2]int][]asd.OpString)
	for _, k := range half.Keys(HalfKey.Compare) {
		t := [2]int{k.BraTag, k.Ket}
		ops[t] = append(ops[t], k.Op)
	}
	for _, p := range pairs {
		c := st.Block(state, p.BraIndex)
		if c == nil {
			return nil, asd.NewError(fmt.Sprintf("no coefficients for state %d in subspace %d", state, p.BraIndex), "WorkPass")
		}
		for _, op := range ops[[2]int{p.Bra.Tag(asd.MonomerA), p.KetIndex}] {
			k := WorkKey{Bra: p.BraIndex, Ket: p.KetIndex, Op: op}
			if work.Exists(k) {
				continue
			}
			w, err := tensor.Contract(c, []int{0}, half.Get(HalfKey{BraTag: p.Bra.Tag(asd.MonomerA), Ket: p.KetIndex, Op: op}), []int{0})
			if err != nil {
				return nil, asd.ErrDecorate(err, fmt.Sprintf("WorkPass %d-%d %s", p.BraIndex, p.KetIndex, op))
			}
			if err := work.Accumulate(k, w); err != nil {
				return nil, asd.ErrDecorate(err, "WorkPass")
			}
		}
	}
	return work, nil
}
