/*
 * assemble.go, part of goasd.
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
	"github.com/rmera/goasd/rdm"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

//ASD computes RDMs of adiabatic states of a dimer, expanded in dimer subspaces.
type ASD struct {
	subspaces []asd.DimerSubspace
	adiabats  mat.Matrix
	el        asd.Elementer
	o         *Options
	norbA     int
	norbB     int
	nelec     int
	rdms      []*rdm.RDM
	pairs     []Pair
	deviation float64
}

//New returns an ASD for the given subspaces and adiabats. The rows of adiabats are the product
//states of the subspaces, in order (see NewStateTensor), and its columns, the adiabatic states.
//el computes the monomer matrix elements. If o is nil, DefaultOptions() is used.
func New(subspaces []asd.DimerSubspace, adiabats mat.Matrix, el asd.Elementer, o *Options) (*ASD, error) {
	if len(subspaces) == 0 {
		return nil, asd.NewError("no dimer subspaces given", "assemble.New")
	}
	if adiabats == nil || el == nil {
		return nil, asd.NewError("nil adiabats or matrix element builder", "assemble.New")
	}
	if o == nil {
		o = DefaultOptions()
	}
	A := &ASD{subspaces: subspaces, adiabats: adiabats, el: el, o: o}
	first := subspaces[0]
	A.norbA = first.CI(asd.MonomerA).NOrb()
	A.norbB = first.CI(asd.MonomerB).NOrb()
	A.nelec = first.Nelec()
	tags := make(map[[2]int]int, len(subspaces))
	type block struct {
		key     asd.MonomerKey
		nstates int
	}
	blocks := [2]map[int]block{make(map[int]block), make(map[int]block)}
	for i, s := range subspaces {
		if s.CI(asd.MonomerA).NOrb() != A.norbA || s.CI(asd.MonomerB).NOrb() != A.norbB {
			return nil, asd.NewError(fmt.Sprintf("subspace %s has %d+%d active orbitals, expected %d+%d", s, s.CI(asd.MonomerA).NOrb(), s.CI(asd.MonomerB).NOrb(), A.norbA, A.norbB), "assemble.New")
		}
		if s.Nelec() != A.nelec {
			return nil, asd.NewError(fmt.Sprintf("subspace %s has %d electrons, expected %d", s, s.Nelec(), A.nelec), "assemble.New")
		}
		if j, ok := tags[s.Tags()]; ok {
			return nil, asd.NewError(fmt.Sprintf("subspaces %d and %d have the same tags %v", j, i, s.Tags()), "assemble.New")
		}
		tags[s.Tags()] = i
		//a monomer tag must always refer to the same block of states.
		for _, side := range []asd.Side{asd.MonomerA, asd.MonomerB} {
			b := block{key: s.Monomer(side), nstates: s.NStates(side)}
			if prev, ok := blocks[side][s.Tag(side)]; ok && prev != b {
				return nil, asd.NewError(fmt.Sprintf("monomer %s tag %d used for different states", side, s.Tag(side)), "assemble.New")
			}
			blocks[side][s.Tag(side)] = b
		}
	}
	if r, _ := adiabats.Dims(); r != Offsets(subspaces)[len(subspaces)] {
		return nil, asd.NewError(fmt.Sprintf("adiabats have %d rows, the subspaces span %d product states", r, Offsets(subspaces)[len(subspaces)]), "assemble.New")
	}
	return A, nil
}

//Nelec returns the number of active electrons of the dimer.
func (A *ASD) Nelec() int { return A.nelec }

//NOrb returns the number of active orbitals of the dimer, A's and B's.
func (A *ASD) NOrb() int { return A.norbA + A.norbB }

//Subspaces returns the dimer subspaces, in the order given to New.
func (A *ASD) Subspaces() []asd.DimerSubspace { return A.subspaces }

//Pairs returns the coupled pairs of the last computation.
func (A *ASD) Pairs() []Pair { return A.pairs }

//Deviation returns the largest deviation found by the consistency checks of the last computation.
func (A *ASD) Deviation() float64 { return A.deviation }

//RDM returns the n-particle RDM of the last computation, or nil if it was not computed.
func (A *ASD) RDM(n int) *rdm.RDM {
	if n < 1 || n > len(A.rdms) {
		return nil
	}
	return A.rdms[n-1]
}

//ComputeRDM computes the RDMs, up to the order in the options, of the adiabatic state istate.
//The results replace those of any previous computation.
func (A *ASD) ComputeRDM(istate int) error {
	st, err := NewStateTensor(A.adiabats, A.subspaces, istate)
	if err != nil {
		return asd.ErrDecorate(err, "ComputeRDM")
	}
	C := gamma.NewCoupler(A.el, A.o.MaxOrder())
	pairs, err := A.couple(C)
	if err != nil {
		return asd.ErrDecorate(err, "ComputeRDM")
	}
	half, err := HalfPass(C.Forest(), st, A.subspaces, istate)
	if err != nil {
		return asd.ErrDecorate(err, "ComputeRDM")
	}
	work, err := WorkPass(half, st, pairs, istate)
	if err != nil {
		return asd.ErrDecorate(err, "ComputeRDM")
	}
	B := NewBlocks(C.Forest(), work, A.norbA, A.norbB, A.o.MaxOrder())
	rdms, err := A.mapReduce(B, pairs)
	if err != nil {
		return asd.ErrDecorate(err, "ComputeRDM")
	}
	for _, r := range rdms {
		r.Symmetrize()
	}
	A.rdms = rdms
	A.pairs = pairs
	l := A.o.Log()
	if A.o.Verbose() > 0 {
		l.Printf("goasd: state %d: %d subspaces, %d coupled pairs, %d gamma blocks, %d worktensor blocks", istate, len(A.subspaces), len(pairs), C.Forest().Len(), work.Len())
	}
	if A.o.Verbose() > 1 {
		l.Printf("goasd:   coupled groups of subspaces: %v", A.Components())
		for _, p := range pairs {
			l.Printf("goasd:   %s", p)
		}
	}
	A.deviation = A.DebugRDM(st.Norm2(istate))
	return nil
}

//couple fills the gamma forest of C for every subspace with itself, then for every pair
//in the strict lower triangle, and returns the coupled pairs.
func (A *ASD) couple(C *gamma.Coupler) ([]Pair, error) {
	var ret []Pair
	add := func(bra, ket int) error {
		p, ok, err := C.CoupleBlocks(A.subspaces[bra], A.subspaces[ket])
		if err != nil || !ok {
			return err
		}
		if p.Swapped {
			bra, ket = ket, bra
		}
		ret = append(ret, Pair{Pair: p, BraIndex: bra, KetIndex: ket})
		return nil
	}
	for i := range A.subspaces {
		if err := add(i, i); err != nil {
			return nil, err
		}
	}
	for i := range A.subspaces {
		for j := 0; j < i; j++ {
			if err := add(j, i); err != nil {
				return nil, err
			}
		}
	}
	return ret, nil
}

func (A *ASD) newRDMs() []*rdm.RDM {
	ret := make([]*rdm.RDM, A.o.MaxOrder())
	for i := range ret {
		ret[i] = rdm.New(i+1, A.NOrb())
	}
	return ret
}

//mapReduce distributes the pairs among the goroutines, pair k going to goroutine k mod Cpus.
//Each goroutine accumulates its own RDMs, which are added in goroutine order at the end.
func (A *ASD) mapReduce(B *Blocks, pairs []Pair) ([]*rdm.RDM, error) {
	cpus := min(A.o.Cpus(), len(pairs))
	if cpus < 1 {
		return A.newRDMs(), nil
	}
	partial := make([][]*rdm.RDM, cpus)
	var g errgroup.Group
	for w := 0; w < cpus; w++ {
		w := w
		g.Go(func() error {
			local := A.newRDMs()
			for k := w; k < len(pairs); k += cpus {
				if err := B.AddPair(pairs[k], local); err != nil {
					return err
				}
			}
			partial[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	ret := partial[0]
	for _, p := range partial[1:] {
		for n, r := range p {
			if err := ret[n].Add(r); err != nil {
				return nil, err
			}
		}
	}
	return ret, nil
}
