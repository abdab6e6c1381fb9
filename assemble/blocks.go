/*
 * blocks.go, part of goasd.
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
	"github.com/rmera/goasd/tensor"
)

//Pair is a coupled pair of dimer subspaces, with their positions in the subspace list.
type Pair struct {
	gamma.Pair
	BraIndex int
	KetIndex int
}

//Diagonal returns true if the bra and the ket are the same subspace.
func (P Pair) Diagonal() bool {
	return P.BraIndex == P.KetIndex
}

func (P Pair) String() string {
	return fmt.Sprintf("%d<-%d %s", P.BraIndex, P.KetIndex, P.Coupling)
}

//Blocks builds the RDM contributions of coupled pairs from the gamma forest and
//the worktensor.
type Blocks struct {
	gamma *gamma.Forest[gamma.Key]
	work  *gamma.Forest[WorkKey]
	norbA int
	norbB int
	order int
}

//NewBlocks returns a builder of RDMs up to the given order, over the active orbitals
//of both monomers, A's first.
func NewBlocks(gf *gamma.Forest[gamma.Key], work *gamma.Forest[WorkKey], norbA, norbB, order int) *Blocks {
	return &Blocks{gamma: gf, work: work, norbA: norbA, norbB: norbB, order: order}
}

//DiagonalBlockRDM returns the 1- and 2-particle contributions of a subspace with itself.
//RDMs above the order of the builder are nil.
func (B *Blocks) DiagonalBlockRDM(p Pair) (*rdm.RDM, *rdm.RDM, error) {
	if !p.Diagonal() {
		panic(fmt.Sprintf("goasd/assemble: DiagonalBlockRDM called on the off-diagonal pair %s", p))
	}
	return B.pairRDMs(p, 1, 1)
}

//CoupleBlocksRDM returns the 1- and 2-particle contributions of a pair of different subspaces
//and its adjoint pair. The adjoint is represented by doubling the pair's contribution, which
//is exact once the RDM is symmetrized.
func (B *Blocks) CoupleBlocksRDM(p Pair) (*rdm.RDM, *rdm.RDM, error) {
	return B.pairRDMs(p, 1, 2)
}

//DiagonalBlockRDM34 is the 3- and 4-particle counterpart of DiagonalBlockRDM.
func (B *Blocks) DiagonalBlockRDM34(p Pair) (*rdm.RDM, *rdm.RDM, error) {
	if !p.Diagonal() {
		panic(fmt.Sprintf("goasd/assemble: DiagonalBlockRDM34 called on the off-diagonal pair %s", p))
	}
	return B.pairRDMs(p, 3, 1)
}

//CoupleBlocksRDM34 is the 3- and 4-particle counterpart of CoupleBlocksRDM.
func (B *Blocks) CoupleBlocksRDM34(p Pair) (*rdm.RDM, *rdm.RDM, error) {
	return B.pairRDMs(p, 3, 2)
}

func (B *Blocks) pairRDMs(p Pair, n int, weight float64) (*rdm.RDM, *rdm.RDM, error) {
	var ret [2]*rdm.RDM
	for i := range ret {
		if n+i > B.order {
			break
		}
		ret[i] = rdm.New(n+i, B.norbA+B.norbB)
		if err := B.addBlock(p, ret[i], weight); err != nil {
			return nil, nil, err
		}
	}
	return ret[0], ret[1], nil
}

//AddPair adds the contributions of p, up to the order of the builder, to rdms,
//where rdms[n-1] is the n-particle RDM. Diagonal pairs have weight 1, the others 2.
//Unlike the *BlockRDM methods, it allocates no intermediate RDMs.
func (B *Blocks) AddPair(p Pair, rdms []*rdm.RDM) error {
	if len(rdms) < B.order {
		return asd.NewError(fmt.Sprintf("%d RDMs given, %d needed", len(rdms), B.order), "AddPair")
	}
	weight := 2.0
	if p.Diagonal() {
		weight = 1
	}
	for n := 1; n <= B.order; n++ {
		r := rdms[n-1]
		if r.Order() != n || r.NOrb() != B.norbA+B.norbB {
			return asd.NewError(fmt.Sprintf("RDM %d has order %d and %d orbitals", n, r.Order(), r.NOrb()), "AddPair")
		}
		if err := B.addBlock(p, r, weight); err != nil {
			return asd.ErrDecorate(err, "AddPair")
		}
	}
	return nil
}

//parity returns -1 for odd n, 1 otherwise.
func parity(n int) float64 {
	if n&1 == 1 {
		return -1
	}
	return 1
}

//rdmAxis returns the RDM axis of the operator at position pos of
//a+_p1 ... a+_pn a_qn ... a_q1.
func rdmAxis(pos, n int) int {
	if pos < n {
		return 2 * pos
	}
	return 2*(2*n-1-pos) + 1
}

//addBlock adds to out weight times the contribution of the pair to an RDM of the order of out.
//Every spin assignment of the n particles, and every way to place each of the 2n operators
//on monomer A or B such that A changes as the pair requires, is contracted and scattered.
//An element <A'B'|O|AB>, with |AB> = Phi_A Phi_B |0>, equals
//s <A'|O_A|A><B'|O_B|B>, where O_A and O_B keep the relative order of the operators of O,
//and s is the sign of moving the B operators of O to the right of the A operators
//times (-1)^(|O_B| N_A), N_A being the electrons of the ket A.
func (B *Blocks) addBlock(p Pair, out *rdm.RDM, weight float64) error {
	n := out.Order()
	delta := p.Transfer()
	nA := p.Ket.Monomer(asd.MonomerA).Nelec()
	cache := make(map[[2]asd.OpString]*tensor.Dense)
	ops := make([]asd.Op, 2*n)
	var posA, posB []int
	var opsA, opsB []asd.Op
	axes := make([]int, 0, 2*n)
	offsets := make([]int, 0, 2*n)
	for spins := 0; spins < 1<<n; spins++ {
		for k := 0; k < n; k++ {
			s := (spins >> k) & 1
			ops[k] = asd.NewOp(true, s)
			ops[2*n-1-k] = asd.NewOp(false, s)
		}
		for mask := 0; mask < 1<<(2*n); mask++ {
			posA, posB, opsA, opsB = posA[:0], posB[:0], opsA[:0], opsB[:0]
			inversions := 0
			for k, o := range ops {
				if (mask>>k)&1 == 1 {
					posB = append(posB, k)
					opsB = append(opsB, o)
					continue
				}
				inversions += len(posB)
				posA = append(posA, k)
				opsA = append(opsA, o)
			}
			if asd.NewOpString(opsA...).Transfer() != delta {
				continue
			}
			sA, permA, signA := gamma.Canonicalize(opsA)
			sB, permB, signB := gamma.Canonicalize(opsB)
			blk, err := B.contract(p, sA, sB, cache)
			if err != nil {
				return err
			}
			axes, offsets = axes[:0], offsets[:0]
			for _, i := range permA {
				axes = append(axes, rdmAxis(posA[i], n))
				offsets = append(offsets, 0)
			}
			for _, i := range permB {
				axes = append(axes, rdmAxis(posB[i], n))
				offsets = append(offsets, B.norbA)
			}
			sign := weight * signA * signB * parity(inversions) * parity(len(opsB)*nA)
			scatter(out.Tensor(), blk, axes, offsets, sign)
		}
	}
	return nil
}

//contract returns the contraction of the worktensor block of the pair for the A string sA,
//[nB', orbA..., nB], with the monomer B gamma block for sB, [nB', nB, orbB...].
func (B *Blocks) contract(p Pair, sA, sB asd.OpString, cache map[[2]asd.OpString]*tensor.Dense) (*tensor.Dense, error) {
	ck := [2]asd.OpString{sA, sB}
	if r, ok := cache[ck]; ok {
		return r, nil
	}
	w := B.work.Get(WorkKey{Bra: p.BraIndex, Ket: p.KetIndex, Op: sA})
	if w == nil {
		return nil, asd.NewError(fmt.Sprintf("no worktensor block for pair %s and string %s", p, sA), "addBlock")
	}
	gk := gamma.Key{Side: asd.MonomerB, Bra: p.Bra.Tag(asd.MonomerB), Ket: p.Ket.Tag(asd.MonomerB), Op: sB}
	g := B.gamma.Get(gk)
	if g == nil {
		return nil, asd.NewError(fmt.Sprintf("no gamma block for pair %s and string %s", p, sB), "addBlock")
	}
	r, err := tensor.Contract(w, []int{0, w.Rank() - 1}, g, []int{0, 1})
	if err != nil {
		return nil, asd.ErrDecorate(err, fmt.Sprintf("addBlock %s %s %s", p, sA, sB))
	}
	cache[ck] = r
	return r, nil
}

//scatter adds f*blk to out, with axis k of blk going to axis axes[k] of out, shifted by offsets[k].
func scatter(out, blk *tensor.Dense, axes, offsets []int, f float64) {
	idx := make([]int, out.Rank())
	r := make([]int, blk.Rank())
	shape := blk.Shape()
	for _, v := range blk.Data() {
		if v != 0 {
			for k, a := range axes {
				idx[a] = r[k] + offsets[k]
			}
			out.AddAt(f*v, idx...)
		}
		for k := len(r) - 1; k >= 0; k-- {
			r[k]++
			if r[k] < shape[k] {
				break
			}
			r[k] = 0
		}
	}
}
