/*
 * coupler.go, part of goasd.
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

package gamma

import (
	"cmp"
	"fmt"

	asd "github.com/rmera/goasd"
	"github.com/rmera/goasd/coupling"
)

//Key identifies a gamma block: the monomer, the tags of the bra and ket
//blocks of that monomer, and the operator string.
type Key struct {
	Side asd.Side
	Bra  int
	Ket  int
	Op   asd.OpString
}

//Compare orders keys by side, bra, ket and operator string.
func (K Key) Compare(o Key) int {
	if c := cmp.Compare(K.Side, o.Side); c != 0 {
		return c
	}
	if c := cmp.Compare(K.Bra, o.Bra); c != 0 {
		return c
	}
	if c := cmp.Compare(K.Ket, o.Ket); c != 0 {
		return c
	}
	if c := cmp.Compare(K.Op.Len(), o.Op.Len()); c != 0 {
		return c
	}
	return cmp.Compare(K.Op, o.Op)
}

//Pair is a coupled pair of dimer subspaces, in the canonical orientation
//of their coupling.
type Pair struct {
	Bra      asd.DimerSubspace
	Ket      asd.DimerSubspace
	Coupling coupling.Coupling
	//Swapped is true if the classification of the original (bra, ket)
	//was negative, so they were swapped.
	Swapped bool
}

//Transfer returns the change in the (alpha, beta) electron numbers of monomer A, bra relative to ket.
func (P Pair) Transfer() [2]int {
	return P.Coupling.Transfer()
}

//Coupler fills a gamma forest with the blocks needed to build RDMs up to a given order.
type Coupler struct {
	forest   *Forest[Key]
	el       asd.Elementer
	order    int
	classify coupling.Classifier
}

//NewCoupler returns a Coupler with an empty forest, which will use el to compute
//matrix elements, for RDMs up to order maxOrder (1 to 4).
func NewCoupler(el asd.Elementer, maxOrder int) *Coupler {
	if maxOrder < 1 || maxOrder > 4 {
		panic(fmt.Sprintf("goasd/gamma: RDMs of order %d not supported", maxOrder))
	}
	return &Coupler{forest: NewForest[Key](), el: el, order: maxOrder, classify: coupling.ForOrder(maxOrder)}
}

//Forest returns the gamma forest.
func (C *Coupler) Forest() *Forest[Key] {
	return C.forest
}

//Order returns the highest RDM order the forest is built for.
func (C *Coupler) Order() int {
	return C.order
}

//Insert computes the elements of op between the bra and ket CI vectors of the monomer
//side, and adds them to the block with key (side, braTag, ketTag, op).
func (C *Coupler) Insert(side asd.Side, bra asd.CIVector, braTag int, ket asd.CIVector, ketTag int, op asd.OpString) error {
	t, err := C.el.Elements(bra, ket, op)
	if err != nil {
		return asd.ErrDecorate(err, fmt.Sprintf("Insert %s %d %d %s", side, braTag, ketTag, op))
	}
	return C.forest.Accumulate(Key{Side: side, Bra: braTag, Ket: ketTag, Op: op}, t)
}

//insertAll inserts every string in ops for the given side of bra and ket,
//skipping the blocks that are already in the forest.
func (C *Coupler) insertAll(side asd.Side, bra, ket asd.DimerSubspace, ops []asd.OpString) error {
	for _, op := range ops {
		k := Key{Side: side, Bra: bra.Tag(side), Ket: ket.Tag(side), Op: op}
		if C.forest.Exists(k) {
			continue
		}
		if err := C.Insert(side, bra.CI(side), k.Bra, ket.CI(side), k.Ket, op); err != nil {
			return err
		}
	}
	return nil
}

//CoupleBlocks classifies the pair (bra, ket) and inserts in the forest the gamma blocks of
//both monomers needed to couple them. It returns the pair in canonical orientation, and false
//if the subspaces are not coupled at the order of the Coupler.
func (C *Coupler) CoupleBlocks(bra, ket asd.DimerSubspace) (Pair, bool, error) {
	c := C.classify(bra, ket)
	if c == coupling.None {
		return Pair{}, false, nil
	}
	can, swapped := c.Canonical()
	if swapped {
		bra, ket = ket, bra
	}
	if can.Order() > C.order {
		return Pair{}, false, nil
	}
	n := C.order
	var A, B []asd.OpString
	switch can {
	case coupling.Diagonal:
		A, B = Templates([2]int{0, 0}, n), Templates([2]int{0, 0}, n)
	case coupling.AET:
		A, B = Templates([2]int{1, 0}, n), Templates([2]int{-1, 0}, n)
	case coupling.BET:
		A, B = Templates([2]int{0, 1}, n), Templates([2]int{0, -1}, n)
	case coupling.ABFlip:
		A, B = Templates([2]int{1, -1}, n), Templates([2]int{-1, 1}, n)
	case coupling.ABET:
		A, B = Templates([2]int{1, 1}, n), Templates([2]int{-1, -1}, n)
	case coupling.AAET:
		A, B = Templates([2]int{2, 0}, n), Templates([2]int{-2, 0}, n)
	case coupling.BBET:
		A, B = Templates([2]int{0, 2}, n), Templates([2]int{0, -2}, n)
	case coupling.AAAET:
		A, B = Templates([2]int{3, 0}, n), Templates([2]int{-3, 0}, n)
	case coupling.BBBET:
		A, B = Templates([2]int{0, 3}, n), Templates([2]int{0, -3}, n)
	case coupling.AABET:
		A, B = Templates([2]int{2, 1}, n), Templates([2]int{-2, -1}, n)
	case coupling.ABBET:
		A, B = Templates([2]int{1, 2}, n), Templates([2]int{-1, -2}, n)
	case coupling.AETFlip:
		A, B = Templates([2]int{2, -1}, n), Templates([2]int{-2, 1}, n)
	case coupling.BETFlip:
		A, B = Templates([2]int{-1, 2}, n), Templates([2]int{1, -2}, n)
	case coupling.AAAAET:
		A, B = Templates([2]int{4, 0}, n), Templates([2]int{-4, 0}, n)
	case coupling.BBBBET:
		A, B = Templates([2]int{0, 4}, n), Templates([2]int{0, -4}, n)
	case coupling.AAABET:
		A, B = Templates([2]int{3, 1}, n), Templates([2]int{-3, -1}, n)
	case coupling.ABBBET:
		A, B = Templates([2]int{1, 3}, n), Templates([2]int{-1, -3}, n)
	case coupling.AABBET:
		A, B = Templates([2]int{2, 2}, n), Templates([2]int{-2, -2}, n)
	case coupling.AAETFlip:
		A, B = Templates([2]int{3, -1}, n), Templates([2]int{-3, 1}, n)
	case coupling.BBETFlip:
		A, B = Templates([2]int{-1, 3}, n), Templates([2]int{1, -3}, n)
	case coupling.AABBFlip:
		A, B = Templates([2]int{2, -2}, n), Templates([2]int{-2, 2}, n)
	default:
		panic(fmt.Sprintf("goasd/gamma: coupling %s between %s and %s has no operator templates", can, bra, ket))
	}
	if err := C.insertAll(asd.MonomerA, bra, ket, A); err != nil {
		return Pair{}, false, asd.ErrDecorate(err, "CoupleBlocks")
	}
	if err := C.insertAll(asd.MonomerB, bra, ket, B); err != nil {
		return Pair{}, false, asd.ErrDecorate(err, "CoupleBlocks")
	}
	return Pair{Bra: bra, Ket: ket, Coupling: can, Swapped: swapped}, true, nil
}
