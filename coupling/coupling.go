/*
 * coupling.go, part of goasd.
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

//Package coupling classifies pairs of dimer subspaces by the electron transfer
//that connects them.
//
//The classification only depends on the difference in the number of alpha and beta
//electrons on each monomer between the bra and the ket subspaces. A positive Coupling
//value is the canonical orientation of a transfer pattern, the negative value (the
//"Inv" variants) is the same pattern with bra and ket swapped.
package coupling

import (
	"fmt"

	asd "github.com/rmera/goasd"
)

//Coupling is the kind of interaction between a bra and a ket dimer subspace.
type Coupling int

//The transfer in parenthesis is the change in the number of (alpha, beta)
//electrons of monomer A, bra relative to ket. Monomer B always changes by
//the opposite amount.
const (
	None     Coupling = 0
	Diagonal Coupling = 1 //(0,0)

	AET    Coupling = 2 //(1,0)
	InvAET Coupling = -2

	BET    Coupling = 3 //(0,1)
	InvBET Coupling = -3

	ABFlip Coupling = 4 //(1,-1)
	BAFlip Coupling = -4

	ABET    Coupling = 5 //(1,1)
	InvABET Coupling = -5

	AAET    Coupling = 6 //(2,0)
	InvAAET Coupling = -6

	BBET    Coupling = 7 //(0,2)
	InvBBET Coupling = -7

	AAAET    Coupling = 8 //(3,0)
	InvAAAET Coupling = -8

	BBBET    Coupling = 9 //(0,3)
	InvBBBET Coupling = -9

	AABET    Coupling = 10 //(2,1)
	InvAABET Coupling = -10

	ABBET    Coupling = 11 //(1,2)
	InvABBET Coupling = -11

	AETFlip    Coupling = 12 //(2,-1)
	InvAETFlip Coupling = -12

	BETFlip    Coupling = 13 //(-1,2)
	InvBETFlip Coupling = -13

	AAAAET    Coupling = 14 //(4,0)
	InvAAAAET Coupling = -14

	BBBBET    Coupling = 15 //(0,4)
	InvBBBBET Coupling = -15

	AAABET    Coupling = 16 //(3,1)
	InvAAABET Coupling = -16

	ABBBET    Coupling = 17 //(1,3)
	InvABBBET Coupling = -17

	AABBET    Coupling = 18 //(2,2)
	InvAABBET Coupling = -18

	AAETFlip    Coupling = 19 //(3,-1)
	InvAAETFlip Coupling = -19

	BBETFlip    Coupling = 20 //(-1,3)
	InvBBETFlip Coupling = -20

	AABBFlip Coupling = 21 //(2,-2)
	BBAAFlip Coupling = -21
)

//highest canonical value
const maxCoupling = 21

var names = map[Coupling]string{
	None:     "none",
	Diagonal: "diagonal",
	AET:      "aET",
	BET:      "bET",
	ABFlip:   "abFlip",
	BAFlip:   "baFlip",
	ABET:     "abET",
	AAET:     "aaET",
	BBET:     "bbET",
	AAAET:    "aaaET",
	BBBET:    "bbbET",
	AABET:    "aabET",
	ABBET:    "abbET",
	AETFlip:  "aETflp",
	BETFlip:  "bETflp",
	AAAAET:   "aaaaET",
	BBBBET:   "bbbbET",
	AAABET:   "aaabET",
	ABBBET:   "abbbET",
	AABBET:   "aabbET",
	AAETFlip: "aaETflp",
	BBETFlip: "bbETflp",
	AABBFlip: "aabbFlip",
	BBAAFlip: "bbaaFlip",
}

func (C Coupling) String() string {
	if n, ok := names[C]; ok {
		return n
	}
	if C < 0 {
		if n, ok := names[-C]; ok {
			return "inv_" + n
		}
	}
	return fmt.Sprintf("Coupling(%d)", int(C))
}

//Known returns true if C is one of the defined couplings, None included.
func (C Coupling) Known() bool {
	return C >= -maxCoupling && C <= maxCoupling && C != -Diagonal
}

//Invert returns the coupling obtained by swapping bra and ket.
//Diagonal and None are their own inverses.
func (C Coupling) Invert() Coupling {
	if C == None || C == Diagonal {
		return C
	}
	return -C
}

//Canonical returns the positive variant of C, and true if C was negative,
//that is, if bra and ket have to be swapped to use the canonical variant.
func (C Coupling) Canonical() (Coupling, bool) {
	if C < 0 {
		return -C, true
	}
	return C, false
}

//Transfer returns the change in the number of (alpha, beta) electrons
//of monomer A, bra relative to ket. It panics for None or an unknown coupling:
//no such value can come out of a classifier.
func (C Coupling) Transfer() [2]int {
	can, swapped := C.Canonical()
	var t [2]int
	switch can {
	case Diagonal:
		t = [2]int{0, 0}
	case AET:
		t = [2]int{1, 0}
	case BET:
		t = [2]int{0, 1}
	case ABFlip:
		t = [2]int{1, -1}
	case ABET:
		t = [2]int{1, 1}
	case AAET:
		t = [2]int{2, 0}
	case BBET:
		t = [2]int{0, 2}
	case AAAET:
		t = [2]int{3, 0}
	case BBBET:
		t = [2]int{0, 3}
	case AABET:
		t = [2]int{2, 1}
	case ABBET:
		t = [2]int{1, 2}
	case AETFlip:
		t = [2]int{2, -1}
	case BETFlip:
		t = [2]int{-1, 2}
	case AAAAET:
		t = [2]int{4, 0}
	case BBBBET:
		t = [2]int{0, 4}
	case AAABET:
		t = [2]int{3, 1}
	case ABBBET:
		t = [2]int{1, 3}
	case AABBET:
		t = [2]int{2, 2}
	case AAETFlip:
		t = [2]int{3, -1}
	case BBETFlip:
		t = [2]int{-1, 3}
	case AABBFlip:
		t = [2]int{2, -2}
	default:
		panic(fmt.Sprintf("goasd/coupling: no transfer for coupling %s", C))
	}
	if swapped {
		t[0], t[1] = -t[0], -t[1]
	}
	return t
}

//Order returns the lowest RDM order with nonzero elements between subspaces
//with this coupling: the number of electrons moved between monomers, counting
//each spin separately.
func (C Coupling) Order() int {
	t := C.Transfer()
	return abs(t[0]) + abs(t[1])
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

//All returns every coupling except None, canonical variants first
//and in increasing order.
func All() []Coupling {
	ret := make([]Coupling, 0, 2*maxCoupling-1)
	for c := Diagonal; c <= maxCoupling; c++ {
		ret = append(ret, c)
	}
	for c := AET; c <= maxCoupling; c++ {
		ret = append(ret, -c)
	}
	return ret
}

//Classifier maps a bra and a ket subspace to the coupling between them.
type Classifier func(bra, ket asd.DimerSubspace) Coupling

//ForOrder returns the classifier to be used when building RDMs up to order n.
func ForOrder(n int) Classifier {
	if n <= 2 {
		return ClassifyTwoBody
	}
	return Classify
}
