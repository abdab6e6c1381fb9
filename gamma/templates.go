/*
 * templates.go, part of goasd.
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
	"fmt"

	asd "github.com/rmera/goasd"
)

//canonical rank of each tag. Creators always go before annihilators, so
//reordering never produces contraction terms.
func rank(o asd.Op) int {
	switch o {
	case asd.CreateAlpha:
		return 0
	case asd.CreateBeta:
		return 1
	case asd.AnnihilateBeta:
		return 2
	default:
		return 3
	}
}

//Canonicalize reorders a normal-ordered operator string (all creators before all annihilators)
//into the canonical order. It returns the canonical string, the permutation perm such that
//canonical operator i is ops[perm[i]], and the sign of the reordering.
//It panics if ops is not normal-ordered.
func Canonicalize(ops []asd.Op) (asd.OpString, []int, float64) {
	seenAnnihilator := false
	for _, o := range ops {
		if o.Create() && seenAnnihilator {
			panic(fmt.Sprintf("goasd/gamma: operator string %s is not normal-ordered", asd.NewOpString(ops...)))
		}
		if !o.Create() {
			seenAnnihilator = true
		}
	}
	perm := make([]int, 0, len(ops))
	for r := 0; r < 4; r++ {
		for i, o := range ops {
			if rank(o) == r {
				perm = append(perm, i)
			}
		}
	}
	inversions := 0
	for i := range perm {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				inversions++
			}
		}
	}
	sign := 1.0
	if inversions%2 == 1 {
		sign = -1.0
	}
	sorted := make([]asd.Op, len(ops))
	for i, p := range perm {
		sorted[i] = ops[p]
	}
	return asd.NewOpString(sorted...), perm, sign
}

func canonicalString(ca, cb, db, da int) asd.OpString {
	ops := make([]asd.Op, 0, ca+cb+da+db)
	for i := 0; i < ca; i++ {
		ops = append(ops, asd.CreateAlpha)
	}
	for i := 0; i < cb; i++ {
		ops = append(ops, asd.CreateBeta)
	}
	for i := 0; i < db; i++ {
		ops = append(ops, asd.AnnihilateBeta)
	}
	for i := 0; i < da; i++ {
		ops = append(ops, asd.AnnihilateAlpha)
	}
	return asd.NewOpString(ops...)
}

//Templates returns the canonical operator strings that change the (alpha, beta) electron
//numbers of a monomer by delta and can be the part acting on that monomer of an element of
//an RDM of order up to maxOrder. The identity is included only for delta = (0,0).
func Templates(delta [2]int, maxOrder int) []asd.OpString {
	var ret []asd.OpString
	for ca := 0; ca <= maxOrder; ca++ {
		da := ca - delta[0]
		if da < 0 {
			continue
		}
		for cb := 0; cb <= maxOrder; cb++ {
			db := cb - delta[1]
			if db < 0 {
				continue
			}
			//an order-n element has n alpha+beta particles, each with one creator
			//and one annihilator of the same spin.
			if max(ca, da)+max(cb, db) > maxOrder {
				continue
			}
			ret = append(ret, canonicalString(ca, cb, db, da))
		}
	}
	return ret
}
