/*
 * symmetrize.go, part of goasd.
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

import "math"

//permutations returns all the permutations of 0..n-1, the identity first.
func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	var ret [][]int
	for _, p := range permutations(n - 1) {
		for pos := len(p); pos >= 0; pos-- {
			q := make([]int, 0, n)
			q = append(q, p[:pos]...)
			q = append(q, n-1)
			q = append(q, p[pos:]...)
			ret = append(ret, q)
		}
	}
	return ret
}

//images calls fn with the offset of every image of idx under the group
//generated by particle permutations and the adjoint (p_i <-> q_i for all i).
func (R *RDM) images(idx []int, perms [][]int, fn func(off int)) {
	n := R.n
	for _, p := range perms {
		for adj := 0; adj < 2; adj++ {
			off := 0
			for i := 0; i < n; i++ {
				pp, qq := idx[2*p[i]], idx[2*p[i]+1]
				if adj == 1 {
					pp, qq = qq, pp
				}
				off = (off*R.norb+pp)*R.norb + qq
			}
			fn(off)
		}
	}
}

//walk calls fn with every multi-index of the RDM, in storage order.
func (R *RDM) walk(fn func(off int, idx []int)) {
	idx := make([]int, 2*R.n)
	total := R.t.Len()
	for off := 0; off < total; off++ {
		fn(off, idx)
		for k := len(idx) - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < R.norb {
				break
			}
			idx[k] = 0
		}
	}
}

//Symmetrize replaces the RDM by its average over all the particle permutations
//and the adjoint. The result is invariant under both, i.e. for the 2-RDM:
//G(p,q,r,s) = G(r,s,p,q) = G(q,p,s,r).
func (R *RDM) Symmetrize() {
	perms := permutations(R.n)
	d := R.t.Data()
	out := make([]float64, len(d))
	norm := 1 / float64(2*len(perms))
	R.walk(func(off int, idx []int) {
		var s float64
		R.images(idx, perms, func(o int) { s += d[o] })
		out[off] = s * norm
	})
	copy(d, out)
}

//MaxAsymmetry returns the largest difference between an element and any of its
//images under particle permutations and the adjoint. It is zero for a symmetrized RDM.
func (R *RDM) MaxAsymmetry() float64 {
	perms := permutations(R.n)
	d := R.t.Data()
	var ret float64
	R.walk(func(off int, idx []int) {
		R.images(idx, perms, func(o int) {
			ret = math.Max(ret, math.Abs(d[off]-d[o]))
		})
	})
	return ret
}
