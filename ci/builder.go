/*
 * builder.go, part of goasd.
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
	"fmt"

	asd "github.com/rmera/goasd"
	"github.com/rmera/goasd/tensor"
)

//Builder computes matrix elements of operator strings between CI vectors.
//It implements asd.Elementer for *Vector operands.
type Builder struct{}

//Elements returns <bra_i|op|ket_j> for all states i, j and all orbital indexes of op.
//The result has shape [bra states, ket states, norb, norb, ...], with one orbital axis
//per operator of op, in the order of op.
func (B Builder) Elements(bra, ket asd.CIVector, op asd.OpString) (*tensor.Dense, error) {
	br, ok := bra.(*Vector)
	if !ok {
		return nil, asd.NewError(fmt.Sprintf("unsupported bra CI vector type %T", bra), "ci.Elements")
	}
	kt, ok := ket.(*Vector)
	if !ok {
		return nil, asd.NewError(fmt.Sprintf("unsupported ket CI vector type %T", ket), "ci.Elements")
	}
	if br.norb != kt.norb {
		return nil, asd.NewError(fmt.Sprintf("bra has %d orbitals, ket %d", br.norb, kt.norb), "ci.Elements")
	}
	t := op.Transfer()
	if br.key.Nelea != kt.key.Nelea+t[0] || br.key.Neleb != kt.key.Neleb+t[1] {
		return nil, asd.NewError(fmt.Sprintf("operator %s can't connect %s to %s", op, kt.key, br.key), "ci.Elements")
	}
	ops := op.Ops()
	L := len(ops)
	nbra := br.NStates()
	nket := kt.NStates()
	shape := []int{nbra, nket}
	//pow[k] is the stride of the orbital of operator k within an orbital block.
	pow := make([]int, L)
	block := 1
	for k := L - 1; k >= 0; k-- {
		pow[k] = block
		block *= kt.norb
		shape = append(shape, kt.norb)
	}
	ret := tensor.Zeros(shape...)
	data := ret.Data()
	cb := br.coeffs
	ck := kt.coeffs
	kcol := make([]float64, nket)
	var walk func(k int, a, b uint64, sign float64, flat int)
	walk = func(k int, a, b uint64, sign float64, flat int) {
		if k < 0 {
			j, ok := br.Index(a, b)
			if !ok {
				return
			}
			for i := 0; i < nbra; i++ {
				cbi := sign * cb.At(i, j)
				if cbi == 0 {
					continue
				}
				base := i * nket * block
				for l, c := range kcol {
					data[base+l*block+flat] += cbi * c
				}
			}
			return
		}
		for orb := 0; orb < kt.norb; orb++ {
			a2, b2, s, ok := apply(ops[k], orb, a, b)
			if !ok {
				continue
			}
			walk(k-1, a2, b2, sign*s, flat+orb*pow[k])
		}
	}
	//operators act on the ket from the right-most one.
	for d := 0; d < kt.NDet(); d++ {
		nonzero := false
		for l := range kcol {
			kcol[l] = ck.At(l, d)
			if kcol[l] != 0 {
				nonzero = true
			}
		}
		if !nonzero {
			continue
		}
		a, b := kt.Det(d)
		walk(L-1, a, b, 1, 0)
	}
	return ret, nil
}
