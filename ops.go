/*
 * ops.go, part of goasd.
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

package asd

import (
	"fmt"
	"strings"
)

//Op is a second-quantized operator tag: creation or annihilation,
//of an alpha or a beta electron. The orbital is not part of the tag.
type Op uint8

const (
	CreateAlpha Op = iota
	CreateBeta
	AnnihilateAlpha
	AnnihilateBeta
)

//Create returns true for creation operators.
func (O Op) Create() bool {
	return O == CreateAlpha || O == CreateBeta
}

//Alpha returns true for operators acting on alpha electrons.
func (O Op) Alpha() bool {
	return O == CreateAlpha || O == AnnihilateAlpha
}

//Spin returns 0 for alpha and 1 for beta.
func (O Op) Spin() int {
	if O.Alpha() {
		return 0
	}
	return 1
}

//Adjoint returns the hermitian conjugate tag.
func (O Op) Adjoint() Op {
	switch O {
	case CreateAlpha:
		return AnnihilateAlpha
	case CreateBeta:
		return AnnihilateBeta
	case AnnihilateAlpha:
		return CreateAlpha
	default:
		return CreateBeta
	}
}

func (O Op) code() string {
	switch O {
	case CreateAlpha:
		return "Ca"
	case CreateBeta:
		return "Cb"
	case AnnihilateAlpha:
		return "Aa"
	case AnnihilateBeta:
		return "Ab"
	default:
		panic(fmt.Sprintf("goasd: invalid operator tag %d", uint8(O)))
	}
}

func (O Op) String() string {
	return O.code()
}

//NewOp returns the tag for a creation (if create is true) or annihilation
//operator of spin spin (0 alpha, 1 beta)
func NewOp(create bool, spin int) Op {
	var o Op
	if !create {
		o = AnnihilateAlpha
	}
	if spin != 0 {
		o++
	}
	return o
}

//OpString is an ordered list of operator tags, leftmost first. It is stored as a
//string, two characters per operator (i.e. "CaCbAbAa"), so it can be part of a map key.
//The empty OpString is the identity.
type OpString string

//NewOpString builds an OpString from the given tags.
func NewOpString(ops ...Op) OpString {
	var b strings.Builder
	for _, v := range ops {
		b.WriteString(v.code())
	}
	return OpString(b.String())
}

//Len returns the number of operators in the string.
func (S OpString) Len() int {
	return len(S) / 2
}

//At returns the i-th operator, counting from the left.
func (S OpString) At(i int) Op {
	var o Op
	switch S[2*i] {
	case 'C':
		o = CreateAlpha
	case 'A':
		o = AnnihilateAlpha
	default:
		panic(fmt.Sprintf("goasd: malformed operator string %q", string(S)))
	}
	if S[2*i+1] == 'b' {
		o++
	}
	return o
}

//Ops returns the operators as a slice.
func (S OpString) Ops() []Op {
	ret := make([]Op, S.Len())
	for i := range ret {
		ret[i] = S.At(i)
	}
	return ret
}

//Transfer returns the net change in the number of alpha and beta electrons
//caused by the operator string.
func (S OpString) Transfer() [2]int {
	var ret [2]int
	for i := 0; i < S.Len(); i++ {
		o := S.At(i)
		if o.Create() {
			ret[o.Spin()]++
		} else {
			ret[o.Spin()]--
		}
	}
	return ret
}

func (S OpString) String() string {
	if S == "" {
		return "1"
	}
	return string(S)
}
