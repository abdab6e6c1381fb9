/*
 * vector.go, part of goasd.
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
	"math"
	"math/bits"

	asd "github.com/rmera/goasd"
	"gonum.org/v1/gonum/mat"
)

//largest number of active orbitals of one monomer.
const maxOrb = 63

//Vector is a block of states of one monomer, expanded in all the determinants with
//a given number of alpha and beta electrons. It implements asd.CIVector.
type Vector struct {
	norb   int
	key    asd.MonomerKey
	alpha  []uint64
	beta   []uint64
	aIndex map[uint64]int
	bIndex map[uint64]int
	coeffs *mat.Dense //nstates x ndet
}

//occStrings returns all the bit strings with n bits set among the lowest norb, in increasing order.
func occStrings(norb, n int) []uint64 {
	if n == 0 {
		return []uint64{0}
	}
	var ret []uint64
	limit := uint64(1) << uint(norb)
	for s := uint64(1)<<uint(n) - 1; s < limit; {
		ret = append(ret, s)
		//Gosper's hack: next integer with the same number of bits set.
		c := s & -s
		r := s + c
		s = (((r ^ s) >> 2) / c) | r
	}
	return ret
}

func index(s []uint64) map[uint64]int {
	ret := make(map[uint64]int, len(s))
	for i, v := range s {
		ret[v] = i
	}
	return ret
}

//Zeros returns a vector with nstates states, all coefficients zero.
func Zeros(key asd.MonomerKey, norb, nstates int) (*Vector, error) {
	if norb < 0 || norb > maxOrb {
		return nil, asd.NewError(fmt.Sprintf("%d active orbitals not supported", norb), "ci.Zeros")
	}
	if key.Nelea < 0 || key.Neleb < 0 || key.Nelea > norb || key.Neleb > norb {
		return nil, asd.NewError(fmt.Sprintf("can't place %d alpha and %d beta electrons in %d orbitals", key.Nelea, key.Neleb, norb), "ci.Zeros")
	}
	if nstates <= 0 {
		return nil, asd.NewError(fmt.Sprintf("invalid number of states %d", nstates), "ci.Zeros")
	}
	V := new(Vector)
	V.norb = norb
	V.key = key
	V.alpha = occStrings(norb, key.Nelea)
	V.beta = occStrings(norb, key.Neleb)
	V.aIndex = index(V.alpha)
	V.bIndex = index(V.beta)
	V.coeffs = mat.NewDense(nstates, len(V.alpha)*len(V.beta), nil)
	return V, nil
}

//New returns a vector with the given coefficients, one row per state and one column
//per determinant, in the order given by Det. coeffs is copied.
func New(key asd.MonomerKey, norb int, coeffs mat.Matrix) (*Vector, error) {
	r, c := coeffs.Dims()
	V, err := Zeros(key, norb, r)
	if err != nil {
		return nil, asd.ErrDecorate(err, "ci.New")
	}
	if c != V.NDet() {
		return nil, asd.NewError(fmt.Sprintf("%d coefficients per state given, %d determinants expected", c, V.NDet()), "ci.New")
	}
	V.coeffs.Copy(coeffs)
	return V, nil
}

//Term is one determinant of a state and its coefficient. Alpha and Beta are
//occupation strings, character i being '1' if orbital i is occupied, '0' otherwise.
type Term struct {
	Alpha string  `yaml:"alpha" json:"alpha"`
	Beta  string  `yaml:"beta" json:"beta"`
	C     float64 `yaml:"c" json:"c"`
}

//ParseOccupation converts an occupation string into a bit string.
func ParseOccupation(occ string) (uint64, error) {
	if len(occ) > maxOrb {
		return 0, asd.NewError(fmt.Sprintf("occupation string %q too long", occ), "ci.ParseOccupation")
	}
	var ret uint64
	for i, v := range occ {
		switch v {
		case '1':
			ret |= uint64(1) << uint(i)
		case '0':
		default:
			return 0, asd.NewError(fmt.Sprintf("invalid character %q in occupation string %q", v, occ), "ci.ParseOccupation")
		}
	}
	return ret, nil
}

//FromDeterminants builds a vector where state i is the linear combination states[i].
//Determinants not mentioned have zero coefficients. Repeated determinants add up.
func FromDeterminants(key asd.MonomerKey, norb int, states [][]Term) (*Vector, error) {
	V, err := Zeros(key, norb, len(states))
	if err != nil {
		return nil, asd.ErrDecorate(err, "ci.FromDeterminants")
	}
	for i, st := range states {
		for _, t := range st {
			a, err := ParseOccupation(t.Alpha)
			if err != nil {
				return nil, asd.ErrDecorate(err, "ci.FromDeterminants")
			}
			b, err := ParseOccupation(t.Beta)
			if err != nil {
				return nil, asd.ErrDecorate(err, "ci.FromDeterminants")
			}
			j, ok := V.Index(a, b)
			if !ok {
				return nil, asd.NewError(fmt.Sprintf("determinant %s/%s does not belong to %s with %d orbitals", t.Alpha, t.Beta, key, norb), "ci.FromDeterminants")
			}
			V.coeffs.Set(i, j, V.coeffs.At(i, j)+t.C)
		}
	}
	return V, nil
}

func (V *Vector) NOrb() int    { return V.norb }
func (V *Vector) NStates() int { r, _ := V.coeffs.Dims(); return r }
func (V *Vector) Nelea() int   { return V.key.Nelea }
func (V *Vector) Neleb() int   { return V.key.Neleb }

//Key returns the monomer key of the block.
func (V *Vector) Key() asd.MonomerKey { return V.key }

//NDet returns the number of determinants.
func (V *Vector) NDet() int {
	return len(V.alpha) * len(V.beta)
}

//Det returns the alpha and beta strings of determinant i.
func (V *Vector) Det(i int) (uint64, uint64) {
	nb := len(V.beta)
	return V.alpha[i/nb], V.beta[i%nb]
}

//Index returns the position of the determinant with the given strings, and
//false if the determinant is not in the space of the vector.
func (V *Vector) Index(alpha, beta uint64) (int, bool) {
	ia, ok := V.aIndex[alpha]
	if !ok {
		return -1, false
	}
	ib, ok := V.bIndex[beta]
	if !ok {
		return -1, false
	}
	return ia*len(V.beta) + ib, true
}

//Coeffs returns the coefficient matrix (states x determinants).
//It must not be modified.
func (V *Vector) Coeffs() *mat.Dense {
	return V.coeffs
}

//Set sets the coefficient of determinant det in state state.
func (V *Vector) Set(state, det int, c float64) {
	V.coeffs.Set(state, det, c)
}

//Normalize scales each state to unit norm. States with zero norm are left alone.
func (V *Vector) Normalize() {
	r, _ := V.coeffs.Dims()
	for i := 0; i < r; i++ {
		row := V.coeffs.RawRowView(i)
		n := mat.Norm(mat.NewVecDense(len(row), row), 2)
		if n == 0 {
			continue
		}
		for j := range row {
			row[j] /= n
		}
	}
}

//Orthonormalize replaces the states by an orthonormal set spanning the same space.
//It returns an error if the states are linearly dependent.
func (V *Vector) Orthonormalize() error {
	r, c := V.coeffs.Dims()
	if r > c {
		return asd.NewError(fmt.Sprintf("%d states can't be orthonormal in %d determinants", r, c), "Orthonormalize")
	}
	var qr mat.QR
	qr.Factorize(V.coeffs.T())
	var R mat.Dense
	qr.RTo(&R)
	for i := 0; i < r; i++ {
		if math.Abs(R.At(i, i)) < 1e-12 {
			return asd.NewError("linearly dependent states", "Orthonormalize")
		}
	}
	var Q mat.Dense
	qr.QTo(&Q)
	//Q is c x c, the first r columns span the states. Signs are fixed so
	//each new state has a positive overlap with the old one.
	for i := 0; i < r; i++ {
		s := 1.0
		if R.At(i, i) < 0 {
			s = -1.0
		}
		for j := 0; j < c; j++ {
			V.coeffs.Set(i, j, s*Q.At(j, i))
		}
	}
	return nil
}

//Overlap returns the matrix of overlaps <V_i|W_j>. Both vectors must span the same
//determinant space.
func (V *Vector) Overlap(W *Vector) (*mat.Dense, error) {
	if V.norb != W.norb || V.key.Nelea != W.key.Nelea || V.key.Neleb != W.key.Neleb {
		return nil, asd.NewError("vectors in different determinant spaces", "Overlap")
	}
	var ret mat.Dense
	ret.Mul(V.coeffs, W.coeffs.T())
	return &ret, nil
}

//parity returns -1 for odd n, 1 otherwise.
func parity(n int) float64 {
	if n&1 == 1 {
		return -1
	}
	return 1
}

//apply applies the operator o, acting on orbital orb, to the determinant (a, b).
//It returns the new determinant and the sign, or false if the result vanishes.
func apply(o asd.Op, orb int, a, b uint64) (uint64, uint64, float64, bool) {
	bit := uint64(1) << uint(orb)
	var sign float64
	if o.Alpha() {
		sign = parity(bits.OnesCount64(a & (bit - 1)))
		if o.Create() {
			if a&bit != 0 {
				return a, b, 0, false
			}
			a |= bit
		} else {
			if a&bit == 0 {
				return a, b, 0, false
			}
			a &^= bit
		}
		return a, b, sign, true
	}
	sign = parity(bits.OnesCount64(a) + bits.OnesCount64(b&(bit-1)))
	if o.Create() {
		if b&bit != 0 {
			return a, b, 0, false
		}
		b |= bit
	} else {
		if b&bit == 0 {
			return a, b, 0, false
		}
		b &^= bit
	}
	return a, b, sign, true
}
