/*
 * rdm.go, part of goasd.
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

import (
	"encoding/json"
	"fmt"
	"math"

	asd "github.com/rmera/goasd"
	"github.com/rmera/goasd/tensor"
	"gonum.org/v1/gonum/mat"
)

//RDM is a spin-free reduced density matrix of order n over norb orbitals.
type RDM struct {
	n    int
	norb int
	t    *tensor.Dense
}

//New returns a zero RDM of order n over norb orbitals.
func New(n, norb int) *RDM {
	if n < 1 || norb < 0 {
		panic(fmt.Sprintf("goasd/rdm: invalid order %d or orbital number %d", n, norb))
	}
	shape := make([]int, 2*n)
	for i := range shape {
		shape[i] = norb
	}
	return &RDM{n: n, norb: norb, t: tensor.Zeros(shape...)}
}

//FromTensor wraps t, which must have rank 2n and all extents equal, as an RDM of order n.
func FromTensor(n int, t *tensor.Dense) (*RDM, error) {
	if n < 1 || t.Rank() != 2*n {
		return nil, asd.NewError(fmt.Sprintf("a tensor of rank %d can't be an RDM of order %d", t.Rank(), n), "rdm.FromTensor")
	}
	norb := t.Dim(0)
	for i := 1; i < t.Rank(); i++ {
		if t.Dim(i) != norb {
			return nil, asd.NewError(fmt.Sprintf("RDM tensor with unequal extents %v", t.Shape()), "rdm.FromTensor")
		}
	}
	return &RDM{n: n, norb: norb, t: t}, nil
}

//Order returns the number of particles, N.
func (R *RDM) Order() int { return R.n }

//NOrb returns the number of orbitals, the extent of every axis.
func (R *RDM) NOrb() int { return R.norb }

//Tensor returns the underlying tensor. Changes to it are changes to the RDM.
func (R *RDM) Tensor() *tensor.Dense { return R.t }

//At returns the element G(p1,q1,...,pN,qN).
func (R *RDM) At(idx ...int) float64 { return R.t.At(idx...) }

//Set sets the element G(p1,q1,...,pN,qN) to v.
func (R *RDM) Set(v float64, idx ...int) { R.t.Set(v, idx...) }

//Clone returns a deep copy of the RDM.
func (R *RDM) Clone() *RDM {
	return &RDM{n: R.n, norb: R.norb, t: R.t.Clone()}
}

//Scale multiplies every element by f.
func (R *RDM) Scale(f float64) {
	R.t.Scale(f)
}

//Add accumulates A into the receiver.
func (R *RDM) Add(A *RDM) error {
	return R.AddScaled(1, A)
}

//AddScaled accumulates f*A into the receiver.
func (R *RDM) AddScaled(f float64, A *RDM) error {
	if A.n != R.n || A.norb != R.norb {
		return asd.NewError(fmt.Sprintf("can't add an RDM of order %d over %d orbitals to one of order %d over %d", A.n, A.norb, R.n, R.norb), "rdm.AddScaled")
	}
	return R.t.AddScaled(f, A.t)
}

//EqualApprox returns true if both RDMs have the same order and size, and
//their elements differ by no more than tol.
func (R *RDM) EqualApprox(A *RDM, tol float64) bool {
	return R.n == A.n && R.t.EqualApprox(A.t, tol)
}

//Trace returns the sum of the elements G(p1,p1,...,pN,pN). For the one-particle RDM,
//that is the number of electrons times the norm of the state.
func (R *RDM) Trace() float64 {
	var ret float64
	idx := make([]int, 2*R.n)
	var rec func(i int)
	rec = func(i int) {
		if i == R.n {
			ret += R.t.At(idx...)
			return
		}
		for p := 0; p < R.norb; p++ {
			idx[2*i], idx[2*i+1] = p, p
			rec(i + 1)
		}
	}
	rec(0)
	return ret
}

//PartialTrace returns the RDM of order N-1 obtained by tracing out the last particle.
//For an exact N-electron state, the result is (nelec-N+1) times the RDM of order N-1.
func (R *RDM) PartialTrace() (*RDM, error) {
	if R.n < 2 {
		return nil, asd.NewError("can't take the partial trace of a one-particle RDM", "PartialTrace")
	}
	ret := New(R.n-1, R.norb)
	src := R.t.Data()
	dst := ret.t.Data()
	block := R.norb * R.norb
	for i := range dst {
		var s float64
		for k := 0; k < R.norb; k++ {
			s += src[i*block+k*R.norb+k]
		}
		dst[i] = s
	}
	return ret, nil
}

//NaturalOccupations returns the eigenvalues of a one-particle RDM, largest first.
func (R *RDM) NaturalOccupations() ([]float64, error) {
	if R.n != 1 {
		return nil, asd.NewError(fmt.Sprintf("natural occupations requested for an RDM of order %d", R.n), "NaturalOccupations")
	}
	if R.norb == 0 {
		return nil, nil
	}
	S := mat.NewSymDense(R.norb, nil)
	for p := 0; p < R.norb; p++ {
		for q := p; q < R.norb; q++ {
			S.SetSym(p, q, 0.5*(R.t.At(p, q)+R.t.At(q, p)))
		}
	}
	var es mat.EigenSym
	if ok := es.Factorize(S, false); !ok {
		return nil, asd.NewError("eigendecomposition of the one-particle RDM failed", "NaturalOccupations")
	}
	vals := es.Values(nil)
	for i, j := 0, len(vals)-1; i < j; i, j = i+1, j-1 {
		vals[i], vals[j] = vals[j], vals[i]
	}
	return vals, nil
}

//MaxAbs returns the largest absolute value among the elements.
func (R *RDM) MaxAbs() float64 {
	return R.t.MaxAbs()
}

func (R *RDM) String() string {
	return fmt.Sprintf("RDM%d(%d orbitals, max %.3g)", R.n, R.norb, R.MaxAbs())
}

//MarshalJSON implements json.Marshaler.
func (R *RDM) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		Order int       `json:"order"`
		NOrb  int       `json:"norb"`
		Data  []float64 `json:"data"`
	}{
		Order: R.n,
		NOrb:  R.norb,
		Data:  R.t.Data(),
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

//UnmarshalJSON implements json.Unmarshaler.
func (R *RDM) UnmarshalJSON(b []byte) error {
	var a struct {
		Order int       `json:"order"`
		NOrb  int       `json:"norb"`
		Data  []float64 `json:"data"`
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if a.Order < 1 || a.NOrb < 0 || len(a.Data) != int(math.Pow(float64(a.NOrb), float64(2*a.Order))) {
		return asd.NewError(fmt.Sprintf("inconsistent RDM: order %d, %d orbitals, %d elements", a.Order, a.NOrb, len(a.Data)), "UnmarshalJSON")
	}
	r := New(a.Order, a.NOrb)
	copy(r.t.Data(), a.Data)
	*R = *r
	return nil
}
