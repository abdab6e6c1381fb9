/*
 * contract.go, part of goasd.
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

package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//ShapeMismatch is returned when the extents of two operands are incompatible.
type ShapeMismatch struct {
	Op   string
	A, B []int
	deco []string
}

func (E *ShapeMismatch) Error() string {
	return fmt.Sprintf("goasd/tensor: shape mismatch in %s: %v vs %v", E.Op, E.A, E.B)
}

//Decorate adds the caller's information to the error and returns the
//decoration slice. An empty string just returns the current value.
func (E *ShapeMismatch) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//panicker is a function that may panic.
type panicker func()

//maybe recovers a panic of type mat.Error from fn and returns it as an error.
//Any other panic is re-panicked.
func maybe(fn panicker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case mat.Error:
				err = fmt.Errorf("goasd/tensor: error in gonum function: %s", e.Error())
			default:
				panic(r)
			}
		}
	}()
	fn()
	return err
}

//Contract contracts the axes axesA of a with the axes axesB of b, pairwise.
//The axes of the result are the free axes of a, in order, followed by the
//free axes of b. Contracting over no axes gives the outer product.
func Contract(a *Dense, axesA []int, b *Dense, axesB []int) (*Dense, error) {
	if len(axesA) != len(axesB) {
		return nil, &ShapeMismatch{Op: fmt.Sprintf("Contract axes %v %v", axesA, axesB), A: a.Shape(), B: b.Shape(), deco: []string{"Contract"}}
	}
	inA, err := axisSet(axesA, a.Rank())
	if err != nil {
		return nil, err
	}
	inB, err := axisSet(axesB, b.Rank())
	if err != nil {
		return nil, err
	}
	k := 1
	for i, ax := range axesA {
		if a.shape[ax] != b.shape[axesB[i]] {
			return nil, &ShapeMismatch{Op: fmt.Sprintf("Contract axes %v %v", axesA, axesB), A: a.Shape(), B: b.Shape(), deco: []string{"Contract"}}
		}
		k *= a.shape[ax]
	}
	permA := make([]int, 0, a.Rank())
	outShape := make([]int, 0, a.Rank()+b.Rank()-2*len(axesA))
	m := 1
	for i := 0; i < a.Rank(); i++ {
		if !inA[i] {
			permA = append(permA, i)
			outShape = append(outShape, a.shape[i])
			m *= a.shape[i]
		}
	}
	permA = append(permA, axesA...)
	permB := make([]int, 0, b.Rank())
	permB = append(permB, axesB...)
	n := 1
	for i := 0; i < b.Rank(); i++ {
		if !inB[i] {
			permB = append(permB, i)
			outShape = append(outShape, b.shape[i])
			n *= b.shape[i]
		}
	}
	ret := Zeros(outShape...)
	if m == 0 || n == 0 || k == 0 {
		return ret, nil
	}
	pa := a
	if !isIdentity(permA) {
		pa = a.Permute(permA...)
	}
	pb := b
	if !isIdentity(permB) {
		pb = b.Permute(permB...)
	}
	A := mat.NewDense(m, k, pa.data)
	B := mat.NewDense(k, n, pb.data)
	C := mat.NewDense(m, n, ret.data)
	if err := maybe(func() { C.Mul(A, B) }); err != nil {
		return nil, err
	}
	return ret, nil
}

func axisSet(axes []int, rank int) ([]bool, error) {
	ret := make([]bool, rank)
	for _, v := range axes {
		if v < 0 || v >= rank || ret[v] {
			return nil, fmt.Errorf("goasd/tensor: invalid axes %v for a rank %d tensor", axes, rank)
		}
		ret[v] = true
	}
	return ret, nil
}
