/*
 * dense.go, part of goasd.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

//Dense is a row-major tensor of arbitrary rank.
//A rank-0 tensor holds a single element.
type Dense struct {
	shape   []int
	strides []int
	data    []float64
}

func size(shape []int) int {
	n := 1
	for _, v := range shape {
		if v < 0 {
			panic(fmt.Sprintf("goasd/tensor: negative extent in shape %v", shape))
		}
		n *= v
	}
	return n
}

func stridesFor(shape []int) []int {
	s := make([]int, len(shape))
	st := 1
	for i := len(shape) - 1; i >= 0; i-- {
		s[i] = st
		st *= shape[i]
	}
	return s
}

//Zeros returns a zero-filled tensor with the given extents.
func Zeros(shape ...int) *Dense {
	sh := make([]int, len(shape))
	copy(sh, shape)
	return &Dense{shape: sh, strides: stridesFor(sh), data: make([]float64, size(sh))}
}

//NewDense returns a tensor with the given extents, backed by data.
//data is not copied. It panics if len(data) does not match the shape.
func NewDense(data []float64, shape ...int) *Dense {
	sh := make([]int, len(shape))
	copy(sh, shape)
	if len(data) != size(sh) {
		panic(fmt.Sprintf("goasd/tensor: %d elements given for shape %v", len(data), sh))
	}
	return &Dense{shape: sh, strides: stridesFor(sh), data: data}
}

//Shape returns a copy of the extents of the tensor.
func (T *Dense) Shape() []int {
	ret := make([]int, len(T.shape))
	copy(ret, T.shape)
	return ret
}

//Dim returns the extent of axis i.
func (T *Dense) Dim(i int) int {
	return T.shape[i]
}

func (T *Dense) Rank() int {
	return len(T.shape)
}

//Len returns the total number of elements.
func (T *Dense) Len() int {
	return len(T.data)
}

//Data returns the underlying row-major slice. Changes to it
//are changes to the tensor.
func (T *Dense) Data() []float64 {
	return T.data
}

//Offset returns the position in the data slice of the element
//with the given indexes. It panics if an index is out of range.
func (T *Dense) Offset(idx ...int) int {
	if len(idx) != len(T.shape) {
		panic(fmt.Sprintf("goasd/tensor: %d indexes given for a rank %d tensor", len(idx), len(T.shape)))
	}
	off := 0
	for i, v := range idx {
		if v < 0 || v >= T.shape[i] {
			panic(fmt.Sprintf("goasd/tensor: index %d out of range in axis %d (extent %d)", v, i, T.shape[i]))
		}
		off += v * T.strides[i]
	}
	return off
}

func (T *Dense) At(idx ...int) float64 {
	return T.data[T.Offset(idx...)]
}

func (T *Dense) Set(v float64, idx ...int) {
	T.data[T.Offset(idx...)] = v
}

//AddAt adds v to the element with the given indexes.
func (T *Dense) AddAt(v float64, idx ...int) {
	T.data[T.Offset(idx...)] += v
}

func (T *Dense) Clone() *Dense {
	ret := Zeros(T.shape...)
	copy(ret.data, T.data)
	return ret
}

func (T *Dense) Scale(f float64) {
	for i := range T.data {
		T.data[i] *= f
	}
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if b[i] != v {
			return false
		}
	}
	return true
}

//Add accumulates A into the receiver. Both must have the same shape.
func (T *Dense) Add(A *Dense) error {
	return T.AddScaled(1, A)
}

//AddScaled accumulates f*A into the receiver. Both must have the same shape.
func (T *Dense) AddScaled(f float64, A *Dense) error {
	if !sameShape(T.shape, A.shape) {
		return &ShapeMismatch{Op: "AddScaled", A: T.Shape(), B: A.Shape(), deco: []string{"AddScaled"}}
	}
	for i, v := range A.data {
		T.data[i] += f * v
	}
	return nil
}

//Reshape returns a tensor sharing the data of the receiver with new extents.
func (T *Dense) Reshape(shape ...int) (*Dense, error) {
	if size(shape) != len(T.data) {
		return nil, &ShapeMismatch{Op: "Reshape", A: T.Shape(), B: shape, deco: []string{"Reshape"}}
	}
	return NewDense(T.data, shape...), nil
}

//Permute returns a new tensor whose axis i is the axis perm[i] of the receiver.
func (T *Dense) Permute(perm ...int) *Dense {
	if len(perm) != len(T.shape) {
		panic(fmt.Sprintf("goasd/tensor: permutation %v for a rank %d tensor", perm, len(T.shape)))
	}
	seen := make([]bool, len(perm))
	shape := make([]int, len(perm))
	srcStrides := make([]int, len(perm))
	for i, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			panic(fmt.Sprintf("goasd/tensor: invalid permutation %v", perm))
		}
		seen[p] = true
		shape[i] = T.shape[p]
		srcStrides[i] = T.strides[p]
	}
	ret := Zeros(shape...)
	if isIdentity(perm) {
		copy(ret.data, T.data)
		return ret
	}
	idx := make([]int, len(shape))
	src := 0
	for i := range ret.data {
		ret.data[i] = T.data[src]
		//odometer increment of the destination index, tracking the source offset.
		for ax := len(shape) - 1; ax >= 0; ax-- {
			idx[ax]++
			src += srcStrides[ax]
			if idx[ax] < shape[ax] {
				break
			}
			src -= idx[ax] * srcStrides[ax]
			idx[ax] = 0
		}
	}
	return ret
}

func isIdentity(perm []int) bool {
	for i, v := range perm {
		if i != v {
			return false
		}
	}
	return true
}

//Matrix returns a gonum matrix sharing the data of a rank-2 tensor.
func (T *Dense) Matrix() *mat.Dense {
	if len(T.shape) != 2 {
		panic(fmt.Sprintf("goasd/tensor: Matrix called on a rank %d tensor", len(T.shape)))
	}
	return mat.NewDense(T.shape[0], T.shape[1], T.data)
}

//FromMatrix copies a gonum matrix into a new rank-2 tensor.
func FromMatrix(M mat.Matrix) *Dense {
	r, c := M.Dims()
	ret := Zeros(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			ret.data[i*c+j] = M.At(i, j)
		}
	}
	return ret
}

//MaxAbs returns the largest absolute value among the elements.
func (T *Dense) MaxAbs() float64 {
	var m float64
	for _, v := range T.data {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

//EqualApprox returns true if both tensors have the same shape and
//their elements differ by no more than tol.
func (T *Dense) EqualApprox(A *Dense, tol float64) bool {
	if !sameShape(T.shape, A.shape) {
		return false
	}
	for i, v := range T.data {
		if math.Abs(v-A.data[i]) > tol {
			return false
		}
	}
	return true
}

func (T *Dense) String() string {
	return fmt.Sprintf("tensor%v %v", T.shape, T.data)
}
