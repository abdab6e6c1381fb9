/*
 * tensor_test.go, part of goasd.
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
	"errors"
	"math"
	"testing"
)

func filled(shape ...int) *Dense {
	T := Zeros(shape...)
	for i := range T.data {
		T.data[i] = math.Sin(float64(i)+0.3) * float64(i%5+1)
	}
	return T
}

func TestPermute(Te *testing.T) {
	T := filled(2, 3, 4)
	P := T.Permute(2, 0, 1)
	if s := P.Shape(); s[0] != 4 || s[1] != 2 || s[2] != 3 {
		Te.Fatalf("wrong shape after permutation: %v", s)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				if P.At(k, i, j) != T.At(i, j, k) {
					Te.Errorf("element (%d,%d,%d) not permuted correctly", i, j, k)
				}
			}
		}
	}
}

//TestContract compares a two-axis contraction with explicit loops.
func TestContract(Te *testing.T) {
	a := filled(3, 2, 4)
	b := filled(4, 5, 3)
	c, err := Contract(a, []int{0, 2}, b, []int{2, 0})
	if err != nil {
		Te.Fatal(err)
	}
	if s := c.Shape(); len(s) != 2 || s[0] != 2 || s[1] != 5 {
		Te.Fatalf("wrong result shape %v", s)
	}
	for j := 0; j < 2; j++ {
		for l := 0; l < 5; l++ {
			var ref float64
			for i := 0; i < 3; i++ {
				for k := 0; k < 4; k++ {
					ref += a.At(i, j, k) * b.At(k, l, i)
				}
			}
			if math.Abs(ref-c.At(j, l)) > 1e-12 {
				Te.Errorf("element (%d,%d): %f instead of %f", j, l, c.At(j, l), ref)
			}
		}
	}
}

func TestContractFull(Te *testing.T) {
	a := filled(3, 4)
	c, err := Contract(a, []int{0, 1}, a, []int{0, 1})
	if err != nil {
		Te.Fatal(err)
	}
	if c.Rank() != 0 || c.Len() != 1 {
		Te.Fatalf("full contraction should give a scalar, got %v", c.Shape())
	}
	var ref float64
	for _, v := range a.Data() {
		ref += v * v
	}
	if math.Abs(c.Data()[0]-ref) > 1e-12 {
		Te.Errorf("squared norm %f instead of %f", c.Data()[0], ref)
	}
}

func TestContractShapeMismatch(Te *testing.T) {
	a := filled(3, 2)
	b := filled(4, 2)
	_, err := Contract(a, []int{0}, b, []int{0})
	var sm *ShapeMismatch
	if !errors.As(err, &sm) {
		Te.Fatalf("expected a ShapeMismatch, got %v", err)
	}
	if d := sm.Decorate(""); len(d) == 0 || d[0] != "Contract" {
		Te.Errorf("unexpected decoration %v", d)
	}
	if err := a.Add(b); err == nil {
		Te.Errorf("Add accepted tensors of different shapes")
	}
}

func TestAddScaled(Te *testing.T) {
	a := filled(2, 2)
	b := a.Clone()
	if err := b.AddScaled(-1, a); err != nil {
		Te.Fatal(err)
	}
	if b.MaxAbs() != 0 {
		Te.Errorf("a-a should vanish, got %v", b)
	}
	r, err := a.Reshape(4)
	if err != nil {
		Te.Fatal(err)
	}
	r.Set(7, 3)
	if a.At(1, 1) != 7 {
		Te.Errorf("Reshape should share the data")
	}
}
