/*
 * asd_test.go, part of goasd.
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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type civ struct{ a, b, n int }

func (c civ) NOrb() int    { return 2 }
func (c civ) NStates() int { return c.n }
func (c civ) Nelea() int   { return c.a }
func (c civ) Neleb() int   { return c.b }

func TestDimerSubspace(Te *testing.T) {
	ka := MonomerKey{StateIndex: 1, Nelea: 1, Neleb: 1}
	kb := MonomerKey{StateIndex: 0, Nelea: 2, Neleb: 0}
	d, err := NewDimerSubspace(ka, kb, [2]int{3, 4}, civ{1, 1, 2}, civ{2, 0, 3})
	require.NoError(Te, err)
	assert.Equal(Te, ka, d.Monomer(MonomerA))
	assert.Equal(Te, kb, d.Monomer(MonomerB))
	assert.Equal(Te, 4, d.Tag(MonomerB))
	assert.Equal(Te, [2]int{3, 4}, d.Tags())
	assert.Equal(Te, 6, d.Dim())
	assert.Equal(Te, 3, d.NStates(MonomerB))
	assert.Equal(Te, 4, d.Nelec())
	assert.Equal(Te, "[3:(S1 a1 b1)|4:(S0 a2 b0)]", d.String())
	assert.Equal(Te, MonomerB, MonomerA.Other())
	_, err = NewDimerSubspace(ka, kb, [2]int{0, 0}, civ{1, 1, 1}, civ{1, 1, 1})
	assert.Error(Te, err)
	_, err = NewDimerSubspace(ka, kb, [2]int{0, 0}, nil, civ{2, 0, 1})
	assert.Error(Te, err)
}

func TestOpString(Te *testing.T) {
	s := NewOpString(CreateAlpha, CreateBeta, AnnihilateBeta, AnnihilateAlpha)
	assert.Equal(Te, OpString("CaCbAbAa"), s)
	assert.Equal(Te, 4, s.Len())
	assert.Equal(Te, AnnihilateBeta, s.At(2))
	assert.Equal(Te, [2]int{0, 0}, s.Transfer())
	assert.Equal(Te, [2]int{2, -1}, NewOpString(CreateAlpha, CreateAlpha, AnnihilateBeta).Transfer())
	assert.Equal(Te, []Op{CreateAlpha, AnnihilateBeta}, OpString("CaAb").Ops())
	assert.Equal(Te, "1", OpString("").String())
	assert.Panics(Te, func() { OpString("Xa").At(0) })
	for _, o := range []Op{CreateAlpha, CreateBeta, AnnihilateAlpha, AnnihilateBeta} {
		assert.Equal(Te, o, NewOp(o.Create(), o.Spin()))
		assert.Equal(Te, o, o.Adjoint().Adjoint())
		assert.NotEqual(Te, o.Create(), o.Adjoint().Create())
	}
}

func TestErrors(Te *testing.T) {
	e := NewError("something failed", "inner")
	var err error = e
	err = ErrDecorate(err, "outer")
	var d Decorator
	require.True(Te, errors.As(err, &d))
	assert.Equal(Te, []string{"inner", "outer"}, d.Decorate(""))
	assert.Contains(Te, err.Error(), "something failed")
	assert.Contains(Te, err.Error(), "inner < outer")
	assert.True(Te, e.Critical())
	plain := errors.New("plain")
	assert.Equal(Te, plain, ErrDecorate(plain, "outer"))
	assert.Nil(Te, ErrDecorate(nil, "outer"))
}
