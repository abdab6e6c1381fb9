/*
 * graph_test.go, part of goasd.
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

package assemble

import (
	"testing"

	"github.com/rmera/goasd/coupling"
	"github.com/rmera/goasd/gamma"
	"github.com/stretchr/testify/assert"
)

func TestComponents(Te *testing.T) {
	subspaces, adiabats := dimer(Te)
	A := compute(Te, subspaces, adiabats, 0, 1, 2)
	assert.Equal(Te, [][]int{{0, 1, 2, 3, 4, 5, 6}}, A.Components())
	p := Pair{Pair: gamma.Pair{Bra: subspaces[1], Ket: subspaces[0], Coupling: coupling.AET}, BraIndex: 1, KetIndex: 0}
	diag := Pair{Pair: gamma.Pair{Bra: subspaces[2], Ket: subspaces[2], Coupling: coupling.Diagonal}, BraIndex: 2, KetIndex: 2}
	assert.Equal(Te, [][]int{{0, 1}, {2}}, Components(subspaces[:3], []Pair{p, diag}))
	g := CouplingGraph(subspaces[:3], []Pair{p, diag})
	w, ok := g.Weight(0, 1)
	assert.True(Te, ok)
	assert.Equal(Te, 1.0, w)
	assert.False(Te, g.HasEdgeBetween(1, 2))
}
