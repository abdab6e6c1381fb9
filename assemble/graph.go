/*
 * graph.go, part of goasd.
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
	"math"
	"sort"

	asd "github.com/rmera/goasd"
	"github.com/rmera/goasd/coupling"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//Subspace is a dimer subspace as a node of the coupling graph.
type Subspace struct {
	asd.DimerSubspace
	Index int
}

func (S Subspace) ID() int64 {
	return int64(S.Index)
}

//Edge is a coupled pair of different subspaces. Its weight is the order of the coupling.
type Edge struct {
	F, T     Subspace
	Coupling coupling.Coupling
}

func (E Edge) From() graph.Node {
	return E.F
}

func (E Edge) To() graph.Node {
	return E.T
}

//couplings are not directional
func (E Edge) ReversedEdge() graph.Edge {
	E.F, E.T = E.T, E.F
	return E
}

func (E Edge) Weight() float64 {
	return float64(E.Coupling.Order())
}

//CouplingGraph returns the undirected graph with the subspaces as nodes and the
//coupled pairs of different subspaces as edges.
func CouplingGraph(subspaces []asd.DimerSubspace, pairs []Pair) *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i, s := range subspaces {
		g.AddNode(Subspace{DimerSubspace: s, Index: i})
	}
	for _, p := range pairs {
		if p.Diagonal() {
			continue
		}
		g.SetWeightedEdge(Edge{
			F:        Subspace{DimerSubspace: p.Bra, Index: p.BraIndex},
			T:        Subspace{DimerSubspace: p.Ket, Index: p.KetIndex},
			Coupling: p.Coupling,
		})
	}
	return g
}

//Components returns the indexes of the groups of subspaces connected by the pairs.
//Each group is sorted, and the groups are sorted by their first subspace.
func Components(subspaces []asd.DimerSubspace, pairs []Pair) [][]int {
	cc := topo.ConnectedComponents(CouplingGraph(subspaces, pairs))
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		group := make([]int, 0, len(c))
		for _, n := range c {
			group = append(group, int(n.ID()))
		}
		sort.Ints(group)
		ret = append(ret, group)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

//Components returns the groups of subspaces connected by the couplings of the last computation.
func (A *ASD) Components() [][]int {
	return Components(A.subspaces, A.pairs)
}
