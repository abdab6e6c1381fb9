/*
 * forest.go, part of goasd.
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

package gamma

import (
	"github.com/rmera/goasd/tensor"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

//Forest is a sparse collection of dense blocks indexed by keys of type K.
type Forest[K comparable] struct {
	index  map[K]int
	blocks []*tensor.Dense
}

//NewForest returns an empty forest.
func NewForest[K comparable]() *Forest[K] {
	return &Forest[K]{index: make(map[K]int)}
}

//Exists returns true if there is a block for k.
func (F *Forest[K]) Exists(k K) bool {
	_, ok := F.index[k]
	return ok
}

//Get returns the block for k, or nil if there is none.
func (F *Forest[K]) Get(k K) *tensor.Dense {
	i, ok := F.index[k]
	if !ok {
		return nil
	}
	return F.blocks[i]
}

//Accumulate adds t to the block for k. If there is no such block, t itself
//is stored, and the forest takes ownership of it.
func (F *Forest[K]) Accumulate(k K, t *tensor.Dense) error {
	if i, ok := F.index[k]; ok {
		return F.blocks[i].Add(t)
	}
	F.index[k] = len(F.blocks)
	F.blocks = append(F.blocks, t)
	return nil
}

//Len returns the number of blocks.
func (F *Forest[K]) Len() int {
	return len(F.blocks)
}

//Keys returns all the keys, sorted with cmp.
func (F *Forest[K]) Keys(cmp func(a, b K) int) []K {
	k := maps.Keys(F.index)
	slices.SortFunc(k, cmp)
	return k
}
