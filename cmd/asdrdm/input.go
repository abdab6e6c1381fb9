/*
 * input.go, part of goasd.
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

package main

import (
	"fmt"
	"io"

	asd "github.com/rmera/goasd"
	"github.com/rmera/goasd/ci"
	"gopkg.in/yaml.v3"
	"gonum.org/v1/gonum/mat"
)

//Block is a block of states of one monomer, given as determinant expansions.
type Block struct {
	Tag        int         `yaml:"tag"`
	StateIndex int         `yaml:"state_index"`
	Nelea      int         `yaml:"nelea"`
	Neleb      int         `yaml:"neleb"`
	States     [][]ci.Term `yaml:"states"`
}

//Input is the YAML input of asdrdm.
type Input struct {
	//Active orbitals of monomers A and B.
	NOrb     [2]int `yaml:"norb"`
	Monomers struct {
		A []Block `yaml:"a"`
		B []Block `yaml:"b"`
	} `yaml:"monomers"`
	//Each subspace is given by the tags of its A and B blocks.
	Subspaces [][2]int `yaml:"subspaces"`
	//One row per product state, one column per adiabatic state.
	Adiabats       [][]float64 `yaml:"adiabats"`
	Orthonormalize bool        `yaml:"orthonormalize"`
}

//ReadInput decodes an Input from r. Unknown fields are an error.
func ReadInput(r io.Reader) (*Input, error) {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	in := new(Input)
	if err := d.Decode(in); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return in, nil
}

func (I *Input) blocks(side asd.Side) (map[int]*ci.Vector, map[int]asd.MonomerKey, error) {
	list := I.Monomers.A
	if side == asd.MonomerB {
		list = I.Monomers.B
	}
	vecs := make(map[int]*ci.Vector, len(list))
	keys := make(map[int]asd.MonomerKey, len(list))
	for _, b := range list {
		if _, ok := vecs[b.Tag]; ok {
			return nil, nil, fmt.Errorf("monomer %s: repeated tag %d", side, b.Tag)
		}
		k := asd.MonomerKey{StateIndex: b.StateIndex, Nelea: b.Nelea, Neleb: b.Neleb}
		v, err := ci.FromDeterminants(k, I.NOrb[side], b.States)
		if err != nil {
			return nil, nil, fmt.Errorf("monomer %s block %d: %w", side, b.Tag, err)
		}
		if I.Orthonormalize {
			if err := v.Orthonormalize(); err != nil {
				return nil, nil, fmt.Errorf("monomer %s block %d: %w", side, b.Tag, err)
			}
		}
		vecs[b.Tag] = v
		keys[b.Tag] = k
	}
	return vecs, keys, nil
}

//Build returns the dimer subspaces and the adiabat matrix described by the input.
func (I *Input) Build() ([]asd.DimerSubspace, *mat.Dense, error) {
	var vecs [2]map[int]*ci.Vector
	var keys [2]map[int]asd.MonomerKey
	for _, s := range []asd.Side{asd.MonomerA, asd.MonomerB} {
		var err error
		vecs[s], keys[s], err = I.blocks(s)
		if err != nil {
			return nil, nil, err
		}
	}
	subspaces := make([]asd.DimerSubspace, 0, len(I.Subspaces))
	for i, t := range I.Subspaces {
		a, okA := vecs[asd.MonomerA][t[0]]
		b, okB := vecs[asd.MonomerB][t[1]]
		if !okA || !okB {
			return nil, nil, fmt.Errorf("subspace %d refers to a missing block %v", i, t)
		}
		d, err := asd.NewDimerSubspace(keys[asd.MonomerA][t[0]], keys[asd.MonomerB][t[1]], t, a, b)
		if err != nil {
			return nil, nil, fmt.Errorf("subspace %d: %w", i, err)
		}
		subspaces = append(subspaces, d)
	}
	if len(I.Adiabats) == 0 || len(I.Adiabats[0]) == 0 {
		return nil, nil, fmt.Errorf("no adiabats given")
	}
	ncol := len(I.Adiabats[0])
	adiabats := mat.NewDense(len(I.Adiabats), ncol, nil)
	for i, row := range I.Adiabats {
		if len(row) != ncol {
			return nil, nil, fmt.Errorf("adiabat row %d has %d elements, expected %d", i, len(row), ncol)
		}
		adiabats.SetRow(i, row)
	}
	return subspaces, adiabats, nil
}
