/*
 * keys.go, part of goasd.
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

import "fmt"

//Side identifies one of the two monomers of a dimer.
type Side int

const (
	MonomerA Side = 0
	MonomerB Side = 1
)

func (S Side) String() string {
	switch S {
	case MonomerA:
		return "A"
	case MonomerB:
		return "B"
	default:
		return fmt.Sprintf("Side(%d)", int(S))
	}
}

//Other returns the opposite monomer.
func (S Side) Other() Side {
	return 1 - S
}

//MonomerKey identifies a block of states of one monomer, and
//its electron content.
type MonomerKey struct {
	StateIndex int
	Nelea      int
	Neleb      int
}

//Nelec returns the total number of electrons.
func (M MonomerKey) Nelec() int {
	return M.Nelea + M.Neleb
}

func (M MonomerKey) String() string {
	return fmt.Sprintf("(S%d a%d b%d)", M.StateIndex, M.Nelea, M.Neleb)
}

//DimerSubspace is a product of a block of monomer-A states and a block of monomer-B states.
//The CI vectors are shared with the rest of the basis and must not be modified.
type DimerSubspace struct {
	keys [2]MonomerKey
	tags [2]int
	ci   [2]CIVector
}

//NewDimerSubspace returns a dimer subspace built from the given monomer blocks. tags[0] and tags[1]
//identify the A and B blocks, respectively, and must be unique for each block of a given monomer.
//It returns an error if the electron content of a CI vector does not agree with its key.
func NewDimerSubspace(a, b MonomerKey, tags [2]int, ciA, ciB CIVector) (DimerSubspace, error) {
	var ret DimerSubspace
	for i, v := range []struct {
		k  MonomerKey
		ci CIVector
	}{{a, ciA}, {b, ciB}} {
		if v.ci == nil {
			return ret, NewError(fmt.Sprintf("nil CI vector for monomer %s", Side(i)), "NewDimerSubspace")
		}
		if v.ci.Nelea() != v.k.Nelea || v.ci.Neleb() != v.k.Neleb {
			return ret, NewError(fmt.Sprintf("CI vector of monomer %s has %d/%d electrons, key %s", Side(i), v.ci.Nelea(), v.ci.Neleb(), v.k), "NewDimerSubspace")
		}
	}
	ret.keys = [2]MonomerKey{a, b}
	ret.tags = tags
	ret.ci = [2]CIVector{ciA, ciB}
	return ret, nil
}

//Monomer returns the key for the given side.
func (D DimerSubspace) Monomer(s Side) MonomerKey {
	return D.keys[s]
}

//Tag returns the tag of the monomer block on the given side.
func (D DimerSubspace) Tag(s Side) int {
	return D.tags[s]
}

//Tags returns both tags, which together identify the subspace.
func (D DimerSubspace) Tags() [2]int {
	return D.tags
}

func (D DimerSubspace) CI(s Side) CIVector {
	return D.ci[s]
}

//NStates returns the number of states of the monomer block on the given side.
func (D DimerSubspace) NStates(s Side) int {
	return D.ci[s].NStates()
}

//Dim returns the number of product states in the subspace.
func (D DimerSubspace) Dim() int {
	return D.ci[0].NStates() * D.ci[1].NStates()
}

//Nelec returns the total number of electrons in the dimer.
func (D DimerSubspace) Nelec() int {
	return D.keys[0].Nelec() + D.keys[1].Nelec()
}

func (D DimerSubspace) String() string {
	return fmt.Sprintf("[%d:%s|%d:%s]", D.tags[0], D.keys[0], D.tags[1], D.keys[1])
}
