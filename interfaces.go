/*
 * interfaces.go, part of goasd.
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
	"io"
	"log"

	"github.com/rmera/goasd/tensor"
)

//CIVector is the read-only view of the CI coefficients of a block of states of one monomer.
type CIVector interface {
	//Number of active orbitals of the monomer.
	NOrb() int

	//Number of states in the block.
	NStates() int

	Nelea() int
	Neleb() int
}

//Elementer computes the matrix representation of an operator string between
//the states of two CI vectors of the same monomer.
type Elementer interface {

	//Elements returns a tensor of rank op.Len()+2. The first two axes run over
	//the states of bra and ket, respectively, and each of the remaining axes runs
	//over the orbitals on which the corresponding operator of op acts. For the
	//identity string, Elements returns the overlap between bra and ket states.
	Elements(bra, ket CIVector, op OpString) (*tensor.Dense, error)
}

//Logger is the sink for the messages produced during a calculation.
//*log.Logger implements it.
type Logger interface {
	Printf(format string, v ...interface{})
}

//Discard is a Logger that drops every message.
var Discard Logger = log.New(io.Discard, "", 0)

//Decorator is implemented by the errors of all goasd packages. Decorate adds
//the name of a function in the calling stack to the error, and returns all the decorations
//so far. An empty string just returns the current decorations.
type Decorator interface {
	error
	Decorate(string) []string
}
