/*
 * doc.go, part of goasd.
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

/*
Package asd contains the basic types of goasd, a library for the assembly of
reduced density matrices (RDMs) in the active space decomposition (ASD) method.

In ASD, the active space of a molecular dimer is split between two monomers,
A and B. The dimer wave function is expanded in products of monomer states,
which are grouped in dimer subspaces: blocks of monomer-A states with a given
number of alpha and beta electrons, times blocks of monomer-B states.
Two subspaces are coupled by the operator strings that take one into the
other, and the kind of coupling is fully determined by how many alpha and
beta electrons each monomer gains or loses.

This package provides the descriptors (MonomerKey, DimerSubspace), the
second-quantized operator tags (Op, OpString) and the interfaces through which
goasd consumes its collaborators: the monomer CI vectors and the routine
that computes matrix elements of operator strings between them.
The coupling classification lives in goasd/coupling, the gamma forest in
goasd/gamma and the RDM assembly in goasd/assemble.
*/
package asd
