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

/*Package assemble builds N-particle reduced density matrices of a dimer from
an active-space decomposition of its wave function.

The dimer state is expanded in products of monomer states, grouped in dimer
subspaces. For a target adiabatic state, ComputeRDM:

	1. takes the adiabat coefficients of each subspace as an [nA, nB] block (the StateTensor),
	2. fills a gamma forest with the monomer transition blocks every coupled pair of subspaces needs,
	3. contracts the monomer A gamma blocks with the ket coefficients (the "half" pass)
	   and then with the bra coefficients (the worktensor pass),
	4. for every coupled pair, contracts the worktensor with the monomer B gamma blocks and
	   scatters the result into the RDMs, with the fermionic sign of each operator placement.

Pairs are distributed among goroutines, each of which accumulates its own partial RDMs.
The partial RDMs are added at the end, then symmetrized and checked for consistency.
*/
package assemble
