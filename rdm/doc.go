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

/*Package rdm implements spin-free N-particle reduced density matrices.

An RDM of order N is a dense tensor of rank 2N over the active orbitals, with
the indexes ordered (p1, q1, p2, q2, ..., pN, qN), so that

	G(p1,q1,...,pN,qN) = sum over spins <a+_p1 ... a+_pN a_qN ... a_q1>

and, in particular, the two-particle RDM is G(p,q,r,s) = <a+_p a+_r a_s a_q>.

RDMs can be dumped to, and read from, zstd-compressed text files.
*/
package rdm
