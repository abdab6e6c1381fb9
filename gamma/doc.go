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

/*Package gamma builds and stores gamma tensors: the matrix elements of operator strings
between the states of two blocks of a monomer.

Forest is the sparse container. Blocks are dense tensors kept in an arena, indexed
through a map from a comparable key. Inserting under a key that already exists adds
to the stored block.

Coupler fills a Forest with the gamma tensors needed to couple a pair of dimer
subspaces. The operator strings it inserts depend only on the coupling between
the subspaces, and are written in a canonical order: alpha creators, beta creators,
beta annihilators, alpha annihilators.
*/
package gamma
