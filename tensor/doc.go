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

/*Package tensor implements a row-major dense tensor of arbitrary rank, and the
contraction of pairs of such tensors over any set of paired axes.

Contractions are carried out by permuting both operands into matrices and
multiplying them with gonum, so the heavy lifting is done by BLAS.
The tensors are used by goasd to store the gamma blocks (matrix elements
of operator strings between monomer states), the state coefficients and the
reduced density matrices.

*/
package tensor
