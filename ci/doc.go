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

/*Package ci implements CI vectors in the full determinant space of a monomer's
active orbitals, and the computation of matrix elements of operator strings between them.

A determinant is a pair of bit strings, one for the alpha and one for the beta electrons,
where bit i set means that active orbital i is occupied. The determinant is the product of
all alpha creation operators, in ascending orbital order, followed by all beta ones,
acting on the vacuum. All the fermionic signs follow from that convention.

Builder implements goasd's Elementer interface, so it can be used to fill a gamma forest.
*/
package ci
