/*
 * classify.go, part of goasd.
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

package coupling

import asd "github.com/rmera/goasd"

//transferKey is (AT.alpha, AT.beta, BT.alpha, BT.beta), with AT and BT the changes,
//bra minus ket, in the electron numbers of monomers A and B.
type transferKey [4]int

//twoBody covers the couplings that have nonzero elements in RDMs up to order 2.
var twoBody = map[transferKey]Coupling{
	{0, 0, 0, 0}:   Diagonal,
	{1, 0, -1, 0}:  AET,
	{-1, 0, 1, 0}:  InvAET,
	{0, 1, 0, -1}:  BET,
	{0, -1, 0, 1}:  InvBET,
	{1, -1, -1, 1}: ABFlip,
	{-1, 1, 1, -1}: BAFlip,
	{1, 1, -1, -1}: ABET,
	{-1, -1, 1, 1}: InvABET,
	{2, 0, -2, 0}:  AAET,
	{-2, 0, 2, 0}:  InvAAET,
	{0, 2, 0, -2}:  BBET,
	{0, -2, 0, 2}:  InvBBET,
}

//manyBody covers the couplings that have nonzero elements in RDMs up to order 4.
var manyBody = map[transferKey]Coupling{
	{0, 0, 0, 0}:   Diagonal,
	{1, 0, -1, 0}:  AET,
	{-1, 0, 1, 0}:  InvAET,
	{0, 1, 0, -1}:  BET,
	{0, -1, 0, 1}:  InvBET,
	{1, -1, -1, 1}: ABFlip,
	{-1, 1, 1, -1}: BAFlip,
	{1, 1, -1, -1}: ABET,
	{-1, -1, 1, 1}: InvABET,
	{2, 0, -2, 0}:  AAET,
	{-2, 0, 2, 0}:  InvAAET,
	{0, 2, 0, -2}:  BBET,
	{0, -2, 0, 2}:  InvBBET,

	{3, 0, -3, 0}:  AAAET,
	{-3, 0, 3, 0}:  InvAAAET,
	{0, 3, 0, -3}:  BBBET,
	{0, -3, 0, 3}:  InvBBBET,
	{2, 1, -2, -1}: AABET,
	{-2, -1, 2, 1}: InvAABET,
	{1, 2, -1, -2}: ABBET,
	{-1, -2, 1, 2}: InvABBET,
	{2, -1, -2, 1}: AETFlip,
	{-2, 1, 2, -1}: InvAETFlip,
	{-1, 2, 1, -2}: BETFlip,
	{1, -2, -1, 2}: InvBETFlip,

	{4, 0, -4, 0}:  AAAAET,
	{-4, 0, 4, 0}:  InvAAAAET,
	{0, 4, 0, -4}:  BBBBET,
	{0, -4, 0, 4}:  InvBBBBET,
	{3, 1, -3, -1}: AAABET,
	{-3, -1, 3, 1}: InvAAABET,
	{1, 3, -1, -3}: ABBBET,
	{-1, -3, 1, 3}: InvABBBET,
	{2, 2, -2, -2}: AABBET,
	{-2, -2, 2, 2}: InvAABBET,
	{3, -1, -3, 1}: AAETFlip,
	{-3, 1, 3, -1}: InvAAETFlip,
	{-1, 3, 1, -3}: BBETFlip,
	{1, -3, -1, 3}: InvBBETFlip,
	{2, -2, -2, 2}: AABBFlip,
	{-2, 2, 2, -2}: BBAAFlip,
}

func transfer(a, b, a2, b2 asd.MonomerKey) transferKey {
	return transferKey{a.Nelea - a2.Nelea, a.Neleb - a2.Neleb, b.Nelea - b2.Nelea, b.Neleb - b2.Neleb}
}

//ClassifyKeys returns the coupling between the bra subspace with monomers a, b and the ket
//subspace with monomers a2, b2, using the table for RDMs up to order 4.
//It returns None if the pair is not coupled.
func ClassifyKeys(a, b, a2, b2 asd.MonomerKey) Coupling {
	return manyBody[transfer(a, b, a2, b2)] //the zero value is None
}

//Classify returns the coupling between bra and ket for RDMs up to order 4.
func Classify(bra, ket asd.DimerSubspace) Coupling {
	return ClassifyKeys(bra.Monomer(asd.MonomerA), bra.Monomer(asd.MonomerB), ket.Monomer(asd.MonomerA), ket.Monomer(asd.MonomerB))
}

//ClassifyTwoBody returns the coupling between bra and ket for RDMs up to order 2.
//Pairs that are only coupled by three- or four-body operators give None.
func ClassifyTwoBody(bra, ket asd.DimerSubspace) Coupling {
	a, b := bra.Monomer(asd.MonomerA), bra.Monomer(asd.MonomerB)
	a2, b2 := ket.Monomer(asd.MonomerA), ket.Monomer(asd.MonomerB)
	return twoBody[transfer(a, b, a2, b2)]
}
