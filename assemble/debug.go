/*
 * debug.go, part of goasd.
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

package assemble

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

//DebugRDM checks the RDMs of the last computation against each other, and returns the largest
//deviation found. norm2 is the squared norm of the state. The checks are
//
//	Tr G1 = N norm2
//	sum_k Gn(..., k, k) = (N-n+1) G(n-1)
//
//Deviations larger than the tolerance in the options are logged.
func (A *ASD) DebugRDM(norm2 float64) float64 {
	l := A.o.Log()
	if len(A.rdms) == 0 {
		return 0
	}
	N := float64(A.nelec)
	dev := math.Abs(A.rdms[0].Trace() - N*norm2)
	if dev > A.o.DebugTol() {
		l.Printf("goasd: Warning: the trace of the 1-RDM is %g, expected %g", A.rdms[0].Trace(), N*norm2)
	}
	for n := 2; n <= len(A.rdms); n++ {
		pt, err := A.rdms[n-1].PartialTrace()
		if err != nil {
			//can't happen for n > 1
			panic(err.Error())
		}
		ref := A.rdms[n-2].Clone()
		ref.Scale(N - float64(n) + 1)
		d := floats.Distance(pt.Tensor().Data(), ref.Tensor().Data(), math.Inf(1))
		if d > A.o.DebugTol() {
			l.Printf("goasd: Warning: the partial trace of the %d-RDM deviates by %g from %g times the %d-RDM", n, d, N-float64(n)+1, n-1)
		}
		dev = math.Max(dev, d)
	}
	if A.o.Verbose() > 0 {
		l.Printf("goasd: RDM consistency checks: largest deviation %.3g", dev)
	}
	return dev
}
