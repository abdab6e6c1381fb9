/*
 * options.go, part of goasd.
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
	"runtime"

	asd "github.com/rmera/goasd"
)

//Options contains the options for an RDM computation.
type Options struct {
	maxOrder int
	cpus     int
	log      asd.Logger
	verbose  int
	debugTol float64 //largest deviation of the consistency checks that is not reported.
}

//DefaultOptions returns options to compute 1- and 2-particle RDMs
//using all logical CPUs, and without logging.
func DefaultOptions() *Options {
	r := new(Options)
	r.maxOrder = 2
	r.cpus = runtime.NumCPU()
	r.log = asd.Discard
	r.debugTol = 1e-8
	return r
}

//MaxOrder returns the highest order of the RDMs to be computed,
//and sets it to a new value (1 to 4), if given.
func (O *Options) MaxOrder(n ...int) int {
	if len(n) > 0 && n[0] >= 1 && n[0] <= 4 {
		O.maxOrder = n[0]
	}
	return O.maxOrder
}

//Returns the number of gorutines to be used,
//and sets it to a new value, if given.
func (O *Options) Cpus(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	return O.cpus
}

//Log returns the logging sink, and sets it to a new one, if given.
//A nil sink discards everything.
func (O *Options) Log(l ...asd.Logger) asd.Logger {
	if len(l) > 0 {
		O.log = l[0]
		if O.log == nil {
			O.log = asd.Discard
		}
	}
	return O.log
}

//Verbose returns the verbosity level, and sets it to a new value, if given.
//0 logs only failed consistency checks, 1 adds a summary of each computation,
//2 or more adds the coupled pairs.
func (O *Options) Verbose(v ...int) int {
	if len(v) > 0 && v[0] >= 0 {
		O.verbose = v[0]
	}
	return O.verbose
}

//DebugTol returns the tolerance for the consistency checks of the RDMs,
//and sets it to a new value, if given.
func (O *Options) DebugTol(tol ...float64) float64 {
	if len(tol) > 0 && tol[0] > 0 {
		O.debugTol = tol[0]
	}
	return O.debugTol
}
