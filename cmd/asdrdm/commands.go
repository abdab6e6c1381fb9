/*
 * commands.go, part of goasd.
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

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"runtime"

	asd "github.com/rmera/goasd"
	"github.com/rmera/goasd/assemble"
	"github.com/rmera/goasd/ci"
	"github.com/rmera/goasd/occplot"
	"github.com/spf13/cobra"
)

type runFlags struct {
	order   int
	state   int
	cpus    int
	out     string
	plot    string
	verbose int
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "asdrdm",
		Short:         "Reduced density matrices from an active-space decomposition of a dimer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	f := new(runFlags)
	runCmd := &cobra.Command{
		Use:   "run <input.yaml>",
		Short: "Compute the RDMs of one adiabatic state",
		Long: `Reads the monomer blocks, dimer subspaces and adiabats from a YAML file,
computes the RDMs of the requested state, and writes them as zstd-compressed
dumps (<out>.rdmN.zst), together with a JSON summary (<out>.json).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], f)
		},
	}
	runCmd.Flags().IntVar(&f.order, "order", 2, "Highest RDM order to compute (1 to 4)")
	runCmd.Flags().IntVar(&f.state, "state", 0, "Adiabatic state (column of the adiabats)")
	runCmd.Flags().IntVar(&f.cpus, "cpus", runtime.NumCPU(), "Number of goroutines")
	runCmd.Flags().StringVarP(&f.out, "out", "o", "asdrdm", "Prefix for the output files")
	runCmd.Flags().StringVar(&f.plot, "plot", "", "If given, plot the natural occupations to this file")
	runCmd.Flags().CountVarP(&f.verbose, "verbose", "v", "Verbosity (repeat for more)")
	rootCmd.AddCommand(runCmd)
	return rootCmd
}

//Summary is the JSON summary of a run.
type Summary struct {
	State       int            `json:"state"`
	Nelec       int            `json:"nelec"`
	NOrb        int            `json:"norb"`
	Subspaces   int            `json:"subspaces"`
	Couplings   map[string]int `json:"couplings"`
	Components  [][]int        `json:"components"`
	Deviation   float64        `json:"deviation"`
	Occupations []float64      `json:"occupations"`
	Files       []string       `json:"rdm_files"`
}

func run(name string, f *runFlags) error {
	if f.order < 1 || f.order > 4 {
		return fmt.Errorf("RDM order %d not supported", f.order)
	}
	fin, err := os.Open(name)
	if err != nil {
		return err
	}
	defer fin.Close()
	in, err := ReadInput(fin)
	if err != nil {
		return err
	}
	subspaces, adiabats, err := in.Build()
	if err != nil {
		return err
	}
	o := assemble.DefaultOptions()
	o.MaxOrder(f.order)
	o.Cpus(f.cpus)
	o.Verbose(f.verbose)
	o.Log(log.New(os.Stderr, "", log.LstdFlags))
	A, err := assemble.New(subspaces, adiabats, ci.Builder{}, o)
	if err != nil {
		return err
	}
	if err := A.ComputeRDM(f.state); err != nil {
		if d, ok := err.(asd.Decorator); ok && f.verbose > 0 {
			log.Printf("asdrdm: error trace: %v", d.Decorate(""))
		}
		return err
	}
	s := Summary{State: f.state, Nelec: A.Nelec(), NOrb: A.NOrb(), Subspaces: len(subspaces), Couplings: make(map[string]int), Components: A.Components(), Deviation: A.Deviation()}
	for _, p := range A.Pairs() {
		s.Couplings[p.Coupling.String()]++
	}
	s.Occupations, err = A.RDM(1).NaturalOccupations()
	if err != nil {
		return err
	}
	for n := 1; n <= f.order; n++ {
		fname := fmt.Sprintf("%s.rdm%d.zst", f.out, n)
		if err := A.RDM(n).WriteFile(fname); err != nil {
			return err
		}
		s.Files = append(s.Files, fname)
	}
	j, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.out+".json", append(j, '\n'), 0o644); err != nil {
		return err
	}
	if f.plot != "" {
		if err := occplot.Occupations(s.Occupations, fmt.Sprintf("Natural occupations, state %d", f.state), f.plot); err != nil {
			return err
		}
	}
	return nil
}
