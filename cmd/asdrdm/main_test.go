/*
 * main_test.go, part of goasd.
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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/goasd/rdm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//two electrons of the same spin, one on each monomer, and a charge-transfer
//configuration with both on A.
const input = `
norb: [2, 1]
orthonormalize: true
monomers:
  a:
    - tag: 0
      nelea: 1
      neleb: 0
      states:
        - - {alpha: "10", beta: "00", c: 1.0}
    - tag: 1
      nelea: 2
      neleb: 0
      states:
        - - {alpha: "11", beta: "00", c: 1.0}
  b:
    - tag: 0
      nelea: 1
      neleb: 0
      states:
        - - {alpha: "1", beta: "0", c: 1.0}
    - tag: 1
      nelea: 0
      neleb: 0
      states:
        - - {alpha: "0", beta: "0", c: 1.0}
subspaces:
  - [0, 0]
  - [1, 1]
adiabats:
  - [0.8]
  - [0.6]
`

func TestReadInput(Te *testing.T) {
	in, err := ReadInput(strings.NewReader(input))
	require.NoError(Te, err)
	assert.Equal(Te, [2]int{2, 1}, in.NOrb)
	assert.Len(Te, in.Monomers.A, 2)
	subspaces, adiabats, err := in.Build()
	require.NoError(Te, err)
	assert.Len(Te, subspaces, 2)
	r, c := adiabats.Dims()
	assert.Equal(Te, 2, r)
	assert.Equal(Te, 1, c)
	_, err = ReadInput(strings.NewReader("norb: [1, 1]\nunknown: 3\n"))
	assert.Error(Te, err)
	in.Subspaces = append(in.Subspaces, [2]int{0, 7})
	_, _, err = in.Build()
	assert.Error(Te, err)
}

func TestRun(Te *testing.T) {
	dir := Te.TempDir()
	name := filepath.Join(dir, "dimer.yaml")
	require.NoError(Te, os.WriteFile(name, []byte(input), 0o644))
	out := filepath.Join(dir, "dimer")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"run", name, "--order", "2", "--cpus", "2", "--out", out, "--plot", filepath.Join(dir, "occ.png")})
	require.NoError(Te, cmd.Execute())
	g1, err := rdm.ReadFile(out + ".rdm1.zst")
	require.NoError(Te, err)
	assert.InDelta(Te, 2, g1.Trace(), 1e-10)
	//A orbital 0 is always occupied, B orbital 0 (global 2) only in the first subspace.
	assert.InDelta(Te, 1, g1.At(0, 0), 1e-10)
	assert.InDelta(Te, 0.64, g1.At(2, 2), 1e-10)
	g2, err := rdm.ReadFile(out + ".rdm2.zst")
	require.NoError(Te, err)
	assert.InDelta(Te, 2, g2.Trace(), 1e-10)
	j, err := os.ReadFile(out + ".json")
	require.NoError(Te, err)
	var s Summary
	require.NoError(Te, json.Unmarshal(j, &s))
	assert.Equal(Te, 2, s.Nelec)
	assert.Equal(Te, 3, s.NOrb)
	assert.Equal(Te, 2, s.Couplings["diagonal"])
	assert.Equal(Te, 1, s.Couplings["aET"])
	assert.Len(Te, s.Occupations, 3)
	assert.Equal(Te, [][]int{{0, 1}}, s.Components)
	assert.Less(Te, s.Deviation, 1e-10)
	_, err = os.Stat(filepath.Join(dir, "occ.png"))
	assert.NoError(Te, err)
	cmd = newRootCmd()
	cmd.SetArgs([]string{"run", name, "--order", "5"})
	assert.Error(Te, cmd.Execute())
}
