/*
 * occplot_test.go, part of goasd.
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

package occplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

//TestOccupations plots the occupations of a 4-orbital active space.
func TestOccupations(Te *testing.T) {
	p := basicOccPlot("Axes")
	assert.Equal(Te, 3*vg.Millimeter, p.Title.Padding)
	assert.Equal(Te, 2.0, p.Y.Max)
	dir := Te.TempDir()
	name := filepath.Join(dir, "occ")
	require.NoError(Te, Occupations([]float64{1.98, 1.6, 0.4, 0.02}, "Test occupations", name))
	info, err := os.Stat(name + ".png")
	require.NoError(Te, err)
	assert.NotZero(Te, info.Size())
	require.NoError(Te, Occupations([]float64{2.0000001, -1e-9}, "Slightly off", filepath.Join(dir, "off.svg")))
	assert.Error(Te, Occupations(nil, "empty", filepath.Join(dir, "empty")))
}
