/*
 * occplot.go, part of goasd.
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

/*Package occplot plots natural orbital occupation numbers.*/
package occplot

import (
	"fmt"
	"image/color"
	"strings"

	asd "github.com/rmera/goasd"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//basicOccPlot returns a plot with the axes for occupation numbers, which go from 0 to 2.
func basicOccPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Natural orbital"
	p.Y.Label.Text = "Occupation"
	//Constant axes
	p.Y.Min = 0
	p.Y.Max = 2
	p.Add(plotter.NewGrid())
	return p
}

//Occupations produces a bar chart of the occupation numbers occ, and saves it as plotname.
//The format is given by the extension of plotname (png, svg, pdf...), png if there is none.
func Occupations(occ []float64, title, plotname string) error {
	if len(occ) == 0 {
		return asd.NewError("no occupation numbers to plot", "occplot.Occupations")
	}
	p := basicOccPlot(title)
	bars, err := plotter.NewBarChart(plotter.Values(occ), vg.Points(12))
	if err != nil {
		return asd.ErrDecorate(err, "occplot.Occupations")
	}
	bars.Color = color.RGBA{R: 40, G: 90, B: 200, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	names := make([]string, len(occ))
	for i := range names {
		names[i] = fmt.Sprintf("%d", i+1)
	}
	p.NominalX(names...)
	//occupations can be slightly off the [0,2] range.
	for _, v := range occ {
		if v > p.Y.Max {
			p.Y.Max = v
		}
		if v < p.Y.Min {
			p.Y.Min = v
		}
	}
	if !strings.Contains(plotname, ".") {
		plotname += ".png"
	}
	width := vg.Points(40 + 18*float64(len(occ)))
	if width < 4*vg.Inch {
		width = 4 * vg.Inch
	}
	if err := p.Save(width, 3*vg.Inch, plotname); err != nil {
		return asd.ErrDecorate(err, "occplot.Occupations")
	}
	return nil
}
