/*
 * plot.go, part of goMap
 *
 * Copyright 2026 The goMap authors
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

package report

import (
	"fmt"
	"image/color"

	mapent "github.com/rmera/gomap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//jitter separates the smap and smap_inf points of mappings with the same N.
const jitter = 0.08

// Plot draws smap and smap_inf against the number of coordinates kept by each mapping,
// and saves the plot to filename. The format is given by the extension of filename
// (png, svg, pdf, eps...).
func Plot(results []mapent.Result, title, filename string) error {
	if len(results) == 0 {
		return fmt.Errorf("goMap/report.Plot: no results to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "N"
	p.Y.Label.Text = "Mapping entropy"
	p.Add(plotter.NewGrid())
	smap := make(plotter.XYs, len(results))
	sinf := make(plotter.XYs, len(results))
	for i, r := range results {
		smap[i].X = float64(r.N) - jitter
		smap[i].Y = r.SMap
		sinf[i].X = float64(r.N) + jitter
		sinf[i].Y = r.SMapInf
	}
	s1, err := plotter.NewScatter(smap)
	if err != nil {
		return err
	}
	s1.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	s1.GlyphStyle.Shape = draw.CircleGlyph{}
	s2, err := plotter.NewScatter(sinf)
	if err != nil {
		return err
	}
	s2.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
	s2.GlyphStyle.Shape = draw.TriangleGlyph{}
	p.Add(s1, s2)
	p.Legend.Add("smap", s1)
	p.Legend.Add("smap_inf", s2)
	p.Legend.Top = true
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}
