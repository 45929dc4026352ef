/*
Copyright © 2024 the AreaPlot authors.
This file is part of AreaPlot.

AreaPlot is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

AreaPlot is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with AreaPlot.  If not, see <http://www.gnu.org/licenses/>.
*/

package areaplot

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	// barWidth is the width of the color bar including its tick labels.
	barWidth = 0.6 * vg.Inch
	// barGap separates the heat map from its color bar.
	barGap = 0.15 * vg.Inch
)

// heatFigure is a heat map of a grid with a vertical color bar to
// its right.
type heatFigure struct {
	plot       *plot.Plot
	bar        *plot.Plot
	cols, rows int
}

func newHeatFigure(g *Grid, h *plotter.HeatMap, cb *plotter.ColorBar, title string) *heatFigure {
	rows, cols := g.Dims()

	p := plot.New()
	p.Title.Text = title
	p.X.Padding = 0
	p.Y.Padding = 0
	p.X.Tick.Marker = cellTicks{}
	p.Y.Tick.Marker = cellTicks{reverse: true, n: rows}
	p.Add(h)

	cb.Vertical = true
	b := plot.New()
	b.Add(cb)
	b.HideX()
	b.Y.Padding = 0

	return &heatFigure{plot: p, bar: b, cols: cols, rows: rows}
}

// continuousFigure returns a figure that colors cells on a continuous
// scale between the smallest and largest cell values.
func continuousFigure(g *Grid, title string, cm palette.ColorMap) *heatFigure {
	min, max := g.Min(), g.Max()
	if min == max {
		max = min + 1
	}
	cm.SetMin(min)
	cm.SetMax(max)

	h := plotter.NewHeatMap(newGridXYZ(g), cm.Palette(256))
	h.Min, h.Max = min, max
	return newHeatFigure(g, h, &plotter.ColorBar{ColorMap: cm}, title)
}

// categoricalFigure returns a figure that gives each integer level
// from zero to the largest cell value its own color, with one color
// bar tick per level. Negative cells are left blank.
func categoricalFigure(g *Grid, title string) *heatFigure {
	levels := g.Levels()

	h := plotter.NewHeatMap(newGridXYZ(g), Categorical(levels))
	h.Min, h.Max = 0, float64(levels-1)
	if levels == 1 {
		h.Max = 1
	}

	cb := &plotter.ColorBar{ColorMap: NewCategoricalMap(levels), Colors: levels}
	f := newHeatFigure(g, h, cb, title)
	f.bar.Y.Tick.Marker = plot.ConstantTicks(levelTicks(levels))
	return f
}

// levelTicks returns one labeled tick at each integer level.
func levelTicks(levels int) []plot.Tick {
	t := make([]plot.Tick, levels)
	for i := range t {
		t[i] = plot.Tick{Value: float64(i), Label: strconv.Itoa(i)}
	}
	return t
}

// Draw draws the figure to c. The heat map keeps square cells, like
// an image, and the color bar spans the height of its data area.
func (f *heatFigure) Draw(c draw.Canvas) {
	main, bar := f.layout(c)
	f.plot.Draw(main)
	f.bar.Draw(bar)
}

// layout divides c into the canvases of the heat map and its color bar.
func (f *heatFigure) layout(c draw.Canvas) (main, bar draw.Canvas) {
	main = draw.Crop(c, 0, -(barWidth + barGap), 0, 0)
	main = fitAspect(main, f.plot.DataCanvas(main), f.cols, f.rows)

	da := f.plot.DataCanvas(main)
	bar = draw.Canvas{
		Canvas: c.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: main.Max.X + barGap, Y: da.Min.Y},
			Max: vg.Point{X: main.Max.X + barGap + barWidth, Y: da.Max.Y},
		},
	}
	return main, bar
}

// fitAspect shrinks c evenly from both sides so that da, the data
// area drawn within c, has the aspect ratio of a cols×rows grid
// of square cells.
func fitAspect(c, da draw.Canvas, cols, rows int) draw.Canvas {
	dw := da.Max.X - da.Min.X
	dh := da.Max.Y - da.Min.Y
	if dw <= 0 || dh <= 0 || cols <= 0 || rows <= 0 {
		return c
	}
	ratio := vg.Length(cols) / vg.Length(rows)
	switch {
	case dw > dh*ratio:
		d := (dw - dh*ratio) / 2
		return draw.Crop(c, d, -d, 0, 0)
	case dw < dh*ratio:
		d := (dh - dw/ratio) / 2
		return draw.Crop(c, 0, 0, d, -d)
	}
	return c
}

// maxCellLabels is the most labeled ticks drawn along a grid axis.
const maxCellLabels = 10

// cellTicks puts a tick at the center of every cell along an axis and
// labels every k-th cell index, with k chosen so that there are no
// more than maxCellLabels labels. If reverse is true, indices count
// down from n-1 so that row 0 is at the top.
type cellTicks struct {
	reverse bool
	n       int
}

func (t cellTicks) Ticks(min, max float64) []plot.Tick {
	lo, hi := int(math.Ceil(min)), int(math.Floor(max))
	if hi < lo {
		return nil
	}
	step := (hi - lo + maxCellLabels) / maxCellLabels
	o := make([]plot.Tick, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		i := v
		if t.reverse {
			i = t.n - 1 - v
		}
		tk := plot.Tick{Value: float64(v)}
		if i%step == 0 {
			tk.Label = strconv.Itoa(i)
		}
		o = append(o, tk)
	}
	return o
}

// writePNG draws d onto a w×h image with the given resolution and
// saves it to path. The file is only created after drawing is done.
func writePNG(path string, w, h vg.Length, dpi int, d func(draw.Canvas)) error {
	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	d(draw.New(img))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("areaplot: creating image file: %w", err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("areaplot: writing %s: %w", path, err)
	}
	return f.Close()
}

// writeCroppedPNG is like writePNG, but trims the image to its
// content, leaving pad of margin.
func writeCroppedPNG(path string, w, h vg.Length, dpi int, pad vg.Length, d func(draw.Canvas)) error {
	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	d(draw.New(img))
	cropped := TightCrop(img.Image(), int(pad.Dots(float64(dpi))+0.5))
	return encodePNG(path, cropped)
}
