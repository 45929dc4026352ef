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
	"image/color"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// TableOptions specify how table plots are drawn.
type TableOptions struct {
	// Titles maps layout codes to plot titles.
	Titles Titles

	// MaxStats is the number of statistics records listed
	// below the plot. Further records are elided.
	MaxStats int

	// Width and Height are the size of the figure before cropping,
	// not counting the statistics summary.
	Width, Height vg.Length

	// DPI is the output resolution.
	DPI int
}

// DefaultTableOptions returns the options used for table plots
// unless told otherwise.
func DefaultTableOptions() TableOptions {
	return TableOptions{
		Titles:   DefaultTitles,
		MaxStats: 5,
		Width:    6.4 * vg.Inch,
		Height:   4.8 * vg.Inch,
		DPI:      300,
	}
}

const (
	titleSize   = 14
	summarySize = 10
	cropPad     = 0.1 * vg.Inch
	summaryGap  = 0.2 * vg.Inch
)

// PlotTable draws the grid in gridPath with one color per integer
// level, titled by the layout code in its file name, and lists the
// first statistics records from statsPath below it. The result is
// cropped to its content and written to outPath as a PNG.
// Both inputs are read in full before anything is drawn.
func PlotTable(gridPath, statsPath, outPath string, o TableOptions) error {
	g, err := ReadGridFile(gridPath)
	if err != nil {
		return err
	}
	recs, err := ReadStatsFile(statsPath)
	if err != nil {
		return err
	}
	summary, err := Summary(recs, o.MaxStats)
	if err != nil {
		return err
	}
	return plotCategorical(g, o.Titles.Title(gridPath), summary, outPath, o)
}

// PlotGrid draws the grid in gridPath with one color per integer
// level and the given title, and writes it to outPath as a cropped PNG.
func PlotGrid(gridPath, outPath, title string, o TableOptions) error {
	g, err := ReadGridFile(gridPath)
	if err != nil {
		return err
	}
	return plotCategorical(g, title, "", outPath, o)
}

func plotCategorical(g *Grid, title, summary, outPath string, o TableOptions) error {
	f := categoricalFigure(g, title)
	f.plot.Title.TextStyle.Font.Size = titleSize
	f.plot.Title.TextStyle.Font.Weight = xfont.WeightBold

	sty := draw.TextStyle{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, summarySize),
		XAlign:  draw.XLeft,
		YAlign:  draw.YTop,
		Handler: plot.DefaultTextHandler,
	}
	var below vg.Length
	if summary != "" {
		below = sty.Height(summary) + summaryGap
	}

	return writeCroppedPNG(outPath, o.Width, o.Height+below, o.DPI, cropPad, func(c draw.Canvas) {
		f.Draw(draw.Crop(c, 0, 0, below, 0))
		if summary != "" {
			c.FillText(sty, vg.Point{X: c.Min.X + cropPad, Y: c.Min.Y + below - summaryGap}, summary)
		}
	})
}
