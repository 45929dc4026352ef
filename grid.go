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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ErrEmptyGrid is returned when a grid file holds no cells.
var ErrEmptyGrid = errors.New("areaplot: grid has no cells")

// Grid is a rectangular array of integer cell values, one per spatial
// unit. Row 0 is the top row of the rendered image.
type Grid struct {
	*mat.Dense
}

// ReadGrid reads a headerless, comma-separated grid of integers.
// Every row must have as many cells as the first one.
func ReadGrid(r io.Reader) (*Grid, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	lines, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("areaplot: reading grid: %w", err)
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	d := mat.NewDense(len(lines), len(lines[0]), nil)
	for j := 0; j < len(lines); j++ {
		for i := 0; i < len(lines[j]); i++ {
			v, err := strconv.Atoi(strings.TrimSpace(lines[j][i]))
			if err != nil {
				return nil, fmt.Errorf("areaplot: reading grid row %d, column %d: %w", j+1, i+1, err)
			}
			d.Set(j, i, float64(v))
		}
	}
	return &Grid{Dense: d}, nil
}

// ReadGridFile reads the grid stored in the file at path.
func ReadGridFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("areaplot: opening grid file: %w", err)
	}
	defer f.Close()
	g, err := ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Min returns the smallest cell value.
func (g *Grid) Min() float64 { return mat.Min(g.Dense) }

// Max returns the largest cell value.
func (g *Grid) Max() float64 { return mat.Max(g.Dense) }

// Levels returns the number of categories in a label grid,
// which is the largest cell value plus one.
func (g *Grid) Levels() int {
	n := int(g.Max()) + 1
	if n < 1 {
		return 1
	}
	return n
}

// gridXYZ adapts a Grid to plotter.GridXYZ. Columns map to X and
// rows map to Y, with the first grid row at the top of the plot.
type gridXYZ struct {
	g        *Grid
	min, max float64
}

func newGridXYZ(g *Grid) gridXYZ {
	return gridXYZ{g: g, min: g.Min(), max: g.Max()}
}

func (x gridXYZ) Dims() (c, r int) {
	r, c = x.g.Dims()
	return c, r
}

func (x gridXYZ) Z(c, r int) float64 {
	rows, _ := x.g.Dims()
	return x.g.At(rows-1-r, c)
}

func (x gridXYZ) X(c int) float64 { return float64(c) }
func (x gridXYZ) Y(r int) float64 { return float64(r) }
func (x gridXYZ) Min() float64    { return x.min }
func (x gridXYZ) Max() float64    { return x.max }
