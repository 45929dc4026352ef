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
	"log"
	"math"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// viridisControls are the control colors of the viridis color map.
// Their luminance increases monotonically.
var viridisControls = []color.Color{
	color.NRGBA{R: 0x44, G: 0x01, B: 0x54, A: 0xff},
	color.NRGBA{R: 0x48, G: 0x28, B: 0x78, A: 0xff},
	color.NRGBA{R: 0x3e, G: 0x4a, B: 0x89, A: 0xff},
	color.NRGBA{R: 0x31, G: 0x68, B: 0x8e, A: 0xff},
	color.NRGBA{R: 0x26, G: 0x82, B: 0x8e, A: 0xff},
	color.NRGBA{R: 0x1f, G: 0x9e, B: 0x89, A: 0xff},
	color.NRGBA{R: 0x35, G: 0xb7, B: 0x79, A: 0xff},
	color.NRGBA{R: 0x6e, G: 0xce, B: 0x58, A: 0xff},
	color.NRGBA{R: 0xb5, G: 0xde, B: 0x2b, A: 0xff},
	color.NRGBA{R: 0xfd, G: 0xe7, B: 0x25, A: 0xff},
}

// Viridis returns a continuous color map running from dark purple to
// yellow with linearly increasing luminance. Its range must be set
// with SetMin and SetMax before use.
func Viridis() palette.ColorMap {
	cm, err := moreland.NewLuminance(viridisControls)
	if err != nil {
		log.Panic(err)
	}
	return cm
}

// tab20 is a qualitative palette of ten hues, each in a dark and a
// light shade.
var tab20 = []color.Color{
	color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.NRGBA{R: 0xae, G: 0xc7, B: 0xe8, A: 0xff},
	color.NRGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.NRGBA{R: 0xff, G: 0xbb, B: 0x78, A: 0xff},
	color.NRGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.NRGBA{R: 0x98, G: 0xdf, B: 0x8a, A: 0xff},
	color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.NRGBA{R: 0xff, G: 0x98, B: 0x96, A: 0xff},
	color.NRGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	color.NRGBA{R: 0xc5, G: 0xb0, B: 0xd5, A: 0xff},
	color.NRGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	color.NRGBA{R: 0xc4, G: 0x9c, B: 0x94, A: 0xff},
	color.NRGBA{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
	color.NRGBA{R: 0xf7, G: 0xb6, B: 0xd2, A: 0xff},
	color.NRGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
	color.NRGBA{R: 0xc7, G: 0xc7, B: 0xc7, A: 0xff},
	color.NRGBA{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
	color.NRGBA{R: 0xdb, G: 0xdb, B: 0x8d, A: 0xff},
	color.NRGBA{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
	color.NRGBA{R: 0x9e, G: 0xda, B: 0xe5, A: 0xff},
}

type colors []color.Color

func (c colors) Colors() []color.Color { return c }

// Categorical returns a qualitative palette with n colors. Up to 20
// colors are spread evenly over the tab20 palette; beyond that the
// palette repeats.
func Categorical(n int) palette.Palette {
	o := make(colors, n)
	for i := range o {
		switch {
		case n > len(tab20):
			o[i] = tab20[i%len(tab20)]
		case n == 1:
			o[i] = tab20[0]
		default:
			j := i * len(tab20) / (n - 1)
			if j >= len(tab20) {
				j = len(tab20) - 1
			}
			o[i] = tab20[j]
		}
	}
	return o
}

// categoricalMap is a palette.ColorMap that assigns one color to each
// integer level in [0, len(colors)). Level k covers the values
// [k-0.5, k+0.5).
type categoricalMap struct {
	colors   []color.Color
	min, max float64
	alpha    float64
}

// NewCategoricalMap returns a color map for the label values
// 0 through levels-1, using the colors of Categorical(levels).
func NewCategoricalMap(levels int) palette.ColorMap {
	if levels < 1 {
		levels = 1
	}
	return &categoricalMap{
		colors: Categorical(levels).Colors(),
		min:    -0.5,
		max:    float64(levels) - 0.5,
		alpha:  1,
	}
}

func (m *categoricalMap) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < m.min:
		return nil, palette.ErrUnderflow
	case v > m.max:
		return nil, palette.ErrOverflow
	}
	i := int(math.Floor((v - m.min) / (m.max - m.min) * float64(len(m.colors))))
	if i >= len(m.colors) {
		i = len(m.colors) - 1
	}
	c := color.NRGBAModel.Convert(m.colors[i]).(color.NRGBA)
	c.A = uint8(float64(c.A) * m.alpha)
	return c, nil
}

func (m *categoricalMap) Max() float64     { return m.max }
func (m *categoricalMap) SetMax(v float64) { m.max = v }
func (m *categoricalMap) Min() float64     { return m.min }
func (m *categoricalMap) SetMin(v float64) { m.min = v }
func (m *categoricalMap) Alpha() float64   { return m.alpha }

func (m *categoricalMap) SetAlpha(a float64) {
	if a < 0 || a > 1 {
		panic("areaplot: alpha must be between 0 and 1")
	}
	m.alpha = a
}

// Palette returns n colors sampled at the centers of n equal
// divisions of the color map range.
func (m *categoricalMap) Palette(n int) palette.Palette {
	delta := (m.max - m.min) / float64(n)
	o := make(colors, n)
	for i := range o {
		c, err := m.At(m.min + delta*(float64(i)+0.5))
		if err != nil {
			log.Panic(err)
		}
		o[i] = c
	}
	return o
}
