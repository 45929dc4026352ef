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
	"image"
	"image/draw"
	"image/png"
	"os"
)

// TightCrop returns the smallest part of img that holds everything
// that differs from the background color, grown by pad pixels on
// each side. The background color is taken from the top-left pixel.
// If the image is blank, it is returned unchanged.
func TightCrop(img image.Image, pad int) image.Image {
	b := img.Bounds()
	if b.Empty() {
		return img
	}
	br, bg, bb, ba := img.At(b.Min.X, b.Min.Y).RGBA()

	content := image.Rectangle{Min: b.Max, Max: b.Min}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if r == br && g == bg && bl == bb && a == ba {
				continue
			}
			if x < content.Min.X {
				content.Min.X = x
			}
			if y < content.Min.Y {
				content.Min.Y = y
			}
			if x+1 > content.Max.X {
				content.Max.X = x + 1
			}
			if y+1 > content.Max.Y {
				content.Max.Y = y + 1
			}
		}
	}
	if content.Empty() {
		return img
	}
	content = content.Inset(-pad).Intersect(b)

	dst := image.NewRGBA(image.Rect(0, 0, content.Dx(), content.Dy()))
	draw.Draw(dst, dst.Bounds(), img, content.Min, draw.Src)
	return dst
}

func encodePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("areaplot: creating image file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("areaplot: writing %s: %w", path, err)
	}
	return f.Close()
}
