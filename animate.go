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
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

// ErrNoFrames is returned when there are no frames to animate.
var ErrNoFrames = errors.New("areaplot: no frames to animate")

// ListFrames returns the files in dir with extension ext (for example
// ".png"), sorted lexicographically by name. Frame names must be
// zero padded for this order to match iteration order:
// "output_10.png" sorts before "output_2.png".
func ListFrames(dir, ext string) ([]string, error) {
	return matchFiles(dir, "", ext)
}

// EncodeGIF writes frames to w as a GIF animation that loops forever,
// showing each frame for delay hundredths of a second. Frames are
// quantized to the Plan 9 palette with Floyd-Steinberg dithering.
// Frames whose size differs from the first frame are scaled to match it.
func EncodeGIF(w io.Writer, frames []image.Image, delay int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	b := frames[0].Bounds()
	anim := &gif.GIF{
		Image:     make([]*image.Paletted, len(frames)),
		Delay:     make([]int, len(frames)),
		LoopCount: 0,
	}
	for i, f := range frames {
		if f.Bounds().Size() != b.Size() {
			scaled := image.NewRGBA(b)
			xdraw.CatmullRom.Scale(scaled, b, f, f.Bounds(), xdraw.Src, nil)
			f = scaled
		}
		p := image.NewPaletted(b, palette.Plan9)
		xdraw.FloydSteinberg.Draw(p, b, f, f.Bounds().Min)
		anim.Image[i] = p
		anim.Delay[i] = delay
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("areaplot: encoding animation: %w", err)
	}
	return nil
}

// Animate combines the PNG frames in frameDir with extension ext, in
// the order given by ListFrames, into a looping GIF at gifPath. It
// returns the number of frames written. The frames are left in place.
func Animate(frameDir, ext, gifPath string, delay int) (int, error) {
	paths, err := ListFrames(frameDir, ext)
	if err != nil {
		return 0, err
	}
	if len(paths) == 0 {
		return 0, fmt.Errorf("%w in %s", ErrNoFrames, frameDir)
	}
	frames := make([]image.Image, len(paths))
	for i, p := range paths {
		if frames[i], err = decodePNG(p); err != nil {
			return 0, err
		}
	}

	f, err := os.Create(gifPath)
	if err != nil {
		return 0, fmt.Errorf("areaplot: creating animation file: %w", err)
	}
	if err := EncodeGIF(f, frames, delay); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}
	return len(frames), nil
}

// RemoveFrames deletes the frames in dir with extension ext, and then
// dir itself if nothing else is left in it.
func RemoveFrames(dir, ext string) error {
	paths, err := ListFrames(dir, ext)
	if err != nil {
		return err
	}
	for _, p := range paths {
		if err := os.Remove(p); err != nil {
			return fmt.Errorf("areaplot: removing frame: %w", err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("areaplot: listing %s: %w", dir, err)
	}
	if len(entries) == 0 {
		if err := os.Remove(dir); err != nil {
			return fmt.Errorf("areaplot: removing frame directory: %w", err)
		}
	}
	return nil
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("areaplot: opening frame: %w", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("areaplot: decoding %s: %w", path, err)
	}
	return img, nil
}
