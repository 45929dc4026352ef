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
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
)

// IterationLabel returns the iteration token of a frame file name:
// the part of the file stem after its last underscore. For
// "csv_files/output_007.csv" it returns "007". If the stem has no
// underscore, the whole stem is returned.
func IterationLabel(path string) string {
	s := stem(path)
	if i := strings.LastIndex(s, "_"); i >= 0 {
		return s[i+1:]
	}
	return s
}

// FrameTitle returns the title drawn above a frame.
func FrameTitle(path string) string {
	return "Iteration " + IterationLabel(path)
}

// FrameOptions specify how frames are rendered.
type FrameOptions struct {
	// Width and Height are the size of each frame.
	Width, Height vg.Length

	// DPI is the resolution of each frame.
	DPI int

	// ColorMap maps cell values to colors. Its range is reset
	// to the range of each frame before drawing.
	ColorMap palette.ColorMap
}

// DefaultFrameOptions returns 6.4×4.8 inch frames at 100 dpi colored
// with the Viridis color map.
func DefaultFrameOptions() FrameOptions {
	return FrameOptions{
		Width:    6.4 * vg.Inch,
		Height:   4.8 * vg.Inch,
		DPI:      100,
		ColorMap: Viridis(),
	}
}

// RenderFrame reads the grid in csvPath and writes it to imagePath as
// a PNG heat map on a continuous color scale, with a color bar and
// the iteration number as its title.
func RenderFrame(csvPath, imagePath string, o FrameOptions) error {
	g, err := ReadGridFile(csvPath)
	if err != nil {
		return err
	}
	cm := o.ColorMap
	if cm == nil {
		cm = Viridis()
	}
	f := continuousFigure(g, FrameTitle(csvPath), cm)
	return writePNG(imagePath, o.Width, o.Height, o.DPI, f.Draw)
}

// RenderFrames renders every CSV file in csvDir whose name starts with
// prefix, in lexicographic order of file name, writing <stem>.png into
// imageDir. imageDir is created if it does not exist. The paths of the
// written images are returned in the same order.
func RenderFrames(log logrus.FieldLogger, csvDir, prefix, imageDir string, o FrameOptions) ([]string, error) {
	files, err := matchFiles(csvDir, prefix, ".csv")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(imageDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("areaplot: creating frame directory: %w", err)
	}
	images := make([]string, 0, len(files))
	for _, file := range files {
		out := filepath.Join(imageDir, stem(file)+".png")
		if err := RenderFrame(file, out, o); err != nil {
			return images, err
		}
		log.WithFields(logrus.Fields{
			"file":   file,
			"output": out,
			"title":  FrameTitle(file),
		}).Info("rendered frame")
		images = append(images, out)
	}
	return images, nil
}

// matchFiles returns the files in dir whose names start with prefix
// and end with ext, sorted by file name.
func matchFiles(dir, prefix, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("areaplot: listing %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) || filepath.Ext(name) != ext {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	return files, nil
}
