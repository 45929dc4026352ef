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

package areaplotutil

import (
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/areaplot"
)

// Animate renders the grid snapshots in csvDir whose names start with
// prefix into imageDir and combines them into a looping GIF at gifFile
// that shows each frame for delay hundredths of a second. If cleanup
// is true, the rendered frames are deleted afterwards.
func Animate(log logrus.FieldLogger, csvDir, prefix, imageDir, gifFile string, delay int, cleanup bool, o areaplot.FrameOptions) error {
	if _, err := areaplot.RenderFrames(log, csvDir, prefix, imageDir, o); err != nil {
		return err
	}
	n, err := areaplot.Animate(imageDir, ".png", gifFile, delay)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"output": gifFile,
		"frames": n,
	}).Info("saved animation")

	if !cleanup {
		return nil
	}
	if err := areaplot.RemoveFrames(imageDir, ".png"); err != nil {
		return err
	}
	log.WithField("dir", imageDir).Debug("removed frames")
	return nil
}
