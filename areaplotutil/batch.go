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
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/areaplot"
)

// StatsPath returns the statistics file that goes with the layout grid
// at tablePath, found by replacing tablePrefix with statsPrefix at the
// start of the file name. "table_fss.csv" gives "stats_fss.csv".
func StatsPath(tablePath, tablePrefix, statsPrefix string) string {
	dir, name := filepath.Split(tablePath)
	return filepath.Join(dir, statsPrefix+strings.TrimPrefix(name, tablePrefix))
}

// ResultPath returns the location in resultsDir of the plot of the
// layout grid at tablePath: "table_fss.csv" gives
// "<resultsDir>/table_fss.png".
func ResultPath(tablePath, resultsDir string) string {
	name := filepath.Base(tablePath)
	return filepath.Join(resultsDir, strings.TrimSuffix(name, filepath.Ext(name))+".png")
}

// Batch plots every layout grid in dir whose name starts with
// tablePrefix and ends in ".csv", in file name order, together with
// its statistics file. Plots are written to resultsDir, which is
// created if needed. One status line is logged for each completed
// plot, and the first failure stops the run. The paths of the plots
// that were written are returned.
func Batch(log logrus.FieldLogger, dir, tablePrefix, statsPrefix, resultsDir string, o areaplot.TableOptions) ([]string, error) {
	tables, err := filepath.Glob(filepath.Join(globEscape(dir), globEscape(tablePrefix)+"*.csv"))
	if err != nil {
		return nil, fmt.Errorf("areaplot: finding layout grids: %w", err)
	}
	sort.Strings(tables)
	if len(tables) == 0 {
		log.WithField("dir", dir).Warn("no layout grids found")
		return nil, nil
	}
	if err := os.MkdirAll(resultsDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("areaplot: creating results directory: %w", err)
	}

	var written []string
	for _, table := range tables {
		stats := StatsPath(table, tablePrefix, statsPrefix)
		out := ResultPath(table, resultsDir)
		if err := areaplot.PlotTable(table, stats, out, o); err != nil {
			return written, fmt.Errorf("%w (plotting %s)", err, table)
		}
		log.WithFields(logrus.Fields{
			"file":   table,
			"output": out,
			"title":  o.Titles.Title(table),
		}).Info("saved plot")
		written = append(written, out)
	}
	return written, nil
}

// globEscape escapes the glob metacharacters in s.
func globEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`)
	return r.Replace(s)
}
