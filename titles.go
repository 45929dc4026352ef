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
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// UnknownTitle is the title used for layout codes that are not
// in a Titles table.
const UnknownTitle = "Unknown layout"

// Titles maps a short layout code, such as "fss", to a
// human-readable plot title.
type Titles map[string]string

// DefaultTitles holds the layouts produced by the area optimizer.
// The first letter gives the number of sources (few or many),
// the second their weights (same or different), and the third the
// source placement (strict grid or random).
var DefaultTitles = Titles{
	"fss": "Few sources same weight strict layout",
	"fsr": "Few sources same weight random layout",
	"fds": "Few sources different weight strict layout",
	"fdr": "Few sources different weight random layout",
	"mss": "Many sources same weight strict layout",
	"msr": "Many sources same weight random layout",
	"mds": "Many sources different weight strict layout",
	"mdr": "Many sources different weight random layout",
}

// stem returns the file name of path without its directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LayoutCode returns the second underscore-delimited token of the
// file name of path, so "results/table_fss.csv" gives "fss".
// It returns "" if the name has no underscore.
func LayoutCode(path string) string {
	parts := strings.Split(stem(path), "_")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// Lookup returns the title for code, or UnknownTitle. Matching is
// exact and case-sensitive.
func (t Titles) Lookup(code string) string {
	if title, ok := t[code]; ok {
		return title
	}
	return UnknownTitle
}

// Title returns the title for the layout code in the file name of path.
func (t Titles) Title(path string) string {
	return t.Lookup(LayoutCode(path))
}

// Merge returns a new table holding the entries of t overridden
// by the entries of other.
func (t Titles) Merge(other Titles) Titles {
	o := make(Titles, len(t)+len(other))
	for k, v := range t {
		o[k] = v
	}
	for k, v := range other {
		o[k] = v
	}
	return o
}

// ReadTitles reads a title table from TOML input of the form
//
//	[titles]
//	xyz = "Custom layout"
func ReadTitles(r io.Reader) (Titles, error) {
	var f struct {
		Titles Titles `toml:"titles"`
	}
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("areaplot: reading titles: %w", err)
	}
	return f.Titles, nil
}
