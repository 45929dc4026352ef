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
	"strings"
	"testing"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		path, code, title string
	}{
		{path: "table_fss.csv", code: "fss", title: "Few sources same weight strict layout"},
		{path: "table_zzz.csv", code: "zzz", title: "Unknown layout"},
		{path: "dir/table_fdr.csv", code: "fdr", title: "Few sources different weight random layout"},
		{path: "table_FSS.csv", code: "FSS", title: UnknownTitle},
		{path: "table_mdr_2.csv", code: "mdr", title: "Many sources different weight random layout"},
		{path: "table.csv", code: "", title: UnknownTitle},
	}
	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			if c := LayoutCode(test.path); c != test.code {
				t.Errorf("code: have %q, want %q", c, test.code)
			}
			if title := DefaultTitles.Title(test.path); title != test.title {
				t.Errorf("title: have %q, want %q", title, test.title)
			}
		})
	}
}

func TestReadTitles(t *testing.T) {
	const in = `
[titles]
zzz = "Custom layout"
fss = "Renamed"
`
	custom, err := ReadTitles(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	titles := DefaultTitles.Merge(custom)
	if have := titles.Lookup("zzz"); have != "Custom layout" {
		t.Errorf("zzz: have %q", have)
	}
	if have := titles.Lookup("fss"); have != "Renamed" {
		t.Errorf("fss: have %q", have)
	}
	if have := titles.Lookup("mdr"); have != DefaultTitles["mdr"] {
		t.Errorf("mdr: have %q", have)
	}
	if DefaultTitles.Lookup("fss") != "Few sources same weight strict layout" {
		t.Error("Merge modified its receiver")
	}
}
