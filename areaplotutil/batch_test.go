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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spatialmodel/areaplot"
)

func TestStatsPath(t *testing.T) {
	tests := []struct {
		table, stats string
	}{
		{table: "table_fss.csv", stats: "stats_fss.csv"},
		{table: filepath.Join("runs", "table_mdr.csv"), stats: filepath.Join("runs", "stats_mdr.csv")},
		{table: filepath.Join("table_dir", "table_x.csv"), stats: filepath.Join("table_dir", "stats_x.csv")},
	}
	for _, test := range tests {
		if have := StatsPath(test.table, "table_", "stats_"); have != test.stats {
			t.Errorf("%s: have %s, want %s", test.table, have, test.stats)
		}
	}
}

func TestResultPath(t *testing.T) {
	have := ResultPath(filepath.Join("runs", "table_fss.csv"), "results")
	if want := filepath.Join("results", "table_fss.png"); have != want {
		t.Errorf("have %s, want %s", have, want)
	}
}

// writeLayout writes a 3×3 layout grid with values 0 to 2 and a stats
// file with n records to dir.
func writeLayout(t *testing.T, dir, code string, n int) {
	t.Helper()
	grid := "0,1,2\n1,2,0\n2,0,1\n"
	if err := os.WriteFile(filepath.Join(dir, "table_"+code+".csv"), []byte(grid), 0o644); err != nil {
		t.Fatal(err)
	}
	if n < 0 {
		return
	}
	var b strings.Builder
	b.WriteString("Source,w/weight_sum,a/area_sum\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d,0.5,0.25\n", i)
	}
	if err := os.WriteFile(filepath.Join(dir, "stats_"+code+".csv"), []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
}

func testTableOptions() areaplot.TableOptions {
	o := areaplot.DefaultTableOptions()
	o.DPI = 72
	return o
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	writeLayout(t, dir, "fdr", 2)
	writeLayout(t, dir, "zzz", 7)
	results := filepath.Join(dir, "results")

	log, hook := logtest.NewNullLogger()
	written, err := Batch(log, dir, "table_", "stats_", results, testTableOptions())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(results, "table_fdr.png"), filepath.Join(results, "table_zzz.png")}
	if len(written) != len(want) {
		t.Fatalf("have %v, want %v", written, want)
	}
	for i, w := range want {
		if written[i] != w {
			t.Errorf("plot %d: have %s, want %s", i, written[i], w)
		}
		if _, err := os.Stat(w); err != nil {
			t.Error(err)
		}
	}
	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("have %d status lines, want 2", len(entries))
	}
	if title := entries[0].Data["title"]; title != "Few sources different weight random layout" {
		t.Errorf("first title: have %v", title)
	}
	if title := entries[1].Data["title"]; title != areaplot.UnknownTitle {
		t.Errorf("second title: have %v", title)
	}
}

func TestBatchStopsAtFirstError(t *testing.T) {
	dir := t.TempDir()
	writeLayout(t, dir, "a", 1)
	writeLayout(t, dir, "b", -1) // no stats file
	writeLayout(t, dir, "c", 1)
	results := filepath.Join(dir, "results")

	log, hook := logtest.NewNullLogger()
	written, err := Batch(log, dir, "table_", "stats_", results, testTableOptions())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("have %v, want a missing file error", err)
	}
	if len(written) != 1 || len(hook.AllEntries()) != 1 {
		t.Errorf("have %d plots and %d status lines, want 1 of each", len(written), len(hook.AllEntries()))
	}
	if _, err := os.Stat(filepath.Join(results, "table_c.png")); !os.IsNotExist(err) {
		t.Error("files after the failure should not be plotted")
	}
}

func TestBatchNoTables(t *testing.T) {
	dir := t.TempDir()
	log, hook := logtest.NewNullLogger()
	written, err := Batch(log, dir, "table_", "stats_", filepath.Join(dir, "results"), testTableOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 0 || len(hook.AllEntries()) != 1 {
		t.Errorf("have %d plots and %d log entries", len(written), len(hook.AllEntries()))
	}
}
