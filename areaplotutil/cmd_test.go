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
	"bytes"
	"fmt"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spatialmodel/areaplot"
)

func TestVersion(t *testing.T) {
	var b bytes.Buffer
	Root.SetOut(&b)
	defer Root.SetOut(nil)
	Root.SetArgs([]string{"version"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	if want := "AreaPlot v" + areaplot.Version; !strings.Contains(b.String(), want) {
		t.Errorf("have %q, want %q", b.String(), want)
	}
}

func TestTablesCmd(t *testing.T) {
	dir := t.TempDir()
	writeLayout(t, dir, "fdr", 2)
	results := filepath.Join(dir, "results")

	Cfg.Set("TableDir", dir)
	Cfg.Set("ResultsDir", results)
	Cfg.Set("DPI", 72)
	Root.SetArgs([]string{"tables"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(results, "table_fdr.png")); err != nil {
		t.Error(err)
	}
}

func TestAnimateCmd(t *testing.T) {
	for _, cleanup := range []bool{false, true} {
		t.Run(fmt.Sprintf("cleanup=%v", cleanup), func(t *testing.T) {
			dir := t.TempDir()
			csvDir := filepath.Join(dir, "csv_files")
			if err := os.Mkdir(csvDir, 0o755); err != nil {
				t.Fatal(err)
			}
			for i := 1; i <= 3; i++ {
				grid := fmt.Sprintf("%d,0\n0,%d\n", i, 2*i)
				if err := os.WriteFile(filepath.Join(csvDir, fmt.Sprintf("output_%03d.csv", i)), []byte(grid), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			imageDir := filepath.Join(dir, "images")
			gifFile := filepath.Join(dir, "animation.gif")

			Cfg.Set("CSVDir", csvDir)
			Cfg.Set("ImageDir", imageDir)
			Cfg.Set("GIFFile", gifFile)
			Cfg.Set("Cleanup", cleanup)
			Cfg.Set("FrameWidth", 3.2)
			Cfg.Set("FrameHeight", 2.4)
			Root.SetArgs([]string{"animate"})
			if err := Root.Execute(); err != nil {
				t.Fatal(err)
			}

			f, err := os.Open(gifFile)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			g, err := gif.DecodeAll(f)
			if err != nil {
				t.Fatal(err)
			}
			if len(g.Image) != 3 {
				t.Errorf("have %d frames, want 3", len(g.Image))
			}
			if g.Delay[0] != 50 {
				t.Errorf("delay: have %d, want 50", g.Delay[0])
			}
			_, err = os.Stat(imageDir)
			if cleanup && !os.IsNotExist(err) {
				t.Error("frames should be removed")
			}
			if !cleanup && err != nil {
				t.Errorf("frames should be kept: %v", err)
			}
		})
	}
}

func TestPlotCmd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "output.csv")
	if err := os.WriteFile(in, []byte("0,1\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "output.png")
	Cfg.Set("Input", in)
	Cfg.Set("OutputFile", out)
	Cfg.Set("DPI", 72)
	Root.SetArgs([]string{"plot"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Error(err)
	}
}

func TestTableOptions(t *testing.T) {
	dir := t.TempDir()
	titlesFile := filepath.Join(dir, "titles.toml")
	const titles = "[titles]\nzzz = \"From file\"\nfss = \"From file\"\n"
	if err := os.WriteFile(titlesFile, []byte(titles), 0o644); err != nil {
		t.Fatal(err)
	}
	os.Setenv("AREAPLOT_TEST_DIR", dir)
	defer os.Unsetenv("AREAPLOT_TEST_DIR")

	Cfg.Set("TitlesFile", "${AREAPLOT_TEST_DIR}/titles.toml")
	Cfg.Set("Titles", `{"fss":"From option"}`)
	Cfg.Set("MaxStats", 2)
	defer func() {
		Cfg.Set("TitlesFile", "")
		Cfg.Set("Titles", map[string]string{})
		Cfg.Set("MaxStats", 5)
	}()

	o, err := TableOptions(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	if o.MaxStats != 2 {
		t.Errorf("MaxStats: have %d", o.MaxStats)
	}
	tests := map[string]string{
		"zzz": "From file",
		"fss": "From option",
		"mdr": areaplot.DefaultTitles["mdr"],
		"xyz": areaplot.UnknownTitle,
	}
	for code, want := range tests {
		if have := o.Titles.Lookup(code); have != want {
			t.Errorf("%s: have %q, want %q", code, have, want)
		}
	}
}

func TestInvalidLogLevel(t *testing.T) {
	Cfg.Set("loglevel", "loud")
	defer Cfg.Set("loglevel", "info")
	Root.SetArgs([]string{"version"})
	if err := Root.Execute(); err == nil {
		t.Error("an invalid log level should be rejected")
	}
}

func TestFlags(t *testing.T) {
	if tables, plot := tablesCmd.Flags().Lookup("DPI"), plotCmd.Flags().Lookup("DPI"); tables == nil || tables != plot {
		t.Error("DPI should be one flag shared by tables and plot")
	}
	in := plotCmd.Flags().Lookup("Input")
	if in == nil || in.Shorthand != "i" || in.DefValue != "output.csv" {
		t.Errorf("Input flag: %+v", in)
	}
	if f := animateCmd.Flags().Lookup("FrameDelay"); f == nil || f.Shorthand != "" || f.DefValue != "50" {
		t.Errorf("FrameDelay flag: %+v", f)
	}
	if f := tablesCmd.Flags().Lookup("Titles"); f == nil || f.DefValue != "{}" {
		t.Errorf("Titles flag: %+v", f)
	}
	if f := Root.PersistentFlags().Lookup("loglevel"); f == nil || f.DefValue != "info" {
		t.Errorf("loglevel flag: %+v", f)
	}
}
