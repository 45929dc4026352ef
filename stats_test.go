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
	"strconv"
	"strings"
	"testing"
)

func statsCSV(n int) string {
	var b strings.Builder
	b.WriteString("Source, w/weight_sum, a/area_sum, extra\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d,%g,%g,ignored\n", i, 0.1*float64(i+1), 0.123456)
	}
	return b.String()
}

func TestSummary(t *testing.T) {
	tests := []struct {
		records, lines int
		ellipsis       bool
	}{
		{records: 7, lines: 6, ellipsis: true},
		{records: 5, lines: 5, ellipsis: false},
		{records: 3, lines: 3, ellipsis: false},
	}
	for _, test := range tests {
		t.Run(strconv.Itoa(test.records), func(t *testing.T) {
			recs, err := ReadStats(strings.NewReader(statsCSV(test.records)))
			if err != nil {
				t.Fatal(err)
			}
			s, err := Summary(recs, 5)
			if err != nil {
				t.Fatal(err)
			}
			lines := strings.Split(s, "\n")
			if len(lines) != test.lines {
				t.Fatalf("have %d lines, want %d:\n%s", len(lines), test.lines, s)
			}
			if (lines[len(lines)-1] == Ellipsis) != test.ellipsis {
				t.Errorf("ellipsis: want %v:\n%s", test.ellipsis, s)
			}
			want := "Source 0: w/weight_sum=0.1000, a/area_sum=0.1235"
			if lines[0] != want {
				t.Errorf("first line: have %q, want %q", lines[0], want)
			}
		})
	}
}

func TestSummaryOnlyFormatsShownRecords(t *testing.T) {
	recs := []StatsRecord{
		{FieldSource: "a", FieldWeight: "1", FieldArea: "2"},
		{FieldSource: "b"},
	}
	s, err := Summary(recs, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := "Source a: w/weight_sum=1.0000, a/area_sum=2.0000\n..."
	if s != want {
		t.Errorf("have %q, want %q", s, want)
	}
}

func TestStatsRecordFormatErrors(t *testing.T) {
	_, err := StatsRecord{FieldSource: "1", FieldWeight: "0.5"}.Format()
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("missing field: have %v, want %v", err, ErrMissingField)
	}

	_, err = StatsRecord{FieldSource: "1", FieldWeight: "half", FieldArea: "0.5"}.Format()
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Errorf("bad float: have %v, want a *strconv.NumError", err)
	}
}
