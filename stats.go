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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Stats CSV field names.
const (
	FieldSource = "Source"
	FieldWeight = "w/weight_sum"
	FieldArea   = "a/area_sum"
)

// ErrMissingField is returned when a StatsRecord lacks a required field.
var ErrMissingField = errors.New("areaplot: missing stats field")

// StatsRecord holds one row of a stats file, keyed by column name.
type StatsRecord map[string]string

// ReadStats reads stats records from a CSV file whose first row
// names the fields.
func ReadStats(r io.Reader) ([]StatsRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	lines, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("areaplot: reading stats: %w", err)
	}
	if len(lines) == 0 {
		return nil, nil
	}
	header := lines[0]
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}
	recs := make([]StatsRecord, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rec := make(StatsRecord, len(header))
		for i, v := range line {
			rec[header[i]] = strings.TrimSpace(v)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// ReadStatsFile reads the stats records stored in the file at path.
func ReadStatsFile(path string) ([]StatsRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("areaplot: opening stats file: %w", err)
	}
	defer f.Close()
	recs, err := ReadStats(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

func (s StatsRecord) field(name string) (string, error) {
	v, ok := s[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrMissingField, name)
	}
	return v, nil
}

func (s StatsRecord) float(name string) (float64, error) {
	v, err := s.field(name)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("areaplot: stats field %q: %w", name, err)
	}
	return f, nil
}

// Format returns the one-line summary of the record, for example
// "Source 0: w/weight_sum=0.2500, a/area_sum=0.2480".
func (s StatsRecord) Format() (string, error) {
	src, err := s.field(FieldSource)
	if err != nil {
		return "", err
	}
	w, err := s.float(FieldWeight)
	if err != nil {
		return "", err
	}
	a, err := s.float(FieldArea)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Source %s: %s=%.4f, %s=%.4f", src, FieldWeight, w, FieldArea, a), nil
}

// Ellipsis is appended to a summary that omits records.
const Ellipsis = "..."

// Summary formats at most max records, one per line. If there are
// more records than max, a final Ellipsis line is added.
func Summary(recs []StatsRecord, max int) (string, error) {
	if max < 0 {
		max = 0
	}
	n := len(recs)
	if n > max {
		n = max
	}
	lines := make([]string, 0, n+1)
	for i, r := range recs[:n] {
		l, err := r.Format()
		if err != nil {
			return "", fmt.Errorf("stats record %d: %w", i+1, err)
		}
		lines = append(lines, l)
	}
	if len(recs) > max {
		lines = append(lines, Ellipsis)
	}
	return strings.Join(lines, "\n"), nil
}
