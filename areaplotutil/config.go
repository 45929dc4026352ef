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
	"encoding/json"
	"fmt"
	"os"

	"github.com/spatialmodel/areaplot"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"
)

// FrameOptions returns the frame rendering options specified in cfg.
func FrameOptions(cfg *viper.Viper) areaplot.FrameOptions {
	o := areaplot.DefaultFrameOptions()
	o.Width = vg.Length(cfg.GetFloat64("FrameWidth")) * vg.Inch
	o.Height = vg.Length(cfg.GetFloat64("FrameHeight")) * vg.Inch
	o.DPI = cfg.GetInt("FrameDPI")
	return o
}

// TableOptions returns the table plotting options specified in cfg.
// Titles are the built-in titles, overridden by those in the file named
// by TitlesFile and then by the Titles option.
func TableOptions(cfg *viper.Viper) (areaplot.TableOptions, error) {
	o := areaplot.DefaultTableOptions()
	o.DPI = cfg.GetInt("DPI")
	o.MaxStats = cfg.GetInt("MaxStats")

	if path := os.ExpandEnv(cfg.GetString("TitlesFile")); path != "" {
		t, err := readTitlesFile(path)
		if err != nil {
			return o, err
		}
		o.Titles = o.Titles.Merge(t)
	}
	t, err := GetStringMapString("Titles", cfg)
	if err != nil {
		return o, err
	}
	o.Titles = o.Titles.Merge(areaplot.Titles(t))
	return o, nil
}

func readTitlesFile(path string) (areaplot.Titles, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("areaplot: opening titles file: %w", err)
	}
	defer f.Close()
	t, err := areaplot.ReadTitles(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return t, nil
}

// GetStringMapString returns a map[string]string from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument or environment variable.
func GetStringMapString(varName string, cfg *viper.Viper) (map[string]string, error) {
	i := cfg.Get(varName)
	switch v := i.(type) {
	case nil:
		return nil, nil
	case map[string]string:
		return v, nil
	case map[string]interface{}:
		return cast.ToStringMapStringE(v)
	case string:
		o := make(map[string]string)
		if v == "" {
			return o, nil
		}
		d := json.NewDecoder(bytes.NewBufferString(v))
		if err := d.Decode(&o); err != nil {
			return nil, fmt.Errorf("areaplot: parsing %s: %w", varName, err)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("areaplot: invalid type for %s: %#v", varName, i)
	}
}
