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
	"encoding/json"
	"fmt"
	"os"

	"github.com/spatialmodel/areaplot"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to AreaPlot.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "loglevel",
			usage: `
              loglevel sets the minimum level of log messages that are printed.
              Valid values are panic, fatal, error, warn, info, debug and trace.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "CSVDir",
			usage: `
              CSVDir is the directory holding the grid snapshots to animate.`,
			defaultVal: "csv_files",
			flagsets:   []*pflag.FlagSet{animateCmd.Flags()},
		},
		{
			name: "FramePrefix",
			usage: `
              FramePrefix is the file name prefix of grid snapshots. The
              iteration number follows the last underscore of the file name,
              for example output_007.csv. Iteration numbers must be zero padded
              for frames to be animated in order.`,
			defaultVal: "output_",
			flagsets:   []*pflag.FlagSet{animateCmd.Flags()},
		},
		{
			name: "ImageDir",
			usage: `
              ImageDir is the directory that rendered frames are written to.
              It is created if it does not exist.`,
			defaultVal: "images",
			flagsets:   []*pflag.FlagSet{animateCmd.Flags()},
		},
		{
			name: "GIFFile",
			usage: `
              GIFFile is the location of the output animation.`,
			shorthand:  "o",
			defaultVal: "animation.gif",
			flagsets:   []*pflag.FlagSet{animateCmd.Flags()},
		},
		{
			name: "FrameDelay",
			usage: `
              FrameDelay is how long each frame of the animation is shown,
              in hundredths of a second.`,
			defaultVal: 50,
			flagsets:   []*pflag.FlagSet{animateCmd.Flags()},
		},
		{
			name: "Cleanup",
			usage: `
              Cleanup specifies whether rendered frames should be deleted
              once the animation has been written.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{animateCmd.Flags()},
		},
		{
			name: "FrameWidth",
			usage: `
              FrameWidth is the width of each frame in inches.`,
			defaultVal: 6.4,
			flagsets:   []*pflag.FlagSet{animateCmd.Flags()},
		},
		{
			name: "FrameHeight",
			usage: `
              FrameHeight is the height of each frame in inches.`,
			defaultVal: 4.8,
			flagsets:   []*pflag.FlagSet{animateCmd.Flags()},
		},
		{
			name: "FrameDPI",
			usage: `
              FrameDPI is the resolution of each frame in dots per inch.`,
			defaultVal: 100,
			flagsets:   []*pflag.FlagSet{animateCmd.Flags()},
		},
		{
			name: "TableDir",
			usage: `
              TableDir is the directory searched for layout grids and their statistics.`,
			defaultVal: ".",
			flagsets:   []*pflag.FlagSet{tablesCmd.Flags()},
		},
		{
			name: "TablePrefix",
			usage: `
              TablePrefix is the file name prefix of layout grids, which are named
              like table_<code>.csv.`,
			defaultVal: "table_",
			flagsets:   []*pflag.FlagSet{tablesCmd.Flags()},
		},
		{
			name: "StatsPrefix",
			usage: `
              StatsPrefix replaces TablePrefix in the name of a layout grid
              to give the name of its statistics file.`,
			defaultVal: "stats_",
			flagsets:   []*pflag.FlagSet{tablesCmd.Flags()},
		},
		{
			name: "ResultsDir",
			usage: `
              ResultsDir is the directory that table plots are written to.
              It is created if it does not exist.`,
			defaultVal: "results",
			flagsets:   []*pflag.FlagSet{tablesCmd.Flags()},
		},
		{
			name: "MaxStats",
			usage: `
              MaxStats is the number of statistics records listed below each
              table plot. An ellipsis marks any records left out.`,
			defaultVal: 5,
			flagsets:   []*pflag.FlagSet{tablesCmd.Flags()},
		},
		{
			name: "TitlesFile",
			usage: `
              TitlesFile is an optional TOML file with a [titles] table mapping
              layout codes to plot titles. Its entries are added to the built-in
              titles, replacing any with the same code.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{tablesCmd.Flags()},
		},
		{
			name: "Titles",
			usage: `
              Titles maps layout codes to plot titles. Its entries take precedence
              over the built-in titles and those in TitlesFile. When set from the
              command line it should be a JSON object, for example
              --Titles='{"xyz":"Custom layout"}'.`,
			defaultVal: map[string]string{},
			flagsets:   []*pflag.FlagSet{tablesCmd.Flags()},
		},
		{
			name: "DPI",
			usage: `
              DPI is the resolution of table and grid plots in dots per inch.`,
			defaultVal: 300,
			flagsets:   []*pflag.FlagSet{tablesCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "Input",
			usage: `
              Input is the grid to plot.`,
			shorthand:  "i",
			defaultVal: "output.csv",
			flagsets:   []*pflag.FlagSet{plotCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the location of the plot image.`,
			defaultVal: "output.png",
			flagsets:   []*pflag.FlagSet{plotCmd.Flags()},
		},
		{
			name: "Title",
			usage: `
              Title is the title of the plot.`,
			defaultVal: "Area Distribution",
			flagsets:   []*pflag.FlagSet{plotCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("AREAPLOT")
	Cfg.AutomaticEnv()

	for _, option := range options {
		first := option.flagsets[0]
		switch v := option.defaultVal.(type) {
		case string:
			first.StringP(option.name, option.shorthand, v, option.usage)
		case bool:
			first.BoolP(option.name, option.shorthand, v, option.usage)
		case int:
			first.IntP(option.name, option.shorthand, v, option.usage)
		case float64:
			first.Float64P(option.name, option.shorthand, v, option.usage)
		case map[string]string:
			// Maps are given on the command line as JSON objects.
			b, err := json.Marshal(v)
			if err != nil {
				panic(err)
			}
			first.StringP(option.name, option.shorthand, string(b), option.usage)
		default:
			panic(fmt.Errorf("areaplot: invalid default value for option %s: %#v", option.name, v))
		}
		f := first.Lookup(option.name)
		for _, set := range option.flagsets[1:] {
			set.AddFlag(f)
		}
		Cfg.BindPFlag(option.name, f)
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(animateCmd)
	Root.AddCommand(tablesCmd)
	Root.AddCommand(plotCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the logging level.
func setConfig() error {
	if cfgpath := os.ExpandEnv(Cfg.GetString("config")); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("areaplot: problem reading configuration file: %w", err)
		}
	}
	return setLogLevel(Cfg.GetString("loglevel"))
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "areaplot",
	Short: "Plot grids of area assignments.",
	Long: `AreaPlot turns grids of integers stored as CSV files into images.
Use the subcommands specified below to animate a sequence of grid snapshots
or to plot layout results together with their summary statistics.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'AREAPLOT_var' where 'var' is the
name of the variable to be set. Configuration variables that name files or
directories are additionally allowed to contain environment variables within them.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of AreaPlot.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("AreaPlot v%s\n", areaplot.Version)
	},
	DisableAutoGenTag: true,
}

// animateCmd renders grid snapshots and combines them into an animation.
var animateCmd = &cobra.Command{
	Use:   "animate",
	Short: "Animate a sequence of grid snapshots.",
	Long: `animate renders every grid snapshot in CSVDir whose name starts with
FramePrefix as a heat map titled with its iteration number, writes the frames
to ImageDir, and combines them in file name order into a looping GIF animation
saved as GIFFile. Frames are kept unless Cleanup is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Animate(Log,
			os.ExpandEnv(Cfg.GetString("CSVDir")),
			Cfg.GetString("FramePrefix"),
			os.ExpandEnv(Cfg.GetString("ImageDir")),
			os.ExpandEnv(Cfg.GetString("GIFFile")),
			Cfg.GetInt("FrameDelay"),
			Cfg.GetBool("Cleanup"),
			FrameOptions(Cfg),
		)
	},
	DisableAutoGenTag: true,
}

// tablesCmd plots every layout grid in a directory.
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Plot layout grids with their statistics.",
	Long: `tables plots every layout grid in TableDir whose name starts with
TablePrefix, titled according to the layout code in its name, with a summary
of the matching statistics file below it. Plots are written to ResultsDir.
The run stops at the first file that cannot be plotted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := TableOptions(Cfg)
		if err != nil {
			return err
		}
		_, err = Batch(Log,
			os.ExpandEnv(Cfg.GetString("TableDir")),
			Cfg.GetString("TablePrefix"),
			Cfg.GetString("StatsPrefix"),
			os.ExpandEnv(Cfg.GetString("ResultsDir")),
			o,
		)
		return err
	},
	DisableAutoGenTag: true,
}

// plotCmd plots a single grid.
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot a single grid.",
	Long: `plot draws the grid in Input with one color per integer value and
saves it to OutputFile with the given Title.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		o := areaplot.DefaultTableOptions()
		o.DPI = Cfg.GetInt("DPI")
		in := os.ExpandEnv(Cfg.GetString("Input"))
		out := os.ExpandEnv(Cfg.GetString("OutputFile"))
		if err := areaplot.PlotGrid(in, out, Cfg.GetString("Title"), o); err != nil {
			return err
		}
		Log.WithField("output", out).Info("saved plot")
		return nil
	},
	DisableAutoGenTag: true,
}
