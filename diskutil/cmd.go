/*
Copyright © 2026 the DiskTurb authors.
This file is part of DiskTurb.

DiskTurb is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

DiskTurb is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with DiskTurb.  If not, see <http://www.gnu.org/licenses/>.
*/

package diskutil

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/lnashier/viper"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/astromodel/diskturb"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *slog.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to DiskTurb.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the scenario file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "output",
			usage: `
              output overrides the profile output file location from the
              scenario file.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{bumpsCmd.Flags(), deadzoneCmd.Flags()},
		},
		{
			name: "loglevel",
			usage: `
              loglevel sets the verbosity of status messages:
              debug, info, warn, or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("DISKTURB")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(bumpsCmd)
	Root.AddCommand(deadzoneCmd)
	Root.AddCommand(stepsCmd)
}

// setup initializes the logger and loads the scenario configuration.
func setup() (*Config, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cast.ToString(Cfg.Get("loglevel")))); err != nil {
		return nil, fmt.Errorf("diskutil: invalid log level: %w", err)
	}
	logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))

	cfg := DefaultConfig()
	if path := Cfg.GetString("config"); path != "" {
		var err error
		if cfg, err = ReadConfig(path); err != nil {
			return nil, err
		}
		logger.Debug("scenario loaded", "file", path)
	}
	if out := Cfg.GetString("output"); out != "" {
		cfg.OutputFile = out
	}
	return cfg, nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "diskturb",
	Short: "Turbulence-profile setup for a 1-D protoplanetary disk model.",
	Long: `DiskTurb configures the turbulent alpha parameter of a 1-D gas disk
model, either with Gaussian bumps that carve gaps (or pile up bumps) in the
gas surface density, or with a parametric dead zone.

Scenarios are described by a TOML file given with the --config flag;
command-line flags and environment variables in the format 'DISKTURB_var'
override individual settings. The resulting radial profiles are written as
CSV.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("DiskTurb v%s\n", diskturb.Version)
	},
	DisableAutoGenTag: true,
}

var bumpsCmd = &cobra.Command{
	Use:   "bumps",
	Short: "Set up a bump or gap turbulence profile.",
	Long: `bumps builds the disk model, splices the Gaussian bump profile from
the [Bumps] scenario section into the update pipeline, optionally rescales
the surface density, and writes the resulting radial profiles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}
		if cfg.Bumps == nil {
			return fmt.Errorf("diskutil: scenario has no [Bumps] section")
		}
		spec, err := cfg.Bumps.Spec()
		if err != nil {
			return err
		}
		d, err := cfg.Disk()
		if err != nil {
			return err
		}
		res, err := diskturb.SetupBumps(d, spec)
		if err != nil {
			return err
		}
		return report(d, res, cfg.OutputFile)
	},
	DisableAutoGenTag: true,
}

var deadzoneCmd = &cobra.Command{
	Use:   "deadzone",
	Short: "Set up a dead-zone turbulence profile.",
	Long: `deadzone builds the disk model, replaces the alpha update step with
the parametric dead zone from the [DeadZone] scenario section, optionally
rescales the surface density, and writes the resulting radial profiles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}
		if cfg.DeadZone == nil {
			return fmt.Errorf("diskutil: scenario has no [DeadZone] section")
		}
		d, err := cfg.Disk()
		if err != nil {
			return err
		}
		res, err := diskturb.SetupDeadZone(d, cfg.DeadZone.Spec())
		if err != nil {
			return err
		}
		return report(d, res, cfg.OutputFile)
	},
	DisableAutoGenTag: true,
}

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Print the field update order of the default pipeline.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}
		d, err := cfg.Disk()
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(d.Pipeline().Names(), " -> "))
		return nil
	},
	DisableAutoGenTag: true,
}

func report(d *diskturb.Disk, res *diskturb.RescaleResult, output string) error {
	if res != nil {
		logger.Info("surface density rescaled",
			"ratio", res.Ratio,
			"corrected", res.Corrected,
			"gas_mass_g", d.GasMass())
	}
	if err := WriteProfilesFile(output, d); err != nil {
		return err
	}
	logger.Info("profiles written", "file", output, "cells", len(d.R))
	return nil
}
