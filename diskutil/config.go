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
	"os"

	"github.com/BurntSushi/toml"

	"github.com/astromodel/diskturb"
)

// Config describes a disk scenario. Lengths are in astronomical units and
// masses in solar units; the conversion to CGS happens when the disk is
// built.
type Config struct {
	// StarMass is the stellar mass [M_sun].
	StarMass float64
	// Luminosity is the stellar luminosity [L_sun].
	Luminosity float64
	// GasMass is the initial gas disk mass [M_sun].
	GasMass float64
	// SigmaRc is the critical radius of the initial surface density
	// profile [au].
	SigmaRc float64
	// Alpha is the reference turbulence parameter.
	Alpha float64
	// RMin and RMax are the radial grid extent [au].
	RMin, RMax float64
	// Nr is the number of radial grid cells.
	Nr int
	// DustBins is the number of dust size bins.
	DustBins int
	// DustToGas is the initial dust-to-gas mass ratio.
	DustToGas float64
	// OutputFile is the path the resulting profiles are written to.
	// May contain environment variables.
	OutputFile string

	// Bumps configures Gaussian turbulence perturbations.
	Bumps *BumpsConfig
	// DeadZone configures a parametric dead zone.
	DeadZone *DeadZoneConfig
}

// BumpsConfig mirrors diskturb.BumpConfig with lengths in astronomical
// units and the profile kind as a string.
type BumpsConfig struct {
	Location  []float64 // bump centers [au]
	Amplitude []float64
	Width     []float64 // FWHM in scale heights
	Kind      string    // "GAP" or "BUMP"

	ApplyToSigma     bool
	CorrectMass      bool
	CopyAlphaToDelta bool
}

// DeadZoneConfig mirrors diskturb.DeadZoneConfig with lengths in
// astronomical units.
type DeadZoneConfig struct {
	AlphaActive     float64
	AlphaDead       float64
	OuterRadius     float64 // [au]
	TransitionWidth float64 // [au]

	ApplyToSigma     bool
	CorrectMass      bool
	CopyAlphaToDelta bool
}

// DefaultConfig returns the scenario defaults: a T Tauri star with a tenth
// of its mass in gas, and a single gap-carving bump at 40 au.
func DefaultConfig() *Config {
	return &Config{
		StarMass:   1,
		Luminosity: 1,
		GasMass:    0.1,
		SigmaRc:    60,
		Alpha:      1e-3,
		RMin:       2.5,
		RMax:       250,
		Nr:         150,
		DustBins:   8,
		DustToGas:  0.01,
		OutputFile: "profiles.csv",
		Bumps: &BumpsConfig{
			Location:     []float64{40},
			Amplitude:    []float64{4},
			Width:        []float64{1},
			Kind:         "GAP",
			ApplyToSigma: true,
		},
		DeadZone: &DeadZoneConfig{
			AlphaActive:      1e-3,
			AlphaDead:        1e-4,
			OuterRadius:      10,
			TransitionWidth:  1,
			ApplyToSigma:     true,
			CorrectMass:      true,
			CopyAlphaToDelta: true,
		},
	}
}

// ReadConfig reads a TOML scenario file over the defaults.
func ReadConfig(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("diskutil: reading configuration file: %w", err)
	}
	cfg := DefaultConfig()
	if _, err := toml.Decode(string(b), cfg); err != nil {
		return nil, fmt.Errorf("diskutil: parsing configuration file %s: %w", filename, err)
	}
	cfg.OutputFile = os.ExpandEnv(cfg.OutputFile)
	return cfg, nil
}

// Disk builds a disk model from the scenario.
func (c *Config) Disk() (*diskturb.Disk, error) {
	return diskturb.NewDisk(
		diskturb.StarMass(c.StarMass*diskturb.MSun),
		diskturb.StarLuminosity(c.Luminosity*diskturb.LSun),
		diskturb.GasMass(c.GasMass*diskturb.MSun),
		diskturb.CriticalRadius(c.SigmaRc*diskturb.AU),
		diskturb.Alpha0(c.Alpha),
		diskturb.RadialGrid(c.RMin*diskturb.AU, c.RMax*diskturb.AU, c.Nr),
		diskturb.DustBins(c.DustBins),
		diskturb.DustToGas(c.DustToGas),
	)
}

// Spec converts the bump section to model units.
func (c *BumpsConfig) Spec() (diskturb.BumpConfig, error) {
	kind, err := diskturb.ParseProfileKind(c.Kind)
	if err != nil {
		return diskturb.BumpConfig{}, err
	}
	loc := make([]float64, len(c.Location))
	for i, l := range c.Location {
		loc[i] = l * diskturb.AU
	}
	return diskturb.BumpConfig{
		Location:         loc,
		Amplitude:        append([]float64(nil), c.Amplitude...),
		Width:            append([]float64(nil), c.Width...),
		Kind:             kind,
		ApplyToSigma:     c.ApplyToSigma,
		CorrectMass:      c.CorrectMass,
		CopyAlphaToDelta: c.CopyAlphaToDelta,
	}, nil
}

// Spec converts the dead zone section to model units.
func (c *DeadZoneConfig) Spec() diskturb.DeadZoneConfig {
	return diskturb.DeadZoneConfig{
		AlphaActive:      c.AlphaActive,
		AlphaDead:        c.AlphaDead,
		OuterRadius:      c.OuterRadius * diskturb.AU,
		TransitionWidth:  c.TransitionWidth * diskturb.AU,
		ApplyToSigma:     c.ApplyToSigma,
		CorrectMass:      c.CorrectMass,
		CopyAlphaToDelta: c.CopyAlphaToDelta,
	}
}
