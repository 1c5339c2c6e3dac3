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

package diskturb

import (
	"fmt"
	"math"
)

// DeadZoneConfig describes a parametric dead zone: a region of suppressed
// turbulence inside OuterRadius with a smooth exponential transition of the
// given width to the active outer disk.
type DeadZoneConfig struct {
	AlphaActive     float64 // turbulence in the MRI-active region, > 0
	AlphaDead       float64 // turbulence inside the dead zone, > 0
	OuterRadius     float64 // dead-to-active transition location [cm], > 0
	TransitionWidth float64 // transition width [cm], > 0

	ApplyToSigma     bool
	CorrectMass      bool
	CopyAlphaToDelta bool
}

func (c DeadZoneConfig) validate() error {
	if c.AlphaActive <= 0 {
		return fmt.Errorf("%w: active alpha %g", ErrNonPositive, c.AlphaActive)
	}
	if c.AlphaDead <= 0 {
		return fmt.Errorf("%w: dead alpha %g", ErrNonPositive, c.AlphaDead)
	}
	if c.OuterRadius <= 0 {
		return fmt.Errorf("%w: outer radius %g cm", ErrNonPositive, c.OuterRadius)
	}
	if c.TransitionWidth <= 0 {
		return fmt.Errorf("%w: transition width %g cm", ErrNonPositive, c.TransitionWidth)
	}
	return nil
}

// DeadZoneProfile computes the turbulence profile of a parametric dead zone
// on the radius array r. The transition shape rises from 0 deep inside the
// dead zone through exactly 0.5 at OuterRadius toward 1 far outside, so
// alpha goes from AlphaDead to AlphaActive.
func DeadZoneProfile(r []float64, c DeadZoneConfig) ([]float64, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	alpha := make([]float64, len(r))
	for i, ri := range r {
		x := ri - c.OuterRadius
		var shape float64
		if x < 0 {
			shape = 0.5 * math.Exp(x/c.TransitionWidth)
		} else {
			shape = 1 - 0.5*math.Exp(-x/c.TransitionWidth)
		}
		alpha[i] = c.AlphaDead + (c.AlphaActive-c.AlphaDead)*shape
	}
	return alpha, nil
}

// SetupDeadZone replaces the disk's alpha step with the parametric dead
// zone profile. The configuration is validated before any state is touched.
// If cfg.ApplyToSigma is set, the surface density is rescaled once against
// AlphaActive and the returned result reports the mass bookkeeping;
// otherwise the result is nil.
func SetupDeadZone(d *Disk, cfg DeadZoneConfig) (*RescaleResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	err := d.pipeline.Replace("alpha", func(d *Disk) error {
		alpha, err := DeadZoneProfile(d.R, cfg)
		if err != nil {
			return err
		}
		copy(d.Alpha, alpha)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if cfg.CopyAlphaToDelta {
		if err := AssignDeltaUpdaters(d); err != nil {
			return nil, err
		}
	}
	if err := d.Update(); err != nil {
		return nil, err
	}
	if !cfg.ApplyToSigma {
		return nil, nil
	}
	res, err := RescaleSigmaWithAlpha(d, cfg.AlphaActive, cfg.CorrectMass)
	if err != nil {
		return nil, err
	}
	if err := d.Update(); err != nil {
		return nil, err
	}
	return &res, nil
}
