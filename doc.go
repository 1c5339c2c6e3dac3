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

// Package diskturb configures the turbulence parameter of a 1-D
// protoplanetary gas disk model. It provides two alternative alpha profiles:
// localized Gaussian perturbations that carve gaps (or pile up bumps) in the
// gas surface density, and a parametric dead zone with a smooth exponential
// transition at its outer edge.
//
// The disk state lives in a Disk, whose derived fields are recomputed by an
// ordered pipeline of named update steps. The profile setups splice
// themselves into that pipeline between the scale height and the fields
// that depend on alpha:
//
//	d, err := diskturb.NewDisk()
//	if err != nil {
//		log.Fatal(err)
//	}
//	cfg := diskturb.SingleBump(40*diskturb.AU, 4, 1, diskturb.Gap)
//	cfg.ApplyToSigma = true
//	res, err := diskturb.SetupBumps(d, cfg)
//
// Rescaling the surface density against the perturbed alpha profile is a
// one-shot setup operation; the profile steps themselves are pure and run on
// every update sweep.
package diskturb
