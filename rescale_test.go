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
	"errors"
	"math"
	"testing"
)

// rescaleDisk builds a minimal disk state with a non-uniform alpha profile
// for exercising the rescaler directly.
func rescaleDisk() *Disk {
	n := 10
	d := &Disk{
		R:     linspace(1, 10, n),
		Area:  constant(2, n),
		Sigma: linspace(100, 10, n),
		Alpha: make([]float64, n),
	}
	d.SigmaDust = make([][]float64, n)
	for i := range d.SigmaDust {
		d.Alpha[i] = 1e-3 * (1 + 0.5*math.Sin(float64(i)))
		d.SigmaDust[i] = []float64{0.01 * d.Sigma[i], 0.002 * d.Sigma[i]}
	}
	return d
}

func TestRescaleConservesMass(t *testing.T) {
	d := rescaleDisk()
	m0 := d.GasMass()
	res, err := RescaleSigmaWithAlpha(d, 1e-3, true)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Corrected {
		t.Error("result not marked corrected")
	}
	if different(d.GasMass(), m0, testTolerance) {
		t.Errorf("gas mass %g after corrected rescale, want %g", d.GasMass(), m0)
	}
	if res.InitialMass != m0 {
		t.Errorf("recorded initial mass %g, want %g", res.InitialMass, m0)
	}
}

func TestRescaleReportsDrift(t *testing.T) {
	d := rescaleDisk()
	m0 := d.GasMass()
	res, err := RescaleSigmaWithAlpha(d, 1e-3, false)
	if err != nil {
		t.Fatal(err)
	}
	if res.Corrected {
		t.Error("result marked corrected without correctMass")
	}
	if different(d.GasMass(), m0*res.Ratio, testTolerance) {
		t.Errorf("gas mass %g, want drift ratio %g of %g", d.GasMass(), res.Ratio, m0)
	}
}

func TestRescaleAppliesUniformlyToDust(t *testing.T) {
	d := rescaleDisk()
	ratios := make([]float64, len(d.Sigma))
	for i := range ratios {
		ratios[i] = d.SigmaDust[i][0] / d.Sigma[i]
	}
	if _, err := RescaleSigmaWithAlpha(d, 1e-3, true); err != nil {
		t.Fatal(err)
	}
	for i := range ratios {
		if different(d.SigmaDust[i][0]/d.Sigma[i], ratios[i], testTolerance) {
			t.Fatalf("dust-to-gas ratio changed at cell %d", i)
		}
	}
}

func TestRescaleDegenerateAlpha(t *testing.T) {
	d := rescaleDisk()
	sigma := append([]float64(nil), d.Sigma...)

	d.Alpha[3] = 0
	if _, err := RescaleSigmaWithAlpha(d, 1e-3, true); !errors.Is(err, ErrDegenerateAlpha) {
		t.Errorf("zero alpha: got error %v, want %v", err, ErrDegenerateAlpha)
	}
	d.Alpha[3] = math.NaN()
	if _, err := RescaleSigmaWithAlpha(d, 1e-3, true); !errors.Is(err, ErrNotFinite) {
		t.Errorf("NaN alpha: got error %v, want %v", err, ErrNotFinite)
	}
	if _, err := RescaleSigmaWithAlpha(d, 0, true); !errors.Is(err, ErrNonPositive) {
		t.Errorf("zero alpha0: got error %v, want %v", err, ErrNonPositive)
	}
	for i := range sigma {
		if d.Sigma[i] != sigma[i] {
			t.Fatalf("sigma mutated at cell %d despite failed rescale", i)
		}
	}
}

func TestSetupBumpsRescaleEndToEnd(t *testing.T) {
	d, err := NewDisk(RadialGrid(2.5*AU, 250*AU, 128))
	if err != nil {
		t.Fatal(err)
	}
	m0 := d.GasMass()

	cfg := SingleBump(40*AU, 4, 1, Gap)
	cfg.ApplyToSigma = true
	cfg.CorrectMass = true
	res, err := SetupBumps(d, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if res == nil {
		t.Fatal("no rescale result returned with ApplyToSigma")
	}
	if different(d.GasMass(), m0, testTolerance) {
		t.Errorf("gas mass %g after corrected rescale, want %g", d.GasMass(), m0)
	}

	// A gap-type perturbation leaves a deficit in the surface density at the
	// bump location relative to the neighboring cells.
	peak := 0
	for i := range d.Alpha {
		if d.Alpha[i] > d.Alpha[peak] {
			peak = i
		}
	}
	inner, outer := peak-10, peak+10
	interp := 0.5 * (d.Sigma[inner] + d.Sigma[outer])
	if d.Sigma[peak] > 0.5*interp {
		t.Errorf("sigma at gap %g not suppressed relative to surroundings %g", d.Sigma[peak], interp)
	}
}

func TestSetupDeadZoneRescale(t *testing.T) {
	d, err := NewDisk(RadialGrid(2.5*AU, 250*AU, 96))
	if err != nil {
		t.Fatal(err)
	}
	m0 := d.GasMass()
	sigmaInner := d.Sigma[0]

	cfg := DeadZoneConfig{
		AlphaActive:     d.Alpha0,
		AlphaDead:       1e-4,
		OuterRadius:     10 * AU,
		TransitionWidth: 1 * AU,
		ApplyToSigma:    true,
		CorrectMass:     true,
	}
	res, err := SetupDeadZone(d, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if res == nil || !res.Corrected {
		t.Fatal("expected corrected rescale result")
	}
	if different(d.GasMass(), m0, testTolerance) {
		t.Errorf("gas mass %g after corrected rescale, want %g", d.GasMass(), m0)
	}
	// The dead zone suppresses alpha inside 10 au, so the quasi-steady
	// density is enhanced there even after mass correction.
	if d.Sigma[0] < 2*sigmaInner*res.InitialMass/res.ScaledMass {
		// The enhancement is alpha0/alphaDead ~ 10 before correction.
		t.Errorf("sigma at inner edge %g shows no dead-zone pile-up (was %g)", d.Sigma[0], sigmaInner)
	}
}
