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
	"strings"

	"gonum.org/v1/gonum/interp"
)

// fwhmFactor converts a full width at half maximum to a Gaussian standard
// deviation: FWHM = 2 sqrt(2 ln 2) sigma.
var fwhmFactor = 2 * math.Sqrt(2*math.Ln2)

// ProfileKind selects how a Gaussian turbulence perturbation maps onto the
// gas surface density.
type ProfileKind int

const (
	// Gap raises alpha locally, carving a deficit in the surface density.
	Gap ProfileKind = iota + 1
	// Bump lowers alpha locally, creating a surface density excess.
	Bump
)

func (k ProfileKind) String() string {
	switch k {
	case Gap:
		return "GAP"
	case Bump:
		return "BUMP"
	default:
		return fmt.Sprintf("ProfileKind(%d)", int(k))
	}
}

// ParseProfileKind converts a configuration string to a ProfileKind.
func ParseProfileKind(s string) (ProfileKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "GAP":
		return Gap, nil
	case "BUMP":
		return Bump, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrProfileKind, s)
	}
}

// Gaussian evaluates A exp(-1/2 ((r-r0)/sigma)²) on the radius array r.
func Gaussian(r []float64, r0, A, sigma float64) []float64 {
	g := make([]float64, len(r))
	for i, ri := range r {
		x := (ri - r0) / sigma
		g[i] = A * math.Exp(-0.5*x*x)
	}
	return g
}

// BumpConfig describes one or more Gaussian perturbations of the turbulence
// profile. Location, Amplitude and Width must have equal nonzero length.
// Width is the FWHM of each perturbation in local pressure scale heights.
//
// ApplyToSigma imprints the perturbation onto the surface density at setup
// time; CorrectMass renormalizes the rescaled density to the original disk
// mass; CopyAlphaToDelta points the dust diffusivities at the gas alpha
// profile.
type BumpConfig struct {
	Location  []float64 // bump centers [cm]
	Amplitude []float64 // dimensionless amplitudes, > -1
	Width     []float64 // FWHM in scale heights, > 0
	Kind      ProfileKind

	ApplyToSigma     bool
	CorrectMass      bool
	CopyAlphaToDelta bool
}

// SingleBump is a convenience constructor for a perturbation with one
// Gaussian. It is equivalent to filling the slices with one element each.
func SingleBump(location, amplitude, width float64, kind ProfileKind) BumpConfig {
	return BumpConfig{
		Location:  []float64{location},
		Amplitude: []float64{amplitude},
		Width:     []float64{width},
		Kind:      kind,
	}
}

func (c BumpConfig) validate(r []float64) error {
	if c.Kind != Gap && c.Kind != Bump {
		return fmt.Errorf("%w: %v", ErrProfileKind, c.Kind)
	}
	if len(c.Location) == 0 {
		return fmt.Errorf("%w: no bumps specified", ErrShapeMismatch)
	}
	if len(c.Amplitude) != len(c.Location) || len(c.Width) != len(c.Location) {
		return fmt.Errorf("%w: %d locations, %d amplitudes, %d widths",
			ErrShapeMismatch, len(c.Location), len(c.Amplitude), len(c.Width))
	}
	for i, w := range c.Width {
		if w <= 0 {
			return fmt.Errorf("%w: width %g of bump %d", ErrNonPositive, w, i)
		}
	}
	for i, a := range c.Amplitude {
		if a <= -1 {
			return fmt.Errorf("diskturb: amplitude %g of bump %d not greater than -1", a, i)
		}
	}
	// Locations outside the sampled scale-height domain are rejected rather
	// than extrapolated.
	for i, loc := range c.Location {
		if loc < r[0] || loc > r[len(r)-1] {
			return fmt.Errorf("%w: bump %d at %g cm, grid spans [%g, %g] cm",
				ErrOutOfDomain, i, loc, r[0], r[len(r)-1])
		}
	}
	return nil
}

// bumpSigmas converts the FWHM-in-scale-heights widths to physical standard
// deviations, interpolating the scale height at each bump center.
func bumpSigmas(r, hp []float64, c BumpConfig) ([]float64, error) {
	var pl interp.PiecewiseLinear
	if err := pl.Fit(r, hp); err != nil {
		return nil, fmt.Errorf("diskturb: interpolating scale height: %w", err)
	}
	sigma := make([]float64, len(c.Location))
	for i, loc := range c.Location {
		sigma[i] = c.Width[i] * pl.Predict(loc) / fwhmFactor
	}
	return sigma, nil
}

func bumpFactor(r []float64, c BumpConfig, sigma []float64) []float64 {
	factor := make([]float64, len(r))
	for i := range factor {
		factor[i] = 1
	}
	for b, loc := range c.Location {
		for i, ri := range r {
			x := (ri - loc) / sigma[b]
			factor[i] += c.Amplitude[b] * math.Exp(-0.5*x*x)
		}
	}
	if c.Kind == Bump {
		for i := range factor {
			factor[i] = 1 / factor[i]
		}
	}
	return factor
}

// BumpProfile computes the multiplicative turbulence perturbation factor on
// the radius array r with scale heights hp. GAP returns the summed Gaussian
// factor directly; BUMP returns its reciprocal.
func BumpProfile(r, hp []float64, c BumpConfig) ([]float64, error) {
	if err := c.validate(r); err != nil {
		return nil, err
	}
	sigma, err := bumpSigmas(r, hp, c)
	if err != nil {
		return nil, err
	}
	return bumpFactor(r, c, sigma), nil
}

// bumpState carries the per-sweep standard deviations between the parameter
// group step and the alpha step.
type bumpState struct {
	cfg   BumpConfig
	sigma []float64
}

// refresh recomputes the physical bump widths from the current scale height
// profile. It runs after the Hp step and before the alpha step.
func (s *bumpState) refresh(d *Disk) error {
	sigma, err := bumpSigmas(d.R, d.Hp, s.cfg)
	if err != nil {
		return err
	}
	s.sigma = sigma
	return nil
}

// alphaStep writes alpha0 times the bump factor into the turbulence profile.
func (s *bumpState) alphaStep(d *Disk) error {
	factor := bumpFactor(d.R, s.cfg, s.sigma)
	for i := range d.Alpha {
		d.Alpha[i] = d.Alpha0 * factor[i]
	}
	return nil
}

// SetupBumps splices a Gaussian bump or gap turbulence profile into the
// disk's update pipeline: a "bumps" parameter step runs after the scale
// height, and the alpha step is replaced by the perturbed profile. The
// configuration is validated before any state is touched. If
// cfg.ApplyToSigma is set, the surface density is rescaled once and the
// returned result reports the mass bookkeeping; otherwise the result is nil.
func SetupBumps(d *Disk, cfg BumpConfig) (*RescaleResult, error) {
	if err := cfg.validate(d.R); err != nil {
		return nil, err
	}
	st := &bumpState{cfg: cfg}
	if err := d.pipeline.InsertBefore("alpha", Step{
		Name:  "bumps",
		After: []string{"Hp"},
		Fn:    st.refresh,
	}); err != nil {
		return nil, err
	}
	if err := d.pipeline.Replace("alpha", st.alphaStep); err != nil {
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
	res, err := RescaleSigmaWithAlpha(d, d.Alpha0, cfg.CorrectMass)
	if err != nil {
		return nil, err
	}
	// Refresh the density-derived fields from the rescaled profile.
	if err := d.Update(); err != nil {
		return nil, err
	}
	return &res, nil
}

// AssignDeltaUpdaters inserts a step after alpha that copies the gas
// turbulence profile into the three dust diffusivity parameters.
func AssignDeltaUpdaters(d *Disk) error {
	return d.pipeline.InsertAfter("alpha", Step{
		Name:  "delta",
		After: []string{"alpha"},
		Fn: func(d *Disk) error {
			copy(d.DeltaRad, d.Alpha)
			copy(d.DeltaTurb, d.Alpha)
			copy(d.DeltaVert, d.Alpha)
			return nil
		},
	})
}
