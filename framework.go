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
)

// Disk holds the current state of the 1-D gas disk model. All radial field
// arrays share the ordering of R. Field arrays are recomputed by the update
// pipeline; the grid arrays are fixed after initialization.
type Disk struct {
	StarMass       float64 `desc:"Stellar mass" units:"g"`
	StarLuminosity float64 `desc:"Stellar luminosity" units:"erg/s"`
	IrradAngle     float64 `desc:"Disk flaring irradiation angle" units:"-"`

	R      []float64 `desc:"Radial cell centers" units:"cm"`
	RInt   []float64 `desc:"Radial cell interfaces" units:"cm"`
	Area   []float64 `desc:"Annulus surface areas" units:"cm²"`
	OmegaK []float64 `desc:"Keplerian orbital frequency" units:"1/s"`

	Gamma float64 `desc:"Adiabatic index" units:"-"`
	Mu    float64 `desc:"Mean molecular weight" units:"proton masses"`

	T     []float64 `desc:"Midplane gas temperature" units:"K"`
	Cs    []float64 `desc:"Adiabatic sound speed" units:"cm/s"`
	Hp    []float64 `desc:"Pressure scale height" units:"cm"`
	Alpha []float64 `desc:"Turbulent viscosity parameter" units:"-"`
	Nu    []float64 `desc:"Kinematic viscosity" units:"cm²/s"`
	Rho   []float64 `desc:"Midplane mass density" units:"g/cm³"`
	N     []float64 `desc:"Midplane number density" units:"1/cm³"`
	Mfp   []float64 `desc:"Mean free path" units:"cm"`
	P     []float64 `desc:"Midplane pressure" units:"erg/cm³"`
	Eta   []float64 `desc:"Pressure gradient parameter" units:"-"`
	S     []float64 `desc:"External gas source terms" units:"g/cm²/s"`

	Sigma     []float64   `desc:"Gas surface density" units:"g/cm²"`
	SigmaDust [][]float64 `desc:"Dust surface density per size bin" units:"g/cm²"`

	DeltaRad  []float64 `desc:"Radial dust diffusivity" units:"-"`
	DeltaTurb []float64 `desc:"Turbulent dust collision velocity parameter" units:"-"`
	DeltaVert []float64 `desc:"Vertical dust settling parameter" units:"-"`

	Alpha0 float64 `desc:"Reference turbulence value" units:"-"`

	// Initialization parameters, fixed by InitOptions before the grid and
	// the initial conditions are constructed.
	rMin, rMax float64
	nr         int
	gasMass    float64
	sigmaRc    float64
	nDust      int
	dustToGas  float64

	pipeline *Pipeline
}

// A DiskManipulator updates fields of a Disk.
type DiskManipulator func(d *Disk) error

// A Step is a named element of the update pipeline. After lists the names of
// the steps that must run earlier in the same sweep; the pipeline refuses
// any ordering that violates these declarations.
type Step struct {
	Name  string
	After []string
	Fn    DiskManipulator
}

// Pipeline is an ordered sequence of named update steps with validated
// prerequisites.
type Pipeline struct {
	steps []Step
}

// NewPipeline creates a pipeline from steps, checking that step names are
// unique and that every declared prerequisite runs earlier in the sequence.
func NewPipeline(steps ...Step) (*Pipeline, error) {
	p := &Pipeline{steps: steps}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pipeline) validate() error {
	index := make(map[string]int, len(p.steps))
	for i, s := range p.steps {
		if _, ok := index[s.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateStep, s.Name)
		}
		index[s.Name] = i
	}
	for i, s := range p.steps {
		for _, dep := range s.After {
			j, ok := index[dep]
			if !ok {
				return fmt.Errorf("%w: step %q requires %q", ErrUnknownStep, s.Name, dep)
			}
			if j >= i {
				return fmt.Errorf("%w: step %q must run after %q", ErrStepOrder, s.Name, dep)
			}
		}
	}
	return nil
}

// Run executes the steps in order, stopping at the first error.
func (p *Pipeline) Run(d *Disk) error {
	for _, s := range p.steps {
		if err := s.Fn(d); err != nil {
			return fmt.Errorf("step %q: %w", s.Name, err)
		}
	}
	return nil
}

// Names returns the step names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name
	}
	return names
}

func (p *Pipeline) find(name string) (int, error) {
	for i, s := range p.steps {
		if s.Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStep, name)
}

// Replace swaps the function of the named step, keeping its name and
// ordering constraints.
func (p *Pipeline) Replace(name string, fn DiskManipulator) error {
	i, err := p.find(name)
	if err != nil {
		return err
	}
	p.steps[i].Fn = fn
	return nil
}

// InsertBefore inserts step s immediately before the named step. The
// resulting order must still satisfy all prerequisite declarations.
func (p *Pipeline) InsertBefore(name string, s Step) error {
	i, err := p.find(name)
	if err != nil {
		return err
	}
	return p.insert(i, s)
}

// InsertAfter inserts step s immediately after the named step.
func (p *Pipeline) InsertAfter(name string, s Step) error {
	i, err := p.find(name)
	if err != nil {
		return err
	}
	return p.insert(i+1, s)
}

// Append adds step s to the end of the pipeline.
func (p *Pipeline) Append(s Step) error {
	return p.insert(len(p.steps), s)
}

func (p *Pipeline) insert(i int, s Step) error {
	steps := make([]Step, 0, len(p.steps)+1)
	steps = append(steps, p.steps[:i]...)
	steps = append(steps, s)
	steps = append(steps, p.steps[i:]...)
	old := p.steps
	p.steps = steps
	if err := p.validate(); err != nil {
		p.steps = old
		return err
	}
	return nil
}

// An InitOption sets initialization parameters of a Disk before the grid and
// initial conditions are constructed.
type InitOption func(*Disk) error

// StarMass sets the stellar mass [g].
func StarMass(m float64) InitOption {
	return func(d *Disk) error {
		if m <= 0 {
			return fmt.Errorf("%w: stellar mass %g g", ErrNonPositive, m)
		}
		d.StarMass = m
		return nil
	}
}

// StarLuminosity sets the stellar luminosity [erg/s].
func StarLuminosity(l float64) InitOption {
	return func(d *Disk) error {
		if l <= 0 {
			return fmt.Errorf("%w: stellar luminosity %g erg/s", ErrNonPositive, l)
		}
		d.StarLuminosity = l
		return nil
	}
}

// RadialGrid sets the extent and resolution of the logarithmic radial grid.
func RadialGrid(rMin, rMax float64, nr int) InitOption {
	return func(d *Disk) error {
		if rMin <= 0 || rMax <= 0 {
			return fmt.Errorf("%w: grid extent [%g, %g] cm", ErrNonPositive, rMin, rMax)
		}
		if rMax <= rMin {
			return fmt.Errorf("diskturb: grid maximum %g cm not greater than minimum %g cm", rMax, rMin)
		}
		if nr < 2 {
			return fmt.Errorf("diskturb: need at least 2 radial cells, got %d", nr)
		}
		d.rMin, d.rMax, d.nr = rMin, rMax, nr
		return nil
	}
}

// GasMass sets the initial gas disk mass [g].
func GasMass(m float64) InitOption {
	return func(d *Disk) error {
		if m <= 0 {
			return fmt.Errorf("%w: gas mass %g g", ErrNonPositive, m)
		}
		d.gasMass = m
		return nil
	}
}

// CriticalRadius sets the cutoff radius of the initial self-similar surface
// density profile [cm].
func CriticalRadius(rc float64) InitOption {
	return func(d *Disk) error {
		if rc <= 0 {
			return fmt.Errorf("%w: critical radius %g cm", ErrNonPositive, rc)
		}
		d.sigmaRc = rc
		return nil
	}
}

// Alpha0 sets the reference turbulence parameter.
func Alpha0(a float64) InitOption {
	return func(d *Disk) error {
		if a <= 0 {
			return fmt.Errorf("%w: alpha %g", ErrNonPositive, a)
		}
		d.Alpha0 = a
		return nil
	}
}

// DustBins sets the number of dust size bins.
func DustBins(n int) InitOption {
	return func(d *Disk) error {
		if n < 0 {
			return fmt.Errorf("diskturb: negative dust bin count %d", n)
		}
		d.nDust = n
		return nil
	}
}

// DustToGas sets the initial dust-to-gas mass ratio.
func DustToGas(eps float64) InitOption {
	return func(d *Disk) error {
		if eps < 0 {
			return fmt.Errorf("diskturb: negative dust-to-gas ratio %g", eps)
		}
		d.dustToGas = eps
		return nil
	}
}

// NewDisk creates a disk model, applies the given options, constructs the
// radial grid and initial conditions, and runs one update sweep so that all
// derived fields are consistent on return.
func NewDisk(options ...InitOption) (*Disk, error) {
	d := &Disk{
		StarMass:       MSun,
		StarLuminosity: LSun,
		IrradAngle:     DefaultIrradAngle,
		Gamma:          DefaultGamma,
		Mu:             DefaultMu,
		Alpha0:         1e-3,
		rMin:           2.5 * AU,
		rMax:           250 * AU,
		nr:             150,
		sigmaRc:        60 * AU,
		nDust:          8,
		dustToGas:      0.01,
	}
	d.gasMass = 0.1 * d.StarMass
	for _, option := range options {
		if err := option(d); err != nil {
			return nil, err
		}
	}
	if err := d.initialize(); err != nil {
		return nil, err
	}
	if err := d.Update(); err != nil {
		return nil, err
	}
	return d, nil
}

// initialize constructs the grid, allocates the field arrays, sets the
// initial conditions and installs the default update pipeline.
func (d *Disk) initialize() error {
	if err := d.setupGrid(); err != nil {
		return err
	}
	n := len(d.R)
	for _, f := range []*[]float64{
		&d.T, &d.Cs, &d.Hp, &d.Alpha, &d.Nu, &d.Rho, &d.N, &d.Mfp,
		&d.P, &d.Eta, &d.S, &d.DeltaRad, &d.DeltaTurb, &d.DeltaVert,
	} {
		*f = make([]float64, n)
	}
	for i := range d.Alpha {
		d.Alpha[i] = d.Alpha0
		d.DeltaRad[i] = d.Alpha0
		d.DeltaTurb[i] = d.Alpha0
		d.DeltaVert[i] = d.Alpha0
	}
	d.setupInitialConditions()
	p, err := NewPipeline(DefaultGasSteps()...)
	if err != nil {
		return err
	}
	d.pipeline = p
	return nil
}

// Pipeline returns the disk's update pipeline.
func (d *Disk) Pipeline() *Pipeline {
	return d.pipeline
}

// Update runs one full sweep of the update pipeline, recomputing every
// derived field in dependency order.
func (d *Disk) Update() error {
	return d.pipeline.Run(d)
}
