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
	"reflect"
	"testing"
)

func TestDefaultStepOrder(t *testing.T) {
	d, err := NewDisk(RadialGrid(2.5*AU, 250*AU, 16))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"gamma", "mu", "T", "cs", "Hp", "alpha", "nu", "rho", "n", "mfp", "P", "eta", "S", "check"}
	if got := d.Pipeline().Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("step order %v, want %v", got, want)
	}
}

func TestPipelineRejectsOrderViolation(t *testing.T) {
	ok := func(*Disk) error { return nil }
	_, err := NewPipeline(
		Step{Name: "alpha", After: []string{"Hp"}, Fn: ok},
		Step{Name: "Hp", Fn: ok},
	)
	if !errors.Is(err, ErrStepOrder) {
		t.Errorf("got error %v, want %v", err, ErrStepOrder)
	}

	_, err = NewPipeline(Step{Name: "alpha", After: []string{"Hp"}, Fn: ok})
	if !errors.Is(err, ErrUnknownStep) {
		t.Errorf("got error %v, want %v", err, ErrUnknownStep)
	}

	_, err = NewPipeline(Step{Name: "Hp", Fn: ok}, Step{Name: "Hp", Fn: ok})
	if !errors.Is(err, ErrDuplicateStep) {
		t.Errorf("got error %v, want %v", err, ErrDuplicateStep)
	}
}

func TestPipelineInsertValidates(t *testing.T) {
	ok := func(*Disk) error { return nil }
	p, err := NewPipeline(
		Step{Name: "Hp", Fn: ok},
		Step{Name: "alpha", After: []string{"Hp"}, Fn: ok},
	)
	if err != nil {
		t.Fatal(err)
	}
	// A step requiring alpha cannot be inserted before Hp.
	err = p.InsertBefore("Hp", Step{Name: "nu", After: []string{"alpha"}, Fn: ok})
	if !errors.Is(err, ErrStepOrder) {
		t.Errorf("got error %v, want %v", err, ErrStepOrder)
	}
	if got := p.Names(); !reflect.DeepEqual(got, []string{"Hp", "alpha"}) {
		t.Errorf("pipeline mutated after rejected insert: %v", got)
	}
	if err := p.InsertAfter("alpha", Step{Name: "nu", After: []string{"alpha"}, Fn: ok}); err != nil {
		t.Fatal(err)
	}
	if got := p.Names(); !reflect.DeepEqual(got, []string{"Hp", "alpha", "nu"}) {
		t.Errorf("step order after insert: %v", got)
	}
}

func TestPipelineReplaceUnknown(t *testing.T) {
	p, err := NewPipeline(Step{Name: "Hp", Fn: func(*Disk) error { return nil }})
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Replace("alpha", func(*Disk) error { return nil }); !errors.Is(err, ErrUnknownStep) {
		t.Errorf("got error %v, want %v", err, ErrUnknownStep)
	}
}

func TestPipelineRunStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	ran := false
	p, err := NewPipeline(
		Step{Name: "a", Fn: func(*Disk) error { return boom }},
		Step{Name: "b", Fn: func(*Disk) error { ran = true; return nil }},
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Run(nil); !errors.Is(err, boom) {
		t.Errorf("got error %v, want %v", err, boom)
	}
	if ran {
		t.Error("later step ran after earlier failure")
	}
}

func TestNewDiskDerivedFields(t *testing.T) {
	d, err := NewDisk(
		RadialGrid(2.5*AU, 250*AU, 64),
		GasMass(0.05*MSun),
		Alpha0(5e-4),
	)
	if err != nil {
		t.Fatal(err)
	}
	for i := range d.Alpha {
		if d.Alpha[i] != d.Alpha0 {
			t.Fatalf("default alpha %g at cell %d, want %g", d.Alpha[i], i, d.Alpha0)
		}
		if different(d.Nu[i], d.Alpha[i]*d.Cs[i]*d.Hp[i], testTolerance) {
			t.Fatalf("nu inconsistent at cell %d", i)
		}
		if different(d.P[i], d.Rho[i]*d.Cs[i]*d.Cs[i], testTolerance) {
			t.Fatalf("pressure inconsistent at cell %d", i)
		}
	}
	// Temperature decreases and the aspect ratio flares outward.
	for i := 1; i < len(d.R); i++ {
		if d.T[i] >= d.T[i-1] {
			t.Fatalf("temperature not decreasing at cell %d", i)
		}
		if d.Hp[i]/d.R[i] <= d.Hp[i-1]/d.R[i-1] {
			t.Fatalf("aspect ratio not flaring at cell %d", i)
		}
	}
	if different(d.GasMass(), 0.05*MSun, testTolerance) {
		t.Errorf("gas mass %g, want %g", d.GasMass(), 0.05*MSun)
	}
}

func TestInitOptionValidation(t *testing.T) {
	cases := []struct {
		name   string
		option InitOption
	}{
		{"negative star mass", StarMass(-MSun)},
		{"zero luminosity", StarLuminosity(0)},
		{"inverted grid", RadialGrid(250*AU, 2.5*AU, 100)},
		{"one cell", RadialGrid(2.5*AU, 250*AU, 1)},
		{"zero gas mass", GasMass(0)},
		{"zero critical radius", CriticalRadius(0)},
		{"negative alpha", Alpha0(-1e-3)},
		{"negative dust bins", DustBins(-1)},
		{"negative dust ratio", DustToGas(-0.01)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewDisk(c.option); err == nil {
				t.Error("invalid option accepted")
			}
		})
	}
}
