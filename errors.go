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

import "errors"

// Configuration and runtime errors. All setup-time validation failures wrap
// one of these sentinels so callers can match with errors.Is.
var (
	// ErrProfileKind indicates an unrecognized turbulence profile kind.
	ErrProfileKind = errors.New("diskturb: unknown profile kind")

	// ErrShapeMismatch indicates bump parameter slices of unequal length.
	ErrShapeMismatch = errors.New("diskturb: mismatched parameter lengths")

	// ErrNonPositive indicates a parameter that must be positive but isn't.
	ErrNonPositive = errors.New("diskturb: parameter must be positive")

	// ErrOutOfDomain indicates a location outside the radial grid.
	ErrOutOfDomain = errors.New("diskturb: location outside radial grid")

	// ErrDegenerateAlpha indicates a zero or negative turbulence value that
	// would poison a downstream division.
	ErrDegenerateAlpha = errors.New("diskturb: degenerate alpha value")

	// ErrNotFinite indicates a NaN or Inf in a recomputed field.
	ErrNotFinite = errors.New("diskturb: non-finite field value")

	// ErrStepOrder indicates an update step scheduled before one of its
	// declared prerequisites.
	ErrStepOrder = errors.New("diskturb: update step ordering violated")

	// ErrUnknownStep indicates a reference to an update step that is not in
	// the pipeline.
	ErrUnknownStep = errors.New("diskturb: unknown update step")

	// ErrDuplicateStep indicates two update steps registered under the same
	// name.
	ErrDuplicateStep = errors.New("diskturb: duplicate update step")
)
