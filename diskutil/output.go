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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/astromodel/diskturb"
)

// profileColumns lists the radial fields written by WriteProfiles, in
// column order.
var profileColumns = []struct {
	name string
	get  func(*diskturb.Disk) []float64
}{
	{"r_au", func(d *diskturb.Disk) []float64 { return d.R }},
	{"T_K", func(d *diskturb.Disk) []float64 { return d.T }},
	{"Hp_cm", func(d *diskturb.Disk) []float64 { return d.Hp }},
	{"alpha", func(d *diskturb.Disk) []float64 { return d.Alpha }},
	{"nu_cm2_s", func(d *diskturb.Disk) []float64 { return d.Nu }},
	{"P_erg_cm3", func(d *diskturb.Disk) []float64 { return d.P }},
	{"eta", func(d *diskturb.Disk) []float64 { return d.Eta }},
	{"Sigma_g_cm2", func(d *diskturb.Disk) []float64 { return d.Sigma }},
}

// WriteProfiles writes the disk's radial profiles to w as CSV. Radii are
// converted to astronomical units; all other columns stay in CGS.
func WriteProfiles(w io.Writer, d *diskturb.Disk) error {
	cw := csv.NewWriter(w)
	header := make([]string, len(profileColumns))
	for j, c := range profileColumns {
		header[j] = c.name
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("diskutil: writing profile header: %w", err)
	}
	row := make([]string, len(profileColumns))
	for i := range d.R {
		for j, c := range profileColumns {
			v := c.get(d)[i]
			if c.name == "r_au" {
				v /= diskturb.AU
			}
			row[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("diskutil: writing profile row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteProfilesFile writes the disk's radial profiles to a CSV file.
func WriteProfilesFile(filename string, d *diskturb.Disk) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("diskutil: creating output file: %w", err)
	}
	if err := WriteProfiles(f, d); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
