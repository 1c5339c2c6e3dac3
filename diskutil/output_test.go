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
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astromodel/diskturb"
)

func testDisk(t *testing.T) *diskturb.Disk {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Nr = 24
	d, err := cfg.Disk()
	require.NoError(t, err)
	return d
}

func TestWriteProfiles(t *testing.T) {
	d := testDisk(t)

	var buf bytes.Buffer
	require.NoError(t, WriteProfiles(&buf, d))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(d.R)+1)

	header := records[0]
	assert.Equal(t, "r_au", header[0])
	assert.Equal(t, "Sigma_g_cm2", header[len(header)-1])

	for i, rec := range records[1:] {
		require.Len(t, rec, len(header))
		r, err := strconv.ParseFloat(rec[0], 64)
		require.NoError(t, err)
		assert.InEpsilon(t, d.R[i]/diskturb.AU, r, 1e-12)
	}

	// Alpha column holds the unperturbed background value.
	col := -1
	for j, name := range header {
		if name == "alpha" {
			col = j
		}
	}
	require.GreaterOrEqual(t, col, 0)
	a, err := strconv.ParseFloat(records[1][col], 64)
	require.NoError(t, err)
	assert.Equal(t, d.Alpha0, a)
}

func TestWriteProfilesFile(t *testing.T) {
	d := testDisk(t)
	path := filepath.Join(t.TempDir(), "profiles.csv")

	require.NoError(t, WriteProfilesFile(path, d))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "r_au,T_K")
}

func TestWriteProfilesFileBadPath(t *testing.T) {
	d := testDisk(t)
	err := WriteProfilesFile(filepath.Join(t.TempDir(), "no", "such", "dir.csv"), d)
	assert.Error(t, err)
}
