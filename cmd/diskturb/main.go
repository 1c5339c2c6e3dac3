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

// Command diskturb is a command-line interface for configuring the
// turbulence profile of a 1-D protoplanetary disk model.
package main

import (
	"fmt"
	"os"

	"github.com/astromodel/diskturb/diskutil"
)

func main() {
	if err := diskutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
