// Copyright (C) 2023  Ilan Shamir

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

var termOnce sync.Once
var termState bool

// stderrIsTerminal gates the colour escapes: a pipe or a file gets plain
// text.
func stderrIsTerminal() bool {
	termOnce.Do(func() {
		_, err := unix.IoctlGetTermios(int(os.Stderr.Fd()), unix.TCGETS)
		termState = err == nil
	})

	return termState
}
