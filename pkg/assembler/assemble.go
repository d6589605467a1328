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

// Package assembler translates SM12 assembly sources into object images.
// The pipeline per file: macro expansion, a first pass that lays out
// memory and defines symbols, and a second pass that resolves symbolic
// operands. Diagnostics accumulate across the passes; any diagnostic
// prevents the second pass and all output, but never stops the current
// pass from examining the rest of the file. Macro diagnostics do not stop
// the first pass.
package assembler

import (
	"bufio"
	"fmt"
	"io"

	"github.com/golang/glog"

	"github.com/ilansh/gosm12/pkg/machine"
)

// Assemble runs the full pipeline over one source. The returned File
// always holds the expanded intermediate text, even when the source is
// ill-formed; OK distinguishes the two outcomes. The only error return is
// a failure to read the source itself.
func Assemble(name string, source io.Reader) (*File, error) {
	f := &File{Name: name}

	var lines []string
	scanner := bufio.NewScanner(source)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	f.preprocess(lines)

	// Macro diagnostics leave the intermediate text inspectable and the
	// first pass still worth running; they only block the second pass and
	// the output files, like any other diagnostic.
	f.runFirstPass()

	glog.V(1).Infof(
		"%s: first pass done, IC=%d DC=%d, %d diagnostics",
		name, f.IC(), f.DC(), len(f.Diags),
	)

	if f.OK() {
		f.runSecondPass()

		glog.V(1).Infof(
			"%s: second pass done, %d entries, %d external references",
			name, len(f.Symbols.Entries()), len(f.ExtRefs),
		)
	}

	return f, nil
}

// Summary is the per-file operator message.
func (f *File) Summary() string {
	if f.OK() {
		return fmt.Sprintf(
			"Compilation completed successfully, %d lines parsed",
			f.IC()-machine.FIRST_CELL+f.DC(),
		)
	}

	return fmt.Sprintf(
		"Number of errors: %d; compilation not completed",
		len(f.Diags),
	)
}
