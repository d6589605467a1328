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

package assembler

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ilansh/gosm12/pkg/encoding"
	"github.com/ilansh/gosm12/pkg/machine"
)

// WriteExpanded emits the macro-expanded intermediate text (the .am file).
func (f *File) WriteExpanded(w io.Writer) error {
	writer := bufio.NewWriter(w)

	for _, line := range f.Expanded {
		writer.WriteString(line)
		writer.WriteByte('\n')
	}

	return writer.Flush()
}

// WriteObject emits the .ob file: a header with the instruction and data
// word counts, then one base-64 line per word, instructions before data.
func (f *File) WriteObject(w io.Writer) error {
	writer := bufio.NewWriter(w)

	fmt.Fprintf(writer, "%d\t%d\n", f.IC()-machine.FIRST_CELL, f.DC())

	for _, word := range f.Code {
		writer.WriteString(encoding.EncodeWord(word))
		writer.WriteByte('\n')
	}

	for _, word := range f.Data {
		writer.WriteString(encoding.EncodeWord(word))
		writer.WriteByte('\n')
	}

	return writer.Flush()
}

// WriteEntries emits the .ent file, one entry symbol per line in
// definition order.
func (f *File) WriteEntries(w io.Writer) error {
	writer := bufio.NewWriter(w)

	for _, sym := range f.Symbols.Entries() {
		fmt.Fprintf(writer, "%s\t%d\n", sym.Name, sym.Address)
	}

	return writer.Flush()
}

// WriteExternals emits the .ext file, one use site per line in the order
// the second pass met them.
func (f *File) WriteExternals(w io.Writer) error {
	writer := bufio.NewWriter(w)

	for _, ref := range f.ExtRefs {
		fmt.Fprintf(writer, "%s\t%d\n", ref.Name, ref.Address)
	}

	return writer.Flush()
}
