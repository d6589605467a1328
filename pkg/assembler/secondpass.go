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
	"github.com/ilansh/gosm12/pkg/encoding"
	"github.com/ilansh/gosm12/pkg/machine"
)

// runSecondPass re-reads the expanded text with the instruction counter
// rewound: it processes .entry directives and rewrites the placeholder
// word of every direct operand with the resolved symbol address. Operand
// word ordering must retrace the first pass exactly, so the layout logic
// mirrors encodeInstruction step for step.
func (f *File) runSecondPass() {
	cursor := machine.FIRST_CELL

	for i, raw := range f.Expanded {
		lineNo := i + 1

		if IsEmptyLine(raw) {
			continue
		}

		line := Lex(raw)
		rest := raw

		if line.HasLabel() {
			// Already in the symbol table.
			line.TakeLabel()
			rest = SkipWords(rest, 1)

			if line.Count == COUNT_ZERO {
				continue
			}
		}

		switch ClassifyWord(line.Words[0]) {
		case STATEMENT_DATA, STATEMENT_STRING, STATEMENT_EXTERN:
			// Fully handled in the first pass.
		case STATEMENT_ENTRY:
			f.parseEntry(SkipWords(rest, 1), lineNo)
		case STATEMENT_CODE:
			cursor = f.fillInstruction(line, lineNo, cursor)
		}
	}
}

// parseEntry promotes a comma-separated list of labels to entries.
func (f *File) parseEntry(rest string, lineNo int) {
	f.HasEntry = true

	if restEmpty(rest) {
		f.report(DIAG_ENTRY_NEEDS_LABELS, lineNo)
		return
	}

	f.scanOperandList(rest, lineNo, func(word string) {
		if !IsValidLabelName(word) {
			f.report(DIAG_INVALID_LABEL_NAME, lineNo)
			return
		}

		if !f.Symbols.MarkEntry(word) {
			f.report(DIAG_ENTRY_TARGET_NOT_FOUND, lineNo)
		}
	})
}

// fillInstruction advances the cursor over one instruction, resolving its
// direct operands in place. Register and immediate operand words were
// already final after the first pass.
func (f *File) fillInstruction(line SourceLine, lineNo, cursor int) int {
	op := machine.ParseOpcode(line.Words[0])
	srcTok, dstTok, src, dst := operandTokens(&line, op)

	cursor++

	if src == machine.METHOD_REGISTER && dst == machine.METHOD_REGISTER {
		// Both registers share one operand word.
		return cursor + 1
	}

	switch src {
	case machine.METHOD_REGISTER, machine.METHOD_IMMEDIATE:
		cursor++
	case machine.METHOD_DIRECT:
		cursor = f.resolveDirect(srcTok, lineNo, cursor)
	}

	switch dst {
	case machine.METHOD_REGISTER, machine.METHOD_IMMEDIATE:
		cursor++
	case machine.METHOD_DIRECT:
		cursor = f.resolveDirect(dstTok, lineNo, cursor)
	}

	return cursor
}

// resolveDirect rewrites the placeholder at cursor with the operand's
// final encoding: the symbol address marked relocatable, or zero marked
// external with the use site recorded for the externals file.
func (f *File) resolveDirect(name string, lineNo, cursor int) int {
	sym, found := f.Symbols.Lookup(name)

	if !found {
		f.report(DIAG_LABEL_NOT_FOUND, lineNo)
		return cursor + 1
	}

	var word machine.Word

	if sym.Kind == SYMBOL_EXTERNAL {
		word = encoding.PackDirect(0, machine.ENCODING_EXTERNAL)
		f.ExtRefs = append(f.ExtRefs, ExternalRef{Name: sym.Name, Address: cursor})
	} else {
		word = encoding.PackDirect(sym.Address, machine.ENCODING_RELOCATABLE)
	}

	f.Code[cursor-machine.FIRST_CELL] = word
	return cursor + 1
}
