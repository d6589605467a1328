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
	"strconv"
	"strings"

	"github.com/ilansh/gosm12/pkg/encoding"
	"github.com/ilansh/gosm12/pkg/machine"
)

// runFirstPass walks the expanded text once: it defines labels, lays out
// the data image, emits every instruction word whose value is already
// known, and reserves a placeholder word per direct operand. When the pass
// finishes clean, data symbols are relocated past the instruction image.
func (f *File) runFirstPass() {
	for i, raw := range f.Expanded {
		lineNo := i + 1

		if IsEmptyLine(raw) {
			continue
		}

		line := Lex(raw)
		rest := raw
		diagsBefore := len(f.Diags)

		if line.HasLabel() {
			// The directive defines the labels listed after it, not the
			// one in front of it.
			switch ClassifyWord(line.Words[1]) {
			case STATEMENT_ENTRY:
				f.report(DIAG_LABEL_BEFORE_ENTRY, lineNo)
				continue
			case STATEMENT_EXTERN:
				f.report(DIAG_LABEL_BEFORE_EXTERN, lineNo)
				continue
			}

			name := line.TakeLabel()
			rest = SkipWords(rest, 1)

			if IsValidLabelName(name) {
				f.defineLabel(name, line.Words[0], lineNo)
			} else {
				f.report(DIAG_INVALID_LABEL_NAME, lineNo)
			}

			if line.Count == COUNT_ZERO {
				continue
			}
		}

		switch ClassifyWord(line.Words[0]) {
		case STATEMENT_DATA:
			f.parseData(SkipWords(rest, 1), lineNo)
		case STATEMENT_STRING:
			f.parseString(SkipWords(rest, 1), lineNo)
		case STATEMENT_EXTERN:
			f.parseExtern(SkipWords(rest, 1), lineNo)
		case STATEMENT_ENTRY:
			// Deferred to the second pass.
		case STATEMENT_CODE:
			f.encodeInstruction(line, lineNo, diagsBefore)
		}
	}

	if f.OK() {
		f.Symbols.RelocateData(f.IC())
	}
}

// defineLabel inserts a label at the current counter: DC for data
// definitions, IC for everything else.
func (f *File) defineLabel(name, following string, lineNo int) {
	address := f.IC()
	kind := SYMBOL_CODE

	switch ClassifyWord(following) {
	case STATEMENT_DATA, STATEMENT_STRING:
		address = f.DC()
		kind = SYMBOL_DATA
	}

	if !f.Symbols.Insert(name, address, kind) {
		f.report(DIAG_LABEL_ALREADY_EXISTS, lineNo)
	}
}

func (f *File) appendCode(word machine.Word, lineNo int) {
	f.Code = append(f.Code, word)
	f.checkOverflow(lineNo)
}

func (f *File) appendData(word machine.Word, lineNo int) {
	f.Data = append(f.Data, word)
	f.checkOverflow(lineNo)
}

// checkOverflow diagnoses the 924-word memory ceiling once per file, on
// the line that crosses it.
func (f *File) checkOverflow(lineNo int) {
	if f.overflowed {
		return
	}

	if len(f.Code)+len(f.Data) > machine.MEMORY_SIZE {
		f.overflowed = true
		f.report(DIAG_MEMORY_OVERFLOW, lineNo)
	}
}

func restEmpty(rest string) bool {
	return strings.TrimLeft(rest, " \t") == ""
}

// scanOperandList walks a comma-separated operand list the way the
// directives require: a comma where a value should be is an error, a
// missing comma between two values is an error and ends the scan, a
// trailing comma hands an empty word to each, which the caller rejects.
func (f *File) scanOperandList(rest string, lineNo int, each func(word string)) {
	pos := 0

	for {
		for pos < len(rest) && isBlank(rest[pos]) {
			pos++
		}

		if pos < len(rest) && rest[pos] == ',' {
			f.report(DIAG_INVALID_COMMA_POSITION, lineNo)
			return
		}

		start := pos

		for pos < len(rest) && !isBlank(rest[pos]) && rest[pos] != ',' {
			pos++
		}

		each(rest[start:pos])

		for pos < len(rest) && isBlank(rest[pos]) {
			pos++
		}

		if pos == len(rest) {
			return
		}

		if rest[pos] != ',' {
			f.report(DIAG_COMMA_REQUIRED_BETWEEN_VALUES, lineNo)
			return
		}

		pos++
	}
}

// parseData appends a comma-separated list of signed integers to the data
// image. rest is the raw remainder of the line after the directive.
func (f *File) parseData(rest string, lineNo int) {
	if restEmpty(rest) {
		f.report(DIAG_DATA_NEEDS_VALUES, lineNo)
		return
	}

	f.scanOperandList(rest, lineNo, func(word string) {
		if !IsNumber(word) {
			f.report(DIAG_DATA_NEEDS_NUMBER, lineNo)
			return
		}

		value, _ := strconv.Atoi(word)
		f.appendData(encoding.PackData(value), lineNo)
	})
}

// parseString appends the characters of one double-quoted string plus a
// terminating zero word. The argument spans the rest of the line; blanks
// inside the quotes are part of the string.
func (f *File) parseString(rest string, lineNo int) {
	pos := 0

	for pos < len(rest) && isBlank(rest[pos]) {
		pos++
	}

	if pos == len(rest) || rest[pos] != '"' {
		f.report(DIAG_STRING_MISSING_OPEN_QUOTE, lineNo)
		return
	}

	pos++

	for pos < len(rest) && rest[pos] != '"' && !restEmpty(rest[pos:]) {
		f.appendData(encoding.PackData(int(rest[pos])), lineNo)
		pos++
	}

	if pos == len(rest) || rest[pos] != '"' {
		f.report(DIAG_STRING_MISSING_CLOSE_QUOTE, lineNo)
		return
	}

	pos++
	f.appendData(0, lineNo)

	if !restEmpty(rest[pos:]) {
		f.report(DIAG_STRING_EXTRA_PARAMETER, lineNo)
	}
}

// parseExtern declares a comma-separated list of external labels, each at
// address zero.
func (f *File) parseExtern(rest string, lineNo int) {
	f.HasExtern = true

	if restEmpty(rest) {
		f.report(DIAG_EXTERN_NEEDS_LABELS, lineNo)
		return
	}

	f.scanOperandList(rest, lineNo, func(word string) {
		if !IsValidLabelName(word) {
			f.report(DIAG_INVALID_LABEL_NAME, lineNo)
			return
		}

		if !f.Symbols.Insert(word, 0, SYMBOL_EXTERNAL) {
			f.report(DIAG_LABEL_ALREADY_EXISTS, lineNo)
		}
	})
}

// operandTokens pulls the operand tokens and addressing methods for an
// opcode out of a lexed line. Two-operand opcodes read tokens 1 and 3
// around the comma; one-operand opcodes treat their sole operand as the
// destination.
func operandTokens(line *SourceLine, op machine.Opcode) (
	srcTok, dstTok string,
	src, dst machine.AddressingMethod,
) {
	switch op.OperandCount() {
	case 2:
		srcTok, dstTok = line.Words[1], line.Words[3]
		src, dst = AddressingOf(srcTok), AddressingOf(dstTok)
	case 1:
		dstTok = line.Words[1]
		dst = AddressingOf(dstTok)
	}

	return
}

// encodeInstruction validates one code line and, when the whole line is
// clean, appends its first word and operand words. diagsBefore is the
// diagnostic count at the start of the line: any diagnostic since then,
// including a label one, suppresses emission for this line only.
func (f *File) encodeInstruction(line SourceLine, lineNo, diagsBefore int) {
	op := machine.ParseOpcode(line.Words[0])
	srcTok, dstTok, src, dst := operandTokens(&line, op)

	if line.Count == COUNT_FIVE || line.Count == COUNT_TOO_MANY {
		f.report(DIAG_TOO_MANY_WORDS, lineNo)
	}

	switch {
	case op == machine.OPCODE_INVALID:
		f.report(DIAG_UNKNOWN_INSTRUCTION, lineNo)
	case op.OperandCount() == 2:
		if line.Count != COUNT_FOUR {
			f.report(DIAG_WANT_TWO_OPERANDS, lineNo)
		}

		if line.Words[2] != "," {
			f.report(DIAG_COMMA_REQUIRED_BETWEEN_OPERANDS, lineNo)
		}
	case op.OperandCount() == 1:
		if line.Count != COUNT_TWO {
			f.report(DIAG_WANT_ONE_OPERAND, lineNo)
		}
	default:
		if line.Count != COUNT_ONE {
			f.report(DIAG_WANT_NO_OPERANDS, lineNo)
		}
	}

	f.checkAddressing(op, src, dst, lineNo)

	if len(f.Diags) > diagsBefore {
		return
	}

	f.appendCode(encoding.PackFirstWord(src, op, dst, machine.ENCODING_ABSOLUTE), lineNo)

	if src == machine.METHOD_REGISTER && dst == machine.METHOD_REGISTER {
		srcReg, _ := machine.ParseRegister(srcTok)
		dstReg, _ := machine.ParseRegister(dstTok)
		f.appendCode(encoding.PackRegisters(srcReg, dstReg, machine.ENCODING_ABSOLUTE), lineNo)
		return
	}

	f.appendOperand(src, srcTok, true, lineNo)
	f.appendOperand(dst, dstTok, false, lineNo)
}

// appendOperand emits the operand word for one side of an instruction.
// Direct operands get a zero placeholder that the second pass rewrites.
func (f *File) appendOperand(
	method machine.AddressingMethod,
	token string,
	isSource bool,
	lineNo int,
) {
	switch method {
	case machine.METHOD_REGISTER:
		reg, _ := machine.ParseRegister(token)

		if isSource {
			f.appendCode(encoding.PackRegisters(reg, 0, machine.ENCODING_ABSOLUTE), lineNo)
		} else {
			f.appendCode(encoding.PackRegisters(0, reg, machine.ENCODING_ABSOLUTE), lineNo)
		}
	case machine.METHOD_IMMEDIATE:
		value, _ := strconv.Atoi(token)
		f.appendCode(encoding.PackImmediate(value, machine.ENCODING_ABSOLUTE), lineNo)
	case machine.METHOD_DIRECT:
		f.appendCode(0, lineNo)
	}
}

// checkAddressing enforces the per-opcode operand restrictions: mov/add/sub
// and every one-operand opcode but prn reject an immediate destination;
// lea additionally demands a direct source.
func (f *File) checkAddressing(
	op machine.Opcode,
	src, dst machine.AddressingMethod,
	lineNo int,
) {
	switch op {
	case machine.OPCODE_MOV, machine.OPCODE_ADD, machine.OPCODE_SUB:
		if dst == machine.METHOD_IMMEDIATE {
			f.report(DIAG_INVALID_ADDRESSING, lineNo)
		}
	case machine.OPCODE_LEA:
		if dst == machine.METHOD_IMMEDIATE || src != machine.METHOD_DIRECT {
			f.report(DIAG_INVALID_ADDRESSING, lineNo)
		}
	case machine.OPCODE_NOT, machine.OPCODE_CLR, machine.OPCODE_INC,
		machine.OPCODE_DEC, machine.OPCODE_JMP, machine.OPCODE_BNE,
		machine.OPCODE_RED, machine.OPCODE_JSR:
		if dst == machine.METHOD_IMMEDIATE {
			f.report(DIAG_INVALID_ADDRESSING, lineNo)
		}
	}
}
