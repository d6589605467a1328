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

package machine

// Memory geometry and source-level limits of the SM12.
const (
	// FIRST_CELL is the address of the first instruction word; the cells
	// below it are reserved for the loader.
	FIRST_CELL = 100

	// MEMORY_SIZE bounds the combined instruction and data images.
	MEMORY_SIZE = 924

	// WORD_MASK selects the meaningful low 12 bits of a Word.
	WORD_MASK = 0xFFF

	// VALUE_MASK selects the 10-bit payload of immediate, direct and data
	// words.
	VALUE_MASK = 0x3FF

	MAX_LINE_LENGTH  = 80
	MAX_LABEL_LENGTH = 31
	MAX_FILE_LENGTH  = 255

	REGISTER_COUNT = 8
)

const (
	OPCODE_MOV Opcode = iota
	OPCODE_CMP
	OPCODE_ADD
	OPCODE_SUB
	OPCODE_NOT
	OPCODE_CLR
	OPCODE_LEA
	OPCODE_INC
	OPCODE_DEC
	OPCODE_JMP
	OPCODE_BNE
	OPCODE_RED
	OPCODE_PRN
	OPCODE_JSR
	OPCODE_RTS
	OPCODE_STOP
	OPCODE_INVALID
)

// Addressing-method codes as they appear in the instruction word bit
// fields. The gaps are part of the machine definition.
const (
	METHOD_ABSENT    AddressingMethod = 0
	METHOD_IMMEDIATE AddressingMethod = 1
	METHOD_DIRECT    AddressingMethod = 3
	METHOD_REGISTER  AddressingMethod = 5
)

const (
	ENCODING_ABSOLUTE EncodingType = iota
	ENCODING_EXTERNAL
	ENCODING_RELOCATABLE
)

// Assembler directives.
const (
	DIRECTIVE_DATA   = ".data"
	DIRECTIVE_STRING = ".string"
	DIRECTIVE_ENTRY  = ".entry"
	DIRECTIVE_EXTERN = ".extern"
)
