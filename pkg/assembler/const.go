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

const (
	COUNT_ZERO WordCount = iota
	COUNT_ONE
	COUNT_TWO
	COUNT_THREE
	COUNT_FOUR
	COUNT_FIVE
	COUNT_TOO_MANY
)

const (
	STATEMENT_DATA StatementKind = iota
	STATEMENT_STRING
	STATEMENT_EXTERN
	STATEMENT_ENTRY
	STATEMENT_CODE
)

const (
	SYMBOL_DATA SymbolKind = iota
	SYMBOL_CODE
	SYMBOL_EXTERNAL
	SYMBOL_ENTRY
)

const (
	DIAG_NONE DiagKind = iota
	DIAG_LABEL_ALREADY_EXISTS
	DIAG_MACRO_ALREADY_EXISTS
	DIAG_COMMA_REQUIRED_BETWEEN_VALUES
	DIAG_DATA_NEEDS_NUMBER
	DIAG_LABEL_BEFORE_ENTRY
	DIAG_LABEL_BEFORE_EXTERN
	DIAG_STRING_MISSING_OPEN_QUOTE
	DIAG_STRING_MISSING_CLOSE_QUOTE
	DIAG_STRING_EXTRA_PARAMETER
	DIAG_TOO_MANY_WORDS
	DIAG_ENTRY_TARGET_NOT_FOUND
	DIAG_INVALID_LABEL_NAME
	DIAG_UNKNOWN_INSTRUCTION
	DIAG_WANT_TWO_OPERANDS
	DIAG_COMMA_REQUIRED_BETWEEN_OPERANDS
	DIAG_WANT_ONE_OPERAND
	DIAG_WANT_NO_OPERANDS
	DIAG_INVALID_ADDRESSING
	DIAG_EXTERN_NEEDS_LABELS
	DIAG_ENTRY_NEEDS_LABELS
	DIAG_DATA_NEEDS_VALUES
	DIAG_INVALID_COMMA_POSITION
	DIAG_LABEL_NOT_FOUND
	DIAG_NESTED_MACRO
	DIAG_MACRO_NAME_RESERVED
	DIAG_MEMORY_OVERFLOW
)

var diagMessages = map[DiagKind]string{
	DIAG_LABEL_ALREADY_EXISTS:            "a label cannot be declared more than once",
	DIAG_MACRO_ALREADY_EXISTS:            "a macro cannot be declared more than once",
	DIAG_COMMA_REQUIRED_BETWEEN_VALUES:   "a comma is required between values",
	DIAG_DATA_NEEDS_NUMBER:               "the data directive accepts only numbers",
	DIAG_LABEL_BEFORE_ENTRY:              "a label cannot be defined before an entry directive",
	DIAG_LABEL_BEFORE_EXTERN:             "a label cannot be defined before an extern directive",
	DIAG_STRING_MISSING_OPEN_QUOTE:       "string should start with quotes",
	DIAG_STRING_MISSING_CLOSE_QUOTE:      "string should end with quotes",
	DIAG_STRING_EXTRA_PARAMETER:          "the string directive takes one argument",
	DIAG_TOO_MANY_WORDS:                  "too many words for instruction",
	DIAG_ENTRY_TARGET_NOT_FOUND:          "the entry label was not found",
	DIAG_INVALID_LABEL_NAME:              "the label name is invalid",
	DIAG_UNKNOWN_INSTRUCTION:             "instruction does not exist",
	DIAG_WANT_TWO_OPERANDS:               "the instruction should receive two operands",
	DIAG_COMMA_REQUIRED_BETWEEN_OPERANDS: "a comma is required between two operands",
	DIAG_WANT_ONE_OPERAND:                "the instruction should receive one operand",
	DIAG_WANT_NO_OPERANDS:                "the instruction should not accept operands",
	DIAG_INVALID_ADDRESSING:              "the instruction cannot receive this operand",
	DIAG_EXTERN_NEEDS_LABELS:             "must provide labels to extern directive",
	DIAG_ENTRY_NEEDS_LABELS:              "must provide labels to entry directive",
	DIAG_DATA_NEEDS_VALUES:               "must provide values to data directive",
	DIAG_INVALID_COMMA_POSITION:          "invalid comma position",
	DIAG_LABEL_NOT_FOUND:                 "the label was not found",
	DIAG_NESTED_MACRO:                    "a macro cannot be defined inside a macro",
	DIAG_MACRO_NAME_RESERVED:             "the macro name is a reserved instruction or directive",
	DIAG_MEMORY_OVERFLOW:                 "the program does not fit in machine memory",
}

// Macro block delimiters recognised by the pre-processor.
const (
	startMacro = "mcro"
	endMacro   = "endmcro"
)
