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
	"strings"

	"github.com/ilansh/gosm12/pkg/machine"
)

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// NormalizeCommas surrounds every comma with single spaces so that a comma
// always lexes as its own token. This is the only normalisation applied to
// a line.
func NormalizeCommas(line string) string {
	if !strings.Contains(line, ",") {
		return line
	}

	var builder strings.Builder
	builder.Grow(len(line) + 2*strings.Count(line, ","))

	for i := 0; i < len(line); i++ {
		if line[i] == ',' {
			builder.WriteString(" , ")
		} else {
			builder.WriteByte(line[i])
		}
	}

	return builder.String()
}

// IsEmptyLine reports whether a line carries no statement: blank, or a
// comment line whose first non-blank character is ';'.
func IsEmptyLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return trimmed == "" || trimmed[0] == ';'
}

// Lex splits a raw line into its first five whitespace-delimited tokens
// after comma normalisation. A sixth token degrades the count to
// COUNT_TOO_MANY; the surplus tokens themselves are discarded.
func Lex(raw string) SourceLine {
	var line SourceLine

	if IsEmptyLine(raw) {
		return line
	}

	fields := strings.Fields(NormalizeCommas(raw))

	for i, field := range fields {
		if i == len(line.Words) {
			line.Count = COUNT_TOO_MANY
			return line
		}

		line.Words[i] = field
	}

	line.Count = WordCount(len(fields))
	return line
}

// HasLabel reports whether the first token is a label definition.
func (l *SourceLine) HasLabel() bool {
	return len(l.Words[0]) > 0 && l.Words[0][len(l.Words[0])-1] == ':'
}

// TakeLabel strips the label definition from the line: the trailing colon
// is removed, the remaining tokens shift one slot leftward and the count
// drops accordingly. The caller must have checked HasLabel.
func (l *SourceLine) TakeLabel() string {
	name := l.Words[0][:len(l.Words[0])-1]

	copy(l.Words[:], l.Words[1:])
	l.Words[len(l.Words)-1] = ""

	if l.Count != COUNT_TOO_MANY && l.Count != COUNT_ZERO {
		l.Count--
	}

	return name
}

// ClassifyWord maps a token to the statement it opens. Anything that is
// not a directive is code: an instruction, or an unknown word that the
// instruction path will diagnose.
func ClassifyWord(token string) StatementKind {
	switch token {
	case machine.DIRECTIVE_DATA:
		return STATEMENT_DATA
	case machine.DIRECTIVE_STRING:
		return STATEMENT_STRING
	case machine.DIRECTIVE_EXTERN:
		return STATEMENT_EXTERN
	case machine.DIRECTIVE_ENTRY:
		return STATEMENT_ENTRY
	}

	return STATEMENT_CODE
}

// IsNumber reports whether a token is a plain signed decimal integer.
func IsNumber(token string) bool {
	if len(token) > 0 && (token[0] == '+' || token[0] == '-') {
		token = token[1:]
	}

	if len(token) == 0 {
		return false
	}

	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return false
		}
	}

	return true
}

// AddressingOf classifies an operand token. An empty token means the
// operand slot is unused; anything that is neither a number nor a register
// is taken as a symbol reference.
func AddressingOf(operand string) machine.AddressingMethod {
	if operand == "" {
		return machine.METHOD_ABSENT
	}

	if IsNumber(operand) {
		return machine.METHOD_IMMEDIATE
	}

	if _, ok := machine.ParseRegister(operand); ok {
		return machine.METHOD_REGISTER
	}

	return machine.METHOD_DIRECT
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsValidLabelName enforces the identifier rules: not reserved, first
// character alphabetic, the rest alphanumeric, at most 31 characters.
func IsValidLabelName(name string) bool {
	if len(name) == 0 || len(name) > machine.MAX_LABEL_LENGTH {
		return false
	}

	if machine.IsReserved(name) {
		return false
	}

	if !isAlpha(name[0]) {
		return false
	}

	for i := 1; i < len(name); i++ {
		if !isAlpha(name[i]) && !isDigit(name[i]) {
			return false
		}
	}

	return true
}

// SkipWords returns the remainder of a raw line after its first n
// whitespace-delimited words. The directive parsers use it to re-scan
// operand lists character by character, where token lexing is too coarse.
func SkipWords(text string, n int) string {
	pos := 0

	for ; n > 0; n-- {
		for pos < len(text) && isBlank(text[pos]) {
			pos++
		}

		for pos < len(text) && !isBlank(text[pos]) {
			pos++
		}
	}

	return text[pos:]
}
