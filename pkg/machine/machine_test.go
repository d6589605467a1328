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

package machine_test

import (
	"testing"

	"github.com/ilansh/gosm12/pkg/machine"
)

func TestParseOpcode(t *testing.T) {
	tests := []struct {
		Name   string
		Input  string
		Output machine.Opcode
	}{
		{"mov", "mov", machine.OPCODE_MOV},
		{"cmp", "cmp", machine.OPCODE_CMP},
		{"add", "add", machine.OPCODE_ADD},
		{"sub", "sub", machine.OPCODE_SUB},
		{"not", "not", machine.OPCODE_NOT},
		{"clr", "clr", machine.OPCODE_CLR},
		{"lea", "lea", machine.OPCODE_LEA},
		{"inc", "inc", machine.OPCODE_INC},
		{"dec", "dec", machine.OPCODE_DEC},
		{"jmp", "jmp", machine.OPCODE_JMP},
		{"bne", "bne", machine.OPCODE_BNE},
		{"red", "red", machine.OPCODE_RED},
		{"prn", "prn", machine.OPCODE_PRN},
		{"jsr", "jsr", machine.OPCODE_JSR},
		{"rts", "rts", machine.OPCODE_RTS},
		{"stop", "stop", machine.OPCODE_STOP},
		{"Unknown word", "halt", machine.OPCODE_INVALID},
		{"Uppercase", "MOV", machine.OPCODE_INVALID},
		{"Empty", "", machine.OPCODE_INVALID},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			if have := machine.ParseOpcode(test.Input); have != test.Output {
				t.Fatalf(
					"Opcode mismatch\nwant:%d\nhave:%d",
					test.Output,
					have,
				)
			}
		})
	}
}

func TestOpcodeNumericValues(t *testing.T) {
	// The opcode field of the first instruction word stores these values
	// directly; they are part of the machine definition, not an
	// implementation detail.
	if machine.OPCODE_MOV != 0 || machine.OPCODE_STOP != 15 {
		t.Fatalf(
			"Opcode numbering broken: mov=%d stop=%d",
			machine.OPCODE_MOV,
			machine.OPCODE_STOP,
		)
	}
}

func TestOperandCount(t *testing.T) {
	tests := []struct {
		Name   string
		Input  machine.Opcode
		Output int
	}{
		{"mov", machine.OPCODE_MOV, 2},
		{"cmp", machine.OPCODE_CMP, 2},
		{"add", machine.OPCODE_ADD, 2},
		{"sub", machine.OPCODE_SUB, 2},
		{"lea", machine.OPCODE_LEA, 2},
		{"not", machine.OPCODE_NOT, 1},
		{"clr", machine.OPCODE_CLR, 1},
		{"inc", machine.OPCODE_INC, 1},
		{"dec", machine.OPCODE_DEC, 1},
		{"jmp", machine.OPCODE_JMP, 1},
		{"bne", machine.OPCODE_BNE, 1},
		{"red", machine.OPCODE_RED, 1},
		{"prn", machine.OPCODE_PRN, 1},
		{"jsr", machine.OPCODE_JSR, 1},
		{"rts", machine.OPCODE_RTS, 0},
		{"stop", machine.OPCODE_STOP, 0},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			if have := test.Input.OperandCount(); have != test.Output {
				t.Fatalf(
					"Operand count mismatch\nwant:%d\nhave:%d",
					test.Output,
					have,
				)
			}
		})
	}
}

func TestParseRegister(t *testing.T) {
	for n := uint8(0); n < machine.REGISTER_COUNT; n++ {
		ident := string([]byte{'@', 'r', '0' + n})

		have, ok := machine.ParseRegister(ident)

		if !ok || have != n {
			t.Fatalf("%s not recognised as register %d", ident, n)
		}
	}

	for _, ident := range []string{"@r8", "@r9", "r0", "@R0", "@r", "@r00", ""} {
		if _, ok := machine.ParseRegister(ident); ok {
			t.Fatalf("%q wrongly recognised as a register", ident)
		}
	}
}

func TestIsReserved(t *testing.T) {
	reserved := []string{
		".data", ".string", ".entry", ".extern",
		"@r0", "@r1", "@r2", "@r3", "@r4", "@r5", "@r6", "@r7",
		"mov", "cmp", "add", "sub", "not", "clr", "lea", "inc",
		"dec", "jmp", "bne", "red", "prn", "jsr", "rts", "stop",
	}

	for _, name := range reserved {
		if !machine.IsReserved(name) {
			t.Fatalf("%q should be reserved", name)
		}
	}

	for _, name := range []string{"movv", "data", "LOOP", "x", ""} {
		if machine.IsReserved(name) {
			t.Fatalf("%q should not be reserved", name)
		}
	}
}
