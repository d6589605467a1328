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

// Package encoding packs SM12 machine words and converts them to and from
// the two-character base-64 form used in object files.
package encoding

import (
	"errors"

	"github.com/ilansh/gosm12/pkg/machine"
)

// First word of every instruction:
//
//	bits 0-1  encoding type
//	bits 2-4  destination method
//	bits 5-8  opcode
//	bits 9-11 source method
func PackFirstWord(
	src machine.AddressingMethod,
	op machine.Opcode,
	dst machine.AddressingMethod,
	enc machine.EncodingType,
) machine.Word {
	word := machine.Word(src&0x7)<<9 |
		machine.Word(op&0xF)<<5 |
		machine.Word(dst&0x7)<<2 |
		machine.Word(enc&0x3)

	return word & machine.WORD_MASK
}

// UnpackFirstWord is the inverse of PackFirstWord.
func UnpackFirstWord(word machine.Word) (
	src machine.AddressingMethod,
	op machine.Opcode,
	dst machine.AddressingMethod,
	enc machine.EncodingType,
) {
	src = machine.AddressingMethod(word >> 9 & 0x7)
	op = machine.Opcode(word >> 5 & 0xF)
	dst = machine.AddressingMethod(word >> 2 & 0x7)
	enc = machine.EncodingType(word & 0x3)
	return
}

// Operand word holding one or two register numbers:
//
//	bits 0-1  encoding type
//	bits 2-6  destination register
//	bits 7-11 source register
//
// The absent side holds zero.
func PackRegisters(src, dst uint8, enc machine.EncodingType) machine.Word {
	word := machine.Word(src&0x1F)<<7 |
		machine.Word(dst&0x1F)<<2 |
		machine.Word(enc&0x3)

	return word & machine.WORD_MASK
}

// Immediate operand word: bits 2-11 hold the value in 10-bit two's
// complement, explicitly masked so negative values truncate identically on
// every platform.
func PackImmediate(value int, enc machine.EncodingType) machine.Word {
	word := (machine.Word(value)&machine.VALUE_MASK)<<2 |
		machine.Word(enc&0x3)

	return word & machine.WORD_MASK
}

// Direct operand word: bits 2-11 hold an absolute label address.
func PackDirect(address int, enc machine.EncodingType) machine.Word {
	return PackImmediate(address, enc)
}

// PackData converts one .data value or .string character to its stored
// form, 10-bit two's complement.
func PackData(value int) machine.Word {
	return machine.Word(value) & machine.VALUE_MASK
}

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789+/"

// EncodeWord renders a 12-bit word as two base-64 characters, high half
// (bits 6-11) first.
func EncodeWord(word machine.Word) string {
	word &= machine.WORD_MASK

	return string([]byte{
		base64Alphabet[word>>6&0x3F],
		base64Alphabet[word&0x3F],
	})
}

var ErrMalformedWord = errors.New("malformed base-64 word")

// DecodeWord is the inverse of EncodeWord.
func DecodeWord(s string) (machine.Word, error) {
	if len(s) != 2 {
		return 0, ErrMalformedWord
	}

	var halves [2]machine.Word

	for i := 0; i < 2; i++ {
		switch c := s[i]; {
		case c >= 'A' && c <= 'Z':
			halves[i] = machine.Word(c - 'A')
		case c >= 'a' && c <= 'z':
			halves[i] = machine.Word(c-'a') + 26
		case c >= '0' && c <= '9':
			halves[i] = machine.Word(c-'0') + 52
		case c == '+':
			halves[i] = 62
		case c == '/':
			halves[i] = 63
		default:
			return 0, ErrMalformedWord
		}
	}

	return halves[0]<<6 | halves[1], nil
}
