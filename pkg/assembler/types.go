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
	"fmt"

	"github.com/ilansh/gosm12/pkg/machine"
)

type WordCount uint8

type StatementKind uint8

type SymbolKind uint8

type DiagKind uint8

// Diagnostic is one source error: a kind from the closed enumeration plus
// the 1-based line it was found on. Lines refer to the macro-expanded text
// except for the pre-processor's own diagnostics, which refer to the raw
// source.
type Diagnostic struct {
	Kind DiagKind
	Line int
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("line %d: %s", d.Line, diagMessages[d.Kind])
}

// SourceLine is one lexed line: up to five whitespace-delimited tokens
// after comma normalisation, and the token-count class.
type SourceLine struct {
	Words [5]string
	Count WordCount
}

// Symbol is one label definition.
type Symbol struct {
	Name    string
	Address int
	Kind    SymbolKind
}

// ExternalRef records one use site of an external label: the absolute
// address of the operand word that references it.
type ExternalRef struct {
	Name    string
	Address int
}

// SymbolTable is an insertion-ordered label table. Iteration order is the
// order of definition so the entries and externals files are
// deterministic; a name index backs the linear store for lookups.
type SymbolTable struct {
	symbols []Symbol
	index   map[string]int
}

// Insert adds a definition. It reports false when the name is already
// present, including a repeated external declaration.
func (t *SymbolTable) Insert(name string, address int, kind SymbolKind) bool {
	if t.index == nil {
		t.index = make(map[string]int)
	}

	if _, exists := t.index[name]; exists {
		return false
	}

	t.index[name] = len(t.symbols)
	t.symbols = append(t.symbols, Symbol{Name: name, Address: address, Kind: kind})
	return true
}

func (t *SymbolTable) Lookup(name string) (Symbol, bool) {
	i, exists := t.index[name]

	if !exists {
		return Symbol{}, false
	}

	return t.symbols[i], true
}

// MarkEntry promotes a previously-defined symbol to an entry, preserving
// its address. External symbols cannot be entries; promoting one fails the
// same way as a missing definition.
func (t *SymbolTable) MarkEntry(name string) bool {
	i, exists := t.index[name]

	if !exists || t.symbols[i].Kind == SYMBOL_EXTERNAL {
		return false
	}

	t.symbols[i].Kind = SYMBOL_ENTRY
	return true
}

// RelocateData slides every data symbol up by the final instruction
// counter, placing the data image directly after the instruction image.
// Called exactly once, at the end of an error-free first pass.
func (t *SymbolTable) RelocateData(ic int) {
	for i := range t.symbols {
		if t.symbols[i].Kind == SYMBOL_DATA {
			t.symbols[i].Address += ic
		}
	}
}

// Symbols returns the definitions in insertion order.
func (t *SymbolTable) Symbols() []Symbol {
	return t.symbols
}

// Entries returns the entry symbols in insertion order.
func (t *SymbolTable) Entries() []Symbol {
	var entries []Symbol

	for _, sym := range t.symbols {
		if sym.Kind == SYMBOL_ENTRY {
			entries = append(entries, sym)
		}
	}

	return entries
}

// File is the complete per-file assembly state: the expanded intermediate
// text, both memory images, the symbol table and the accumulated
// diagnostics. Each input file owns exactly one File; nothing is shared
// between files.
type File struct {
	Name string

	// Expanded is the macro-expanded intermediate text, one entry per
	// line; both passes read it.
	Expanded []string

	// Code is the instruction image; Code[i] sits at absolute address
	// FIRST_CELL+i. Data is the data image indexed by DC from zero.
	Code []machine.Word
	Data []machine.Word

	Symbols SymbolTable
	Diags   []Diagnostic
	ExtRefs []ExternalRef

	HasExtern bool
	HasEntry  bool

	MacroCount int

	macros     macroTable
	overflowed bool
}

// IC is the next free instruction address, FIRST_CELL-based.
func (f *File) IC() int {
	return machine.FIRST_CELL + len(f.Code)
}

// DC is the next free data index.
func (f *File) DC() int {
	return len(f.Data)
}

// OK reports whether the file assembled without diagnostics.
func (f *File) OK() bool {
	return len(f.Diags) == 0
}

func (f *File) report(kind DiagKind, line int) {
	f.Diags = append(f.Diags, Diagnostic{Kind: kind, Line: line})
}
