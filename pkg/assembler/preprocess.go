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
	"github.com/golang/glog"

	"github.com/ilansh/gosm12/pkg/machine"
)

// macroDef is one committed macro: a name and the body lines exactly as
// written. Macros take no parameters; expansion is a verbatim paste.
type macroDef struct {
	name string
	body []string
}

// macroTable is insertion-ordered, like the symbol table.
type macroTable struct {
	macros []macroDef
	index  map[string]int
}

func (t *macroTable) insert(name string, body []string) bool {
	if t.index == nil {
		t.index = make(map[string]int)
	}

	if _, exists := t.index[name]; exists {
		return false
	}

	t.index[name] = len(t.macros)
	t.macros = append(t.macros, macroDef{name: name, body: body})
	return true
}

func (t *macroTable) lookup(name string) (macroDef, bool) {
	i, exists := t.index[name]

	if !exists {
		return macroDef{}, false
	}

	return t.macros[i], true
}

// preprocess expands mcro/endmcro blocks over the raw source and fills
// f.Expanded with the intermediate text. References to a previously
// committed macro are replaced by its body; expansions are not re-scanned.
// Diagnostics recorded here carry raw-source line numbers.
func (f *File) preprocess(lines []string) {
	inBody := false

	var name string
	var body []string

	for i, raw := range lines {
		lineNo := i + 1
		line := Lex(raw)
		word := line.Words[0]

		if inBody {
			switch word {
			case startMacro:
				// The inner header stays in the body; the outer
				// definition keeps its name.
				f.report(DIAG_NESTED_MACRO, lineNo)
				body = append(body, raw)
			case endMacro:
				if machine.IsReserved(name) {
					f.report(DIAG_MACRO_NAME_RESERVED, lineNo)
				} else if !f.macros.insert(name, body) {
					f.report(DIAG_MACRO_ALREADY_EXISTS, lineNo)
				} else {
					f.MacroCount++
				}

				inBody = false
			default:
				body = append(body, raw)
			}

			continue
		}

		if word != "" {
			if def, found := f.macros.lookup(word); found {
				f.Expanded = append(f.Expanded, def.body...)
				continue
			}
		}

		if word == startMacro {
			inBody = true
			name = line.Words[1]
			body = nil
			continue
		}

		// A stray endmcro is ordinary text here; it fails later as an
		// unknown instruction.
		f.Expanded = append(f.Expanded, raw)
	}

	glog.V(2).Infof("%s: %d macros expanded", f.Name, f.MacroCount)
}
