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

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ilansh/gosm12/pkg/encoding"
	"github.com/ilansh/gosm12/pkg/machine"
)

// dumpedWord is one decoded object-file cell.
type dumpedWord struct {
	Address int
	Word    machine.Word
	Base64  string
}

type dumpedObject struct {
	CodeWords    int
	DataWords    int
	Instructions []dumpedWord
	Data         []dumpedWord
}

var dumpCmd = &cobra.Command{
	Use:   "dump file.ob",
	Short: "Decode an object file back into machine words",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		obj, err := readObject(args[0])

		if err != nil {
			return err
		}

		pp.Println(obj)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func readObject(path string) (*dumpedObject, error) {
	in, err := os.Open(path)

	if err != nil {
		return nil, err
	}

	defer in.Close()

	obj := &dumpedObject{}
	scanner := bufio.NewScanner(in)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%s: missing object header", path)
	}

	if _, err := fmt.Sscanf(
		scanner.Text(), "%d\t%d", &obj.CodeWords, &obj.DataWords,
	); err != nil {
		return nil, fmt.Errorf("%s: bad object header: %w", path, err)
	}

	for i := 0; i < obj.CodeWords+obj.DataWords; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%s: truncated object body", path)
		}

		word, err := encoding.DecodeWord(scanner.Text())

		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+2, err)
		}

		if i < obj.CodeWords {
			obj.Instructions = append(obj.Instructions, dumpedWord{
				Address: machine.FIRST_CELL + i,
				Word:    word,
				Base64:  scanner.Text(),
			})
		} else {
			obj.Data = append(obj.Data, dumpedWord{
				Address: machine.FIRST_CELL + i,
				Word:    word,
				Base64:  scanner.Text(),
			})
		}
	}

	return obj, scanner.Err()
}
