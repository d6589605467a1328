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
	"errors"
	goflag "flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/ilansh/gosm12/pkg/assembler"
	"github.com/ilansh/gosm12/pkg/machine"
)

var rootCmd = &cobra.Command{
	Use:   "gosm12-asm file ...",
	Short: "Two-pass assembler for the SM12 machine",
	Long: "gosm12-asm assembles SM12 sources. Each argument is a base name: " +
		"NAME.as is read, NAME.am holds the macro-expanded text, and on " +
		"success NAME.ob plus optional NAME.ent and NAME.ext are written.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// glog needs its flag set parsed; cobra already consumed the
		// values through the shared flag set.
		goflag.CommandLine.Parse(nil)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("assembly files should be provided")
		}

		for _, name := range args {
			fmt.Println()
			fmt.Println(separator)
			fmt.Printf("File Name: %s:\n\n", name)

			assembleFile(name)
		}

		fmt.Println()
		fmt.Println(separator)
		return nil
	},
}

const separator = "-------------------------------------" +
	"-------------------------------------------"

func init() {
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
}

// assembleFile runs the pipeline for one base name. Every failure is
// reported and the driver moves on to the next argument; only a usable
// source that assembles clean produces output files.
func assembleFile(name string) {
	if len(name) > machine.MAX_FILE_LENGTH {
		reportf("the file name %q is too long", name)
		return
	}

	source, err := os.Open(name + ".as")

	if err != nil {
		if os.IsNotExist(err) {
			reportf("the file %s.as was not found", name)
		} else {
			reportf("%v", err)
		}

		return
	}

	defer source.Close()

	file, err := assembler.Assemble(name, source)

	if err != nil {
		reportf("%v", err)
		return
	}

	// The intermediate text is written even for an ill-formed source so
	// the expansion can be inspected.
	if err := writeFile(name+".am", file.WriteExpanded); err != nil {
		reportf("%v", err)
		return
	}

	for _, diag := range file.Diags {
		reportf("%v", diag)
	}

	if file.OK() {
		if err := emitOutputs(name, file); err != nil {
			reportf("%v", err)
			return
		}
	}

	fmt.Println()
	fmt.Println(file.Summary())
}

func emitOutputs(name string, file *assembler.File) error {
	if err := writeFile(name+".ob", file.WriteObject); err != nil {
		return err
	}

	if file.HasEntry {
		if err := writeFile(name+".ent", file.WriteEntries); err != nil {
			return err
		}
	}

	if file.HasExtern && len(file.ExtRefs) > 0 {
		if err := writeFile(name+".ext", file.WriteExternals); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	out, err := os.Create(path)

	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := write(out); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return out.Close()
}

// reportf prints one operator-facing diagnostic line, red when stderr is a
// terminal.
func reportf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	if stderrIsTerminal() {
		fmt.Fprintf(os.Stderr, "\033[31m%s\033[0m\n", message)
	} else {
		fmt.Fprintln(os.Stderr, message)
	}
}

func main() {
	defer glog.Flush()

	if err := rootCmd.Execute(); err != nil {
		reportf("%v", err)
		os.Exit(1)
	}
}
