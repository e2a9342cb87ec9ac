// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/gopherdmg/gopherdmg/cartridge"
	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/disassembly"
	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/execution"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/paths"
	"github.com/gopherdmg/gopherdmg/performance"
	"github.com/spf13/cobra"
)

func newHeaderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "header <rom>",
		Short: "Print the cartridge header of a ROM image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl := cartridgeloader.NewLoader(args[0])
			if err := cl.Load(); err != nil {
				return err
			}

			hdr := cartridge.Parse(cl.Data)
			fmt.Fprint(cmd.OutOrStdout(), hdr.Report())

			if !hdr.Valid() {
				return curated.Errorf("header: %s: header is not valid", cl.ShortName())
			}
			return nil
		},
	}
}

func newDisasmCmd() *cobra.Command {
	var (
		from uint16
		to   int
	)

	cmd := &cobra.Command{
		Use:   "disasm <rom>",
		Short: "Print a linear disassembly of a ROM image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl := cartridgeloader.NewLoader(args[0])
			if err := cl.Load(); err != nil {
				return err
			}

			dsm, err := disassembly.FromData(cl.Data, 0x0000, int(from), to)
			if err != nil {
				return err
			}

			return dsm.Write(cmd.OutOrStdout())
		},
	}

	cmd.Flags().Uint16Var(&from, "from", 0x0100, "first address to disassemble")
	cmd.Flags().IntVar(&to, "to", 0x0150, "end of disassembly (exclusive)")

	return cmd
}

// cpuState is the part of the CPU that is mapped by memviz. The CPU type
// itself refers to the entire memory array.
type cpuState struct {
	Regs       registers.Registers
	IME        bool
	Halted     bool
	Stopped    bool
	Cycles     uint64
	LastResult execution.Result
}

func stateOf(con *hardware.Console) cpuState {
	return cpuState{
		Regs:       con.CPU.Regs,
		IME:        con.CPU.IME,
		Halted:     con.CPU.Halted,
		Stopped:    con.CPU.Stopped,
		Cycles:     con.CPU.Cycles,
		LastResult: con.CPU.LastResult,
	}
}

func newDumpCmd() *cobra.Command {
	var hw hardwareFlags
	var (
		steps  int
		from   uint16
		to     int
		mapviz bool
		mapOut string
	)

	cmd := &cobra.Command{
		Use:   "dump <rom>",
		Short: "Step a ROM image and dump the CPU state and memory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pop := hw.pushPrefs()
			con, err := hw.newConsole(cmd.Flags())
			pop()
			if err != nil {
				return err
			}

			cl, err := loadROM(con, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for i := 0; i < steps; i++ {
				if con.IsHalted() || con.IsStopped() {
					break
				}
				if _, err := con.Step(); err != nil {
					return err
				}
				fmt.Fprintln(out, con.CPU.LastResult)
			}

			fmt.Fprintln(out, con)
			fmt.Fprint(out, con.Mem.Dump(from, to))

			if mapviz {
				if mapOut == "" {
					mapOut = fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", cl.ShortName()))
				}
				f, err := os.Create(mapOut)
				if err != nil {
					return curated.Errorf("dump: %v", err)
				}
				defer f.Close()

				st := stateOf(con)
				memviz.Map(f, &st)
				fmt.Fprintf(out, "state map written to %s\n", mapOut)
			}

			return nil
		},
	}

	hw.register(cmd.Flags())
	cmd.Flags().IntVar(&steps, "steps", 0, "number of instructions to execute before dumping")
	cmd.Flags().Uint16Var(&from, "from", 0xc000, "start of memory dump")
	cmd.Flags().IntVar(&to, "to", 0xc100, "end of memory dump (exclusive)")
	cmd.Flags().BoolVar(&mapviz, "memviz", false, "write a graphviz map of the CPU state")
	cmd.Flags().StringVar(&mapOut, "memviz-file", "", "filename for the graphviz map")

	return cmd
}

func newPerfCmd() *cobra.Command {
	var hw hardwareFlags
	var (
		duration string
		profile  string
	)

	cmd := &cobra.Command{
		Use:   "perf <rom>",
		Short: "Run a ROM image as fast as possible and report the effective clock frequency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prf, err := performance.ParseProfile(profile)
			if err != nil {
				return err
			}

			pop := hw.pushPrefs()
			con, err := hw.newConsole(cmd.Flags())
			pop()
			if err != nil {
				return err
			}

			if _, err := loadROM(con, args[0]); err != nil {
				return err
			}

			return performance.Check(cmd.OutOrStdout(), prf, con, duration)
		},
	}

	hw.register(cmd.Flags())
	cmd.Flags().StringVar(&duration, "duration", "5s", "run duration (with units, eg. 1s, 500ms)")
	cmd.Flags().StringVar(&profile, "profile", "none", "create profile for emulator (none, cpu, mem, all)")

	return cmd
}
