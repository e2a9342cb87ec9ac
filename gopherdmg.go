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

	"github.com/gopherdmg/gopherdmg/cartridge"
	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/clocks"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/prefs"
	"github.com/gopherdmg/gopherdmg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// exit values
const (
	exitParse = 10
	exitMode  = 20
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		if curated.IsAny(err) {
			os.Exit(exitMode)
		}
		os.Exit(exitParse)
	}
}

// newRootCmd creates the command tree. Separated from main() so that the
// commands can be tested.
func newRootCmd() *cobra.Command {
	var echoLog bool

	rootCmd := &cobra.Command{
		Use:           "gopherdmg",
		Short:         fmt.Sprintf("%s: a DMG CPU emulator", version.ApplicationName),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if echoLog {
				logger.SetEcho(cmd.ErrOrStderr())
			} else {
				logger.SetEcho(nil)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&echoLog, "log", false, "echo log entries to stderr")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newHeaderCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newDisasmCmd())
	rootCmd.AddCommand(newPerfCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, r, _ := version.Version()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", version.ApplicationName, v, r)
		},
	}
}

// hardwareFlags are the flags shared by every command that creates a console.
// values only override the preferences if they have been set on the command
// line
type hardwareFlags struct {
	clock    float64
	ceiling  int
	postBoot bool
	prefs    string
}

func (hw *hardwareFlags) register(flags *pflag.FlagSet) {
	flags.Float64Var(&hw.clock, "clock", clocks.DMG, "clock frequency in MHz")
	flags.IntVar(&hw.ceiling, "ceiling", preferences.DefaultCeiling, "maximum instructions per frame of emulated time")
	flags.BoolVar(&hw.postBoot, "post-boot", true, "start with the register state left by the boot ROM")
	flags.StringVar(&hw.prefs, "prefs", "", "preference overrides (key::value; key::value)")
}

// override sets the preference to the value of the named flag if the flag was
// set on the command line.
func override(flags *pflag.FlagSet, name string, p interface{ Set(prefs.Value) error }) error {
	f := flags.Lookup(name)
	if f == nil || !f.Changed {
		return nil
	}
	if err := p.Set(f.Value.String()); err != nil {
		return curated.Errorf("--%s: %v", name, err)
	}
	return nil
}

// pushPrefs applies the prefs flag to the command line stack. The returned
// function pops the stack and must be called once all preferences have been
// created.
func (hw *hardwareFlags) pushPrefs() func() {
	if hw.prefs == "" {
		return func() {}
	}
	prefs.PushCommandLineStack(hw.prefs)
	return func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
		}
	}
}

// newConsole creates a console with the preferences loaded from disk,
// overridden by the command line stack and then by the flags.
func (hw *hardwareFlags) newConsole(flags *pflag.FlagSet) (*hardware.Console, error) {
	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	if err := override(flags, "clock", &p.Clock); err != nil {
		return nil, err
	}
	if err := override(flags, "ceiling", &p.Ceiling); err != nil {
		return nil, err
	}
	if err := override(flags, "post-boot", &p.PostBoot); err != nil {
		return nil, err
	}

	return hardware.NewConsole(p)
}

// loadROM loads the cartridge file into the console and boots it. The header
// is checked but an invalid header is only logged.
func loadROM(con *hardware.Console, filename string) (cartridgeloader.Loader, error) {
	cl := cartridgeloader.NewLoader(filename)
	if err := cl.Load(); err != nil {
		return cl, err
	}

	hdr := cartridge.Parse(cl.Data)
	if !hdr.Valid() {
		logger.Logf(logger.Allow, "cartridge", "%s: header is not valid", cl.ShortName())
	}

	if err := con.SetMemoryBlock(0, cl.Data); err != nil {
		return cl, err
	}
	con.Boot()

	logger.Logf(logger.Allow, "cartridge", "%s", cl)

	return cl, nil
}
