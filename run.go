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
	"os/signal"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/execution"
	"github.com/gopherdmg/gopherdmg/hardware/pacing"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/paths"
	"github.com/gopherdmg/gopherdmg/prefs"
	"github.com/gopherdmg/gopherdmg/statsview"
	"github.com/gopherdmg/gopherdmg/terminal/easyterm"
	"github.com/gopherdmg/gopherdmg/tracer"
	"github.com/spf13/cobra"
)

// runPrefs are the preferences for the run command that are not part of the
// hardware.
type runPrefs struct {
	dsk *prefs.Disk
	FPS prefs.Int
}

const defaultFPS = 60

func newRunPrefs() (*runPrefs, error) {
	p := &runPrefs{}
	_ = p.FPS.Set(defaultFPS)

	pth := paths.ResourcePath("", prefs.DefaultPrefsFile)

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	if err := p.dsk.Add("cli.fps", &p.FPS); err != nil {
		return nil, err
	}
	if err := p.dsk.Load(); err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}
	return p, nil
}

func newRunCmd() *cobra.Command {
	var hw hardwareFlags
	var (
		fps         int
		seconds     float64
		trace       bool
		traceFrom   int
		traceCount  int
		stats       bool
		interactive bool
		save        bool
	)

	cmd := &cobra.Command{
		Use:   "run <rom>",
		Short: "Run a ROM image, echoing serial output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pop := hw.pushPrefs()
			con, err := hw.newConsole(cmd.Flags())
			if err != nil {
				pop()
				return err
			}
			rp, err := newRunPrefs()
			pop()
			if err != nil {
				return err
			}
			if err := override(cmd.Flags(), "fps", &rp.FPS); err != nil {
				return err
			}

			if save {
				if _, err := paths.EnsureResourcePath("", prefs.DefaultPrefsFile); err != nil {
					return err
				}
				if err := con.Instance.Prefs.Save(); err != nil {
					return err
				}
				if err := rp.dsk.Save(); err != nil {
					return err
				}
			}

			if _, err := loadROM(con, args[0]); err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if trace {
				trc := tracer.NewTracer(out, traceFrom, traceCount)
				con.Scheduler.OnStep = func(r execution.Result) error {
					return trc.Step(r)
				}
			}

			if stats {
				statsview.Launch(out)
			}

			// keys is nil unless the terminal is in use. receiving from a nil
			// channel blocks forever so the case is never selected
			var keys <-chan byte
			if interactive {
				term, err := easyterm.Open(easyterm.DefaultDevice)
				if err != nil {
					return err
				}
				defer term.Close()
				keys = term.Keys()
			}

			intChan := make(chan os.Signal, 1)
			signal.Notify(intChan, os.Interrupt)
			defer signal.Stop(intChan)

			lim := pacing.NewLimiter(rp.FPS.Get().(int))
			defer lim.End()

			var emulated float64

			for {
				select {
				case <-intChan:
					return nil
				case k, ok := <-keys:
					if !ok {
						keys = nil
						continue
					}
					if easyterm.IsQuit(k) {
						return nil
					}
					switch k {
					case 'r', 'R':
						con.Boot()
					case 's', 'S':
						fmt.Fprintf(out, "\r\n%s\r\n", con)
					}
				default:
				}

				lim.Wait()

				rep, err := con.RunFor(lim.FrameDuration())
				if err != nil {
					return err
				}
				if b := con.DrainSerialOutput(); len(b) > 0 {
					if _, err := out.Write(b); err != nil {
						return curated.Errorf("run: %v", err)
					}
				}

				emulated += float64(lim.FrameDuration())

				if (rep.Halted || rep.Stopped) && !interactive {
					logger.Logf(logger.Allow, "run", "%s", rep)
					return nil
				}
				if seconds > 0 && emulated >= seconds {
					return nil
				}
			}
		},
	}

	hw.register(cmd.Flags())
	cmd.Flags().IntVar(&fps, "fps", defaultFPS, "frames per second")
	cmd.Flags().Float64Var(&seconds, "seconds", 0, "seconds of emulated time to run for (zero runs until halted)")
	cmd.Flags().BoolVar(&trace, "trace", false, "write every instruction to stdout")
	cmd.Flags().IntVar(&traceFrom, "trace-from", 0, "first instruction to trace")
	cmd.Flags().IntVar(&traceCount, "trace-count", 0, "number of instructions to trace (zero is unlimited)")
	cmd.Flags().BoolVar(&stats, "statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	cmd.Flags().BoolVar(&interactive, "interactive", false, "read keys from the terminal (q quit, r reset, s state)")
	cmd.Flags().BoolVar(&save, "save", false, "save the preferences (after flags are applied)")

	return cmd
}
