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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/clocks"
)

// the amount of emulated time run between checks of the timer
const slice = float32(1.0 / 60.0)

// CalcMHz takes the number of M-cycles executed and the duration (in seconds)
// and returns the effective clock frequency in MHz and the accuracy of that
// value as a percentage of the target frequency.
func CalcMHz(cycles uint64, duration float64, target float64) (mhz float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	mhz = float64(cycles) * clocks.TicksPerMachineCycle / duration / 1000000
	if target > 0 {
		accuracy = 100 * mhz / target
	}
	return mhz, accuracy
}

// Check the performance of the emulator. The console should have a program
// loaded and have been reset.
//
// Emulation runs as fast as possible for the duration, or until the CPU halts
// or stops, and will create a cpu or memory profile (or both) as defined by
// the Profile argument.
func Check(output io.Writer, profile Profile, con *hardware.Console, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var cycles uint64
	var elapsed time.Duration

	runner := func() error {
		start := time.Now()
		for time.Since(start) < dur {
			rep, err := con.RunFor(slice)
			if err != nil {
				return err
			}
			cycles += rep.Cycles
			if rep.Halted || rep.Stopped {
				break
			}
		}
		elapsed = time.Since(start)
		return nil
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	target := con.Instance.Prefs.Clock.Get().(float64)
	mhz, accuracy := CalcMHz(cycles, elapsed.Seconds(), target)
	fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, elapsed.Seconds(), accuracy)

	return nil
}
