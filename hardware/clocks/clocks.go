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

// Package clocks defines the constant values that define the speed of the main
// clock in the DMG console.
//
// The CPU is clocked at the reference frequency but every instruction takes
// a whole number of machine cycles (M-cycles), each of which is four clock
// ticks long. All cycle counts in the emulation are M-cycles.
package clocks

import "math"

// DMG is the reference clock frequency of the console in MHz.
const DMG = 4.194304

// TicksPerMachineCycle is the number of clock ticks in one M-cycle.
const TicksPerMachineCycle = 4

// MachineCycles returns the smallest number of whole M-cycles that cover the
// duration (in seconds) at the clock frequency (in MHz).
func MachineCycles(seconds float64, mhz float64) uint64 {
	if seconds <= 0 || mhz <= 0 {
		return 0
	}
	hz := math.Round(mhz * 1000000)

	// values within rounding error of a whole number are not rounded up
	c := seconds * hz / TicksPerMachineCycle
	if r := math.Round(c); math.Abs(c-r) < 1e-6 {
		return uint64(r)
	}
	return uint64(math.Ceil(c))
}
