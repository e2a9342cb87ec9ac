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

// Package pacing converts wall-clock time into emulated time. The Scheduler
// type steps the CPU until the number of M-cycles for a duration, at the
// clock frequency in the hardware preferences, has been executed:
//
//	sch := pacing.NewScheduler(mc, prefs)
//	report, err := sch.RunFor(1.0 / 60.0)
//
// The Scheduler does not sleep. The Limiter type is used by the host to call
// RunFor() at a fixed rate:
//
//	lim := pacing.NewLimiter(60)
//	defer lim.End()
//
//	for {
//		lim.Wait()
//		report, err := sch.RunFor(lim.FrameDuration())
//		...
//	}
package pacing
