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

package pacing

import (
	"time"

	"github.com/gopherdmg/gopherdmg/hardware/clocks"
	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/execution"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/logger"
)

// Scheduler steps the CPU for a duration of emulated time.
type Scheduler struct {
	mc    *cpu.CPU
	prefs *preferences.Preferences

	// called after every instruction with the result of the instruction. an
	// error returned by the hook ends the call to RunFor() and is returned by
	// it
	OnStep func(execution.Result) error

	// number of calls to RunFor() that ended because of the step ceiling
	CeilingHits int
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. The prefs argument can be nil, in which case the default clock
// frequency and step ceiling are used.
func NewScheduler(mc *cpu.CPU, prefs *preferences.Preferences) *Scheduler {
	return &Scheduler{
		mc:    mc,
		prefs: prefs,
	}
}

// clock frequency in MHz and the step ceiling
func (sch *Scheduler) limits() (float64, int) {
	if sch.prefs == nil {
		return clocks.DMG, preferences.DefaultCeiling
	}
	return sch.prefs.Clock.Get().(float64), sch.prefs.Ceiling.Get().(int)
}

// Budget returns the number of M-cycles in the duration (in seconds) at the
// current clock frequency.
func (sch *Scheduler) Budget(seconds float32) uint64 {
	mhz, _ := sch.limits()
	return clocks.MachineCycles(float64(seconds), mhz)
}

// RunFor steps the CPU until the M-cycle budget for the duration has been
// used. At least one instruction is executed, even for a duration of zero,
// unless the CPU is already halted or stopped.
//
// The call also ends when the CPU halts or stops and when the step ceiling is
// reached. Reaching the ceiling is not an error but it is logged and counted.
func (sch *Scheduler) RunFor(seconds float32) (Report, error) {
	start := time.Now()

	var rep Report

	if sch.mc.Halted || sch.mc.Stopped {
		rep.Halted = sch.mc.Halted
		rep.Stopped = sch.mc.Stopped
		return rep, nil
	}

	mhz, ceiling := sch.limits()
	budget := clocks.MachineCycles(float64(seconds), mhz)

	for {
		cycles, err := sch.mc.Step()
		if err != nil {
			rep.Elapsed = time.Since(start)
			return rep, err
		}

		rep.Steps++
		rep.Cycles += uint64(cycles)

		if sch.OnStep != nil {
			err = sch.OnStep(sch.mc.LastResult)
			if err != nil {
				rep.Elapsed = time.Since(start)
				return rep, err
			}
		}

		if sch.mc.Halted || sch.mc.Stopped {
			rep.Halted = sch.mc.Halted
			rep.Stopped = sch.mc.Stopped
			break
		}

		if rep.Cycles >= budget {
			break
		}

		if rep.Steps >= ceiling {
			rep.CeilingHit = true
			sch.CeilingHits++
			logger.Logf(logger.Allow, "pacing", "step ceiling reached after %d cycles of %d", rep.Cycles, budget)
			break
		}
	}

	rep.Elapsed = time.Since(start)

	return rep, nil
}
