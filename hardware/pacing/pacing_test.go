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

package pacing_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/clocks"
	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/execution"
	"github.com/gopherdmg/gopherdmg/hardware/memory"
	"github.com/gopherdmg/gopherdmg/hardware/pacing"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/test"
)

// create a CPU with the program loaded at address zero. the rest of memory is
// filled with NOP instructions
func newCPU(t *testing.T, program ...uint8) *cpu.CPU {
	t.Helper()

	mem := memory.NewMemory(nil)
	test.DemandSuccess(t, mem.Load(0, program))

	mc, err := cpu.NewCPU(nil, mem)
	test.DemandSuccess(t, err)
	mc.Reset()

	return mc
}

func TestBudget(t *testing.T) {
	sch := pacing.NewScheduler(newCPU(t), nil)
	test.ExpectEquality(t, sch.Budget(1.0), 1048576)
	test.ExpectEquality(t, sch.Budget(0.0), 0)
	test.ExpectEquality(t, sch.Budget(-1.0), 0)

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.Clock.Set(4.0))
	sch = pacing.NewScheduler(newCPU(t), prefs)
	test.ExpectEquality(t, sch.Budget(0.5), 500000)
}

func TestRunFor(t *testing.T) {
	mc := newCPU(t)
	sch := pacing.NewScheduler(mc, nil)

	// every instruction is a one cycle NOP
	rep, err := sch.RunFor(0.5)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rep.Steps, 524288)
	test.ExpectEquality(t, rep.Cycles, 524288)
	test.ExpectEquality(t, rep.Halted, false)
	test.ExpectEquality(t, rep.CeilingHit, false)
	test.ExpectEquality(t, mc.Cycles, 524288)

	// budget may be exceeded by the last instruction. LD (a16),SP costs five
	// cycles
	mc = newCPU(t, 0x08, 0x00, 0xc0)
	sch = pacing.NewScheduler(mc, nil)
	rep, err = sch.RunFor(0.000001)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rep.Steps, 1)
	test.ExpectEquality(t, rep.Cycles, 5)
}

func TestRunForCoversDuration(t *testing.T) {
	mc := newCPU(t)
	sch := pacing.NewScheduler(mc, nil)

	for _, d := range []float32{0.000002, 0.0000035, 0.001, 1.0 / 60.0} {
		rep, err := sch.RunFor(d)
		test.DemandSuccess(t, err)
		emulated := float64(rep.Cycles) * clocks.TicksPerMachineCycle / (clocks.DMG * 1000000)
		test.ExpectSuccess(t, emulated >= float64(d), d)
	}
}

func TestRunForZero(t *testing.T) {
	mc := newCPU(t)
	sch := pacing.NewScheduler(mc, nil)

	rep, err := sch.RunFor(0.0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rep.Steps, 1)
	test.ExpectEquality(t, mc.Regs.PC.Address(), 0x0001)
}

func TestHalt(t *testing.T) {
	mc := newCPU(t, 0x00, 0x00, 0x76)
	sch := pacing.NewScheduler(mc, nil)

	rep, err := sch.RunFor(1.0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rep.Steps, 3)
	test.ExpectEquality(t, rep.Halted, true)
	test.ExpectEquality(t, rep.Stopped, false)

	// already halted. no steps are taken and there is no error
	rep, err = sch.RunFor(1.0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rep.Steps, 0)
	test.ExpectEquality(t, rep.Halted, true)

	mc = newCPU(t, 0x10, 0x00)
	sch = pacing.NewScheduler(mc, nil)
	rep, err = sch.RunFor(1.0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rep.Steps, 1)
	test.ExpectEquality(t, rep.Stopped, true)
	test.ExpectEquality(t, rep.String()[len(rep.String())-9:], "[stopped]")
}

func TestCeiling(t *testing.T) {
	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.Ceiling.Set(10))

	logger.Clear()

	mc := newCPU(t)
	sch := pacing.NewScheduler(mc, prefs)

	rep, err := sch.RunFor(1.0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rep.Steps, 10)
	test.ExpectEquality(t, rep.CeilingHit, true)
	test.ExpectEquality(t, sch.CeilingHits, 1)

	_, err = sch.RunFor(1.0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sch.CeilingHits, 2)

	var found int
	logger.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			if e.Tag == "pacing" {
				found++
			}
		}
	})
	test.ExpectInequality(t, found, 0)
}

func TestStepErrors(t *testing.T) {
	mc := newCPU(t, 0x00, 0xd3)
	sch := pacing.NewScheduler(mc, nil)

	rep, err := sch.RunFor(1.0)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnimplementedInstruction))
	test.ExpectEquality(t, rep.Steps, 1)

	// hook errors abort the call
	hookErr := errors.New("test hook")

	mc = newCPU(t)
	sch = pacing.NewScheduler(mc, nil)
	sch.OnStep = func(r execution.Result) error {
		test.ExpectSuccess(t, r.IsValid())
		if r.Address == 0x0004 {
			return hookErr
		}
		return nil
	}

	rep, err = sch.RunFor(1.0)
	test.ExpectSuccess(t, errors.Is(err, hookErr))
	test.ExpectEquality(t, rep.Steps, 5)
}

func TestLimiter(t *testing.T) {
	lim := pacing.NewLimiter(100)
	defer lim.End()

	test.ExpectApproximate(t, lim.FrameDuration(), 0.01, 0.0001)

	start := time.Now()
	lim.Wait()
	lim.Wait()
	lim.Wait()
	test.ExpectSuccess(t, time.Since(start) >= 10*time.Millisecond)
}
