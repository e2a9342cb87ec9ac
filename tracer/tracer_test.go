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

package tracer_test

import (
	"strings"
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/hardware/memory"
	"github.com/gopherdmg/gopherdmg/hardware/pacing"
	"github.com/gopherdmg/gopherdmg/test"
	"github.com/gopherdmg/gopherdmg/tracer"
)

func TestWindow(t *testing.T) {
	w, err := test.NewCappedWriter(4096)
	test.DemandSuccess(t, err)

	mem := memory.NewMemory(nil)
	mc, err := cpu.NewCPU(nil, mem)
	test.DemandSuccess(t, err)
	mc.Reset()

	trc := tracer.NewTracer(w, 2, 3)
	sch := pacing.NewScheduler(mc, nil)
	sch.OnStep = trc.Step

	// memory is full of NOP instructions
	_, err = sch.RunFor(0.00001)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, trc.Done())
	test.ExpectSuccess(t, trc.Steps() > 5)

	lines := strings.Split(strings.TrimRight(w.String(), "\n"), "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "       2  0002  00        NOP              [1]")
	test.ExpectEquality(t, strings.HasPrefix(lines[2], "       4  0004"), true)
}

func TestUnbounded(t *testing.T) {
	w, err := test.NewCappedWriter(4096)
	test.DemandSuccess(t, err)

	mem := memory.NewMemory(nil)
	test.DemandSuccess(t, mem.Load(0, []uint8{0x00, 0x00, 0x00, 0x76}))
	mc, err := cpu.NewCPU(nil, mem)
	test.DemandSuccess(t, err)
	mc.Reset()

	trc := tracer.NewTracer(w, 0, 0)
	sch := pacing.NewScheduler(mc, nil)
	sch.OnStep = trc.Step

	_, err = sch.RunFor(1.0)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, trc.Done())

	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	test.DemandEquality(t, len(lines), 4)
	test.ExpectSuccess(t, strings.HasSuffix(lines[3], "HALT             [1]"))

	trc.Reset()
	test.ExpectEquality(t, trc.Steps(), 0)
}
