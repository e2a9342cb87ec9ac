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

package hardware

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/hardware/instance"
	"github.com/gopherdmg/gopherdmg/hardware/memory"
	"github.com/gopherdmg/gopherdmg/hardware/pacing"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/hardware/serial"
	"github.com/gopherdmg/gopherdmg/logger"
)

// Console struct is the main container for the emulated components of the
// DMG.
type Console struct {
	Instance *instance.Instance

	CPU    *cpu.CPU
	Mem    *memory.Memory
	Serial *serial.Buffer

	Scheduler *pacing.Scheduler
}

// NewConsole creates a new Console and everything associated with the
// hardware. The prefs argument can be nil, in which case the hardware
// preferences are loaded from disk.
func NewConsole(prefs *preferences.Preferences) (*Console, error) {
	var err error

	con := &Console{}

	// the console is the clock for the random number generator
	con.Instance, err = instance.NewInstance(con, prefs)
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}

	con.Serial = serial.NewBuffer()
	con.Mem = memory.NewMemory(con.Serial)

	con.CPU, err = cpu.NewCPU(con.Instance, con.Mem)
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}

	con.Scheduler = pacing.NewScheduler(con.CPU, con.Instance.Prefs)

	con.CPU.Reset()

	return con, nil
}

func (con *Console) String() string {
	return con.CPU.String()
}

// CycleCount implements the random.Clock interface.
func (con *Console) CycleCount() uint64 {
	if con.CPU == nil {
		return 0
	}
	return con.CPU.Cycles
}

// SetMemory sets the value at the address. Writing with SetMemory() does not
// cause a serial transfer.
func (con *Console) SetMemory(address int, data uint8) error {
	return con.SetMemoryBlock(address, []uint8{data})
}

// SetMemoryBlock copies the data into memory starting at the address. If the
// data does not fit into the address space then nothing is written.
func (con *Console) SetMemoryBlock(start int, data []uint8) error {
	err := con.Mem.Load(start, data)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "console", "loaded %d bytes at %#04x", len(data), start)
	return nil
}

// Reset the CPU. Memory is not changed.
func (con *Console) Reset() {
	con.CPU.Reset()
	logger.Log(logger.Allow, "console", "reset")
}

// ResetPostBoot resets the CPU to the state the boot ROM leaves it in.
// Memory is not changed.
func (con *Console) ResetPostBoot() {
	con.CPU.ResetPostBoot()
	logger.Log(logger.Allow, "console", "reset (post-boot)")
}

// Boot resets the console with either Reset() or ResetPostBoot() depending on
// the PostBoot preference.
func (con *Console) Boot() {
	if con.Instance.Prefs.PostBoot.Get().(bool) {
		con.ResetPostBoot()
		return
	}
	con.Reset()
}

// Step the emulation one CPU instruction. Returns the number of M-cycles the
// instruction took.
func (con *Console) Step() (int, error) {
	cycles, err := con.CPU.Step()
	if err != nil {
		return 0, curated.Errorf("console: %v", err)
	}
	return cycles, nil
}

// RunFor runs the emulation for the duration (in seconds) of emulated time.
// See pacing.Scheduler.RunFor() for details.
func (con *Console) RunFor(seconds float32) (pacing.Report, error) {
	rep, err := con.Scheduler.RunFor(seconds)
	if err != nil {
		return rep, curated.Errorf("console: %v", err)
	}
	return rep, nil
}

// IsHalted returns true if the CPU has executed a HALT instruction.
func (con *Console) IsHalted() bool {
	return con.CPU.Halted
}

// IsStopped returns true if the CPU has executed a STOP instruction.
func (con *Console) IsStopped() bool {
	return con.CPU.Stopped
}

// DrainSerialOutput returns and clears the bytes transferred over the serial
// port.
func (con *Console) DrainSerialOutput() []uint8 {
	return con.Serial.Drain()
}
