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

package cpu

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/execution"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/hardware/instance"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cpubus"
)

// UnimplementedInstruction is the pattern for errors returned by Step() when
// the opcode has no definition.
const UnimplementedInstruction = "cpu: unimplemented instruction (%#02x) at (%#04x)"

// HaltedStep is the pattern for errors returned by Step() when the CPU is
// halted or stopped.
const HaltedStep = "cpu: cannot step while %s (PC=%#04x)"

// the CB prefix opcode
const prefixCB = 0xcb

// CPU implements the LR35902. Register logic is implemented by the Registers
// type in the registers sub-package.
type CPU struct {
	instance *instance.Instance

	Regs registers.Registers

	// interrupt master enable. set by EI and RETI, cleared by DI
	IME bool

	// set by HALT and STOP respectively. requires a Reset()
	Halted  bool
	Stopped bool

	// number of M-cycles executed since the last reset
	Cycles uint64

	// result of the most recent instruction. the Final field is false if the
	// CPU has been reset but not yet stepped
	LastResult execution.Result

	mem          cpubus.Memory
	instructions []*instructions.Definition
	extended     []*instructions.Definition
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// instance argument can be nil.
func NewCPU(instance *instance.Instance, mem cpubus.Memory) (*CPU, error) {
	defs, err := instructions.GetDefinitions()
	if err != nil {
		return nil, fmt.Errorf("cpu: %w", err)
	}

	mc := &CPU{
		instance:     instance,
		mem:          mem,
		Regs:         registers.NewRegisters(),
		instructions: defs,
		extended:     instructions.GetExtendedDefinitions(),
	}

	return mc, nil
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s IME=%v", mc.Regs, mc.IME)
}

// CycleCount implements the random.Clock interface.
func (mc *CPU) CycleCount() uint64 {
	return mc.Cycles
}

// Reset reinitialises all registers. The stack pointer is 0xfffe and the
// program counter is zero. If the instance has the RandomState preference set
// then the eight bit registers are given random values.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Regs.Reset()
	mc.IME = false
	mc.Halted = false
	mc.Stopped = false
	mc.Cycles = 0

	// checking for instance == nil because it's possible for NewCPU to be
	// called with a nil instance (test package)
	if mc.instance != nil && mc.instance.Prefs.RandomState.Get().(bool) {
		var v [8]uint8
		mc.instance.Random.Fill(v[:])
		for sel := range v {
			if registers.Selector(sel) != registers.MemHL {
				mc.Regs.Set(registers.Selector(sel), v[sel])
			}
		}
		mc.Regs.F.FromValue(v[registers.MemHL])
	}
}

// ResetPostBoot reinitialises the CPU to the state left behind by the boot
// ROM. Execution continues at the cartridge entry point.
func (mc *CPU) ResetPostBoot() {
	mc.Reset()
	mc.Regs.SetAF(0x01b0)
	mc.Regs.SetPair(registers.BC, 0x0013)
	mc.Regs.SetPair(registers.DE, 0x00d8)
	mc.Regs.SetPair(registers.HL, 0x014d)
	mc.Regs.SP.Load(0xfffe)
	mc.Regs.PC.Load(0x0100)
}

// read8BitPC reads the byte pointed to by the program counter
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
func (mc *CPU) read8BitPC() uint8 {
	v := mc.mem.Read(mc.Regs.PC.Increment())
	mc.LastResult.ByteCount++
	return v
}

// readOperand8 reads an eight bit operand from the instruction stream
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount and LastResult.InstructionData
func (mc *CPU) readOperand8() uint8 {
	v := mc.read8BitPC()
	mc.LastResult.InstructionData = uint16(v)
	return v
}

// readOperand16 reads a little-endian sixteen bit operand from the
// instruction stream
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount and LastResult.InstructionData
func (mc *CPU) readOperand16() uint16 {
	lo := mc.read8BitPC()
	mc.LastResult.InstructionData = uint16(lo)
	hi := mc.read8BitPC()
	mc.LastResult.InstructionData = uint16(hi)<<8 | uint16(lo)
	return mc.LastResult.InstructionData
}

// read16Bit returns the little-endian sixteen bit value at the address.
func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// write16Bit writes the sixteen bit value to the address, low byte first.
func (mc *CPU) write16Bit(address uint16, v uint16) {
	mc.mem.Write(address, uint8(v))
	mc.mem.Write(address+1, uint8(v>>8))
}

// push a sixteen bit value onto the stack. the high byte is at the higher
// address.
func (mc *CPU) push(v uint16) {
	mc.mem.Write(mc.Regs.SP.Decrement(), uint8(v>>8))
	mc.mem.Write(mc.Regs.SP.Decrement(), uint8(v))
}

// pop a sixteen bit value from the stack.
func (mc *CPU) pop() uint16 {
	lo := mc.mem.Read(mc.Regs.SP.Increment())
	hi := mc.mem.Read(mc.Regs.SP.Increment())
	return uint16(hi)<<8 | uint16(lo)
}

// get returns the value of the register or, for the MemHL selector, the value
// in memory at the address in HL.
func (mc *CPU) get(sel registers.Selector) uint8 {
	if sel == registers.MemHL {
		return mc.mem.Read(mc.Regs.HL())
	}
	return mc.Regs.Get(sel)
}

// set the value of the register or, for the MemHL selector, the value in
// memory at the address in HL.
func (mc *CPU) set(sel registers.Selector, v uint8) {
	if sel == registers.MemHL {
		mc.mem.Write(mc.Regs.HL(), v)
		return
	}
	mc.Regs.Set(sel, v)
}

// condition returns whether the two bit condition field of an opcode holds.
// in order the conditions are NZ, Z, NC and C.
func (mc *CPU) condition(cc uint8) bool {
	switch cc & 0x03 {
	case 0:
		return !mc.Regs.F.Zero
	case 1:
		return mc.Regs.F.Zero
	case 2:
		return !mc.Regs.F.Carry
	}
	return mc.Regs.F.Carry
}

// Step executes the next instruction and returns the number of M-cycles it
// took. The basic process when executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read the operand, if any
//  3. perform the operation described by the opcode
//  4. finalise LastResult and advance the cycle counter
//
// Stepping a halted or stopped CPU is an error. So too is an opcode with no
// definition, in which case the program counter is left pointing at the
// opcode.
func (mc *CPU) Step() (int, error) {
	if mc.Halted {
		return 0, curated.Errorf(HaltedStep, "halted", mc.Regs.PC.Address())
	}
	if mc.Stopped {
		return 0, curated.Errorf(HaltedStep, "stopped", mc.Regs.PC.Address())
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.Regs.PC.Address()

	opcode := mc.read8BitPC()
	defn := mc.instructions[opcode]
	if defn == nil {
		mc.Regs.PC.Load(mc.LastResult.Address)
		mc.LastResult.ByteCount = 0
		return 0, curated.Errorf(UnimplementedInstruction, opcode, mc.LastResult.Address)
	}
	mc.LastResult.Defn = defn

	if opcode == prefixCB {
		mc.executeExtended(mc.read8BitPC())
	} else if err := mc.execute(opcode); err != nil {
		return 0, err
	}

	// cost of instruction. the definition may have been replaced by the
	// definition from the extended table
	mc.LastResult.Cycles = mc.LastResult.Defn.Cycles
	if mc.LastResult.BranchSuccess {
		mc.LastResult.Cycles = mc.LastResult.Defn.TakenCycles
	}
	mc.LastResult.Final = true

	mc.Cycles += uint64(mc.LastResult.Cycles)

	return mc.LastResult.Cycles, nil
}
