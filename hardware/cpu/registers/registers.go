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

package registers

import (
	"fmt"
	"strings"
)

// Registers of the LR35902.
type Registers struct {
	// indexed by Selector. the entry for MemHL is never used
	r [8]uint8

	F  StatusRegister
	SP ProgramCounter
	PC ProgramCounter
}

// NewRegisters is the preferred method of initialisation for the Registers
// type. All registers are zero except the stack pointer, which is 0xfffe.
func NewRegisters() Registers {
	return Registers{
		SP: NewStackPointer(0xfffe),
		PC: NewProgramCounter(0),
	}
}

// Reset all registers. The stack pointer is set to 0xfffe.
func (r *Registers) Reset() {
	*r = NewRegisters()
}

func (r Registers) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("A=%02x F=%s ", r.r[A], r.F))
	s.WriteString(fmt.Sprintf("BC=%04x DE=%04x HL=%04x ", r.Pair(BC), r.Pair(DE), r.Pair(HL)))
	s.WriteString(fmt.Sprintf("SP=%s PC=%s", r.SP, r.PC))
	return s.String()
}

// Get returns the value of the eight bit register. Selector MemHL is not a
// register and must not be used.
func (r *Registers) Get(sel Selector) uint8 {
	return r.r[sel&0x07]
}

// Set the value of the eight bit register. Selector MemHL is not a register
// and must not be used.
func (r *Registers) Set(sel Selector, v uint8) {
	r.r[sel&0x07] = v
}

// A returns the value of the accumulator.
func (r *Registers) A() uint8 {
	return r.r[A]
}

// SetA sets the value of the accumulator.
func (r *Registers) SetA(v uint8) {
	r.r[A] = v
}

// Pair returns the value of the register pair. The SPorAF value returns the
// stack pointer.
func (r *Registers) Pair(p Pair) uint16 {
	switch p & 0x03 {
	case BC:
		return uint16(r.r[B])<<8 | uint16(r.r[C])
	case DE:
		return uint16(r.r[D])<<8 | uint16(r.r[E])
	case HL:
		return uint16(r.r[H])<<8 | uint16(r.r[L])
	}
	return r.SP.Address()
}

// SetPair sets the value of the register pair. The SPorAF value sets the
// stack pointer.
func (r *Registers) SetPair(p Pair, v uint16) {
	switch p & 0x03 {
	case BC:
		r.r[B], r.r[C] = uint8(v>>8), uint8(v)
	case DE:
		r.r[D], r.r[E] = uint8(v>>8), uint8(v)
	case HL:
		r.r[H], r.r[L] = uint8(v>>8), uint8(v)
	default:
		r.SP.Load(v)
	}
}

// StackPair returns the value of the register pair as used by PUSH and POP.
// The SPorAF value returns AF.
func (r *Registers) StackPair(p Pair) uint16 {
	if p&0x03 == SPorAF {
		return r.AF()
	}
	return r.Pair(p)
}

// SetStackPair sets the value of the register pair as used by PUSH and POP.
// The SPorAF value sets AF.
func (r *Registers) SetStackPair(p Pair, v uint16) {
	if p&0x03 == SPorAF {
		r.SetAF(v)
		return
	}
	r.SetPair(p, v)
}

// AF returns the accumulator and flags as a sixteen bit value.
func (r *Registers) AF() uint16 {
	return uint16(r.r[A])<<8 | uint16(r.F.Value())
}

// SetAF sets the accumulator and the flags. The low nibble of the flags is
// always zero.
func (r *Registers) SetAF(v uint16) {
	r.r[A] = uint8(v >> 8)
	r.F.FromValue(uint8(v))
}

// HL returns the value of the HL register pair.
func (r *Registers) HL() uint16 {
	return r.Pair(HL)
}

// SetHL sets the value of the HL register pair.
func (r *Registers) SetHL(v uint16) {
	r.SetPair(HL, v)
}
