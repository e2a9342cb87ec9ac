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

import "fmt"

// ProgramCounter is a sixteen bit register. It is used for both the program
// counter and the stack pointer.
type ProgramCounter struct {
	label string
	value uint16
}

// NewProgramCounter is the preferred method of initialisation for the
// program counter.
func NewProgramCounter(val uint16) ProgramCounter {
	return ProgramCounter{label: "PC", value: val}
}

// NewStackPointer is the preferred method of initialisation for the stack
// pointer.
func NewStackPointer(val uint16) ProgramCounter {
	return ProgramCounter{label: "SP", value: val}
}

// Label returns the canonical name of the register.
func (pc ProgramCounter) Label() string {
	return pc.label
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%04x", pc.value)
}

// Address returns the current value of the register.
func (pc ProgramCounter) Address() uint16 {
	return pc.value
}

// Load a value into the register.
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val
}

// Add a value to the register. The result wraps.
func (pc *ProgramCounter) Add(val uint16) {
	pc.value += val
}

// AddSigned adds the signed eight bit value to the register. The result
// wraps.
func (pc *ProgramCounter) AddSigned(val uint8) {
	pc.value += uint16(int16(int8(val)))
}

// Increment the register by one and return the value before the increment.
func (pc *ProgramCounter) Increment() uint16 {
	v := pc.value
	pc.value++
	return v
}

// Decrement the register by one and return the new value.
func (pc *ProgramCounter) Decrement() uint16 {
	pc.value--
	return pc.value
}
