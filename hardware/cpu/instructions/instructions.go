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

package instructions

import "fmt"

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// the following effects change the program counter. conditional
	// instructions in these categories have a non-zero TakenCycles field
	Flow
	Subroutine
	Interrupt

	// push and pop
	Stack

	// instructions that change the state of the CPU rather than the
	// registers or memory
	Control
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "read"
	case Write:
		return "write"
	case RMW:
		return "rmw"
	case Flow:
		return "flow"
	case Subroutine:
		return "subroutine"
	case Interrupt:
		return "interrupt"
	case Stack:
		return "stack"
	case Control:
		return "control"
	}
	return "unknown"
}

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode   uint8
	Mnemonic string
	Bytes    int

	// cost of the instruction in M-cycles. for conditional instructions this
	// is the cost when the condition does not hold
	Cycles int

	// cost of a conditional instruction when the condition holds. zero for
	// unconditional instructions
	TakenCycles int

	Effect EffectCategory

	// instruction is in the CB prefixed table
	Prefixed bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	if defn.Prefixed {
		return fmt.Sprintf("cb %02x %s +%dbytes (%d cycles) [effect=%s]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.Effect)
	}
	if defn.IsConditional() {
		return fmt.Sprintf("%02x %s +%dbytes (%d/%d cycles) [effect=%s]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.TakenCycles, defn.Effect)
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [effect=%s]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.Effect)
}

// IsConditional returns true if the cost of the instruction depends on a
// condition.
func (defn Definition) IsConditional() bool {
	return defn.TakenCycles > 0
}

// IsBranch returns true if instruction is a relative jump.
func (defn Definition) IsBranch() bool {
	return defn.Effect == Flow && defn.Bytes == 2
}
