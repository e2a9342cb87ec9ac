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
	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
)

// rotate applies the rotate or shift operation to v and returns the result
// and the bit shifted out. the carry argument is shifted in by RL and RR.
func rotate(op instructions.ShiftOperation, v uint8, carry bool) (uint8, bool) {
	var cin uint8
	if carry {
		cin = 1
	}

	switch op {
	case instructions.RLC:
		return v<<1 | v>>7, v&0x80 == 0x80
	case instructions.RRC:
		return v>>1 | v<<7, v&0x01 == 0x01
	case instructions.RL:
		return v<<1 | cin, v&0x80 == 0x80
	case instructions.RR:
		return v>>1 | cin<<7, v&0x01 == 0x01
	case instructions.SLA:
		return v << 1, v&0x80 == 0x80
	case instructions.SRA:
		return v>>1 | v&0x80, v&0x01 == 0x01
	case instructions.SWAP:
		return v<<4 | v>>4, false
	}

	// SRL
	return v >> 1, v&0x01 == 0x01
}

// executeExtended performs the CB prefixed instruction. the prefix and the
// second byte have already been read.
func (mc *CPU) executeExtended(opcode uint8) {
	mc.LastResult.Defn = mc.extended[opcode]

	_, operand, target := instructions.Extended(opcode)
	sel := registers.Selector(target)
	v := mc.get(sel)

	switch {
	case instructions.IsShift(opcode):
		r, c := rotate(instructions.ShiftOperation(operand), v, mc.Regs.F.Carry)
		mc.Regs.F.Shift(r, c)
		mc.set(sel, r)
	case instructions.IsBit(opcode):
		mc.Regs.F.Bit(v&(1<<operand) != 0)
	case instructions.IsRes(opcode):
		mc.set(sel, v&^(1<<operand))
	case instructions.IsSet(opcode):
		mc.set(sel, v|(1<<operand))
	}
}
