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
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
)

// opcodes are decoded from their bit fields
//
//	x = bits 7-6
//	y = bits 5-3
//	z = bits 2-0
//	p = bits 5-4
//	q = bit 3
type fields struct {
	x, y, z uint8
	p       registers.Pair
	q       uint8
}

func decode(opcode uint8) fields {
	y := (opcode >> 3) & 0x07
	return fields{
		x: opcode >> 6,
		y: y,
		z: opcode & 0x07,
		p: registers.Pair(y >> 1),
		q: y & 0x01,
	}
}

// execute the primary opcode. the opcode has already been read and the
// definition is in LastResult.
func (mc *CPU) execute(opcode uint8) error {
	f := decode(opcode)

	switch f.x {
	case 0:
		return mc.executeBlock0(opcode, f)
	case 1:
		if opcode == 0x76 {
			mc.Halted = true
			return nil
		}
		mc.set(registers.Selector(f.y), mc.get(registers.Selector(f.z)))
		return nil
	case 2:
		mc.alu(f.y, mc.get(registers.Selector(f.z)))
		return nil
	}

	return mc.executeBlock3(opcode, f)
}

// the unprefixed opcodes in the range 0x00 to 0x3f
func (mc *CPU) executeBlock0(opcode uint8, f fields) error {
	switch f.z {
	case 0:
		switch f.y {
		case 0:
			// NOP
		case 1:
			// LD (a16),SP
			mc.write16Bit(mc.readOperand16(), mc.Regs.SP.Address())
		case 2:
			// STOP. the padding byte is consumed
			mc.readOperand8()
			mc.Stopped = true
		case 3:
			// JR r8
			e := mc.readOperand8()
			mc.Regs.PC.AddSigned(e)
		default:
			// JR cc,r8
			e := mc.readOperand8()
			if mc.condition(f.y - 4) {
				mc.LastResult.BranchSuccess = true
				mc.Regs.PC.AddSigned(e)
			}
		}

	case 1:
		if f.q == 0 {
			// LD rr,d16
			mc.Regs.SetPair(f.p, mc.readOperand16())
		} else {
			// ADD HL,rr
			mc.Regs.SetHL(mc.Regs.F.Add16(mc.Regs.HL(), mc.Regs.Pair(f.p)))
		}

	case 2:
		// indirect loads to and from the accumulator. the HL forms increment or
		// decrement HL after the access
		var address uint16
		switch f.p {
		case registers.BC, registers.DE:
			address = mc.Regs.Pair(f.p)
		case registers.HL:
			address = mc.Regs.HL()
			mc.Regs.SetHL(address + 1)
		default:
			address = mc.Regs.HL()
			mc.Regs.SetHL(address - 1)
		}
		if f.q == 0 {
			mc.mem.Write(address, mc.Regs.A())
		} else {
			mc.Regs.SetA(mc.mem.Read(address))
		}

	case 3:
		// INC rr and DEC rr. no flags are affected
		if f.q == 0 {
			mc.Regs.SetPair(f.p, mc.Regs.Pair(f.p)+1)
		} else {
			mc.Regs.SetPair(f.p, mc.Regs.Pair(f.p)-1)
		}

	case 4:
		sel := registers.Selector(f.y)
		mc.set(sel, mc.Regs.F.Increment(mc.get(sel)))

	case 5:
		sel := registers.Selector(f.y)
		mc.set(sel, mc.Regs.F.Decrement(mc.get(sel)))

	case 6:
		// LD r,d8
		mc.set(registers.Selector(f.y), mc.readOperand8())

	case 7:
		a := mc.Regs.A()
		switch f.y {
		case 0:
			// RLCA
			r, c := rotate(instructions.RLC, a, mc.Regs.F.Carry)
			mc.Regs.SetA(r)
			mc.Regs.F.RotateA(c)
		case 1:
			// RRCA
			r, c := rotate(instructions.RRC, a, mc.Regs.F.Carry)
			mc.Regs.SetA(r)
			mc.Regs.F.RotateA(c)
		case 2:
			// RLA
			r, c := rotate(instructions.RL, a, mc.Regs.F.Carry)
			mc.Regs.SetA(r)
			mc.Regs.F.RotateA(c)
		case 3:
			// RRA
			r, c := rotate(instructions.RR, a, mc.Regs.F.Carry)
			mc.Regs.SetA(r)
			mc.Regs.F.RotateA(c)
		case 4:
			mc.Regs.SetA(mc.Regs.F.DecimalAdjust(a))
		case 5:
			mc.Regs.SetA(^a)
			mc.Regs.F.Complement()
		case 6:
			mc.Regs.F.SetCarry()
		case 7:
			mc.Regs.F.ComplementCarry()
		}
	}

	return nil
}

// the unprefixed opcodes in the range 0xc0 to 0xff
func (mc *CPU) executeBlock3(opcode uint8, f fields) error {
	switch f.z {
	case 0:
		switch f.y {
		case 4:
			// LDH (a8),A
			mc.mem.Write(0xff00|uint16(mc.readOperand8()), mc.Regs.A())
		case 5:
			// ADD SP,r8
			mc.Regs.SP.Load(mc.Regs.F.AddSigned(mc.Regs.SP.Address(), mc.readOperand8()))
		case 6:
			// LDH A,(a8)
			mc.Regs.SetA(mc.mem.Read(0xff00 | uint16(mc.readOperand8())))
		case 7:
			// LD HL,SP+r8
			mc.Regs.SetHL(mc.Regs.F.AddSigned(mc.Regs.SP.Address(), mc.readOperand8()))
		default:
			// RET cc
			if mc.condition(f.y) {
				mc.LastResult.BranchSuccess = true
				mc.Regs.PC.Load(mc.pop())
			}
		}
		return nil

	case 1:
		if f.q == 0 {
			// POP rr
			mc.Regs.SetStackPair(f.p, mc.pop())
			return nil
		}
		switch f.p {
		case 0:
			// RET
			mc.Regs.PC.Load(mc.pop())
		case 1:
			// RETI
			mc.Regs.PC.Load(mc.pop())
			mc.IME = true
		case 2:
			// JP (HL)
			mc.Regs.PC.Load(mc.Regs.HL())
		case 3:
			// LD SP,HL
			mc.Regs.SP.Load(mc.Regs.HL())
		}
		return nil

	case 2:
		switch f.y {
		case 4:
			// LD (C),A
			mc.mem.Write(0xff00|uint16(mc.Regs.Get(registers.C)), mc.Regs.A())
		case 5:
			// LD (a16),A
			mc.mem.Write(mc.readOperand16(), mc.Regs.A())
		case 6:
			// LD A,(C)
			mc.Regs.SetA(mc.mem.Read(0xff00 | uint16(mc.Regs.Get(registers.C))))
		case 7:
			// LD A,(a16)
			mc.Regs.SetA(mc.mem.Read(mc.readOperand16()))
		default:
			// JP cc,a16
			address := mc.readOperand16()
			if mc.condition(f.y) {
				mc.LastResult.BranchSuccess = true
				mc.Regs.PC.Load(address)
			}
		}
		return nil

	case 3:
		switch f.y {
		case 0:
			// JP a16
			mc.Regs.PC.Load(mc.readOperand16())
			return nil
		case 6:
			mc.IME = false
			return nil
		case 7:
			mc.IME = true
			return nil
		}

	case 4:
		if f.y < 4 {
			// CALL cc,a16
			address := mc.readOperand16()
			if mc.condition(f.y) {
				mc.LastResult.BranchSuccess = true
				mc.push(mc.Regs.PC.Address())
				mc.Regs.PC.Load(address)
			}
			return nil
		}

	case 5:
		if f.q == 0 {
			// PUSH rr
			mc.push(mc.Regs.StackPair(f.p))
			return nil
		}
		if f.p == 0 {
			// CALL a16
			address := mc.readOperand16()
			mc.push(mc.Regs.PC.Address())
			mc.Regs.PC.Load(address)
			return nil
		}

	case 6:
		mc.alu(f.y, mc.readOperand8())
		return nil

	case 7:
		// RST
		mc.push(mc.Regs.PC.Address())
		mc.Regs.PC.Load(uint16(f.y) * 8)
		return nil
	}

	// the definition table and the decoder disagree
	mc.Regs.PC.Load(mc.LastResult.Address)
	return curated.Errorf(UnimplementedInstruction, opcode, mc.LastResult.Address)
}

// alu performs one of the eight accumulator operations selected by the y
// field of the opcode. in order the operations are ADD, ADC, SUB, SBC, AND,
// XOR, OR and CP.
func (mc *CPU) alu(op uint8, v uint8) {
	a := mc.Regs.A()

	switch op & 0x07 {
	case 0:
		mc.Regs.SetA(mc.Regs.F.Add(a, v, false))
	case 1:
		mc.Regs.SetA(mc.Regs.F.Add(a, v, mc.Regs.F.Carry))
	case 2:
		mc.Regs.SetA(mc.Regs.F.Sub(a, v, false))
	case 3:
		mc.Regs.SetA(mc.Regs.F.Sub(a, v, mc.Regs.F.Carry))
	case 4:
		r := a & v
		mc.Regs.F.Logic(r, true)
		mc.Regs.SetA(r)
	case 5:
		r := a ^ v
		mc.Regs.F.Logic(r, false)
		mc.Regs.SetA(r)
	case 6:
		r := a | v
		mc.Regs.F.Logic(r, false)
		mc.Regs.SetA(r)
	case 7:
		// compare is a subtraction that discards the result
		_ = mc.Regs.F.Sub(a, v, false)
	}
}
