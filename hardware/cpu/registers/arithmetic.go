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

// carry-in as an integer for use in the arithmetic functions.
func carryIn(carry bool) uint {
	if carry {
		return 1
	}
	return 0
}

// Add returns a+b+carry and sets the flags accordingly. The carry argument
// should be false for ADD and the current Carry flag for ADC.
func (sr *StatusRegister) Add(a, b uint8, carry bool) uint8 {
	c := carryIn(carry)
	sum := uint(a) + uint(b) + c
	r := uint8(sum)

	sr.Zero = r == 0
	sr.Subtract = false
	sr.HalfCarry = uint(a&0x0f)+uint(b&0x0f)+c > 0x0f
	sr.Carry = sum > 0xff

	return r
}

// Sub returns a-b-carry and sets the flags accordingly. The carry argument
// should be false for SUB and CP and the current Carry flag for SBC.
func (sr *StatusRegister) Sub(a, b uint8, carry bool) uint8 {
	c := carryIn(carry)
	r := uint8(uint(a) - uint(b) - c)

	sr.Zero = r == 0
	sr.Subtract = true
	sr.HalfCarry = uint(b&0x0f)+c > uint(a&0x0f)
	sr.Carry = uint(b)+c > uint(a)

	return r
}

// Add16 returns a+b for the ADD HL,rr instructions. HalfCarry is carry out of
// bit 11 and Carry is carry out of bit 15. The Zero flag is not affected.
func (sr *StatusRegister) Add16(a, b uint16) uint16 {
	sum := uint(a) + uint(b)

	sr.Subtract = false
	sr.HalfCarry = uint(a&0x0fff)+uint(b&0x0fff) > 0x0fff
	sr.Carry = sum > 0xffff

	return uint16(sum)
}

// AddSigned returns sp plus the signed eight bit offset for the ADD SP,e and
// LD HL,SP+e instructions. HalfCarry and Carry are taken from the unsigned
// addition of the low byte of sp and the offset. Zero and Subtract are
// cleared.
func (sr *StatusRegister) AddSigned(sp uint16, e uint8) uint16 {
	sr.Zero = false
	sr.Subtract = false
	sr.HalfCarry = uint(sp&0x0f)+uint(e&0x0f) > 0x0f
	sr.Carry = uint(sp&0xff)+uint(e) > 0xff

	return sp + uint16(int16(int8(e)))
}

// Logic sets the flags for the result of AND, OR and XOR. HalfCarry should be
// true for AND.
func (sr *StatusRegister) Logic(result uint8, halfCarry bool) {
	sr.Zero = result == 0
	sr.Subtract = false
	sr.HalfCarry = halfCarry
	sr.Carry = false
}

// Increment returns v+1 and sets the flags as for addition. The Carry flag is
// not affected.
func (sr *StatusRegister) Increment(v uint8) uint8 {
	r := v + 1
	sr.Zero = r == 0
	sr.Subtract = false
	sr.HalfCarry = v&0x0f == 0x0f
	return r
}

// Decrement returns v-1 and sets the flags as for subtraction. The Carry flag
// is not affected.
func (sr *StatusRegister) Decrement(v uint8) uint8 {
	r := v - 1
	sr.Zero = r == 0
	sr.Subtract = true
	sr.HalfCarry = v&0x0f == 0x00
	return r
}

// Shift sets the flags for the result of the CB prefixed rotate and shift
// instructions. Carry is the bit shifted out of the value.
func (sr *StatusRegister) Shift(result uint8, carry bool) {
	sr.Zero = result == 0
	sr.Subtract = false
	sr.HalfCarry = false
	sr.Carry = carry
}

// RotateA sets the flags for RLCA, RLA, RRCA and RRA. Unlike the CB prefixed
// rotates the Zero flag is always cleared.
func (sr *StatusRegister) RotateA(carry bool) {
	sr.Zero = false
	sr.Subtract = false
	sr.HalfCarry = false
	sr.Carry = carry
}

// Bit sets the flags for the BIT instruction. Zero is set if the bit is
// clear. Carry is not affected.
func (sr *StatusRegister) Bit(set bool) {
	sr.Zero = !set
	sr.Subtract = false
	sr.HalfCarry = true
}

// DecimalAdjust returns the value corrected to packed BCD after an addition
// or subtraction, using the Subtract, HalfCarry and Carry flags to decide the
// correction. HalfCarry is always cleared.
//
// After a subtraction a set Carry flag stays set.
func (sr *StatusRegister) DecimalAdjust(v uint8) uint8 {
	r := uint(v)

	if sr.Subtract {
		if sr.HalfCarry {
			r -= 0x06
		}
		if sr.Carry {
			r -= 0x60
		}
	} else {
		if sr.HalfCarry || r&0x0f > 0x09 {
			r += 0x06
		}
		if sr.Carry || r > 0x9f {
			r += 0x60
		}
		sr.Carry = sr.Carry || r > 0xff
	}

	sr.Zero = uint8(r) == 0
	sr.HalfCarry = false

	return uint8(r)
}

// Complement sets the flags for the CPL instruction.
func (sr *StatusRegister) Complement() {
	sr.Subtract = true
	sr.HalfCarry = true
}

// SetCarry sets the flags for the SCF instruction.
func (sr *StatusRegister) SetCarry() {
	sr.Subtract = false
	sr.HalfCarry = false
	sr.Carry = true
}

// ComplementCarry sets the flags for the CCF instruction.
func (sr *StatusRegister) ComplementCarry() {
	sr.Subtract = false
	sr.HalfCarry = false
	sr.Carry = !sr.Carry
}
