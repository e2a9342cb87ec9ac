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

// Package registers implements the registers of the LR35902. The eight bit
// registers are stored in a single array indexed by the three bit register
// selector found in the opcode encoding. The register pairs BC, DE, HL and AF
// are views of those registers and are not stored separately.
//
// The stack pointer and program counter are implemented by the ProgramCounter
// type. Arithmetic on these registers wraps silently.
//
// The flags register is implemented as a StatusRegister. Flags are never set
// directly for arithmetic instructions. Instead, the operands are passed to
// one of the StatusRegister functions, which performs the operation and sets
// the flags according to the result. For example:
//
//	r := sr.Add(a, b, false)
//
// In addition to returning the result of a+b, the Zero, Subtract, HalfCarry
// and Carry flags are set appropriately.
package registers
