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

// Package cpu emulates the Sharp LR35902 found in the DMG handheld console.
// Like all 8-bit processors of the era, the LR35902 executes instructions
// according to the single byte value read from the address pointed to by the
// program counter. This single byte is the opcode and is looked up in the
// instruction table. The instruction definition for that opcode is then used
// to move execution of the program forward.
//
// The opcode 0xcb is a prefix. The byte following the prefix is looked up in a
// second table of 256 rotate, shift and bit instructions.
//
// An instance of the CPU type requires an implementation of the
// cpubus.Memory interface. The interface defines the memory operations
// required by the CPU.
//
// The bread-and-butter of the CPU type is the Step() function. It executes one
// instruction and returns the number of M-cycles the instruction took.
//
//	mc := cpu.NewCPU(nil, mem)
//	mc.Reset()
//
//	for !mc.Halted {
//		cycles, err := mc.Step()
//		if err != nil {
//			return err
//		}
//		...
//	}
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
//
// Interrupts are not dispatched. The IME flag is maintained by DI, EI and
// RETI but nothing reads it. Once halted or stopped the CPU stays that way
// until it is reset.
package cpu
