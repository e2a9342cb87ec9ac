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

// the operation class of a CB prefixed instruction is in the top two bits of
// the second byte
const (
	classShift = iota
	classBit
	classRes
	classSet
)

// ShiftOperation identifies one of the eight rotate and shift operations in
// the CB prefixed table. The value is the middle three bits of the second
// byte of the instruction.
type ShiftOperation uint8

// List of valid ShiftOperation values.
const (
	RLC ShiftOperation = iota
	RRC
	RL
	RR
	SLA
	SRA
	SWAP
	SRL
)

var shiftMnemonics = [...]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

func (op ShiftOperation) String() string {
	return shiftMnemonics[op&0x07]
}

// the targets of the CB prefixed instructions. in the same order as the
// register selector used by the CPU
var targets = [...]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// memory target
const targetHL = 6

// cost of CB prefixed instructions in M-cycles, including the prefix byte
const (
	extendedRegisterCycles = 2
	extendedMemoryCycles   = 3
)

// Extended decomposes the second byte of a CB prefixed instruction into the
// operation class, the operand (the bit number or the shift operation) and
// the target register selector.
func Extended(opcode uint8) (class uint8, operand uint8, target uint8) {
	return opcode >> 6, (opcode >> 3) & 0x07, opcode & 0x07
}

// IsShift returns true if the opcode is a rotate or shift instruction.
func IsShift(opcode uint8) bool {
	return opcode>>6 == classShift
}

// IsBit returns true if the opcode is a BIT instruction.
func IsBit(opcode uint8) bool {
	return opcode>>6 == classBit
}

// IsRes returns true if the opcode is a RES instruction.
func IsRes(opcode uint8) bool {
	return opcode>>6 == classRes
}

// IsSet returns true if the opcode is a SET instruction.
func IsSet(opcode uint8) bool {
	return opcode>>6 == classSet
}

// GetExtendedDefinitions returns the table of CB prefixed instruction
// definitions. Every entry is defined.
func GetExtendedDefinitions() []*Definition {
	defs := make([]*Definition, 256)

	for i := range defs {
		opcode := uint8(i)
		class, operand, target := Extended(opcode)

		defn := &Definition{
			OpCode:   opcode,
			Bytes:    2,
			Cycles:   extendedRegisterCycles,
			Effect:   Read,
			Prefixed: true,
		}

		switch class {
		case classShift:
			defn.Mnemonic = fmt.Sprintf("%s %s", ShiftOperation(operand), targets[target])
		case classBit:
			defn.Mnemonic = fmt.Sprintf("BIT %d,%s", operand, targets[target])
		case classRes:
			defn.Mnemonic = fmt.Sprintf("RES %d,%s", operand, targets[target])
		case classSet:
			defn.Mnemonic = fmt.Sprintf("SET %d,%s", operand, targets[target])
		}

		if target == targetHL {
			defn.Cycles = extendedMemoryCycles
			if class != classBit {
				defn.Effect = RMW
			}
		}

		defs[i] = defn
	}

	return defs
}
