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

// Selector identifies an eight bit register by the three bit field used in
// the opcode encoding.
type Selector uint8

// List of valid Selector values. MemHL is not a register but the memory
// location pointed to by HL. It must be resolved by the CPU.
const (
	B Selector = iota
	C
	D
	E
	H
	L
	MemHL
	A
)

func (sel Selector) String() string {
	switch sel & 0x07 {
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case H:
		return "H"
	case L:
		return "L"
	case MemHL:
		return "(HL)"
	}
	return "A"
}

// Pair identifies a sixteen bit register pair by the two bit field used in
// the opcode encoding. The meaning of the value 3 depends on the instruction:
// it is SP for loads and arithmetic but AF for PUSH and POP.
type Pair uint8

// List of valid Pair values.
const (
	BC Pair = iota
	DE
	HL
	SPorAF
)

// Label returns the name of the pair. The stack argument selects between SP
// and AF for the SPorAF value.
func (p Pair) Label(stack bool) string {
	switch p & 0x03 {
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	}
	if stack {
		return "AF"
	}
	return "SP"
}
