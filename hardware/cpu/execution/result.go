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

package execution

import (
	"fmt"
	"strings"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the instruction. for CB prefixed instructions this
	// is the definition from the extended table
	Defn *instructions.Definition

	// the operand of the instruction. eight bit operands are stored in the
	// low byte. zero if the instruction has no operand
	InstructionData uint16

	// the number of bytes read from the instruction stream
	ByteCount int

	// the number of M-cycles taken by the instruction. for conditional
	// instructions this will be either Defn.Cycles or Defn.TakenCycles
	Cycles int

	// whether a conditional instruction took its branch
	BranchSuccess bool

	// whether the instruction has completed. the values of the other fields
	// are undefined unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// operand placeholders in mnemonics and the number of hex digits to replace
// them with
var placeholders = []struct {
	name   string
	digits int
}{
	{"d16", 4},
	{"a16", 4},
	{"d8", 2},
	{"a8", 2},
	{"r8", 2},
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x  ???", r.Address)
	}

	var hex string
	switch {
	case r.Defn.Prefixed:
		hex = fmt.Sprintf("cb %02x", r.Defn.OpCode)
	case r.Defn.Bytes == 3:
		hex = fmt.Sprintf("%02x %02x %02x", r.Defn.OpCode, r.InstructionData&0xff, r.InstructionData>>8)
	case r.Defn.Bytes == 2:
		hex = fmt.Sprintf("%02x %02x", r.Defn.OpCode, r.InstructionData&0xff)
	default:
		hex = fmt.Sprintf("%02x", r.Defn.OpCode)
	}

	operator := r.Defn.Mnemonic
	if !r.Defn.Prefixed {
		for _, p := range placeholders {
			if strings.Contains(operator, p.name) {
				operator = strings.Replace(operator, p.name, fmt.Sprintf("$%0*x", p.digits, r.InstructionData), 1)
				break
			}
		}
	}

	s := fmt.Sprintf("%04x  %-9s %-16s [%d]", r.Address, hex, operator, r.Cycles)
	if r.Defn.IsConditional() && r.BranchSuccess {
		s = fmt.Sprintf("%s taken", s)
	}
	return s
}
