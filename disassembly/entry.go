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

package disassembly

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/execution"
)

// EntryLevel describes the level of confidence in an Entry.
type EntryLevel int

// List of valid EntryLevel values.
const (
	// the bytes do not decode to an instruction
	EntryLevelData EntryLevel = iota

	// the bytes decode to an instruction
	EntryLevelDecoded

	// the entry is the target of a jump, call or restart
	EntryLevelBlessed
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelData:
		return "data"
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	}
	return "unknown"
}

// Entry is a single decoded instruction or data byte.
type Entry struct {
	Level EntryLevel

	// for data entries only the Address field is meaningful
	Result execution.Result

	// the data byte for data entries
	Data uint8

	// the destination of a flow instruction. only meaningful if HasTarget is
	// true
	Target    uint16
	HasTarget bool
}

// Size returns the number of bytes the entry occupies.
func (e *Entry) Size() int {
	if e.Level == EntryLevelData {
		return 1
	}
	return e.Result.ByteCount
}

func (e *Entry) String() string {
	if e.Level == EntryLevelData {
		return fmt.Sprintf("%04x  %-9s db $%02x", e.Result.Address, fmt.Sprintf("%02x", e.Data), e.Data)
	}

	// the cycles count in the Result string is not interesting for a static
	// disassembly but it is left in for consistency with the tracer
	s := e.Result.String()
	if e.HasTarget {
		s = fmt.Sprintf("%s -> %04x", s, e.Target)
	}
	return s
}
