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
	"io"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/execution"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
)

// RangeError is returned by FromData() when the requested range is not in
// the data.
const RangeError = "disassembly: range is not in the data (%#04x to %#04x)"

// Disassembly represents the linear disassembly of a block of memory.
type Disassembly struct {
	// the address of the first byte of the data
	Origin uint16

	// entries in address order
	Entries []*Entry

	// entries indexed by address
	reference map[uint16]*Entry
}

// FromData disassembles the data in the range [from, to). The origin is the
// address of the first byte of data and from and to are addresses. A value of
// to that is greater than the end of the data, or the end of the address
// space, is clamped.
func FromData(data []uint8, origin uint16, from int, to int) (*Disassembly, error) {
	end := int(origin) + len(data)
	if end > addresses.MemoryTop {
		end = addresses.MemoryTop
	}
	if to > end {
		to = end
	}
	if from < int(origin) || from >= to {
		return nil, curated.Errorf(RangeError, from, to)
	}

	defs, err := instructions.GetDefinitions()
	if err != nil {
		return nil, fmt.Errorf("disassembly: %w", err)
	}
	ext := instructions.GetExtendedDefinitions()

	dsm := &Disassembly{
		Origin:    origin,
		reference: make(map[uint16]*Entry),
	}

	read := func(address int) uint8 {
		return data[address-int(origin)]
	}

	for address := from; address < to; {
		e := &Entry{}
		e.Result.Address = uint16(address)

		opcode := read(address)
		defn := defs[opcode]
		if opcode == 0xcb && address+1 < to {
			defn = ext[read(address+1)]
		}

		if defn == nil || address+defn.Bytes > to || (opcode == 0xcb && !defn.Prefixed) {
			e.Level = EntryLevelData
			e.Data = opcode
		} else {
			e.Level = EntryLevelDecoded
			e.Result.Defn = defn
			e.Result.ByteCount = defn.Bytes
			e.Result.Cycles = defn.Cycles
			e.Result.Final = true

			if !defn.Prefixed {
				switch defn.Bytes {
				case 2:
					e.Result.InstructionData = uint16(read(address + 1))
				case 3:
					e.Result.InstructionData = uint16(read(address+1)) | uint16(read(address+2))<<8
				}
			}
			e.Target, e.HasTarget = target(e.Result)
		}

		dsm.Entries = append(dsm.Entries, e)
		dsm.reference[e.Result.Address] = e
		address += e.Size()
	}

	dsm.bless()

	return dsm, nil
}

// target returns the destination address of flow instructions with an
// operand or restart vector. JP (HL) and the returns have no static target.
func target(r execution.Result) (uint16, bool) {
	opcode := r.Defn.OpCode
	switch {
	// JR and JR cc
	case opcode == 0x18 || opcode&0xe7 == 0x20:
		return r.Address + 2 + uint16(int8(r.InstructionData)), true

	// JP, JP cc, CALL and CALL cc
	case opcode == 0xc3 || opcode == 0xcd || opcode&0xe7 == 0xc2 || opcode&0xe7 == 0xc4:
		return r.InstructionData, true

	// RST
	case opcode&0xc7 == 0xc7:
		return uint16(opcode & 0x38), true
	}
	return 0, false
}

// bless every decoded entry that is the target of another entry.
func (dsm *Disassembly) bless() {
	for _, e := range dsm.Entries {
		if !e.HasTarget {
			continue
		}
		if t, ok := dsm.reference[e.Target]; ok && t.Level == EntryLevelDecoded {
			t.Level = EntryLevelBlessed
		}
	}
}

// GetEntryByAddress returns the entry that starts at the address.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (*Entry, bool) {
	e, ok := dsm.reference[address]
	return e, ok
}

// Counts returns the number of entries at each level.
func (dsm *Disassembly) Counts() map[EntryLevel]int {
	c := make(map[EntryLevel]int)
	for _, e := range dsm.Entries {
		c[e.Level]++
	}
	return c
}

// Write the disassembly to io.Writer. Blessed entries are preceded by a
// label line.
func (dsm *Disassembly) Write(output io.Writer) error {
	for _, e := range dsm.Entries {
		if e.Level == EntryLevelBlessed {
			if _, err := fmt.Fprintf(output, "L%04x:\n", e.Result.Address); err != nil {
				return fmt.Errorf("disassembly: %w", err)
			}
		}
		if _, err := fmt.Fprintf(output, "    %s\n", e); err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
	}
	return nil
}
