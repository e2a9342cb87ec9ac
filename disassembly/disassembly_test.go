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

package disassembly_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/disassembly"
	"github.com/gopherdmg/gopherdmg/test"
)

var program = []uint8{
	0x00,             // 0100 NOP
	0xc3, 0x08, 0x01, // 0101 JP $0108
	0xd3,       // 0104 undefined
	0xcb, 0x37, // 0105 SWAP A
	0x3e,       // 0107 LD A,d8 (operand is the next entry)
	0x3e, 0x42, // 0108 LD A,$42
	0x20, 0xfc, // 010a JR NZ,$0108
	0xcd, 0x00, // 010c CALL truncated
}

func TestLinear(t *testing.T) {
	dsm, err := disassembly.FromData(program, 0x0100, 0x0100, 0x0100+len(program))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, len(dsm.Entries), 9)

	e, ok := dsm.GetEntryByAddress(0x0101)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelDecoded)
	test.ExpectEquality(t, e.Result.InstructionData, uint16(0x0108))
	test.ExpectSuccess(t, e.HasTarget)
	test.ExpectEquality(t, e.Target, uint16(0x0108))

	e, ok = dsm.GetEntryByAddress(0x0104)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelData)
	test.ExpectEquality(t, e.Data, uint8(0xd3))

	e, ok = dsm.GetEntryByAddress(0x0105)
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, e.Result.Defn.Prefixed)
	test.ExpectEquality(t, e.Size(), 2)

	// LD A,d8 at 0x0107 swallows the first byte of the instruction at 0x0108
	e, ok = dsm.GetEntryByAddress(0x0107)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Result.InstructionData, uint16(0x3e))
	_, ok = dsm.GetEntryByAddress(0x0108)
	test.ExpectFailure(t, ok)

	e, ok = dsm.GetEntryByAddress(0x010a)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Target, uint16(0x0108))

	// CALL at the end of the data is truncated. the byte after it decodes
	// to NOP
	e, ok = dsm.GetEntryByAddress(0x010c)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelData)
	e, ok = dsm.GetEntryByAddress(0x010d)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelDecoded)
	test.ExpectEquality(t, e.Result.Defn.Mnemonic, "NOP")
}

func TestBlessing(t *testing.T) {
	// starting the disassembly at 0x0108 realigns the decoding
	dsm, err := disassembly.FromData(program, 0x0100, 0x0108, 0x010c)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(dsm.Entries), 2)

	e, ok := dsm.GetEntryByAddress(0x0108)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelBlessed)

	c := dsm.Counts()
	test.ExpectEquality(t, c[disassembly.EntryLevelBlessed], 1)
	test.ExpectEquality(t, c[disassembly.EntryLevelDecoded], 1)
	test.ExpectEquality(t, c[disassembly.EntryLevelData], 0)

	var b bytes.Buffer
	test.ExpectSuccess(t, dsm.Write(&b))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "L0108:")
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "    0108  3e 42"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[2], "-> 0108"))
}

func TestRestartTarget(t *testing.T) {
	dsm, err := disassembly.FromData([]uint8{0xef}, 0x0000, 0x0000, 0x0001)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dsm.Entries[0].Target, uint16(0x0028))
}

func TestRange(t *testing.T) {
	_, err := disassembly.FromData(program, 0x0100, 0x00ff, 0x0104)
	test.ExpectSuccess(t, curated.Is(err, disassembly.RangeError))

	_, err = disassembly.FromData(program, 0x0100, 0x0104, 0x0104)
	test.ExpectFailure(t, err)

	// end of range is clamped to the address space. the final NOP is at
	// 0xffff and nothing wraps to 0x0000
	big := make([]uint8, 0x10010)
	dsm, err := disassembly.FromData(big, 0x0000, 0xfff0, 0x10010)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(dsm.Entries), 16)
	test.ExpectEquality(t, dsm.Entries[15].Result.Address, uint16(0xffff))
	_, ok := dsm.GetEntryByAddress(0x0000)
	test.ExpectFailure(t, ok)

	_, err = disassembly.FromData(big, 0x0000, 0x10000, 0x10010)
	test.ExpectFailure(t, err)

	// end of range is clamped to the data
	dsm, err = disassembly.FromData(program, 0x0100, 0x0100, 0x1000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(dsm.Entries), 9)
}
