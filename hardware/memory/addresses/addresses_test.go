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

package addresses_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestArea(t *testing.T) {
	test.ExpectEquality(t, addresses.Area(0x0000), "ROM0")
	test.ExpectEquality(t, addresses.Area(0x0150), "ROM0")
	test.ExpectEquality(t, addresses.Area(0x4000), "ROMX")
	test.ExpectEquality(t, addresses.Area(0x9fff), "VRAM")
	test.ExpectEquality(t, addresses.Area(0xa000), "SRAM")
	test.ExpectEquality(t, addresses.Area(0xc000), "WRAM")
	test.ExpectEquality(t, addresses.Area(0xe000), "ECHO")
	test.ExpectEquality(t, addresses.Area(0xfe00), "OAM")
	test.ExpectEquality(t, addresses.Area(addresses.SC), "I/O")
	test.ExpectEquality(t, addresses.Area(0xff80), "HRAM")
	test.ExpectEquality(t, addresses.Area(0xfffe), "HRAM")
	test.ExpectEquality(t, addresses.Area(addresses.IE), "IE")
}

func TestSymbols(t *testing.T) {
	test.ExpectEquality(t, addresses.Symbols[addresses.SB], "SB")
	test.ExpectEquality(t, addresses.Symbols[addresses.SC], "SC")
}
