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

package addresses

// Serial transfer registers.
const (
	// SB holds the byte to be transferred.
	SB = uint16(0xff01)

	// SC is the serial transfer control register. Writing a value with
	// SerialTransferStart set begins a transfer of SB.
	SC = uint16(0xff02)
)

// SerialTransferStart is the bit in SC that starts a transfer.
const SerialTransferStart = uint8(0x80)

// Interrupt registers.
const (
	IF = uint16(0xff0f)
	IE = uint16(0xffff)
)

// Boundaries of the memory map used when formatting memory for output.
const (
	ROMBank0  = uint16(0x0000)
	Header    = uint16(0x0100)
	ROMBankN  = uint16(0x4000)
	VRAM      = uint16(0x8000)
	CartRAM   = uint16(0xa000)
	WRAM      = uint16(0xc000)
	EchoRAM   = uint16(0xe000)
	OAM       = uint16(0xfe00)
	IO        = uint16(0xff00)
	HRAM      = uint16(0xff80)
	MemoryTop = 0x10000
)

// Symbols maps the addresses of named registers to their name.
var Symbols = map[uint16]string{
	SB: "SB",
	SC: "SC",
	IF: "IF",
	IE: "IE",
}

// Area returns the name of the memory area that the address is in.
func Area(address uint16) string {
	switch {
	case address < ROMBankN:
		return "ROM0"
	case address < VRAM:
		return "ROMX"
	case address < CartRAM:
		return "VRAM"
	case address < WRAM:
		return "SRAM"
	case address < EchoRAM:
		return "WRAM"
	case address < OAM:
		return "ECHO"
	case address < HRAM:
		if address < IO {
			return "OAM"
		}
		return "I/O"
	case address < IE:
		return "HRAM"
	}
	return "IE"
}
