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

package cartridge

import "fmt"

// SGBSupport is the value of the SGB flag.
type SGBSupport uint8

// List of valid SGBSupport values.
const (
	SGBNone SGBSupport = 0x00
	SGBOkay SGBSupport = 0x03
)

func (s SGBSupport) String() string {
	switch s {
	case SGBNone:
		return "GB only"
	case SGBOkay:
		return "SGB functions"
	}
	return fmt.Sprintf("unknown (%#02x)", uint8(s))
}

// CGBSupport is the value of the CGB flag, the last byte of the title area.
type CGBSupport uint8

// List of valid CGBSupport values.
const (
	CGBNone       CGBSupport = 0x00
	CGBCompatible CGBSupport = 0x80
	CGBOnly       CGBSupport = 0xc0
)

func (c CGBSupport) String() string {
	switch c {
	case CGBCompatible:
		return "CGB compatible"
	case CGBOnly:
		return "CGB only"
	}
	return "DMG"
}

// cartridge types by header code
var cartridgeTypes = map[uint8]string{
	0x00: "ROM ONLY",
	0x01: "MBC1",
	0x02: "MBC1+RAM",
	0x03: "MBC1+RAM+BATTERY",
	0x05: "MBC2",
	0x06: "MBC2+BATTERY",
	0x08: "ROM+RAM",
	0x09: "ROM+RAM+BATTERY",
	0x0b: "MMM01",
	0x0c: "MMM01+RAM",
	0x0d: "MMM01+RAM+BATTERY",
	0x0f: "MBC3+TIMER+BATTERY",
	0x10: "MBC3+TIMER+RAM+BATTERY",
	0x11: "MBC3",
	0x12: "MBC3+RAM",
	0x13: "MBC3+RAM+BATTERY",
	0x19: "MBC5",
	0x1a: "MBC5+RAM",
	0x1b: "MBC5+RAM+BATTERY",
	0x1c: "MBC5+RUMBLE",
	0x1d: "MBC5+RUMBLE+RAM",
	0x1e: "MBC5+RUMBLE+RAM+BATTERY",
	0x1f: "POCKET CAMERA",
	0xfd: "BANDAI TAMA5",
	0xfe: "HuC3",
	0xff: "HuC1+RAM+BATTERY",
}

// number of 16KB ROM banks by header code
var romBanks = map[uint8]int{
	0x00: 2,
	0x01: 4,
	0x02: 8,
	0x03: 16,
	0x04: 32,
	0x05: 64,
	0x06: 128,
	0x52: 72,
	0x53: 80,
	0x54: 96,
}

// description of cartridge RAM by header code
var ramSizes = map[uint8]string{
	0x00: "none",
	0x01: "2KB",
	0x02: "8KB",
	0x03: "32KB (4 banks of 8KB)",
	0x04: "128KB (16 banks of 8KB)",
}

// old licensee codes. 0x33 means the new licensee code should be used
var licensees = map[uint8]string{
	0x00: "none",
	0x01: "Nintendo",
	0x08: "Capcom",
	0x33: "see new licensee code",
	0x79: "Accolade",
	0xa4: "Konami",
}

// CheckNewLicensee is the old licensee code that indicates the new licensee
// code is in use.
const CheckNewLicensee = 0x33

// CartridgeTypeName returns the name of the cartridge type code.
func CartridgeTypeName(code uint8) string {
	if s, ok := cartridgeTypes[code]; ok {
		return s
	}
	return fmt.Sprintf("unknown (%#02x)", code)
}

// ROMBanks returns the number of 16KB ROM banks for the ROM size code. Returns
// false if the code is not recognised.
func ROMBanks(code uint8) (int, bool) {
	n, ok := romBanks[code]
	return n, ok
}

// ROMSizeName returns a description of the ROM size code.
func ROMSizeName(code uint8) string {
	if n, ok := romBanks[code]; ok {
		return fmt.Sprintf("%dKB (%d banks)", n*16, n)
	}
	return fmt.Sprintf("unknown (%#02x)", code)
}

// RAMSizeName returns a description of the RAM size code.
func RAMSizeName(code uint8) string {
	if s, ok := ramSizes[code]; ok {
		return s
	}
	return fmt.Sprintf("unknown (%#02x)", code)
}

// LicenseeName returns the name of the old licensee code.
func LicenseeName(code uint8) string {
	if s, ok := licensees[code]; ok {
		return s
	}
	return fmt.Sprintf("unknown (%#02x)", code)
}
