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

import (
	"bytes"
	"fmt"
	"strings"
)

// header field addresses
const (
	logoStart       = 0x0104
	titleStart      = 0x0134
	titleEnd        = 0x0144
	cgbFlag         = 0x0143
	newLicensee     = 0x0144
	sgbFlag         = 0x0146
	cartridgeType   = 0x0147
	romSize         = 0x0148
	ramSize         = 0x0149
	destination     = 0x014a
	oldLicensee     = 0x014b
	maskROMVersion  = 0x014c
	complementCheck = 0x014d
	globalChecksum  = 0x014e

	// the smallest amount of data that contains the complete header
	headerEnd = 0x0150
)

// the bitmap displayed by the boot ROM. the boot ROM refuses to run a
// cartridge if this data is not present
var logo = []uint8{
	0xce, 0xed, 0x66, 0x66, 0xcc, 0x0d, 0x00, 0x0b,
	0x03, 0x73, 0x00, 0x83, 0x00, 0x0c, 0x00, 0x0d,
	0x00, 0x08, 0x11, 0x1f, 0x88, 0x89, 0x00, 0x0e,
	0xdc, 0xcc, 0x6e, 0xe6, 0xdd, 0xdd, 0xd9, 0x99,
	0xbb, 0xbb, 0x67, 0x63, 0x6e, 0x0e, 0xec, 0xcc,
	0xdd, 0xdc, 0x99, 0x9f, 0xbb, 0xb9, 0x33, 0x3e,
}

// Logo returns a copy of the logo bitmap expected at address 0x0104.
func Logo() []uint8 {
	return append([]uint8{}, logo...)
}

// Header is the result of parsing the cartridge header. The values of the
// fields are undefined if CouldParse is false.
type Header struct {
	// the data was large enough to contain a header
	CouldParse bool

	HasLogo bool
	Title   string
	CGB     CGBSupport

	// two ASCII characters. only meaningful if OldLicensee is CheckNewLicensee
	NewLicensee string

	SGB            SGBSupport
	CartridgeType  uint8
	ROMSize        uint8
	RAMSize        uint8
	Japanese       bool
	OldLicensee    uint8
	MaskROMVersion uint8

	// the complement check byte and whether it matches the computed value
	Complement       uint8
	ComplementPassed bool

	// the global checksum stored in the header and the value computed from
	// the data. the boot ROM does not verify the global checksum
	Checksum         uint16
	ComputedChecksum uint16
}

// Parse the header of the cartridge data. Data shorter than 0x150 bytes
// results in a Header with CouldParse set to false.
func Parse(data []uint8) Header {
	var hdr Header

	if len(data) < headerEnd {
		return hdr
	}
	hdr.CouldParse = true

	hdr.HasLogo = bytes.Equal(data[logoStart:logoStart+len(logo)], logo)

	// the CGB flag shares its byte with the last character of the title
	title := data[titleStart:titleEnd]
	hdr.CGB = CGBSupport(data[cgbFlag])
	if hdr.CGB == CGBCompatible || hdr.CGB == CGBOnly {
		title = title[:len(title)-1]
	}
	hdr.Title = strings.TrimRight(string(title), "\x00")

	hdr.NewLicensee = string(data[newLicensee : newLicensee+2])
	hdr.SGB = SGBSupport(data[sgbFlag])
	hdr.CartridgeType = data[cartridgeType]
	hdr.ROMSize = data[romSize]
	hdr.RAMSize = data[ramSize]
	hdr.Japanese = data[destination] == 0x00
	hdr.OldLicensee = data[oldLicensee]
	hdr.MaskROMVersion = data[maskROMVersion]
	hdr.Complement = data[complementCheck]
	hdr.ComplementPassed = HeaderComplement(data) == 0x00
	hdr.Checksum = uint16(data[globalChecksum])<<8 | uint16(data[globalChecksum+1])
	hdr.ComputedChecksum = GlobalChecksum(data)

	return hdr
}

// HeaderComplement returns the low byte of the sum of the bytes from 0x134 to
// 0x14d inclusive, plus 25. The result is zero for a valid header. The data
// must be at least 0x150 bytes long.
func HeaderComplement(data []uint8) uint8 {
	var sum uint8
	for _, v := range data[titleStart : complementCheck+1] {
		sum += v
	}
	return sum + 25
}

// GlobalChecksum returns the sum of every byte in the data except for the
// two bytes of the global checksum itself.
func GlobalChecksum(data []uint8) uint16 {
	var sum uint16
	for i, v := range data {
		if i == globalChecksum || i == globalChecksum+1 {
			continue
		}
		sum += uint16(v)
	}
	return sum
}

// Valid returns true if the header could be parsed, the logo is intact and
// the complement check passes.
func (hdr Header) Valid() bool {
	return hdr.CouldParse && hdr.HasLogo && hdr.ComplementPassed
}

// ChecksumPassed returns true if the global checksum matches the data.
func (hdr Header) ChecksumPassed() bool {
	return hdr.Checksum == hdr.ComputedChecksum
}

func (hdr Header) String() string {
	if !hdr.CouldParse {
		return "no header"
	}
	return fmt.Sprintf("%s [%s] valid=%v", hdr.Title, CartridgeTypeName(hdr.CartridgeType), hdr.Valid())
}

// Report writes a multi-line description of every header field.
func (hdr Header) Report() string {
	if !hdr.CouldParse {
		return "no header: data too short\n"
	}

	licensee := LicenseeName(hdr.OldLicensee)
	if hdr.OldLicensee == CheckNewLicensee {
		licensee = fmt.Sprintf("new code %q", hdr.NewLicensee)
	}

	destination := "non-Japanese"
	if hdr.Japanese {
		destination = "Japanese"
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("Title:             %s\n", hdr.Title))
	s.WriteString(fmt.Sprintf("Logo:              %v\n", hdr.HasLogo))
	s.WriteString(fmt.Sprintf("CGB:               %s\n", hdr.CGB))
	s.WriteString(fmt.Sprintf("SGB:               %s\n", hdr.SGB))
	s.WriteString(fmt.Sprintf("Cartridge type:    %s\n", CartridgeTypeName(hdr.CartridgeType)))
	s.WriteString(fmt.Sprintf("ROM size:          %s\n", ROMSizeName(hdr.ROMSize)))
	s.WriteString(fmt.Sprintf("RAM size:          %s\n", RAMSizeName(hdr.RAMSize)))
	s.WriteString(fmt.Sprintf("Destination:       %s\n", destination))
	s.WriteString(fmt.Sprintf("Licensee:          %s\n", licensee))
	s.WriteString(fmt.Sprintf("Mask ROM version:  %d\n", hdr.MaskROMVersion))
	s.WriteString(fmt.Sprintf("Header complement: %02x (passed=%v)\n", hdr.Complement, hdr.ComplementPassed))
	s.WriteString(fmt.Sprintf("Global checksum:   %04x (computed %04x)\n", hdr.Checksum, hdr.ComputedChecksum))
	s.WriteString(fmt.Sprintf("Valid:             %v\n", hdr.Valid()))
	return s.String()
}
