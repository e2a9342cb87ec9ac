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

// Package cartridge inspects the header found at address 0x0100 of every
// cartridge ROM. The header is not needed by the emulation but it is useful to
// the host for deciding whether a file is a valid ROM before loading it.
//
//	hdr := cartridge.Parse(data)
//	if !hdr.Valid() {
//		...
//	}
//
// A header is valid if the logo bitmap is intact and the header complement
// check passes. These are the same checks made by the boot ROM. The global
// checksum is computed and reported but it is not part of validity.
package cartridge
