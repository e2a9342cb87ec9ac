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

// Package disassembly creates a static disassembly of LR35902 machine code.
//
// Disassembly is linear. Every byte in the requested range is decoded as the
// start of an instruction, beginning at the first address and advancing by
// the length of each decoded instruction. Bytes that do not decode to an
// instruction, including instructions that would run past the end of the
// data, are recorded as data entries.
//
// After the linear pass, the targets of every absolute jump, relative jump,
// call and restart are collected and the entries at those addresses are
// "blessed". A blessed entry is more likely to be a real instruction than an
// entry that is only reached by falling through from the previous entry.
package disassembly
