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

// Package memory implements the flat 64KB address space of the console. The
// Memory type satisfies the cpubus.Memory interface, which is how the CPU
// sees it.
//
// There is no banking and no memory mapped hardware other than the serial
// transfer register. A write to SC with the transfer bit set appends the
// current value of SB to the serial buffer and the value is stored with the
// transfer bit cleared, indicating that the transfer has completed.
//
// The Peek() and Poke() functions access memory without side effects and are
// intended for debugging and testing. Load() copies a block of data into
// memory and fails without writing anything if the block does not fit.
package memory
