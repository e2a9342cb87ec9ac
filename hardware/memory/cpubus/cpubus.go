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

// Package cpubus defines the view of memory that the CPU has.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Every address in the 16 bit address space is backed by memory so
// neither operation can fail.
//
// Writes may have side effects, the serial transfer register for example.
// Reads never do.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}
