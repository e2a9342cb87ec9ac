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

package memory

import (
	"fmt"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/hardware/serial"
)

// OutOfRange is the pattern for errors returned when a block of data does not
// fit in the address space.
const OutOfRange = "memory: write out of range (%#x, %d bytes)"

// Size of the address space.
const Size = addresses.MemoryTop

// Memory is the 64KB address space of the console.
type Memory struct {
	data   [Size]uint8
	serial *serial.Buffer
}

// NewMemory is the preferred method of initialisation for the Memory type.
// Bytes transferred over the serial port are appended to the serial buffer.
func NewMemory(serial *serial.Buffer) *Memory {
	return &Memory{
		serial: serial,
	}
}

func (mem *Memory) String() string {
	return fmt.Sprintf("SB=%02x SC=%02x", mem.data[addresses.SB], mem.data[addresses.SC])
}

// Reset zeroes every address. The serial buffer is untouched.
func (mem *Memory) Reset() {
	clear(mem.data[:])
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	if address == addresses.SC && data&addresses.SerialTransferStart == addresses.SerialTransferStart {
		if mem.serial != nil {
			mem.serial.Append(mem.data[addresses.SB])
		}
		data &^= addresses.SerialTransferStart
	}
	mem.data[address] = data
}

// Peek returns the value at the address without side effects.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.data[address]
}

// Poke sets the value at the address without side effects.
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.data[address] = data
}

// Load copies the data into memory starting at the address. Returns an
// OutOfRange error if any part of the data would fall outside of the address
// space, in which case nothing is written. Loading bypasses the serial
// transfer side effect.
func (mem *Memory) Load(start int, data []uint8) error {
	if start < 0 || start+len(data) > Size {
		return curated.Errorf(OutOfRange, start, len(data))
	}
	copy(mem.data[start:], data)
	return nil
}

// Dump formats the memory in the range [from, to) as rows of sixteen bytes,
// each row prefixed with the address and the name of the memory area.
func (mem *Memory) Dump(from uint16, to int) string {
	s := strings.Builder{}
	for a := int(from) &^ 0x0f; a < to && a < Size; a += 16 {
		s.WriteString(fmt.Sprintf("%-4s %04x:", addresses.Area(uint16(a)), a))
		for i := 0; i < 16; i++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[a+i]))
		}
		s.WriteString("\n")
	}
	return s.String()
}
