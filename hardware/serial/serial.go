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

// Package serial implements the output side of the serial port. Bytes
// transferred by the emulated program are collected in a Buffer and handed
// to the host when it asks for them.
//
// The Buffer is the only structure in the emulation that is safe to share
// between goroutines. The emulation appends to it and the host drains it,
// possibly from a different goroutine.
package serial

import "sync"

// Buffer collects bytes sent over the serial port.
type Buffer struct {
	crit sync.Mutex
	data []uint8
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
func NewBuffer() *Buffer {
	return &Buffer{
		data: make([]uint8, 0, 256),
	}
}

// Append a byte to the buffer.
func (b *Buffer) Append(v uint8) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.data = append(b.data, v)
}

// Drain returns the contents of the buffer and empties it. The returned slice
// belongs to the caller. Returns an empty, non-nil, slice if nothing has
// been sent since the last call.
func (b *Buffer) Drain() []uint8 {
	b.crit.Lock()
	defer b.crit.Unlock()
	d := make([]uint8, len(b.data))
	copy(d, b.data)
	b.data = b.data[:0]
	return d
}

// Len returns the number of bytes waiting to be drained.
func (b *Buffer) Len() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return len(b.data)
}
