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

package serial_test

import (
	"sync"
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/serial"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestDrain(t *testing.T) {
	b := serial.NewBuffer()
	test.ExpectEquality(t, len(b.Drain()), 0)

	b.Append('H')
	b.Append('i')
	test.ExpectEquality(t, b.Len(), 2)
	test.ExpectEquality(t, string(b.Drain()), "Hi")

	// a drained buffer is empty
	test.ExpectEquality(t, b.Len(), 0)
	test.ExpectEquality(t, len(b.Drain()), 0)
}

func TestDrainedSliceIsCopy(t *testing.T) {
	b := serial.NewBuffer()
	b.Append(0x01)
	d := b.Drain()
	b.Append(0x02)
	test.ExpectEquality(t, d[0], uint8(0x01))
}

// a producer and a consumer running concurrently. every byte produced must
// be consumed exactly once and in order
func TestConcurrentDrain(t *testing.T) {
	const count = 10000

	b := serial.NewBuffer()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < count; i++ {
			b.Append(uint8(i))
		}
	}()

	received := make([]uint8, 0, count)
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	for finished := false; !finished; {
		select {
		case <-done:
			finished = true
		default:
		}
		received = append(received, b.Drain()...)
	}

	test.DemandEquality(t, len(received), count)
	for i, v := range received {
		if v != uint8(i) {
			t.Fatalf("byte %d out of order: %#02x", i, v)
		}
	}
}
