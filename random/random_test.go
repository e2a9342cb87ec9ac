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

package random_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/random"
	"github.com/gopherdmg/gopherdmg/test"
)

type clock struct {
	cycles uint64
}

func (c *clock) CycleCount() uint64 {
	return c.cycles
}

func TestRandom(t *testing.T) {
	a := random.NewRandom(&clock{cycles: 1000})
	b := random.NewRandom(&clock{cycles: 1000})
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}

	fa := make([]uint8, 16)
	fb := make([]uint8, 16)
	a.Fill(fa)
	b.Fill(fb)
	test.ExpectEquality(t, string(fa), string(fb))
}

func TestNilClock(t *testing.T) {
	a := random.NewRandom(nil)
	v := a.Intn(10)
	test.ExpectSuccess(t, v >= 0 && v < 10)
}
