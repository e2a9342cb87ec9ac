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

package instance_test

import (
	"path/filepath"
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/instance"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/test"
)

type clock uint64

func (c clock) CycleCount() uint64 {
	return uint64(c)
}

func TestNormalise(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	ins, err := instance.NewInstance(clock(100), p)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ins.Prefs == p)
	test.ExpectFailure(t, ins.Random.ZeroSeed)

	test.ExpectSuccess(t, p.RandomState.Set(true))
	test.ExpectSuccess(t, p.Ceiling.Set(10))

	ins.Normalise()
	test.ExpectSuccess(t, ins.Random.ZeroSeed)
	test.ExpectFailure(t, p.RandomState.Get().(bool))
	test.ExpectEquality(t, p.Ceiling.Get().(int), preferences.DefaultCeiling)

	// with a zero seed the random values depend only on the clock
	a := make([]uint8, 8)
	b := make([]uint8, 8)
	ins.Random.Fill(a)
	other, err := instance.NewInstance(clock(100), p)
	test.DemandSuccess(t, err)
	other.Normalise()
	other.Random.Fill(b)
	test.ExpectEquality(t, string(a), string(b))
}
