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

package performance_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/performance"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestCalcMHz(t *testing.T) {
	mhz, accuracy := performance.CalcMHz(1048576, 1.0, 4.194304)
	test.ExpectApproximate(t, mhz, 4.194304, 0.000001)
	test.ExpectApproximate(t, accuracy, 100.0, 0.0001)

	mhz, _ = performance.CalcMHz(100, 0, 4.194304)
	test.ExpectEquality(t, mhz, 0.0)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfile("gpu")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	con, err := hardware.NewConsole(prefs)
	test.DemandSuccess(t, err)

	// a short program that halts
	test.DemandSuccess(t, con.SetMemoryBlock(0x0100, []uint8{0x00, 0x00, 0x76}))
	con.ResetPostBoot()

	w, err := test.NewCappedWriter(256)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, performance.Check(w, performance.ProfileNone, con, "1s"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "(3 cycles in"))
	test.ExpectSuccess(t, con.IsHalted())

	test.ExpectFailure(t, performance.Check(w, performance.ProfileNone, con, "soon"))
}
