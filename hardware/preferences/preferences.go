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

package preferences

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/clocks"
	"github.com/gopherdmg/gopherdmg/paths"
	"github.com/gopherdmg/gopherdmg/prefs"
)

// DefaultCeiling is the default maximum number of instructions executed in
// one call to the scheduler.
const DefaultCeiling = 1000000

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// clock frequency of the CPU in MHz
	Clock prefs.Float

	// maximum number of instructions executed in one call to the scheduler
	Ceiling prefs.Int

	// start execution with the register state left behind by the boot ROM
	PostBoot prefs.Bool

	// initialise registers to an unknown state on reset
	RandomState prefs.Bool
}

func (p *Preferences) String() string {
	return fmt.Sprintf("clock=%s ceiling=%s postboot=%s randstate=%s", &p.Clock, &p.Ceiling, &p.PostBoot, &p.RandomState)
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	return NewPreferencesFromFile(paths.ResourcePath("", prefs.DefaultPrefsFile))
}

// NewPreferencesFromFile is like NewPreferences() but values are loaded from
// the named file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Clock.SetHookPost(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return fmt.Errorf("preferences: clock frequency must be positive")
		}
		return nil
	})
	p.Ceiling.SetHookPost(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("preferences: step ceiling must be positive")
		}
		return nil
	})

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.clock", &p.Clock)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.ceiling", &p.Ceiling)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.postboot", &p.PostBoot)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to their default values.
func (p *Preferences) SetDefaults() {
	// hooks are not set when SetDefaults() is called from NewPreferences so
	// errors from the Set() functions cannot happen
	_ = p.Clock.Set(clocks.DMG)
	_ = p.Ceiling.Set(DefaultCeiling)
	_ = p.PostBoot.Set(true)
	_ = p.RandomState.Set(false)
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
