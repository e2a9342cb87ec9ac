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

// Package instance defines those parts of the emulation that might change
// between different instances of the emulated hardware. For example, the
// hardware preferences and the random number generator.
package instance

import (
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/random"
)

// Instance represents those parts of the emulation that are not the emulated
// hardware itself but are specific to the particular instance of the
// hardware.
type Instance struct {
	Random *random.Random
	Prefs  *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The clock argument is the source of time for the random number generator.
// The prefs argument can be nil, in which case preferences are loaded from the
// default preferences file.
func NewInstance(clock random.Clock, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Random: random.NewRandom(clock),
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}
	ins.Prefs = prefs

	return ins, nil
}

// Normalise ensures the instance behaves predictably. Random numbers are
// seeded with zero and registers are not randomised on reset.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}
