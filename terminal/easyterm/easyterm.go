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

// Package easyterm is a wrapper for "github.com/pkg/term". It puts the
// controlling terminal into cbreak mode so that single key presses can be
// read without waiting for a newline, and delivers those key presses on a
// channel.
package easyterm

import (
	"fmt"
	"sync"

	"github.com/pkg/term"
)

// DefaultDevice is the terminal device used by Open() when no device is
// specified.
const DefaultDevice = "/dev/tty"

// Terminal is a terminal device in cbreak mode.
type Terminal struct {
	t *term.Term

	// the keys channel is closed when the reading goroutine ends
	keys chan byte
	once sync.Once
}

// Open the terminal device and put it into cbreak mode. An empty string opens
// DefaultDevice.
func Open(device string) (*Terminal, error) {
	if device == "" {
		device = DefaultDevice
	}

	t, err := term.Open(device, term.CBreakMode)
	if err != nil {
		return nil, fmt.Errorf("easyterm: %w", err)
	}

	return &Terminal{
		t:    t,
		keys: make(chan byte, 16),
	}, nil
}

// Keys returns a channel on which every key press is delivered. The first
// call starts a goroutine that reads from the terminal until it is closed.
func (pt *Terminal) Keys() <-chan byte {
	pt.once.Do(func() {
		go func() {
			defer close(pt.keys)
			b := make([]byte, 1)
			for {
				n, err := pt.t.Read(b)
				if err != nil {
					return
				}
				if n == 1 {
					pt.keys <- b[0]
				}
			}
		}()
	})
	return pt.keys
}

// Close restores the terminal to the mode it was in before Open() and closes
// the device.
func (pt *Terminal) Close() error {
	if err := pt.t.Restore(); err != nil {
		_ = pt.t.Close()
		return fmt.Errorf("easyterm: %w", err)
	}
	if err := pt.t.Close(); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}
