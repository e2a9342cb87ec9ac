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

package pacing

import (
	"time"
)

// this is a rough attempt at frame rate limiting. probably only any good if
// base performance of the machine is well above the required rate.

// Limiter will trigger every frame at the requested frames per second.
type Limiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	tick chan bool
	end  chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The End() function should be called when the Limiter is no longer needed.
func NewLimiter(framesPerSecond int) *Limiter {
	lim := &Limiter{
		tick: make(chan bool),
		end:  make(chan bool),
	}
	lim.SetLimit(framesPerSecond)

	// run ticker concurrently
	go func() {
		adjustedSecondPerFrame := lim.secondsPerFrame
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.end:
				return
			}

			time.Sleep(adjustedSecondPerFrame)

			// correct the next sleep period by the amount the previous frame
			// overran
			nt := time.Now()
			adjustedSecondPerFrame -= nt.Sub(t) - lim.secondsPerFrame
			if adjustedSecondPerFrame < 0 {
				adjustedSecondPerFrame = 0
			}
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the limit at which the Limiter waits. Values of less than
// one are treated as one. Should not be called once the Limiter is running.
func (lim *Limiter) SetLimit(framesPerSecond int) {
	if framesPerSecond < 1 {
		framesPerSecond = 1
	}
	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Second / time.Duration(framesPerSecond)
}

// FrameDuration returns the length of one frame in seconds. Suitable for
// passing to Scheduler.RunFor().
func (lim *Limiter) FrameDuration() float32 {
	return float32(1.0 / float64(lim.framesPerSecond))
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// End stops the Limiter. Wait() must not be called after End().
func (lim *Limiter) End() {
	close(lim.end)
}
