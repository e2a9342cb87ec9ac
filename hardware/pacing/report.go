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
	"fmt"
	"strings"
	"time"
)

// Report describes one call to Scheduler.RunFor().
type Report struct {
	// number of instructions executed
	Steps int

	// number of M-cycles executed
	Cycles uint64

	// wall-clock time taken by the call
	Elapsed time.Duration

	// the CPU was halted or stopped when the call returned
	Halted  bool
	Stopped bool

	// the call ended because the step ceiling was reached
	CeilingHit bool
}

func (rep Report) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%d steps, %d cycles in %s", rep.Steps, rep.Cycles, rep.Elapsed))
	if rep.Halted {
		s.WriteString(" [halted]")
	}
	if rep.Stopped {
		s.WriteString(" [stopped]")
	}
	if rep.CeilingHit {
		s.WriteString(" [ceiling]")
	}
	return s.String()
}
