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

package tracer

import (
	"fmt"
	"io"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/execution"
)

// Tracer writes instruction results for steps in the window [From, From+Count).
type Tracer struct {
	output io.Writer

	// first step to write. steps are counted from zero
	From int

	// number of steps to write. a value of zero or less means that every step
	// from From onwards is written
	Count int

	// the number of steps seen so far
	steps int
}

// NewTracer is the preferred method of initialisation for the Tracer type.
func NewTracer(output io.Writer, from int, count int) *Tracer {
	return &Tracer{
		output: output,
		From:   from,
		Count:  count,
	}
}

// Steps returns the number of steps seen by the Tracer.
func (trc *Tracer) Steps() int {
	return trc.steps
}

// Done returns true if the window has passed. It is always false if Count is
// zero or less.
func (trc *Tracer) Done() bool {
	return trc.Count > 0 && trc.steps >= trc.From+trc.Count
}

// Reset the step counter.
func (trc *Tracer) Reset() {
	trc.steps = 0
}

// Step implements the function signature of the pacing.Scheduler OnStep
// hook.
func (trc *Tracer) Step(r execution.Result) error {
	n := trc.steps
	trc.steps++

	if n < trc.From {
		return nil
	}
	if trc.Count > 0 && n >= trc.From+trc.Count {
		return nil
	}

	_, err := fmt.Fprintf(trc.output, "%8d  %s\n", n, r)
	if err != nil {
		return fmt.Errorf("tracer: %w", err)
	}

	return nil
}
