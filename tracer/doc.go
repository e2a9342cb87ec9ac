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

// Package tracer writes the result of every instruction inside a window of
// steps to an io.Writer. It is attached to the scheduler through the OnStep
// hook so the CPU is unaware of it:
//
//	trc := tracer.NewTracer(os.Stderr, 1000, 50)
//	con.Scheduler.OnStep = trc.Step
//
// The example writes the results of the fifty instructions that follow the
// first thousand.
package tracer
