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

// Package hardware is the base package for the DMG emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Console type is the root of the emulation and contains external
// references to all the console sub-components. It is the only type the host
// needs to load a program, run it, and collect the program's output:
//
//	con, _ := hardware.NewConsole(nil)
//	_ = con.SetMemoryBlock(0, rom)
//	con.Boot()
//
//	for !con.IsHalted() && !con.IsStopped() {
//		_, err := con.RunFor(1.0 / 60.0)
//		if err != nil {
//			return err
//		}
//		os.Stdout.Write(con.DrainSerialOutput())
//	}
//
// Only the CPU, the memory and the serial transmit side effect are emulated.
// There is no display, audio, input or interrupt dispatch.
package hardware
