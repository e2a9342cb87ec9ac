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

// Package instructions defines the instruction set of the LR35902. Every
// opcode is described by a Definition giving its mnemonic, its length in
// bytes and its cost in M-cycles.
//
// The primary table is generated from the instructions.csv file in the
// generator directory. Run "go generate" in this package after changing the
// CSV file. Opcodes that are not used by the CPU have a nil entry in the
// table.
//
// The table of CB prefixed instructions is not generated. The second byte of
// those instructions is made up of three fields and the table is built from
// those fields when the package is initialised.
package instructions

//go:generate go run ./generator
