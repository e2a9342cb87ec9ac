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

// Package prefs facilitates the storage of preferential values in the
// gopherdmg system. It is intended to be used for values that the user will
// want to persist between sessions, the clock frequency of the emulated CPU
// for example.
//
// Values are of type Bool, Int, Float or String. Values are added to a Disk
// instance with the Add() function, under a key name. The key name should
// take the form of a dotted path, grouping related values together:
//
//	hardware.clock
//	hardware.ceiling
//
// Disk instances are saved to a text file with the Save() function and
// restored with the Load() function. The file format is one value per line,
// in the form "key :: value". The file keeps the values of keys that the
// Disk instance does not know about, so more than one Disk can share the
// same file.
//
// Values can also be overridden from the command line. A prefs string has
// the form "key::value; key::value" and is pushed onto a stack with
// PushCommandLineStack(). A value for a key found in the top group of the
// stack is used in preference to the value on disk.
package prefs
