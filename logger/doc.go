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

// Package logger is the central log repository for gopherdmg. There is a
// single central logger accessed through the package level functions, but
// additional loggers can be created with NewLogger() for local use, tests
// for example.
//
// Log entries are made up of a tag and a detail. Consecutive entries with the
// same tag and detail are collapsed into a single entry with a repeat count.
//
// Whether an entry is actually made is decided by the Permission argument.
// The Allow value can be used when the entry should always be made.
package logger
