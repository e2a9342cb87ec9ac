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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a formatting
// pattern and placeholder values, exactly like fmt.Errorf(), but the pattern
// is remembered and can be used later to identify the error:
//
//	err := curated.Errorf("memory: write out of range (%#x, %d bytes)", addr, n)
//
//	if curated.Is(err, "memory: write out of range (%#x, %d bytes)") {
//		...
//	}
//
// Packages that return curated errors export their patterns as constants so
// that callers need not repeat the pattern text. For example:
//
//	if curated.Is(err, memory.OutOfRange) {
//		...
//	}
//
// The Has() function is similar to Is() but checks if the pattern occurs
// anywhere in the error chain. Chains are created by passing a curated error as
// one of the values to another call to Errorf():
//
//	e := curated.Errorf(memory.OutOfRange, addr, n)
//	f := curated.Errorf("console: %v", e)
//
//	curated.Has(f, memory.OutOfRange) == true
//	curated.Is(f, memory.OutOfRange) == false
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. We think of a curated error as an 'expected' error and any other error
// as 'unexpected'.
//
// The Error() implementation normalises the message so that adjacent
// duplicate parts are removed. Parts are separated by the sub-string ": ". So
// an error wrapped twice with the same prefix reads as:
//
//	cpu: unimplemented instruction (0xd3) at (0x0150)
//
// and not:
//
//	cpu: cpu: unimplemented instruction (0xd3) at (0x0150)
package curated
