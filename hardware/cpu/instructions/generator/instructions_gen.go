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

// The generator program creates the table.go file in the instructions package
// from the instructions.csv file. It is run by "go generate" from the
// instructions directory.
package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
)

const definitionsCSVFile = "./generator/instructions.csv"
const generatedGoFile = "./table.go"

const leadingBoilerPlate = "// generated code - do not change\n\n" +
	"package instructions\n\n" +
	"// GetDefinitions returns the table of instruction definitions for the LR35902\n" +
	"func GetDefinitions() ([]*Definition, error) {\n" +
	"return []*Definition{"

const trailingBoilerPlate = "}, nil\n}"

func parseCSV() (string, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return "", fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true

	// the effect field is optional (defaulting to READ)
	csvr.FieldsPerRecord = -1

	deftable := make(map[uint8]instructions.Definition)

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		if !(len(rec) == 5 || len(rec) == 6) {
			return "", fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := 0; i < len(rec); i++ {
			rec[i] = strings.TrimSpace(rec[i])
		}

		newDef := instructions.Definition{}

		// field: opcode
		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		newDef.OpCode = uint8(n)

		if _, ok := deftable[newDef.OpCode]; ok {
			return "", fmt.Errorf("duplicate opcode (%#02x) [line %d]", newDef.OpCode, line)
		}

		// field: opcode mnemonic
		newDef.Mnemonic = rec[1]

		// field: number of bytes
		newDef.Bytes, err = strconv.Atoi(rec[2])
		if err != nil || newDef.Bytes < 1 || newDef.Bytes > 3 {
			return "", fmt.Errorf("invalid byte count for %#02x (%s) [line %d]", newDef.OpCode, rec[2], line)
		}

		// field: cycle count
		newDef.Cycles, err = strconv.Atoi(rec[3])
		if err != nil {
			return "", fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", newDef.OpCode, rec[3], line)
		}

		// field: taken cycle count
		if rec[4] != "-" {
			newDef.TakenCycles, err = strconv.Atoi(rec[4])
			if err != nil || newDef.TakenCycles <= newDef.Cycles {
				return "", fmt.Errorf("invalid taken cycle count for %#02x (%s) [line %d]", newDef.OpCode, rec[4], line)
			}
		}

		// field: effect category
		if len(rec) == 5 {
			newDef.Effect = instructions.Read
		} else {
			switch rec[5] {
			default:
				return "", fmt.Errorf("unknown category for %#02x (%s) [line %d]", newDef.OpCode, rec[5], line)
			case "READ":
				newDef.Effect = instructions.Read
			case "WRITE":
				newDef.Effect = instructions.Write
			case "RMW":
				newDef.Effect = instructions.RMW
			case "FLOW":
				newDef.Effect = instructions.Flow
			case "SUBROUTINE":
				newDef.Effect = instructions.Subroutine
			case "INTERRUPT":
				newDef.Effect = instructions.Interrupt
			case "STACK":
				newDef.Effect = instructions.Stack
			case "CONTROL":
				newDef.Effect = instructions.Control
			}
		}

		deftable[newDef.OpCode] = newDef
	}

	printSummary(deftable)

	// output the definitions map as an array
	s := strings.Builder{}
	for opcode := 0; opcode < 256; opcode++ {
		def, found := deftable[uint8(opcode)]
		if found {
			s.WriteString(fmt.Sprintf("\n&%#v,", def))
		} else {
			s.WriteString("\nnil,")
		}
	}

	return s.String(), nil
}

func printSummary(deftable map[uint8]instructions.Definition) {
	missing := make([]int, 0, 256)

	for i := 0; i <= 255; i++ {
		if _, ok := deftable[uint8(i)]; !ok {
			missing = append(missing, i)
		}
	}

	if len(missing) == 0 {
		return
	}

	fmt.Println("LR35902 unused opcodes")
	fmt.Println("----------------------")

	c := 0
	for i := range missing {
		fmt.Printf("%#02x\t", missing[i])
		c++
		if c > 4 {
			c = 0
			fmt.Printf("\n")
		}
	}
	if c != 0 {
		fmt.Printf("\n")
	}

	fmt.Printf("%d unused, %d defined\n", len(missing), 256-len(missing))
}

func main() {
	output, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	// we'll be putting the contents of deftable into the instructions package
	// so we need to remove the explicit references to that package
	output = strings.ReplaceAll(output, "instructions.", "")

	output = fmt.Sprintf("%s%s%s", leadingBoilerPlate, output, trailingBoilerPlate)

	formattedOutput, err := format.Source([]byte(output))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	err = os.WriteFile(generatedGoFile, formattedOutput, 0o644)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
