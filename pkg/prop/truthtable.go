package prop

import (
	"fmt"
	"io"
	"strings"
)

// WriteTruthTable writes the truth table of f to w, with variable columns
// sorted alphabetically and the formula itself as the last column.
//
// Example output for ~(p&q76):
//
//	| p | q76 | ~(p&q76) |
//	|---|-----|----------|
//	| F | F   | T        |
//	| F | T   | T        |
//	| T | F   | T        |
//	| T | T   | F        |
func WriteTruthTable(w io.Writer, f Formula) error {
	variables := sortedVariables(f)
	headers := append(append([]string{}, variables...), f.String())

	var b strings.Builder
	for _, h := range headers {
		b.WriteString("| ")
		b.WriteString(h)
		b.WriteString(" ")
	}
	b.WriteString("|\n")
	for _, h := range headers {
		b.WriteString("|")
		b.WriteString(strings.Repeat("-", len(h)+2))
	}
	b.WriteString("|\n")
	for _, m := range AllModels(variables) {
		cells := make([]bool, 0, len(headers))
		for _, name := range variables {
			cells = append(cells, m[name])
		}
		cells = append(cells, Evaluate(f, m))
		for i, value := range cells {
			letter := "F"
			if value {
				letter = "T"
			}
			b.WriteString("| ")
			b.WriteString(letter)
			b.WriteString(strings.Repeat(" ", len(headers[i])-1))
			b.WriteString(" ")
		}
		b.WriteString("|\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatTruthTable returns the truth table of f as a string, in the format
// written by WriteTruthTable.
func FormatTruthTable(f Formula) string {
	var b strings.Builder
	if err := WriteTruthTable(&b, f); err != nil {
		panic(fmt.Sprintf("prop: formatting truth table: %v", err))
	}
	return b.String()
}
