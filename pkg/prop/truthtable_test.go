package prop

import (
	"strings"
	"testing"
)

func TestFormatTruthTable(t *testing.T) {
	got := FormatTruthTable(MustParse("~(p&q76)"))
	want := strings.Join([]string{
		"| p | q76 | ~(p&q76) |",
		"|---|-----|----------|",
		"| F | F   | T        |",
		"| F | T   | T        |",
		"| T | F   | T        |",
		"| T | T   | F        |",
		"",
	}, "\n")
	if got != want {
		t.Errorf("FormatTruthTable:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatTruthTableNoVariables(t *testing.T) {
	got := FormatTruthTable(MustParse("~T"))
	want := strings.Join([]string{
		"| ~T |",
		"|----|",
		"| F  |",
		"",
	}, "\n")
	if got != want {
		t.Errorf("FormatTruthTable:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteTruthTable(t *testing.T) {
	var b strings.Builder
	if err := WriteTruthTable(&b, MustParse("p")); err != nil {
		t.Fatalf("WriteTruthTable returned error: %v", err)
	}
	want := "| p | p |\n|---|---|\n| F | F |\n| T | T |\n"
	if b.String() != want {
		t.Errorf("WriteTruthTable = %q, want %q", b.String(), want)
	}
}
