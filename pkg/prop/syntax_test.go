package prop

import (
	"errors"
	"reflect"
	"testing"
)

func TestIsVariable(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"p", true},
		{"q76", true},
		{"z", true},
		{"x1", true},
		{"a", false},
		{"P", false},
		{"p7a", false},
		{"", false},
		{"7p", false},
	}
	for _, tt := range tests {
		if got := IsVariable(tt.name); got != tt.want {
			t.Errorf("IsVariable(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	tests := []string{
		"p",
		"q76",
		"T",
		"F",
		"~p",
		"~~~x32",
		"(p&q)",
		"(p|q)",
		"(p->q)",
		"(p<->q)",
		"(p+q)",
		"(p-&q)",
		"(p-|q)",
		"((p->q76)->(~q76->~p))",
		"~(T-&~(x|F))",
	}
	for _, s := range tests {
		f, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", s, err)
		}
		if got := f.String(); got != s {
			t.Errorf("Parse(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []string{
		"",
		"~",
		"(p",
		"(p&q",
		"p&q",
		"(p&)",
		"(&q)",
		"(p q)",
		"pq",
		"(p&q))",
		"A",
		"(p-q)",
	}
	for _, s := range tests {
		f, err := Parse(s)
		if err == nil {
			t.Errorf("Parse(%q) = %v, want error", s, f)
			continue
		}
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("Parse(%q) error %v does not wrap ErrMalformed", s, err)
		}
	}
}

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		s, formula, rest string
	}{
		{"~p|q", "~p", "|q"},
		{"x12&y", "x12", "&y"},
		{"(p&q))", "(p&q)", ")"},
		{"Tq", "T", "q"},
	}
	for _, tt := range tests {
		f, rest, err := ParsePrefix(tt.s)
		if err != nil {
			t.Fatalf("ParsePrefix(%q) returned error: %v", tt.s, err)
		}
		if f.String() != tt.formula || rest != tt.rest {
			t.Errorf("ParsePrefix(%q) = (%q, %q), want (%q, %q)",
				tt.s, f, rest, tt.formula, tt.rest)
		}
	}
}

func TestEqual(t *testing.T) {
	f1 := MustParse("((p->q76)&~p)")
	f2 := &Binary{
		Op:    "&",
		Left:  &Binary{Op: "->", Left: &Var{Name: "p"}, Right: &Var{Name: "q76"}},
		Right: &Unary{Operand: &Var{Name: "p"}},
	}
	if !f1.Equal(f2) {
		t.Errorf("%s and %s not equal, want equal", f1, f2)
	}
	if f1.Equal(MustParse("((p->q76)&~q76)")) {
		t.Errorf("structurally different formulas compare equal")
	}
	if f1.Equal(nil) {
		t.Errorf("formula compares equal to nil")
	}
}

func TestVariablesAndOperators(t *testing.T) {
	f := MustParse("((p->q76)&~(p|T))")
	wantVars := map[string]bool{"p": true, "q76": true}
	if got := Variables(f); !reflect.DeepEqual(got, wantVars) {
		t.Errorf("Variables(%s) = %v, want %v", f, got, wantVars)
	}
	wantOps := map[string]bool{"->": true, "&": true, "~": true, "|": true, "T": true}
	if got := Operators(f); !reflect.DeepEqual(got, wantOps) {
		t.Errorf("Operators(%s) = %v, want %v", f, got, wantOps)
	}
}

func TestSubstituteVariables(t *testing.T) {
	f := MustParse("((p->p)|z)")
	got := SubstituteVariables(f, map[string]Formula{"p": MustParse("(q&r)")})
	want := "(((q&r)->(q&r))|z)"
	if got.String() != want {
		t.Errorf("SubstituteVariables = %s, want %s", got, want)
	}
	if f.String() != "((p->p)|z)" {
		t.Errorf("input formula mutated to %s", f)
	}
	if got := SubstituteVariables(f, nil); !got.Equal(f) {
		t.Errorf("empty substitution = %s, want %s", got, f)
	}
}

func TestSubstituteVariablesSimultaneous(t *testing.T) {
	f := MustParse("(p&q)")
	got := SubstituteVariables(f, map[string]Formula{
		"p": MustParse("q"),
		"q": MustParse("p"),
	})
	if want := "(q&p)"; got.String() != want {
		t.Errorf("SubstituteVariables = %s, want %s", got, want)
	}
}

func TestSubstituteOperators(t *testing.T) {
	f := MustParse("((x&y)&~z)")
	got := SubstituteOperators(f, map[string]Formula{"&": MustParse("~(~p|~q)")})
	want := "~(~~(~x|~y)|~~z)"
	if got.String() != want {
		t.Errorf("SubstituteOperators = %s, want %s", got, want)
	}

	got = SubstituteOperators(MustParse("(T-&x)"), map[string]Formula{
		"-&": MustParse("~(p&q)"),
		"T":  MustParse("(p|~p)"),
	})
	want = "~((p|~p)&x)"
	if got.String() != want {
		t.Errorf("SubstituteOperators = %s, want %s", got, want)
	}
}
