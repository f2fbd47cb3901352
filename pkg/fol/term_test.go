package fol

import (
	"reflect"
	"testing"
)

func TestNamePredicates(t *testing.T) {
	tests := []struct {
		name                         string
		constant, variable, function bool
	}{
		{"_", true, false, false},
		{"0", true, false, false},
		{"c1", true, false, false},
		{"d", true, false, false},
		{"x", false, true, false},
		{"y12", false, true, false},
		{"u", false, true, false},
		{"f", false, false, true},
		{"plus", false, false, true},
		{"g3", false, false, true},
		{"F", false, false, false},
		{"", false, false, false},
		{"x-y", false, false, false},
	}
	for _, tt := range tests {
		if got := IsConstant(tt.name); got != tt.constant {
			t.Errorf("IsConstant(%q) = %v, want %v", tt.name, got, tt.constant)
		}
		if got := IsVariable(tt.name); got != tt.variable {
			t.Errorf("IsVariable(%q) = %v, want %v", tt.name, got, tt.variable)
		}
		if got := IsFunction(tt.name); got != tt.function {
			t.Errorf("IsFunction(%q) = %v, want %v", tt.name, got, tt.function)
		}
	}
}

func TestParseTermRoundTrip(t *testing.T) {
	tests := []string{
		"x",
		"c",
		"_",
		"0",
		"f(x)",
		"plus(x,y)",
		"plus(plus(x,y),c)",
		"s(s(s(0)))",
		"f(g(x),h(y,_))",
	}
	for _, s := range tests {
		term := ParseTerm(s)
		if got := term.String(); got != s {
			t.Errorf("ParseTerm(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestParseTermPrefix(t *testing.T) {
	tests := []struct {
		s, term, rest string
	}{
		{"plus(x,y)=0", "plus(x,y)", "=0"},
		{"x=y", "x", "=y"},
		{"_,y)", "_", ",y)"},
	}
	for _, tt := range tests {
		term, rest := ParseTermPrefix(tt.s)
		if term.String() != tt.term || rest != tt.rest {
			t.Errorf("ParseTermPrefix(%q) = (%q, %q), want (%q, %q)",
				tt.s, term, rest, tt.term, tt.rest)
		}
	}
}

func TestTermEqual(t *testing.T) {
	t1 := ParseTerm("plus(x,c)")
	t2 := &Func{Name: "plus", Args: []Term{&Var{Name: "x"}, &Const{Name: "c"}}}
	if !t1.Equal(t2) {
		t.Errorf("%s and %s not equal, want equal", t1, t2)
	}
	if t1.Equal(ParseTerm("plus(c,x)")) {
		t.Errorf("terms with swapped arguments compare equal")
	}
}

func TestTermAnalysis(t *testing.T) {
	term := ParseTerm("plus(times(x,c),f(y,0))")
	wantVars := map[string]bool{"x": true, "y": true}
	if got := TermVariables(term); !reflect.DeepEqual(got, wantVars) {
		t.Errorf("TermVariables = %v, want %v", got, wantVars)
	}
	wantConsts := map[string]bool{"c": true, "0": true}
	if got := TermConstants(term); !reflect.DeepEqual(got, wantConsts) {
		t.Errorf("TermConstants = %v, want %v", got, wantConsts)
	}
	wantFuncs := map[NameArity]bool{
		{Name: "plus", Arity: 2}:  true,
		{Name: "times", Arity: 2}: true,
		{Name: "f", Arity: 2}:     true,
	}
	if got := TermFunctions(term); !reflect.DeepEqual(got, wantFuncs) {
		t.Errorf("TermFunctions = %v, want %v", got, wantFuncs)
	}
}

func TestSubstituteTerm(t *testing.T) {
	term := ParseTerm("f(x,c)")
	got, err := SubstituteTerm(term, map[string]Term{
		"c": ParseTerm("plus(d,x)"),
		"x": ParseTerm("c"),
	}, map[string]bool{"y": true})
	if err != nil {
		t.Fatalf("SubstituteTerm returned error: %v", err)
	}
	if want := "f(c,plus(d,x))"; got.String() != want {
		t.Errorf("SubstituteTerm = %s, want %s", got, want)
	}
	if term.String() != "f(x,c)" {
		t.Errorf("input term mutated to %s", term)
	}
}

func TestSubstituteTermForbidden(t *testing.T) {
	term := ParseTerm("f(x,c)")
	_, err := SubstituteTerm(term, map[string]Term{
		"c": ParseTerm("plus(d,y)"),
	}, map[string]bool{"y": true})
	fve, ok := err.(ForbiddenVariableError)
	if !ok {
		t.Fatalf("got error %v, want ForbiddenVariableError", err)
	}
	if fve.VariableName != "y" {
		t.Errorf("offending variable = %q, want %q", fve.VariableName, "y")
	}
}

func TestSubstituteTermEmptyMap(t *testing.T) {
	term := ParseTerm("plus(x,y)")
	got, err := SubstituteTerm(term, nil, nil)
	if err != nil {
		t.Fatalf("SubstituteTerm returned error: %v", err)
	}
	if !got.Equal(term) {
		t.Errorf("SubstituteTerm with no substitutions = %s, want %s", got, term)
	}
}
