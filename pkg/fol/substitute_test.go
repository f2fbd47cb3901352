package fol

import "testing"

func TestSubstitute(t *testing.T) {
	tests := []struct {
		formula       string
		substitutions map[string]Term
		want          string
	}{
		{
			"R(x,c)",
			map[string]Term{"c": ParseTerm("plus(d,x)"), "x": ParseTerm("c")},
			"R(c,plus(d,x))",
		},
		{
			"Ay[x=c]",
			map[string]Term{"c": ParseTerm("plus(d,x)")},
			"Ay[x=plus(d,x)]",
		},
		{
			"Ay[x=c]",
			map[string]Term{"x": ParseTerm("0")},
			"Ay[0=c]",
		},
		{
			"Ax[R(x,y)]",
			map[string]Term{"x": ParseTerm("c")},
			"Ax[R(x,y)]",
		},
		{
			"(R(x)->Ey[Q(x,y)])",
			map[string]Term{"x": ParseTerm("f(c)")},
			"(R(f(c))->Ey[Q(f(c),y)])",
		},
	}
	for _, tt := range tests {
		got, err := Substitute(Parse(tt.formula), tt.substitutions, nil)
		if err != nil {
			t.Fatalf("Substitute(%s) returned error: %v", tt.formula, err)
		}
		if got.String() != tt.want {
			t.Errorf("Substitute(%s) = %s, want %s", tt.formula, got, tt.want)
		}
	}
}

func TestSubstituteCapture(t *testing.T) {
	f := Parse("Ay[x=c]")
	_, err := Substitute(f, map[string]Term{"c": ParseTerm("plus(d,y)")}, nil)
	fve, ok := err.(ForbiddenVariableError)
	if !ok {
		t.Fatalf("got error %v, want ForbiddenVariableError", err)
	}
	if fve.VariableName != "y" {
		t.Errorf("offending variable = %q, want %q", fve.VariableName, "y")
	}
}

func TestSubstituteForbidden(t *testing.T) {
	f := Parse("R(c)")
	_, err := Substitute(f, map[string]Term{"c": ParseTerm("f(u)")},
		map[string]bool{"u": true})
	fve, ok := err.(ForbiddenVariableError)
	if !ok {
		t.Fatalf("got error %v, want ForbiddenVariableError", err)
	}
	if fve.VariableName != "u" {
		t.Errorf("offending variable = %q, want %q", fve.VariableName, "u")
	}
}

func TestSubstituteOutsideQuantifierScope(t *testing.T) {
	// The bound variable only blocks substitution inside its scope.
	f := Parse("(Ay[R(y)]&x=c)")
	got, err := Substitute(f, map[string]Term{"c": ParseTerm("f(y)")}, nil)
	if err != nil {
		t.Fatalf("Substitute returned error: %v", err)
	}
	if want := "(Ay[R(y)]&x=f(y))"; got.String() != want {
		t.Errorf("Substitute = %s, want %s", got, want)
	}
}

func TestSubstituteEmptyMap(t *testing.T) {
	f := Parse("Ax[Ey[plus(x,y)=0]]")
	got, err := Substitute(f, nil, nil)
	if err != nil {
		t.Fatalf("Substitute returned error: %v", err)
	}
	if !got.Equal(f) {
		t.Errorf("Substitute with no substitutions = %s, want %s", got, f)
	}
}
