package fol

import "fmt"

// ForbiddenVariableError reports that a substitution would have introduced a
// variable where it must not appear: either a variable the caller forbade
// outright, or a variable that would be captured by a quantifier at the
// point of substitution.
type ForbiddenVariableError struct {
	VariableName string
}

// Error describes the offending variable.
func (e ForbiddenVariableError) Error() string {
	return fmt.Sprintf("fol: substituted term contains forbidden variable %q", e.VariableName)
}

// Substitute replaces, in one simultaneous pass, every constant or variable
// whose name is a key of substitutions with the term it maps to. Substituted
// terms are never themselves re-substituted, and only free occurrences of a
// variable are replaced. The substitution is capture-checked: if a
// substituted term contains a variable from the forbidden set, or a variable
// that is bound by a quantifier enclosing the point of substitution, the
// result is a ForbiddenVariableError naming that variable.
//
// Every key must satisfy IsConstant or IsVariable; a bad key is a
// programming error and panics.
//
// Example:
//
//	f := Parse("Ay[x=c]")
//	Substitute(f, map[string]Term{"c": ParseTerm("plus(d,x)")}, nil)
//	// Ay[x=plus(d,x)], nil
//	Substitute(f, map[string]Term{"c": ParseTerm("plus(d,y)")}, nil)
//	// nil, ForbiddenVariableError{"y"}
func Substitute(f Formula, substitutions map[string]Term, forbidden map[string]bool) (Formula, error) {
	for name := range substitutions {
		if !IsConstant(name) && !IsVariable(name) {
			panic(fmt.Sprintf("fol: substitution key %q is not a constant or variable name", name))
		}
	}
	return substituteFormula(f, substitutions, forbidden)
}

func substituteFormula(f Formula, substitutions map[string]Term, forbidden map[string]bool) (Formula, error) {
	switch n := f.(type) {
	case *Equality:
		left, err := substituteTerm(n.Left, substitutions, forbidden)
		if err != nil {
			return nil, err
		}
		right, err := substituteTerm(n.Right, substitutions, forbidden)
		if err != nil {
			return nil, err
		}
		return &Equality{Left: left, Right: right}, nil

	case *Relation:
		args := make([]Term, len(n.Args))
		for i, a := range n.Args {
			arg, err := substituteTerm(a, substitutions, forbidden)
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		return &Relation{Name: n.Name, Args: args}, nil

	case *Unary:
		operand, err := substituteFormula(n.Operand, substitutions, forbidden)
		if err != nil {
			return nil, err
		}
		return &Unary{Operand: operand}, nil

	case *Binary:
		left, err := substituteFormula(n.Left, substitutions, forbidden)
		if err != nil {
			return nil, err
		}
		right, err := substituteFormula(n.Right, substitutions, forbidden)
		if err != nil {
			return nil, err
		}
		return &Binary{Op: n.Op, Left: left, Right: right}, nil

	case *Quantifier:
		// Occurrences of the bound variable inside the body are not free,
		// so its key (a constant key never names a variable) is dropped,
		// and any substituted term introducing the bound variable would be
		// captured, so it joins the forbidden set.
		inner := substitutions
		if _, ok := substitutions[n.Variable]; ok {
			inner = make(map[string]Term, len(substitutions)-1)
			for name, t := range substitutions {
				if name != n.Variable {
					inner[name] = t
				}
			}
		}
		innerForbidden := make(map[string]bool, len(forbidden)+1)
		for name := range forbidden {
			innerForbidden[name] = true
		}
		innerForbidden[n.Variable] = true
		body, err := substituteFormula(n.Body, inner, innerForbidden)
		if err != nil {
			return nil, err
		}
		return &Quantifier{Q: n.Q, Variable: n.Variable, Body: body}, nil
	}
	panic(fmt.Sprintf("fol: unknown formula node %T", f))
}
