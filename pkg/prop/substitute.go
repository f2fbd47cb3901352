package prop

import "fmt"

// SubstituteVariables replaces, in one simultaneous pass, every variable
// that is a key of substitutions with the formula it maps to. Substituted
// formulas are never themselves re-substituted. Every key must satisfy
// IsVariable; a bad key is a programming error and panics.
//
// Example:
//
//	f := MustParse("((p->p)|z)")
//	SubstituteVariables(f, map[string]Formula{"p": MustParse("(q&r)")})
//	// (((q&r)->(q&r))|z)
func SubstituteVariables(f Formula, substitutions map[string]Formula) Formula {
	for name := range substitutions {
		if !IsVariable(name) {
			panic(fmt.Sprintf("prop: substitution key %q is not a variable name", name))
		}
	}
	return substituteVariables(f, substitutions)
}

func substituteVariables(f Formula, substitutions map[string]Formula) Formula {
	switch n := f.(type) {
	case *Const:
		return f
	case *Var:
		if replacement, ok := substitutions[n.Name]; ok {
			return replacement
		}
		return f
	case *Unary:
		return &Unary{Operand: substituteVariables(n.Operand, substitutions)}
	case *Binary:
		return &Binary{
			Op:    n.Op,
			Left:  substituteVariables(n.Left, substitutions),
			Right: substituteVariables(n.Right, substitutions),
		}
	}
	panic(fmt.Sprintf("prop: unknown formula node %T", f))
}

// SubstituteOperators replaces every constant or operator that is a key of
// substitutions with the formula it maps to, applied to the (zero, one, or
// two) rewritten operands: each occurrence of the variable p in the
// replacement stands for the first operand and each occurrence of q for the
// second. Keys must be operators or constants and replacement formulas may
// only use the variables p and q; violations panic.
//
// Example:
//
//	f := MustParse("((x&y)&~z)")
//	SubstituteOperators(f, map[string]Formula{"&": MustParse("~(~p|~q)")})
//	// ~(~~(~x|~y)|~~z)
func SubstituteOperators(f Formula, substitutions map[string]Formula) Formula {
	for op, replacement := range substitutions {
		if !IsBinary(op) && !IsUnary(op) && !IsConstant(op) {
			panic(fmt.Sprintf("prop: substitution key %q is not an operator or constant", op))
		}
		for name := range Variables(replacement) {
			if name != "p" && name != "q" {
				panic(fmt.Sprintf("prop: operator replacement for %q uses variable %q", op, name))
			}
		}
	}
	return substituteOperators(f, substitutions)
}

func substituteOperators(f Formula, substitutions map[string]Formula) Formula {
	switch n := f.(type) {
	case *Const:
		if replacement, ok := substitutions[n.String()]; ok {
			return replacement
		}
		return f
	case *Var:
		return f
	case *Unary:
		operand := substituteOperators(n.Operand, substitutions)
		if replacement, ok := substitutions["~"]; ok {
			return substituteVariables(replacement, map[string]Formula{"p": operand})
		}
		return &Unary{Operand: operand}
	case *Binary:
		left := substituteOperators(n.Left, substitutions)
		right := substituteOperators(n.Right, substitutions)
		if replacement, ok := substitutions[n.Op]; ok {
			return substituteVariables(replacement, map[string]Formula{"p": left, "q": right})
		}
		return &Binary{Op: n.Op, Left: left, Right: right}
	}
	panic(fmt.Sprintf("prop: unknown formula node %T", f))
}
