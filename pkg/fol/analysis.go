package fol

import "fmt"

// NameArity identifies a function or relation symbol together with the
// number of arguments it is applied to. The same name used with different
// arities counts as distinct symbols.
type NameArity struct {
	Name  string
	Arity int
}

// Variables returns the set of all variable names occurring in the formula,
// whether free or bound.
func Variables(f Formula) map[string]bool {
	names := make(map[string]bool)
	walkFormula(f, func(g Formula) {
		switch n := g.(type) {
		case *Equality:
			collectTermVariables(n.Left, names)
			collectTermVariables(n.Right, names)
		case *Relation:
			for _, a := range n.Args {
				collectTermVariables(a, names)
			}
		case *Quantifier:
			names[n.Variable] = true
		}
	})
	return names
}

// FreeVariables returns the set of variable names with at least one free
// occurrence in the formula.
//
// Example:
//
//	FreeVariables(Parse("(Q(x)|Ax[R(x,y)])"))  // {"x": true, "y": true}
func FreeVariables(f Formula) map[string]bool {
	names := make(map[string]bool)
	collectFreeVariables(f, map[string]bool{}, names)
	return names
}

func collectFreeVariables(f Formula, bound, free map[string]bool) {
	collectTermFree := func(t Term) {
		for name := range TermVariables(t) {
			if !bound[name] {
				free[name] = true
			}
		}
	}
	switch n := f.(type) {
	case *Equality:
		collectTermFree(n.Left)
		collectTermFree(n.Right)
	case *Relation:
		for _, a := range n.Args {
			collectTermFree(a)
		}
	case *Unary:
		collectFreeVariables(n.Operand, bound, free)
	case *Binary:
		collectFreeVariables(n.Left, bound, free)
		collectFreeVariables(n.Right, bound, free)
	case *Quantifier:
		if bound[n.Variable] {
			collectFreeVariables(n.Body, bound, free)
			return
		}
		bound[n.Variable] = true
		collectFreeVariables(n.Body, bound, free)
		delete(bound, n.Variable)
	default:
		panic(fmt.Sprintf("fol: unknown formula node %T", f))
	}
}

// Constants returns the set of all constant names occurring in the formula.
func Constants(f Formula) map[string]bool {
	names := make(map[string]bool)
	walkFormula(f, func(g Formula) {
		switch n := g.(type) {
		case *Equality:
			collectTermConstants(n.Left, names)
			collectTermConstants(n.Right, names)
		case *Relation:
			for _, a := range n.Args {
				collectTermConstants(a, names)
			}
		}
	})
	return names
}

// Functions returns the set of function symbols, with their arities,
// occurring in the formula.
func Functions(f Formula) map[NameArity]bool {
	names := make(map[NameArity]bool)
	walkFormula(f, func(g Formula) {
		switch n := g.(type) {
		case *Equality:
			collectTermFunctions(n.Left, names)
			collectTermFunctions(n.Right, names)
		case *Relation:
			for _, a := range n.Args {
				collectTermFunctions(a, names)
			}
		}
	})
	return names
}

// Relations returns the set of relation symbols, with their arities,
// occurring in the formula. Equalities are not relations.
func Relations(f Formula) map[NameArity]bool {
	names := make(map[NameArity]bool)
	walkFormula(f, func(g Formula) {
		if r, ok := g.(*Relation); ok {
			names[NameArity{Name: r.Name, Arity: len(r.Args)}] = true
		}
	})
	return names
}

// walkFormula visits every node of the formula tree in depth-first order.
func walkFormula(f Formula, visit func(Formula)) {
	visit(f)
	switch n := f.(type) {
	case *Equality, *Relation:
	case *Unary:
		walkFormula(n.Operand, visit)
	case *Binary:
		walkFormula(n.Left, visit)
		walkFormula(n.Right, visit)
	case *Quantifier:
		walkFormula(n.Body, visit)
	default:
		panic(fmt.Sprintf("fol: unknown formula node %T", f))
	}
}
