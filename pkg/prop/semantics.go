package prop

import (
	"fmt"
	"sort"
)

// Model is an assignment of truth values to variable names. A model is
// treated as immutable: functions in this package never modify a model they
// are given.
type Model map[string]bool

// IsModel reports whether every key of m is a valid variable name.
func IsModel(m Model) bool {
	for name := range m {
		if !IsVariable(name) {
			return false
		}
	}
	return true
}

// Evaluate computes the truth value of f in model m. The model must assign
// every variable of f (a superset is fine); a missing variable is a
// programming error and panics.
func Evaluate(f Formula, m Model) bool {
	switch n := f.(type) {
	case *Const:
		return n.Value
	case *Var:
		value, ok := m[n.Name]
		if !ok {
			panic(fmt.Sprintf("prop: model does not assign variable %q", n.Name))
		}
		return value
	case *Unary:
		return !Evaluate(n.Operand, m)
	case *Binary:
		left, right := Evaluate(n.Left, m), Evaluate(n.Right, m)
		switch n.Op {
		case "&":
			return left && right
		case "|":
			return left || right
		case "->":
			return !left || right
		case "+":
			return left != right
		case "<->":
			return left == right
		case "-&":
			return !(left && right)
		case "-|":
			return !(left || right)
		}
	}
	panic(fmt.Sprintf("prop: unknown formula node %T", f))
}

// AllModels returns all 2^n models over the given n variables, ordered
// lexicographically with false before true and the first variable most
// significant.
//
// Example:
//
//	AllModels([]string{"p", "q"})
//	// [{p:false q:false} {p:false q:true} {p:true q:false} {p:true q:true}]
func AllModels(variables []string) []Model {
	for _, name := range variables {
		if !IsVariable(name) {
			panic(fmt.Sprintf("prop: %q is not a variable name", name))
		}
	}
	n := len(variables)
	models := make([]Model, 0, 1<<n)
	for i := 0; i < 1<<n; i++ {
		m := make(Model, n)
		for j, name := range variables {
			m[name] = i>>(n-1-j)&1 == 1
		}
		models = append(models, m)
	}
	return models
}

// TruthValues evaluates f in each of the given models, in order.
func TruthValues(f Formula, models []Model) []bool {
	values := make([]bool, len(models))
	for i, m := range models {
		values[i] = Evaluate(f, m)
	}
	return values
}

// sortedVariables returns the variables of f in alphabetical order.
func sortedVariables(f Formula) []string {
	var names []string
	for name := range Variables(f) {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsTautology reports whether f holds in every model over its variables.
func IsTautology(f Formula) bool {
	for _, value := range TruthValues(f, AllModels(sortedVariables(f))) {
		if !value {
			return false
		}
	}
	return true
}

// IsSatisfiable reports whether f holds in at least one model over its
// variables.
func IsSatisfiable(f Formula) bool {
	for _, value := range TruthValues(f, AllModels(sortedVariables(f))) {
		if value {
			return true
		}
	}
	return false
}

// IsContradiction reports whether f holds in no model over its variables.
func IsContradiction(f Formula) bool {
	return !IsSatisfiable(f)
}

// SynthesizeForModel builds a single conjunctive clause that evaluates to
// true in the given model and to false in every other model over the same
// variables: each variable appears as itself when assigned true and negated
// when assigned false, in alphabetical order. The model must be non-empty.
func SynthesizeForModel(m Model) Formula {
	if !IsModel(m) {
		panic("prop: invalid model")
	}
	if len(m) == 0 {
		panic("prop: cannot synthesize a clause for an empty model")
	}
	var names []string
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	literals := make([]Formula, len(names))
	for i, name := range names {
		if m[name] {
			literals[i] = &Var{Name: name}
		} else {
			literals[i] = not(&Var{Name: name})
		}
	}
	return foldBinary("&", literals)
}

// Synthesize builds a DNF formula over the given variables with the given
// truth table: values[i] is the desired truth value in the i-th model of
// AllModels(variables). When every value is false the result is the fixed
// unsatisfiable formula (v&~v) over the first variable.
//
// Example:
//
//	f := Synthesize([]string{"p", "q"}, []bool{true, true, true, false})
//	TruthValues(f, AllModels([]string{"p", "q"}))  // [true true true false]
func Synthesize(variables []string, values []bool) Formula {
	if len(variables) == 0 {
		panic("prop: cannot synthesize over zero variables")
	}
	if len(values) != 1<<len(variables) {
		panic(fmt.Sprintf("prop: got %d truth values for %d variables, want %d",
			len(values), len(variables), 1<<len(variables)))
	}
	models := AllModels(variables)
	var clauses []Formula
	for i, value := range values {
		if value {
			clauses = append(clauses, SynthesizeForModel(models[i]))
		}
	}
	if len(clauses) == 0 {
		v := &Var{Name: variables[0]}
		return &Binary{Op: "&", Left: v, Right: not(v)}
	}
	return foldBinary("|", clauses)
}

// SynthesizeCNF builds a CNF formula over the given variables with the given
// truth table: for each model where the value is false, it adds a
// disjunctive clause ruling that model out. When every value is true the
// result is the fixed tautology (v|~v) over the first variable.
func SynthesizeCNF(variables []string, values []bool) Formula {
	if len(variables) == 0 {
		panic("prop: cannot synthesize over zero variables")
	}
	if len(values) != 1<<len(variables) {
		panic(fmt.Sprintf("prop: got %d truth values for %d variables, want %d",
			len(values), len(variables), 1<<len(variables)))
	}
	models := AllModels(variables)
	var clauses []Formula
	for i, value := range values {
		if value {
			continue
		}
		var names []string
		for name := range models[i] {
			names = append(names, name)
		}
		sort.Strings(names)
		literals := make([]Formula, len(names))
		for j, name := range names {
			// The literal is falsified by this model, so the whole
			// disjunction is false exactly here.
			if models[i][name] {
				literals[j] = not(&Var{Name: name})
			} else {
				literals[j] = &Var{Name: name}
			}
		}
		clauses = append(clauses, foldBinary("|", literals))
	}
	if len(clauses) == 0 {
		v := &Var{Name: variables[0]}
		return &Binary{Op: "|", Left: v, Right: not(v)}
	}
	return foldBinary("&", clauses)
}

// foldBinary right-folds the formulas into a chain of op nodes:
// (f0 op (f1 op (... op fn))). The slice must be non-empty.
func foldBinary(op string, formulas []Formula) Formula {
	result := formulas[len(formulas)-1]
	for i := len(formulas) - 2; i >= 0; i-- {
		result = &Binary{Op: op, Left: formulas[i], Right: result}
	}
	return result
}

// EvaluateInference reports whether rule holds in model m: whenever all of
// its assumptions are true, its conclusion is true as well. The model must
// assign every variable of the rule.
func EvaluateInference(rule InferenceRule, m Model) bool {
	for _, assumption := range rule.Assumptions {
		if !Evaluate(assumption, m) {
			return true
		}
	}
	return Evaluate(rule.Conclusion, m)
}

// IsSoundInference reports whether rule's conclusion is a semantically
// correct implication of its assumptions, checked by scanning the full
// truth table over the rule's variables.
func IsSoundInference(rule InferenceRule) bool {
	var names []string
	for name := range rule.Variables() {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, m := range AllModels(names) {
		if !EvaluateInference(rule, m) {
			return false
		}
	}
	return true
}
