// Package fol implements first-order predicate logic over immutable term and
// formula trees: the standard textual grammar and its parser, free-variable
// and symbol analysis, capture-checked substitution, and the propositional
// skeleton bridge to package prop.
//
// Terms and formulas are pure values: never mutated after construction, with
// structural equality defined by the canonical string form (the String
// methods are the exact inverses of the parsing functions).
//
// The term grammar:
//
//	constant: '_' or a letter in '0'..'9','a'..'d' followed by alphanumerics
//	variable: a letter in 'u'..'z' followed by alphanumerics
//	function: a letter in 'f'..'t' followed by alphanumerics, applied to one
//	          or more comma-separated argument terms in parentheses
//
// Unlike package prop, the parsing functions here do not return errors:
// first-order strings handled by this package are produced by String methods
// or written as source literals, so malformed input is a programming error
// and panics.
package fol

import (
	"fmt"
	"sort"
	"strings"
)

// IsConstant reports whether s is a constant name: '_' or a leading
// character in '0'..'9' or 'a'..'d' followed by alphanumerics.
func IsConstant(s string) bool {
	if s == "_" {
		return true
	}
	if len(s) == 0 {
		return false
	}
	c := s[0]
	if !(c >= '0' && c <= '9') && !(c >= 'a' && c <= 'd') {
		return false
	}
	return isAlnumTail(s)
}

// IsVariable reports whether s is a variable name: a leading character in
// 'u'..'z' followed by alphanumerics.
func IsVariable(s string) bool {
	return len(s) > 0 && s[0] >= 'u' && s[0] <= 'z' && isAlnumTail(s)
}

// IsFunction reports whether s is a function name: a leading character in
// 'f'..'t' followed by alphanumerics.
func IsFunction(s string) bool {
	return len(s) > 0 && s[0] >= 'f' && s[0] <= 't' && isAlnumTail(s)
}

func isAlnumTail(s string) bool {
	for i := 1; i < len(s); i++ {
		if !isAlnum(s[i]) {
			return false
		}
	}
	return true
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// Term is the interface satisfied by every first-order term node. The set of
// implementations is closed: *Const, *Var and *Func.
type Term interface {
	// String returns the canonical string representation of the term.
	// ParseTerm(t.String()) reconstructs an equal term.
	String() string

	// Equal reports whether the other term is structurally equal to this
	// one.
	Equal(other Term) bool
}

// Const is a constant term. Name must satisfy IsConstant.
type Const struct {
	Name string
}

// String returns the constant name.
func (c *Const) String() string {
	return c.Name
}

// Equal reports structural equality with another term.
func (c *Const) Equal(other Term) bool {
	return other != nil && c.String() == other.String()
}

// Var is a variable term. Name must satisfy IsVariable.
type Var struct {
	Name string
}

// String returns the variable name.
func (v *Var) String() string {
	return v.Name
}

// Equal reports structural equality with another term.
func (v *Var) Equal(other Term) bool {
	return other != nil && v.String() == other.String()
}

// Func applies a function to one or more argument terms. Name must satisfy
// IsFunction.
type Func struct {
	Name string
	Args []Term
}

// String returns the canonical form "name(arg1,arg2,...)".
func (f *Func) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.String()
	}
	return f.Name + "(" + strings.Join(args, ",") + ")"
}

// Equal reports structural equality with another term.
func (f *Func) Equal(other Term) bool {
	return other != nil && f.String() == other.String()
}

// ParseTermPrefix parses the longest valid term prefix of s and returns the
// parsed term together with the unparsed suffix. The input must begin with a
// well-formed term; anything else is a programming error and panics.
//
// Example:
//
//	term, rest := ParseTermPrefix("plus(x,y)=0")  // term is plus(x,y), rest is "=0"
func ParseTermPrefix(s string) (Term, string) {
	name, rest := scanName(s)
	switch {
	case IsConstant(name):
		return &Const{Name: name}, rest
	case IsVariable(name):
		return &Var{Name: name}, rest
	case IsFunction(name):
		if rest == "" || rest[0] != '(' {
			panic(fmt.Sprintf("fol: function %q lacks an argument list in %q", name, s))
		}
		var args []Term
		rest = rest[1:]
		for {
			var arg Term
			arg, rest = ParseTermPrefix(rest)
			args = append(args, arg)
			if rest == "" {
				panic(fmt.Sprintf("fol: unterminated argument list in %q", s))
			}
			if rest[0] == ',' {
				rest = rest[1:]
				continue
			}
			if rest[0] == ')' {
				return &Func{Name: name, Args: args}, rest[1:]
			}
			panic(fmt.Sprintf("fol: unexpected %q in argument list of %q", string(rest[0]), s))
		}
	}
	panic(fmt.Sprintf("fol: no term at the start of %q", s))
}

// scanName consumes the leading name token of s: '_' alone, or a maximal run
// of alphanumeric characters.
func scanName(s string) (string, string) {
	if len(s) > 0 && s[0] == '_' {
		return "_", s[1:]
	}
	i := 0
	for i < len(s) && isAlnum(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// ParseTerm parses s, which must be consumed in full, into a term.
func ParseTerm(s string) Term {
	t, rest := ParseTermPrefix(s)
	if rest != "" {
		panic(fmt.Sprintf("fol: unparsed suffix %q after term", rest))
	}
	return t
}

// TermVariables returns the set of variable names occurring in the term.
func TermVariables(t Term) map[string]bool {
	names := make(map[string]bool)
	collectTermVariables(t, names)
	return names
}

func collectTermVariables(t Term, names map[string]bool) {
	switch n := t.(type) {
	case *Const:
	case *Var:
		names[n.Name] = true
	case *Func:
		for _, a := range n.Args {
			collectTermVariables(a, names)
		}
	}
}

// TermConstants returns the set of constant names occurring in the term.
func TermConstants(t Term) map[string]bool {
	names := make(map[string]bool)
	collectTermConstants(t, names)
	return names
}

func collectTermConstants(t Term, names map[string]bool) {
	switch n := t.(type) {
	case *Const:
		names[n.Name] = true
	case *Var:
	case *Func:
		for _, a := range n.Args {
			collectTermConstants(a, names)
		}
	}
}

// TermFunctions returns the set of function names, with their arities,
// occurring in the term.
func TermFunctions(t Term) map[NameArity]bool {
	names := make(map[NameArity]bool)
	collectTermFunctions(t, names)
	return names
}

func collectTermFunctions(t Term, names map[NameArity]bool) {
	if f, ok := t.(*Func); ok {
		names[NameArity{Name: f.Name, Arity: len(f.Args)}] = true
		for _, a := range f.Args {
			collectTermFunctions(a, names)
		}
	}
}

// SubstituteTerm replaces, in one simultaneous pass, every constant or
// variable whose name is a key of substitutions with the term it maps to.
// Substituted terms are never themselves re-substituted. If a substituted
// term contains a variable in the forbidden set, substitution fails with a
// ForbiddenVariableError naming that variable.
//
// Every key must satisfy IsConstant or IsVariable; a bad key is a
// programming error and panics.
func SubstituteTerm(t Term, substitutions map[string]Term, forbidden map[string]bool) (Term, error) {
	for name := range substitutions {
		if !IsConstant(name) && !IsVariable(name) {
			panic(fmt.Sprintf("fol: substitution key %q is not a constant or variable name", name))
		}
	}
	return substituteTerm(t, substitutions, forbidden)
}

func substituteTerm(t Term, substitutions map[string]Term, forbidden map[string]bool) (Term, error) {
	switch n := t.(type) {
	case *Const:
		return substituteLeaf(t, n.Name, substitutions, forbidden)
	case *Var:
		return substituteLeaf(t, n.Name, substitutions, forbidden)
	case *Func:
		args := make([]Term, len(n.Args))
		for i, a := range n.Args {
			arg, err := substituteTerm(a, substitutions, forbidden)
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		return &Func{Name: n.Name, Args: args}, nil
	}
	panic(fmt.Sprintf("fol: unknown term node %T", t))
}

func substituteLeaf(t Term, name string, substitutions map[string]Term, forbidden map[string]bool) (Term, error) {
	replacement, ok := substitutions[name]
	if !ok {
		return t, nil
	}
	if err := checkForbidden(replacement, forbidden); err != nil {
		return nil, err
	}
	return replacement, nil
}

// checkForbidden reports the alphabetically first forbidden variable of t,
// if any.
func checkForbidden(t Term, forbidden map[string]bool) error {
	var offending []string
	for name := range TermVariables(t) {
		if forbidden[name] {
			offending = append(offending, name)
		}
	}
	if len(offending) == 0 {
		return nil
	}
	sort.Strings(offending)
	return ForbiddenVariableError{VariableName: offending[0]}
}
