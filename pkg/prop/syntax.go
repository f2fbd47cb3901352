// Package prop implements propositional logic over immutable formula trees:
// the standard textual grammar and its parser, simultaneous substitution,
// truth-table semantics, schematic inference rules, deductive proofs with a
// line-by-line validity checker, proof-transformation maneuvers, and a
// constructive prover that turns any tautology over '->' and '~' into an
// axiomatic proof (the Tautology Theorem).
//
// Formulas are pure values. A formula tree is never mutated after
// construction; every operation that "changes" a formula builds and returns
// a new tree. Equality is structural, defined by the canonical string form
// (the String method is the exact inverse of Parse), so two independently
// built trees that print the same are equal. Code that needs to key a map by
// formula uses the String form as the key.
//
// The grammar:
//
//	variable: a letter in 'p'..'z', optionally followed by digits (p, q76, x1)
//	constant: T | F
//	unary:    ~FORMULA
//	binary:   (FORMULA op FORMULA) with op in & | -> <-> + -& -|
//
// Binary formulas are always fully parenthesized, which makes the grammar
// unambiguous without precedence rules.
package prop

// IsVariable reports whether s is an atomic proposition name: a letter in
// 'p'..'z' optionally followed by decimal digits.
func IsVariable(s string) bool {
	if len(s) == 0 || s[0] < 'p' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsConstant reports whether s is a propositional constant name.
func IsConstant(s string) bool {
	return s == "T" || s == "F"
}

// IsUnary reports whether s is a unary operator.
func IsUnary(s string) bool {
	return s == "~"
}

var binaryOps = map[string]bool{
	"&": true, "|": true, "->": true, "+": true, "<->": true, "-&": true, "-|": true,
}

// IsBinary reports whether s is a binary operator.
func IsBinary(s string) bool {
	return binaryOps[s]
}

// Formula is the interface satisfied by every propositional formula node.
// The set of implementations is closed: *Const, *Var, *Unary and *Binary.
// Operations over formulas switch exhaustively on these four shapes.
type Formula interface {
	// String returns the canonical string representation of the formula.
	// Parse(f.String()) reconstructs an equal formula.
	String() string

	// Equal reports whether the other formula is structurally equal to
	// this one. Equality is content-based, not identity-based.
	Equal(other Formula) bool
}

// Const is a propositional constant: T (true) or F (false).
type Const struct {
	Value bool
}

// String returns "T" or "F".
func (c *Const) String() string {
	if c.Value {
		return "T"
	}
	return "F"
}

// Equal reports structural equality with another formula.
func (c *Const) Equal(other Formula) bool {
	return other != nil && c.String() == other.String()
}

// Var is an atomic proposition. Name must satisfy IsVariable.
type Var struct {
	Name string
}

// String returns the variable name.
func (v *Var) String() string {
	return v.Name
}

// Equal reports structural equality with another formula.
func (v *Var) Equal(other Formula) bool {
	return other != nil && v.String() == other.String()
}

// Unary is a negation; '~' is the only unary operator of the grammar.
type Unary struct {
	Operand Formula
}

// String returns "~" followed by the operand's canonical form.
func (u *Unary) String() string {
	return "~" + u.Operand.String()
}

// Equal reports structural equality with another formula.
func (u *Unary) Equal(other Formula) bool {
	return other != nil && u.String() == other.String()
}

// Binary applies a binary operator to two operands. Op must satisfy
// IsBinary.
type Binary struct {
	Op    string
	Left  Formula
	Right Formula
}

// String returns the fully parenthesized canonical form "(left op right)".
func (b *Binary) String() string {
	return "(" + b.Left.String() + b.Op + b.Right.String() + ")"
}

// Equal reports structural equality with another formula.
func (b *Binary) Equal(other Formula) bool {
	return other != nil && b.String() == other.String()
}

// not negates a formula.
func not(f Formula) Formula {
	return &Unary{Operand: f}
}

// implies builds the implication (antecedent->consequent).
func implies(antecedent, consequent Formula) Formula {
	return &Binary{Op: "->", Left: antecedent, Right: consequent}
}

// Variables returns the set of all atomic propositions occurring in the
// formula.
//
// Example:
//
//	Variables(MustParse("((p->q76)&~p)"))  // {"p": true, "q76": true}
func Variables(f Formula) map[string]bool {
	vars := make(map[string]bool)
	collectVariables(f, vars)
	return vars
}

func collectVariables(f Formula, vars map[string]bool) {
	switch n := f.(type) {
	case *Const:
	case *Var:
		vars[n.Name] = true
	case *Unary:
		collectVariables(n.Operand, vars)
	case *Binary:
		collectVariables(n.Left, vars)
		collectVariables(n.Right, vars)
	}
}

// Operators returns the set of all operators occurring in the formula.
// The constants "T" and "F" count as (nullary) operators.
func Operators(f Formula) map[string]bool {
	ops := make(map[string]bool)
	collectOperators(f, ops)
	return ops
}

func collectOperators(f Formula, ops map[string]bool) {
	switch n := f.(type) {
	case *Const:
		ops[n.String()] = true
	case *Var:
	case *Unary:
		ops["~"] = true
		collectOperators(n.Operand, ops)
	case *Binary:
		ops[n.Op] = true
		collectOperators(n.Left, ops)
		collectOperators(n.Right, ops)
	}
}
