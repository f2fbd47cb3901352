package fol

import (
	"fmt"
	"strings"
)

// IsEquality reports whether s is the equality relation symbol.
func IsEquality(s string) bool {
	return s == "="
}

// IsRelation reports whether s is a relation name: a leading character in
// 'F'..'T' followed by alphanumerics.
func IsRelation(s string) bool {
	return len(s) > 0 && s[0] >= 'F' && s[0] <= 'T' && isAlnumTail(s)
}

// IsUnary reports whether s is a unary operator.
func IsUnary(s string) bool {
	return s == "~"
}

// IsBinary reports whether s is a binary operator of the first-order
// grammar.
func IsBinary(s string) bool {
	return s == "&" || s == "|" || s == "->"
}

// IsQuantifier reports whether s is a quantifier symbol: 'A' (universal) or
// 'E' (existential).
func IsQuantifier(s string) bool {
	return s == "A" || s == "E"
}

// Formula is the interface satisfied by every first-order formula node. The
// set of implementations is closed: *Equality, *Relation, *Unary, *Binary
// and *Quantifier.
type Formula interface {
	// String returns the canonical string representation of the formula.
	// Parse(f.String()) reconstructs an equal formula.
	String() string

	// Equal reports whether the other formula is structurally equal to
	// this one.
	Equal(other Formula) bool
}

// Equality asserts that two terms denote the same object.
type Equality struct {
	Left  Term
	Right Term
}

// String returns the canonical form "left=right".
func (e *Equality) String() string {
	return e.Left.String() + "=" + e.Right.String()
}

// Equal reports structural equality with another formula.
func (e *Equality) Equal(other Formula) bool {
	return other != nil && e.String() == other.String()
}

// Relation applies a relation to zero or more argument terms. Name must
// satisfy IsRelation.
type Relation struct {
	Name string
	Args []Term
}

// String returns the canonical form "name(arg1,arg2,...)"; a nullary
// relation prints as "name()".
func (r *Relation) String() string {
	args := make([]string, len(r.Args))
	for i, a := range r.Args {
		args[i] = a.String()
	}
	return r.Name + "(" + strings.Join(args, ",") + ")"
}

// Equal reports structural equality with another formula.
func (r *Relation) Equal(other Formula) bool {
	return other != nil && r.String() == other.String()
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

// Quantifier binds a variable over a body formula. Q must satisfy
// IsQuantifier and Variable must satisfy IsVariable.
type Quantifier struct {
	Q        string
	Variable string
	Body     Formula
}

// String returns the canonical form "Qvariable[body]", such as
// "Ax[Ey[plus(x,y)=0]]".
func (q *Quantifier) String() string {
	return q.Q + q.Variable + "[" + q.Body.String() + "]"
}

// Equal reports structural equality with another formula.
func (q *Quantifier) Equal(other Formula) bool {
	return other != nil && q.String() == other.String()
}

// ParsePrefix parses the longest valid formula prefix of s and returns the
// parsed formula together with the unparsed suffix. The input must begin
// with a well-formed formula; anything else is a programming error and
// panics.
func ParsePrefix(s string) (Formula, string) {
	if s == "" {
		panic("fol: no formula at the start of an empty string")
	}
	switch c := s[0]; {
	case c == '~':
		operand, rest := ParsePrefix(s[1:])
		return &Unary{Operand: operand}, rest

	case c == 'A' || c == 'E':
		variable, rest := scanName(s[1:])
		if !IsVariable(variable) {
			panic(fmt.Sprintf("fol: quantifier binds non-variable %q in %q", variable, s))
		}
		if rest == "" || rest[0] != '[' {
			panic(fmt.Sprintf("fol: quantifier body lacks '[' in %q", s))
		}
		body, rest := ParsePrefix(rest[1:])
		if rest == "" || rest[0] != ']' {
			panic(fmt.Sprintf("fol: quantifier body lacks ']' in %q", s))
		}
		return &Quantifier{Q: string(c), Variable: variable, Body: body}, rest[1:]

	case c == '(':
		left, rest := ParsePrefix(s[1:])
		op, rest := parseBinaryOp(rest)
		right, rest := ParsePrefix(rest)
		if rest == "" || rest[0] != ')' {
			panic(fmt.Sprintf("fol: missing ')' after %q", s))
		}
		return &Binary{Op: op, Left: left, Right: right}, rest[1:]

	case c >= 'F' && c <= 'T':
		name, rest := scanName(s)
		if rest == "" || rest[0] != '(' {
			panic(fmt.Sprintf("fol: relation %q lacks an argument list in %q", name, s))
		}
		rest = rest[1:]
		if rest != "" && rest[0] == ')' {
			return &Relation{Name: name}, rest[1:]
		}
		var args []Term
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
				return &Relation{Name: name, Args: args}, rest[1:]
			}
			panic(fmt.Sprintf("fol: unexpected %q in argument list of %q", string(rest[0]), s))
		}

	default:
		left, rest := ParseTermPrefix(s)
		if rest == "" || rest[0] != '=' {
			panic(fmt.Sprintf("fol: expected '=' after term in %q", s))
		}
		right, rest := ParseTermPrefix(rest[1:])
		return &Equality{Left: left, Right: right}, rest
	}
}

func parseBinaryOp(s string) (string, string) {
	for _, op := range []string{"->", "&", "|"} {
		if strings.HasPrefix(s, op) {
			return op, s[len(op):]
		}
	}
	panic(fmt.Sprintf("fol: expected a binary operator at %q", s))
}

// Parse parses s, which must be consumed in full, into a formula.
func Parse(s string) Formula {
	f, rest := ParsePrefix(s)
	if rest != "" {
		panic(fmt.Sprintf("fol: unparsed suffix %q after formula", rest))
	}
	return f
}
