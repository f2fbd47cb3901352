package prop

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is wrapped by every error returned from the parser, so
// callers can detect malformed input with errors.Is.
var ErrMalformed = errors.New("malformed formula")

// ParsePrefix parses the longest valid formula prefix of s and returns the
// parsed formula together with the unparsed suffix. A variable token is
// always consumed in full: parsing "x12&y" yields the variable x12, not x1.
//
// Example:
//
//	f, rest, _ := ParsePrefix("~p|q")  // f is ~p, rest is "|q"
func ParsePrefix(s string) (Formula, string, error) {
	if s == "" {
		return nil, "", fmt.Errorf("%w: empty string", ErrMalformed)
	}
	switch c := s[0]; {
	case c == '~':
		operand, rest, err := ParsePrefix(s[1:])
		if err != nil {
			return nil, "", fmt.Errorf("%w: '~' lacks an operand in %q", ErrMalformed, s)
		}
		return &Unary{Operand: operand}, rest, nil

	case c == 'T' || c == 'F':
		return &Const{Value: c == 'T'}, s[1:], nil

	case c >= 'p' && c <= 'z':
		i := 1
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		return &Var{Name: s[:i]}, s[i:], nil

	case c == '(':
		left, rest, err := ParsePrefix(s[1:])
		if err != nil {
			return nil, "", err
		}
		op, rest, err := parseBinaryOp(rest)
		if err != nil {
			return nil, "", err
		}
		right, rest, err := ParsePrefix(rest)
		if err != nil {
			return nil, "", err
		}
		if rest == "" || rest[0] != ')' {
			return nil, "", fmt.Errorf("%w: missing ')' after %q", ErrMalformed, s)
		}
		return &Binary{Op: op, Left: left, Right: right}, rest[1:], nil

	default:
		return nil, "", fmt.Errorf("%w: unexpected character %q", ErrMalformed, string(c))
	}
}

// parseBinaryOp consumes a binary operator token from the front of s.
// Multi-character operators are matched before their single-character
// prefixes, so "->" is never read as a lone '-'.
func parseBinaryOp(s string) (string, string, error) {
	for _, op := range []string{"<->", "->", "-&", "-|", "&", "|", "+"} {
		if strings.HasPrefix(s, op) {
			return op, s[len(op):], nil
		}
	}
	return "", "", fmt.Errorf("%w: expected a binary operator at %q", ErrMalformed, s)
}

// Parse parses s, which must be consumed in full, into a formula.
func Parse(s string) (Formula, error) {
	f, rest, err := ParsePrefix(s)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, fmt.Errorf("%w: unparsed suffix %q", ErrMalformed, rest)
	}
	return f, nil
}

// MustParse is like Parse but panics on malformed input. It is intended for
// formulas written as literals in source code.
func MustParse(s string) Formula {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

// IsFormula reports whether s is a valid canonical representation of a
// formula.
func IsFormula(s string) bool {
	_, err := Parse(s)
	return err == nil
}
