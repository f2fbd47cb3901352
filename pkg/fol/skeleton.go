package fol

import (
	"fmt"

	"github.com/gitrdm/goproof/pkg/prop"
)

// FreshNameGenerator hands out an unbounded stream of names with a common
// prefix and an increasing numeric suffix. With the default prefix "z" the
// generated names are valid variable names in both the propositional and the
// first-order grammar, which is what the skeleton bridge relies on.
type FreshNameGenerator struct {
	prefix string
	count  int
}

// NewFreshNameGenerator builds a generator for the given prefix. The prefix
// must yield names valid as variables of both grammars.
func NewFreshNameGenerator(prefix string) *FreshNameGenerator {
	first := prefix + "1"
	if !prop.IsVariable(first) || !IsVariable(first) {
		panic(fmt.Sprintf("fol: prefix %q does not generate variable names", prefix))
	}
	return &FreshNameGenerator{prefix: prefix}
}

// Next returns the next fresh name: prefix1, prefix2, and so on.
func (g *FreshNameGenerator) Next() string {
	g.count++
	return fmt.Sprintf("%s%d", g.prefix, g.count)
}

// PropositionalSkeleton abstracts the first-order formula into a
// propositional one: each maximal subformula whose root is not a
// propositional operator (an equality, a relation, or a quantification) is
// replaced by a fresh propositional variable from gen, with repeated equal
// subformulas sharing one variable. The returned map takes each introduced
// variable back to the subformula it stands for, so
// FromPropositionalSkeleton inverts the abstraction.
//
// Example:
//
//	skeleton, m := PropositionalSkeleton(Parse("((R(x)|Q(y))->R(x))"), NewFreshNameGenerator("z"))
//	// skeleton is ((z1|z2)->z1), m maps z1 to R(x) and z2 to Q(y)
func PropositionalSkeleton(f Formula, gen *FreshNameGenerator) (prop.Formula, map[string]Formula) {
	s := &skeletonizer{
		gen:           gen,
		atoms:         make(map[string]string),
		substitutions: make(map[string]Formula),
	}
	return s.abstract(f), s.substitutions
}

type skeletonizer struct {
	gen *FreshNameGenerator
	// atoms maps the canonical form of an abstracted subformula to the
	// propositional variable standing for it.
	atoms         map[string]string
	substitutions map[string]Formula
}

func (s *skeletonizer) abstract(f Formula) prop.Formula {
	switch n := f.(type) {
	case *Unary:
		return &prop.Unary{Operand: s.abstract(n.Operand)}
	case *Binary:
		return &prop.Binary{Op: n.Op, Left: s.abstract(n.Left), Right: s.abstract(n.Right)}
	case *Equality, *Relation, *Quantifier:
		key := f.String()
		name, ok := s.atoms[key]
		if !ok {
			name = s.gen.Next()
			s.atoms[key] = name
			s.substitutions[name] = f
		}
		return &prop.Var{Name: name}
	}
	panic(fmt.Sprintf("fol: unknown formula node %T", f))
}

// FromPropositionalSkeleton rebuilds a first-order formula from a
// propositional skeleton and a map taking each of the skeleton's variables
// to a first-order subformula. Every variable of the skeleton must be a key
// of the map; a missing key is a programming error and panics.
func FromPropositionalSkeleton(skeleton prop.Formula, substitutions map[string]Formula) Formula {
	switch n := skeleton.(type) {
	case *prop.Var:
		f, ok := substitutions[n.Name]
		if !ok {
			panic(fmt.Sprintf("fol: skeleton variable %q has no substitution", n.Name))
		}
		return f
	case *prop.Unary:
		return &Unary{Operand: FromPropositionalSkeleton(n.Operand, substitutions)}
	case *prop.Binary:
		if !IsBinary(n.Op) {
			panic(fmt.Sprintf("fol: skeleton operator %q has no first-order counterpart", n.Op))
		}
		return &Binary{
			Op:    n.Op,
			Left:  FromPropositionalSkeleton(n.Left, substitutions),
			Right: FromPropositionalSkeleton(n.Right, substitutions),
		}
	}
	panic(fmt.Sprintf("fol: skeleton node %T has no first-order counterpart", skeleton))
}
