package prop

import (
	"fmt"
	"strings"
)

// SpecializationMap assigns a formula to each schema variable being
// specialized. A nil map means "not a specialization"; an empty non-nil map
// is a successful, trivial specialization.
type SpecializationMap map[string]Formula

// InferenceRule is an immutable schematic rule: zero or more assumption
// formulas and one conclusion formula. Assumption order matters for
// matching; two rules are equal iff their assumption sequences and
// conclusions are pairwise equal.
type InferenceRule struct {
	Assumptions []Formula
	Conclusion  Formula
}

// NewInferenceRule builds a rule from its assumptions and conclusion. The
// assumption slice is copied, so the caller may reuse it.
func NewInferenceRule(assumptions []Formula, conclusion Formula) InferenceRule {
	copied := make([]Formula, len(assumptions))
	copy(copied, assumptions)
	return InferenceRule{Assumptions: copied, Conclusion: conclusion}
}

// Equal reports whether the other rule has pairwise equal assumptions and an
// equal conclusion.
func (r InferenceRule) Equal(other InferenceRule) bool {
	if len(r.Assumptions) != len(other.Assumptions) {
		return false
	}
	for i, a := range r.Assumptions {
		if !a.Equal(other.Assumptions[i]) {
			return false
		}
	}
	return r.Conclusion.Equal(other.Conclusion)
}

// String returns a readable rendering such as ['p', '(p->q)'] ==> 'q'.
func (r InferenceRule) String() string {
	quoted := make([]string, len(r.Assumptions))
	for i, a := range r.Assumptions {
		quoted[i] = "'" + a.String() + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "] ==> '" + r.Conclusion.String() + "'"
}

// Variables returns the set of all atomic propositions used in the rule's
// assumptions and conclusion.
func (r InferenceRule) Variables() map[string]bool {
	vars := make(map[string]bool)
	for _, a := range r.Assumptions {
		collectVariables(a, vars)
	}
	collectVariables(r.Conclusion, vars)
	return vars
}

// Specialize substitutes, simultaneously in every assumption and in the
// conclusion, each variable that is a key of m with the formula it maps to.
func (r InferenceRule) Specialize(m SpecializationMap) InferenceRule {
	assumptions := make([]Formula, len(r.Assumptions))
	for i, a := range r.Assumptions {
		assumptions[i] = SubstituteVariables(a, m)
	}
	return InferenceRule{
		Assumptions: assumptions,
		Conclusion:  SubstituteVariables(r.Conclusion, m),
	}
}

// MergeSpecializationMaps combines two specialization maps into one holding
// the union of their entries. It returns nil if either map is nil or if some
// variable is mapped to unequal formulas by the two maps.
func MergeSpecializationMaps(m1, m2 SpecializationMap) SpecializationMap {
	if m1 == nil || m2 == nil {
		return nil
	}
	merged := make(SpecializationMap, len(m1)+len(m2))
	for name, f := range m1 {
		merged[name] = f
	}
	for name, f := range m2 {
		if existing, ok := merged[name]; ok && !existing.Equal(f) {
			return nil
		}
		merged[name] = f
	}
	return merged
}

// FormulaSpecializationMap computes the minimal map by which general
// specializes to specialization: a variable leaf of general may map to any
// subformula, while constants and operator structure must match node for
// node. Returns nil if specialization is not a specialization of general.
func FormulaSpecializationMap(general, specialization Formula) SpecializationMap {
	switch g := general.(type) {
	case *Var:
		return SpecializationMap{g.Name: specialization}
	case *Const:
		if s, ok := specialization.(*Const); ok && g.Value == s.Value {
			return SpecializationMap{}
		}
		return nil
	case *Unary:
		if s, ok := specialization.(*Unary); ok {
			return FormulaSpecializationMap(g.Operand, s.Operand)
		}
		return nil
	case *Binary:
		s, ok := specialization.(*Binary)
		if !ok || s.Op != g.Op {
			return nil
		}
		return MergeSpecializationMaps(
			FormulaSpecializationMap(g.Left, s.Left),
			FormulaSpecializationMap(g.Right, s.Right))
	}
	panic(fmt.Sprintf("prop: unknown formula node %T", general))
}

// SpecializationMap computes the minimal map by which r specializes to
// specialization, matching assumptions pairwise and then the conclusion.
// Returns nil if specialization is not a specialization of r.
func (r InferenceRule) SpecializationMap(specialization InferenceRule) SpecializationMap {
	if len(r.Assumptions) != len(specialization.Assumptions) {
		return nil
	}
	m := SpecializationMap{}
	for i, a := range r.Assumptions {
		m = MergeSpecializationMaps(m, FormulaSpecializationMap(a, specialization.Assumptions[i]))
		if m == nil {
			return nil
		}
	}
	return MergeSpecializationMaps(m, FormulaSpecializationMap(r.Conclusion, specialization.Conclusion))
}

// IsSpecializationOf reports whether r is a specialization of general.
func (r InferenceRule) IsSpecializationOf(general InferenceRule) bool {
	return general.SpecializationMap(r) != nil
}

// unionRules returns the set union of two rule slices, preserving the order
// of first appearance.
func unionRules(a, b []InferenceRule) []InferenceRule {
	union := make([]InferenceRule, 0, len(a)+len(b))
	for _, r := range a {
		if !containsRule(union, r) {
			union = append(union, r)
		}
	}
	for _, r := range b {
		if !containsRule(union, r) {
			union = append(union, r)
		}
	}
	return union
}

// removeRule returns rules without any rule equal to r.
func removeRule(rules []InferenceRule, r InferenceRule) []InferenceRule {
	kept := make([]InferenceRule, 0, len(rules))
	for _, existing := range rules {
		if !existing.Equal(r) {
			kept = append(kept, existing)
		}
	}
	return kept
}

func containsRule(rules []InferenceRule, r InferenceRule) bool {
	for _, existing := range rules {
		if existing.Equal(r) {
			return true
		}
	}
	return false
}

// sameRuleSet reports whether two rule slices contain the same rules,
// ignoring order and duplicates.
func sameRuleSet(a, b []InferenceRule) bool {
	for _, r := range a {
		if !containsRule(b, r) {
			return false
		}
	}
	for _, r := range b {
		if !containsRule(a, r) {
			return false
		}
	}
	return true
}
