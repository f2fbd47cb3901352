package prop

import (
	"fmt"
	"strings"
)

// Line is a single line of a deductive proof: a formula justified either as
// an assumption of the proof (Rule is nil) or as the conclusion of a
// specialization of an allowed rule whose assumptions are the formulas of
// strictly earlier lines, cited by index in order.
type Line struct {
	Formula     Formula
	Rule        *InferenceRule
	Assumptions []int
}

// NewAssumptionLine builds a line justified as an assumption of the proof.
func NewAssumptionLine(f Formula) Line {
	return Line{Formula: f}
}

// NewDerivedLine builds a line justified by the given rule applied to the
// formulas of the cited earlier lines. The citation slice is copied.
func NewDerivedLine(f Formula, rule InferenceRule, assumptions []int) Line {
	copied := make([]int, len(assumptions))
	copy(copied, assumptions)
	return Line{Formula: f, Rule: &rule, Assumptions: copied}
}

// IsAssumption reports whether the line is justified as an assumption of
// the proof.
func (l Line) IsAssumption() bool {
	return l.Rule == nil
}

// String returns a readable rendering of the line.
func (l Line) String() string {
	if l.IsAssumption() {
		return l.Formula.String()
	}
	s := l.Formula.String() + " Inference Rule " + l.Rule.String()
	if len(l.Assumptions) > 0 {
		s += fmt.Sprintf(" on %v", l.Assumptions)
	}
	return s
}

// Proof is an immutable deductive proof: a statement in the form of an
// inference rule, the set of inference rules allowed in the proof, and the
// ordered lines that establish the statement's conclusion from its
// assumptions. Proofs are constructed once and validated on demand; the
// proof maneuvers in this package never mutate an input proof.
type Proof struct {
	Statement InferenceRule
	Rules     []InferenceRule
	Lines     []Line
}

// NewProof builds a proof from its statement, allowed rules, and lines. The
// rule and line slices are copied, and duplicate rules are dropped so Rules
// behaves as a set.
func NewProof(statement InferenceRule, rules []InferenceRule, lines []Line) Proof {
	return Proof{
		Statement: statement,
		Rules:     unionRules(nil, rules),
		Lines:     append(make([]Line, 0, len(lines)), lines...),
	}
}

// HasRule reports whether r is one of the proof's allowed rules.
func (p Proof) HasRule(r InferenceRule) bool {
	return containsRule(p.Rules, r)
}

// RuleForLine builds the inference rule embodied by the given derived line:
// the formulas of its cited lines, in citation order, as assumptions, and
// the line's own formula as conclusion. Returns nil for an assumption line.
func (p Proof) RuleForLine(lineNumber int) *InferenceRule {
	line := p.Lines[lineNumber]
	if line.IsAssumption() {
		return nil
	}
	assumptions := make([]Formula, len(line.Assumptions))
	for i, cited := range line.Assumptions {
		assumptions[i] = p.Lines[cited].Formula
	}
	rule := NewInferenceRule(assumptions, line.Formula)
	return &rule
}

// IsLineValid reports whether the given line validly follows from its
// justification: an assumption line must be one of the statement's declared
// assumptions; a derived line must cite an allowed rule, cite only strictly
// earlier lines, and embody a specialization of its cited rule.
func (p Proof) IsLineValid(lineNumber int) bool {
	line := p.Lines[lineNumber]
	if line.IsAssumption() {
		for _, a := range p.Statement.Assumptions {
			if a.Equal(line.Formula) {
				return true
			}
		}
		return false
	}
	if !p.HasRule(*line.Rule) {
		return false
	}
	for _, cited := range line.Assumptions {
		if cited < 0 || cited >= lineNumber {
			return false
		}
	}
	return p.RuleForLine(lineNumber).IsSpecializationOf(*line.Rule)
}

// IsValid reports whether the proof is a valid proof of its claimed
// statement: every line is valid and the final line's formula is exactly
// the statement's conclusion.
func (p Proof) IsValid() bool {
	if len(p.Lines) == 0 {
		return false
	}
	for i := range p.Lines {
		if !p.IsLineValid(i) {
			return false
		}
	}
	return p.Lines[len(p.Lines)-1].Formula.Equal(p.Statement.Conclusion)
}

// String returns a readable multi-line rendering of the proof.
func (p Proof) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Proof for %s via inference rules:\n", p.Statement)
	for _, r := range p.Rules {
		fmt.Fprintf(&b, "  %s\n", r)
	}
	b.WriteString("Lines:\n")
	for i, line := range p.Lines {
		fmt.Fprintf(&b, "%3d) %s\n", i, line)
	}
	return b.String()
}
