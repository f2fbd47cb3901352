package prop

import (
	"fmt"
	"sort"
)

// FormulasCapturingModel returns, for each variable of m in alphabetical
// order, the variable itself if m assigns it true and its negation otherwise.
// The conjunction of the returned formulas holds exactly in m.
//
// Example:
//
//	FormulasCapturingModel(Model{"p": true, "q": false})  // [p, ~q]
func FormulasCapturingModel(m Model) []Formula {
	if !IsModel(m) {
		panic("prop: invalid model")
	}
	var names []string
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	formulas := make([]Formula, len(names))
	for i, name := range names {
		if m[name] {
			formulas[i] = &Var{Name: name}
		} else {
			formulas[i] = not(&Var{Name: name})
		}
	}
	return formulas
}

// ProveInModel proves either f or ~f, whichever holds in model m, from the
// formulas capturing m, in the axiomatic system. The formula may only use the
// operators '->' and '~', and m must assign every variable of f.
func ProveInModel(f Formula, m Model) Proof {
	if !IsModel(m) {
		panic("prop: invalid model")
	}
	for op := range Operators(f) {
		if op != "->" && op != "~" {
			panic(fmt.Sprintf("prop: ProveInModel: operator %q not supported", op))
		}
	}
	capturing := FormulasCapturingModel(m)

	switch n := f.(type) {
	case *Var:
		var conclusion Formula = n
		if !m[n.Name] {
			conclusion = not(n)
		}
		statement := NewInferenceRule(capturing, conclusion)
		return NewProof(statement, AxiomaticSystem, []Line{NewAssumptionLine(conclusion)})

	case *Unary:
		if Evaluate(f, m) {
			// ~X is true, so X is false and the subproof already proves ~X.
			return ProveInModel(n.Operand, m)
		}
		// ~X is false, so X is true; lift the subproof of X to ~~X via NN.
		sub := ProveInModel(n.Operand, m)
		return ProveCorollary(sub, not(f), NN)

	case *Binary:
		if Evaluate(f, m) {
			if !Evaluate(n.Left, m) {
				// Antecedent false: derive the implication by explosion.
				return ProveCorollary(ProveInModel(n.Left, m), f, I2)
			}
			// Consequent true: weaken it into the implication.
			return ProveCorollary(ProveInModel(n.Right, m), f, I1)
		}
		// Implication false: antecedent true and consequent false.
		return CombineProofs(ProveInModel(n.Left, m), ProveInModel(n.Right, m), not(f), NI)
	}
	panic(fmt.Sprintf("prop: ProveInModel: unsupported formula node %T", f))
}

// ReduceAssumption combines a proof of a conclusion from assumptions ending
// in some formula q with a proof of the same conclusion from the same
// assumptions except ending in ~q, into a proof of the conclusion from the
// shared prefix of assumptions, via the resolution axiom R.
//
// Preconditions (checked by panic): both proofs are valid with the same rule
// set, their assumption lists agree except that the last assumption of one is
// the negation of the last assumption of the other, every allowed rule is MP
// or assumptionless, and both conclude the same formula.
func ReduceAssumption(proofFromAffirmation, proofFromNegation Proof) Proof {
	if !proofFromAffirmation.IsValid() || !proofFromNegation.IsValid() {
		panic("prop: ReduceAssumption: input proof is not valid")
	}
	affirmed := proofFromAffirmation.Statement.Assumptions
	negated := proofFromNegation.Statement.Assumptions
	if len(affirmed) == 0 || len(negated) != len(affirmed) ||
		!negated[len(negated)-1].Equal(not(affirmed[len(affirmed)-1])) {
		panic("prop: ReduceAssumption: last assumptions are not a formula and its negation")
	}
	return CombineProofs(
		RemoveAssumption(proofFromAffirmation),
		RemoveAssumption(proofFromNegation),
		proofFromAffirmation.Statement.Conclusion,
		R)
}

// ProveTautology proves the tautology t, whose operators may only be '->'
// and '~', in the axiomatic system from the formulas capturing the given
// (possibly partial, possibly empty) model over a prefix of t's variables in
// alphabetical order. With an empty model the result is an assumptionless
// proof of t.
//
// Example:
//
//	proof := ProveTautology(MustParse("(~~p->p)"), Model{})
//	proof.IsValid()  // true
func ProveTautology(t Formula, m Model) Proof {
	if !IsTautology(t) {
		panic(fmt.Sprintf("prop: ProveTautology: %s is not a tautology", t))
	}
	if !IsModel(m) {
		panic("prop: invalid model")
	}
	variables := sortedVariables(t)
	for i, name := range variables {
		if _, ok := m[name]; !ok {
			if i != len(m) {
				panic("prop: ProveTautology: model is not over an alphabetical prefix of the variables")
			}
			// Split on the first unassigned variable and resolve.
			withTrue := make(Model, len(m)+1)
			withFalse := make(Model, len(m)+1)
			for k, v := range m {
				withTrue[k] = v
				withFalse[k] = v
			}
			withTrue[name] = true
			withFalse[name] = false
			return ReduceAssumption(ProveTautology(t, withTrue), ProveTautology(t, withFalse))
		}
	}
	return ProveInModel(t, m)
}

// ProofOrCounterexample either proves f in the axiomatic system, with no
// assumptions, or returns a model in which f does not hold. Exactly one of
// the results is non-nil. The formula may only use the operators '->'
// and '~'.
func ProofOrCounterexample(f Formula) (*Proof, Model) {
	for _, m := range AllModels(sortedVariables(f)) {
		if !Evaluate(f, m) {
			return nil, m
		}
	}
	proof := ProveTautology(f, Model{})
	return &proof, nil
}

// EncodeAsFormula encodes an inference rule as its universal implication: the
// rule's assumptions folded as nested antecedents of the conclusion.
//
// Example:
//
//	EncodeAsFormula(MP)  // (p->((p->q)->q))
//	EncodeAsFormula(I0)  // (p->p)
func EncodeAsFormula(rule InferenceRule) Formula {
	encoded := rule.Conclusion
	for i := len(rule.Assumptions) - 1; i >= 0; i-- {
		encoded = implies(rule.Assumptions[i], encoded)
	}
	return encoded
}

// ProveSoundInference proves the given sound inference rule, whose operators
// may only be '->' and '~', in the axiomatic system: the rule's encoding as
// a formula is proved as a tautology, then each assumption is introduced and
// discharged by modus ponens.
func ProveSoundInference(rule InferenceRule) Proof {
	encoded := EncodeAsFormula(rule)
	if !IsTautology(encoded) {
		panic(fmt.Sprintf("prop: ProveSoundInference: %s is not sound", rule))
	}
	base := ProveTautology(encoded, Model{})

	lines := make([]Line, 0, len(base.Lines)+2*len(rule.Assumptions))
	lines = append(lines, base.Lines...)
	current := encoded
	currentIdx := len(lines) - 1
	for _, assumption := range rule.Assumptions {
		lines = append(lines, NewAssumptionLine(assumption))
		assumptionIdx := len(lines) - 1
		current = current.(*Binary).Right
		lines = append(lines, NewDerivedLine(current, MP, []int{assumptionIdx, currentIdx}))
		currentIdx = len(lines) - 1
	}
	return NewProof(rule, AxiomaticSystem, lines)
}

// ModelOrInconsistency either returns a model satisfying all the given
// formulas or proves the fixed contradiction ~(p->p) from them in the
// axiomatic system. Exactly one of the results is non-nil. The formulas may
// only use the operators '->' and '~'.
func ModelOrInconsistency(formulas []Formula) (Model, *Proof) {
	rule := NewInferenceRule(formulas, MustParse("~(p->p)"))
	if IsSoundInference(rule) {
		proof := ProveSoundInference(rule)
		return nil, &proof
	}
	variables := make(map[string]bool)
	for _, f := range formulas {
		collectVariables(f, variables)
	}
	var names []string
	for name := range variables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, m := range AllModels(names) {
		satisfiesAll := true
		for _, f := range formulas {
			if !Evaluate(f, m) {
				satisfiesAll = false
				break
			}
		}
		if satisfiesAll {
			return m, nil
		}
	}
	panic("prop: ModelOrInconsistency: unreachable")
}
