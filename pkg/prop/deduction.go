package prop

import "fmt"

// ProveCorollary derives a proof of consequent from a proof of some
// antecedent, using a conditional rule whose conclusion specializes to
// (antecedent -> consequent). The conditional is instantiated on a new line
// and discharged by modus ponens against the antecedent proof's last line.
//
// Preconditions (checked by panic): antecedentProof is valid, conditional has
// no assumptions, and (antecedent -> consequent) is a specialization of
// conditional's conclusion.
func ProveCorollary(antecedentProof Proof, consequent Formula, conditional InferenceRule) Proof {
	if !antecedentProof.IsValid() {
		panic("prop: ProveCorollary: antecedent proof is not valid")
	}
	if len(conditional.Assumptions) != 0 {
		panic("prop: ProveCorollary: conditional rule must have no assumptions")
	}
	wanted := implies(antecedentProof.Statement.Conclusion, consequent)
	m := FormulaSpecializationMap(conditional.Conclusion, wanted)
	if m == nil {
		panic(fmt.Sprintf("prop: ProveCorollary: %s does not specialize to %s",
			conditional.Conclusion, wanted))
	}

	n := len(antecedentProof.Lines)
	lines := make([]Line, 0, n+2)
	lines = append(lines, antecedentProof.Lines...)
	lines = append(lines, NewDerivedLine(wanted, conditional, nil))
	lines = append(lines, NewDerivedLine(consequent, MP, []int{n - 1, n}))

	statement := NewInferenceRule(antecedentProof.Statement.Assumptions, consequent)
	rules := unionRules(antecedentProof.Rules, []InferenceRule{MP, conditional})
	return NewProof(statement, rules, lines)
}

// CombineProofs merges two proofs sharing the same assumptions and allowed
// rules into a proof of consequent, using a double-conditional rule whose
// conclusion specializes to (A1 -> (A2 -> consequent)) where A1 and A2 are
// the two proofs' conclusions. The double conditional is discharged by two
// applications of modus ponens.
//
// Preconditions (checked by panic): both proofs are valid, they share
// assumptions and rules, doubleConditional has no assumptions, and its
// conclusion specializes as described.
func CombineProofs(antecedent1Proof, antecedent2Proof Proof, consequent Formula,
	doubleConditional InferenceRule) Proof {
	if !antecedent1Proof.IsValid() || !antecedent2Proof.IsValid() {
		panic("prop: CombineProofs: input proof is not valid")
	}
	if !sameRuleSet(antecedent1Proof.Rules, antecedent2Proof.Rules) {
		panic("prop: CombineProofs: proofs use different rule sets")
	}
	sameAssumptions := NewInferenceRule(antecedent1Proof.Statement.Assumptions, consequent).
		Equal(NewInferenceRule(antecedent2Proof.Statement.Assumptions, consequent))
	if !sameAssumptions {
		panic("prop: CombineProofs: proofs have different assumptions")
	}
	if len(doubleConditional.Assumptions) != 0 {
		panic("prop: CombineProofs: double conditional rule must have no assumptions")
	}
	wanted := implies(antecedent1Proof.Statement.Conclusion,
		implies(antecedent2Proof.Statement.Conclusion, consequent))
	m := FormulaSpecializationMap(doubleConditional.Conclusion, wanted)
	if m == nil {
		panic(fmt.Sprintf("prop: CombineProofs: %s does not specialize to %s",
			doubleConditional.Conclusion, wanted))
	}

	n1 := len(antecedent1Proof.Lines)
	lines := make([]Line, 0, n1+len(antecedent2Proof.Lines)+3)
	lines = append(lines, antecedent1Proof.Lines...)
	lines = append(lines, NewDerivedLine(wanted, doubleConditional, nil))
	for _, line := range antecedent2Proof.Lines {
		if line.IsAssumption() {
			lines = append(lines, line)
			continue
		}
		shifted := make([]int, len(line.Assumptions))
		for k, cited := range line.Assumptions {
			shifted[k] = cited + n1 + 1
		}
		lines = append(lines, NewDerivedLine(line.Formula, *line.Rule, shifted))
	}
	lines = append(lines, NewDerivedLine(implies(antecedent2Proof.Statement.Conclusion, consequent),
		MP, []int{n1 - 1, n1}))
	lines = append(lines, NewDerivedLine(consequent, MP,
		[]int{len(lines) - 2, len(lines) - 1}))

	statement := NewInferenceRule(antecedent1Proof.Statement.Assumptions, consequent)
	rules := unionRules(antecedent1Proof.Rules, []InferenceRule{MP, doubleConditional})
	return NewProof(statement, rules, lines)
}

// RemoveAssumption applies the deduction theorem constructively: given a
// valid proof of a conclusion psi from assumptions ending in phi, it returns
// a proof of (phi -> psi) from the remaining assumptions. Every derived line
// of the input must be justified by modus ponens or by an assumptionless
// rule; the output additionally uses MP, I0, I1, and D.
//
// Preconditions (checked by panic): proof is valid, has at least one
// assumption, and every allowed rule is MP or assumptionless.
func RemoveAssumption(proof Proof) Proof {
	if !proof.IsValid() {
		panic("prop: RemoveAssumption: proof is not valid")
	}
	if len(proof.Statement.Assumptions) == 0 {
		panic("prop: RemoveAssumption: proof has no assumptions")
	}
	for _, r := range proof.Rules {
		if len(r.Assumptions) != 0 && !r.Equal(MP) {
			panic(fmt.Sprintf("prop: RemoveAssumption: rule %s has assumptions and is not MP", r))
		}
	}

	phi := proof.Statement.Assumptions[len(proof.Statement.Assumptions)-1]
	var lines []Line
	// lineMap[i] is the index of the new line proving (phi -> psi_i), where
	// psi_i is the formula of original line i.
	lineMap := make([]int, len(proof.Lines))

	for i, line := range proof.Lines {
		psi := line.Formula
		switch {
		case psi.Equal(phi):
			lines = append(lines, NewDerivedLine(implies(phi, phi), I0, nil))
			lineMap[i] = len(lines) - 1

		case line.IsAssumption() || len(line.Assumptions) == 0:
			// psi stands on its own, so weaken it with I1.
			if line.IsAssumption() {
				lines = append(lines, line)
			} else {
				lines = append(lines, NewDerivedLine(psi, *line.Rule, nil))
			}
			base := len(lines) - 1
			lines = append(lines, NewDerivedLine(implies(psi, implies(phi, psi)), I1, nil))
			lines = append(lines, NewDerivedLine(implies(phi, psi), MP, []int{base, base + 1}))
			lineMap[i] = base + 2

		default:
			// psi follows by MP from alpha and (alpha -> psi); route the
			// deduction through D.
			alpha := proof.Lines[line.Assumptions[0]].Formula
			dInstance := implies(
				implies(phi, implies(alpha, psi)),
				implies(implies(phi, alpha), implies(phi, psi)))
			lines = append(lines, NewDerivedLine(dInstance, D, nil))
			dIdx := len(lines) - 1
			lines = append(lines, NewDerivedLine(implies(implies(phi, alpha), implies(phi, psi)),
				MP, []int{lineMap[line.Assumptions[1]], dIdx}))
			lines = append(lines, NewDerivedLine(implies(phi, psi),
				MP, []int{lineMap[line.Assumptions[0]], dIdx + 1}))
			lineMap[i] = dIdx + 2
		}
	}

	remaining := proof.Statement.Assumptions[:len(proof.Statement.Assumptions)-1]
	statement := NewInferenceRule(remaining, implies(phi, proof.Statement.Conclusion))
	rules := unionRules(proof.Rules, []InferenceRule{MP, I0, I1, D})
	return NewProof(statement, rules, lines)
}

// ProofFromInconsistency combines a proof of some formula with a proof of its
// negation, over the same assumptions and rules, into a proof of an arbitrary
// conclusion via the explosion axiom I2.
//
// Preconditions (checked by panic): both proofs are valid, share assumptions
// and rules, and proofOfNegation concludes the negation of proofOfAffirmation's
// conclusion.
func ProofFromInconsistency(proofOfAffirmation, proofOfNegation Proof, conclusion Formula) Proof {
	if !proofOfAffirmation.IsValid() || !proofOfNegation.IsValid() {
		panic("prop: ProofFromInconsistency: input proof is not valid")
	}
	if !proofOfNegation.Statement.Conclusion.Equal(not(proofOfAffirmation.Statement.Conclusion)) {
		panic("prop: ProofFromInconsistency: proofs are not of a formula and its negation")
	}
	return CombineProofs(proofOfNegation, proofOfAffirmation, conclusion, I2)
}

// ProveByContradiction converts a valid proof of the fixed contradiction
// ~(p->p) from assumptions ending in a negation ~phi into a proof of phi
// from the remaining assumptions. The output additionally uses MP, I0, I1,
// D, and N.
//
// Preconditions (checked by panic): proof is valid, concludes ~(p->p), its
// last assumption is a negation, and every allowed rule is MP or
// assumptionless.
func ProveByContradiction(proof Proof) Proof {
	if !proof.IsValid() {
		panic("prop: ProveByContradiction: proof is not valid")
	}
	if !proof.Statement.Conclusion.Equal(MustParse("~(p->p)")) {
		panic("prop: ProveByContradiction: proof does not conclude ~(p->p)")
	}
	last := proof.Statement.Assumptions[len(proof.Statement.Assumptions)-1]
	negation, ok := last.(*Unary)
	if !ok {
		panic("prop: ProveByContradiction: last assumption is not a negation")
	}
	phi := negation.Operand

	removed := RemoveAssumption(proof) // proves (~phi -> ~(p->p))
	selfImplication := MustParse("(p->p)")
	goal := implies(selfImplication, phi)

	lines := make([]Line, 0, len(removed.Lines)+4)
	lines = append(lines, removed.Lines...)
	wIdx := len(lines) - 1
	// N with p := (p->p) and q := phi turns the contrapositive around.
	lines = append(lines, NewDerivedLine(implies(removed.Statement.Conclusion, goal), N, nil))
	lines = append(lines, NewDerivedLine(goal, MP, []int{wIdx, wIdx + 1}))
	lines = append(lines, NewDerivedLine(selfImplication, I0, nil))
	lines = append(lines, NewDerivedLine(phi, MP, []int{wIdx + 3, wIdx + 2}))

	remaining := proof.Statement.Assumptions[:len(proof.Statement.Assumptions)-1]
	statement := NewInferenceRule(remaining, phi)
	rules := unionRules(proof.Rules, []InferenceRule{MP, I0, I1, D, N})
	return NewProof(statement, rules, lines)
}
