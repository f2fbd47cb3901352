package prop

import "fmt"

// ProveSpecialization converts a valid proof of an inference rule into a
// proof of the given specialization of that rule, by rewriting every line's
// formula through the unique map taking the proof's statement to the
// specialization. Line structure and citations are preserved.
//
// Preconditions (programming errors, checked by panic): proof is valid and
// specialization is a specialization of proof.Statement.
func ProveSpecialization(proof Proof, specialization InferenceRule) Proof {
	if !proof.IsValid() {
		panic("prop: ProveSpecialization: proof is not valid")
	}
	m := proof.Statement.SpecializationMap(specialization)
	if m == nil {
		panic(fmt.Sprintf("prop: ProveSpecialization: %s is not a specialization of %s",
			specialization, proof.Statement))
	}
	lines := make([]Line, len(proof.Lines))
	for i, line := range proof.Lines {
		if line.IsAssumption() {
			lines[i] = NewAssumptionLine(SubstituteVariables(line.Formula, m))
		} else {
			lines[i] = NewDerivedLine(SubstituteVariables(line.Formula, m), *line.Rule, line.Assumptions)
		}
	}
	return NewProof(specialization, proof.Rules, lines)
}

// InlineProofOnce replaces the single use of a "lemma" rule at the given
// line of mainProof with the lemma's own proof, specialized to that line's
// rule instance and spliced in place. Citations in later lines are shifted
// by the net change in line count. The allowed rules of the result are the
// union of both proofs' rules; the lemma rule is used one time less than in
// mainProof.
//
// Preconditions (checked by panic): the cited rule of the given line equals
// lemmaProof.Statement, and lemmaProof is valid.
func InlineProofOnce(mainProof Proof, lineNumber int, lemmaProof Proof) Proof {
	line := mainProof.Lines[lineNumber]
	if line.IsAssumption() || !line.Rule.Equal(lemmaProof.Statement) {
		panic("prop: InlineProofOnce: line does not cite the lemma rule")
	}
	if !lemmaProof.IsValid() {
		panic("prop: InlineProofOnce: lemma proof is not valid")
	}

	specialized := ProveSpecialization(lemmaProof, *mainProof.RuleForLine(lineNumber))

	lines := make([]Line, 0, len(mainProof.Lines)+len(specialized.Lines))
	lines = append(lines, mainProof.Lines[:lineNumber]...)

	// Splice the specialized lemma lines in place of the replaced line.
	// Each lemma assumption line carries a formula already established by
	// one of the earlier main lines (a cited line or a proof assumption):
	// when an earlier derived line proves it, reuse that line's
	// justification, whose citations are below lineNumber and stay valid.
	for _, lemmaLine := range specialized.Lines {
		if lemmaLine.IsAssumption() {
			replaced := false
			for j := lineNumber - 1; j >= 0; j-- {
				earlier := mainProof.Lines[j]
				if !earlier.IsAssumption() && earlier.Formula.Equal(lemmaLine.Formula) {
					lines = append(lines, earlier)
					replaced = true
					break
				}
			}
			if !replaced {
				lines = append(lines, lemmaLine)
			}
			continue
		}
		shifted := make([]int, len(lemmaLine.Assumptions))
		for k, cited := range lemmaLine.Assumptions {
			shifted[k] = cited + lineNumber
		}
		lines = append(lines, NewDerivedLine(lemmaLine.Formula, *lemmaLine.Rule, shifted))
	}

	added := len(specialized.Lines) - 1
	for i := lineNumber + 1; i < len(mainProof.Lines); i++ {
		mainLine := mainProof.Lines[i]
		if mainLine.IsAssumption() {
			lines = append(lines, mainLine)
			continue
		}
		shifted := make([]int, len(mainLine.Assumptions))
		for k, cited := range mainLine.Assumptions {
			if cited >= lineNumber {
				shifted[k] = cited + added
			} else {
				shifted[k] = cited
			}
		}
		lines = append(lines, NewDerivedLine(mainLine.Formula, *mainLine.Rule, shifted))
	}

	return NewProof(mainProof.Statement, unionRules(mainProof.Rules, lemmaProof.Rules), lines)
}

// InlineProof eliminates every use of the "lemma" rule proved by lemmaProof
// from mainProof, splicing in a specialized copy of the lemma's proof for
// each use. The lemma rule is removed from the allowed rule set of the
// result. If mainProof never uses the lemma rule it is returned unchanged.
func InlineProof(mainProof, lemmaProof Proof) Proof {
	result := mainProof
	inlined := false
	for {
		lineNumber := -1
		for i, line := range result.Lines {
			if !line.IsAssumption() && line.Rule.Equal(lemmaProof.Statement) {
				lineNumber = i
				break
			}
		}
		if lineNumber < 0 {
			break
		}
		result = InlineProofOnce(result, lineNumber, lemmaProof)
		inlined = true
	}
	if !inlined {
		return mainProof
	}
	return NewProof(result.Statement, removeRule(result.Rules, lemmaProof.Statement), result.Lines)
}
