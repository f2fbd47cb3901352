package prop

import "testing"

// modusPonensProof proves [p, (p->q)] ==> q with a single MP application.
func modusPonensProof(t *testing.T) Proof {
	t.Helper()
	return NewProof(
		rule(t, []string{"p", "(p->q)"}, "q"),
		[]InferenceRule{MP},
		[]Line{
			NewAssumptionLine(MustParse("p")),
			NewAssumptionLine(MustParse("(p->q)")),
			NewDerivedLine(MustParse("q"), MP, []int{0, 1}),
		})
}

func TestProofIsValid(t *testing.T) {
	proof := modusPonensProof(t)
	for i := range proof.Lines {
		if !proof.IsLineValid(i) {
			t.Errorf("line %d invalid: %s", i, proof.Lines[i])
		}
	}
	if !proof.IsValid() {
		t.Errorf("proof invalid, want valid:\n%s", proof)
	}
}

func TestProofInvalidAssumption(t *testing.T) {
	proof := NewProof(
		rule(t, []string{"p"}, "q"),
		[]InferenceRule{MP},
		[]Line{
			NewAssumptionLine(MustParse("p")),
			NewAssumptionLine(MustParse("(p->q)")),
			NewDerivedLine(MustParse("q"), MP, []int{0, 1}),
		})
	if proof.IsLineValid(1) {
		t.Errorf("line citing an undeclared assumption reported valid")
	}
	if proof.IsValid() {
		t.Errorf("proof with an undeclared assumption reported valid")
	}
}

func TestProofInvalidRuleUse(t *testing.T) {
	// The conclusion does not match the MP specialization of the cited lines.
	proof := NewProof(
		rule(t, []string{"p", "(p->q)"}, "r"),
		[]InferenceRule{MP},
		[]Line{
			NewAssumptionLine(MustParse("p")),
			NewAssumptionLine(MustParse("(p->q)")),
			NewDerivedLine(MustParse("r"), MP, []int{0, 1}),
		})
	if proof.IsLineValid(2) {
		t.Errorf("line not embodying its cited rule reported valid")
	}
	if proof.IsValid() {
		t.Errorf("proof with a bad rule use reported valid")
	}
}

func TestProofDisallowedRule(t *testing.T) {
	proof := NewProof(
		rule(t, []string{"p", "(p->q)"}, "q"),
		[]InferenceRule{I0},
		[]Line{
			NewAssumptionLine(MustParse("p")),
			NewAssumptionLine(MustParse("(p->q)")),
			NewDerivedLine(MustParse("q"), MP, []int{0, 1}),
		})
	if proof.IsLineValid(2) {
		t.Errorf("line citing a disallowed rule reported valid")
	}
}

func TestProofForwardCitation(t *testing.T) {
	proof := NewProof(
		rule(t, []string{"(p->q)"}, "q"),
		[]InferenceRule{MP},
		[]Line{
			NewDerivedLine(MustParse("q"), MP, []int{1, 2}),
			NewAssumptionLine(MustParse("p")),
			NewAssumptionLine(MustParse("(p->q)")),
		})
	if proof.IsLineValid(0) {
		t.Errorf("line citing later lines reported valid")
	}
}

func TestProofWrongConclusion(t *testing.T) {
	proof := NewProof(
		rule(t, []string{"p", "(p->q)"}, "(p&q)"),
		[]InferenceRule{MP},
		[]Line{
			NewAssumptionLine(MustParse("p")),
			NewAssumptionLine(MustParse("(p->q)")),
			NewDerivedLine(MustParse("q"), MP, []int{0, 1}),
		})
	if proof.IsValid() {
		t.Errorf("proof whose last line differs from the conclusion reported valid")
	}
}

func TestProofEmpty(t *testing.T) {
	proof := NewProof(rule(t, nil, "(p->p)"), []InferenceRule{I0}, nil)
	if proof.IsValid() {
		t.Errorf("empty proof reported valid")
	}
}

func TestRuleForLine(t *testing.T) {
	proof := modusPonensProof(t)
	if got := proof.RuleForLine(0); got != nil {
		t.Errorf("RuleForLine(assumption) = %s, want nil", got)
	}
	got := proof.RuleForLine(2)
	want := rule(t, []string{"p", "(p->q)"}, "q")
	if got == nil || !got.Equal(want) {
		t.Errorf("RuleForLine(2) = %v, want %s", got, want)
	}
}

func TestNewProofDeduplicatesRules(t *testing.T) {
	proof := NewProof(rule(t, nil, "(p->p)"), []InferenceRule{MP, I0, MP}, nil)
	if len(proof.Rules) != 2 {
		t.Errorf("got %d rules, want 2", len(proof.Rules))
	}
}

func TestProveSpecialization(t *testing.T) {
	specialized := ProveSpecialization(modusPonensProof(t),
		rule(t, []string{"~x", "(~x->(y|z))"}, "(y|z)"))
	if !specialized.IsValid() {
		t.Errorf("specialized proof invalid:\n%s", specialized)
	}
	if got, want := specialized.Lines[2].Formula.String(), "(y|z)"; got != want {
		t.Errorf("specialized conclusion = %s, want %s", got, want)
	}
}
