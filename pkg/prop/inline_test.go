package prop

import "testing"

// doubleNegationLemma proves [p] ==> ~~p from MP and NN.
func doubleNegationLemma(t *testing.T) Proof {
	t.Helper()
	return NewProof(
		rule(t, []string{"p"}, "~~p"),
		[]InferenceRule{MP, NN},
		[]Line{
			NewAssumptionLine(MustParse("p")),
			NewDerivedLine(MustParse("(p->~~p)"), NN, nil),
			NewDerivedLine(MustParse("~~p"), MP, []int{0, 1}),
		})
}

func TestInlineProofOnce(t *testing.T) {
	lemma := doubleNegationLemma(t)
	main := NewProof(
		rule(t, []string{"p"}, "~~~~p"),
		[]InferenceRule{lemma.Statement},
		[]Line{
			NewAssumptionLine(MustParse("p")),
			NewDerivedLine(MustParse("~~p"), lemma.Statement, []int{0}),
			NewDerivedLine(MustParse("~~~~p"), lemma.Statement, []int{1}),
		})
	if !main.IsValid() {
		t.Fatalf("main proof invalid:\n%s", main)
	}

	inlined := InlineProofOnce(main, 1, lemma)
	if !inlined.IsValid() {
		t.Fatalf("proof after one inlining invalid:\n%s", inlined)
	}
	if !inlined.Statement.Equal(main.Statement) {
		t.Errorf("statement = %s, want %s", inlined.Statement, main.Statement)
	}
	if !inlined.HasRule(lemma.Statement) {
		t.Errorf("lemma rule dropped after a single inlining, want still allowed")
	}
}

func TestInlineProof(t *testing.T) {
	lemma := doubleNegationLemma(t)
	main := NewProof(
		rule(t, []string{"p"}, "~~~~p"),
		[]InferenceRule{lemma.Statement},
		[]Line{
			NewAssumptionLine(MustParse("p")),
			NewDerivedLine(MustParse("~~p"), lemma.Statement, []int{0}),
			NewDerivedLine(MustParse("~~~~p"), lemma.Statement, []int{1}),
		})

	inlined := InlineProof(main, lemma)
	if !inlined.IsValid() {
		t.Fatalf("inlined proof invalid:\n%s", inlined)
	}
	if !inlined.Statement.Equal(main.Statement) {
		t.Errorf("statement = %s, want %s", inlined.Statement, main.Statement)
	}
	if inlined.HasRule(lemma.Statement) {
		t.Errorf("lemma rule still allowed after full inlining")
	}
	if !inlined.HasRule(MP) || !inlined.HasRule(NN) {
		t.Errorf("rules = %v, want MP and NN", inlined.Rules)
	}
}

func TestInlineProofNoUses(t *testing.T) {
	lemma := doubleNegationLemma(t)
	main := modusPonensProof(t)
	inlined := InlineProof(main, lemma)
	if !inlined.IsValid() {
		t.Fatalf("untouched proof invalid:\n%s", inlined)
	}
	if len(inlined.Lines) != len(main.Lines) {
		t.Errorf("got %d lines, want %d", len(inlined.Lines), len(main.Lines))
	}
	if !inlined.HasRule(MP) {
		t.Errorf("rules changed for a proof that never uses the lemma")
	}
}
