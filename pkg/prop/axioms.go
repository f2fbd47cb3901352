package prop

// The axiomatic system for the tautology prover: modus ponens plus eight
// assumptionless axiom schemas over implication and negation. Every tautology
// whose operators are limited to '->' and '~' is provable from these via
// ProveTautology.
var (
	// MP is modus ponens: from p and (p->q), infer q.
	MP = NewInferenceRule([]Formula{MustParse("p"), MustParse("(p->q)")}, MustParse("q"))

	// I0 is self-implication.
	I0 = NewInferenceRule(nil, MustParse("(p->p)"))

	// I1 weakens a formula with an arbitrary antecedent.
	I1 = NewInferenceRule(nil, MustParse("(q->(p->q))"))

	// D distributes an antecedent over an implication.
	D = NewInferenceRule(nil, MustParse("((p->(q->r))->((p->q)->(p->r)))"))

	// I2 derives anything from a contradiction.
	I2 = NewInferenceRule(nil, MustParse("(~p->(p->q))"))

	// N is the converse contraposition axiom.
	N = NewInferenceRule(nil, MustParse("((~q->~p)->(p->q))"))

	// NI negates an implication from its true antecedent and false consequent.
	NI = NewInferenceRule(nil, MustParse("(p->(~q->~(p->q)))"))

	// NN introduces double negation.
	NN = NewInferenceRule(nil, MustParse("(p->~~p)"))

	// R resolves a case split on the antecedent.
	R = NewInferenceRule(nil, MustParse("((q->p)->((~q->p)->p))"))
)

// AxiomaticSystem is the full rule set used by the tautology prover.
var AxiomaticSystem = []InferenceRule{MP, I0, I1, D, I2, N, NI, NN, R}
