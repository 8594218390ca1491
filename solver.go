package groebner

import (
	"fmt"
	"math/big"
)

// RootFinder locates all roots of a univariate polynomial over F. It is an
// injected collaborator: the solver pipeline is parameterized by it and
// never implements root-finding itself beyond the rational-roots instance
// below.
type RootFinder[F Field[F]] func(f *Polynomial[F], v Variable) ([]F, error)

// CharacteristicEquation computes the characteristic equation of v in the
// system gens: a Lex Gröbner basis under a permutation placing every other
// variable before v, then the first basis element whose only variable is
// v, if any. ok is false if no such element exists.
func CharacteristicEquation[F Field[F]](gens []*Polynomial[F], allVars []Variable, v Variable) (poly *Polynomial[F], ok bool, err error) {
	perm := make([]Variable, 0, len(allVars))
	for _, other := range allVars {
		if other != v {
			perm = append(perm, other)
		}
	}
	perm = append(perm, v)

	basis, err := Groebner(gens, NewLexOrder(perm))
	if err != nil {
		return nil, false, err
	}
	for _, g := range basis {
		vars := g.Variables()
		if len(vars) == 1 && vars[0] == v {
			return g, true, nil
		}
	}
	return nil, false, nil
}

// solveOutcomeKind is the recursive solver's three-way result: a tagged
// variant instead of a string-tagged alternative.
type solveOutcomeKind int

const (
	outcomeAssignments solveOutcomeKind = iota
	outcomeNoSolutions
	outcomeInfinite
)

type solveOutcome[F Field[F]] struct {
	kind        solveOutcomeKind
	assignments []map[Variable]F
}

// solveRecursive implements the recursive back-substitution solver R(H,
// rootFinder): split H into constants, univariate polynomials, and the
// rest, find the roots of one univariate polynomial, substitute each root
// into the remainder, and recurse. An H with no nonzero polynomial left
// yields a single empty assignment.
func solveRecursive[F Field[F]](h []*Polynomial[F], rootFinder RootFinder[F]) (solveOutcome[F], error) {
	var constants, univariate, rest []*Polynomial[F]
	univariateVar := map[int]Variable{}

	for _, p := range h {
		if p.IsZero() {
			continue
		}
		vars := p.Variables()
		switch len(vars) {
		case 0:
			constants = append(constants, p)
		case 1:
			univariateVar[len(univariate)] = vars[0]
			univariate = append(univariate, p)
		default:
			rest = append(rest, p)
		}
	}

	if len(constants) > 0 {
		return solveOutcome[F]{kind: outcomeNoSolutions}, nil
	}
	if len(univariate) == 0 && len(rest) == 0 {
		// Nothing left to satisfy: one empty assignment, which the callers
		// extend with the roots they substituted.
		return solveOutcome[F]{kind: outcomeAssignments, assignments: []map[Variable]F{{}}}, nil
	}
	if len(univariate) == 0 {
		return solveOutcome[F]{kind: outcomeInfinite}, nil
	}

	f := univariate[0]
	v := univariateVar[0]
	roots, err := rootFinder(f, v)
	if err != nil {
		return solveOutcome[F]{}, err
	}
	if len(roots) == 0 {
		return solveOutcome[F]{kind: outcomeNoSolutions}, nil
	}

	remainder := make([]*Polynomial[F], 0, len(univariate)-1+len(rest))
	remainder = append(remainder, univariate[1:]...)
	remainder = append(remainder, rest...)

	var assignments []map[Variable]F
	for _, alpha := range roots {
		substituted := make([]*Polynomial[F], 0, len(remainder))
		for _, p := range remainder {
			sp, serr := p.Substitute(v, alpha)
			if serr != nil {
				// p does not contain v; substitution is a no-op, so keep
				// p unchanged rather than propagating the error.
				substituted = append(substituted, p)
				continue
			}
			if !sp.IsZero() {
				substituted = append(substituted, sp)
			}
		}

		sub, err := solveRecursive(substituted, rootFinder)
		if err != nil {
			return solveOutcome[F]{}, err
		}
		switch sub.kind {
		case outcomeNoSolutions:
			continue
		case outcomeInfinite:
			return sub, nil
		default:
			for _, partial := range sub.assignments {
				extended := make(map[Variable]F, len(partial)+1)
				for k, val := range partial {
					extended[k] = val
				}
				extended[v] = alpha
				assignments = append(assignments, extended)
			}
		}
	}

	if assignments == nil {
		return solveOutcome[F]{kind: outcomeNoSolutions}, nil
	}
	return solveOutcome[F]{kind: outcomeAssignments, assignments: assignments}, nil
}

// SolveSystem computes a Lex Gröbner basis of gens under the canonical
// permutation of vars, then triangulates via the recursive solver. If the
// basis is {1} the variety is empty in every field
// extension and SolveSystem fails with ErrNoSolutionsInExtension. A
// positive-dimensional variety during back-substitution surfaces as
// ErrInfiniteSolutions. Otherwise the result is the list of assignments
// satisfying the system, one map per solution, covering every variable that
// occurs in the basis; a variable of vars that occurs in no basis element is
// not assigned.
func SolveSystem[F Field[F]](gens []*Polynomial[F], vars []Variable, rootFinder RootFinder[F]) ([]map[Variable]F, error) {
	order := NewLexOrder(vars)
	basis, err := Groebner(gens, order)
	if err != nil {
		return nil, err
	}

	var zero F
	one := zero.FromInt64(1)
	if len(basis) == 1 && basis[0].EqualScalar(one) {
		return nil, ErrNoSolutionsInExtension
	}

	outcome, err := solveRecursive(basis, rootFinder)
	if err != nil {
		return nil, err
	}
	switch outcome.kind {
	case outcomeInfinite:
		return nil, ErrInfiniteSolutions
	case outcomeNoSolutions:
		return []map[Variable]F{}, nil
	default:
		return outcome.assignments, nil
	}
}

// divisors enumerates the positive divisors of |n|. divisors(0) = {0}.
func divisors(n *big.Int) []*big.Int {
	if n.Sign() == 0 {
		return []*big.Int{big.NewInt(0)}
	}
	abs := new(big.Int).Abs(n)
	var out []*big.Int
	for i := big.NewInt(1); i.Cmp(abs) <= 0; i.Add(i, big.NewInt(1)) {
		if new(big.Int).Mod(abs, i).Sign() == 0 {
			out = append(out, new(big.Int).Set(i))
		}
	}
	return out
}

// RationalRootFinder finds every rational root of a univariate polynomial
// f over a RationalField by the rational-roots theorem: clear
// denominators to get an integer-coefficient polynomial g, then
// evaluate every candidate p/q and -p/q, for p a divisor of the constant
// term's numerator and q a divisor of the leading coefficient's
// numerator (plus the candidate 0), returning those where g evaluates to
// zero.
func RationalRootFinder[F RationalField[F]](f *Polynomial[F], v Variable) ([]F, error) {
	var zero F
	if f.IsZero() {
		return nil, fmt.Errorf("groebner: RationalRootFinder: zero polynomial has every root")
	}

	order := NewLexOrder([]Variable{v})
	denomLCM := big.NewInt(1)
	for _, t := range f.Terms() {
		denomLCM = lcmBigInt(denomLCM, t.Coeff.Denominator())
	}

	// Clear denominators: g = f * denomLCM has integer coefficients
	// (numerator/denominator == 1 after reduction).
	scale := zero.FromBigRat(new(big.Rat).SetInt(denomLCM))
	scaledTerms := make([]Term[F], 0, len(f.Terms()))
	for _, t := range f.Terms() {
		scaledTerms = append(scaledTerms, Term[F]{Monomial: t.Monomial, Coeff: t.Coeff.Mul(scale)})
	}
	g := FromTerms(scaledTerms...)

	_, leadCoef := g.leadingTerm(order)
	constTerm := zero
	for _, t := range scaledTerms {
		if t.Monomial.IsIdentity() {
			constTerm = t.Coeff
			break
		}
	}

	pCandidates := divisors(constTerm.Numerator())
	qCandidates := divisors(leadCoef.Numerator())

	seen := map[string]bool{}
	var roots []F
	tryRoot := func(num, den *big.Int) {
		if den.Sign() == 0 {
			return
		}
		rat := new(big.Rat).SetFrac(num, den)
		key := rat.RatString()
		if seen[key] {
			return
		}
		seen[key] = true
		val := zero.FromBigRat(rat)
		res, err := g.Evaluate(map[Variable]F{v: val})
		if err != nil {
			return
		}
		if res.IsZero() {
			roots = append(roots, val)
		}
	}

	for _, p := range pCandidates {
		for _, q := range qCandidates {
			tryRoot(p, q)
			tryRoot(new(big.Int).Neg(p), q)
		}
	}
	tryRoot(big.NewInt(0), big.NewInt(1))

	return roots, nil
}

func lcmBigInt(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return big.NewInt(0)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
	out := new(big.Int).Div(new(big.Int).Abs(a), g)
	out.Mul(out, new(big.Int).Abs(b))
	return out
}

var _ RootFinder[Rational] = RationalRootFinder[Rational]
