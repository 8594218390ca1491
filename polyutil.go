package groebner

import "fmt"

// monicOverGradedLex scales p to a monic leading coefficient under a
// Graded Lex order over p's own variables — the normalization convention
// applied to the results of GcdPoly and LCMPoly.
func monicOverGradedLex[F Field[F]](p *Polynomial[F]) (*Polynomial[F], error) {
	if p.IsZero() {
		return p, nil
	}
	order := NewGradedLexOrder(p.Variables())
	lc := p.LeadingCoefficient(order)
	inv, err := lc.FromInt64(1).Div(lc)
	if err != nil {
		return nil, err
	}
	return p.MulScalar(inv), nil
}

// LCMPoly computes the least common multiple of f and g by intersecting
// the principal ideals <f> and <g> via the auxiliary-variable construction:
// the single remaining generator of <f> ∩ <g> is the lcm, normalized to
// monic under Graded Lex.
func LCMPoly[F Field[F]](f, g *Polynomial[F]) (*Polynomial[F], error) {
	fi := NewIdeal(f)
	gi := NewIdeal(g)
	inter, err := fi.Intersect(gi)
	if err != nil {
		return nil, err
	}
	basis, err := inter.GroebnerBasis()
	if err != nil {
		return nil, err
	}
	if len(basis) != 1 {
		return nil, fmt.Errorf("groebner: principal ideal intersection produced %d generators, want 1", len(basis))
	}
	return monicOverGradedLex(basis[0])
}

// GcdPoly computes gcd(f, g) from the identity f*g = gcd(f,g) * lcm(f,g):
// it divides f*g by lcm(f,g) using the reducer, and the quotient is the
// gcd, normalized to monic under Graded Lex over the result's variables.
func GcdPoly[F Field[F]](f, g *Polynomial[F]) (*Polynomial[F], error) {
	l, err := LCMPoly(f, g)
	if err != nil {
		return nil, err
	}
	product := f.Mul(g)
	if l.IsZero() {
		return monicOverGradedLex(product)
	}
	order := NewGradedLexOrder(sortVariables(append(product.Variables(), l.Variables()...)))
	q, _, err := Reduce(product, []*Polynomial[F]{l}, order)
	if err != nil {
		return nil, err
	}
	return monicOverGradedLex(q[0])
}

// GcdAll folds GcdPoly pairwise across ps, with a final monic
// normalization.
func GcdAll[F Field[F]](ps ...*Polynomial[F]) (*Polynomial[F], error) {
	if len(ps) == 0 {
		return nil, fmt.Errorf("groebner: GcdAll requires at least one polynomial")
	}
	acc := ps[0]
	for _, p := range ps[1:] {
		var err error
		acc, err = GcdPoly(acc, p)
		if err != nil {
			return nil, err
		}
	}
	return monicOverGradedLex(acc)
}

// LCMAll folds LCMPoly pairwise across ps, with a final monic
// normalization.
func LCMAll[F Field[F]](ps ...*Polynomial[F]) (*Polynomial[F], error) {
	if len(ps) == 0 {
		return nil, fmt.Errorf("groebner: LCMAll requires at least one polynomial")
	}
	acc := ps[0]
	for _, p := range ps[1:] {
		var err error
		acc, err = LCMPoly(acc, p)
		if err != nil {
			return nil, err
		}
	}
	return monicOverGradedLex(acc)
}

// ParametricPoint maps an output variable v to the polynomial f(params)
// that parametrizes it, for PolynomialImplicitization.
type ParametricPoint[F Field[F]] struct {
	Var Variable
	Fn  *Polynomial[F]
}

// PolynomialImplicitization computes the implicit equations of the
// polynomial parametrization v_i = f_i(params): from the generators
// {f_i - v_i}, compute a Lex Gröbner basis with all params ordered before
// all v_i, and return the elements involving only the v_i.
func PolynomialImplicitization[F Field[F]](points []ParametricPoint[F], params []Variable) ([]*Polynomial[F], error) {
	var zero F
	one := zero.FromInt64(1)

	outVars := make([]Variable, len(points))
	gens := make([]*Polynomial[F], len(points))
	for i, pt := range points {
		outVars[i] = pt.Var
		gens[i] = pt.Fn.Sub(FromVariable[F](pt.Var, one))
	}

	perm := append(append([]Variable{}, params...), outVars...)
	basis, err := Groebner(gens, NewLexOrder(perm))
	if err != nil {
		return nil, err
	}
	return EliminationIdeal(basis, outVars), nil
}

// RationalPoint maps an output variable v to the numerator/denominator
// pair (f, g) of its rational parametrization v = f(params)/g(params).
type RationalPoint[F Field[F]] struct {
	Var   Variable
	Numer *Polynomial[F]
	Denom *Polynomial[F]
}

// RationalImplicitization computes the implicit equations of the rational
// parametrization v_i = f_i(params)/g_i(params): from the generators
// {f_i - g_i*v_i} plus the saturation generator 1 - t*prod(g_i) for a
// fresh auxiliary t preceding everything, extract eliminants of only the
// v_i.
func RationalImplicitization[F Field[F]](points []RationalPoint[F], params []Variable) ([]*Polynomial[F], error) {
	var zero F
	one := zero.FromInt64(1)

	outVars := make([]Variable, len(points))
	gens := make([]*Polynomial[F], 0, len(points)+1)
	denomProduct := FromConstant(one)
	for i, pt := range points {
		outVars[i] = pt.Var
		gens = append(gens, pt.Numer.Sub(pt.Denom.Mul(FromVariable[F](pt.Var, one))))
		denomProduct = denomProduct.Mul(pt.Denom)
	}

	t := NewAuxVariable()
	saturation := FromConstant(one).Sub(FromVariable[F](t, one).Mul(denomProduct))
	gens = append(gens, saturation)

	perm := append([]Variable{t}, params...)
	perm = append(perm, outVars...)
	basis, err := Groebner(gens, NewLexOrder(perm))
	if err != nil {
		return nil, err
	}
	return EliminationIdeal(basis, outVars), nil
}
