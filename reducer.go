package groebner

// Reduce performs multivariable division of f by the divisor list
// divisors under order, returning quotients Q and remainder r such that
// f = sum(Q[i] * divisors[i]) + r, with no monomial of r divisible by any
// LM(divisors[i]).
//
// Divisor selection is "first divisor wins": at each step the *first*
// divisor (in input order) whose leading monomial divides the working
// polynomial's leading term is used. This makes results deterministic but
// order-dependent — swapping the divisor order can change Q and r. That is
// intentional and part of the contract.
func Reduce[F Field[F]](f *Polynomial[F], divisors []*Polynomial[F], order MonomialOrder) ([]*Polynomial[F], *Polynomial[F], error) {
	quotients := make([]*Polynomial[F], len(divisors))
	for i := range quotients {
		quotients[i] = Zero[F]()
	}
	remainder := Zero[F]()
	working := f.clone()

	for !working.IsZero() {
		lm, lc := working.leadingTerm(order)
		divided := false
		for i, g := range divisors {
			if g.IsZero() {
				continue
			}
			glm, glc := g.leadingTerm(order)
			if !Divides(glm, lm) {
				continue
			}
			factorMono, err := lm.Div(glm)
			if err != nil {
				return nil, nil, err
			}
			factorCoef, err := lc.Div(glc)
			if err != nil {
				return nil, nil, err
			}
			term := g.MulTerm(factorCoef, factorMono)
			working = working.Sub(term)
			quotients[i] = quotients[i].Add(FromTerms(Term[F]{Monomial: factorMono, Coeff: factorCoef}))
			divided = true
			break
		}
		if !divided {
			c := lc
			remainder = remainder.Add(FromTerms(Term[F]{Monomial: lm, Coeff: c}))
			working = working.Sub(FromTerms(Term[F]{Monomial: lm, Coeff: c}))
		}
	}

	return quotients, remainder, nil
}

// SPolynomial computes the S-polynomial of f and g under order:
//
//	S(f, g) = (L/M_f)*(1/C_f)*f - (L/M_g)*(1/C_g)*g
//
// where L = lcm(LM(f), LM(g)).
func SPolynomial[F Field[F]](f, g *Polynomial[F], order MonomialOrder) (*Polynomial[F], error) {
	mf, cf := f.leadingTerm(order)
	mg, cg := g.leadingTerm(order)
	l := LCM(mf, mg)

	mfFactor, err := l.Div(mf)
	if err != nil {
		return nil, err
	}
	mgFactor, err := l.Div(mg)
	if err != nil {
		return nil, err
	}
	cfInv, err := cf.FromInt64(1).Div(cf)
	if err != nil {
		return nil, err
	}
	cgInv, err := cg.FromInt64(1).Div(cg)
	if err != nil {
		return nil, err
	}

	left := f.MulTerm(cfInv, mfFactor)
	right := g.MulTerm(cgInv, mgFactor)
	return left.Sub(right), nil
}

// coprimeLCMCriterion reports whether lcm(mf, mg) == mf*mg, i.e. the
// leading monomials are coprime — the Buchberger lcm criterion, under
// which the pair's S-polynomial is guaranteed to reduce to zero and can
// be skipped.
func coprimeLCMCriterion(mf, mg Monomial) bool {
	return LCM(mf, mg).Equal(mf.Mul(mg))
}
