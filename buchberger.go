package groebner

// pair identifies a candidate S-polynomial by the index of its two
// generators in the working basis.
type pair struct{ i, j int }

// Groebner computes a reduced, monic Gröbner basis of gens under order via
// Buchberger's algorithm: extend to a Gröbner basis, minimize, auto-reduce,
// then normalize leading coefficients to the field identity.
func Groebner[F Field[F]](gens []*Polynomial[F], order MonomialOrder) ([]*Polynomial[F], error) {
	basis, err := extend(gens, order)
	if err != nil {
		return nil, err
	}
	basis = minimize(basis, order)
	basis, err = autoReduce(basis, order)
	if err != nil {
		return nil, err
	}
	return normalize(basis, order)
}

// extend runs the Buchberger critical-pair loop: starting from gens,
// repeatedly compute S-polynomials for surviving pairs, reduce each by the
// current basis, and append any nonzero remainder. Terminates when a full
// pass over all pairs adds nothing (guaranteed by Dickson's lemma: the
// chain of leading-monomial ideals must stabilize).
func extend[F Field[F]](gens []*Polynomial[F], order MonomialOrder) ([]*Polynomial[F], error) {
	basis := make([]*Polynomial[F], 0, len(gens))
	for _, g := range gens {
		if !g.IsZero() {
			basis = append(basis, g)
		}
	}

	for {
		pairs := candidatePairs(basis, order)
		if len(pairs) == 0 {
			return basis, nil
		}
		added := false
		for _, pr := range pairs {
			s, err := SPolynomial(basis[pr.i], basis[pr.j], order)
			if err != nil {
				return nil, err
			}
			_, r, err := Reduce(s, basis, order)
			if err != nil {
				return nil, err
			}
			if !r.IsZero() {
				basis = append(basis, r)
				added = true
			}
		}
		if !added {
			return basis, nil
		}
	}
}

// candidatePairs enumerates the pairs (i, j), i < j, that survive both
// Buchberger criteria:
//
//   - lcm criterion: skip if lcm(LM(g_i), LM(g_j)) == LM(g_i)*LM(g_j)
//     (coprime leading monomials).
//   - chain criterion (local variant): skip (i, j) if some later g_k,
//     k > j, has leading monomial dividing lcm(LM(g_i), LM(g_j)).
//
// This is a sufficient, not maximally strong, chain criterion.
func candidatePairs[F Field[F]](basis []*Polynomial[F], order MonomialOrder) []pair {
	lms := make([]Monomial, len(basis))
	for i, g := range basis {
		lms[i] = g.LeadingMonomial(order)
	}
	var out []pair
	for i := 0; i < len(basis); i++ {
		for j := i + 1; j < len(basis); j++ {
			if coprimeLCMCriterion(lms[i], lms[j]) {
				continue
			}
			l := LCM(lms[i], lms[j])
			chained := false
			for k := j + 1; k < len(basis); k++ {
				if Divides(lms[k], l) {
					chained = true
					break
				}
			}
			if chained {
				continue
			}
			out = append(out, pair{i, j})
		}
	}
	return out
}

// minimize removes any generator whose leading monomial is divisible by
// another generator's leading monomial, taking a snapshot first so the
// removal decision for each element is made against the pre-pass basis
// rather than one already being mutated mid-iteration.
func minimize[F Field[F]](basis []*Polynomial[F], order MonomialOrder) []*Polynomial[F] {
	lms := make([]Monomial, len(basis))
	for i, g := range basis {
		lms[i] = g.LeadingMonomial(order)
	}
	keep := make([]bool, len(basis))
	for i := range basis {
		keep[i] = true
		for j := range basis {
			if i == j {
				continue
			}
			if Divides(lms[j], lms[i]) && (!lms[i].Equal(lms[j]) || j < i) {
				keep[i] = false
				break
			}
		}
	}
	out := make([]*Polynomial[F], 0, len(basis))
	for i, g := range basis {
		if keep[i] {
			out = append(out, g)
		}
	}
	return out
}

// autoReduce repeatedly replaces each generator with its reduction by the
// rest of the basis, keeping the reduction whenever it is both nonzero and
// distinct from the original — a zero remainder is left unchanged, since
// interreduction never deletes a generator at this step. Iterates by index
// with explicit continue-on-change semantics until a full pass makes no
// changes.
func autoReduce[F Field[F]](basis []*Polynomial[F], order MonomialOrder) ([]*Polynomial[F], error) {
	current := make([]*Polynomial[F], len(basis))
	copy(current, basis)

	for {
		changed := false
		for i := range current {
			rest := make([]*Polynomial[F], 0, len(current)-1)
			for j, g := range current {
				if j != i {
					rest = append(rest, g)
				}
			}
			_, r, err := Reduce(current[i], rest, order)
			if err != nil {
				return nil, err
			}
			if r.IsZero() || r.Equal(current[i]) {
				continue
			}
			current[i] = r
			changed = true
		}
		if !changed {
			return current, nil
		}
	}
}

// normalize scales each basis element so its leading coefficient is the
// field identity.
func normalize[F Field[F]](basis []*Polynomial[F], order MonomialOrder) ([]*Polynomial[F], error) {
	out := make([]*Polynomial[F], len(basis))
	for i, g := range basis {
		lc := g.LeadingCoefficient(order)
		inv, err := lc.FromInt64(1).Div(lc)
		if err != nil {
			return nil, err
		}
		out[i] = g.MulScalar(inv)
	}
	return out, nil
}
