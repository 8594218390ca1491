package groebner

import (
	"fmt"
	"strings"
)

// term pairs a monomial with its (nonzero) coefficient.
type term[F Field[F]] struct {
	mono Monomial
	coef F
}

// Term is a public (monomial, coefficient) pair, returned by
// Polynomial.Terms.
type Term[F Field[F]] struct {
	Monomial Monomial
	Coeff    F
}

// leadingCache memoizes the last (order, leadingMonomial, leadingCoefficient)
// triple computed for a Polynomial. It is keyed on the order's *value*
// (MonomialOrder.cacheKey), not its identity, so two distinct order values
// that happen to describe the same order share a cache hit, and two
// different orders passed to the same polynomial each compute correctly.
type leadingCache[F Field[F]] struct {
	valid bool
	key   string
	lm    Monomial
	lc    F
}

// Polynomial is a sparse mapping from Monomial to nonzero F coefficient.
// The zero polynomial is the empty mapping. Polynomial is semantically
// immutable — every arithmetic method returns a new value — except for
// its opportunistic leading-term cache, which the single-threaded kernel
// mutates in place on read.
type Polynomial[F Field[F]] struct {
	terms map[string]term[F]
	cache leadingCache[F]
}

// Zero returns the zero polynomial over F.
func Zero[F Field[F]]() *Polynomial[F] {
	return &Polynomial[F]{terms: map[string]term[F]{}}
}

// FromConstant returns the constant polynomial c.
func FromConstant[F Field[F]](c F) *Polynomial[F] {
	p := Zero[F]()
	if !c.IsZero() {
		p.terms[Identity().key()] = term[F]{mono: Identity(), coef: c}
	}
	return p
}

// FromTerms builds a polynomial from a list of (monomial, coefficient)
// pairs, dropping any entry whose coefficient is zero under F.IsZero.
// Later entries for the same monomial add to, rather than replace, earlier
// ones.
func FromTerms[F Field[F]](terms ...Term[F]) *Polynomial[F] {
	p := Zero[F]()
	for _, t := range terms {
		k := t.Monomial.key()
		if existing, ok := p.terms[k]; ok {
			combined := existing.coef.Add(t.Coeff)
			if combined.IsZero() {
				delete(p.terms, k)
			} else {
				p.terms[k] = term[F]{mono: t.Monomial, coef: combined}
			}
			continue
		}
		if t.Coeff.IsZero() {
			continue
		}
		p.terms[k] = term[F]{mono: t.Monomial, coef: t.Coeff}
	}
	return p
}

// FromVariable returns the degree-1 polynomial v.
func FromVariable[F Field[F]](v Variable, one F) *Polynomial[F] {
	m, _ := VarPower(v, 1)
	return FromTerms(Term[F]{Monomial: m, Coeff: one})
}

// clone returns a shallow copy of p's term map (Monomial and F values are
// themselves immutable, so a shallow copy is a deep copy for our
// purposes). The cache is not carried over, since it is intended to be
// invalidated by any change to the term map.
func (p *Polynomial[F]) clone() *Polynomial[F] {
	out := Zero[F]()
	for k, t := range p.terms {
		out.terms[k] = t
	}
	return out
}

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial[F]) IsZero() bool { return len(p.terms) == 0 }

// NumTerms returns the number of nonzero terms.
func (p *Polynomial[F]) NumTerms() int { return len(p.terms) }

// Terms returns a copy of p's (monomial, coefficient) pairs, in no
// particular order. Callers that need a deterministic order should sort by
// Monomial.Less or by a MonomialOrder.
func (p *Polynomial[F]) Terms() []Term[F] {
	out := make([]Term[F], 0, len(p.terms))
	for _, t := range p.terms {
		out = append(out, Term[F]{Monomial: t.mono, Coeff: t.coef})
	}
	return out
}

// Variables returns the union of variables occurring across all terms, in
// canonical order.
func (p *Polynomial[F]) Variables() []Variable {
	seen := map[Variable]struct{}{}
	for _, t := range p.terms {
		for _, v := range t.mono.Variables() {
			seen[v] = struct{}{}
		}
	}
	vs := make([]Variable, 0, len(seen))
	for v := range seen {
		vs = append(vs, v)
	}
	return sortVariables(vs)
}

// TotalDegree is the maximum monomial degree across all terms, or 0 for
// the zero polynomial.
func (p *Polynomial[F]) TotalDegree() int {
	max := 0
	for _, t := range p.terms {
		if d := t.mono.Degree(); d > max {
			max = d
		}
	}
	return max
}

func addTermMaps[F Field[F]](dst *Polynomial[F], src map[string]term[F], sign func(F) F) {
	for k, t := range src {
		coef := sign(t.coef)
		if existing, ok := dst.terms[k]; ok {
			combined := existing.coef.Add(coef)
			if combined.IsZero() {
				delete(dst.terms, k)
			} else {
				dst.terms[k] = term[F]{mono: t.mono, coef: combined}
			}
		} else if !coef.IsZero() {
			dst.terms[k] = term[F]{mono: t.mono, coef: coef}
		}
	}
}

// Add returns p + q.
func (p *Polynomial[F]) Add(q *Polynomial[F]) *Polynomial[F] {
	out := p.clone()
	addTermMaps(out, q.terms, func(c F) F { return c })
	return out
}

// Sub returns p - q.
func (p *Polynomial[F]) Sub(q *Polynomial[F]) *Polynomial[F] {
	out := p.clone()
	addTermMaps(out, q.terms, func(c F) F { return c.Neg() })
	return out
}

// Neg returns -p.
func (p *Polynomial[F]) Neg() *Polynomial[F] {
	out := Zero[F]()
	for k, t := range p.terms {
		out.terms[k] = term[F]{mono: t.mono, coef: t.coef.Neg()}
	}
	return out
}

// Pos returns p unchanged (unary +).
func (p *Polynomial[F]) Pos() *Polynomial[F] { return p.clone() }

// Mul returns p * q.
func (p *Polynomial[F]) Mul(q *Polynomial[F]) *Polynomial[F] {
	out := Zero[F]()
	for _, tp := range p.terms {
		for _, tq := range q.terms {
			m := tp.mono.Mul(tq.mono)
			c := tp.coef.Mul(tq.coef)
			k := m.key()
			if existing, ok := out.terms[k]; ok {
				combined := existing.coef.Add(c)
				if combined.IsZero() {
					delete(out.terms, k)
				} else {
					out.terms[k] = term[F]{mono: m, coef: combined}
				}
			} else if !c.IsZero() {
				out.terms[k] = term[F]{mono: m, coef: c}
			}
		}
	}
	return out
}

// MulScalar returns c * p.
func (p *Polynomial[F]) MulScalar(c F) *Polynomial[F] {
	out := Zero[F]()
	if c.IsZero() {
		return out
	}
	for k, t := range p.terms {
		nc := t.coef.Mul(c)
		if !nc.IsZero() {
			out.terms[k] = term[F]{mono: t.mono, coef: nc}
		}
	}
	return out
}

// MulMonomial returns m * p, useful for building S-polynomials and
// reduction steps without going through the general Mul path.
func (p *Polynomial[F]) MulMonomial(m Monomial) *Polynomial[F] {
	out := Zero[F]()
	for _, t := range p.terms {
		nm := t.mono.Mul(m)
		out.terms[nm.key()] = term[F]{mono: nm, coef: t.coef}
	}
	return out
}

// MulTerm returns c * m * p in one step.
func (p *Polynomial[F]) MulTerm(c F, m Monomial) *Polynomial[F] {
	return p.MulMonomial(m).MulScalar(c)
}

// Pow returns p^n via binary exponentiation. n must be non-negative.
func (p *Polynomial[F]) Pow(n int) (*Polynomial[F], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeExponent, n)
	}
	var zero F
	result := FromConstant(zero.FromInt64(1))
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result, nil
}

// Equal is semantic equality: p == q iff p - q is the zero polynomial.
func (p *Polynomial[F]) Equal(q *Polynomial[F]) bool {
	return p.Sub(q).IsZero()
}

// EqualScalar reports whether p equals the constant polynomial c.
func (p *Polynomial[F]) EqualScalar(c F) bool {
	return p.Equal(FromConstant(c))
}

// Evaluate substitutes every variable from env and returns the resulting
// field element. Fails with ErrUnknownVariable if some variable occurring
// in p is missing from env.
func (p *Polynomial[F]) Evaluate(env map[Variable]F) (F, error) {
	var zero F
	acc := zero.FromInt64(0)
	for _, t := range p.terms {
		v := t.coef
		for _, variable := range t.mono.Variables() {
			val, ok := env[variable]
			if !ok {
				return zero, fmt.Errorf("%w: %s", ErrUnknownVariable, variable)
			}
			e := t.mono.Exponent(variable)
			for i := 0; i < e; i++ {
				v = v.Mul(val)
			}
		}
		acc = acc.Add(v)
	}
	return acc, nil
}

// Substitute returns p with v replaced by value and removed from every
// monomial. Fails with ErrUnknownVariable if v does not occur in p.
func (p *Polynomial[F]) Substitute(v Variable, value F) (*Polynomial[F], error) {
	if !p.hasVariable(v) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariable, v)
	}
	out := Zero[F]()
	for _, t := range p.terms {
		e := t.mono.Exponent(v)
		coef := t.coef
		for i := 0; i < e; i++ {
			coef = coef.Mul(value)
		}
		reduced := map[Variable]int{}
		for _, other := range t.mono.Variables() {
			if other == v {
				continue
			}
			reduced[other] = t.mono.Exponent(other)
		}
		m := mustMonomial(reduced)
		k := m.key()
		if existing, ok := out.terms[k]; ok {
			combined := existing.coef.Add(coef)
			if combined.IsZero() {
				delete(out.terms, k)
			} else {
				out.terms[k] = term[F]{mono: m, coef: combined}
			}
		} else if !coef.IsZero() {
			out.terms[k] = term[F]{mono: m, coef: coef}
		}
	}
	return out, nil
}

func (p *Polynomial[F]) hasVariable(v Variable) bool {
	for _, t := range p.terms {
		if t.mono.Exponent(v) > 0 {
			return true
		}
	}
	return false
}

// LeadingMonomial returns the largest monomial in p under order, or the
// identity monomial for the zero polynomial.
func (p *Polynomial[F]) LeadingMonomial(order MonomialOrder) Monomial {
	m, _ := p.leadingTerm(order)
	return m
}

// LeadingCoefficient returns the coefficient of the leading monomial under
// order, or the field zero for the zero polynomial.
func (p *Polynomial[F]) LeadingCoefficient(order MonomialOrder) F {
	_, c := p.leadingTerm(order)
	return c
}

func (p *Polynomial[F]) leadingTerm(order MonomialOrder) (Monomial, F) {
	var zero F
	if p.IsZero() {
		return Identity(), zero.FromInt64(0)
	}
	key := order.cacheKey()
	if p.cache.valid && p.cache.key == key {
		return p.cache.lm, p.cache.lc
	}
	var best *term[F]
	for _, t := range p.terms {
		tt := t
		if best == nil {
			best = &tt
			continue
		}
		bLess := order.Less(best.mono, tt.mono)
		tLess := order.Less(tt.mono, best.mono)
		switch {
		case bLess && !tLess:
			best = &tt
		case bLess == tLess:
			// order does not distinguish the two monomials (e.g. a
			// permutation that omits one of their variables); fall back to
			// the canonical tie-break so the result never depends on term
			// map iteration order.
			if best.mono.Less(tt.mono) {
				best = &tt
			}
		}
	}
	if best == nil {
		// unreachable: p is non-empty, loop always assigns.
		best = &term[F]{mono: Identity(), coef: zero.FromInt64(0)}
	}
	p.cache = leadingCache[F]{valid: true, key: key, lm: best.mono, lc: best.coef}
	return best.mono, best.coef
}

// String renders p in descending order under the Monomial tie-break order,
// with Unicode superscripts for exponents and a middle dot separating a
// non-unit coefficient from its monomial. A coefficient of 1 is suppressed
// except for the constant term. The zero polynomial renders as "0".
func (p *Polynomial[F]) String() string {
	if p.IsZero() {
		return "0"
	}
	ts := make([]term[F], 0, len(p.terms))
	for _, t := range p.terms {
		ts = append(ts, t)
	}
	for i := 1; i < len(ts); i++ {
		for j := i; j > 0 && ts[j].mono.Less(ts[j-1].mono); j-- {
			ts[j], ts[j-1] = ts[j-1], ts[j]
		}
	}
	// descending order
	for l, r := 0, len(ts)-1; l < r; l, r = l+1, r-1 {
		ts[l], ts[r] = ts[r], ts[l]
	}
	var zero F
	one := zero.FromInt64(1)
	parts := make([]string, len(ts))
	for i, t := range ts {
		switch {
		case t.mono.IsIdentity():
			parts[i] = t.coef.String()
		case t.coef.Equal(one):
			parts[i] = t.mono.String()
		default:
			parts[i] = t.coef.String() + "·" + t.mono.String()
		}
	}
	return strings.Join(parts, " + ")
}
