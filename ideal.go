package groebner

// Ideal owns an ordered list of generator polynomials plus a lazily
// computed, memoized Gröbner basis. If the basis cache is populated, it is
// a reduced Gröbner basis of the generators under basisOrder.
type Ideal[F Field[F]] struct {
	gens       []*Polynomial[F]
	basis      []*Polynomial[F]
	basisOrder MonomialOrder
}

// NewIdeal constructs an ideal from a generator list. The basis is not
// computed until first queried.
func NewIdeal[F Field[F]](gens ...*Polynomial[F]) *Ideal[F] {
	cp := make([]*Polynomial[F], len(gens))
	copy(cp, gens)
	return &Ideal[F]{gens: cp}
}

// Generators returns the ideal's generator list.
func (id *Ideal[F]) Generators() []*Polynomial[F] {
	out := make([]*Polynomial[F], len(id.gens))
	copy(out, id.gens)
	return out
}

// Variables is the union of variables occurring across all generators.
func (id *Ideal[F]) Variables() []Variable {
	seen := map[Variable]struct{}{}
	for _, g := range id.gens {
		for _, v := range g.Variables() {
			seen[v] = struct{}{}
		}
	}
	vs := make([]Variable, 0, len(seen))
	for v := range seen {
		vs = append(vs, v)
	}
	return sortVariables(vs)
}

// GroebnerBasis returns the ideal's memoized Gröbner basis, computing and
// caching it on first use. With no permutation argument the basis is
// computed under Graded Reverse Lex over the ideal's own variables. With
// an explicit permutation, it is computed under Lex on that permutation
// instead, and replaces whatever was cached.
func (id *Ideal[F]) GroebnerBasis(perm ...[]Variable) ([]*Polynomial[F], error) {
	var order MonomialOrder
	if len(perm) == 0 {
		if id.basis != nil {
			if _, ok := id.basisOrder.(GradedRevLexOrder); ok {
				return id.basis, nil
			}
		}
		order = NewGradedRevLexOrder(id.Variables())
	} else {
		order = NewLexOrder(perm[0])
	}
	basis, err := Groebner(id.gens, order)
	if err != nil {
		return nil, err
	}
	id.basis = basis
	id.basisOrder = order
	return basis, nil
}

// Contains reports whether f lies in the ideal: it reduces to zero by the
// ideal's Gröbner basis (computed under Graded Reverse Lex if not already
// cached). f may mention variables the basis never does; the reduction
// order extends the basis's own order with those extra variables appended
// at the lowest priority, so every monomial comparison the reduction needs
// is decided by variables the order actually ranks, rather than falling
// back to a map-iteration-dependent tie.
func (id *Ideal[F]) Contains(f *Polynomial[F]) (bool, error) {
	basis, err := id.ensureBasis()
	if err != nil {
		return false, err
	}
	order := extendOrderVariables(id.basisOrder, f.Variables())
	_, r, err := Reduce(f, basis, order)
	if err != nil {
		return false, err
	}
	return r.IsZero(), nil
}

// extendOrderVariables returns an order of the same variant and relative
// priority as base, but covering every variable in vars: any variable not
// already ranked by base is appended at the end, lowest priority. Weighted
// orders have no natural "lowest priority" weight to extend with and are
// returned unchanged; Ideal never uses one as a basisOrder.
func extendOrderVariables(base MonomialOrder, vars []Variable) MonomialOrder {
	switch o := base.(type) {
	case LexOrder:
		return NewLexOrder(appendMissingVariables(o.perm, vars))
	case GradedLexOrder:
		return NewGradedLexOrder(appendMissingVariables(o.perm, vars))
	case GradedRevLexOrder:
		return NewGradedRevLexOrder(appendMissingVariables(o.perm, vars))
	default:
		return base
	}
}

func appendMissingVariables(perm, extra []Variable) []Variable {
	seen := make(map[Variable]struct{}, len(perm)+len(extra))
	out := make([]Variable, 0, len(perm)+len(extra))
	for _, v := range perm {
		seen[v] = struct{}{}
		out = append(out, v)
	}
	for _, v := range extra {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

func (id *Ideal[F]) ensureBasis() ([]*Polynomial[F], error) {
	if id.basis != nil {
		return id.basis, nil
	}
	return id.GroebnerBasis()
}

// IsSubsetOf reports whether every generator of id lies in other. Forces
// other's Gröbner basis.
func (id *Ideal[F]) IsSubsetOf(other *Ideal[F]) (bool, error) {
	for _, g := range id.gens {
		ok, err := other.Contains(g)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Equal reports whether id and other generate the same ideal: their
// reduced, monic Gröbner bases under the same order are set-equal. Both
// orders are Graded Reverse Lex over the union of variables.
func (id *Ideal[F]) Equal(other *Ideal[F]) (bool, error) {
	vars := sortVariables(append(id.Variables(), other.Variables()...))
	order := NewGradedRevLexOrder(vars)
	ba, err := Groebner(id.gens, order)
	if err != nil {
		return false, err
	}
	bb, err := Groebner(other.gens, order)
	if err != nil {
		return false, err
	}
	return basisSetEqual(ba, bb), nil
}

func basisSetEqual[F Field[F]](a, b []*Polynomial[F]) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, pa := range a {
		found := false
		for j, pb := range b {
			if used[j] {
				continue
			}
			if pa.Equal(pb) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Sum returns id + other: the ideal generated by the union of both
// generator lists.
func (id *Ideal[F]) Sum(other *Ideal[F]) *Ideal[F] {
	all := make([]*Polynomial[F], 0, len(id.gens)+len(other.gens))
	all = append(all, id.gens...)
	all = append(all, other.gens...)
	return NewIdeal(all...)
}

// Product returns id * other: the ideal generated by all pairwise
// generator products.
func (id *Ideal[F]) Product(other *Ideal[F]) *Ideal[F] {
	all := make([]*Polynomial[F], 0, len(id.gens)*len(other.gens))
	for _, f := range id.gens {
		for _, g := range other.gens {
			all = append(all, f.Mul(g))
		}
	}
	return NewIdeal(all...)
}

// Intersect computes id ∩ other via the elimination construction:
// introduce a fresh auxiliary variable t, lexicographically first,
// and take the Gröbner basis of {t*f_i} ∪ {(1-t)*g_j} under a Lex order
// placing t first. The intersection is generated by the basis elements not
// containing t.
func (id *Ideal[F]) Intersect(other *Ideal[F]) (*Ideal[F], error) {
	t := NewAuxVariable()
	var zero F
	one := zero.FromInt64(1)
	tPoly := FromVariable[F](t, one)
	oneMinusT := FromConstant(one).Sub(tPoly)

	gens := make([]*Polynomial[F], 0, len(id.gens)+len(other.gens))
	for _, f := range id.gens {
		gens = append(gens, tPoly.Mul(f))
	}
	for _, g := range other.gens {
		gens = append(gens, oneMinusT.Mul(g))
	}

	vars := sortVariables(append(id.Variables(), other.Variables()...))
	perm := append([]Variable{t}, vars...)
	basis, err := Groebner(gens, NewLexOrder(perm))
	if err != nil {
		return nil, err
	}

	kept := make([]*Polynomial[F], 0, len(basis))
	for _, g := range basis {
		if !containsVariable(g, t) {
			kept = append(kept, g)
		}
	}
	return NewIdeal(kept...), nil
}

func containsVariable[F Field[F]](p *Polynomial[F], v Variable) bool {
	return p.hasVariable(v)
}

// EliminationIdeal retains those elements of basis (already computed under
// a Lex order that places the eliminated variables before keepVars) whose
// variable set is a subset of keepVars.
func EliminationIdeal[F Field[F]](basis []*Polynomial[F], keepVars []Variable) []*Polynomial[F] {
	keep := map[Variable]struct{}{}
	for _, v := range keepVars {
		keep[v] = struct{}{}
	}
	var out []*Polynomial[F]
	for _, g := range basis {
		ok := true
		for _, v := range g.Variables() {
			if _, allowed := keep[v]; !allowed {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, g)
		}
	}
	return out
}
