package groebner

import (
	"fmt"
	"math"
	"strings"
)

// MonomialOrder is a strict total well-order on monomials, compatible with
// multiplication: for every nonzero monomial m and every monomial n,
// n <= n*m. It is consumed by the leading-term selector and the reducer.
//
// Implemented as a small closed set of variants rather than an open
// interface with heap-allocated implementations, since the set of
// admissible orders is fixed and small.
type MonomialOrder interface {
	// Less reports whether a sorts strictly before b under this order.
	Less(a, b Monomial) bool
	// cacheKey identifies this order's (variant, permutation, weights)
	// so Polynomial's leading-term cache can be keyed on order *value*
	// rather than order *identity*.
	cacheKey() string
}

func permKey(prefix string, perm []Variable) string {
	names := make([]string, len(perm))
	for i, v := range perm {
		names[i] = v.Name()
	}
	return prefix + ":" + strings.Join(names, ",")
}

// LexOrder compares monomials by scanning perm left to right and returning
// the first exponent difference; perm's first entry has the highest
// priority.
type LexOrder struct {
	perm []Variable
}

// NewLexOrder builds a Lex order from a priority permutation, highest
// priority first.
func NewLexOrder(perm []Variable) LexOrder {
	cp := make([]Variable, len(perm))
	copy(cp, perm)
	return LexOrder{perm: cp}
}

func (o LexOrder) Less(a, b Monomial) bool {
	for _, v := range o.perm {
		ea, eb := a.Exponent(v), b.Exponent(v)
		if ea != eb {
			return ea < eb
		}
	}
	return false
}

func (o LexOrder) cacheKey() string { return permKey("lex", o.perm) }

// GradedLexOrder breaks total-degree ties with Lex on the same
// permutation.
type GradedLexOrder struct {
	perm []Variable
}

func NewGradedLexOrder(perm []Variable) GradedLexOrder {
	cp := make([]Variable, len(perm))
	copy(cp, perm)
	return GradedLexOrder{perm: cp}
}

func (o GradedLexOrder) Less(a, b Monomial) bool {
	if da, db := a.Degree(), b.Degree(); da != db {
		return da < db
	}
	return LexOrder{perm: o.perm}.Less(a, b)
}

func (o GradedLexOrder) cacheKey() string { return permKey("grlex", o.perm) }

// GradedRevLexOrder breaks total-degree ties by scanning perm left to
// right and preferring the monomial with the *smaller* exponent at the
// first difference. When every exponent along perm is equal, Less returns
// true — the deliberate convention that makes a fold-based maximum
// selector converge on the unique largest monomial rather than the
// mathematically-unhelpful "a == b -> false".
type GradedRevLexOrder struct {
	perm []Variable
}

func NewGradedRevLexOrder(perm []Variable) GradedRevLexOrder {
	cp := make([]Variable, len(perm))
	copy(cp, perm)
	return GradedRevLexOrder{perm: cp}
}

func (o GradedRevLexOrder) Less(a, b Monomial) bool {
	if da, db := a.Degree(), b.Degree(); da != db {
		return da < db
	}
	for _, v := range o.perm {
		ea, eb := a.Exponent(v), b.Exponent(v)
		if ea != eb {
			return ea > eb
		}
	}
	return true
}

func (o GradedRevLexOrder) cacheKey() string { return permKey("grevlex", o.perm) }

const weightedEpsilon = 1e-9

// WeightedOrder compares monomials by the sign of the weighted exponent
// difference, within a tolerance, and breaks remaining ties with Lex on
// the same permutation.
type WeightedOrder struct {
	perm    []Variable
	weights []float64
}

// NewWeightedOrder builds a Weighted order. It fails with ErrInvalidOrder
// if weights is shorter or longer than perm, or contains a negative value.
func NewWeightedOrder(perm []Variable, weights []float64) (WeightedOrder, error) {
	if len(weights) != len(perm) {
		return WeightedOrder{}, fmt.Errorf("%w: %d weights for %d variables", ErrInvalidOrder, len(weights), len(perm))
	}
	for _, w := range weights {
		if w < 0 {
			return WeightedOrder{}, fmt.Errorf("%w: negative weight %g", ErrInvalidOrder, w)
		}
	}
	p := make([]Variable, len(perm))
	copy(p, perm)
	w := make([]float64, len(weights))
	copy(w, weights)
	return WeightedOrder{perm: p, weights: w}, nil
}

func (o WeightedOrder) Less(a, b Monomial) bool {
	sum := 0.0
	for i, v := range o.perm {
		sum += o.weights[i] * float64(a.Exponent(v)-b.Exponent(v))
	}
	if sum < -weightedEpsilon {
		return true
	}
	if sum > weightedEpsilon {
		return false
	}
	return LexOrder{perm: o.perm}.Less(a, b)
}

func (o WeightedOrder) cacheKey() string {
	parts := make([]string, len(o.weights))
	for i, w := range o.weights {
		parts[i] = fmt.Sprintf("%g", math.Round(w*1e9)/1e9)
	}
	return permKey("weighted", o.perm) + "|" + strings.Join(parts, ",")
}

var (
	_ MonomialOrder = LexOrder{}
	_ MonomialOrder = GradedLexOrder{}
	_ MonomialOrder = GradedRevLexOrder{}
	_ MonomialOrder = WeightedOrder{}
)
