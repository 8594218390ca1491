package groebner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rat(n int64) Rational { return RationalFromInt(n) }

// T is shorthand for a single (monomial, coefficient) pair, the argument
// FromTerms takes since Monomial embeds a map and cannot itself be a Go
// map key.
func T(m Monomial, c Rational) Term[Rational] { return Term[Rational]{Monomial: m, Coeff: c} }

func TestPolynomialAddSubCancel(t *testing.T) {
	x := Var("x")
	mx := mustMonomial(map[Variable]int{x: 1})

	p := FromTerms(T(mx, rat(1)))
	q := FromTerms(T(mx, rat(1)))

	diff := p.Sub(q)
	assert.True(t, diff.IsZero())

	sum := p.Add(q)
	assert.True(t, sum.Equal(FromTerms(T(mx, rat(2)))))
}

func TestPolynomialMul(t *testing.T) {
	x, y := Var("x"), Var("y")
	mx := mustMonomial(map[Variable]int{x: 1})
	my := mustMonomial(map[Variable]int{y: 1})

	p := FromTerms(T(mx, rat(1)))
	q := FromTerms(T(my, rat(1)))

	product := p.Mul(q)
	expected := FromTerms(T(mx.Mul(my), rat(1)))
	assert.True(t, product.Equal(expected))
}

func TestPolynomialPow(t *testing.T) {
	x := Var("x")
	p := FromVariable[Rational](x, rat(1))

	cube, err := p.Pow(3)
	require.NoError(t, err)

	x3 := mustMonomial(map[Variable]int{x: 3})
	assert.True(t, cube.Equal(FromTerms(T(x3, rat(1)))))

	_, err = p.Pow(-1)
	assert.ErrorIs(t, err, ErrNegativeExponent)
}

func TestPolynomialEvaluate(t *testing.T) {
	x, y := Var("x"), Var("y")
	// p = x^2 + y
	p := FromTerms(
		T(mustMonomial(map[Variable]int{x: 2}), rat(1)),
		T(mustMonomial(map[Variable]int{y: 1}), rat(1)),
	)

	v, err := p.Evaluate(map[Variable]Rational{x: rat(3), y: rat(2)})
	require.NoError(t, err)
	assert.True(t, v.Equal(rat(11)))

	_, err = p.Evaluate(map[Variable]Rational{x: rat(3)})
	assert.ErrorIs(t, err, ErrUnknownVariable)
}

func TestPolynomialSubstitute(t *testing.T) {
	x, y := Var("x"), Var("y")
	// p = x*y + x
	p := FromTerms(
		T(mustMonomial(map[Variable]int{x: 1, y: 1}), rat(1)),
		T(mustMonomial(map[Variable]int{x: 1}), rat(1)),
	)

	sub, err := p.Substitute(y, rat(2))
	require.NoError(t, err)
	// expect 2x + x == 3x
	expected := FromTerms(T(mustMonomial(map[Variable]int{x: 1}), rat(3)))
	assert.True(t, sub.Equal(expected))

	_, err = p.Substitute(Var("z"), rat(1))
	assert.ErrorIs(t, err, ErrUnknownVariable)
}

func TestPolynomialSubstituteThenEvaluateRoundTrip(t *testing.T) {
	x, y := Var("x"), Var("y")
	p := FromTerms(
		T(mustMonomial(map[Variable]int{x: 2, y: 1}), rat(1)),
		T(mustMonomial(map[Variable]int{x: 1}), rat(-3)),
		T(Identity(), rat(5)),
	)
	for _, v := range []Rational{rat(0), rat(1), rat(-2), NewRational(1, 3)} {
		sub, err := p.Substitute(x, v)
		require.NoError(t, err)
		subVal, err := sub.Evaluate(map[Variable]Rational{y: rat(7)})
		require.NoError(t, err)

		directVal, err := p.Evaluate(map[Variable]Rational{x: v, y: rat(7)})
		require.NoError(t, err)

		assert.True(t, subVal.Equal(directVal))
	}
}

func TestPolynomialLeadingTermCaching(t *testing.T) {
	x, y := Var("x"), Var("y")
	p := FromTerms(
		T(mustMonomial(map[Variable]int{x: 2}), rat(1)),
		T(mustMonomial(map[Variable]int{y: 3}), rat(1)),
	)

	lexXY := NewLexOrder([]Variable{x, y})
	lm1 := p.LeadingMonomial(lexXY)
	assert.Equal(t, 2, lm1.Exponent(x))

	grlex := NewGradedLexOrder([]Variable{x, y})
	lm2 := p.LeadingMonomial(grlex)
	assert.Equal(t, 3, lm2.Exponent(y))

	// re-querying the first order still gives the right answer after the
	// cache was overwritten by the second order.
	lm3 := p.LeadingMonomial(lexXY)
	assert.True(t, lm3.Equal(lm1))
}

func TestPolynomialString(t *testing.T) {
	x := Var("x")
	p := FromTerms(
		T(mustMonomial(map[Variable]int{x: 2}), rat(1)),
		T(mustMonomial(map[Variable]int{x: 1}), rat(-3)),
		T(Identity(), rat(5)),
	)
	assert.Equal(t, "x² + -3·x + 5", p.String())
	assert.Equal(t, "0", Zero[Rational]().String())
}
