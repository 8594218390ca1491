package groebner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGcdPolyAndLCMPolyIdentity(t *testing.T) {
	x := Var("x")
	one := rat(1)

	// f = x^2 - 1 = (x-1)(x+1), g = x^2 + 2x + 1 = (x+1)^2
	f := FromTerms(
		T(mustMonomial(map[Variable]int{x: 2}), one),
		T(Identity(), one.Neg()),
	)
	g := FromTerms(
		T(mustMonomial(map[Variable]int{x: 2}), one),
		T(mustMonomial(map[Variable]int{x: 1}), rat(2)),
		T(Identity(), one),
	)

	gcd, err := GcdPoly(f, g)
	require.NoError(t, err)
	lcm, err := LCMPoly(f, g)
	require.NoError(t, err)

	// gcd * lcm == f * g, up to the monic normalization both are defined
	// under.
	product := f.Mul(g)
	reconstructed := gcd.Mul(lcm)
	assert.True(t, product.Equal(reconstructed))

	// gcd should be monic x+1.
	xPlus1 := FromVariable[Rational](x, one).Add(FromConstant(one))
	assert.True(t, gcd.Equal(xPlus1))
}

func TestGcdAllFoldsPairwise(t *testing.T) {
	x := Var("x")
	one := rat(1)

	xMinus1 := FromVariable[Rational](x, one).Sub(FromConstant(one))
	xMinus2 := FromVariable[Rational](x, one).Sub(FromConstant(rat(2)))
	common := xMinus1.Mul(xMinus2)

	a := common.Mul(xMinus1)
	b := common.Mul(xMinus2)
	c := common

	gcd, err := GcdAll(a, b, c)
	require.NoError(t, err)
	assert.True(t, gcd.Equal(common))
}

func TestPolynomialImplicitizationOfAParabola(t *testing.T) {
	// v = t, w = t^2 implicitizes to w - v^2 = 0.
	tvar, v, w := Var("t"), Var("v"), Var("w")
	one := rat(1)

	fv := FromVariable[Rational](tvar, one)
	tSquared, err := fv.Pow(2)
	require.NoError(t, err)

	points := []ParametricPoint[Rational]{
		{Var: v, Fn: fv},
		{Var: w, Fn: tSquared},
	}

	eqs, err := PolynomialImplicitization(points, []Variable{tvar})
	require.NoError(t, err)
	require.NotEmpty(t, eqs)

	vSquared := FromVariable[Rational](v, one)
	vSquared, err = vSquared.Pow(2)
	require.NoError(t, err)
	target := FromVariable[Rational](w, one).Sub(vSquared)

	found := false
	for _, eq := range eqs {
		if eq.Equal(target) || eq.Equal(target.Neg()) {
			found = true
		}
	}
	assert.True(t, found)
}
