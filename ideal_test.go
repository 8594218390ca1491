package groebner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdealContainsMembership(t *testing.T) {
	x, y := Var("x"), Var("y")
	one := rat(1)

	f := FromTerms(
		T(mustMonomial(map[Variable]int{x: 1}), one),
		T(mustMonomial(map[Variable]int{y: 1}), one),
	)
	id := NewIdeal(f)

	ok, err := id.Contains(f)
	require.NoError(t, err)
	assert.True(t, ok)

	multiple := f.Mul(f)
	ok, err = id.Contains(multiple)
	require.NoError(t, err)
	assert.True(t, ok)

	notMember := FromVariable[Rational](x, one)
	ok, err = id.Contains(notMember)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIdealSumAndProduct(t *testing.T) {
	x, y := Var("x"), Var("y")
	one := rat(1)

	ix := NewIdeal(FromVariable[Rational](x, one))
	iy := NewIdeal(FromVariable[Rational](y, one))

	sum := ix.Sum(iy)
	assert.Len(t, sum.Generators(), 2)

	product := ix.Product(iy)
	require.Len(t, product.Generators(), 1)
	expected := FromVariable[Rational](x, one).Mul(FromVariable[Rational](y, one))
	assert.True(t, product.Generators()[0].Equal(expected))
}

// TestIdealIntersectionOfCoordinateAxes checks that <x> ∩ <y> = <xy> in
// Q[x,y].
func TestIdealIntersectionOfCoordinateAxes(t *testing.T) {
	x, y := Var("x"), Var("y")
	one := rat(1)

	ix := NewIdeal(FromVariable[Rational](x, one))
	iy := NewIdeal(FromVariable[Rational](y, one))

	inter, err := ix.Intersect(iy)
	require.NoError(t, err)

	basis, err := inter.GroebnerBasis()
	require.NoError(t, err)
	require.Len(t, basis, 1)

	xy := FromVariable[Rational](x, one).Mul(FromVariable[Rational](y, one))
	assert.True(t, basis[0].Equal(xy))
}

func TestIdealEquality(t *testing.T) {
	x, y := Var("x"), Var("y")
	one, two := rat(1), rat(2)

	// {x+y, x-y} and {x, y} generate the same ideal.
	a := NewIdeal(
		FromVariable[Rational](x, one).Add(FromVariable[Rational](y, one)),
		FromVariable[Rational](x, one).Sub(FromVariable[Rational](y, one)),
	)
	b := NewIdeal(FromVariable[Rational](x, one), FromVariable[Rational](y, one))

	eq, err := a.Equal(b)
	require.NoError(t, err)
	assert.True(t, eq)

	c := NewIdeal(FromVariable[Rational](x, two))
	eq, err = a.Equal(c)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestIdealIsSubsetOf(t *testing.T) {
	x, y := Var("x"), Var("y")
	one := rat(1)

	small := NewIdeal(FromVariable[Rational](x, one).Mul(FromVariable[Rational](y, one)))
	big := NewIdeal(FromVariable[Rational](x, one))

	ok, err := small.IsSubsetOf(big)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = big.IsSubsetOf(small)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEliminationIdealKeepsOnlyPermittedVariables(t *testing.T) {
	x, y, z := Var("x"), Var("y"), Var("z")
	one := rat(1)

	onlyY := FromVariable[Rational](y, one)
	mixed := FromVariable[Rational](x, one).Add(FromVariable[Rational](z, one))

	kept := EliminationIdeal([]*Polynomial[Rational]{onlyY, mixed}, []Variable{y})
	require.Len(t, kept, 1)
	assert.True(t, kept[0].Equal(onlyY))
}
