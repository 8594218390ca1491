package groebner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRationalRootFinderWorkedExample checks that
// 2x^3 - 5x^2 - 4x + 3 = 2(x-3)(x-1/2)(x+1) has rational roots {3, 1/2, -1}.
func TestRationalRootFinderWorkedExample(t *testing.T) {
	x := Var("x")
	f := FromTerms(
		T(mustMonomial(map[Variable]int{x: 3}), rat(2)),
		T(mustMonomial(map[Variable]int{x: 2}), rat(-5)),
		T(mustMonomial(map[Variable]int{x: 1}), rat(-4)),
		T(Identity(), rat(3)),
	)

	roots, err := RationalRootFinder[Rational](f, x)
	require.NoError(t, err)

	want := map[string]bool{"3": true, "1/2": true, "-1": true}
	got := map[string]bool{}
	for _, r := range roots {
		got[r.String()] = true
	}
	assert.Equal(t, want, got)

	for _, r := range roots {
		val, err := f.Evaluate(map[Variable]Rational{x: r})
		require.NoError(t, err)
		assert.True(t, val.IsZero())
	}
}

func TestRationalRootFinderNoRationalRoots(t *testing.T) {
	x := Var("x")
	// x^2 + 1 has no real roots at all, let alone rational ones.
	f := FromTerms(
		T(mustMonomial(map[Variable]int{x: 2}), rat(1)),
		T(Identity(), rat(1)),
	)
	roots, err := RationalRootFinder[Rational](f, x)
	require.NoError(t, err)
	assert.Empty(t, roots)
}

// TestSolveSystemInconsistentFailsInEveryExtension reproduces an
// inconsistent linear system: x+y=1 and x+y=2 Lex-reduce to the basis {1},
// so SolveSystem reports the variety is empty in every field extension.
func TestSolveSystemInconsistentFailsInEveryExtension(t *testing.T) {
	x, y := Var("x"), Var("y")

	f1 := FromTerms( // x + y - 1
		T(mustMonomial(map[Variable]int{x: 1}), rat(1)),
		T(mustMonomial(map[Variable]int{y: 1}), rat(1)),
		T(Identity(), rat(-1)),
	)
	f2 := FromTerms( // x + y - 2
		T(mustMonomial(map[Variable]int{x: 1}), rat(1)),
		T(mustMonomial(map[Variable]int{y: 1}), rat(1)),
		T(Identity(), rat(-2)),
	)

	_, err := SolveSystem([]*Polynomial[Rational]{f1, f2}, []Variable{x, y}, RationalRootFinder[Rational])
	assert.ErrorIs(t, err, ErrNoSolutionsInExtension)
}

// TestSolveSystemNoRationalRootsReturnsEmpty covers the case where the Lex
// basis is nontrivial but the univariate factor has no rational root: the
// variety is nonempty over some extension field but SolveSystem, restricted
// to rational solutions by its RootFinder, reports no solutions without
// error.
func TestSolveSystemNoRationalRootsReturnsEmpty(t *testing.T) {
	x, y := Var("x"), Var("y")

	f1 := FromTerms( // x^2 + 1
		T(mustMonomial(map[Variable]int{x: 2}), rat(1)),
		T(Identity(), rat(1)),
	)
	f2 := FromTerms( // y - 1
		T(mustMonomial(map[Variable]int{y: 1}), rat(1)),
		T(Identity(), rat(-1)),
	)

	assignments, err := SolveSystem([]*Polynomial[Rational]{f1, f2}, []Variable{x, y}, RationalRootFinder[Rational])
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func TestSolveSystemUniqueSolution(t *testing.T) {
	x, y := Var("x"), Var("y")

	f1 := FromTerms( // x - 1
		T(mustMonomial(map[Variable]int{x: 1}), rat(1)),
		T(Identity(), rat(-1)),
	)
	f2 := FromTerms( // y - 2
		T(mustMonomial(map[Variable]int{y: 1}), rat(1)),
		T(Identity(), rat(-2)),
	)

	assignments, err := SolveSystem([]*Polynomial[Rational]{f1, f2}, []Variable{x, y}, RationalRootFinder[Rational])
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.True(t, assignments[0][x].Equal(rat(1)))
	assert.True(t, assignments[0][y].Equal(rat(2)))
}

func TestSolveSystemInfiniteSolutions(t *testing.T) {
	x, y := Var("x"), Var("y")

	// x - y == 0 alone is positive-dimensional.
	f1 := FromTerms(
		T(mustMonomial(map[Variable]int{x: 1}), rat(1)),
		T(mustMonomial(map[Variable]int{y: 1}), rat(-1)),
	)

	_, err := SolveSystem([]*Polynomial[Rational]{f1}, []Variable{x, y}, RationalRootFinder[Rational])
	assert.ErrorIs(t, err, ErrInfiniteSolutions)
}

func TestSolveSystemNoSolutionsInAnyExtension(t *testing.T) {
	x := Var("x")
	// 1 == 0 is never satisfiable, in any field extension.
	unit := FromConstant(rat(1))

	_, err := SolveSystem([]*Polynomial[Rational]{unit}, []Variable{x}, RationalRootFinder[Rational])
	assert.ErrorIs(t, err, ErrNoSolutionsInExtension)
}

func TestCharacteristicEquation(t *testing.T) {
	x, y := Var("x"), Var("y")

	f1 := FromTerms( // x^2 - y
		T(mustMonomial(map[Variable]int{x: 2}), rat(1)),
		T(mustMonomial(map[Variable]int{y: 1}), rat(-1)),
	)
	f2 := FromTerms( // y - 4
		T(mustMonomial(map[Variable]int{y: 1}), rat(1)),
		T(Identity(), rat(-4)),
	)

	poly, ok, err := CharacteristicEquation([]*Polynomial[Rational]{f1, f2}, []Variable{x, y}, x)
	require.NoError(t, err)
	require.True(t, ok)

	roots, err := RationalRootFinder[Rational](poly, x)
	require.NoError(t, err)
	want := map[string]bool{"2": true, "-2": true}
	got := map[string]bool{}
	for _, r := range roots {
		got[r.String()] = true
	}
	assert.Equal(t, want, got)
}
