// Command groebner-cli is a demonstration driver for the groebner kernel.
//
// It is not part of the kernel's public contract — the driver program and
// CLI glue are deliberately kept out of the library itself. This binary
// exists only to exercise the library end to end.
//
// Usage:
//
//	groebner-cli -scenario grlex
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/njchilds90/groebner"
)

func main() {
	scenario := flag.String("scenario", "grlex", "worked scenario to run: grlex, lex, reduce, rational-roots, intersect")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
		With().Timestamp().Str("component", "groebner-cli").Logger()

	log.Info().Str("scenario", *scenario).Msg("running scenario")

	if err := run(*scenario, log); err != nil {
		log.Error().Err(err).Msg("scenario failed")
		os.Exit(1)
	}
}

func run(scenario string, log zerolog.Logger) error {
	switch scenario {
	case "grlex":
		return runGrlex(log)
	case "lex":
		return runLex(log)
	case "reduce":
		return runReduce(log)
	case "rational-roots":
		return runRationalRoots(log)
	case "intersect":
		return runIntersect(log)
	default:
		return fmt.Errorf("unknown scenario %q", scenario)
	}
}

func poly(terms ...groebner.Term[groebner.Rational]) *groebner.Polynomial[groebner.Rational] {
	return groebner.FromTerms(terms...)
}

func mono(exps map[groebner.Variable]int) groebner.Monomial {
	m, err := groebner.NewMonomial(exps)
	if err != nil {
		panic(err)
	}
	return m
}

func term(m groebner.Monomial, c groebner.Rational) groebner.Term[groebner.Rational] {
	return groebner.Term[groebner.Rational]{Monomial: m, Coeff: c}
}

// runGrlex computes the Gröbner basis of F = {x^3 - 2xy, x^2 y - 2y^2 + x}
// under Graded Lex with [x, y].
func runGrlex(log zerolog.Logger) error {
	x, y := groebner.Var("x"), groebner.Var("y")
	one := groebner.RationalFromInt(1)
	two := groebner.RationalFromInt(2)

	f1 := poly(
		term(mono(map[groebner.Variable]int{x: 3}), one),
		term(mono(map[groebner.Variable]int{x: 1, y: 1}), two.Neg()),
	)
	f2 := poly(
		term(mono(map[groebner.Variable]int{x: 2, y: 1}), one),
		term(mono(map[groebner.Variable]int{y: 2}), two.Neg()),
		term(mono(map[groebner.Variable]int{x: 1}), one),
	)

	order := groebner.NewGradedLexOrder([]groebner.Variable{x, y})
	basis, err := groebner.Groebner([]*groebner.Polynomial[groebner.Rational]{f1, f2}, order)
	if err != nil {
		return err
	}
	for _, g := range basis {
		log.Info().Str("generator", g.String()).Msg("basis element")
	}
	return nil
}

// runLex computes the Gröbner basis of a 3-variable cubic system under Lex.
func runLex(log zerolog.Logger) error {
	x, y, z := groebner.Var("x"), groebner.Var("y"), groebner.Var("z")
	one := groebner.RationalFromInt(1)

	f1 := poly(
		term(mono(map[groebner.Variable]int{x: 1}), one),
		term(mono(map[groebner.Variable]int{y: 1}), one),
		term(mono(map[groebner.Variable]int{z: 1}), one),
		term(groebner.Identity(), one.Neg()),
	)
	f2 := poly(
		term(mono(map[groebner.Variable]int{x: 2}), one),
		term(mono(map[groebner.Variable]int{y: 2}), one),
		term(mono(map[groebner.Variable]int{z: 2}), one),
		term(groebner.Identity(), groebner.RationalFromInt(3).Neg()),
	)
	f3 := poly(
		term(mono(map[groebner.Variable]int{x: 3}), one),
		term(mono(map[groebner.Variable]int{y: 3}), one),
		term(mono(map[groebner.Variable]int{z: 3}), one),
		term(groebner.Identity(), groebner.RationalFromInt(4).Neg()),
	)

	order := groebner.NewLexOrder([]groebner.Variable{x, y, z})
	basis, err := groebner.Groebner([]*groebner.Polynomial[groebner.Rational]{f1, f2, f3}, order)
	if err != nil {
		return err
	}
	for _, g := range basis {
		log.Info().Str("generator", g.String()).Msg("basis element")
	}
	return nil
}

// runReduce demonstrates that divisor order changes the quotients and
// remainder of multivariable division.
func runReduce(log zerolog.Logger) error {
	x, y := groebner.Var("x"), groebner.Var("y")
	one := groebner.RationalFromInt(1)

	f := poly(
		term(mono(map[groebner.Variable]int{x: 2, y: 1}), one),
		term(groebner.Identity(), one),
	)
	g1 := poly(
		term(mono(map[groebner.Variable]int{x: 1, y: 1}), one),
		term(groebner.Identity(), one),
	)
	g2 := poly(
		term(mono(map[groebner.Variable]int{y: 1}), one),
		term(groebner.Identity(), one),
	)

	order := groebner.NewLexOrder([]groebner.Variable{x, y})
	q, r, err := groebner.Reduce(f, []*groebner.Polynomial[groebner.Rational]{g1, g2}, order)
	if err != nil {
		return err
	}
	log.Info().Str("q1", q[0].String()).Str("q2", q[1].String()).Str("remainder", r.String()).Msg("divisors = [xy+1, y+1]")

	q, r, err = groebner.Reduce(f, []*groebner.Polynomial[groebner.Rational]{g2, g1}, order)
	if err != nil {
		return err
	}
	log.Info().Str("q1", q[0].String()).Str("q2", q[1].String()).Str("remainder", r.String()).Msg("divisors = [y+1, xy+1]")
	return nil
}

// runRationalRoots finds the rational roots of f = 2x^3 - 5x^2 - 4x + 3,
// which factors as 2(x-3)(x-1/2)(x+1).
func runRationalRoots(log zerolog.Logger) error {
	x := groebner.Var("x")
	f := poly(
		term(mono(map[groebner.Variable]int{x: 3}), groebner.RationalFromInt(2)),
		term(mono(map[groebner.Variable]int{x: 2}), groebner.RationalFromInt(-5)),
		term(mono(map[groebner.Variable]int{x: 1}), groebner.RationalFromInt(-4)),
		term(groebner.Identity(), groebner.RationalFromInt(3)),
	)
	roots, err := groebner.RationalRootFinder[groebner.Rational](f, x)
	if err != nil {
		return err
	}
	for _, r := range roots {
		log.Info().Str("root", r.String()).Msg("rational root")
	}
	return nil
}

// runIntersect demonstrates <x> ∩ <y> = <xy> in Q[x,y].
func runIntersect(log zerolog.Logger) error {
	x, y := groebner.Var("x"), groebner.Var("y")
	one := groebner.RationalFromInt(1)

	fx := poly(term(mono(map[groebner.Variable]int{x: 1}), one))
	fy := poly(term(mono(map[groebner.Variable]int{y: 1}), one))

	ix := groebner.NewIdeal(fx)
	iy := groebner.NewIdeal(fy)
	inter, err := ix.Intersect(iy)
	if err != nil {
		return err
	}
	basis, err := inter.GroebnerBasis()
	if err != nil {
		return err
	}
	for _, g := range basis {
		log.Info().Str("generator", g.String()).Msg("intersection basis element")
	}
	return nil
}
