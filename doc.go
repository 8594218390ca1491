// Package groebner is a symbolic computer-algebra kernel for multivariate
// polynomial rings over an arbitrary exact field.
//
// It computes reduced Gröbner bases under Lex, Graded Lex, Graded Reverse
// Lex and Weighted monomial orders; reduces polynomials modulo a basis;
// computes ideal sums, products, intersections, elimination ideals and
// membership; computes polynomial gcd/lcm; implicitizes polynomial and
// rational parametric varieties; and solves zero-dimensional systems by
// Lex-basis triangulation plus an injected univariate root finder.
//
// The kernel is deterministic and single-threaded: every operation runs to
// completion or returns a typed error, and no goroutine or channel is used
// anywhere in the core algorithms.
//
// Design goals:
//   - Exact arithmetic only — the Field contract is generic; Rational
//     (backed by math/big.Rat) is the reference implementation.
//   - Little mutable state. A Polynomial's leading-term cache and an
//     Ideal's Gröbner-basis cache are the only mutable fields, and both are
//     owned exclusively by the value that holds them. The one package-level
//     variable is the counter NewAuxVariable advances to number auxiliary
//     variables.
//   - Deterministic output: identical inputs under identical orders always
//     produce byte-identical bases and identically-ordered solution lists.
package groebner
