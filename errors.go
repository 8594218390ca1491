// errors.go — sentinel errors for the groebner package.
//
// Error policy:
//   - Only sentinel variables are exported.
//   - Callers branch with errors.Is(err, ErrX), never string comparison.
//   - Call sites wrap sentinels with fmt.Errorf("%w: ...", ErrX) to attach
//     context; sentinels themselves carry no formatted data.
package groebner

import "errors"

// ErrInvalidExponent indicates a negative exponent was supplied to a
// monomial constructor.
var ErrInvalidExponent = errors.New("groebner: invalid exponent")

// ErrNotDivisible indicates a monomial division where some resulting
// exponent would go negative.
var ErrNotDivisible = errors.New("groebner: monomial not divisible")

// ErrDivisionByZero indicates a field or polynomial division by the
// additive identity.
var ErrDivisionByZero = errors.New("groebner: division by zero")

// ErrUnknownVariable indicates Evaluate or Substitute referenced a
// variable that does not occur in the receiver.
var ErrUnknownVariable = errors.New("groebner: unknown variable")

// ErrNegativeExponent indicates Polynomial.Pow was called with a negative
// integer exponent.
var ErrNegativeExponent = errors.New("groebner: negative exponent")

// ErrInvalidOrder indicates a Weighted monomial order was constructed with
// a negative weight or a weight/permutation length mismatch.
var ErrInvalidOrder = errors.New("groebner: invalid monomial order")

// ErrNoSolutionsInExtension indicates a Lex Gröbner basis reduced to a
// basis containing a unit: the variety is empty in every field extension.
var ErrNoSolutionsInExtension = errors.New("groebner: no solutions in any field extension")

// ErrInfiniteSolutions indicates the solver detected a positive-dimensional
// variety during back-substitution.
var ErrInfiniteSolutions = errors.New("groebner: infinitely many solutions")
