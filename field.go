package groebner

import (
	"fmt"
	"math/big"
)

// Field is the arithmetic contract the kernel consumes. It is the only
// place the algebra layer touches concrete numbers; everything above it
// (Monomial, Polynomial, Ideal, the solver) is generic over F.
//
// F is expected to satisfy field axioms (commutative ring with inverses
// for every nonzero element); the kernel never checks this, it only calls
// the methods below.
type Field[F any] interface {
	Add(F) F
	Sub(F) F
	Mul(F) F
	// Div returns ErrDivisionByZero if the receiver or argument convention
	// requires dividing by the additive identity.
	Div(F) (F, error)
	Neg() F
	// Equal is exact structural equality, not an epsilon comparison.
	Equal(F) bool
	// IsZero is the field's own "is zero" predicate. Exact field types
	// (Rational) use structural equality with the additive identity;
	// inexact floating types are expected to use |c| < machine epsilon.
	// Every polynomial arithmetic operation purges terms whose coefficient
	// becomes zero under this predicate.
	IsZero() bool
	// FromInt64 embeds a signed integer into F. Called on an existing
	// value only to select the concrete type; the receiver's own value is
	// ignored.
	FromInt64(int64) F
	String() string
}

// RationalField extends Field with the numerator/denominator accessors and
// exact-fraction constructor the rational-roots finder needs — backed
// here directly by *big.Int, which already provides gcd, lcm, modulo, and
// absolute value.
type RationalField[F any] interface {
	Field[F]
	Numerator() *big.Int
	Denominator() *big.Int
	FromBigRat(*big.Rat) F
}

// Rational is the reference exact-arithmetic Field implementation: a
// wrapper around math/big.Rat. Its zero value is the field zero (big.Rat's
// zero value already represents 0/1), so Rational{} is usable without
// construction, matching the Field contract's FromInt64-on-a-zero-value
// convention.
type Rational struct {
	r big.Rat
}

// NewRational constructs p/q. q == 0 panics, matching gosymbol.go's own
// Num/F constructor convention — construction-time misuse is a programmer
// error, not a runtime condition callers branch on.
func NewRational(p, q int64) Rational {
	if q == 0 {
		panic("groebner: NewRational: zero denominator")
	}
	var out big.Rat
	out.SetFrac(big.NewInt(p), big.NewInt(q))
	return Rational{out}
}

// RationalFromInt is NewRational(n, 1).
func RationalFromInt(n int64) Rational {
	var out big.Rat
	out.SetInt64(n)
	return Rational{out}
}

// RationalFromBigRat copies an existing *big.Rat.
func RationalFromBigRat(v *big.Rat) Rational {
	var out big.Rat
	out.Set(v)
	return Rational{out}
}

func (a Rational) Add(b Rational) Rational { var out big.Rat; out.Add(&a.r, &b.r); return Rational{out} }
func (a Rational) Sub(b Rational) Rational { var out big.Rat; out.Sub(&a.r, &b.r); return Rational{out} }
func (a Rational) Mul(b Rational) Rational { var out big.Rat; out.Mul(&a.r, &b.r); return Rational{out} }

func (a Rational) Div(b Rational) (Rational, error) {
	if b.IsZero() {
		return Rational{}, ErrDivisionByZero
	}
	var out big.Rat
	out.Quo(&a.r, &b.r)
	return Rational{out}, nil
}

func (a Rational) Neg() Rational { var out big.Rat; out.Neg(&a.r); return Rational{out} }

func (a Rational) Equal(b Rational) bool { return a.r.Cmp(&b.r) == 0 }
func (a Rational) IsZero() bool          { return a.r.Sign() == 0 }
func (a Rational) FromInt64(n int64) Rational {
	return RationalFromInt(n)
}

func (a Rational) Numerator() *big.Int   { return new(big.Int).Set(a.r.Num()) }
func (a Rational) Denominator() *big.Int { return new(big.Int).Set(a.r.Denom()) }
func (a Rational) FromBigRat(v *big.Rat) Rational {
	return RationalFromBigRat(v)
}

func (a Rational) IsInteger() bool { return a.r.IsInt() }
func (a Rational) BigRat() *big.Rat {
	return new(big.Rat).Set(&a.r)
}

func (a Rational) String() string {
	if a.r.IsInt() {
		return a.r.Num().String()
	}
	return a.r.RatString()
}

// LaTeX renders a/b as \frac{a}{b}, matching gosymbol.go's Num.LaTeX
// convention.
func (a Rational) LaTeX() string {
	if a.r.IsInt() {
		return a.r.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(&a.r)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return fmt.Sprintf("%s\\frac{%s}{%s}", sign, v.Num().String(), v.Denom().String())
}

var (
	_ Field[Rational]         = Rational{}
	_ RationalField[Rational] = Rational{}
)
