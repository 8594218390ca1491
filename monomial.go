package groebner

import (
	"fmt"
	"strings"
)

// Monomial is a product of variable powers with strictly positive integer
// exponents. Zero exponents are never stored; the identity monomial
// (degree 0) is the empty exponent map.
//
// Monomial is an immutable value. It embeds a map, so it is not itself a
// valid Go map key — Polynomial keys its term map on Monomial.key()
// instead and stores the Monomial alongside its coefficient.
type Monomial struct {
	exps map[Variable]int
}

// Identity is the degree-0 monomial ("1").
func Identity() Monomial { return Monomial{} }

// NewMonomial constructs a monomial from a raw exponent map. Zero
// exponents are silently dropped; a negative exponent fails with
// ErrInvalidExponent.
func NewMonomial(exps map[Variable]int) (Monomial, error) {
	out := make(map[Variable]int, len(exps))
	for v, e := range exps {
		if e < 0 {
			return Monomial{}, fmt.Errorf("%w: %s has exponent %d", ErrInvalidExponent, v, e)
		}
		if e == 0 {
			continue
		}
		out[v] = e
	}
	if len(out) == 0 {
		return Monomial{}, nil
	}
	return Monomial{exps: out}, nil
}

// mustMonomial is NewMonomial without the error return, for internal call
// sites that build exponent maps by construction (never negative).
func mustMonomial(exps map[Variable]int) Monomial {
	m, err := NewMonomial(exps)
	if err != nil {
		panic(err)
	}
	return m
}

// VarPower is a convenience single-variable monomial v^e.
func VarPower(v Variable, e int) (Monomial, error) {
	if e == 0 {
		return Identity(), nil
	}
	return NewMonomial(map[Variable]int{v: e})
}

// Exponent returns the exponent of v in m, or 0 if v does not occur.
func (m Monomial) Exponent(v Variable) int { return m.exps[v] }

// Degree is the sum of all exponents.
func (m Monomial) Degree() int {
	total := 0
	for _, e := range m.exps {
		total += e
	}
	return total
}

// NumVariables is the number of distinct variables with a nonzero
// exponent.
func (m Monomial) NumVariables() int { return len(m.exps) }

// Variables returns the variables occurring in m, in canonical order.
func (m Monomial) Variables() []Variable {
	vs := make([]Variable, 0, len(m.exps))
	for v := range m.exps {
		vs = append(vs, v)
	}
	return sortVariables(vs)
}

// IsIdentity reports whether m is the degree-0 monomial.
func (m Monomial) IsIdentity() bool { return len(m.exps) == 0 }

// Mul returns m * n.
func (m Monomial) Mul(n Monomial) Monomial {
	out := make(map[Variable]int, len(m.exps)+len(n.exps))
	for v, e := range m.exps {
		out[v] = e
	}
	for v, e := range n.exps {
		out[v] += e
	}
	return mustMonomial(out)
}

// Div returns m / n, failing with ErrNotDivisible if any resulting
// exponent would go negative.
func (m Monomial) Div(n Monomial) (Monomial, error) {
	out := make(map[Variable]int, len(m.exps))
	for v, e := range m.exps {
		out[v] = e
	}
	for v, e := range n.exps {
		out[v] -= e
		if out[v] < 0 {
			return Monomial{}, fmt.Errorf("%w: %s^%d does not divide %s^%d", ErrNotDivisible, v, m.exps[v], v, n.exps[v])
		}
	}
	return NewMonomial(out)
}

// Divides reports whether b | a: every exponent of b is at most the
// corresponding exponent of a.
func Divides(b, a Monomial) bool {
	for v, e := range b.exps {
		if a.exps[v] < e {
			return false
		}
	}
	return true
}

// LCM returns the least common multiple of a and b: the pointwise maximum
// of their exponent vectors.
func LCM(a, b Monomial) Monomial {
	out := make(map[Variable]int, len(a.exps)+len(b.exps))
	for v, e := range a.exps {
		out[v] = e
	}
	for v, e := range b.exps {
		if e > out[v] {
			out[v] = e
		}
	}
	return mustMonomial(out)
}

// gcdExponents returns the pointwise minimum of a and b's exponent
// vectors — the monomial gcd, satisfying lcm(a,b)*gcd(a,b) == a*b.
func gcdExponents(a, b Monomial) Monomial {
	out := make(map[Variable]int)
	for v, e := range a.exps {
		if o, ok := b.exps[v]; ok {
			if o < e {
				e = o
			}
			out[v] = e
		}
	}
	return mustMonomial(out)
}

// Equal is exact structural equality of exponent vectors.
func (m Monomial) Equal(n Monomial) bool {
	if len(m.exps) != len(n.exps) {
		return false
	}
	for v, e := range m.exps {
		if n.exps[v] != e {
			return false
		}
	}
	return true
}

// Less is a stable tie-break order: compare by degree, then walk exponent
// entries in canonical variable order. It is used only to break ties inside
// containers — it is not a MonomialOrder used by the algebra.
func (m Monomial) Less(n Monomial) bool {
	if dm, dn := m.Degree(), n.Degree(); dm != dn {
		return dm < dn
	}
	// Walk the union of both monomials' variables in canonical order,
	// treating an absent variable as exponent 0. This single walk handles
	// both "one has the variable, the other doesn't" and "one entry set
	// is a prefix of the other": both reduce to a zero exponent losing to
	// a positive one at the first differing variable.
	seen := make(map[Variable]struct{}, len(m.exps)+len(n.exps))
	union := make([]Variable, 0, len(m.exps)+len(n.exps))
	for v := range m.exps {
		seen[v] = struct{}{}
		union = append(union, v)
	}
	for v := range n.exps {
		if _, ok := seen[v]; !ok {
			union = append(union, v)
		}
	}
	for _, v := range sortVariables(union) {
		if em, en := m.Exponent(v), n.Exponent(v); em != en {
			return em < en
		}
	}
	return false
}

// key is Monomial's comparable representation, used as the map key inside
// Polynomial's term map (Monomial itself embeds a map and so is not a
// valid Go map key).
func (m Monomial) key() string {
	vs := m.Variables()
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%s^%d", v.Name(), m.exps[v])
	}
	return strings.Join(parts, ",")
}

var superscriptDigits = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
}

func toSuperscript(n int) string {
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for _, r := range s {
		if r == '-' {
			b.WriteRune('⁻')
			continue
		}
		b.WriteRune(superscriptDigits[r])
	}
	return b.String()
}

// String renders m in canonical variable order with Unicode superscripts
// for exponents greater than 1, e.g. "x·y²". The identity monomial renders
// as "1".
func (m Monomial) String() string {
	if m.IsIdentity() {
		return "1"
	}
	vs := m.Variables()
	parts := make([]string, len(vs))
	for i, v := range vs {
		e := m.exps[v]
		if e == 1 {
			parts[i] = v.Name()
		} else {
			parts[i] = v.Name() + toSuperscript(e)
		}
	}
	return strings.Join(parts, "·")
}
