package odd

// New builds a Monomial from a coefficient and an exponent vector.
// The vector is copied, so the caller keeps ownership of powers.
func New(coefficient int64, powers []int) Monomial {
	cp := make([]int, len(powers))
	copy(cp, powers)

	return Monomial{Coefficient: coefficient, Powers: cp}
}

// X returns the single generator x_i (exponent 1, coefficient 1).
// Generators are numbered from 1; i < 1 yields the zero monomial.
func X(i int) Monomial {
	if i < 1 {
		return Monomial{}
	}
	powers := make([]int, i)
	powers[i-1] = 1

	return Monomial{Coefficient: 1, Powers: powers}
}

// IsZero reports whether m is the zero monomial.
func (m Monomial) IsZero() bool { return m.Coefficient == 0 }

// Degree returns the total exponent sum of m.
func (m Monomial) Degree() int {
	d := 0
	for _, p := range m.Powers {
		d += p
	}

	return d
}

// powerAt returns the exponent at index i under zero-padding.
func (m Monomial) powerAt(i int) int {
	if i < len(m.Powers) {
		return m.Powers[i]
	}

	return 0
}

// paddedPowers returns a fresh copy of m.Powers zero-padded to at least n entries.
func (m Monomial) paddedPowers(n int) []int {
	if n < len(m.Powers) {
		n = len(m.Powers)
	}
	cp := make([]int, n)
	copy(cp, m.Powers)

	return cp
}

// SameSupport reports whether m and o assign equal exponents to every
// generator, comparing the zero-padded vectors term by term.
func (m Monomial) SameSupport(o Monomial) bool {
	n := len(m.Powers)
	if len(o.Powers) > n {
		n = len(o.Powers)
	}
	for i := 0; i < n; i++ {
		if m.powerAt(i) != o.powerAt(i) {
			return false
		}
	}

	return true
}

// Scale returns m with its coefficient multiplied by c.
func (m Monomial) Scale(c int64) Monomial {
	return Monomial{Coefficient: m.Coefficient * c, Powers: m.paddedPowers(0)}
}

// Mul multiplies m by o under the odd sign convention.
//
// Exponents add index-wise; the sign tracks crossings of odd-exponent
// generators. Scanning o's powers left to right, a running remainder r
// starts at the sum of m's powers past index 0 (generator 1 is exempt
// from the grading); position i flips the sign iff both r and o's power
// there are odd, and afterwards r sheds m's original power at position
// i+1. The accounting order is part of the ring's definition: it is
// what makes the product associative.
func (m Monomial) Mul(o Monomial) Monomial {
	powers := m.paddedPowers(len(o.Powers))
	coefficient := m.Coefficient * o.Coefficient

	r := 0
	for i := 1; i < len(m.Powers); i++ {
		r += m.Powers[i]
	}
	for i, p := range o.Powers {
		powers[i] += p
		if r%2 != 0 && p%2 != 0 {
			coefficient = -coefficient
		}
		if r > 0 {
			r -= m.powerAt(i + 1)
		}
	}

	return Monomial{Coefficient: coefficient, Powers: powers}
}

// SignedSwap exchanges the exponents at strand n (positions n-1 and n,
// zero-padding as needed) and negates the coefficient iff their sum is
// odd. Requires n >= 1; supplying a smaller strand is a caller contract
// violation.
func (m Monomial) SignedSwap(n int) Monomial {
	powers := m.paddedPowers(n + 1)
	coefficient := m.Coefficient
	if (powers[n-1]+powers[n])%2 != 0 {
		coefficient = -coefficient
	}
	powers[n-1], powers[n] = powers[n], powers[n-1]

	return Monomial{Coefficient: coefficient, Powers: powers}
}

// ParityFlip negates the coefficient iff the exponent at position n-1
// (zero-padding as needed) is odd. No exponent moves. Requires n >= 1.
func (m Monomial) ParityFlip(n int) Monomial {
	powers := m.paddedPowers(n)
	coefficient := m.Coefficient
	if powers[n-1]%2 != 0 {
		coefficient = -coefficient
	}

	return Monomial{Coefficient: coefficient, Powers: powers}
}

// UnsignedSwap exchanges the exponents at positions n-2 and n-1
// (zero-padding to n+1 entries), leaving the coefficient untouched.
// Requires n >= 2.
func (m Monomial) UnsignedSwap(n int) Monomial {
	powers := m.paddedPowers(n + 1)
	powers[n-2], powers[n-1] = powers[n-1], powers[n-2]

	return Monomial{Coefficient: m.Coefficient, Powers: powers}
}
