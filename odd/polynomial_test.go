package odd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nilhecke/odd"
)

// TestPolynomial_AddMonomial_CanonicalMerge verifies the single merge
// funnel: same-support accumulation (across zero-padding), deletion on
// cancellation, and appending of fresh supports.
func TestPolynomial_AddMonomial_CanonicalMerge(t *testing.T) {
	var p odd.Polynomial

	p.AddMonomial(odd.New(2, []int{1}))
	p.AddMonomial(odd.New(3, []int{1, 0, 0}))
	require.Equal(t, 1, p.Len(), "zero-padded same supports must merge into one term")
	assert.Equal(t, int64(5), p.Terms()[0].Coefficient, "coefficients accumulate on merge")

	p.AddMonomial(odd.New(-5, []int{1}))
	assert.True(t, p.IsZero(), "a term cancelled to zero must be deleted")

	p.AddMonomial(odd.New(0, []int{9}))
	assert.True(t, p.IsZero(), "the zero monomial is a no-op")
}

// TestPolynomial_Add_Identity verifies P + 0 == P and the absence of
// zero-coefficient terms after any merge sequence.
func TestPolynomial_Add_Identity(t *testing.T) {
	p, err := odd.Parse("2 1/1 0 1")
	require.NoError(t, err, "fixture must parse")

	sum := p.Add(odd.Polynomial{})
	assert.True(t, sum.Equal(p), "the zero polynomial is the additive identity")
	for _, term := range sum.Terms() {
		assert.False(t, term.IsZero(), "canonical form carries no zero terms")
	}
}

// TestPolynomial_Add_DistinctSupports checks that 1,0 and 0,1 do not
// merge: the sum keeps two terms.
func TestPolynomial_Add_DistinctSupports(t *testing.T) {
	p1, err := odd.Parse("1 1 0")
	require.NoError(t, err, "first fixture must parse")
	p2, err := odd.Parse("1 0 1")
	require.NoError(t, err, "second fixture must parse")

	sum := p1.Add(p2)
	assert.Equal(t, 2, sum.Len(), "distinct supports must not merge")
}

// TestPolynomial_Mul_ZeroAnnihilates verifies 0 * P == P * 0 == 0.
func TestPolynomial_Mul_ZeroAnnihilates(t *testing.T) {
	p, err := odd.Parse("3 2 1/-1 0 0 1")
	require.NoError(t, err, "fixture must parse")

	var zero odd.Polynomial
	assert.True(t, zero.Mul(p).IsZero(), "0 * P must be zero")
	assert.True(t, p.Mul(zero).IsZero(), "P * 0 must be zero")
}

// TestPolynomial_Mul_Distributivity verifies (P1 + P2) * Q == P1*Q + P2*Q.
func TestPolynomial_Mul_Distributivity(t *testing.T) {
	p1, err := odd.Parse("1 2/-2 0 1")
	require.NoError(t, err, "p1 must parse")
	p2, err := odd.Parse("3 1 1/1")
	require.NoError(t, err, "p2 must parse")
	q, err := odd.Parse("1 1/1 0 2")
	require.NoError(t, err, "q must parse")

	lhs := p1.Add(p2).Mul(q)
	rhs := p1.Mul(q).Add(p2.Mul(q))
	assert.True(t, lhs.Equal(rhs), "multiplication must distribute over addition")
}

// TestPolynomial_KeyEqual_OrderInsensitive builds one polynomial in two
// insertion orders and checks hash/equality agreement.
func TestPolynomial_KeyEqual_OrderInsensitive(t *testing.T) {
	var a, b odd.Polynomial
	a.AddMonomial(odd.New(1, []int{1}))
	a.AddMonomial(odd.New(2, []int{0, 1}))
	b.AddMonomial(odd.New(2, []int{0, 1}))
	b.AddMonomial(odd.New(1, []int{1}))

	assert.NotEqual(t, a.String(), b.String(), "display order follows insertion order")
	assert.Equal(t, a.Key(), b.Key(), "canonical keys must ignore insertion order")
	assert.True(t, a.Equal(b), "structural equality must ignore insertion order")
}

// TestPolynomial_Degree covers the degree accessor.
func TestPolynomial_Degree(t *testing.T) {
	p, err := odd.Parse("1 2 1/1 0 0 1")
	require.NoError(t, err, "fixture must parse")

	assert.Equal(t, 3, p.Degree(), "degree is the maximum term degree")
	assert.Equal(t, 0, odd.Polynomial{}.Degree(), "the zero polynomial has degree 0")
}

// TestPolynomial_TermsCopy guards against aliasing of the internal slice.
func TestPolynomial_TermsCopy(t *testing.T) {
	p, err := odd.Parse("2 1")
	require.NoError(t, err, "fixture must parse")

	terms := p.Terms()
	terms[0].Coefficient = 99
	assert.Equal(t, int64(2), p.Terms()[0].Coefficient, "Terms must hand out a copy")
}
