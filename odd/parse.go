package odd

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a Polynomial from text.
//
// Terms are separated by TermSeparator. Within a term, whitespace
// separates tokens: the first token is the signed integer coefficient,
// the remaining tokens are non-negative integer exponents in ascending
// generator order (trailing generators default to exponent 0). Terms
// are merged canonically, so "1 1/1 1" parses to "2 1" and "1 1/-1 1"
// parses to the zero polynomial.
//
// A missing or non-integer coefficient, or a negative or non-integer
// exponent, fails with ErrParse; a failed parse returns only the error,
// never a partially built polynomial.
func Parse(input string) (Polynomial, error) {
	var poly Polynomial
	for _, term := range strings.Split(input, TermSeparator) {
		fields := strings.Fields(term)
		if len(fields) == 0 {
			return Polynomial{}, fmt.Errorf("%w: empty term %q", ErrParse, term)
		}

		coefficient, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return Polynomial{}, fmt.Errorf("%w: invalid coefficient %q", ErrParse, fields[0])
		}

		powers := make([]int, 0, len(fields)-1)
		for _, tok := range fields[1:] {
			p, err := strconv.Atoi(tok)
			if err != nil || p < 0 {
				return Polynomial{}, fmt.Errorf("%w: invalid power %q", ErrParse, tok)
			}
			powers = append(powers, p)
		}

		poly.AddMonomial(Monomial{Coefficient: coefficient, Powers: powers})
	}

	return poly, nil
}
