package odd

import (
	"strconv"
	"strings"
)

// String renders m with its sign: a leading "-" for a negative
// coefficient, then the unsigned body.
func (m Monomial) String() string {
	var b strings.Builder
	if m.Coefficient < 0 {
		b.WriteByte('-')
	}
	m.writeBody(&b)

	return b.String()
}

// writeBody renders m without its sign: the absolute coefficient
// (omitted when it is 1 and at least one generator prints), then each
// nonzero exponent as "x_i^p", space separated. A monomial with all
// exponents zero prints just the absolute coefficient; the zero
// monomial prints "0".
func (m Monomial) writeBody(b *strings.Builder) {
	if m.IsZero() {
		b.WriteString("0")

		return
	}

	abs := m.Coefficient
	if abs < 0 {
		abs = -abs
	}

	pos := lastNonzero(m.Powers)
	if pos < 0 {
		b.WriteString(strconv.FormatInt(abs, 10))

		return
	}

	if abs != 1 {
		b.WriteString(strconv.FormatInt(abs, 10))
	}
	for i := 0; i <= pos; i++ {
		if m.Powers[i] == 0 {
			continue
		}
		b.WriteString("x_")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(m.Powers[i]))
		if i < pos {
			b.WriteByte(' ')
		}
	}
}

// String renders p in display form: terms in insertion order, the
// first signed in place, the rest joined with " + " or " - " and the
// sign stripped from the term body. The zero polynomial prints "0".
func (p Polynomial) String() string {
	if len(p.terms) == 0 {
		return "0"
	}

	var b strings.Builder
	b.WriteString(p.terms[0].String())
	for _, t := range p.terms[1:] {
		if t.Coefficient < 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
		t.writeBody(&b)
	}

	return b.String()
}
