package schubert

import (
	"sort"

	"github.com/katalvlaran/nilhecke/odd"
)

// Set is a collection of distinct polynomials, keyed by their canonical
// order-insensitive form. Two structurally equal polynomials occupy one
// slot no matter the term insertion order they were built in.
type Set struct {
	members map[string]odd.Polynomial
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{members: make(map[string]odd.Polynomial)}
}

// Add inserts p and reports whether it was not already present.
func (s *Set) Add(p odd.Polynomial) bool {
	k := p.Key()
	if _, ok := s.members[k]; ok {
		return false
	}
	s.members[k] = p

	return true
}

// Contains reports whether a polynomial structurally equal to p is in
// the set.
func (s *Set) Contains(p odd.Polynomial) bool {
	_, ok := s.members[p.Key()]

	return ok
}

// Len returns the number of distinct polynomials in the set.
func (s *Set) Len() int { return len(s.members) }

// Polynomials returns the members sorted by canonical key, so iteration
// order is deterministic across runs.
func (s *Set) Polynomials() []odd.Polynomial {
	keys := make([]string, 0, len(s.members))
	for k := range s.members {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]odd.Polynomial, len(keys))
	for i, k := range keys {
		out[i] = s.members[k]
	}

	return out
}

// Equal reports whether s and t contain exactly the same polynomials.
func (s *Set) Equal(t *Set) bool {
	if s.Len() != t.Len() {
		return false
	}
	for k := range s.members {
		if _, ok := t.members[k]; !ok {
			return false
		}
	}

	return true
}
