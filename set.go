package embedstr

import (
	"iter"
	"slices"
)

// Set is a collection of distinct EmbeddedString values.
// Values are bucketed by Hash and matched by Equal, so an embedded and a boxed value
// holding the same text are the same member.
//
// A Set is not safe for concurrent mutation.
type Set struct {
	buckets map[uint64][]EmbeddedString
	n       int
}

// NewSet creates an empty Set sized for roughly capacity members.
func NewSet(capacity int) *Set {
	return &Set{
		buckets: make(map[uint64][]EmbeddedString, capacity),
	}
}

// Add inserts e and reports whether it was not already present.
func (s *Set) Add(e EmbeddedString) bool {
	h := e.Hash()
	bucket := s.buckets[h]
	for i := range bucket {
		if bucket[i].Equal(e) {
			return false
		}
	}
	s.buckets[h] = append(bucket, e)
	s.n++
	return true
}

// Contains reports whether e is a member.
func (s *Set) Contains(e EmbeddedString) bool {
	for _, m := range s.buckets[e.Hash()] {
		if m.Equal(e) {
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (s *Set) Len() int {
	return s.n
}

// All returns an iterator over the members in no particular order.
func (s *Set) All() iter.Seq[EmbeddedString] {
	return func(yield func(EmbeddedString) bool) {
		for _, bucket := range s.buckets {
			for _, m := range bucket {
				if !yield(m) {
					return
				}
			}
		}
	}
}

// Sorted returns the members in byte-lexicographic order.
func (s *Set) Sorted() []EmbeddedString {
	res := make([]EmbeddedString, 0, s.n)
	for m := range s.All() {
		res = append(res, m)
	}
	slices.SortFunc(res, func(a, b EmbeddedString) int {
		return a.Compare(b)
	})
	return res
}
