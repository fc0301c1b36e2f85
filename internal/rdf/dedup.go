package rdf

import "sync"

// CodeSet tracks natural-code identifiers already emitted during a run.
// Membership is keyed by the external code, not object identity.
type CodeSet struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewCodeSet returns an empty set.
func NewCodeSet() *CodeSet {
	return &CodeSet{seen: make(map[string]struct{})}
}

// Add inserts code and reports whether it was newly added. The check and
// insert happen atomically.
func (s *CodeSet) Add(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[code]; ok {
		return false
	}
	s.seen[code] = struct{}{}
	return true
}

// Len returns the number of distinct codes seen.
func (s *CodeSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}
