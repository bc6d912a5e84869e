package veb

// Stats is a snapshot of a set's instrumentation.
//
// Visits counts entries into dense and sparse node methods since the set
// was created or ResetStats was called. Every operation enters at most
// Levels(width) of them.
type Stats struct {
	Visits      uint64
	Leaves      PoolStats
	Dense       PoolStats
	SparseNodes int
}

// Stats returns the current counters.
func (s *Set[K]) Stats() Stats {
	return Stats{
		Visits:      s.a.visits.Load(),
		Leaves:      s.a.leaves.stats(),
		Dense:       s.a.denses.stats(),
		SparseNodes: s.a.sparses,
	}
}

// ResetStats zeroes the visit counter.
func (s *Set[K]) ResetStats() {
	s.a.visits.Store(0)
}
