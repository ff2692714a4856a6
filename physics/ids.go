package physics

import "sync/atomic"

// IDSource hands out body ids. Ids from one source increase monotonically
// and are never reused; share a single source between worlds to keep ids
// unique across them.
type IDSource struct {
	last atomic.Uint64
}

// defaultIDs serves NewBody calls without a source and every world that
// has not been given one.
var defaultIDs = NewIDSource()

// NewIDSource returns a source whose first id is 1.
func NewIDSource() *IDSource {
	return &IDSource{}
}

// Next returns the next id. Safe for concurrent use.
func (s *IDSource) Next() uint64 {
	return s.last.Add(1)
}
