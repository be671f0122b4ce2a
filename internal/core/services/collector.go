package services

import "github.com/custodia-labs/onebox/internal/core/domain"

// collector feeds authorized entries into a ResultSet and counts every
// authorized match, including those past the entry limit.
type collector struct {
	res     *domain.ResultSet
	matches int
}

func newCollector(res *domain.ResultSet) *collector {
	return &collector{res: res}
}

// countMatch records one candidate that passed the visibility gate.
func (c *collector) countMatch() {
	c.matches++
}

// canAccept returns true while the ResultSet has room.
func (c *collector) canAccept() bool {
	return c.res.CanAddResult()
}

// add appends an entry; it fails once the ResultSet is full.
func (c *collector) add(entry *domain.ModuleResult) error {
	return c.res.AddResult(entry)
}
