// Package bloom provides probabilistic seen-link tracking across scans.
package bloom

import (
	"io"

	"github.com/bits-and-blooms/bloom/v3"
)

// Default sizing for the seen-links store: a few weeks of daily scans.
const (
	DefaultExpectedLinks     = 4096
	DefaultFalsePositiveRate = 0.01
)

// SeenLinks tracks record links that earlier scans already surfaced, so
// repeat searches can flag or skip known results cheaply. False positives
// are possible (a new link reported as seen); false negatives are not, so
// the exact link-based deduplication in aggregation stays authoritative.
type SeenLinks struct {
	f *bloom.BloomFilter
}

// NewSeenLinks creates a filter sized for n expected links with the given
// false positive rate.
func NewSeenLinks(n uint, fpRate float64) *SeenLinks {
	return &SeenLinks{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Remember adds a link to the filter.
func (s *SeenLinks) Remember(link string) {
	s.f.AddString(link)
}

// Seen returns true if the link might have been remembered.
func (s *SeenLinks) Seen(link string) bool {
	return s.f.TestString(link)
}

// EstimatedCount returns the approximate number of remembered links.
func (s *SeenLinks) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}

// WriteTo serializes the filter so it can be restored in a later run.
func (s *SeenLinks) WriteTo(w io.Writer) (int64, error) {
	return s.f.WriteTo(w)
}

// ReadSeenLinks restores a filter written by WriteTo.
func ReadSeenLinks(r io.Reader) (*SeenLinks, error) {
	var f bloom.BloomFilter
	if _, err := f.ReadFrom(r); err != nil {
		return nil, err
	}
	return &SeenLinks{f: &f}, nil
}
