package ports

import "github.com/tektronix/TekHSI/internal/domain"

// AcqFilter decides whether a candidate acquisition is accepted. prev holds
// the headers of the previous candidate, whether it was accepted or
// rejected, and is nil for the first candidate. Filters must be pure; a
// panic inside one is treated as a reject.
type AcqFilter func(prev, cur domain.HeaderSet) bool

// BundleSink consumes committed acquisition bundles. Sinks run synchronously
// on the pipeline worker, so a slow sink delays the next commit.
type BundleSink interface {
	Deliver(b *domain.AcquisitionBundle) error
	Name() string
}
