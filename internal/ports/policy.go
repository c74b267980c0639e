package ports

import "time"

// Policy collects the acquisition-loop tunables.
type Policy struct {
	// ChunkSize is the chunk length requested with every waveform stream.
	ChunkSize int
	// IdleSleep is the pause between iterations when no symbols are
	// available or the server still reports the acquisition fetched last.
	IdleSleep time.Duration
	// CoherenceRetries bounds the refetches when headers straddle two
	// acquisitions.
	CoherenceRetries int

	KeepAliveInterval time.Duration
	// KeepAliveMisses is the consecutive-failure count that breaks the
	// session.
	KeepAliveMisses int

	// Normalized selects the float-encoded stream instead of raw bytes.
	Normalized bool

	// Parallel-read experiment (off unless requested).
	ParallelReads     bool
	ParallelThreshold int
	ParallelWorkers   int
}
