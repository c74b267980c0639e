// Package gate implements the consistency-set coordinator: the single
// committed acquisition slot, the foreground wait modes, and the pin that
// keeps the producer from replacing the slot while a scope is open.
package gate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tektronix/TekHSI/internal/domain"
)

var (
	// ErrNoAccessScope is returned by GetData after the scope was released.
	ErrNoAccessScope = errors.New("tekhsi: no open access scope")
	// ErrUnknownSymbol is returned by GetData for a symbol absent from the
	// committed bundle.
	ErrUnknownSymbol = errors.New("tekhsi: unknown symbol")
	// ErrTimeout is returned when a wait exceeded its deadline.
	ErrTimeout = errors.New("tekhsi: wait timed out")
	// ErrSessionBroken is returned once the session is fatally lost.
	ErrSessionBroken = errors.New("tekhsi: session broken")
	// ErrSessionClosed is returned for entries after a clean shutdown.
	ErrSessionClosed = errors.New("tekhsi: session closed")
)

// WaitMode selects the precondition an Acquire call blocks on.
type WaitMode int

const (
	// NewData returns the committed bundle if it has not been observed via
	// GetData since its commit; otherwise it waits for the next commit.
	NewData WaitMode = iota
	// NextAcq waits for a bundle committed strictly after the call.
	NextAcq
	// Time sleeps for the configured delay, then behaves as NextAcq.
	Time
	// AnyAcq returns whatever is committed; it waits only if nothing has
	// ever been committed.
	AnyAcq
)

func (m WaitMode) String() string {
	switch m {
	case NextAcq:
		return "nextacq"
	case Time:
		return "time"
	case AnyAcq:
		return "anyacq"
	default:
		return "newdata"
	}
}

// Gate holds the committed acquisition and serializes foreground access to
// it. The mutex is the only lock on the hot path; it is never held while
// blocked and never across a callback.
type Gate struct {
	mu        sync.Mutex
	committed *domain.AcquisitionBundle
	observed  bool
	pinned    bool
	commits   uint64
	failed    error

	// changed is closed and replaced on every commit, release, and
	// failure; waiters re-check their precondition when it fires.
	changed chan struct{}
}

func New() *Gate {
	return &Gate{changed: make(chan struct{})}
}

// Offer publishes a bundle as the committed acquisition. It blocks while a
// foreground scope pins the slot; the producer's in-flight bundle is the
// single pending entry the pin-release flushes. Returns the gate's failure
// once the session is broken or closed.
func (g *Gate) Offer(ctx context.Context, b *domain.AcquisitionBundle) error {
	g.mu.Lock()
	for g.pinned && g.failed == nil {
		ch := g.changed
		g.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
		g.mu.Lock()
	}
	if g.failed != nil {
		err := g.failed
		g.mu.Unlock()
		return err
	}
	b.CommittedAt = time.Now()
	g.committed = b
	g.observed = false
	g.commits++
	g.bump()
	g.mu.Unlock()
	return nil
}

// Acquire blocks until the mode's precondition holds and no other scope is
// open, then pins the committed bundle and returns a scope over it. The
// context bounds the wait; a deadline expiry maps to ErrTimeout.
func (g *Gate) Acquire(ctx context.Context, mode WaitMode, after time.Duration) (*Scope, error) {
	if mode == Time {
		select {
		case <-time.After(after):
		case <-ctx.Done():
			return nil, waitErr(ctx)
		}
		mode = NextAcq
	}

	g.mu.Lock()
	entry := g.commits
	for {
		if g.failed != nil {
			err := g.failed
			g.mu.Unlock()
			return nil, err
		}
		if !g.pinned && g.ready(mode, entry) {
			g.pinned = true
			s := &Scope{g: g, bundle: g.committed}
			g.bump()
			g.mu.Unlock()
			return s, nil
		}
		ch := g.changed
		g.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return nil, waitErr(ctx)
		}
		g.mu.Lock()
	}
}

// ready is called with the mutex held.
func (g *Gate) ready(mode WaitMode, entry uint64) bool {
	switch mode {
	case NextAcq:
		return g.commits > entry
	case AnyAcq:
		return g.committed != nil
	default: // NewData
		return g.committed != nil && !g.observed
	}
}

// Fail wakes every waiter with err and refuses all further entries and
// offers. The first failure wins. Open scopes finish normally.
func (g *Gate) Fail(err error) {
	g.mu.Lock()
	if g.failed == nil {
		g.failed = err
		g.bump()
	}
	g.mu.Unlock()
}

// Err returns the gate's terminal error, if any.
func (g *Gate) Err() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.failed
}

// Commits returns the number of bundles committed so far.
func (g *Gate) Commits() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.commits
}

func (g *Gate) bump() {
	close(g.changed)
	g.changed = make(chan struct{})
}

// Scope is one open access window over a pinned bundle. Every GetData call
// inside it observes the same acquisition. Release must be called on every
// exit path; it is idempotent.
type Scope struct {
	g        *Gate
	bundle   *domain.AcquisitionBundle
	released bool
}

// GetData returns the typed waveform for a symbol, case-insensitively.
func (s *Scope) GetData(name string) (domain.Waveform, error) {
	s.g.mu.Lock()
	defer s.g.mu.Unlock()
	if s.released {
		return nil, ErrNoAccessScope
	}
	w, ok := s.bundle.Waveform(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, name)
	}
	s.g.observed = true
	return w, nil
}

// Bundle returns the pinned acquisition.
func (s *Scope) Bundle() *domain.AcquisitionBundle {
	return s.bundle
}

// Release ends the scope and lets the producer replace the committed slot.
func (s *Scope) Release() {
	s.g.mu.Lock()
	if !s.released {
		s.released = true
		s.g.pinned = false
		s.g.bump()
	}
	s.g.mu.Unlock()
}

func waitErr(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrTimeout
	}
	return ctx.Err()
}
