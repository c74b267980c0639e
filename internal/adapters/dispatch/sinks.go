// Package dispatch provides the built-in bundle sinks: a plain callback
// wrapper and a channel-backed sink for select-based consumers.
package dispatch

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tektronix/TekHSI/internal/domain"
	"github.com/tektronix/TekHSI/internal/ports"
)

// ErrChannelSinkClosed is returned when a channel sink receives a bundle
// after being closed.
var ErrChannelSinkClosed = errors.New("tekhsi: channel sink closed")

// BundleFunc is the user-facing callback invoked with each committed
// bundle. It runs on the pipeline worker; a slow callback delays the next
// commit.
type BundleFunc func(*domain.AcquisitionBundle) error

// NewCallbackSink adapts a BundleFunc into a ports.BundleSink so callers
// can plug arbitrary functions without defining structs.
func NewCallbackSink(name string, fn BundleFunc) ports.BundleSink {
	if name == "" {
		name = "callback"
	}
	return &callbackSink{name: name, fn: fn}
}

// NewChannelSink exposes committed bundles via a channel; it returns the
// sink, the read-only channel, and a close function the caller should
// invoke during shutdown.
func NewChannelSink(name string, buffer int) (ports.BundleSink, <-chan *domain.AcquisitionBundle, func()) {
	if name == "" {
		name = "channel"
	}
	if buffer < 0 {
		buffer = 0
	}
	ch := make(chan *domain.AcquisitionBundle, buffer)
	s := &channelSink{
		name:   name,
		ch:     ch,
		closed: make(chan struct{}),
	}
	return s, ch, func() { s.close() }
}

type callbackSink struct {
	name string
	fn   BundleFunc
}

func (s *callbackSink) Deliver(b *domain.AcquisitionBundle) error {
	if s.fn == nil {
		return fmt.Errorf("callback sink %q: nil handler", s.name)
	}
	return s.fn(b)
}

func (s *callbackSink) Name() string { return s.name }

type channelSink struct {
	name   string
	ch     chan *domain.AcquisitionBundle
	closed chan struct{}
	once   sync.Once
}

func (s *channelSink) Deliver(b *domain.AcquisitionBundle) error {
	select {
	case <-s.closed:
		return ErrChannelSinkClosed
	default:
	}

	select {
	case <-s.closed:
		return ErrChannelSinkClosed
	case s.ch <- b:
		return nil
	}
}

func (s *channelSink) Name() string { return s.name }

func (s *channelSink) close() {
	s.once.Do(func() {
		close(s.closed)
		close(s.ch)
	})
}
