// Package pipeline runs the background producer: one iteration per
// server-advertised acquisition, fetched symbol by symbol, checked for
// coherence, filtered, and committed through the gate.
package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tektronix/TekHSI/internal/app/fetch"
	"github.com/tektronix/TekHSI/internal/app/gate"
	"github.com/tektronix/TekHSI/internal/domain"
	"github.com/tektronix/TekHSI/internal/ports"
)

// Pipeline is the single producer worker. It owns the in-flight bundle
// until the gate accepts it.
type Pipeline struct {
	inst    ports.Instrument
	fetcher *fetch.Fetcher
	gate    *gate.Gate
	pol     ports.Policy
	obs     ports.Observability

	mu        sync.Mutex
	filter    ports.AcqFilter
	callback  ports.BundleSink
	sinks     []ports.BundleSink
	selection []string // user selection, folded; nil means all
	available []string // last advertised set

	prevTransID uint64
	prevHeaders domain.HeaderSet
}

func New(inst ports.Instrument, f *fetch.Fetcher, g *gate.Gate, pol ports.Policy, obs ports.Observability) *Pipeline {
	return &Pipeline{
		inst:    inst,
		fetcher: f,
		gate:    g,
		pol:     pol,
		obs:     obs,
	}
}

// SetFilter replaces the acceptance filter; it takes effect from the next
// candidate. A nil filter accepts every acquisition.
func (p *Pipeline) SetFilter(f ports.AcqFilter) {
	p.mu.Lock()
	p.filter = f
	p.mu.Unlock()
}

// SetCallback replaces the user callback sink; nil removes it.
func (p *Pipeline) SetCallback(s ports.BundleSink) {
	p.mu.Lock()
	p.callback = s
	p.mu.Unlock()
}

// AddSink appends a sink invoked after each commit, in commit order.
func (p *Pipeline) AddSink(s ports.BundleSink) {
	p.mu.Lock()
	p.sinks = append(p.sinks, s)
	p.mu.Unlock()
}

// SetSelection restricts the symbols fetched each iteration. nil selects
// every advertised symbol.
func (p *Pipeline) SetSelection(symbols []string) {
	var folded []string
	for _, s := range symbols {
		folded = append(folded, strings.ToLower(s))
	}
	p.mu.Lock()
	p.selection = folded
	p.mu.Unlock()
}

// Available returns the symbol set advertised by the server at the last
// completed discovery.
func (p *Pipeline) Available() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.available...)
}

// Run loops until the context is cancelled or a session RPC fails. The
// returned error is nil on clean cancellation.
func (p *Pipeline) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if err := p.iterate(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, gate.ErrSessionClosed) {
				return nil
			}
			return err
		}
	}
}

func (p *Pipeline) iterate(ctx context.Context) error {
	names, err := p.inst.AvailableNames(ctx)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.available = names
	selection := p.selection
	p.mu.Unlock()

	active := effectiveSet(selection, names)
	if len(active) == 0 {
		return p.idle(ctx)
	}

	results, ok, err := p.fetchCoherent(ctx, active)
	if err != nil {
		return err
	}
	if !ok {
		// Coherence retries exhausted; skip this iteration.
		p.obs.RecordRejected(0, "coherence")
		return nil
	}
	if len(results) == 0 {
		return p.idle(ctx)
	}

	transID := results[0].Header.TransID
	if transID == p.prevTransID {
		// Same acquisition the server already gave us.
		return p.idle(ctx)
	}
	p.prevTransID = transID

	entries := make(map[string]domain.Entry, len(results))
	headers := make(domain.HeaderSet, len(results))
	for _, r := range results {
		key := strings.ToLower(r.Header.SourceName)
		entries[key] = domain.Entry{Header: r.Header, Waveform: r.Waveform}
		headers[key] = r.Header
	}

	p.mu.Lock()
	filter := p.filter
	callback := p.callback
	sinks := append([]ports.BundleSink(nil), p.sinks...)
	p.mu.Unlock()

	accepted := p.applyFilter(filter, p.prevHeaders, headers)
	p.prevHeaders = headers
	if !accepted {
		p.obs.RecordRejected(transID, "filter")
		return nil
	}

	bundle := domain.NewAcquisitionBundle(transID, time.Now(), entries)
	if err := p.gate.Offer(ctx, bundle); err != nil {
		return err
	}
	p.obs.IncCounter("tekhsi_acqs_committed_total", 1)
	p.obs.SetGauge("tekhsi_record_length", float64(recordLength(results)))

	if callback != nil {
		// Pin the committed bundle for the duration of the callback.
		scope, err := p.gate.Acquire(ctx, gate.AnyAcq, 0)
		if err != nil {
			return err
		}
		if err := callback.Deliver(bundle); err != nil {
			p.obs.LogError("bundle_callback_failed", err)
		}
		scope.Release()
	}
	for _, s := range sinks {
		if err := s.Deliver(bundle); err != nil {
			p.obs.LogError("bundle_sink_failed", err, ports.Field{Key: "sink", Value: s.Name()})
		}
	}
	return nil
}

// fetchCoherent retrieves every active symbol, refetching when the headers
// straddle two acquisitions. ok is false once the retry budget is spent.
func (p *Pipeline) fetchCoherent(ctx context.Context, active []string) ([]fetch.Result, bool, error) {
	for attempt := 0; ; attempt++ {
		results, err := p.fetchAll(ctx, active)
		if err == nil && coherent(results) {
			return results, true, nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil, false, err
			}
			p.obs.LogError("fetch_failed", err)
		} else {
			p.obs.LogDebug("acquisition straddle, refetching")
		}
		if attempt >= p.pol.CoherenceRetries {
			return nil, false, nil
		}
	}
}

func (p *Pipeline) fetchAll(ctx context.Context, active []string) ([]fetch.Result, error) {
	if p.pol.ParallelReads && len(active) >= p.pol.ParallelThreshold {
		return p.fetchParallel(ctx, active)
	}

	results := make([]fetch.Result, 0, len(active))
	for _, sym := range active {
		res, err := p.fetcher.Fetch(ctx, sym)
		if err != nil {
			if vanished(err) {
				continue
			}
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (p *Pipeline) fetchParallel(ctx context.Context, active []string) ([]fetch.Result, error) {
	slots := make([]*fetch.Result, len(active))
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(p.pol.ParallelWorkers)
	for i, sym := range active {
		i, sym := i, sym
		grp.Go(func() error {
			res, err := p.fetcher.Fetch(gctx, sym)
			if err != nil {
				if vanished(err) {
					return nil
				}
				return err
			}
			slots[i] = &res
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	results := make([]fetch.Result, 0, len(active))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results, nil
}

// applyFilter runs the acceptance filter, treating a panic inside it as a
// reject.
func (p *Pipeline) applyFilter(filter ports.AcqFilter, prev, cur domain.HeaderSet) (accepted bool) {
	if filter == nil {
		return true
	}
	defer func() {
		if r := recover(); r != nil {
			p.obs.LogError("acq_filter_panic", nil, ports.Field{Key: "panic", Value: r})
			accepted = false
		}
	}()
	return filter(prev, cur)
}

func (p *Pipeline) idle(ctx context.Context) error {
	select {
	case <-time.After(p.pol.IdleSleep):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// effectiveSet intersects the user selection with the advertised symbols,
// case-insensitively. A nil selection takes everything.
func effectiveSet(selection, names []string) []string {
	if selection == nil {
		out := make([]string, 0, len(names))
		for _, n := range names {
			out = append(out, strings.ToLower(n))
		}
		return out
	}
	advertised := make(map[string]struct{}, len(names))
	for _, n := range names {
		advertised[strings.ToLower(n)] = struct{}{}
	}
	out := make([]string, 0, len(selection))
	for _, s := range selection {
		if _, ok := advertised[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

func coherent(results []fetch.Result) bool {
	for i := 1; i < len(results); i++ {
		if results[i].Header.TransID != results[0].Header.TransID {
			return false
		}
	}
	return true
}

func vanished(err error) bool {
	var wfmErr *ports.WfmError
	return errors.As(err, &wfmErr) && wfmErr.Status == ports.WfmSourceNameMissing
}

func recordLength(results []fetch.Result) int {
	for _, r := range results {
		if n := r.Waveform.RecordLength(); n > 0 {
			return n
		}
	}
	return 0
}
