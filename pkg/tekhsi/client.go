// Package tekhsi is the high-speed waveform streaming client for Tektronix
// instruments. A Client keeps a session open, runs the acquisition pipeline
// in the background, and hands out consistent acquisition sets through
// AccessData.
package tekhsi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/tektronix/TekHSI/internal/adapters/dispatch"
	"github.com/tektronix/TekHSI/internal/adapters/grpchsi"
	"github.com/tektronix/TekHSI/internal/adapters/observability"
	"github.com/tektronix/TekHSI/internal/app/config"
	"github.com/tektronix/TekHSI/internal/app/fetch"
	"github.com/tektronix/TekHSI/internal/app/gate"
	"github.com/tektronix/TekHSI/internal/app/pipeline"
	"github.com/tektronix/TekHSI/internal/app/session"
	"github.com/tektronix/TekHSI/internal/ports"
)

// Errors surfaced by the client. ProtocolError and ConnectError carry
// details; see the aliases in types.go.
var (
	ErrNoAccessScope = gate.ErrNoAccessScope
	ErrUnknownSymbol = gate.ErrUnknownSymbol
	ErrTimeout       = gate.ErrTimeout
	ErrSessionBroken = gate.ErrSessionBroken
	ErrSessionClosed = gate.ErrSessionClosed
)

// AcqWaitOn selects how AccessData waits for data.
type AcqWaitOn = gate.WaitMode

const (
	// NewData waits only if the committed acquisition was already observed.
	NewData = gate.NewData
	// NextAcq waits for an acquisition committed after the call.
	NextAcq = gate.NextAcq
	// Time sleeps for the WithDelay duration, then waits like NextAcq.
	Time = gate.Time
	// AnyAcq takes whatever is committed, waiting only before the first
	// commit.
	AnyAcq = gate.AnyAcq
)

// Option customizes a Client at Connect time.
type Option func(*clientOptions)

type clientOptions struct {
	cfg        *config.Config
	symbols    []string
	callback   Callback
	filter     AcqFilter
	inst       ports.Instrument
	obs        ports.Observability
	clientName string
}

// Callback is invoked on the pipeline worker with each committed bundle.
// AccessData must not be called from inside it: the commit pin is held for
// the duration of the callback and re-entry would deadlock.
type Callback func(*AcquisitionBundle)

// WithActiveSymbols restricts the acquisition to the given symbols. The
// comparison against the instrument's advertised set is case-insensitive.
func WithActiveSymbols(symbols ...string) Option {
	return func(o *clientOptions) { o.symbols = symbols }
}

// WithCallback registers the new-data callback.
func WithCallback(fn Callback) Option {
	return func(o *clientOptions) { o.callback = fn }
}

// WithFilter installs the acceptance filter applied before each commit.
func WithFilter(f AcqFilter) Option {
	return func(o *clientOptions) { o.filter = f }
}

// WithConfig supplies a full configuration instead of the defaults.
func WithConfig(cfg *Config) Option {
	return func(o *clientOptions) { o.cfg = cfg }
}

// WithInstrument injects a custom transport (simulators, recorders, tests).
func WithInstrument(inst Instrument) Option {
	return func(o *clientOptions) { o.inst = inst }
}

// WithObservability plugs in a custom metrics/logging backend.
func WithObservability(obs Observability) Option {
	return func(o *clientOptions) { o.obs = obs }
}

// WithClientName overrides the generated session name.
func WithClientName(name string) Option {
	return func(o *clientOptions) { o.clientName = name }
}

// Client is one connected session. All methods are safe for concurrent use.
type Client struct {
	cfg      *config.Config
	inst     ports.Instrument
	session  *session.Manager
	gate     *gate.Gate
	pipeline *pipeline.Pipeline
	obs      ports.Observability

	metricsSrv *http.Server

	cancel       context.CancelFunc
	pipelineDone chan struct{}
	watchStop    chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// Connect opens a session with the instrument at url and starts the
// background acquisition pipeline. Close must be called to release the
// session.
func Connect(ctx context.Context, url string, opts ...Option) (*Client, error) {
	var o clientOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	cfg := o.cfg
	if cfg == nil {
		cfg = &config.Config{}
		cfg.ApplyDefaults()
		cfg.ApplyEnv()
		// Metrics serving is opt-in when no config file is given.
		cfg.Metrics.Addr = ""
	}
	cfg.Instrument.URL = url

	if level, err := log.ParseLevel(cfg.Logging.Level); err == nil {
		log.SetLevel(level)
	}

	obs := o.obs
	var registry *prometheus.Registry
	if obs == nil {
		obs, registry = observability.NewPromObs()
	}

	clientName := o.clientName
	if clientName == "" {
		clientName = cfg.Instrument.ClientName
	}
	if clientName == "" {
		clientName = uuid.NewString()
	}

	pol := cfg.Policy()

	inst := o.inst
	if inst == nil {
		dialed, err := grpchsi.Dial(url, clientName)
		if err != nil {
			return nil, err
		}
		inst = dialed
	}

	sess := session.New(inst, pol, obs)
	if err := sess.Open(ctx); err != nil {
		_ = inst.Close()
		return nil, fmt.Errorf("tekhsi: connect %s: %w", url, err)
	}

	g := gate.New()
	fetcher := fetch.New(inst, pol, obs)
	pipe := pipeline.New(inst, fetcher, g, pol, obs)
	if o.symbols != nil {
		pipe.SetSelection(o.symbols)
	} else if len(cfg.Acquire.Symbols) > 0 {
		pipe.SetSelection(cfg.Acquire.Symbols)
	}
	if o.filter != nil {
		pipe.SetFilter(o.filter)
	}
	if o.callback != nil {
		pipe.SetCallback(callbackSink(o.callback))
	}

	c := &Client{
		cfg:          cfg,
		inst:         inst,
		session:      sess,
		gate:         g,
		pipeline:     pipe,
		obs:          obs,
		pipelineDone: make(chan struct{}),
		watchStop:    make(chan struct{}),
	}

	runCtx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	go func() {
		defer close(c.pipelineDone)
		if err := pipe.Run(runCtx); err != nil {
			obs.LogCritical("pipeline_exited", err)
			g.Fail(fmt.Errorf("%w: %v", ErrSessionBroken, err))
		}
	}()

	go func() {
		select {
		case <-sess.Broken():
			g.Fail(fmt.Errorf("%w: %v", ErrSessionBroken, sess.Err()))
			cancel()
		case <-c.watchStop:
		}
	}()

	if cfg.Metrics.Addr != "" && registry != nil {
		c.serveMetrics(cfg.Metrics.Addr, registry)
	}

	return c, nil
}

// AccessOption tunes a single AccessData call.
type AccessOption func(*accessOptions)

type accessOptions struct {
	after time.Duration
}

// WithDelay sets the sleep used by the Time wait mode.
func WithDelay(d time.Duration) AccessOption {
	return func(o *accessOptions) { o.after = d }
}

// AccessData blocks until the wait mode's criterion is met, then returns a
// scope pinned to one committed acquisition. Every GetData call on the
// scope observes the same acquisition, whether the instrument is
// free-running or single-stepping. Release the scope promptly: while it is
// open the pipeline cannot publish newer acquisitions.
//
// The context bounds the wait; context.WithTimeout expiry surfaces as
// ErrTimeout.
func (c *Client) AccessData(ctx context.Context, on AcqWaitOn, opts ...AccessOption) (*DataAccess, error) {
	var o accessOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	scope, err := c.gate.Acquire(ctx, on, o.after)
	if err != nil {
		return nil, err
	}
	return &DataAccess{scope: scope}, nil
}

// DataAccess is an open access scope. Callers must Release it on every
// exit path, typically with defer.
type DataAccess struct {
	scope *gate.Scope
}

// GetData returns the typed waveform for a symbol, case-insensitively.
// After Release it fails with ErrNoAccessScope; a symbol absent from the
// acquisition fails with ErrUnknownSymbol.
func (a *DataAccess) GetData(name string) (Waveform, error) {
	return a.scope.GetData(name)
}

// Bundle returns the pinned acquisition, including its TransID and commit
// time.
func (a *DataAccess) Bundle() *AcquisitionBundle {
	return a.scope.Bundle()
}

// Release ends the scope. Idempotent.
func (a *DataAccess) Release() {
	a.scope.Release()
}

// ActiveSymbols returns the symbol set the server advertised at the last
// completed pipeline iteration.
func (c *Client) ActiveSymbols() []string {
	return c.pipeline.Available()
}

// AvailableSymbols asks the server for its current symbol set.
func (c *Client) AvailableSymbols(ctx context.Context) ([]string, error) {
	return c.inst.AvailableNames(ctx)
}

// SetActiveSymbols replaces the fetched subset; nil selects every
// advertised symbol.
func (c *Client) SetActiveSymbols(symbols []string) {
	c.pipeline.SetSelection(symbols)
}

// SetAcqFilter replaces the acceptance filter; it takes effect from the
// next candidate acquisition.
func (c *Client) SetAcqFilter(f AcqFilter) error {
	if f == nil {
		return errors.New("tekhsi: filter cannot be nil")
	}
	c.pipeline.SetFilter(f)
	return nil
}

// SetCallback replaces the new-data callback; nil removes it.
func (c *Client) SetCallback(fn Callback) {
	if fn == nil {
		c.pipeline.SetCallback(nil)
		return
	}
	c.pipeline.SetCallback(callbackSink(fn))
}

// AddSink attaches an additional bundle sink (see NewChannelSink).
func (c *Client) AddSink(s BundleSink) {
	c.pipeline.AddSink(s)
}

// ForceSequence asks a stopped instrument to publish its current
// acquisition instead of waiting for the next trigger.
func (c *Client) ForceSequence(ctx context.Context) error {
	return c.inst.ForceSequence(ctx)
}

// Close shuts the pipeline down, lets open scopes finish, and disconnects
// from the instrument. Safe to call more than once; later AccessData calls
// fail with ErrSessionClosed.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.gate.Fail(ErrSessionClosed)
		c.cancel()
		close(c.watchStop)

		select {
		case <-c.pipelineDone:
		case <-time.After(20 * time.Second):
			c.obs.LogError("pipeline_shutdown_timeout", nil)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var errs []error
		if err := c.session.Close(ctx); err != nil {
			errs = append(errs, err)
		}
		if c.metricsSrv != nil {
			if err := c.metricsSrv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errs = append(errs, err)
			}
		}
		c.closeErr = errors.Join(errs...)
	})
	return c.closeErr
}

// SessionState reports where the session stands (see the session package
// State* constants).
func (c *Client) SessionState() string {
	return c.session.State()
}

func (c *Client) serveMetrics(addr string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	c.metricsSrv = &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := c.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.obs.LogError("metrics_server_exited", err)
		}
	}()
}

// callbackSink adapts a Callback to the sink port.
func callbackSink(fn Callback) ports.BundleSink {
	return dispatch.NewCallbackSink("callback", func(b *AcquisitionBundle) error {
		fn(b)
		return nil
	})
}
