package tekhsi

import (
	"context"
	"time"

	base "github.com/tektronix/TekHSI/pkg/tekhsi"
)

// Re-exported errors for convenience.
var (
	ErrNoAccessScope     = base.ErrNoAccessScope
	ErrUnknownSymbol     = base.ErrUnknownSymbol
	ErrTimeout           = base.ErrTimeout
	ErrSessionBroken     = base.ErrSessionBroken
	ErrSessionClosed     = base.ErrSessionClosed
	ErrChannelSinkClosed = base.ErrChannelSinkClosed
)

// Type aliases so consumers can import github.com/tektronix/TekHSI directly.
type (
	Client            = base.Client
	Option            = base.Option
	AccessOption      = base.AccessOption
	DataAccess        = base.DataAccess
	AcqWaitOn         = base.AcqWaitOn
	Callback          = base.Callback
	AcqFilter         = base.AcqFilter
	HeaderSet         = base.HeaderSet
	Waveform          = base.Waveform
	AnalogWaveform    = base.AnalogWaveform
	IQWaveform        = base.IQWaveform
	DigitalWaveform   = base.DigitalWaveform
	WaveformHeader    = base.WaveformHeader
	AcquisitionBundle = base.AcquisitionBundle
	HorizontalAxis    = base.HorizontalAxis
	IQBlock           = base.IQBlock
	BundleSink        = base.BundleSink
	Instrument        = base.Instrument
	Observability     = base.Observability
	Field             = base.Field
	Policy            = base.Policy
	Config            = base.Config
	ProtocolError     = base.ProtocolError
	ConnectError      = base.ConnectError
)

// Wait modes for AccessData.
const (
	NewData = base.NewData
	NextAcq = base.NextAcq
	Time    = base.Time
	AnyAcq  = base.AnyAcq
)

// Connect opens a session and starts the background acquisition pipeline.
func Connect(ctx context.Context, url string, opts ...Option) (*Client, error) {
	return base.Connect(ctx, url, opts...)
}

// Connect-time options.
func WithActiveSymbols(symbols ...string) Option { return base.WithActiveSymbols(symbols...) }

func WithCallback(fn Callback) Option { return base.WithCallback(fn) }

func WithFilter(f AcqFilter) Option { return base.WithFilter(f) }

func WithConfig(cfg *Config) Option { return base.WithConfig(cfg) }

func WithInstrument(inst Instrument) Option { return base.WithInstrument(inst) }

func WithObservability(obs Observability) Option { return base.WithObservability(obs) }

func WithClientName(name string) Option { return base.WithClientName(name) }

// WithDelay sets the sleep used by the Time wait mode.
func WithDelay(d time.Duration) AccessOption { return base.WithDelay(d) }

// Prebuilt acceptance filters.
func AnyAcqFilter(prev, cur HeaderSet) bool { return base.AnyAcqFilter(prev, cur) }

func AnyHorizontalChange(prev, cur HeaderSet) bool { return base.AnyHorizontalChange(prev, cur) }

func AnyVerticalChange(prev, cur HeaderSet) bool { return base.AnyVerticalChange(prev, cur) }

// Config helpers.
func LoadConfig(path string) (*Config, error) { return base.LoadConfig(path) }

// NewChannelSink exposes committed bundles on a channel.
func NewChannelSink(name string, buffer int) (BundleSink, <-chan *AcquisitionBundle, func()) {
	return base.NewChannelSink(name, buffer)
}
