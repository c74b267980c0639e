package tekhsi

import (
	"github.com/tektronix/TekHSI/internal/adapters/dispatch"
	"github.com/tektronix/TekHSI/internal/app/config"
	"github.com/tektronix/TekHSI/internal/app/fetch"
	"github.com/tektronix/TekHSI/internal/domain"
	"github.com/tektronix/TekHSI/internal/ports"
)

// Waveform is the typed value returned by GetData: one of *AnalogWaveform,
// *IQWaveform, or *DigitalWaveform.
type Waveform = domain.Waveform

// AnalogWaveform is a vector record with lazy vertical scaling.
type AnalogWaveform = domain.AnalogWaveform

// IQWaveform is an interleaved I/Q record with spectrum-view metadata.
type IQWaveform = domain.IQWaveform

// DigitalWaveform is a digital pod record with its bitmask.
type DigitalWaveform = domain.DigitalWaveform

// WaveformHeader is the per-symbol metadata of one acquisition.
type WaveformHeader = domain.WaveformHeader

// HeaderSet maps lowercased symbol names to headers; acceptance filters
// compare two of these.
type HeaderSet = domain.HeaderSet

// AcquisitionBundle is a consistent set: all symbols of one acquisition.
type AcquisitionBundle = domain.AcquisitionBundle

// HorizontalAxis computes time-axis values lazily.
type HorizontalAxis = domain.HorizontalAxis

// IQBlock carries IQ spectrum metadata.
type IQBlock = domain.IQBlock

// AcqFilter decides whether a candidate acquisition is accepted.
type AcqFilter = ports.AcqFilter

// BundleSink consumes committed bundles on the pipeline worker.
type BundleSink = ports.BundleSink

// Instrument is the transport port; inject one with WithInstrument.
type Instrument = ports.Instrument

// Observability is the metrics/logging port.
type Observability = ports.Observability

// Field is a structured log field used by Observability implementations.
type Field = ports.Field

// Policy collects the acquisition-loop tunables.
type Policy = ports.Policy

// Config is the YAML-backed client configuration.
type Config = config.Config

// ProtocolError reports a waveform stream that violated the framing
// contract.
type ProtocolError = fetch.ProtocolError

// ConnectError reports a session RPC the instrument refused.
type ConnectError = ports.ConnectError

// ErrChannelSinkClosed is returned by a channel sink after Close.
var ErrChannelSinkClosed = dispatch.ErrChannelSinkClosed

// NewChannelSink exposes committed bundles on a channel for select-based
// consumers. Attach the returned sink with AddSink.
func NewChannelSink(name string, buffer int) (BundleSink, <-chan *AcquisitionBundle, func()) {
	return dispatch.NewChannelSink(name, buffer)
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}
