package fetch

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/tektronix/TekHSI/internal/domain"
	"github.com/tektronix/TekHSI/internal/ports"
)

// ProtocolError reports a waveform stream that violated the framing
// contract: a chunk before the header, more bytes than the header announced,
// or a short stream.
type ProtocolError struct {
	Source string
	Reason string
	// Want and Got are the expected and received byte counts for size
	// mismatches; both zero otherwise.
	Want, Got int
}

func (e *ProtocolError) Error() string {
	if e.Want != e.Got {
		return fmt.Sprintf("tekhsi: protocol error on %q: %s (want %d bytes, got %d)",
			e.Source, e.Reason, e.Want, e.Got)
	}
	return fmt.Sprintf("tekhsi: protocol error on %q: %s", e.Source, e.Reason)
}

// Result is one assembled symbol: the stream's header and the typed
// waveform built from it.
type Result struct {
	Header   *domain.WaveformHeader
	Waveform domain.Waveform
}

// Fetcher retrieves one symbol per call: it opens a server stream, takes the
// leading header, assembles the chunk payloads into a single exact-size
// buffer, and builds the typed waveform.
type Fetcher struct {
	inst       ports.Instrument
	chunkSize  int
	normalized bool
	obs        ports.Observability
}

func New(inst ports.Instrument, pol ports.Policy, obs ports.Observability) *Fetcher {
	return &Fetcher{
		inst:       inst,
		chunkSize:  pol.ChunkSize,
		normalized: pol.Normalized,
		obs:        obs,
	}
}

// Fetch reads the named symbol. Raw encoding is the default; the normalized
// stream is used only when the fetcher was built for it.
func (f *Fetcher) Fetch(ctx context.Context, source string) (Result, error) {
	start := time.Now()

	var (
		res Result
		err error
	)
	if f.normalized {
		res, err = f.fetchNormalized(ctx, source)
	} else {
		res, err = f.fetchRaw(ctx, source)
	}
	if err != nil {
		return Result{}, err
	}

	f.obs.ObserveLatency("tekhsi_transfer_seconds", time.Since(start).Seconds())
	f.obs.IncCounter("tekhsi_transfer_bytes_total", float64(len(rawBytes(res.Waveform))))
	return res, nil
}

func (f *Fetcher) fetchRaw(ctx context.Context, source string) (Result, error) {
	stream, err := f.inst.GetRawWaveform(ctx, source, f.chunkSize)
	if err != nil {
		return Result{}, err
	}

	header, err := recvHeader(stream, source)
	if err != nil {
		return Result{}, err
	}

	buf := make([]byte, header.SampleCount*header.ElementSize())
	if !header.HasData {
		buf = buf[:0]
	}

	off := 0
	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, err
		}
		if msg.Header != nil {
			return Result{}, &ProtocolError{Source: source, Reason: "second header in stream"}
		}
		if !header.HasData {
			return Result{}, &ProtocolError{Source: source, Reason: "chunk after empty header"}
		}
		if off+len(msg.Raw) > len(buf) {
			return Result{}, &ProtocolError{
				Source: source,
				Reason: "stream overflow",
				Want:   len(buf),
				Got:    off + len(msg.Raw),
			}
		}
		copy(buf[off:], msg.Raw)
		off += len(msg.Raw)
	}
	if header.HasData && off != len(buf) {
		return Result{}, &ProtocolError{
			Source: source,
			Reason: "stream underflow",
			Want:   len(buf),
			Got:    off,
		}
	}

	wfm, err := Build(header, buf, false)
	if err != nil {
		return Result{}, err
	}
	return Result{Header: header, Waveform: wfm}, nil
}

func (f *Fetcher) fetchNormalized(ctx context.Context, source string) (Result, error) {
	stream, err := f.inst.GetWaveform(ctx, source, f.chunkSize)
	if err != nil {
		return Result{}, err
	}

	header, err := recvHeader(stream, source)
	if err != nil {
		return Result{}, err
	}

	// Normalized streams carry float32 lanes regardless of the source
	// width; IQ records interleave two lanes per sample.
	lanes := 1
	switch header.Type {
	case domain.WfmTypeAnalog16IQ, domain.WfmTypeAnalog32IQ:
		lanes = 2
	case domain.WfmTypeDigital8, domain.WfmTypeDigital16:
		return Result{}, &ports.WfmError{Source: source, Status: ports.WfmTypeMismatch}
	}

	buf := make([]byte, header.SampleCount*lanes*4)
	if !header.HasData {
		buf = buf[:0]
	}

	off := 0
	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, err
		}
		if msg.Header != nil {
			return Result{}, &ProtocolError{Source: source, Reason: "second header in stream"}
		}
		if !header.HasData {
			return Result{}, &ProtocolError{Source: source, Reason: "chunk after empty header"}
		}
		if off+len(msg.Normalized)*4 > len(buf) {
			return Result{}, &ProtocolError{
				Source: source,
				Reason: "stream overflow",
				Want:   len(buf),
				Got:    off + len(msg.Normalized)*4,
			}
		}
		for _, v := range msg.Normalized {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
			off += 4
		}
	}
	if header.HasData && off != len(buf) {
		return Result{}, &ProtocolError{
			Source: source,
			Reason: "stream underflow",
			Want:   len(buf),
			Got:    off,
		}
	}

	wfm, err := Build(header, buf, true)
	if err != nil {
		return Result{}, err
	}
	return Result{Header: header, Waveform: wfm}, nil
}

func recvHeader(stream ports.WaveformStream, source string) (*domain.WaveformHeader, error) {
	msg, err := stream.Recv()
	if errors.Is(err, io.EOF) {
		return nil, &ProtocolError{Source: source, Reason: "stream ended before header"}
	}
	if err != nil {
		return nil, err
	}
	if msg.Header == nil {
		return nil, &ProtocolError{Source: source, Reason: "chunk received before header"}
	}
	return msg.Header, nil
}

func rawBytes(w domain.Waveform) []byte {
	switch w := w.(type) {
	case *domain.AnalogWaveform:
		return w.Data
	case *domain.IQWaveform:
		return w.Data
	case *domain.DigitalWaveform:
		return w.Data
	default:
		return nil
	}
}
