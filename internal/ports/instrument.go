package ports

import (
	"context"
	"fmt"

	"github.com/tektronix/TekHSI/internal/domain"
)

// ConnectStatus is the instrument's verdict on a session operation.
type ConnectStatus int32

const (
	ConnectUnspecified     ConnectStatus = 0
	ConnectSuccess         ConnectStatus = 1
	ConnectInUse           ConnectStatus = 2
	ConnectNotConnected    ConnectStatus = 3
	ConnectOutsideSequence ConnectStatus = 4
	ConnectTimeout         ConnectStatus = 5
	ConnectUnknown         ConnectStatus = 6
)

func (s ConnectStatus) String() string {
	switch s {
	case ConnectSuccess:
		return "success"
	case ConnectInUse:
		return "in use"
	case ConnectNotConnected:
		return "not connected"
	case ConnectOutsideSequence:
		return "outside sequence"
	case ConnectTimeout:
		return "timeout"
	case ConnectUnknown:
		return "unknown"
	default:
		return "unspecified"
	}
}

// ConnectError reports a session RPC the instrument refused.
type ConnectError struct {
	Op     string
	Status ConnectStatus
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("tekhsi: %s refused by instrument: %s", e.Op, e.Status)
}

// WfmStatus is the per-message status on a waveform stream.
type WfmStatus int32

const (
	WfmUnspecified       WfmStatus = 0
	WfmSuccess           WfmStatus = 1
	WfmNoConnection      WfmStatus = 2
	WfmOutsideSequence   WfmStatus = 3
	WfmSourceNameMissing WfmStatus = 4
	WfmTypeMismatch      WfmStatus = 5
)

func (s WfmStatus) String() string {
	switch s {
	case WfmSuccess:
		return "success"
	case WfmNoConnection:
		return "no connection"
	case WfmOutsideSequence:
		return "outside sequence"
	case WfmSourceNameMissing:
		return "source name missing"
	case WfmTypeMismatch:
		return "type mismatch"
	default:
		return "unspecified"
	}
}

// WfmError reports a waveform stream the instrument failed mid-transfer.
type WfmError struct {
	Source string
	Status WfmStatus
}

func (e *WfmError) Error() string {
	return fmt.Sprintf("tekhsi: waveform stream %q failed: %s", e.Source, e.Status)
}

// StreamMessage is one message of a waveform stream: a header, a raw chunk,
// or a normalized chunk. Exactly one of the three fields is set.
type StreamMessage struct {
	Header     *domain.WaveformHeader
	Raw        []byte
	Normalized []float32
}

// WaveformStream delivers the messages of one server-streaming fetch.
// Recv returns io.EOF at a clean end of stream.
type WaveformStream interface {
	Recv() (*StreamMessage, error)
}

// Instrument is the RPC surface of the TekHSI server. Implementations map
// wire statuses to ConnectError/WfmError values.
type Instrument interface {
	// Connect registers the client session. Must be called exactly once
	// before any other operation.
	Connect(ctx context.Context) error
	// Disconnect unregisters the session. Idempotent.
	Disconnect(ctx context.Context) error
	// KeepAlive tells the server the session is still live.
	KeepAlive(ctx context.Context) error
	// AvailableNames lists the symbols currently advertised by the server.
	AvailableNames(ctx context.Context) ([]string, error)
	// ForceSequence asks a stopped instrument to publish its current
	// acquisition.
	ForceSequence(ctx context.Context) error
	// GetRawWaveform opens a raw-encoded stream for one symbol.
	GetRawWaveform(ctx context.Context, source string, chunkSize int) (WaveformStream, error)
	// GetWaveform opens a normalized (float) stream for one symbol.
	GetWaveform(ctx context.Context, source string, chunkSize int) (WaveformStream, error)
	// Close releases the underlying transport.
	Close() error
}
