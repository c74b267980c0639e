package domain

// WfmType identifies the sample encoding of a waveform source.
type WfmType int32

const (
	WfmTypeUnspecified WfmType = 0
	WfmTypeAnalog8     WfmType = 1
	WfmTypeAnalog16    WfmType = 2
	WfmTypeAnalogFloat WfmType = 3
	WfmTypeDigital8    WfmType = 4
	WfmTypeDigital16   WfmType = 5
	WfmTypeAnalog16IQ  WfmType = 6
	WfmTypeAnalog32IQ  WfmType = 7
)

func (t WfmType) String() string {
	switch t {
	case WfmTypeAnalog8:
		return "analog8"
	case WfmTypeAnalog16:
		return "analog16"
	case WfmTypeAnalogFloat:
		return "analogfloat"
	case WfmTypeDigital8:
		return "digital8"
	case WfmTypeDigital16:
		return "digital16"
	case WfmTypeAnalog16IQ:
		return "analog16iq"
	case WfmTypeAnalog32IQ:
		return "analog32iq"
	default:
		return "unspecified"
	}
}

// PairType describes how samples pair up within a record. IQ sources carry
// interleaved I/Q pairs.
type PairType int32

const (
	PairTypeUnspecified PairType = 0
	PairTypeNone        PairType = 1
	PairTypePair        PairType = 2
)

// IQBlock carries the spectrum-view metadata attached to IQ headers.
type IQBlock struct {
	CenterFrequency float64
	FFTLength       float64
	RBW             float64
	Span            float64
	WindowType      string
}

// windowFactors maps the instrument's FFT window name to the factor relating
// fftLength*rbw to the effective sample rate.
var windowFactors = map[string]float64{
	"Blackharris":  1.9,
	"Flattop2":     3.77,
	"Hanning":      1.44,
	"Hamming":      1.3,
	"Rectangle":    0.89,
	"Kaiserbessel": 2.23,
}

// SampleRate derives the IQ sample rate from the window type, falling back to
// the span when the window is not recognized.
func (b IQBlock) SampleRate() float64 {
	if f, ok := windowFactors[b.WindowType]; ok && f > 0 {
		return b.FFTLength * b.RBW / f
	}
	return b.Span
}

// WaveformHeader is the per-symbol metadata for one acquisition. All headers
// belonging to a single acquisition share the same TransID.
type WaveformHeader struct {
	SourceName  string
	SourceWidth int
	DataID      uint64
	TransID     uint64
	HasData     bool
	SampleCount int

	HorizontalSpacing             float64
	HorizontalZeroIndex           float64
	HorizontalFractionalZeroIndex float64
	HorizontalUnits               string

	VerticalSpacing float64
	VerticalOffset  float64
	VerticalUnits   string

	Type     WfmType
	PairType PairType
	Bitmask  uint64

	// ChunkSize is the chunk length the server advertised for this stream.
	ChunkSize int

	IQ IQBlock
}

// ElementSize returns the per-sample byte count of the raw encoding. IQ
// sources double the lane width because each sample is an interleaved I/Q
// pair.
func (h *WaveformHeader) ElementSize() int {
	switch h.Type {
	case WfmTypeAnalog16IQ, WfmTypeAnalog32IQ:
		return h.SourceWidth * 2
	default:
		return h.SourceWidth
	}
}

// Axis returns the horizontal axis described by this header.
func (h *WaveformHeader) Axis() HorizontalAxis {
	return HorizontalAxis{
		Spacing:             h.HorizontalSpacing,
		ZeroIndex:           h.HorizontalZeroIndex,
		FractionalZeroIndex: h.HorizontalFractionalZeroIndex,
		Units:               h.HorizontalUnits,
		Count:               h.SampleCount,
	}
}

// HeaderSet maps lowercased symbol names to their headers for one
// acquisition. Acceptance filters compare the previous candidate's set
// (accepted or rejected) against the current candidate set.
type HeaderSet map[string]*WaveformHeader
