package domain

import (
	"encoding/binary"
	"math"
)

// SampleType is the storage type of a single sample lane.
type SampleType int

const (
	SampleInt8 SampleType = iota
	SampleInt16
	SampleInt32
	SampleFloat32
)

// Size returns the byte width of one sample lane.
func (t SampleType) Size() int {
	switch t {
	case SampleInt8:
		return 1
	case SampleInt16:
		return 2
	default:
		return 4
	}
}

// HorizontalAxis computes time-axis values lazily from the header's
// horizontal block; no axis array is materialized.
type HorizontalAxis struct {
	Spacing             float64
	ZeroIndex           float64
	FractionalZeroIndex float64
	Units               string
	Count               int
}

// TimeAt returns the horizontal value of sample i relative to the trigger
// position.
func (a HorizontalAxis) TimeAt(i int) float64 {
	return (float64(i) - a.ZeroIndex - a.FractionalZeroIndex) * a.Spacing
}

// Waveform is the typed value handed to consumers: one of AnalogWaveform,
// IQWaveform, or DigitalWaveform.
type Waveform interface {
	// Source returns the symbol name the waveform was read from.
	Source() string
	// RecordLength returns the number of samples in the record.
	RecordLength() int

	isWaveform()
}

// AnalogWaveform holds a vector record. Data is the undecoded sample buffer;
// vertical scaling is applied on access, not up front.
type AnalogWaveform struct {
	SourceName string
	SampleType SampleType
	Data       []byte

	VerticalSpacing float64
	VerticalOffset  float64
	VerticalUnits   string

	Horizontal HorizontalAxis
}

func (w *AnalogWaveform) Source() string { return w.SourceName }

func (w *AnalogWaveform) RecordLength() int {
	if size := w.SampleType.Size(); size > 0 {
		return len(w.Data) / size
	}
	return 0
}

// ValueAt decodes sample i and applies the vertical scale and offset.
func (w *AnalogWaveform) ValueAt(i int) float64 {
	var v float64
	switch w.SampleType {
	case SampleInt8:
		v = float64(int8(w.Data[i]))
	case SampleInt16:
		v = float64(int16(binary.LittleEndian.Uint16(w.Data[i*2:])))
	case SampleInt32:
		v = float64(int32(binary.LittleEndian.Uint32(w.Data[i*4:])))
	default:
		v = float64(math.Float32frombits(binary.LittleEndian.Uint32(w.Data[i*4:])))
	}
	return v*w.VerticalSpacing + w.VerticalOffset
}

// Values materializes the full scaled record.
func (w *AnalogWaveform) Values() []float64 {
	out := make([]float64, w.RecordLength())
	for i := range out {
		out[i] = w.ValueAt(i)
	}
	return out
}

func (*AnalogWaveform) isWaveform() {}

// IQWaveform holds interleaved I/Q pairs. SampleType selects the 16- or
// 32-bit lane.
type IQWaveform struct {
	SourceName string
	SampleType SampleType
	Data       []byte

	VerticalSpacing float64
	VerticalOffset  float64
	VerticalUnits   string

	Horizontal HorizontalAxis
	Meta       IQBlock
}

func (w *IQWaveform) Source() string { return w.SourceName }

func (w *IQWaveform) RecordLength() int {
	if size := w.SampleType.Size(); size > 0 {
		return len(w.Data) / (2 * size)
	}
	return 0
}

// At returns sample i as a scaled complex value.
func (w *IQWaveform) At(i int) complex128 {
	size := w.SampleType.Size()
	re := w.lane(i * 2 * size)
	im := w.lane(i*2*size + size)
	return complex(re*w.VerticalSpacing+w.VerticalOffset, im*w.VerticalSpacing+w.VerticalOffset)
}

// Samples materializes the full complex record.
func (w *IQWaveform) Samples() []complex128 {
	out := make([]complex128, w.RecordLength())
	for i := range out {
		out[i] = w.At(i)
	}
	return out
}

func (w *IQWaveform) lane(off int) float64 {
	switch w.SampleType {
	case SampleInt16:
		return float64(int16(binary.LittleEndian.Uint16(w.Data[off:])))
	case SampleFloat32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(w.Data[off:])))
	default:
		return float64(int32(binary.LittleEndian.Uint32(w.Data[off:])))
	}
}

func (*IQWaveform) isWaveform() {}

// DigitalWaveform exposes the raw byte record of a digital probe. Bitmask
// marks which bits carry pod lines.
type DigitalWaveform struct {
	SourceName string
	SampleType SampleType
	Data       []byte
	Bitmask    uint64

	VerticalUnits string
	Horizontal    HorizontalAxis
}

func (w *DigitalWaveform) Source() string { return w.SourceName }

func (w *DigitalWaveform) RecordLength() int {
	if size := w.SampleType.Size(); size > 0 {
		return len(w.Data) / size
	}
	return 0
}

// BitAt returns the state of a single digital line at sample i.
func (w *DigitalWaveform) BitAt(i, bit int) bool {
	switch w.SampleType {
	case SampleInt16:
		return binary.LittleEndian.Uint16(w.Data[i*2:])&(1<<bit) != 0
	default:
		return w.Data[i]&(1<<bit) != 0
	}
}

func (*DigitalWaveform) isWaveform() {}
