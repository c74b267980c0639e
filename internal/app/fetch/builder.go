package fetch

import (
	"github.com/tektronix/TekHSI/internal/domain"
	"github.com/tektronix/TekHSI/internal/ports"
)

// Build turns an assembled sample buffer into the typed waveform the header
// describes. For raw buffers the vertical scale and offset are attached
// unapplied; normalized buffers are already in vertical units, so identity
// scaling is attached instead.
func Build(h *domain.WaveformHeader, data []byte, normalized bool) (domain.Waveform, error) {
	switch h.Type {
	case domain.WfmTypeAnalog8, domain.WfmTypeAnalog16, domain.WfmTypeAnalogFloat:
		st, err := analogSampleType(h, normalized)
		if err != nil {
			return nil, err
		}
		w := &domain.AnalogWaveform{
			SourceName:      h.SourceName,
			SampleType:      st,
			Data:            data,
			VerticalSpacing: h.VerticalSpacing,
			VerticalOffset:  h.VerticalOffset,
			VerticalUnits:   h.VerticalUnits,
			Horizontal:      h.Axis(),
		}
		if normalized {
			w.VerticalSpacing = 1
			w.VerticalOffset = 0
		}
		return w, nil

	case domain.WfmTypeAnalog16IQ, domain.WfmTypeAnalog32IQ:
		st, err := iqSampleType(h, normalized)
		if err != nil {
			return nil, err
		}
		w := &domain.IQWaveform{
			SourceName:      h.SourceName,
			SampleType:      st,
			Data:            data,
			VerticalSpacing: h.VerticalSpacing,
			VerticalOffset:  h.VerticalOffset,
			VerticalUnits:   h.VerticalUnits,
			Horizontal:      h.Axis(),
			Meta:            h.IQ,
		}
		if normalized {
			w.VerticalSpacing = 1
			w.VerticalOffset = 0
		}
		return w, nil

	case domain.WfmTypeDigital8, domain.WfmTypeDigital16:
		st := domain.SampleInt8
		if h.Type == domain.WfmTypeDigital16 {
			st = domain.SampleInt16
		}
		return &domain.DigitalWaveform{
			SourceName:    h.SourceName,
			SampleType:    st,
			Data:          data,
			Bitmask:       h.Bitmask,
			VerticalUnits: h.VerticalUnits,
			Horizontal:    h.Axis(),
		}, nil

	default:
		return nil, &ports.WfmError{Source: h.SourceName, Status: ports.WfmTypeMismatch}
	}
}

func analogSampleType(h *domain.WaveformHeader, normalized bool) (domain.SampleType, error) {
	if normalized {
		return domain.SampleFloat32, nil
	}
	var st domain.SampleType
	switch h.Type {
	case domain.WfmTypeAnalog8:
		st = domain.SampleInt8
	case domain.WfmTypeAnalog16:
		st = domain.SampleInt16
	default:
		st = domain.SampleFloat32
	}
	if h.SourceWidth != st.Size() {
		return 0, &ports.WfmError{Source: h.SourceName, Status: ports.WfmTypeMismatch}
	}
	return st, nil
}

func iqSampleType(h *domain.WaveformHeader, normalized bool) (domain.SampleType, error) {
	if normalized {
		return domain.SampleFloat32, nil
	}
	switch h.SourceWidth {
	case 2:
		return domain.SampleInt16, nil
	case 4:
		return domain.SampleInt32, nil
	default:
		return 0, &ports.WfmError{Source: h.SourceName, Status: ports.WfmTypeMismatch}
	}
}
