package tekhsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func header(samples int, hSpacing, hZero, vSpacing, vOffset float64) *WaveformHeader {
	return &WaveformHeader{
		SampleCount:         samples,
		HorizontalSpacing:   hSpacing,
		HorizontalZeroIndex: hZero,
		VerticalSpacing:     vSpacing,
		VerticalOffset:      vOffset,
	}
}

func TestAnyAcqFilterAcceptsEverything(t *testing.T) {
	assert.True(t, AnyAcqFilter(nil, HeaderSet{}))
	assert.True(t, AnyAcqFilter(HeaderSet{}, HeaderSet{"ch1": header(10, 1, 0, 1, 0)}))
}

func TestAnyHorizontalChange(t *testing.T) {
	base := HeaderSet{"ch1": header(10, 1e-9, 5, 0.5, 0)}

	// Nothing to differ from before the first candidate.
	assert.False(t, AnyHorizontalChange(nil, base))

	same := HeaderSet{"ch1": header(10, 1e-9, 5, 0.5, 0)}
	assert.False(t, AnyHorizontalChange(base, same))

	longer := HeaderSet{"ch1": header(20, 1e-9, 5, 0.5, 0)}
	assert.True(t, AnyHorizontalChange(base, longer))

	faster := HeaderSet{"ch1": header(10, 2e-9, 5, 0.5, 0)}
	assert.True(t, AnyHorizontalChange(base, faster))

	shifted := HeaderSet{"ch1": header(10, 1e-9, 6, 0.5, 0)}
	assert.True(t, AnyHorizontalChange(base, shifted))

	// Vertical-only changes do not trip the horizontal filter.
	rescaled := HeaderSet{"ch1": header(10, 1e-9, 5, 0.25, 1)}
	assert.False(t, AnyHorizontalChange(base, rescaled))

	// A new symbol is a change, as is a removed one.
	added := HeaderSet{
		"ch1": header(10, 1e-9, 5, 0.5, 0),
		"ch3": header(10, 1e-9, 5, 0.5, 0),
	}
	assert.True(t, AnyHorizontalChange(base, added))
	assert.True(t, AnyHorizontalChange(added, base))
}

func TestAnyVerticalChange(t *testing.T) {
	base := HeaderSet{"ch1": header(10, 1e-9, 5, 0.5, 0)}

	assert.False(t, AnyVerticalChange(nil, base))

	same := HeaderSet{"ch1": header(10, 1e-9, 5, 0.5, 0)}
	assert.False(t, AnyVerticalChange(base, same))

	rescaled := HeaderSet{"ch1": header(10, 1e-9, 5, 0.25, 0)}
	assert.True(t, AnyVerticalChange(base, rescaled))

	offset := HeaderSet{"ch1": header(10, 1e-9, 5, 0.5, 1)}
	assert.True(t, AnyVerticalChange(base, offset))

	// Horizontal-only changes do not trip the vertical filter.
	longer := HeaderSet{"ch1": header(20, 1e-9, 5, 0.5, 0)}
	assert.False(t, AnyVerticalChange(base, longer))

	swapped := HeaderSet{"ch3": header(10, 1e-9, 5, 0.5, 0)}
	assert.True(t, AnyVerticalChange(base, swapped))
}
