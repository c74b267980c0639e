package tekhsi

// Prebuilt acceptance filters. A filter sees the header set of the last
// candidate acquisition (nil before the first one) and the current
// candidate's header set, and returns true to accept.

// AnyAcqFilter accepts every acquisition. This is the behavior when no
// filter is installed.
func AnyAcqFilter(prev, cur HeaderSet) bool {
	return true
}

// AnyHorizontalChange accepts acquisitions whose record length, horizontal
// spacing, or horizontal zero index changed for any symbol, or whose symbol
// set changed.
func AnyHorizontalChange(prev, cur HeaderSet) bool {
	if prev == nil {
		return false
	}
	if len(prev) != len(cur) {
		return true
	}
	for key, c := range cur {
		p, ok := prev[key]
		if !ok || p == nil {
			return true
		}
		if p.SampleCount != c.SampleCount ||
			p.HorizontalSpacing != c.HorizontalSpacing ||
			p.HorizontalZeroIndex != c.HorizontalZeroIndex {
			return true
		}
	}
	return false
}

// AnyVerticalChange accepts acquisitions whose vertical spacing or offset
// changed for any symbol, or whose symbol set changed.
func AnyVerticalChange(prev, cur HeaderSet) bool {
	if prev == nil {
		return false
	}
	if len(prev) != len(cur) {
		return true
	}
	for key, c := range cur {
		p, ok := prev[key]
		if !ok || p == nil {
			return true
		}
		if p.VerticalSpacing != c.VerticalSpacing ||
			p.VerticalOffset != c.VerticalOffset {
			return true
		}
	}
	return false
}
