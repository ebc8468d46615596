package capability

// Hints is the client-hint field group. Every field is pointer-typed so that
// "the strategy did not see this header" and "the header carried a zero
// value" stay distinguishable during merging.
type Hints struct {
	DPR                  *float64
	ViewportWidth        *int
	Platform             *string
	Mobile               *bool
	DeviceMemoryGB       *float64
	DownlinkMbps         *float64
	RTTMs                *int
	EffectiveType        *EffectiveType
	SaveData             *bool
	PrefersReducedMotion *bool
	PrefersColorScheme   *string
}

// merge fills unset receiver fields from other. Unlike the first-wins rule
// applied to whole fragments, hints merge per sub-field: different strategies
// legitimately contribute different hint sub-fields.
func (h *Hints) merge(other *Hints) {
	if other == nil {
		return
	}
	if h.DPR == nil {
		h.DPR = other.DPR
	}
	if h.ViewportWidth == nil {
		h.ViewportWidth = other.ViewportWidth
	}
	if h.Platform == nil {
		h.Platform = other.Platform
	}
	if h.Mobile == nil {
		h.Mobile = other.Mobile
	}
	if h.DeviceMemoryGB == nil {
		h.DeviceMemoryGB = other.DeviceMemoryGB
	}
	if h.DownlinkMbps == nil {
		h.DownlinkMbps = other.DownlinkMbps
	}
	if h.RTTMs == nil {
		h.RTTMs = other.RTTMs
	}
	if h.EffectiveType == nil {
		h.EffectiveType = other.EffectiveType
	}
	if h.SaveData == nil {
		h.SaveData = other.SaveData
	}
	if h.PrefersReducedMotion == nil {
		h.PrefersReducedMotion = other.PrefersReducedMotion
	}
	if h.PrefersColorScheme == nil {
		h.PrefersColorScheme = other.PrefersColorScheme
	}
}

// Fragment is a partial detection result produced by a single strategy.
// Nil fields are absent: the engine fills a field from the highest-priority
// strategy that set it and never overwrites it afterwards.
type Fragment struct {
	Browser *Browser
	Formats *FormatSupport
	Hints   *Hints
}

// Empty reports whether the fragment contributes nothing. An empty fragment
// is equivalent to the strategy declining.
func (f Fragment) Empty() bool {
	return f.Browser == nil && f.Formats == nil && f.Hints == nil
}
