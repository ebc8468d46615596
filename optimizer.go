package imgkit

import (
	"net/http"

	"github.com/dmitrymomot/imgkit/capability"
)

// Optimizer merges detected client capabilities into caller-supplied
// transform options. It owns nothing itself: detection, caching, and budget
// computation live in the capability engine it wraps.
type Optimizer struct {
	engine *capability.Engine
}

// NewOptimizer wraps a detection engine. Share one Optimizer per process so
// all requests use the same capability cache.
func NewOptimizer(engine *capability.Engine) *Optimizer {
	return &Optimizer{engine: engine}
}

// OptimizedOptions runs detection for the request and fills each open field
// of base from the detected budget: format from the preference order,
// quality from the budget target, width/height from the dimension ceilings.
// Explicit caller values are never overridden. The returned capabilities
// carry DetectionTimeMs and DetectionSource as side-channel metadata for
// observability; they are not part of the transformation contract.
func (o *Optimizer) OptimizedOptions(r *http.Request, base TransformOptions) (TransformOptions, *capability.ClientCapabilities) {
	caps := o.engine.Detect(r)

	out := base
	if out.formatUnset() {
		out.Format = pickFormat(caps)
	}
	if out.qualityUnset() {
		out.Quality = caps.Performance.QualityTarget
	}
	if out.Width <= 0 {
		out.Width = caps.Performance.MaxWidth
	}
	if out.Height <= 0 {
		out.Height = caps.Performance.MaxHeight
	}

	return out, caps
}

// pickFormat returns the first entry of the budget's preference order the
// client can actually decode. The preference list always ends in a
// universally supported format, but guard anyway.
func pickFormat(caps *capability.ClientCapabilities) string {
	for _, format := range caps.Performance.PreferredFormats {
		if caps.Formats.Supports(format) {
			return format
		}
	}
	return capability.FormatJPEG
}
