package capability

// Image format identifiers used in preference lists and transform options.
const (
	FormatAVIF = "avif"
	FormatWebP = "webp"
	FormatJPEG = "jpeg"
)

// Source identifies which detection strategy supplied a value.
type Source string

const (
	SourceClientHints  Source = "client-hints"
	SourceAcceptHeader Source = "accept-header"
	SourceUserAgent    Source = "user-agent"
	SourceStaticData   Source = "static-data"
	SourceDefault      Source = "default"
)

// EffectiveType is the coarse network class reported by the ECT client hint.
type EffectiveType string

const (
	Effective4G     EffectiveType = "4g"
	Effective3G     EffectiveType = "3g"
	Effective2G     EffectiveType = "2g"
	EffectiveSlow2G EffectiveType = "slow-2g"
)

// Browser is the identified browser family and version. Name is one of the
// normalized useragent.Browser* constants, never a raw UA token.
type Browser struct {
	Name    string
	Version string
}

// FormatSupport holds the detected next-gen format flags along with the
// provenance of the value actually used.
type FormatSupport struct {
	WebP   bool
	AVIF   bool
	Source Source
}

// Supports reports whether the given format identifier can be served to the
// client. JPEG is universally decodable and always supported.
func (f FormatSupport) Supports(format string) bool {
	switch format {
	case FormatWebP:
		return f.WebP
	case FormatAVIF:
		return f.AVIF
	case FormatJPEG:
		return true
	default:
		return false
	}
}

// Network describes the client's connection as far as headers reveal it.
// Pointer fields are nil when the client sent no usable signal.
type Network struct {
	DownlinkMbps  *float64
	RTTMs         *int
	EffectiveType EffectiveType // empty when unknown
	SaveData      bool
}

// Device describes the client hardware and display. DPR is always set
// (default 1.0); the pointer fields are nil when unknown.
type Device struct {
	MemoryGB          *float64
	LogicalProcessors *int
	DPR               float64
	ViewportWidth     *int
	Platform          string // normalized OS identifier, empty when unknown
}

// PerformanceBudget is the derived quality, dimension, and format targets
// that drive the actual transformation request.
type PerformanceBudget struct {
	QualityMin       int
	QualityMax       int
	QualityTarget    int
	MaxWidth         int
	MaxHeight        int
	PreferredFormats []string
}

// ClientCapabilities is the complete detection result. Instances are built
// fresh on a cache miss and shared read-only between requests afterwards:
// callers must not mutate a returned value.
type ClientCapabilities struct {
	Browser     Browser
	Formats     FormatSupport
	Network     Network
	Device      Device
	Performance PerformanceBudget

	// DetectionTimeMs is the wall-clock cost of producing this object,
	// 0 when it was served from the cache.
	DetectionTimeMs int64

	// DetectionSource names the strategy that supplied the Browser field.
	// Informational only.
	DetectionSource Source
}
