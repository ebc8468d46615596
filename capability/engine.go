package capability

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/imgkit/pkg/useragent"
)

// Engine orchestrates the strategy pipeline: cache consult, strategies in
// priority order, first-wins merge, fallback completion, budget computation,
// cache store. Detect always returns a complete result; no failure inside
// the pipeline is ever visible to the caller.
//
// An Engine is safe for concurrent use. The cache is shared mutable state
// across all requests, but correctness of any individual result never
// depends on it: the worst a race can cost is a redundant full detection.
type Engine struct {
	strategies []strategy
	cache      *resultCache
	fp         fingerprinter
	calc       Calculator
	log        *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for strategy failure warnings.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEngine builds a detection engine from the given configuration.
// Construct one per process and share it: the cache it owns is meant to be
// shared across concurrent requests.
func NewEngine(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		strategies: newStrategies(cfg.Strategies),
		cache:      newResultCache(cfg.Cache),
		fp:         newFingerprinter(cfg.Fingerprint),
		calc:       NewCalculator(cfg.Budget),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	return e
}

// merge accumulator. Browser and Formats follow the first-wins rule; hints
// deep-merge per sub-field because different strategies contribute different
// hint sub-fields.
type accumulator struct {
	browser       *Browser
	browserSource Source
	formats       *FormatSupport
	hints         *Hints
}

func (a *accumulator) absorb(frag Fragment, src Source) {
	if frag.Hints != nil {
		if a.hints == nil {
			a.hints = &Hints{}
		}
		a.hints.merge(frag.Hints)
	}
	if a.browser == nil && frag.Browser != nil {
		a.browser = frag.Browser
		a.browserSource = src
	}
	if a.formats == nil && frag.Formats != nil {
		a.formats = frag.Formats
	}
}

// complete reports whether every required field group has been filled.
// Hints never gate completion: they are optional enrichment.
func (a *accumulator) complete() bool {
	return a.browser != nil && a.formats != nil
}

// finalize converts the merged fragments into a complete capability object,
// filling defaults for everything no strategy supplied.
func (a *accumulator) finalize() *ClientCapabilities {
	caps := &ClientCapabilities{
		Browser:         *a.browser,
		Formats:         *a.formats,
		DetectionSource: a.browserSource,
	}

	device := Device{DPR: 1.0}
	var network Network

	if h := a.hints; h != nil {
		// Guard against malformed header values propagating as
		// zero/negative multipliers
		if h.DPR != nil && *h.DPR >= 0.1 {
			device.DPR = *h.DPR
		}
		device.ViewportWidth = h.ViewportWidth
		device.MemoryGB = h.DeviceMemoryGB
		if h.Platform != nil {
			device.Platform = *h.Platform
		}

		network.DownlinkMbps = h.DownlinkMbps
		network.RTTMs = h.RTTMs
		if h.EffectiveType != nil {
			network.EffectiveType = *h.EffectiveType
		}
		if h.SaveData != nil {
			network.SaveData = *h.SaveData
		}
	}

	caps.Device = device
	caps.Network = network
	return caps
}

// Detect infers the client's capabilities from the request headers.
// The returned object is complete (every field group populated) and must be
// treated as read-only: on a cache hit it is shared with other requests.
func (e *Engine) Detect(r *http.Request) *ClientCapabilities {
	start := time.Now()

	var key string
	if e.cache != nil {
		key = e.fp.Key(r)
		if caps, ok := e.cache.get(key); ok {
			hit := *caps
			hit.DetectionTimeMs = 0
			return &hit
		}
	}

	var acc accumulator
	for _, s := range e.strategies {
		if !s.applies(r) {
			continue
		}

		frag, err := s.detect(r)
		if err != nil {
			// One failing strategy must never prevent completion
			e.log.Warn("detection strategy failed",
				slog.String("strategy", s.name()),
				slog.Any("error", err))
			continue
		}
		if frag.Empty() {
			continue
		}

		acc.absorb(frag, s.source())
		if acc.complete() {
			break
		}
	}

	caps := acc.finalize()
	caps.Performance = e.calc.Compute(caps.Device, caps.Network)
	caps.DetectionTimeMs = time.Since(start).Milliseconds()

	if ua := r.UserAgent(); ua != "" && useragent.ParseDeviceType(strings.ToLower(ua)) == useragent.DeviceTypeBot {
		e.log.Debug("bot client detected",
			slog.String("bot", useragent.ExtractBotName(ua)),
			slog.String("source", string(caps.DetectionSource)))
	}

	if e.cache != nil {
		e.cache.put(key, caps)
	}
	return caps
}

// CacheStats returns a snapshot of cache counters. The second return is
// false when caching is disabled.
func (e *Engine) CacheStats() (CacheStats, bool) {
	if e.cache == nil {
		return CacheStats{}, false
	}
	return e.cache.stats(), true
}
