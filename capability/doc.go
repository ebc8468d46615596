// Package capability infers a requesting client's image-format support,
// network quality, and device class from HTTP request headers, and converts
// the result into a concrete performance budget (quality range, dimension
// ceiling, preferred format order) for an image-transformation pipeline.
//
// Headers are partial, unreliable, and often absent, so detection runs as a
// pipeline of independent strategies with defined priority:
//
//	client-hints (100) > accept-header (80) > user-agent (60) > static-data (20) > default-fallback (0)
//
// Each strategy produces a partial fragment or declines. The engine merges
// fragments first-wins per field group (a value filled by a higher-priority
// strategy is never overwritten), with the client-hint group deep-merged per
// sub-field since different strategies contribute different hints. The
// fallback never declines, so Detect always returns a complete result, even
// for a request with zero headers; no error inside the pipeline is ever
// surfaced to the caller.
//
// Results are cached under a request fingerprint derived from a bounded
// header subset. The cache is size-bounded with insertion-order batch
// eviction (deliberately not LRU) and is shared process-wide across
// concurrent requests.
//
// # Usage
//
//	log := logger.New(logger.WithProduction("imgkit"))
//	engine := capability.NewEngine(capability.DefaultConfig(), capability.WithLogger(log))
//
//	caps := engine.Detect(r)
//	if caps.Formats.Supports(capability.FormatAVIF) {
//		// serve AVIF
//	}
//	quality := caps.Performance.QualityTarget
//
// With the middleware, handlers share one detection per request:
//
//	mux := capability.Middleware(engine)(handler)
//	// inside handler:
//	caps := capability.FromContext(r.Context())
//
// Configuration is fully injectable; see Config and DefaultConfig. Every
// threshold, platform base score, and tier table the budget calculator uses
// resolves to a concrete value before any scoring runs.
package capability
