package capability

import (
	"net/http"
	"sort"
)

// Strategy priorities. Higher runs first and wins ties in the merge; the
// ordering is part of the detection contract, not an implementation detail.
const (
	priorityClientHints  = 100
	priorityAcceptHeader = 80
	priorityUserAgent    = 60
	priorityStaticData   = 20
	priorityFallback     = 0
)

// strategy is one independent method of inferring client capability from a
// request. The set of strategies is closed: they are constructed here and
// nowhere else, so priority order stays under this package's control.
type strategy interface {
	name() string
	source() Source
	priority() int

	// applies is a cheap header-presence precondition; detect runs only
	// when it returns true.
	applies(r *http.Request) bool

	// detect produces a partial result. An empty fragment or an error both
	// count as a decline.
	detect(r *http.Request) (Fragment, error)
}

// newStrategies builds the enabled strategy pipeline in priority order.
// The fallback is always present: it is what guarantees a complete result.
func newStrategies(cfg StrategyConfig) []strategy {
	strategies := make([]strategy, 0, 5)
	if cfg.ClientHints {
		strategies = append(strategies, clientHintsStrategy{})
	}
	if cfg.AcceptHeader {
		strategies = append(strategies, acceptHeaderStrategy{})
	}
	if cfg.UserAgent {
		strategies = append(strategies, userAgentStrategy{})
	}
	if cfg.StaticData {
		strategies = append(strategies, staticDataStrategy{})
	}
	strategies = append(strategies, fallbackStrategy{})

	sort.SliceStable(strategies, func(i, j int) bool {
		return strategies[i].priority() > strategies[j].priority()
	})
	return strategies
}
