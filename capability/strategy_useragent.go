package capability

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/imgkit/pkg/useragent"
)

// userAgentStrategy identifies the browser family from the User-Agent string
// and resolves format support through the compatibility table. Declines when
// there is no User-Agent or nothing in it can be identified.
type userAgentStrategy struct{}

func (userAgentStrategy) name() string   { return "user-agent" }
func (userAgentStrategy) source() Source { return SourceUserAgent }
func (userAgentStrategy) priority() int  { return priorityUserAgent }

func (userAgentStrategy) applies(r *http.Request) bool {
	return r.UserAgent() != ""
}

func (userAgentStrategy) detect(r *http.Request) (Fragment, error) {
	ua, err := useragent.Parse(r.UserAgent())
	if err != nil && !errors.Is(err, useragent.ErrMalformedUserAgent) {
		return Fragment{}, err
	}

	// Bots get conservative treatment: no next-gen formats, so previews
	// render everywhere the crawled image ends up.
	if ua.IsBot() {
		formats := FormatSupport{Source: SourceUserAgent}
		return Fragment{
			Browser: &Browser{Name: ua.BrowserName(), Version: ua.BrowserVer()},
			Formats: &formats,
		}, nil
	}

	if !ua.Identified() {
		// Decline so the static-data heuristics get their chance
		return Fragment{}, nil
	}

	fragment := Fragment{
		Browser: &Browser{Name: ua.BrowserName(), Version: ua.BrowserVer()},
	}

	formats := formatSupportFor(ua.BrowserName(), ua.BrowserMajor(), SourceUserAgent)
	fragment.Formats = &formats

	hints := &Hints{}
	if os := ua.OS(); os != useragent.OSUnknown {
		platform := os
		hints.Platform = &platform
	}
	if !ua.IsUnknown() {
		mobile := ua.IsMobile()
		hints.Mobile = &mobile
	}
	if hints.Platform != nil || hints.Mobile != nil {
		fragment.Hints = hints
	}

	return fragment, nil
}
