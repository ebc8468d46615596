package capability

import (
	"net/http"
	"strings"
)

// acceptHeaderStrategy inspects the Accept media-type list for explicit
// image/webp and image/avif tokens. Browsers that advertise a format there
// can decode it; the signal says nothing about anything else, so the
// fragment carries formats only.
type acceptHeaderStrategy struct{}

func (acceptHeaderStrategy) name() string   { return "accept-header" }
func (acceptHeaderStrategy) source() Source { return SourceAcceptHeader }
func (acceptHeaderStrategy) priority() int  { return priorityAcceptHeader }

func (acceptHeaderStrategy) applies(r *http.Request) bool {
	return r.Header.Get("Accept") != ""
}

func (acceptHeaderStrategy) detect(r *http.Request) (Fragment, error) {
	accept := strings.ToLower(r.Header.Get("Accept"))

	formats := FormatSupport{
		WebP:   strings.Contains(accept, "image/webp"),
		AVIF:   strings.Contains(accept, "image/avif"),
		Source: SourceAcceptHeader,
	}

	return Fragment{Formats: &formats}, nil
}
