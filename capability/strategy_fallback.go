package capability

import (
	"net/http"

	"github.com/dmitrymomot/imgkit/pkg/useragent"
)

// fallbackStrategy never declines. It supplies safe, conservative values for
// every field still unset after the real strategies ran: no next-gen
// formats, unknown browser, desktop-shaped defaults. Its output is what
// makes the engine's completeness guarantee unconditional.
type fallbackStrategy struct{}

func (fallbackStrategy) name() string   { return "default-fallback" }
func (fallbackStrategy) source() Source { return SourceDefault }
func (fallbackStrategy) priority() int  { return priorityFallback }

func (fallbackStrategy) applies(*http.Request) bool { return true }

func (fallbackStrategy) detect(*http.Request) (Fragment, error) {
	return Fragment{
		Browser: &Browser{Name: useragent.BrowserUnknown},
		Formats: &FormatSupport{Source: SourceDefault},
	}, nil
}
