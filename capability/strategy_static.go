package capability

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

// staticDataStrategy is the best-effort heuristic for User-Agent strings the
// identifier could not place: it infers format support from numeric engine
// build numbers and platform fragments. It may legitimately produce an empty
// fragment, which the engine treats as a decline.
type staticDataStrategy struct{}

func (staticDataStrategy) name() string   { return "static-data" }
func (staticDataStrategy) source() Source { return SourceStaticData }
func (staticDataStrategy) priority() int  { return priorityStaticData }

func (staticDataStrategy) applies(r *http.Request) bool {
	return r.UserAgent() != ""
}

var (
	webkitBuildRe   = regexp.MustCompile(`applewebkit/(\d+)`)
	chromiumBuildRe = regexp.MustCompile(`(?:chrome|chromium|crios)/(\d+)`)
	androidVerRe    = regexp.MustCompile(`android (\d+)`)
)

func (staticDataStrategy) detect(r *http.Request) (Fragment, error) {
	lowerUA := strings.ToLower(r.UserAgent())

	// Chromium-derived engines embed the upstream build number even when the
	// product token itself is unrecognized (WebViews, embedded browsers).
	if build := matchBuild(chromiumBuildRe, lowerUA); build > 0 {
		formats := FormatSupport{
			WebP:   build >= 23,
			AVIF:   build >= 85,
			Source: SourceStaticData,
		}
		return Fragment{Formats: &formats}, nil
	}

	// Apple network stacks (AppleCoreMedia, CFNetwork) and bare WebKit
	// builds: WebKit 605 tracks the Safari 14 generation that decodes WebP.
	appleStack := strings.Contains(lowerUA, "applecoremedia") || strings.Contains(lowerUA, "cfnetwork")
	if build := matchBuild(webkitBuildRe, lowerUA); build > 0 || appleStack {
		formats := FormatSupport{
			WebP:   build >= 605,
			Source: SourceStaticData,
		}
		return Fragment{Formats: &formats}, nil
	}

	// Any Android 5+ system component decodes WebP natively.
	if ver := matchBuild(androidVerRe, lowerUA); ver >= 5 {
		formats := FormatSupport{
			WebP:   true,
			Source: SourceStaticData,
		}
		return Fragment{Formats: &formats}, nil
	}

	return Fragment{}, nil
}

func matchBuild(re *regexp.Regexp, lowerUA string) int {
	matches := re.FindStringSubmatch(lowerUA)
	if len(matches) < 2 {
		return 0
	}
	build, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0
	}
	return build
}
