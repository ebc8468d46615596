package capability

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/imgkit/pkg/useragent"
)

// clientHintsStrategy reads the structured client-hint headers. It is the
// highest-priority strategy: hints are explicit, machine-generated signals
// and beat anything inferred from the User-Agent string or Accept list.
type clientHintsStrategy struct{}

func (clientHintsStrategy) name() string   { return "client-hints" }
func (clientHintsStrategy) source() Source { return SourceClientHints }
func (clientHintsStrategy) priority() int  { return priorityClientHints }

func (clientHintsStrategy) applies(r *http.Request) bool {
	return hasClientHints(r)
}

func (s clientHintsStrategy) detect(r *http.Request) (Fragment, error) {
	hints := &Hints{
		DPR:                  headerFloat(r, "Sec-CH-DPR", "DPR"),
		ViewportWidth:        headerInt(r, "Sec-CH-Viewport-Width", "Viewport-Width"),
		DeviceMemoryGB:       headerFloat(r, "Sec-CH-Device-Memory", "Device-Memory"),
		DownlinkMbps:         headerFloat(r, "Downlink"),
		RTTMs:                headerInt(r, "RTT"),
		EffectiveType:        headerEffectiveType(r),
		SaveData:             headerSaveData(r),
		PrefersReducedMotion: headerReducedMotion(r),
		PrefersColorScheme:   headerColorScheme(r),
	}

	if platform := normalizePlatform(r.Header.Get("Sec-CH-UA-Platform")); platform != "" {
		hints.Platform = &platform
	}
	if mobile := r.Header.Get("Sec-CH-UA-Mobile"); mobile != "" {
		m := mobile == "?1"
		hints.Mobile = &m
	}

	fragment := Fragment{Hints: hints}

	// The UA brand list yields a browser identity precise enough to resolve
	// format support through the compatibility table.
	if browser := parseBrandList(r.Header.Get("Sec-CH-UA")); browser != nil {
		fragment.Browser = browser
		formats := formatSupportFor(browser.Name, useragent.MajorVersion(browser.Version), SourceClientHints)
		fragment.Formats = &formats
	}

	return fragment, nil
}

// Brand tokens mapped onto the normalized browser set. Checked in order so
// that branded entries win over the generic Chromium token they ship with.
var brandNames = []struct {
	token string
	name  string
}{
	{"google chrome", useragent.BrowserChrome},
	{"microsoft edge", useragent.BrowserEdge},
	{"opera", useragent.BrowserOpera},
	{"yandex", useragent.BrowserYandex},
	{"samsung internet", useragent.BrowserSamsung},
	{"chromium", useragent.BrowserChrome},
}

// parseBrandList extracts a browser identity from a Sec-CH-UA value such as
//
//	"Chromium";v="120", "Google Chrome";v="120", "Not-A.Brand";v="99"
//
// GREASE brands (the "Not...Brand" entries) are skipped. Returns nil when no
// known brand is present.
func parseBrandList(header string) *Browser {
	if header == "" {
		return nil
	}

	type brand struct {
		name    string
		version string
	}
	var brands []brand

	for _, part := range strings.Split(header, ",") {
		name, version, _ := strings.Cut(part, ";")
		name = strings.ToLower(unquote(name))
		if name == "" || strings.Contains(name, "not") && strings.Contains(name, "brand") {
			continue
		}

		version = strings.TrimSpace(version)
		version = strings.TrimPrefix(version, "v=")
		brands = append(brands, brand{name: name, version: unquote(version)})
	}

	for _, candidate := range brandNames {
		for _, b := range brands {
			if b.name == candidate.token {
				return &Browser{Name: candidate.name, Version: b.version}
			}
		}
	}

	return nil
}

// normalizePlatform maps Sec-CH-UA-Platform values onto the normalized OS
// identifiers the scoring tables key on.
func normalizePlatform(header string) string {
	switch strings.ToLower(unquote(header)) {
	case "ios":
		return useragent.OSiOS
	case "macos":
		return useragent.OSMacOS
	case "android":
		return useragent.OSAndroid
	case "windows":
		return useragent.OSWindows
	case "linux":
		return useragent.OSLinux
	case "chrome os", "chromeos":
		return useragent.OSChromeOS
	default:
		return ""
	}
}

func headerReducedMotion(r *http.Request) *bool {
	raw := r.Header.Get("Sec-CH-Prefers-Reduced-Motion")
	if raw == "" {
		return nil
	}
	reduced := strings.EqualFold(unquote(raw), "reduce")
	return &reduced
}

func headerColorScheme(r *http.Request) *string {
	raw := r.Header.Get("Sec-CH-Prefers-Color-Scheme")
	if raw == "" {
		return nil
	}
	scheme := strings.ToLower(unquote(raw))
	return &scheme
}
