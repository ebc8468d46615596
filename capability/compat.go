package capability

import "github.com/dmitrymomot/imgkit/pkg/useragent"

// Static format-support tables: normalized browser name to the minimum major
// version shipping a stable decoder. A browser absent from a table never
// supports the format (notably IE).
var webpMinVersion = map[string]int{
	useragent.BrowserChrome:  23,
	useragent.BrowserEdge:    18,
	useragent.BrowserFirefox: 65,
	useragent.BrowserOpera:   19,
	useragent.BrowserSafari:  14,
	useragent.BrowserSamsung: 4,
	useragent.BrowserUC:      12,
	useragent.BrowserMIUI:    10,
	useragent.BrowserYandex:  14,
}

var avifMinVersion = map[string]int{
	useragent.BrowserChrome:  85,
	useragent.BrowserEdge:    121,
	useragent.BrowserFirefox: 93,
	useragent.BrowserOpera:   71,
	useragent.BrowserSafari:  16,
	useragent.BrowserSamsung: 14,
	useragent.BrowserYandex:  21,
}

// SupportsFormat looks up whether the given browser family at the given
// major version supports a format. Unknown browsers, unknown formats, and a
// zero (unparsed) major version all report false: the table only ever
// upgrades a client, never downgrades one wrongly.
func SupportsFormat(format, browserName string, major int) bool {
	if major <= 0 {
		return false
	}

	var table map[string]int
	switch format {
	case FormatWebP:
		table = webpMinVersion
	case FormatAVIF:
		table = avifMinVersion
	case FormatJPEG:
		return true
	default:
		return false
	}

	min, ok := table[browserName]
	return ok && major >= min
}

// formatSupportFor resolves both format flags for a browser in one lookup.
func formatSupportFor(browserName string, major int, source Source) FormatSupport {
	return FormatSupport{
		WebP:   SupportsFormat(FormatWebP, browserName, major),
		AVIF:   SupportsFormat(FormatAVIF, browserName, major),
		Source: source,
	}
}
