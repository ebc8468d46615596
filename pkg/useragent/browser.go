package useragent

import (
	"regexp"
	"strings"
)

// Browser represents browser information
type Browser struct {
	Name    string
	Version string
}

// browserPattern defines a pattern for detecting a browser
type browserPattern struct {
	name     string
	keywords []string
	excludes []string
	regex    *regexp.Regexp
}

// Extract version from a user agent string using a regex
func extractVersion(ua string, regex *regexp.Regexp) string {
	if regex == nil {
		return ""
	}
	matches := regex.FindStringSubmatch(ua)
	if len(matches) > 1 {
		version := matches[1]
		// Limit version length to avoid excessively long versions
		if len(version) > 20 {
			version = version[:20]
		}
		return version
	}
	return ""
}

// matchPattern checks if the UA string matches a browser pattern.
// A pattern matches when any of its keywords is present and none of its
// excludes are.
func matchPattern(ua string, pattern browserPattern) bool {
	matched := false
	for _, keyword := range pattern.keywords {
		if strings.Contains(ua, keyword) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	for _, exclude := range pattern.excludes {
		if strings.Contains(ua, exclude) {
			return false
		}
	}
	return true
}

// Browser detection patterns in checking order. Vendor and mobile browsers
// come first: their UA strings also carry generic "chrome" and "safari"
// tokens, so the generic desktop patterns must be the last resort.
var browserPatterns = []browserPattern{
	{
		name:     BrowserEdge,
		keywords: []string{"edg/", "edge/", "edga/", "edgios/"},
		regex:    regexp.MustCompile(`(?i)(?:edge|edga|edgios|edg)[/ ]([\d.]+)`),
	},
	{
		name:     BrowserSamsung,
		keywords: []string{"samsungbrowser"},
		regex:    regexp.MustCompile(`(?i)samsungbrowser[/\s]([\d.]+)`),
	},
	{
		name:     BrowserUC,
		keywords: []string{"ucbrowser"},
		regex:    regexp.MustCompile(`(?i)ucbrowser[/\s]([\d.]+)`),
	},
	{
		name:     BrowserMIUI,
		keywords: []string{"miuibrowser"},
		regex:    regexp.MustCompile(`(?i)miuibrowser[/\s]([\d.]+)`),
	},
	{
		name:     BrowserYandex,
		keywords: []string{"yabrowser"},
		regex:    regexp.MustCompile(`(?i)yabrowser[/\s]([\d.]+)`),
	},
	{
		name:     BrowserOpera,
		keywords: []string{"opr/", "opt/", "opera"},
		regex:    regexp.MustCompile(`(?i)(?:opr|opt|opera)[/\s]([\d.]+)`),
	},
	{
		// Chrome on iOS ships a WebKit engine but reports CriOS
		name:     BrowserChrome,
		keywords: []string{"crios/"},
		regex:    regexp.MustCompile(`(?i)crios[/\s]([\d.]+)`),
	},
	{
		name:     BrowserFirefox,
		keywords: []string{"fxios/"},
		regex:    regexp.MustCompile(`(?i)fxios[/\s]([\d.]+)`),
	},
	{
		name:     BrowserChrome,
		keywords: []string{"chrome"},
		regex:    regexp.MustCompile(`(?i)chrome[/\s]([\d.]+)`),
	},
	{
		name:     BrowserFirefox,
		keywords: []string{"firefox"},
		regex:    regexp.MustCompile(`(?i)firefox[/\s]([\d.]+)`),
	},
	{
		name:     BrowserSafari,
		keywords: []string{"safari"},
		excludes: []string{"chrome", "crios", "android"},
		regex:    regexp.MustCompile(`(?i)version[/\s]([\d.]+)`),
	},
	{
		name:     BrowserIE,
		keywords: []string{"msie"},
		regex:    regexp.MustCompile(`(?i)msie ([\d.]+)`),
	},
}

// ParseBrowser parses the browser information from a lowercased user agent
// string. Returns BrowserUnknown when no pattern matches.
func ParseBrowser(lowerUA string) Browser {
	// IE 11 dropped the msie token and only carries Trident
	if strings.Contains(lowerUA, "trident/") && !strings.Contains(lowerUA, "msie") {
		return Browser{
			Name:    BrowserIE,
			Version: "11.0",
		}
	}

	for _, pattern := range browserPatterns {
		if matchPattern(lowerUA, pattern) {
			return Browser{
				Name:    pattern.name,
				Version: extractVersion(lowerUA, pattern.regex),
			}
		}
	}

	return Browser{
		Name:    BrowserUnknown,
		Version: "",
	}
}
