package useragent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// keywordSet optimizes keyword lookups using map structure for O(1) access
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Keyword sets organized by device type. Bot detection includes social media
// crawlers and monitoring tools that request page images for previews.
var (
	botKeywords     = newKeywordSet("bot", "spider", "crawler", "archiver", "lighthouse", "slurp", "facebookexternalhit", "twitter", "slack", "linkedin", "whatsapp", "telegram", "discord", "monitor", "validator", "fetcher", "scraper", "headless")
	tabletKeywords  = newKeywordSet("tablet", "kindle", "silk")
	mobileKeywords  = newKeywordSet("mobile", "iphone", "android", "windows phone", "iemobile", "blackberry")
	desktopKeywords = newKeywordSet("windows", "macintosh", "mac os x", "linux", "x11", "chromeos", "cros")
)

// ParseDeviceType classifies devices using fast string matching.
// Order matters: iOS devices first, then bots, then the Android
// tablet/phone split, then broad fallbacks.
func ParseDeviceType(lowerUA string) string {
	if lowerUA == "" {
		return DeviceTypeUnknown
	}

	// iOS devices have unambiguous identifiers
	if strings.Contains(lowerUA, "ipad") {
		return DeviceTypeTablet
	}

	if strings.Contains(lowerUA, "iphone") {
		return DeviceTypeMobile
	}

	if botKeywords.contains(lowerUA) {
		return DeviceTypeBot
	}

	// Android tablets omit the 'Mobile' keyword, unlike phones
	if strings.Contains(lowerUA, "android") {
		if strings.Contains(lowerUA, "mobile") {
			return DeviceTypeMobile
		}
		return DeviceTypeTablet
	}

	if tabletKeywords.contains(lowerUA) {
		return DeviceTypeTablet
	}

	if mobileKeywords.contains(lowerUA) {
		return DeviceTypeMobile
	}

	if desktopKeywords.contains(lowerUA) {
		return DeviceTypeDesktop
	}

	return DeviceTypeUnknown
}

// Direct mapping for the most common bots
var botNameMap = map[string]string{
	"googlebot":           "Googlebot",
	"bingbot":             "Bingbot",
	"yandexbot":           "Yandexbot",
	"twitterbot":          "Twitterbot",
	"facebookexternalhit": "Facebook",
	"linkedinbot":         "Linkedinbot",
	"slackbot":            "Slackbot",
	"telegrambot":         "Telegrambot",
}

// Bot name patterns compiled only once for efficiency
var botNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([a-z0-9\-_]+bot)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+spider)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+crawler)`),
}

// ExtractBotName extracts a human-readable bot name from a user agent string.
func ExtractBotName(userAgent string) string {
	lowerUA := strings.ToLower(userAgent)

	for keyword, name := range botNameMap {
		if strings.Contains(lowerUA, keyword) {
			return name
		}
	}

	for _, pattern := range botNamePatterns {
		matches := pattern.FindStringSubmatch(userAgent)
		if len(matches) > 1 {
			title := cases.Title(language.English)
			return title.String(strings.ToLower(matches[1]))
		}
	}

	return "Unknown Bot"
}
