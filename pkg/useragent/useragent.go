// Package useragent provides utilities for parsing and analyzing HTTP User-Agent strings.
package useragent

import "strings"

// UserAgent contains the parsed information from a user agent string
type UserAgent struct {
	// Raw user agent string
	userAgent string

	// Device information
	deviceType string

	// Software information
	os          string
	browserName string
	browserVer  string
}

// String returns the user agent as a string
func (ua UserAgent) String() string { return ua.userAgent }

// DeviceType returns the device type (mobile, desktop, tablet, bot, unknown)
func (ua UserAgent) DeviceType() string { return ua.deviceType }

// OS returns the operating system name
func (ua UserAgent) OS() string { return ua.os }

// BrowserName returns the normalized browser name
func (ua UserAgent) BrowserName() string { return ua.browserName }

// BrowserVer returns the browser version
func (ua UserAgent) BrowserVer() string { return ua.browserVer }

// BrowserMajor returns the numeric major browser version, 0 when unknown
func (ua UserAgent) BrowserMajor() int { return MajorVersion(ua.browserVer) }

// BrowserInfo returns the browser name and version
func (ua UserAgent) BrowserInfo() Browser {
	return Browser{Name: ua.browserName, Version: ua.browserVer}
}

// BotName returns the extracted bot name, or an empty string for non-bots
func (ua UserAgent) BotName() string {
	if !ua.IsBot() {
		return ""
	}
	return ExtractBotName(ua.userAgent)
}

// IsBot returns true if the user agent is a bot
func (ua UserAgent) IsBot() bool { return ua.deviceType == DeviceTypeBot }

// IsMobile returns true if the user agent is a mobile device
func (ua UserAgent) IsMobile() bool { return ua.deviceType == DeviceTypeMobile }

// IsTablet returns true if the user agent is a tablet device
func (ua UserAgent) IsTablet() bool { return ua.deviceType == DeviceTypeTablet }

// IsDesktop returns true if the user agent is a desktop device
func (ua UserAgent) IsDesktop() bool { return ua.deviceType == DeviceTypeDesktop }

// IsUnknown returns true if the device type could not be determined
func (ua UserAgent) IsUnknown() bool {
	return ua.deviceType == DeviceTypeUnknown || ua.deviceType == ""
}

// Identified reports whether parsing recognized at least the browser family.
func (ua UserAgent) Identified() bool {
	return ua.browserName != "" && ua.browserName != BrowserUnknown
}

// Parse parses a user agent string and returns a UserAgent struct.
// The returned struct is always usable; the error signals that parsing was
// partial and callers may want to fall back to other detection signals.
func Parse(ua string) (UserAgent, error) {
	if ua == "" {
		return New("", DeviceTypeUnknown, OSUnknown, BrowserUnknown, ""), ErrEmptyUserAgent
	}

	lowerUA := strings.ToLower(ua)

	deviceType := ParseDeviceType(lowerUA)
	os := ParseOS(lowerUA)
	browser := ParseBrowser(lowerUA)

	result := New(ua, deviceType, os, browser.Name, browser.Version)

	// Nothing recognizable at all: likely a malformed or synthetic UA
	if os == OSUnknown && browser.Name == BrowserUnknown && deviceType == DeviceTypeUnknown {
		return result, ErrMalformedUserAgent
	}

	return result, nil
}

// New creates a new UserAgent with the provided parameters
func New(ua, deviceType, os, browserName, browserVer string) UserAgent {
	return UserAgent{
		userAgent:   ua,
		deviceType:  deviceType,
		os:          os,
		browserName: browserName,
		browserVer:  browserVer,
	}
}
