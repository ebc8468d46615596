package useragent

// OS detection keyword sets. Mobile platforms are checked before desktop
// ones: an iPhone UA contains "like Mac OS X" and an Android UA contains
// "Linux", so matching the desktop tokens first would misclassify most
// mobile traffic.
var (
	iOSKeywords      = newKeywordSet("iphone", "ipad", "ipod", "applecoremedia", "cfnetwork")
	androidKeywords  = newKeywordSet("android")
	windowsKeywords  = newKeywordSet("windows")
	macOSKeywords    = newKeywordSet("macintosh", "mac os x")
	chromeOSKeywords = newKeywordSet("cros", "chromeos", "chrome os")
	linuxKeywords    = newKeywordSet("linux", "ubuntu", "debian", "fedora", "x11")
)

// ParseOS identifies the operating system from a lowercased user agent string.
func ParseOS(lowerUA string) string {
	if lowerUA == "" {
		return OSUnknown
	}

	if iOSKeywords.contains(lowerUA) {
		return OSiOS
	}

	if androidKeywords.contains(lowerUA) {
		return OSAndroid
	}

	if windowsKeywords.contains(lowerUA) {
		return OSWindows
	}

	if macOSKeywords.contains(lowerUA) {
		return OSMacOS
	}

	if chromeOSKeywords.contains(lowerUA) {
		return OSChromeOS
	}

	if linuxKeywords.contains(lowerUA) {
		return OSLinux
	}

	return OSUnknown
}
