package useragent

// Device types represent the category of device that made the request
const (
	// DeviceTypeBot identifies automated crawlers, bots, and spiders
	DeviceTypeBot = "bot"

	// DeviceTypeMobile identifies smartphones and feature phones
	DeviceTypeMobile = "mobile"

	// DeviceTypeTablet identifies tablet devices (iPad, Android tablets, etc.)
	DeviceTypeTablet = "tablet"

	// DeviceTypeDesktop identifies desktop computers and laptops
	DeviceTypeDesktop = "desktop"

	// DeviceTypeUnknown is used when the device type cannot be determined
	DeviceTypeUnknown = "unknown"
)

// Browser name identifiers. This is a closed set: every parse result maps to
// one of these normalized names, never to a raw user-agent token.
const (
	// BrowserChrome identifies Google Chrome and Chromium-based browsers
	BrowserChrome = "chrome"

	// BrowserFirefox identifies Mozilla Firefox browser
	BrowserFirefox = "firefox"

	// BrowserSafari identifies Apple Safari browser
	BrowserSafari = "safari"

	// BrowserEdge identifies Microsoft Edge browser
	BrowserEdge = "edge"

	// BrowserOpera identifies Opera browser
	BrowserOpera = "opera"

	// BrowserSamsung identifies Samsung Internet browser
	BrowserSamsung = "samsung"

	// BrowserUC identifies UC Browser
	BrowserUC = "uc"

	// BrowserMIUI identifies Xiaomi MIUI Browser
	BrowserMIUI = "miui"

	// BrowserYandex identifies Yandex Browser
	BrowserYandex = "yandex"

	// BrowserIE identifies Internet Explorer browser
	BrowserIE = "ie"

	// BrowserUnknown is used when the browser cannot be determined
	BrowserUnknown = "unknown"
)

// Operating system identifiers
const (
	// OSWindows identifies Microsoft Windows operating system
	OSWindows = "windows"

	// OSMacOS identifies Apple macOS operating system
	OSMacOS = "macos"

	// OSiOS identifies Apple iOS and iPadOS mobile operating systems
	OSiOS = "ios"

	// OSAndroid identifies Google Android operating system
	OSAndroid = "android"

	// OSChromeOS identifies Google Chrome OS operating system
	OSChromeOS = "chromeos"

	// OSLinux identifies Linux-based operating systems
	OSLinux = "linux"

	// OSUnknown is used when the operating system cannot be determined
	OSUnknown = "unknown"
)
