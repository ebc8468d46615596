// Package useragent parses HTTP User-Agent strings into a normalized
// browser, operating system, and device classification.
//
// The parser targets content negotiation rather than analytics: it maps raw
// UA tokens onto a small closed set of browser families (see the Browser*
// constants) so that downstream lookups, such as image-format support
// tables, can key on stable identifiers. Rule order is part of the contract:
// vendor and mobile browser patterns are checked before the generic Chrome,
// Firefox, and Safari patterns because mobile UA strings routinely embed the
// generic desktop tokens.
//
// # Usage
//
//	ua, err := useragent.Parse(r.UserAgent())
//	if err != nil {
//		// err marks partial identification; ua is still usable
//	}
//
//	switch {
//	case ua.IsBot():
//		log.Printf("bot: %s", ua.BotName())
//	case ua.IsMobile():
//		// serve mobile-sized assets
//	}
//
//	name, major := ua.BrowserName(), ua.BrowserMajor()
//
// # Error Handling
//
// Parse never returns an unusable value. ErrEmptyUserAgent and
// ErrMalformedUserAgent indicate that some or all fields fell back to the
// Unknown constants; callers decide whether that matters.
//
// # Performance Considerations
//
// Matching is keyword-first with regexes used only for version extraction,
// all compiled once at package init. Parsing cost is bounded by the fixed
// rule set and does not grow with pathological inputs.
package useragent
