package capability

import (
	"math"
	"net/http"
	"strconv"
	"strings"
)

// Client-hint headers the detector understands. Presence of any of them
// marks the request as hint-capable.
var clientHintHeaders = []string{
	"Sec-CH-UA",
	"Sec-CH-UA-Platform",
	"Sec-CH-UA-Mobile",
	"Sec-CH-DPR",
	"DPR",
	"Sec-CH-Viewport-Width",
	"Viewport-Width",
	"Device-Memory",
	"Downlink",
	"RTT",
	"ECT",
	"Save-Data",
	"Sec-CH-Prefers-Color-Scheme",
	"Sec-CH-Prefers-Reduced-Motion",
}

func hasClientHints(r *http.Request) bool {
	for _, name := range clientHintHeaders {
		if r.Header.Get(name) != "" {
			return true
		}
	}
	return false
}

// firstHeader returns the first non-empty value among the named headers.
// Used for hints that exist in both Sec-CH-prefixed and legacy spellings.
func firstHeader(r *http.Request, names ...string) string {
	for _, name := range names {
		if v := r.Header.Get(name); v != "" {
			return v
		}
	}
	return ""
}

// headerFloat parses a numeric header. A missing or malformed value yields
// nil so the field stays unfilled instead of propagating garbage.
func headerFloat(r *http.Request, names ...string) *float64 {
	raw := strings.TrimSpace(firstHeader(r, names...))
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func headerInt(r *http.Request, names ...string) *int {
	raw := strings.TrimSpace(firstHeader(r, names...))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// headerSaveData reports whether the Save-Data header requests reduced data
// use. Only the literal "on" counts, per the header's definition.
func headerSaveData(r *http.Request) *bool {
	raw := strings.TrimSpace(r.Header.Get("Save-Data"))
	if raw == "" {
		return nil
	}
	on := strings.EqualFold(raw, "on")
	return &on
}

// headerEffectiveType validates the ECT header against the known enum.
func headerEffectiveType(r *http.Request) *EffectiveType {
	raw := strings.ToLower(strings.TrimSpace(r.Header.Get("ECT")))
	switch et := EffectiveType(raw); et {
	case Effective4G, Effective3G, Effective2G, EffectiveSlow2G:
		return &et
	default:
		return nil
	}
}

// unquote strips the double quotes Structured Field string values carry,
// e.g. Sec-CH-UA-Platform: "iOS".
func unquote(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}
