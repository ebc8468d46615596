// In-package tests: fingerprinter and its constants are unexported.
package capability

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintDeterministic(t *testing.T) {
	t.Parallel()

	fp := newFingerprinter(FingerprintConfig{Algorithm: "sha256"})

	r1 := httptest.NewRequest("GET", "/img.jpg", nil)
	r1.Header.Set("User-Agent", "Mozilla/5.0 Chrome/120.0")
	r1.Header.Set("Accept", "image/webp,*/*")

	r2 := httptest.NewRequest("GET", "/other.jpg", nil)
	r2.Header.Set("User-Agent", "Mozilla/5.0 Chrome/120.0")
	r2.Header.Set("Accept", "image/webp,*/*")

	// The key depends on headers only, never on the URL.
	assert.Equal(t, fp.Key(r1), fp.Key(r2))
	assert.Len(t, fp.Key(r1), 32)
}

func TestFingerprintDistinguishesSignals(t *testing.T) {
	t.Parallel()

	fp := newFingerprinter(FingerprintConfig{Algorithm: "sha256"})

	newReq := func(mutate func(h map[string]string)) string {
		headers := map[string]string{
			"User-Agent": "Mozilla/5.0 Chrome/120.0",
			"Accept":     "image/webp,*/*",
		}
		if mutate != nil {
			mutate(headers)
		}
		r := httptest.NewRequest("GET", "/img.jpg", nil)
		for k, v := range headers {
			r.Header.Set(k, v)
		}
		return fp.Key(r)
	}

	reference := newReq(nil)

	assert.NotEqual(t, reference, newReq(func(h map[string]string) {
		h["User-Agent"] = "Mozilla/5.0 Firefox/121.0"
	}), "user agent changes the key")

	assert.NotEqual(t, reference, newReq(func(h map[string]string) {
		h["Accept"] = "image/avif,image/webp,*/*"
	}), "accept summary changes the key")

	assert.NotEqual(t, reference, newReq(func(h map[string]string) {
		h["Save-Data"] = "on"
	}), "save-data bit changes the key")

	assert.NotEqual(t, reference, newReq(func(h map[string]string) {
		h["Sec-CH-DPR"] = "2"
	}), "dpr changes the key")
}

func TestFingerprintAcceptCaseInsensitive(t *testing.T) {
	t.Parallel()

	fp := newFingerprinter(FingerprintConfig{Algorithm: "sha256"})

	r1 := httptest.NewRequest("GET", "/img.jpg", nil)
	r1.Header.Set("User-Agent", "Mozilla/5.0 Chrome/120.0")
	r1.Header.Set("Accept", "image/webp,*/*")

	r2 := httptest.NewRequest("GET", "/img.jpg", nil)
	r2.Header.Set("User-Agent", "Mozilla/5.0 Chrome/120.0")
	r2.Header.Set("Accept", "IMAGE/WebP,*/*")

	// Accept tokens are matched the same way detection matches them, so
	// requests differing only in Accept casing share a key.
	assert.Equal(t, fp.Key(r1), fp.Key(r2))
}

func TestFingerprintCapsUserAgentInput(t *testing.T) {
	t.Parallel()

	fp := newFingerprinter(FingerprintConfig{Algorithm: "sha256"})

	prefix := strings.Repeat("a", maxFingerprintUALen)

	r1 := httptest.NewRequest("GET", "/img.jpg", nil)
	r1.Header.Set("User-Agent", prefix+"-first-tail")
	r2 := httptest.NewRequest("GET", "/img.jpg", nil)
	r2.Header.Set("User-Agent", prefix+"-second-tail")

	// Only the first 100 characters feed the digest, so pathological UAs
	// that differ past the cap hash identically.
	assert.Equal(t, fp.Key(r1), fp.Key(r2))
}

func TestFingerprintFNVMode(t *testing.T) {
	t.Parallel()

	fp := newFingerprinter(FingerprintConfig{Algorithm: "fnv"})

	r := httptest.NewRequest("GET", "/img.jpg", nil)
	r.Header.Set("User-Agent", "Mozilla/5.0 Chrome/120.0")

	key := fp.Key(r)
	assert.NotEmpty(t, key)
	assert.NotEqual(t, newFingerprinter(FingerprintConfig{Algorithm: "sha256"}).Key(r), key)
}

func TestFingerprintUnknownAlgorithmFallsBack(t *testing.T) {
	t.Parallel()

	fp := newFingerprinter(FingerprintConfig{Algorithm: "md5"})
	assert.Equal(t, algoSHA256, fp.algorithm)
}
