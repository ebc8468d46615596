package capability

import (
	"crypto/sha256"
	"encoding/hex"
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"
)

const (
	algoSHA256 = "sha256"
	algoFNV    = "fnv"

	// maxFingerprintUALen bounds the hashing cost for pathological
	// User-Agent headers: only the first 100 characters feed the digest.
	maxFingerprintUALen = 100
)

// fingerprinter derives compact cache keys from a fixed, small subset of
// request headers. Collisions are acceptable: the key addresses a cache, not
// a correctness boundary.
type fingerprinter struct {
	algorithm string
}

func newFingerprinter(cfg FingerprintConfig) fingerprinter {
	algo := strings.ToLower(cfg.Algorithm)
	if algo != algoFNV {
		algo = algoSHA256
	}
	return fingerprinter{algorithm: algo}
}

// Key combines the bounded User-Agent, a 2-bit Accept summary, the DPR and
// Viewport-Width hints, a Save-Data bit, and a has-client-hints bit into a
// single digest.
func (f fingerprinter) Key(r *http.Request) string {
	ua := r.UserAgent()
	if len(ua) > maxFingerprintUALen {
		ua = ua[:maxFingerprintUALen]
	}

	accept := strings.ToLower(r.Header.Get("Accept"))
	acceptBits := [2]byte{'0', '0'}
	if strings.Contains(accept, "image/webp") {
		acceptBits[0] = '1'
	}
	if strings.Contains(accept, "image/avif") {
		acceptBits[1] = '1'
	}

	saveData := "0"
	if sd := headerSaveData(r); sd != nil && *sd {
		saveData = "1"
	}

	hints := "0"
	if hasClientHints(r) {
		hints = "1"
	}

	combined := strings.Join([]string{
		ua,
		string(acceptBits[:]),
		firstHeader(r, "Sec-CH-DPR", "DPR"),
		firstHeader(r, "Sec-CH-Viewport-Width", "Viewport-Width"),
		saveData,
		hints,
	}, "|")

	if f.algorithm == algoFNV {
		h := fnv.New64a()
		h.Write([]byte(combined))
		return strconv.FormatUint(h.Sum64(), 16)
	}

	sum := sha256.Sum256([]byte(combined))
	// First 16 bytes as a 32-character hex string
	return hex.EncodeToString(sum[:16])
}
