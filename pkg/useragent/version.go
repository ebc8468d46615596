package useragent

import (
	"strconv"
	"strings"
)

// MajorVersion extracts the leading numeric component of a dotted version
// string. Returns 0 when the version is empty or does not start with a
// number, so callers can treat 0 as "version unknown".
func MajorVersion(version string) int {
	if version == "" {
		return 0
	}
	if i := strings.IndexByte(version, '.'); i >= 0 {
		version = version[:i]
	}
	major, err := strconv.Atoi(version)
	if err != nil || major < 0 {
		return 0
	}
	return major
}
