package imgkit_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/imgkit"
	"github.com/dmitrymomot/imgkit/capability"
)

const uaChromeDesktop = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func newOptimizer(t *testing.T) *imgkit.Optimizer {
	t.Helper()
	return imgkit.NewOptimizer(capability.NewEngine(capability.DefaultConfig()))
}

func TestOptimizedOptionsFillsOpenFields(t *testing.T) {
	t.Parallel()

	opt := newOptimizer(t)

	r := httptest.NewRequest("GET", "/img.jpg", nil)
	r.Header.Set("User-Agent", uaChromeDesktop)
	r.Header.Set("Accept", "image/avif,image/webp,*/*")

	opts, caps := opt.OptimizedOptions(r, imgkit.TransformOptions{})
	require.NotNil(t, caps)

	// A mid-tier budget prefers webp; the client supports it.
	assert.Equal(t, capability.FormatWebP, opts.Format)
	assert.Equal(t, caps.Performance.QualityTarget, opts.Quality)
	assert.Equal(t, caps.Performance.MaxWidth, opts.Width)
	assert.Equal(t, caps.Performance.MaxHeight, opts.Height)
}

func TestOptimizedOptionsNeverOverridesExplicitValues(t *testing.T) {
	t.Parallel()

	opt := newOptimizer(t)

	r := httptest.NewRequest("GET", "/img.jpg", nil)
	r.Header.Set("User-Agent", uaChromeDesktop)

	base := imgkit.TransformOptions{
		Width:   800,
		Height:  600,
		Format:  capability.FormatJPEG,
		Quality: 42,
		Extra:   map[string]string{"fit": "cover"},
	}
	opts, _ := opt.OptimizedOptions(r, base)

	assert.Equal(t, 800, opts.Width)
	assert.Equal(t, 600, opts.Height)
	assert.Equal(t, capability.FormatJPEG, opts.Format)
	assert.Equal(t, 42, opts.Quality)
	assert.Equal(t, base.Extra, opts.Extra)
}

func TestOptimizedOptionsFormatAutoSentinel(t *testing.T) {
	t.Parallel()

	opt := newOptimizer(t)

	r := httptest.NewRequest("GET", "/img.jpg", nil)
	r.Header.Set("Accept", "image/webp,*/*")

	opts, _ := opt.OptimizedOptions(r, imgkit.TransformOptions{Format: imgkit.FormatAuto})
	assert.Equal(t, capability.FormatWebP, opts.Format)
}

func TestOptimizedOptionsSkipsUnsupportedPreferredFormats(t *testing.T) {
	t.Parallel()

	opt := newOptimizer(t)

	// The webp-only Accept header must rule AVIF out even when the budget
	// prefers it.
	r := httptest.NewRequest("GET", "/img.jpg", nil)
	r.Header.Set("Accept", "image/webp,*/*")
	r.Header.Set("Device-Memory", "16")
	r.Header.Set("Sec-CH-UA-Platform", `"macOS"`)

	opts, caps := opt.OptimizedOptions(r, imgkit.TransformOptions{})
	require.Contains(t, caps.Performance.PreferredFormats, capability.FormatAVIF)
	assert.Equal(t, capability.FormatWebP, opts.Format)
}

func TestOptimizedOptionsFallsBackToJPEG(t *testing.T) {
	t.Parallel()

	opt := newOptimizer(t)

	// No format signal at all: nothing beyond JPEG can be assumed.
	r := httptest.NewRequest("GET", "/img.jpg", nil)

	opts, caps := opt.OptimizedOptions(r, imgkit.TransformOptions{})
	assert.False(t, caps.Formats.WebP)
	assert.False(t, caps.Formats.AVIF)
	assert.Equal(t, capability.FormatJPEG, opts.Format)
}
