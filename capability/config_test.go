package capability_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/imgkit/capability"
	"github.com/dmitrymomot/imgkit/pkg/config"
)

func TestDefaultConfigComplete(t *testing.T) {
	t.Parallel()

	cfg := capability.DefaultConfig()

	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 1000, cfg.Cache.MaxSize)
	assert.Equal(t, 100, cfg.Cache.PruneAmount)
	assert.Equal(t, "sha256", cfg.Fingerprint.Algorithm)

	assert.True(t, cfg.Strategies.ClientHints)
	assert.True(t, cfg.Strategies.AcceptHeader)
	assert.True(t, cfg.Strategies.UserAgent)
	assert.True(t, cfg.Strategies.StaticData)

	assert.Equal(t, 70, cfg.Budget.PlatformScores["ios"])
	assert.Equal(t, 50, cfg.Budget.DefaultPlatformScore)
	assert.Equal(t, 30, cfg.Budget.LowThreshold)
	assert.Equal(t, 70, cfg.Budget.HighThreshold)

	for name, tier := range map[string]capability.TierBudget{
		"low":    cfg.Budget.Tiers.Low,
		"medium": cfg.Budget.Tiers.Medium,
		"high":   cfg.Budget.Tiers.High,
	} {
		assert.NotEmpty(t, tier.PreferredFormats, "tier %s", name)
		assert.Positive(t, tier.MaxWidth, "tier %s", name)
		assert.LessOrEqual(t, tier.QualityMin, tier.QualityTarget, "tier %s", name)
		assert.LessOrEqual(t, tier.QualityTarget, tier.QualityMax, "tier %s", name)
	}
}

func TestConfigEnvOverrides(t *testing.T) {
	t.Setenv("IMGKIT_CACHE_MAX_SIZE", "250")
	t.Setenv("IMGKIT_CACHE_TTL", "5m")
	t.Setenv("IMGKIT_STRATEGY_STATIC_DATA", "false")
	t.Setenv("IMGKIT_BUDGET_HIGH_THRESHOLD", "80")
	t.Setenv("IMGKIT_FINGERPRINT_ALGORITHM", "fnv")

	var cfg capability.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, 250, cfg.Cache.MaxSize)
	assert.Equal(t, "5m0s", cfg.Cache.TTL.String())
	assert.False(t, cfg.Strategies.StaticData)
	assert.Equal(t, 80, cfg.Budget.HighThreshold)
	assert.Equal(t, "fnv", cfg.Fingerprint.Algorithm)

	// Untouched fields still bind their defaults.
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 100, cfg.Cache.PruneAmount)
	assert.Equal(t, 70, cfg.Budget.PlatformScores["macos"])
}

func TestTierTablesFileOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tiers.yml")
	data := []byte(`
high:
  quality_min: 55
  quality_max: 95
  quality_target: 85
  max_width: 3840
  max_height: 3840
  preferred_formats: [avif, webp, jpeg]
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	tiers := capability.DefaultTierTables()
	require.NoError(t, config.LoadFile(path, &tiers))

	assert.Equal(t, 85, tiers.High.QualityTarget)
	assert.Equal(t, 3840, tiers.High.MaxWidth)
	assert.Equal(t, []string{"avif", "webp", "jpeg"}, tiers.High.PreferredFormats)

	// Tiers the file does not mention keep their defaults.
	assert.Equal(t, capability.DefaultTierTables().Low, tiers.Low)
	assert.Equal(t, capability.DefaultTierTables().Medium, tiers.Medium)
}
