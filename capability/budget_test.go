package capability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/imgkit/capability"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }

func TestScorePlatformBase(t *testing.T) {
	t.Parallel()

	calc := capability.NewCalculator(capability.DefaultConfig().Budget)

	tests := []struct {
		platform string
		want     int
	}{
		{"ios", 70},
		{"macos", 70},
		{"android", 50},
		{"windows", 55},
		{"", 50}, // unknown platform falls back to the default base
	}

	for _, tc := range tests {
		tc := tc
		device := capability.Device{DPR: 1.0, Platform: tc.platform}
		assert.Equal(t, tc.want, calc.Score(device, capability.Network{}), "platform %q", tc.platform)
	}
}

func TestScoreHardwareBonusSaturates(t *testing.T) {
	t.Parallel()

	calc := capability.NewCalculator(capability.DefaultConfig().Budget)

	base := calc.Score(capability.Device{DPR: 1.0, Platform: "windows"}, capability.Network{})

	at8 := calc.Score(capability.Device{
		DPR: 1.0, Platform: "windows",
		MemoryGB:          floatPtr(8),
		LogicalProcessors: intPtr(8),
	}, capability.Network{})
	assert.Equal(t, base+20, at8, "full memory and cpu bonus at the high thresholds")

	at64 := calc.Score(capability.Device{
		DPR: 1.0, Platform: "windows",
		MemoryGB:          floatPtr(64),
		LogicalProcessors: intPtr(32),
	}, capability.Network{})
	assert.Equal(t, at8, at64, "no unbounded benefit past the high thresholds")

	half := calc.Score(capability.Device{
		DPR: 1.0, Platform: "windows",
		MemoryGB: floatPtr(4),
	}, capability.Network{})
	assert.Equal(t, base+5, half, "memory bonus scales linearly below the threshold")
}

func TestScoreNetworkPenalties(t *testing.T) {
	t.Parallel()

	calc := capability.NewCalculator(capability.DefaultConfig().Budget)
	device := capability.Device{DPR: 1.0, Platform: "windows"}
	base := calc.Score(device, capability.Network{})

	tests := []struct {
		name    string
		network capability.Network
		want    int
	}{
		{
			name:    "2g",
			network: capability.Network{EffectiveType: capability.Effective2G},
			want:    base - 40,
		},
		{
			name:    "slow-2g",
			network: capability.Network{EffectiveType: capability.EffectiveSlow2G},
			want:    base - 40,
		},
		{
			name:    "3g",
			network: capability.Network{EffectiveType: capability.Effective3G},
			want:    base - 20,
		},
		{
			name:    "high rtt",
			network: capability.Network{RTTMs: intPtr(800)},
			want:    base - 10,
		},
		{
			name:    "low downlink",
			network: capability.Network{DownlinkMbps: floatPtr(0.5)},
			want:    base - 10,
		},
		{
			name: "penalties stack",
			network: capability.Network{
				EffectiveType: capability.Effective3G,
				RTTMs:         intPtr(800),
				DownlinkMbps:  floatPtr(0.5),
			},
			want: base - 40,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, calc.Score(device, tc.network))
		})
	}
}

func TestScoreSaveDataForcesMinimum(t *testing.T) {
	t.Parallel()

	calc := capability.NewCalculator(capability.DefaultConfig().Budget)

	// Even maxed-out hardware on the best platform lands in the minimum band.
	device := capability.Device{
		DPR:               3,
		Platform:          "ios",
		MemoryGB:          floatPtr(16),
		LogicalProcessors: intPtr(10),
	}
	score := calc.Score(device, capability.Network{SaveData: true})
	assert.Equal(t, 0, score)
	assert.Equal(t, capability.TierLow, calc.Classify(score))
}

func TestScoreClampedToRange(t *testing.T) {
	t.Parallel()

	cfg := capability.DefaultConfig().Budget
	cfg.PlatformScores = map[string]int{"ios": 95, "android": 5}
	calc := capability.NewCalculator(cfg)

	high := calc.Score(capability.Device{
		DPR: 1.0, Platform: "ios",
		MemoryGB:          floatPtr(16),
		LogicalProcessors: intPtr(16),
	}, capability.Network{})
	assert.Equal(t, 100, high)

	low := calc.Score(capability.Device{DPR: 1.0, Platform: "android"}, capability.Network{
		EffectiveType: capability.EffectiveSlow2G,
	})
	assert.Equal(t, 0, low)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	calc := capability.NewCalculator(capability.DefaultConfig().Budget)

	assert.Equal(t, capability.TierLow, calc.Classify(0))
	assert.Equal(t, capability.TierLow, calc.Classify(29))
	assert.Equal(t, capability.TierMedium, calc.Classify(30))
	assert.Equal(t, capability.TierMedium, calc.Classify(69))
	assert.Equal(t, capability.TierHigh, calc.Classify(70))
	assert.Equal(t, capability.TierHigh, calc.Classify(100))
}

func TestComputeTierTables(t *testing.T) {
	t.Parallel()

	cfg := capability.DefaultConfig().Budget
	calc := capability.NewCalculator(cfg)

	// iOS with strong hardware reaches the high tier.
	budget := calc.Compute(capability.Device{
		DPR: 1.0, Platform: "ios",
		MemoryGB:          floatPtr(8),
		LogicalProcessors: intPtr(8),
	}, capability.Network{})
	assert.Equal(t, cfg.Tiers.High.QualityTarget, budget.QualityTarget)
	assert.Equal(t, cfg.Tiers.High.MaxWidth, budget.MaxWidth)
	require.NotEmpty(t, budget.PreferredFormats)
	assert.Equal(t, capability.FormatAVIF, budget.PreferredFormats[0])

	// Save-Data forces the low tier.
	budget = calc.Compute(capability.Device{DPR: 1.0, Platform: "ios"}, capability.Network{SaveData: true})
	assert.Equal(t, cfg.Tiers.Low.QualityTarget, budget.QualityTarget)
	assert.Equal(t, cfg.Tiers.Low.PreferredFormats[0], budget.PreferredFormats[0])

	// Nothing known about the client lands in the medium tier.
	budget = calc.Compute(capability.Device{DPR: 1.0}, capability.Network{})
	assert.Equal(t, cfg.Tiers.Medium.QualityTarget, budget.QualityTarget)
}

func TestComputeDPRAdjustment(t *testing.T) {
	t.Parallel()

	cfg := capability.DefaultConfig().Budget
	calc := capability.NewCalculator(cfg)

	baseline := calc.Compute(capability.Device{DPR: 1.0}, capability.Network{})

	dpr2 := calc.Compute(capability.Device{DPR: 2.0}, capability.Network{})
	assert.Equal(t, baseline.QualityTarget+1, dpr2.QualityTarget)

	dpr3 := calc.Compute(capability.Device{DPR: 3.0}, capability.Network{})
	assert.Equal(t, baseline.QualityTarget+2, dpr3.QualityTarget)

	// The bonus is capped, however dense the display claims to be.
	dpr10 := calc.Compute(capability.Device{DPR: 10.0}, capability.Network{})
	assert.Equal(t, baseline.QualityTarget+cfg.MaxDPRBonus, dpr10.QualityTarget)
}

func TestComputeQualityInvariant(t *testing.T) {
	t.Parallel()

	// A tier table whose target sits at the ceiling must not be pushed past
	// it by the DPR adjustment.
	cfg := capability.DefaultConfig().Budget
	cfg.Tiers.Medium.QualityTarget = cfg.Tiers.Medium.QualityMax
	calc := capability.NewCalculator(cfg)

	budget := calc.Compute(capability.Device{DPR: 4.0}, capability.Network{})
	assert.LessOrEqual(t, budget.QualityMin, budget.QualityTarget)
	assert.LessOrEqual(t, budget.QualityTarget, budget.QualityMax)
	assert.Equal(t, budget.QualityMax, budget.QualityTarget)
}

func TestCalculatorNormalizesEmptyConfig(t *testing.T) {
	t.Parallel()

	// A zero config must resolve to concrete values, never zero thresholds.
	calc := capability.NewCalculator(capability.BudgetConfig{})

	budget := calc.Compute(capability.Device{DPR: 1.0}, capability.Network{})
	assert.Positive(t, budget.QualityMin)
	assert.Positive(t, budget.QualityTarget)
	assert.LessOrEqual(t, budget.QualityMin, budget.QualityTarget)
	assert.LessOrEqual(t, budget.QualityTarget, budget.QualityMax)
	assert.NotEmpty(t, budget.PreferredFormats)
}
