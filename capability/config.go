package capability

import "time"

// CacheConfig bounds the detection result cache.
type CacheConfig struct {
	Enabled     bool          `env:"IMGKIT_CACHE_ENABLED" envDefault:"true"`
	MaxSize     int           `env:"IMGKIT_CACHE_MAX_SIZE" envDefault:"1000"`
	PruneAmount int           `env:"IMGKIT_CACHE_PRUNE_AMOUNT" envDefault:"100"`
	TTL         time.Duration `env:"IMGKIT_CACHE_TTL" envDefault:"0"` // 0 disables expiry
}

// FingerprintConfig selects the digest used for cache keys.
type FingerprintConfig struct {
	// Algorithm is "sha256" (default) or "fnv" for the cheaper non-crypto mode.
	Algorithm string `env:"IMGKIT_FINGERPRINT_ALGORITHM" envDefault:"sha256"`
}

// StrategyConfig toggles individual detection strategies. The default
// fallback strategy cannot be disabled: it is what guarantees a complete
// result.
type StrategyConfig struct {
	ClientHints  bool `env:"IMGKIT_STRATEGY_CLIENT_HINTS" envDefault:"true"`
	AcceptHeader bool `env:"IMGKIT_STRATEGY_ACCEPT_HEADER" envDefault:"true"`
	UserAgent    bool `env:"IMGKIT_STRATEGY_USER_AGENT" envDefault:"true"`
	StaticData   bool `env:"IMGKIT_STRATEGY_STATIC_DATA" envDefault:"true"`
}

// TierBudget is the quality/dimension/format target set for one tier.
type TierBudget struct {
	QualityMin       int      `yaml:"quality_min"`
	QualityMax       int      `yaml:"quality_max"`
	QualityTarget    int      `yaml:"quality_target"`
	MaxWidth         int      `yaml:"max_width"`
	MaxHeight        int      `yaml:"max_height"`
	PreferredFormats []string `yaml:"preferred_formats"`
}

// TierTables maps each device/network tier to its budget. Load overrides
// from a YAML file with config.LoadFile on top of DefaultTierTables.
type TierTables struct {
	Low    TierBudget `yaml:"low"`
	Medium TierBudget `yaml:"medium"`
	High   TierBudget `yaml:"high"`
}

// DefaultTierTables returns the built-in tier budgets.
func DefaultTierTables() TierTables {
	return TierTables{
		Low: TierBudget{
			QualityMin:       40,
			QualityMax:       65,
			QualityTarget:    50,
			MaxWidth:         1280,
			MaxHeight:        1280,
			PreferredFormats: []string{FormatWebP, FormatJPEG},
		},
		Medium: TierBudget{
			QualityMin:       50,
			QualityMax:       80,
			QualityTarget:    70,
			MaxWidth:         1920,
			MaxHeight:        1920,
			PreferredFormats: []string{FormatWebP, FormatJPEG},
		},
		High: TierBudget{
			QualityMin:       60,
			QualityMax:       90,
			QualityTarget:    80,
			MaxWidth:         2560,
			MaxHeight:        2560,
			PreferredFormats: []string{FormatAVIF, FormatWebP, FormatJPEG},
		},
	}
}

// BudgetConfig holds every threshold and table the budget calculator uses.
// All values must be resolved before the calculator runs; NewCalculator
// normalizes the struct so behavior never depends on zero values.
type BudgetConfig struct {
	// PlatformScores are per-platform base scores keyed by normalized OS
	// identifier. Platforms absent from the map use DefaultPlatformScore.
	PlatformScores       map[string]int `env:"IMGKIT_BUDGET_PLATFORM_SCORES" envDefault:"ios:70,macos:70,android:50,windows:55,linux:55,chromeos:50"`
	DefaultPlatformScore int            `env:"IMGKIT_BUDGET_DEFAULT_PLATFORM_SCORE" envDefault:"50"`

	// Hardware bonuses saturate at the "high" thresholds: memory or cores
	// beyond them earn no further score.
	HighMemoryGB float64 `env:"IMGKIT_BUDGET_HIGH_MEMORY_GB" envDefault:"8"`
	MemoryWeight int     `env:"IMGKIT_BUDGET_MEMORY_WEIGHT" envDefault:"10"`
	HighCPUCores int     `env:"IMGKIT_BUDGET_HIGH_CPU_CORES" envDefault:"8"`
	CPUWeight    int     `env:"IMGKIT_BUDGET_CPU_WEIGHT" envDefault:"10"`

	// Network penalties.
	Slow2GPenalty   int     `env:"IMGKIT_BUDGET_SLOW_2G_PENALTY" envDefault:"40"`
	ThreeGPenalty   int     `env:"IMGKIT_BUDGET_3G_PENALTY" envDefault:"20"`
	HighRTTMs       int     `env:"IMGKIT_BUDGET_HIGH_RTT_MS" envDefault:"500"`
	RTTPenalty      int     `env:"IMGKIT_BUDGET_RTT_PENALTY" envDefault:"10"`
	LowDownlinkMbps float64 `env:"IMGKIT_BUDGET_LOW_DOWNLINK_MBPS" envDefault:"1.5"`
	DownlinkPenalty int     `env:"IMGKIT_BUDGET_DOWNLINK_PENALTY" envDefault:"10"`

	// Tier classification thresholds on the [0,100] score.
	LowThreshold  int `env:"IMGKIT_BUDGET_LOW_THRESHOLD" envDefault:"30"`
	HighThreshold int `env:"IMGKIT_BUDGET_HIGH_THRESHOLD" envDefault:"70"`

	// DPR adjustment: quality points added per unit of DPR above 1.0,
	// capped at MaxDPRBonus and never past the tier's QualityMax.
	QualityPerDPR float64 `env:"IMGKIT_BUDGET_QUALITY_PER_DPR" envDefault:"1"`
	MaxDPRBonus   int     `env:"IMGKIT_BUDGET_MAX_DPR_BONUS" envDefault:"4"`

	Tiers TierTables `env:"-"`
}

// Config is the full detector configuration. DefaultConfig returns a
// complete value; pkg/config.Load can bind environment overrides on top.
type Config struct {
	Cache       CacheConfig
	Fingerprint FingerprintConfig
	Strategies  StrategyConfig
	Budget      BudgetConfig
}

// DefaultConfig returns a fully-populated configuration with the built-in
// defaults. It never returns partially-set structs: every threshold and
// table has a concrete value.
func DefaultConfig() Config {
	return Config{
		Cache: CacheConfig{
			Enabled:     true,
			MaxSize:     1000,
			PruneAmount: 100,
		},
		Fingerprint: FingerprintConfig{
			Algorithm: algoSHA256,
		},
		Strategies: StrategyConfig{
			ClientHints:  true,
			AcceptHeader: true,
			UserAgent:    true,
			StaticData:   true,
		},
		Budget: BudgetConfig{
			PlatformScores: map[string]int{
				"ios":      70,
				"macos":    70,
				"android":  50,
				"windows":  55,
				"linux":    55,
				"chromeos": 50,
			},
			DefaultPlatformScore: 50,

			HighMemoryGB: 8,
			MemoryWeight: 10,
			HighCPUCores: 8,
			CPUWeight:    10,

			Slow2GPenalty:   40,
			ThreeGPenalty:   20,
			HighRTTMs:       500,
			RTTPenalty:      10,
			LowDownlinkMbps: 1.5,
			DownlinkPenalty: 10,

			LowThreshold:  30,
			HighThreshold: 70,

			QualityPerDPR: 1,
			MaxDPRBonus:   4,

			Tiers: DefaultTierTables(),
		},
	}
}

// normalize resolves missing or inconsistent values to safe concrete ones.
func (c *BudgetConfig) normalize() {
	if c.PlatformScores == nil {
		c.PlatformScores = DefaultConfig().Budget.PlatformScores
	}
	if c.DefaultPlatformScore <= 0 {
		c.DefaultPlatformScore = 50
	}
	if c.HighMemoryGB <= 0 {
		c.HighMemoryGB = 8
	}
	if c.HighCPUCores <= 0 {
		c.HighCPUCores = 8
	}
	if c.LowThreshold <= 0 {
		c.LowThreshold = 30
	}
	if c.HighThreshold <= c.LowThreshold {
		c.HighThreshold = c.LowThreshold + 40
	}
	if c.Tiers.Low.QualityMax == 0 && c.Tiers.Medium.QualityMax == 0 && c.Tiers.High.QualityMax == 0 {
		c.Tiers = DefaultTierTables()
	}
	c.Tiers.Low.normalize()
	c.Tiers.Medium.normalize()
	c.Tiers.High.normalize()
}

func (t *TierBudget) normalize() {
	if t.QualityMin <= 0 {
		t.QualityMin = 1
	}
	if t.QualityMax > 100 || t.QualityMax <= 0 {
		t.QualityMax = 100
	}
	if t.QualityMax < t.QualityMin {
		t.QualityMax = t.QualityMin
	}
	if t.QualityTarget < t.QualityMin {
		t.QualityTarget = t.QualityMin
	}
	if t.QualityTarget > t.QualityMax {
		t.QualityTarget = t.QualityMax
	}
	if len(t.PreferredFormats) == 0 {
		t.PreferredFormats = []string{FormatJPEG}
	}
}
