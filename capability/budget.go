package capability

import "math"

// Tier is the coarse classification of a computed device/network score.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Calculator derives a performance budget from detected capabilities.
// It is a pure function of its configuration: all thresholds and tables are
// injected, none are literals, so deployments tune behavior without code
// changes.
type Calculator struct {
	cfg BudgetConfig
}

// NewCalculator builds a calculator around the given configuration,
// normalizing it so every threshold and tier table holds a concrete value.
func NewCalculator(cfg BudgetConfig) Calculator {
	cfg.normalize()
	return Calculator{cfg: cfg}
}

// Score computes the device/network score in [0,100]. Save-Data forces the
// minimum band regardless of every other input: the client asked for reduced
// data use and hardware strength must not override that.
func (c Calculator) Score(device Device, network Network) int {
	if network.SaveData {
		return 0
	}

	score := float64(c.platformScore(device.Platform))
	score += c.memoryBonus(device.MemoryGB)
	score += c.cpuBonus(device.LogicalProcessors)
	score -= c.networkPenalty(network)

	return int(math.Round(math.Min(100, math.Max(0, score))))
}

func (c Calculator) platformScore(platform string) int {
	if base, ok := c.cfg.PlatformScores[platform]; ok {
		return base
	}
	return c.cfg.DefaultPlatformScore
}

// memoryBonus grows linearly with device memory and saturates at
// HighMemoryGB: memory beyond the threshold earns nothing extra.
func (c Calculator) memoryBonus(memoryGB *float64) float64 {
	if memoryGB == nil || *memoryGB <= 0 {
		return 0
	}
	ratio := math.Min(*memoryGB/c.cfg.HighMemoryGB, 1)
	return ratio * float64(c.cfg.MemoryWeight)
}

func (c Calculator) cpuBonus(cores *int) float64 {
	if cores == nil || *cores <= 0 {
		return 0
	}
	ratio := math.Min(float64(*cores)/float64(c.cfg.HighCPUCores), 1)
	return ratio * float64(c.cfg.CPUWeight)
}

func (c Calculator) networkPenalty(network Network) float64 {
	var penalty float64

	switch network.EffectiveType {
	case Effective2G, EffectiveSlow2G:
		penalty += float64(c.cfg.Slow2GPenalty)
	case Effective3G:
		penalty += float64(c.cfg.ThreeGPenalty)
	}

	if network.RTTMs != nil && *network.RTTMs > c.cfg.HighRTTMs {
		penalty += float64(c.cfg.RTTPenalty)
	}

	if network.DownlinkMbps != nil && *network.DownlinkMbps > 0 && *network.DownlinkMbps < c.cfg.LowDownlinkMbps {
		penalty += float64(c.cfg.DownlinkPenalty)
	}

	return penalty
}

// Classify maps a score onto a tier using the configured thresholds.
func (c Calculator) Classify(score int) Tier {
	switch {
	case score < c.cfg.LowThreshold:
		return TierLow
	case score >= c.cfg.HighThreshold:
		return TierHigh
	default:
		return TierMedium
	}
}

// Compute maps detected device and network capabilities to a complete
// performance budget: score, tier table lookup, then the DPR adjustment.
func (c Calculator) Compute(device Device, network Network) PerformanceBudget {
	tier := c.Classify(c.Score(device, network))

	var table TierBudget
	switch tier {
	case TierLow:
		table = c.cfg.Tiers.Low
	case TierHigh:
		table = c.cfg.Tiers.High
	default:
		table = c.cfg.Tiers.Medium
	}

	budget := PerformanceBudget{
		QualityMin:       table.QualityMin,
		QualityMax:       table.QualityMax,
		QualityTarget:    table.QualityTarget,
		MaxWidth:         table.MaxWidth,
		MaxHeight:        table.MaxHeight,
		PreferredFormats: append([]string(nil), table.PreferredFormats...),
	}

	// High-density displays benefit from higher source quality at the same
	// perceptual size. The bonus is bounded twice: by MaxDPRBonus and by the
	// tier's quality ceiling.
	if device.DPR > 1 {
		bonus := int(math.Round((device.DPR - 1) * c.cfg.QualityPerDPR))
		if bonus > c.cfg.MaxDPRBonus {
			bonus = c.cfg.MaxDPRBonus
		}
		budget.QualityTarget += bonus
		if budget.QualityTarget > budget.QualityMax {
			budget.QualityTarget = budget.QualityMax
		}
	}

	return budget
}
