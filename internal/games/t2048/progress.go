package t2048

import (
	"math"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// GoalTile is the tile value that counts as 100% progress.
const GoalTile = 2048

// ProgressPercent returns round(maxTile / GoalTile * 100). The result is not
// clamped and exceeds 100 once a tile beyond the goal exists.
func ProgressPercent(maxTile int) int {
	return int(math.Round(float64(maxTile) / GoalTile * 100))
}

// DisplayProgress clamps a progress percentage to 100 for display.
func DisplayProgress(pct int) int {
	return min(pct, 100)
}

// ProgressTier is a color band for the progress meter.
type ProgressTier int

const (
	TierPoor ProgressTier = iota
	TierUncommon
	TierRare
	TierEpic
	TierLegendary
	TierArtifact
	TierBeyond
)

// TierFor picks the tier for an unclamped progress percentage.
func TierFor(pct int) ProgressTier {
	switch {
	case pct > 100:
		return TierBeyond
	case pct >= 99:
		return TierArtifact
	case pct >= 50:
		return TierLegendary
	case pct >= 25:
		return TierEpic
	case pct >= 12:
		return TierRare
	case pct >= 6:
		return TierUncommon
	default:
		return TierPoor
	}
}

// Color maps the tier to a screen color.
func (t ProgressTier) Color() core.Color {
	switch t {
	case TierBeyond:
		return core.ColorGold
	case TierArtifact:
		return core.ColorPink
	case TierLegendary:
		return core.ColorOrange
	case TierEpic:
		return core.ColorPurple
	case TierRare:
		return core.ColorBrightBlue
	case TierUncommon:
		return core.ColorBrightGreen
	default:
		return core.ColorGray
	}
}
