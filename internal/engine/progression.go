package engine

import (
	"math"

	"github.com/nataschneider2001/life-Os/internal/domain"
)

const (
	// TaskCompletionPoints is awarded when a task flips to complete.
	TaskCompletionPoints = 20

	// HabitCompletionPoints is awarded when a habit is marked done for today.
	HabitCompletionPoints = 50

	// LevelGrowthFactor is applied to the XP threshold on every level-up.
	LevelGrowthFactor = 1.2
)

// AwardPoints adds amount to the current points and performs at most one
// level-up per call. A large overshoot can leave points above the new
// threshold; the next award resolves the next crossing. The remaining points
// after a level-up carry the full overshoot: points - oldThreshold.
func AwardPoints(stats domain.UserStats, amount int) domain.UserStats {
	stats.Points += amount
	if stats.Points >= stats.XPToNextLevel {
		stats.Level++
		stats.Points -= stats.XPToNextLevel
		stats.XPToNextLevel = int(math.Floor(float64(stats.XPToNextLevel) * LevelGrowthFactor))
	}
	return stats
}

// CanAfford reports whether the reward can currently be redeemed.
func CanAfford(stats domain.UserStats, reward domain.Reward) bool {
	return stats.Points >= reward.Cost
}

// Redeem deducts the reward cost when affordable. There is no level-down:
// redemption only moves points, never the level or the threshold. When the
// guard fails the stats come back unchanged and ok is false.
func Redeem(stats domain.UserStats, reward domain.Reward) (out domain.UserStats, ok bool) {
	if !CanAfford(stats, reward) {
		return stats, false
	}
	stats.Points -= reward.Cost
	return stats, true
}
