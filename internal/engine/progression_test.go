package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nataschneider2001/life-Os/internal/domain"
)

func TestAwardPointsBelowThreshold(t *testing.T) {
	stats := domain.UserStats{Points: 100, Level: 2, XPToNextLevel: 1000}

	got := AwardPoints(stats, 250)

	assert.Equal(t, 350, got.Points)
	assert.Equal(t, 2, got.Level)
	assert.Equal(t, 1000, got.XPToNextLevel)
}

func TestAwardPointsLevelUp(t *testing.T) {
	stats := domain.UserStats{Points: 1250, Level: 5, XPToNextLevel: 2500}

	got := AwardPoints(stats, 1400)

	assert.Equal(t, 150, got.Points)
	assert.Equal(t, 6, got.Level)
	assert.Equal(t, 3000, got.XPToNextLevel, "2500*1.2 floored")
}

func TestAwardPointsExactThreshold(t *testing.T) {
	stats := domain.UserStats{Points: 0, Level: 1, XPToNextLevel: 100}

	got := AwardPoints(stats, 100)

	assert.Equal(t, 0, got.Points)
	assert.Equal(t, 2, got.Level)
	assert.Equal(t, 120, got.XPToNextLevel)
}

func TestAwardPointsSingleLevelUpPerCall(t *testing.T) {
	// The overshoot spans several thresholds but only one level-up resolves.
	stats := domain.UserStats{Points: 0, Level: 1, XPToNextLevel: 100}

	got := AwardPoints(stats, 1000)

	assert.Equal(t, 2, got.Level)
	assert.Equal(t, 900, got.Points)
	assert.Equal(t, 120, got.XPToNextLevel)
	assert.Greater(t, got.Points, got.XPToNextLevel, "overshoot is left for the next award")
}

func TestAwardPointsZero(t *testing.T) {
	stats := domain.UserStats{Points: 10, Level: 1, XPToNextLevel: 100}

	got := AwardPoints(stats, 0)

	assert.Equal(t, stats, got)
}

func TestRedeemAffordable(t *testing.T) {
	stats := domain.UserStats{Points: 1250, Level: 5, XPToNextLevel: 2500}
	reward := domain.Reward{ID: "1", Title: "1-Hour Break", Cost: 500}

	got, ok := Redeem(stats, reward)

	assert.True(t, ok)
	assert.Equal(t, 750, got.Points)
	assert.Equal(t, 5, got.Level, "no level-down on redemption")
	assert.Equal(t, 2500, got.XPToNextLevel)
}

func TestRedeemInsufficientPoints(t *testing.T) {
	stats := domain.UserStats{Points: 750, Level: 5, XPToNextLevel: 2500}
	reward := domain.Reward{ID: "2", Title: "Special Dinner", Cost: 2000}

	got, ok := Redeem(stats, reward)

	assert.False(t, ok)
	assert.Equal(t, stats, got)
}

func TestRedeemExactCost(t *testing.T) {
	stats := domain.UserStats{Points: 500, Level: 3, XPToNextLevel: 1728}
	reward := domain.Reward{ID: "1", Cost: 500}

	got, ok := Redeem(stats, reward)

	assert.True(t, ok)
	assert.Equal(t, 0, got.Points)
}

func TestCanAfford(t *testing.T) {
	stats := domain.UserStats{Points: 500}

	assert.True(t, CanAfford(stats, domain.Reward{Cost: 500}))
	assert.True(t, CanAfford(stats, domain.Reward{Cost: 1}))
	assert.False(t, CanAfford(stats, domain.Reward{Cost: 501}))
}
