package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFinanceTotals(t *testing.T) {
	state := DefaultState()
	state.Transactions = []Transaction{
		{ID: "1", Description: "Salary", Amount: 4200, Type: TransactionIncome, Date: time.Now()},
		{ID: "2", Description: "Rent", Amount: 1500, Type: TransactionExpense, Date: time.Now()},
		{ID: "3", Description: "Groceries", Amount: 300.50, Type: TransactionExpense, Date: time.Now()},
	}

	assert.Equal(t, 4200.0, state.TotalIncome())
	assert.Equal(t, 1800.50, state.TotalExpense())
	assert.Equal(t, 2399.50, state.Balance())
}

func TestTaskCounters(t *testing.T) {
	state := DefaultState()
	state.Tasks = []Task{
		{ID: "1", Title: "a", Completed: true},
		{ID: "2", Title: "b"},
		{ID: "3", Title: "c", Completed: true},
	}

	assert.Equal(t, 2, state.CompletedTasks())
	pending := state.PendingTasks()
	assert.Len(t, pending, 1)
	assert.Equal(t, "b", pending[0].Title)
}

func TestHabitConsistency(t *testing.T) {
	state := DefaultState()
	assert.Zero(t, state.HabitConsistency(), "no habits means zero, not NaN")

	state.Habits = []Habit{
		{ID: "1", Name: "a", Streak: 15},
		{ID: "2", Name: "b", Streak: 15},
	}
	// 30 streak days over a 60-day horizon.
	assert.InDelta(t, 50.0, state.HabitConsistency(), 0.001)
}

func TestLevelProgress(t *testing.T) {
	state := DefaultState()
	state.Stats = UserStats{Points: 1250, Level: 5, XPToNextLevel: 2500}

	assert.InDelta(t, 50.0, state.LevelProgress(), 0.001)

	state.Stats.XPToNextLevel = 0
	assert.Zero(t, state.LevelProgress())
}

func TestCloneIsDeep(t *testing.T) {
	state := DefaultState()
	state.Habits = []Habit{{ID: "h", Name: "x", CompletedDays: []string{"2026-01-01"}}}

	clone := state.Clone()
	clone.Habits[0].CompletedDays[0] = "mutated"
	clone.Stats.Badges[0] = "mutated"

	assert.Equal(t, "2026-01-01", state.Habits[0].CompletedDays[0])
	assert.Equal(t, "Early Bird", state.Stats.Badges[0])
}

func TestDayKey(t *testing.T) {
	ts := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-14", DayKey(ts))
}
