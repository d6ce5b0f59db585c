package engine

import (
	"time"

	"github.com/nataschneider2001/life-Os/internal/domain"
)

// Intent is one user action against the aggregate state. Apply consumes an
// Intent and produces the next snapshot; the host persists afterwards.
type Intent interface {
	isIntent()
}

type AddTask struct {
	Title    string
	Priority domain.Priority
	Category string
	DueDate  *time.Time
}

type ToggleTask struct {
	ID string
}

type DeleteTask struct {
	ID string
}

type AddHabit struct {
	Name      string
	Frequency domain.Frequency
	Category  string
}

// ToggleHabitToday flips today's completion for a habit. Now is injected so
// the calendar-day key is deterministic under test.
type ToggleHabitToday struct {
	ID  string
	Now time.Time
}

type DeleteHabit struct {
	ID string
}

// AddTransaction carries the raw user-entered amount; parsing failures make
// the whole intent a no-op.
type AddTransaction struct {
	Description string
	Amount      string
	Type        domain.TransactionType
	Category    string
	Now         time.Time
}

type DeleteTransaction struct {
	ID string
}

type RedeemReward struct {
	RewardID string
}

// UpdateSettings changes only the fields that are non-nil.
type UpdateSettings struct {
	Theme       *domain.Theme
	Currency    *string
	DailyGoalXP *int
}

func (AddTask) isIntent()           {}
func (ToggleTask) isIntent()        {}
func (DeleteTask) isIntent()        {}
func (AddHabit) isIntent()          {}
func (ToggleHabitToday) isIntent()  {}
func (DeleteHabit) isIntent()       {}
func (AddTransaction) isIntent()    {}
func (DeleteTransaction) isIntent() {}
func (RedeemReward) isIntent()      {}
func (UpdateSettings) isIntent()    {}
