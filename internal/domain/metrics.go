package domain

// Derived display metrics. All are recomputed on read; none are persisted.

// CompletedTasks counts tasks currently marked complete.
func (s AppState) CompletedTasks() int {
	n := 0
	for _, t := range s.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// PendingTasks returns incomplete tasks in insertion order.
func (s AppState) PendingTasks() []Task {
	var out []Task
	for _, t := range s.Tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// TotalIncome sums all income transactions.
func (s AppState) TotalIncome() float64 {
	var sum float64
	for _, tx := range s.Transactions {
		if tx.Type == TransactionIncome {
			sum += tx.Amount
		}
	}
	return sum
}

// TotalExpense sums all expense transactions.
func (s AppState) TotalExpense() float64 {
	var sum float64
	for _, tx := range s.Transactions {
		if tx.Type == TransactionExpense {
			sum += tx.Amount
		}
	}
	return sum
}

// Balance is income minus expenses.
func (s AppState) Balance() float64 {
	return s.TotalIncome() - s.TotalExpense()
}

// HabitConsistency is the percentage of streak days accumulated against a
// 30-day horizon per habit. Zero habits yields zero.
func (s AppState) HabitConsistency() float64 {
	if len(s.Habits) == 0 {
		return 0
	}
	total := 0
	for _, h := range s.Habits {
		total += h.Streak
	}
	return float64(total) / float64(len(s.Habits)*30) * 100
}

// LevelProgress is the percentage of points toward the next level threshold.
func (s AppState) LevelProgress() float64 {
	if s.Stats.XPToNextLevel <= 0 {
		return 0
	}
	return float64(s.Stats.Points) / float64(s.Stats.XPToNextLevel) * 100
}
