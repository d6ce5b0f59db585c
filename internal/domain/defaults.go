package domain

// Starter catalog; redemption never depletes it.
func DefaultRewards() []Reward {
	return []Reward{
		{ID: "1", Title: "1-Hour Break", Cost: 500, Description: "Redeem to earn a guilt-free break.", Icon: "coffee"},
		{ID: "2", Title: "Special Dinner", Cost: 2000, Description: "You earned an amazing meal for your discipline.", Icon: "utensils"},
		{ID: "3", Title: "New Game/Gadget", Cost: 5000, Description: "Invest in your leisure after hitting big goals.", Icon: "gamepad"},
	}
}

func DefaultStats() UserStats {
	return UserStats{
		Points:        1250,
		Level:         5,
		XPToNextLevel: 2500,
		Badges:        []string{"Early Bird", "Finance Master", "7-Day Streak"},
	}
}

func DefaultSettings() UserSettings {
	return UserSettings{
		Theme:       ThemeLight,
		Currency:    "BRL",
		DailyGoalXP: 500,
	}
}

// DefaultState is the built-in first-run aggregate. Persisted snapshots are
// merged over it field-by-field, so fields introduced after a snapshot was
// written fall back to these values.
func DefaultState() AppState {
	return AppState{
		Tasks:            []Task{},
		Habits:           []Habit{},
		Transactions:     []Transaction{},
		Stats:            DefaultStats(),
		Settings:         DefaultSettings(),
		AvailableRewards: DefaultRewards(),
	}
}
