package domain

// AppState is the aggregate root and the sole persisted unit. Every mutation
// replaces the aggregate with a fresh snapshot; nothing mutates it in place.
type AppState struct {
	Tasks            []Task        `json:"tasks"`
	Habits           []Habit       `json:"habits"`
	Transactions     []Transaction `json:"transactions"`
	Stats            UserStats     `json:"stats"`
	Settings         UserSettings  `json:"settings"`
	AvailableRewards []Reward      `json:"availableRewards"`
}

// Clone returns a deep copy so transitions can edit freely without touching
// the snapshot the caller still holds.
func (s AppState) Clone() AppState {
	out := s
	out.Tasks = make([]Task, len(s.Tasks))
	copy(out.Tasks, s.Tasks)
	out.Habits = make([]Habit, len(s.Habits))
	for i, h := range s.Habits {
		days := make([]string, len(h.CompletedDays))
		copy(days, h.CompletedDays)
		h.CompletedDays = days
		out.Habits[i] = h
	}
	out.Transactions = make([]Transaction, len(s.Transactions))
	copy(out.Transactions, s.Transactions)
	out.AvailableRewards = make([]Reward, len(s.AvailableRewards))
	copy(out.AvailableRewards, s.AvailableRewards)
	out.Stats.Badges = make([]string, len(s.Stats.Badges))
	copy(out.Stats.Badges, s.Stats.Badges)
	return out
}

// FindTask returns the task with the given id, or nil.
func (s AppState) FindTask(id string) *Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

// FindHabit returns the habit with the given id, or nil.
func (s AppState) FindHabit(id string) *Habit {
	for i := range s.Habits {
		if s.Habits[i].ID == id {
			return &s.Habits[i]
		}
	}
	return nil
}

// FindReward returns the catalog reward with the given id, or nil.
func (s AppState) FindReward(id string) *Reward {
	for i := range s.AvailableRewards {
		if s.AvailableRewards[i].ID == id {
			return &s.AvailableRewards[i]
		}
	}
	return nil
}
