package domain

import (
	"fmt"
	"strings"
	"time"
)

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly:
		return true
	default:
		return false
	}
}

func ParseFrequency(input string) (Frequency, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	f := Frequency(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid frequency: %q", input)
	}
	return f, nil
}

// DayKey returns the canonical calendar-day key for a point in time.
// Every "done today" check and the streak counter operate on these keys.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

type Habit struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Frequency     Frequency `json:"frequency"`
	Streak        int       `json:"streak"`
	CompletedDays []string  `json:"completedDays"`
	Category      string    `json:"category"`
}

// DoneOn reports whether the habit was marked done for the given day key.
func (h Habit) DoneOn(day string) bool {
	for _, d := range h.CompletedDays {
		if d == day {
			return true
		}
	}
	return false
}
