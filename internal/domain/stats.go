package domain

import (
	"fmt"
	"strings"
)

// UserStats tracks the progression currency. Points is the XP accumulated
// within the current level, not a lifetime total.
type UserStats struct {
	Points        int      `json:"points"`
	Level         int      `json:"level"`
	XPToNextLevel int      `json:"xpToNextLevel"`
	Badges        []string `json:"badges"`
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

func ParseTheme(input string) (Theme, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	t := Theme(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid theme: %q", input)
	}
	return t, nil
}

// DailyGoalXP bounds match the range the settings slider exposes.
const (
	MinDailyGoalXP = 100
	MaxDailyGoalXP = 1000
)

type UserSettings struct {
	Theme       Theme  `json:"theme"`
	Currency    string `json:"currency"`
	DailyGoalXP int    `json:"dailyGoalXP"`
}
