package engine

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/nataschneider2001/life-Os/internal/domain"
)

// Outcome describes what a transition did. Changed is false for every
// rejected precondition (empty input, unknown id, unparseable amount,
// unaffordable reward); the returned state is then the input state.
type Outcome struct {
	Changed       bool
	EntityID      string
	PointsAwarded int
	LevelBefore   int
	LevelAfter    int
	LevelUp       bool
	Redeemed      *domain.Reward
}

// Apply is the state-transition function: one intent in, the next snapshot
// out. The input state is never mutated; callers persist the result.
func Apply(state domain.AppState, intent Intent) (domain.AppState, Outcome) {
	switch in := intent.(type) {
	case AddTask:
		return applyAddTask(state, in)
	case ToggleTask:
		return applyToggleTask(state, in)
	case DeleteTask:
		return applyDeleteTask(state, in)
	case AddHabit:
		return applyAddHabit(state, in)
	case ToggleHabitToday:
		return applyToggleHabitToday(state, in)
	case DeleteHabit:
		return applyDeleteHabit(state, in)
	case AddTransaction:
		return applyAddTransaction(state, in)
	case DeleteTransaction:
		return applyDeleteTransaction(state, in)
	case RedeemReward:
		return applyRedeemReward(state, in)
	case UpdateSettings:
		return applyUpdateSettings(state, in)
	default:
		return state, Outcome{}
	}
}

func applyAddTask(state domain.AppState, in AddTask) (domain.AppState, Outcome) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return state, Outcome{}
	}
	priority := in.Priority
	if !priority.IsValid() {
		priority = domain.DefaultPriority
	}

	next := state.Clone()
	task := domain.Task{
		ID:       uuid.NewString(),
		Title:    title,
		Priority: priority,
		Category: in.Category,
		DueDate:  in.DueDate,
	}
	next.Tasks = append(next.Tasks, task)
	return next, Outcome{Changed: true, EntityID: task.ID}
}

func applyToggleTask(state domain.AppState, in ToggleTask) (domain.AppState, Outcome) {
	if state.FindTask(in.ID) == nil {
		return state, Outcome{}
	}

	next := state.Clone()
	task := next.FindTask(in.ID)
	task.Completed = !task.Completed

	out := Outcome{Changed: true, EntityID: in.ID}
	// Completion awards once per flip to true; flipping back never refunds.
	if task.Completed {
		out.PointsAwarded = TaskCompletionPoints
		next.Stats, out.LevelBefore, out.LevelAfter = award(next.Stats, TaskCompletionPoints)
		out.LevelUp = out.LevelAfter > out.LevelBefore
	}
	return next, out
}

func applyDeleteTask(state domain.AppState, in DeleteTask) (domain.AppState, Outcome) {
	if state.FindTask(in.ID) == nil {
		return state, Outcome{}
	}

	next := state.Clone()
	next.Tasks = deleteTaskByID(next.Tasks, in.ID)
	return next, Outcome{Changed: true, EntityID: in.ID}
}

func applyAddHabit(state domain.AppState, in AddHabit) (domain.AppState, Outcome) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return state, Outcome{}
	}
	freq := in.Frequency
	if !freq.IsValid() {
		freq = domain.FrequencyDaily
	}

	next := state.Clone()
	habit := domain.Habit{
		ID:            uuid.NewString(),
		Name:          name,
		Frequency:     freq,
		CompletedDays: []string{},
		Category:      in.Category,
	}
	next.Habits = append(next.Habits, habit)
	return next, Outcome{Changed: true, EntityID: habit.ID}
}

func applyToggleHabitToday(state domain.AppState, in ToggleHabitToday) (domain.AppState, Outcome) {
	if state.FindHabit(in.ID) == nil {
		return state, Outcome{}
	}

	next := state.Clone()
	habit := next.FindHabit(in.ID)
	today := domain.DayKey(in.Now)

	out := Outcome{Changed: true, EntityID: in.ID}
	if habit.DoneOn(today) {
		// Un-marking removes today's key and walks the streak back, floored
		// at zero. The earlier award stays.
		habit.CompletedDays = removeDay(habit.CompletedDays, today)
		if habit.Streak > 0 {
			habit.Streak--
		}
		return next, out
	}

	habit.CompletedDays = append(habit.CompletedDays, today)
	habit.Streak++
	out.PointsAwarded = HabitCompletionPoints
	next.Stats, out.LevelBefore, out.LevelAfter = award(next.Stats, HabitCompletionPoints)
	out.LevelUp = out.LevelAfter > out.LevelBefore
	return next, out
}

func applyDeleteHabit(state domain.AppState, in DeleteHabit) (domain.AppState, Outcome) {
	if state.FindHabit(in.ID) == nil {
		return state, Outcome{}
	}

	next := state.Clone()
	next.Habits = deleteHabitByID(next.Habits, in.ID)
	return next, Outcome{Changed: true, EntityID: in.ID}
}

func applyAddTransaction(state domain.AppState, in AddTransaction) (domain.AppState, Outcome) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return state, Outcome{}
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(in.Amount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return state, Outcome{}
	}
	txType := in.Type
	if !txType.IsValid() {
		return state, Outcome{}
	}

	next := state.Clone()
	tx := domain.Transaction{
		ID:          uuid.NewString(),
		Description: desc,
		Amount:      amount,
		Type:        txType,
		Category:    in.Category,
		Date:        in.Now,
	}
	// Newest first.
	next.Transactions = append([]domain.Transaction{tx}, next.Transactions...)
	return next, Outcome{Changed: true, EntityID: tx.ID}
}

func applyDeleteTransaction(state domain.AppState, in DeleteTransaction) (domain.AppState, Outcome) {
	found := false
	for _, tx := range state.Transactions {
		if tx.ID == in.ID {
			found = true
			break
		}
	}
	if !found {
		return state, Outcome{}
	}

	next := state.Clone()
	next.Transactions = deleteTransactionByID(next.Transactions, in.ID)
	return next, Outcome{Changed: true, EntityID: in.ID}
}

func applyRedeemReward(state domain.AppState, in RedeemReward) (domain.AppState, Outcome) {
	reward := state.FindReward(in.RewardID)
	if reward == nil {
		return state, Outcome{}
	}

	stats, ok := Redeem(state.Stats, *reward)
	if !ok {
		return state, Outcome{}
	}

	next := state.Clone()
	next.Stats = stats
	redeemed := *reward
	return next, Outcome{Changed: true, EntityID: in.RewardID, Redeemed: &redeemed}
}

func applyUpdateSettings(state domain.AppState, in UpdateSettings) (domain.AppState, Outcome) {
	if in.Theme == nil && in.Currency == nil && in.DailyGoalXP == nil {
		return state, Outcome{}
	}
	if in.Theme != nil && !in.Theme.IsValid() {
		return state, Outcome{}
	}
	if in.Currency != nil && strings.TrimSpace(*in.Currency) == "" {
		return state, Outcome{}
	}
	if in.DailyGoalXP != nil && (*in.DailyGoalXP < domain.MinDailyGoalXP || *in.DailyGoalXP > domain.MaxDailyGoalXP) {
		return state, Outcome{}
	}

	next := state.Clone()
	if in.Theme != nil {
		next.Settings.Theme = *in.Theme
	}
	if in.Currency != nil {
		next.Settings.Currency = strings.ToUpper(strings.TrimSpace(*in.Currency))
	}
	if in.DailyGoalXP != nil {
		next.Settings.DailyGoalXP = *in.DailyGoalXP
	}
	return next, Outcome{Changed: true}
}

func award(stats domain.UserStats, amount int) (out domain.UserStats, levelBefore, levelAfter int) {
	levelBefore = stats.Level
	out = AwardPoints(stats, amount)
	return out, levelBefore, out.Level
}

func deleteTaskByID(tasks []domain.Task, id string) []domain.Task {
	out := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

func deleteHabitByID(habits []domain.Habit, id string) []domain.Habit {
	out := habits[:0]
	for _, h := range habits {
		if h.ID != id {
			out = append(out, h)
		}
	}
	return out
}

func deleteTransactionByID(txs []domain.Transaction, id string) []domain.Transaction {
	out := txs[:0]
	for _, tx := range txs {
		if tx.ID != id {
			out = append(out, tx)
		}
	}
	return out
}

func removeDay(days []string, day string) []string {
	out := days[:0]
	for _, d := range days {
		if d != day {
			out = append(out, d)
		}
	}
	return out
}
