package insight

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nataschneider2001/life-Os/internal/domain"
)

type fakeProvider struct {
	text    string
	err     error
	payload string
	instr   string
	calls   int
}

func (f *fakeProvider) Generate(ctx context.Context, payload string, instruction string) (string, error) {
	f.calls++
	f.payload = payload
	f.instr = instruction
	return f.text, f.err
}

func TestAnalyzeReturnsProviderText(t *testing.T) {
	p := &fakeProvider{text: "Spend less on coffee."}
	c := NewCoach(p, nil)

	got := c.Analyze(context.Background(), AnalysisFinance, domain.DefaultState())

	assert.Equal(t, "Spend less on coffee.", got)
	assert.Equal(t, 1, p.calls)
}

func TestAnalyzeFallsBackOnError(t *testing.T) {
	p := &fakeProvider{err: errors.New("transport: connection refused")}
	c := NewCoach(p, nil)

	for _, kind := range []Analysis{AnalysisGeneral, AnalysisFinance, AnalysisRoutine} {
		got := c.Analyze(context.Background(), kind, domain.DefaultState())
		assert.Equal(t, FallbackMessage, got, "kind %s", kind)
	}
}

func TestAnalyzeEmptyResponse(t *testing.T) {
	p := &fakeProvider{err: ErrEmptyResponse}
	c := NewCoach(p, nil)

	got := c.Analyze(context.Background(), AnalysisGeneral, domain.DefaultState())

	assert.Equal(t, NoInsightMessage, got)
}

func TestAnalyzeFinancePayloadIsTransactions(t *testing.T) {
	state := domain.DefaultState()
	state.Transactions = []domain.Transaction{{
		ID:          "tx1",
		Description: "Groceries",
		Amount:      230,
		Type:        domain.TransactionExpense,
		Date:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}}

	p := &fakeProvider{text: "ok"}
	c := NewCoach(p, nil)
	c.Analyze(context.Background(), AnalysisFinance, state)

	assert.Contains(t, p.payload, "Groceries")
	assert.NotContains(t, p.payload, "availableRewards")
	assert.Contains(t, p.instr, "save this month")
}

func TestAnalyzeRoutinePayloadHasHabitsAndTasks(t *testing.T) {
	state := domain.DefaultState()
	state.Habits = []domain.Habit{{ID: "h1", Name: "Stretch", Frequency: domain.FrequencyDaily, CompletedDays: []string{}}}
	state.Tasks = []domain.Task{{ID: "t1", Title: "Plan sprint", Priority: domain.PriorityHigh}}

	p := &fakeProvider{text: "ok"}
	c := NewCoach(p, nil)
	c.Analyze(context.Background(), AnalysisRoutine, state)

	assert.Contains(t, p.payload, "Stretch")
	assert.Contains(t, p.payload, "Plan sprint")
	assert.Contains(t, p.instr, "morning routine")
}

func TestAnalyzeGeneralPayloadIsFullState(t *testing.T) {
	p := &fakeProvider{text: "ok"}
	c := NewCoach(p, nil)
	c.Analyze(context.Background(), AnalysisGeneral, domain.DefaultState())

	assert.Contains(t, p.payload, "availableRewards")
	assert.Contains(t, p.payload, "settings")
}

func TestParseAnalysis(t *testing.T) {
	got, err := ParseAnalysis("")
	require.NoError(t, err)
	assert.Equal(t, AnalysisGeneral, got)

	got, err = ParseAnalysis(" Finance ")
	require.NoError(t, err)
	assert.Equal(t, AnalysisFinance, got)

	_, err = ParseAnalysis("horoscope")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "horoscope"))
}
