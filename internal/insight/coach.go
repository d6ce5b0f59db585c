package insight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nataschneider2001/life-Os/internal/domain"
)

// Analysis selects one of the canned instruction templates.
type Analysis string

const (
	AnalysisGeneral Analysis = "general"
	AnalysisFinance Analysis = "finance"
	AnalysisRoutine Analysis = "routine"
)

func (a Analysis) IsValid() bool {
	switch a {
	case AnalysisGeneral, AnalysisFinance, AnalysisRoutine:
		return true
	default:
		return false
	}
}

func ParseAnalysis(input string) (Analysis, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return AnalysisGeneral, nil
	}
	a := Analysis(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid analysis kind: %q", input)
	}
	return a, nil
}

// Fixed user-presentable texts. Provider failures never escape past these.
const (
	FallbackMessage  = "Sorry, I ran into a problem processing your request. Please try again in a moment."
	NoInsightMessage = "No insights generated right now."
)

const (
	financeInstruction = "Review my recent spending and suggest 3 areas where I can save this month. Be direct and practical."
	routineInstruction = "Based on my habits and pending tasks, suggest an ideal morning routine to maximize my productivity tomorrow."
	generalInstruction = "Give me an overall summary of my performance and motivate me to keep going!"
)

// Coach runs the canned analyses over a state snapshot. It never mutates the
// snapshot and never returns an error: any provider failure degrades to a
// fixed fallback text.
type Coach struct {
	provider Provider
	log      *slog.Logger
}

func NewCoach(provider Provider, log *slog.Logger) *Coach {
	if log == nil {
		log = slog.Default()
	}
	return &Coach{provider: provider, log: log}
}

// Analyze serializes the entity lists relevant to the analysis kind and asks
// the provider for advice.
func (c *Coach) Analyze(ctx context.Context, kind Analysis, state domain.AppState) string {
	payload, instruction := buildRequest(kind, state)

	text, err := c.provider.Generate(ctx, payload, instruction)
	if errors.Is(err, ErrEmptyResponse) {
		return NoInsightMessage
	}
	if err != nil {
		c.log.Warn("insight provider failed", "kind", string(kind), "err", err)
		return FallbackMessage
	}
	return text
}

func buildRequest(kind Analysis, state domain.AppState) (payload string, instruction string) {
	switch kind {
	case AnalysisFinance:
		return marshalPayload(state.Transactions), financeInstruction
	case AnalysisRoutine:
		return marshalPayload(map[string]any{
			"habits": state.Habits,
			"tasks":  state.Tasks,
		}), routineInstruction
	default:
		return marshalPayload(state), generalInstruction
	}
}

func marshalPayload(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
