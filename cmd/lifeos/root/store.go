package root

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/nataschneider2001/life-Os/internal/domain"
	"github.com/nataschneider2001/life-Os/internal/engine"
	"github.com/nataschneider2001/life-Os/internal/insight"
	"github.com/nataschneider2001/life-Os/internal/store"
	"github.com/nataschneider2001/life-Os/internal/ui"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}

func openStore(ctx context.Context) (*store.Store, func(), error) {
	path, err := store.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := store.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return store.New(db, newLogger()), cleanup, nil
}

// transition loads the snapshot, applies one intent and persists the result
// when it changed. The caller renders the outcome.
func transition(ctx context.Context, intent engine.Intent) (domain.AppState, engine.Outcome, error) {
	st, cleanup, err := openStore(ctx)
	if err != nil {
		return domain.AppState{}, engine.Outcome{}, err
	}
	defer cleanup()

	state, err := st.Load(ctx)
	if err != nil {
		return domain.AppState{}, engine.Outcome{}, err
	}

	next, out := engine.Apply(state, intent)
	if out.Changed {
		st.Save(ctx, next)
	}
	return next, out, nil
}

// newCoach builds the Gemini-backed coach, or fails when no key is set.
func newCoach(ctx context.Context) (*insight.Coach, error) {
	provider, err := insight.NewGemini(ctx, insight.Config{
		Model: os.Getenv("LIFEOS_MODEL"),
	})
	if err != nil {
		return nil, fmt.Errorf("insight provider: %w", err)
	}
	return insight.NewCoach(provider, newLogger()), nil
}

func renderProgress(out engine.Outcome) string {
	switch {
	case out.LevelUp:
		return fmt.Sprintf("%s %s (level %d → %d)", ui.Gold.Render(fmt.Sprintf("+%d XP", out.PointsAwarded)), ui.BadgeLevelUp, out.LevelBefore, out.LevelAfter)
	case out.PointsAwarded > 0:
		return ui.Gold.Render(fmt.Sprintf("+%d XP", out.PointsAwarded))
	default:
		return ""
	}
}
