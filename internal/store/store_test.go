package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/nataschneider2001/life-Os/internal/domain"
)

func newTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return New(db, nil), db
}

func seedSnapshot(t *testing.T, db *sql.DB, payload string) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO snapshot (key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload
	`, SnapshotKey, payload, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}
}

func TestLoadFirstRunReturnsDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	state, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got, want := state.Stats.Points, 1250; got != want {
		t.Fatalf("points=%d, want %d", got, want)
	}
	if got, want := state.Stats.Level, 5; got != want {
		t.Fatalf("level=%d, want %d", got, want)
	}
	if len(state.AvailableRewards) != 3 {
		t.Fatalf("rewards=%d, want 3", len(state.AvailableRewards))
	}
	if len(state.Tasks) != 0 || len(state.Habits) != 0 || len(state.Transactions) != 0 {
		t.Fatalf("expected empty entity lists on first run")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	state := domain.DefaultState()
	state.Tasks = append(state.Tasks, domain.Task{ID: "t1", Title: "Ship release", Priority: domain.PriorityHigh})
	state.Stats.Points = 42
	s.Save(ctx, state)

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Tasks) != 1 || got.Tasks[0].Title != "Ship release" {
		t.Fatalf("tasks did not round-trip: %+v", got.Tasks)
	}
	if got.Stats.Points != 42 {
		t.Fatalf("points=%d, want 42", got.Stats.Points)
	}
}

func TestSaveOverwritesPriorSnapshot(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first := domain.DefaultState()
	first.Stats.Points = 1
	s.Save(ctx, first)

	second := domain.DefaultState()
	second.Stats.Points = 2
	s.Save(ctx, second)

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Stats.Points != 2 {
		t.Fatalf("points=%d, want 2", got.Stats.Points)
	}
}

func TestLoadMergesPartialSettings(t *testing.T) {
	s, db := newTestStore(t)
	seedSnapshot(t, db, `{"settings":{"theme":"dark"}}`)

	state, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if state.Settings.Theme != domain.ThemeDark {
		t.Fatalf("theme=%q, want dark", state.Settings.Theme)
	}
	if state.Settings.Currency != "BRL" {
		t.Fatalf("currency=%q, want default BRL", state.Settings.Currency)
	}
	if state.Settings.DailyGoalXP != 500 {
		t.Fatalf("dailyGoalXP=%d, want default 500", state.Settings.DailyGoalXP)
	}
}

func TestLoadMergesPartialStats(t *testing.T) {
	s, db := newTestStore(t)
	seedSnapshot(t, db, `{"stats":{"points":90,"level":2}}`)

	state, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if state.Stats.Points != 90 || state.Stats.Level != 2 {
		t.Fatalf("stats=%+v, want points=90 level=2", state.Stats)
	}
	// Fields the old snapshot never wrote keep their defaults.
	if state.Stats.XPToNextLevel != 2500 {
		t.Fatalf("xpToNextLevel=%d, want default 2500", state.Stats.XPToNextLevel)
	}
	if len(state.Stats.Badges) != 3 {
		t.Fatalf("badges=%v, want 3 defaults", state.Stats.Badges)
	}
}

func TestLoadArraysReplaceDefaultsWholesale(t *testing.T) {
	s, db := newTestStore(t)
	seedSnapshot(t, db, `{"availableRewards":[{"id":"x","title":"Custom","cost":10,"description":"","icon":"star"}]}`)

	state, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(state.AvailableRewards) != 1 || state.AvailableRewards[0].ID != "x" {
		t.Fatalf("rewards=%+v, want the persisted catalog only", state.AvailableRewards)
	}
}

func TestSaveWritesVersionTag(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	s.Save(ctx, domain.DefaultState())

	var payload string
	if err := db.QueryRow(`SELECT payload FROM snapshot WHERE key = ?`, SnapshotKey).Scan(&payload); err != nil {
		t.Fatalf("read payload: %v", err)
	}
	var top map[string]any
	if err := json.Unmarshal([]byte(payload), &top); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if got, ok := top["version"].(float64); !ok || int(got) != 1 {
		t.Fatalf("version=%v, want 1", top["version"])
	}
}

func TestLoadUntaggedSnapshot(t *testing.T) {
	// Browser-era payloads carry no version tag; they must still load.
	s, db := newTestStore(t)
	seedSnapshot(t, db, `{"tasks":[{"id":"t1","title":"old","completed":true,"priority":"low","category":""}]}`)

	state, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(state.Tasks) != 1 || !state.Tasks[0].Completed {
		t.Fatalf("tasks=%+v, want the untagged task", state.Tasks)
	}
}

func TestLoadCorruptSnapshotFallsBackToDefaults(t *testing.T) {
	s, db := newTestStore(t)
	seedSnapshot(t, db, `{not json`)

	state, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state.Stats.Points != 1250 {
		t.Fatalf("expected defaults after corrupt snapshot, got %+v", state.Stats)
	}
}

func TestSaveAfterCloseIsSwallowed(t *testing.T) {
	s, db := newTestStore(t)
	_ = db.Close()

	// Must not panic or surface the failure.
	s.Save(context.Background(), domain.DefaultState())
}
