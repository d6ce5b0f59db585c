package store

import (
	"encoding/json"
	"fmt"

	"github.com/nataschneider2001/life-Os/internal/domain"
)

// snapshotVersion is written with every save. Payloads from before the tag
// existed report version 0 and run through every migration below.
const snapshotVersion = 1

type snapshotEnvelope struct {
	Version int `json:"version"`
	domain.AppState
}

// migration rewrites a raw snapshot in place to bring it up to the `to`
// schema version. Keeping these as an ordered, named list makes every
// forward-compatibility decision auditable in one place.
type migration struct {
	to    int
	name  string
	apply func(top map[string]json.RawMessage)
}

// No structural rewrites have been needed yet: version 0 payloads (the
// original browser-era snapshots) already decode under the current schema,
// because decodeOverDefaults backfills any missing field. New steps go here
// when a field changes shape rather than just appearing.
var migrations = []migration{}

// mergeSnapshot upgrades a persisted snapshot and layers it over the
// defaults. Top-level entity arrays replace their default wholesale when
// present; stats and settings merge field-by-field, so a snapshot written
// before a field existed keeps the default for just that field.
func mergeSnapshot(payload []byte) (domain.AppState, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(payload, &top); err != nil {
		return domain.DefaultState(), fmt.Errorf("snapshot decode: %w", err)
	}

	version := 0
	if raw, ok := top["version"]; ok {
		_ = json.Unmarshal(raw, &version)
	}
	for _, m := range migrations {
		if version >= m.to {
			continue
		}
		m.apply(top)
		version = m.to
	}

	return decodeOverDefaults(top), nil
}

func decodeOverDefaults(top map[string]json.RawMessage) domain.AppState {
	state := domain.DefaultState()

	if raw, ok := top["tasks"]; ok {
		var tasks []domain.Task
		if err := json.Unmarshal(raw, &tasks); err == nil {
			state.Tasks = tasks
		}
	}
	if raw, ok := top["habits"]; ok {
		var habits []domain.Habit
		if err := json.Unmarshal(raw, &habits); err == nil {
			state.Habits = habits
		}
	}
	if raw, ok := top["transactions"]; ok {
		var txs []domain.Transaction
		if err := json.Unmarshal(raw, &txs); err == nil {
			state.Transactions = txs
		}
	}
	if raw, ok := top["availableRewards"]; ok {
		var rewards []domain.Reward
		if err := json.Unmarshal(raw, &rewards); err == nil {
			state.AvailableRewards = rewards
		}
	}

	// Unmarshalling over the default struct leaves absent fields untouched,
	// which is exactly the shallow sub-merge we want.
	if raw, ok := top["stats"]; ok {
		_ = json.Unmarshal(raw, &state.Stats)
	}
	if raw, ok := top["settings"]; ok {
		_ = json.Unmarshal(raw, &state.Settings)
	}

	return state
}
