package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/pixil98/go-adventure/internal/game"
)

const DefaultMaxGameAge = 3 * time.Hour

// gameRecord is the stored shape: all GameState fields at the top level
// with the blacksmith state nested beside them.
type gameRecord struct {
	game.GameState
	Blacksmith *game.BlacksmithState `json:"blacksmith_state,omitempty"`
}

// GameCache composes the key/value store with the first-seen index. Every
// Put records the game's first-seen time (once) and triggers an eviction
// sweep, so eviction cadence follows write traffic.
type GameCache struct {
	store      Store
	index      *GameIndex
	maxGameAge time.Duration
}

func NewGameCache(store Store, maxGameAge time.Duration) *GameCache {
	if maxGameAge <= 0 {
		maxGameAge = DefaultMaxGameAge
	}
	return &GameCache{
		store:      store,
		index:      NewGameIndex(store),
		maxGameAge: maxGameAge,
	}
}

// Index exposes the underlying first-seen index for diagnostics and tests.
func (c *GameCache) Index() *GameIndex {
	return c.index
}

// Get loads a game by id. A missing entry is (nil, nil, false, nil); the
// caller materializes defaults, the cache never fabricates them.
func (c *GameCache) Get(ctx context.Context, gameId string) (*game.GameState, *game.BlacksmithState, bool, error) {
	data, found, err := c.store.Get(ctx, gameId)
	if err != nil {
		return nil, nil, false, err
	}
	if !found {
		return nil, nil, false, nil
	}

	rec, ok := decodeRecord(ctx, gameId, data)
	if !ok {
		return nil, nil, false, nil
	}

	blacksmith := rec.Blacksmith
	if blacksmith == nil {
		blacksmith = &game.BlacksmithState{}
	}

	state := rec.GameState
	return &state, blacksmith, true, nil
}

// Put stamps last_state_update, writes the record through the store, then
// records the game in the index (first write only) and sweeps expired
// games. A nil blacksmith state is stored as defaults.
func (c *GameCache) Put(ctx context.Context, state *game.GameState, blacksmith *game.BlacksmithState) error {
	if state == nil || state.Id == "" {
		return fmt.Errorf("%w: missing game id", ErrInvalidState)
	}

	state.LastStateUpdate = time.Now().UnixMilli()

	if blacksmith == nil {
		blacksmith = &game.BlacksmithState{}
	}

	rec := gameRecord{
		GameState:  *state,
		Blacksmith: blacksmith,
	}
	data, err := json.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("encoding game %q: %w", state.Id, err)
	}

	if err := c.store.Set(ctx, state.Id, data); err != nil {
		return err
	}

	if err := c.index.RecordIfNew(ctx, state.Id); err != nil {
		return fmt.Errorf("indexing game %q: %w", state.Id, err)
	}

	// Eviction is best effort; a failed sweep never fails the write that
	// triggered it.
	if _, err := c.index.Sweep(ctx, c.maxGameAge); err != nil {
		slog.WarnContext(ctx, "eviction sweep failed", "error", err)
	}

	return nil
}

// Delete removes a game and its index entry.
func (c *GameCache) Delete(ctx context.Context, gameId string) error {
	if err := c.store.Delete(ctx, gameId); err != nil {
		return err
	}
	return c.index.Remove(ctx, gameId)
}

// GameSummary is the coarse per-game view returned by Status.
type GameSummary struct {
	AdventurerName string        `json:"adventurer_name"`
	Location       game.Location `json:"location"`
	SwordType      game.SwordType `json:"sword_type"`
	Heat           int           `json:"heat"`
	GameActive     bool          `json:"game_active"`
	LastUpdateMs   int64         `json:"last_state_update"`
}

// CacheStatus is an operational snapshot. It is never consulted by
// gameplay logic.
type CacheStatus struct {
	Count int                    `json:"count"`
	Games map[string]GameSummary `json:"games"`
	Index map[string]int64       `json:"index"`
}

func (c *GameCache) Status(ctx context.Context) (*CacheStatus, error) {
	idx, err := c.index.Load(ctx)
	if err != nil {
		return nil, err
	}

	status := &CacheStatus{
		Count: len(idx),
		Games: make(map[string]GameSummary, len(idx)),
		Index: idx,
	}

	for id := range idx {
		state, blacksmith, found, err := c.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if !found {
			// Stale index entry; the next sweep will prune it.
			continue
		}
		status.Games[id] = GameSummary{
			AdventurerName: state.AdventurerName,
			Location:       state.CurrentLocation,
			SwordType:      state.SwordType,
			Heat:           blacksmith.Heat,
			GameActive:     state.GameActive,
			LastUpdateMs:   state.LastStateUpdate,
		}
	}

	return status, nil
}

// decodeRecord parses stored bytes, falling back to a best-effort
// migration of pre-schema records. Anything still unreadable is treated
// as a miss rather than an error.
func decodeRecord(ctx context.Context, gameId string, data []byte) (*gameRecord, bool) {
	var rec gameRecord
	if err := json.Unmarshal(data, &rec); err == nil && rec.Id != "" {
		return &rec, true
	}

	rec, ok := migrateRecord(gameId, data)
	if !ok {
		slog.WarnContext(ctx, "unreadable game record treated as missing", "game_id", gameId)
		return nil, false
	}

	slog.InfoContext(ctx, "migrated pre-schema game record", "game_id", gameId)
	return &rec, true
}

// migrateRecord recovers records written before the current schema:
// entries keyed by adventurer name with no id, sword ownership spread
// across has_sword/has_holy_sword/has_evil_sword booleans, and no
// game_active flag.
func migrateRecord(gameId string, data []byte) (gameRecord, bool) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return gameRecord{}, false
	}

	var rec gameRecord
	// Decode the fields that kept their names; unknown fields fall away.
	if err := json.Unmarshal(data, &rec); err != nil {
		return gameRecord{}, false
	}

	if rec.Id == "" {
		if rec.AdventurerName != "" {
			rec.Id = game.GameId(rec.AdventurerName)
		} else {
			rec.Id = gameId
		}
	}
	if rec.Id == "" {
		return gameRecord{}, false
	}

	if rec.SwordType == "" {
		rec.SwordType = game.SwordNone
		if boolField(raw, "has_holy_sword") {
			rec.SwordType = game.SwordHoly
			rec.HasSword = true
		} else if boolField(raw, "has_evil_sword") {
			rec.SwordType = game.SwordEvil
			rec.HasSword = true
		} else if rec.HasSword {
			rec.SwordType = game.SwordRegular
		}
	}

	if _, ok := raw["game_active"]; !ok {
		rec.GameActive = true
	}
	if _, ok := raw["priest_alive"]; !ok {
		rec.PriestAlive = true
	}

	if rec.CurrentLocation == "" {
		rec.CurrentLocation = game.LocationStart
	}

	return rec, true
}

func boolField(raw map[string]json.RawMessage, name string) bool {
	v, ok := raw[name]
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(v, &b); err != nil {
		return false
	}
	return b
}
