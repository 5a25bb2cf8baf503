package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-testutil"
)

func newTestCache(t *testing.T) *GameCache {
	t.Helper()
	store, _ := newTestStore(t, "main")
	return NewGameCache(store, DefaultMaxGameAge)
}

func TestGameCache_GetMiss(t *testing.T) {
	c := newTestCache(t)

	state, blacksmith, found, err := c.Get(context.Background(), "arthur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "found", found, false)
	if state != nil || blacksmith != nil {
		t.Error("miss must not fabricate state")
	}
}

func TestGameCache_PutGetRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	state, blacksmith := game.NewGameState("Arthur")
	state.CurrentLocation = game.LocationBlacksmith
	state.HasSword = true
	state.SwordType = game.SwordRegular
	blacksmith.Heat = 12
	blacksmith.IsHeatingForge = true
	before := state.LastStateUpdate

	time.Sleep(2 * time.Millisecond)
	if err := c.Put(ctx, state, blacksmith); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, gotBlacksmith, found, err := c.Get(ctx, "arthur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "found", found, true)
	testutil.AssertEqual(t, "id", got.Id, "arthur")
	testutil.AssertEqual(t, "location", got.CurrentLocation, game.LocationBlacksmith)
	testutil.AssertEqual(t, "sword type", got.SwordType, game.SwordRegular)
	testutil.AssertEqual(t, "heat", gotBlacksmith.Heat, 12)
	testutil.AssertEqual(t, "heating", gotBlacksmith.IsHeatingForge, true)

	// Everything round-trips except last_state_update, which Put stamps.
	if got.LastStateUpdate <= before {
		t.Errorf("last_state_update not stamped: before=%d after=%d", before, got.LastStateUpdate)
	}
}

func TestGameCache_PutRequiresId(t *testing.T) {
	c := newTestCache(t)

	err := c.Put(context.Background(), &game.GameState{AdventurerName: "Arthur"}, nil)
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}

	err = c.Put(context.Background(), nil, nil)
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
}

func TestGameCache_PutRecordsIndexOnce(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	state, blacksmith := game.NewGameState("Arthur")
	if err := c.Put(ctx, state, blacksmith); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	idx, err := c.Index().Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := idx["arthur"]
	if first == 0 {
		t.Fatal("expected index entry after put")
	}

	time.Sleep(5 * time.Millisecond)
	if err := c.Put(ctx, state, blacksmith); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	idx, err = c.Index().Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "first-seen preserved across writes", idx["arthur"], first)
}

func TestGameCache_PutSweepsExpiredGames(t *testing.T) {
	store, _ := newTestStore(t, "main")
	c := NewGameCache(store, 3*time.Hour)
	ctx := context.Background()

	// An old game, planted directly with an expired first-seen stamp.
	old, oldBlacksmith := game.NewGameState("Mordred")
	if err := c.Put(ctx, old, oldBlacksmith); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx, _ := c.Index().Load(ctx)
	idx["mordred"] = time.Now().Add(-4 * time.Hour).UnixMilli()
	if err := c.Index().Save(ctx, idx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A fresh write triggers the sweep.
	state, blacksmith := game.NewGameState("Arthur")
	if err := c.Put(ctx, state, blacksmith); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, found, err := c.Get(ctx, "mordred")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "expired game present", found, false)

	_, _, found, err = c.Get(ctx, "arthur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "fresh game present", found, true)
}

func TestGameCache_Delete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	state, blacksmith := game.NewGameState("Arthur")
	if err := c.Put(ctx, state, blacksmith); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Delete(ctx, "arthur"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, found, err := c.Get(ctx, "arthur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "found after delete", found, false)

	idx, err := c.Index().Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, inIndex := idx["arthur"]
	testutil.AssertEqual(t, "index entry after delete", inIndex, false)
}

func TestGameCache_Status(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	for _, name := range []string{"Arthur", "Morgana"} {
		state, blacksmith := game.NewGameState(name)
		if err := c.Put(ctx, state, blacksmith); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	status, err := c.Status(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "count", status.Count, 2)
	testutil.AssertEqual(t, "games", len(status.Games), 2)
	testutil.AssertEqual(t, "arthur location", status.Games["arthur"].Location, game.LocationStart)
	if _, ok := status.Index["morgana"]; !ok {
		t.Error("expected morgana in raw index")
	}
}

func TestGameCache_MigratesPreSchemaRecord(t *testing.T) {
	tests := map[string]struct {
		stored       string
		expSword     game.SwordType
		expHasSword  bool
		expActive    bool
	}{
		"holy sword booleans": {
			stored:      `{"adventurer_name":"Arthur","current_location":"town","has_sword":false,"has_holy_sword":true}`,
			expSword:    game.SwordHoly,
			expHasSword: true,
			expActive:   true,
		},
		"evil sword booleans": {
			stored:      `{"adventurer_name":"Arthur","current_location":"town","has_evil_sword":true}`,
			expSword:    game.SwordEvil,
			expHasSword: true,
			expActive:   true,
		},
		"plain sword": {
			stored:      `{"adventurer_name":"Arthur","current_location":"town","has_sword":true}`,
			expSword:    game.SwordRegular,
			expHasSword: true,
			expActive:   true,
		},
		"no sword at all": {
			stored:      `{"adventurer_name":"Arthur","current_location":"town"}`,
			expSword:    game.SwordNone,
			expHasSword: false,
			expActive:   true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store, _ := newTestStore(t, "main")
			c := NewGameCache(store, DefaultMaxGameAge)
			ctx := context.Background()

			if err := store.Set(ctx, "arthur", []byte(tt.stored)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			state, _, found, err := c.Get(ctx, "arthur")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "found", found, true)
			testutil.AssertEqual(t, "migrated id", state.Id, "arthur")
			testutil.AssertEqual(t, "sword type", state.SwordType, tt.expSword)
			testutil.AssertEqual(t, "has sword", state.HasSword, tt.expHasSword)
			testutil.AssertEqual(t, "game active", state.GameActive, tt.expActive)
			testutil.AssertEqual(t, "priest alive", state.PriestAlive, true)
		})
	}
}

func TestGameCache_UnparseableRecordReadsAsMiss(t *testing.T) {
	store, _ := newTestStore(t, "main")
	c := NewGameCache(store, DefaultMaxGameAge)
	ctx := context.Background()

	if err := store.Set(ctx, "arthur", []byte("not json at all")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, found, err := c.Get(ctx, "arthur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "found", found, false)
}
