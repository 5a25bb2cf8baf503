package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// indexKey is the well-known store key the index lives under (namespaced
// by the store like any other entry).
const indexKey = "game_index"

// GameIndex maps game-id to first-seen epoch milliseconds. The backing
// store has no "list all keys" operation, so this one entry is the only
// way to enumerate games for eviction. Timestamps are written once and
// never refreshed: age means "time since first tracked", not "time since
// last touched". The index may reference a since-evicted game until the
// next sweep prunes it.
type GameIndex struct {
	store Store
}

func NewGameIndex(store Store) *GameIndex {
	return &GameIndex{store: store}
}

func (i *GameIndex) Load(ctx context.Context) (map[string]int64, error) {
	data, found, err := i.store.Get(ctx, indexKey)
	if err != nil {
		return nil, fmt.Errorf("loading index: %w", err)
	}
	if !found {
		return map[string]int64{}, nil
	}

	var idx map[string]int64
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("decoding index: %w", err)
	}
	if idx == nil {
		idx = map[string]int64{}
	}

	return idx, nil
}

func (i *GameIndex) Save(ctx context.Context, idx map[string]int64) error {
	data, err := json.Marshal(idx)
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}

	if err := i.store.Set(ctx, indexKey, data); err != nil {
		return fmt.Errorf("saving index: %w", err)
	}

	return nil
}

// RecordIfNew inserts gameId with the current time only if it is absent.
// An existing timestamp is never overwritten; that is what keeps the
// eviction clock anchored to first sight.
func (i *GameIndex) RecordIfNew(ctx context.Context, gameId string) error {
	idx, err := i.Load(ctx)
	if err != nil {
		return err
	}

	if _, ok := idx[gameId]; ok {
		return nil
	}

	idx[gameId] = time.Now().UnixMilli()
	return i.Save(ctx, idx)
}

// Remove drops gameId from the index if present.
func (i *GameIndex) Remove(ctx context.Context, gameId string) error {
	idx, err := i.Load(ctx)
	if err != nil {
		return err
	}

	if _, ok := idx[gameId]; !ok {
		return nil
	}

	delete(idx, gameId)
	return i.Save(ctx, idx)
}

// Sweep evicts every game first seen more than maxAge ago: the game entry
// is deleted from the store and the id dropped from the index. The pruned
// index is persisted only when something changed. Returns the number of
// games evicted.
func (i *GameIndex) Sweep(ctx context.Context, maxAge time.Duration) (int, error) {
	idx, err := i.Load(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UnixMilli()
	evicted := 0
	for id, firstSeen := range idx {
		if now-firstSeen <= maxAge.Milliseconds() {
			continue
		}

		if err := i.store.Delete(ctx, id); err != nil {
			return evicted, fmt.Errorf("evicting %q: %w", id, err)
		}
		delete(idx, id)
		evicted++
	}

	if evicted > 0 {
		if err := i.Save(ctx, idx); err != nil {
			return evicted, err
		}
	}

	return evicted, nil
}
