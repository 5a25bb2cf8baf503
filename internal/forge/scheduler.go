package forge

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-adventure/internal/actions"
	"github.com/pixil98/go-adventure/internal/cache"
)

const (
	DefaultTickInterval = time.Second

	// DefaultStalenessWindow is how fresh a record must be for the
	// scheduler to leave it alone. A write newer than this means a player
	// action just went through; ticking on top of it would race the
	// interactive path.
	DefaultStalenessWindow = time.Second

	// DefaultTrackTTL is how long a registered game stays tracked without
	// being re-registered. It matches the cache's eviction horizon.
	DefaultTrackTTL = cache.DefaultMaxGameAge
)

// HeatPerTick is the passive heat gain of a burning forge per tick,
// distinct from a player stoking it.
const HeatPerTick = 1

// Publisher is the slice of the messaging layer the scheduler needs.
type Publisher interface {
	BlacksmithBurnedDown(gameId string) error
}

// Scheduler advances every tracked burning forge once per tick. It is
// the only writer of game state outside a player action, and the
// staleness window keeps it from clobbering writes that just happened.
type Scheduler struct {
	id    string
	games *cache.GameCache
	pub   Publisher

	tickInterval    time.Duration
	stalenessWindow time.Duration
	trackTTL        time.Duration

	mu      sync.Mutex
	tracked map[string]time.Time
}

func NewScheduler(games *cache.GameCache, pub Publisher, opts ...SchedulerOpt) *Scheduler {
	s := &Scheduler{
		id:              uuid.NewString(),
		games:           games,
		pub:             pub,
		tickInterval:    DefaultTickInterval,
		stalenessWindow: DefaultStalenessWindow,
		trackTTL:        DefaultTrackTTL,
		tracked:         map[string]time.Time{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Register marks a game as live so the scheduler visits it on each tick.
// Surfaces call this on every player interaction; re-registering just
// refreshes the tracking deadline.
func (s *Scheduler) Register(gameId string) {
	if gameId == "" {
		return
	}
	s.mu.Lock()
	s.tracked[gameId] = time.Now().Add(s.trackTTL)
	s.mu.Unlock()
}

// Untrack drops a game from the tick loop. The cache entry is untouched.
func (s *Scheduler) Untrack(gameId string) {
	s.mu.Lock()
	delete(s.tracked, gameId)
	s.mu.Unlock()
}

func (s *Scheduler) Start(ctx context.Context) error {
	slog.InfoContext(ctx, "forge scheduler starting",
		"scheduler_id", s.id,
		"tick_interval", s.tickInterval)

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick visits every tracked game once. Per-game failures are logged and
// skipped; one bad record never stalls the rest.
func (s *Scheduler) Tick(ctx context.Context) {
	for _, gameId := range s.liveGames() {
		if err := s.tickGame(ctx, gameId); err != nil {
			slog.WarnContext(ctx, "forge tick failed",
				"scheduler_id", s.id,
				"game_id", gameId,
				"error", err)
		}
	}
}

// liveGames snapshots the tracked set, pruning entries whose tracking
// deadline passed.
func (s *Scheduler) liveGames() []string {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.tracked))
	for id, deadline := range s.tracked {
		if now.After(deadline) {
			delete(s.tracked, id)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func (s *Scheduler) tickGame(ctx context.Context, gameId string) error {
	state, blacksmith, found, err := s.games.Get(ctx, gameId)
	if err != nil {
		return err
	}
	if !found {
		// Evicted or deleted since registration.
		s.Untrack(gameId)
		return nil
	}

	// A record this fresh was just written by a player action; skip the
	// tick rather than race it. There is no lock, so an interleaved write
	// can still win and cost a degree of heat.
	if time.Since(time.UnixMilli(state.LastStateUpdate)) < s.stalenessWindow {
		return nil
	}

	if !state.GameActive || state.BlacksmithBurnedDown || !blacksmith.IsHeatingForge {
		return nil
	}

	blacksmith.Heat += HeatPerTick

	if blacksmith.Heat >= actions.BurnDownHeat {
		actions.ApplyBurnDown(state, blacksmith)
		slog.InfoContext(ctx, "forge burned down",
			"scheduler_id", s.id,
			"game_id", gameId,
			"adventurer", state.AdventurerName)
		if s.pub != nil {
			if err := s.pub.BlacksmithBurnedDown(gameId); err != nil {
				slog.WarnContext(ctx, "publishing burn down event failed",
					"game_id", gameId,
					"error", err)
			}
		}
	}

	return s.games.Put(ctx, state, blacksmith)
}
