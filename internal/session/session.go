package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pixil98/go-adventure/internal/actions"
	"github.com/pixil98/go-adventure/internal/cache"
	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/forge"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/messaging"
)

const maxNameTries = 3

// Subscriber is the slice of the messaging layer a session uses to
// follow its game's event stream.
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

// Manager runs adventures. Every surface goes through Do, so the cache
// stays the only system of record: each action loads the game, applies
// it, and writes the game back.
type Manager struct {
	handler   *actions.Handler
	games     *cache.GameCache
	scheduler *forge.Scheduler
	events    *messaging.GameEvents
	sub       Subscriber
}

// NewManager wires the session layer. The events publisher and
// subscriber may be nil; sessions then run without the async stream.
func NewManager(games *cache.GameCache, scheduler *forge.Scheduler, events *messaging.GameEvents, sub Subscriber) *Manager {
	return &Manager{
		handler:   actions.NewHandler(),
		games:     games,
		scheduler: scheduler,
		events:    events,
		sub:       sub,
	}
}

// Start blocks until shutdown. Sessions ride on listener connections;
// the manager itself has no background work.
func (m *Manager) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

// loadOrCreate fetches the adventurer's game, materializing defaults for
// a first visit. The new game is not persisted until its first action.
func (m *Manager) loadOrCreate(ctx context.Context, name string) (*game.GameState, *game.BlacksmithState, bool, error) {
	id := game.GameId(name)
	state, blacksmith, found, err := m.games.Get(ctx, id)
	if err != nil {
		return nil, nil, false, err
	}
	if !found {
		state, blacksmith = game.NewGameState(name)
	}
	return state, blacksmith, found, nil
}

// Do applies one named action for one adventurer and persists the
// result. A *actions.UserError return carries the in-game response for
// input the adventure rejects; the game is not written in that case.
func (m *Manager) Do(ctx context.Context, name, action string) (string, error) {
	state, blacksmith, _, err := m.loadOrCreate(ctx, name)
	if err != nil {
		return "", err
	}

	parsed, err := actions.ParseAction(action)
	if err != nil {
		return "", actions.NewUserError("I don't understand that command.")
	}

	return m.apply(ctx, state, blacksmith, parsed)
}

func (m *Manager) apply(ctx context.Context, state *game.GameState, blacksmith *game.BlacksmithState, action actions.Action) (string, error) {
	hadSword := state.HasSword
	wasActive := state.GameActive

	msg, err := m.handler.Apply(state, blacksmith, action)
	if err != nil {
		return "", err
	}

	if err := m.games.Put(ctx, state, blacksmith); err != nil {
		return "", fmt.Errorf("saving game %q: %w", state.Id, err)
	}
	if m.scheduler != nil {
		m.scheduler.Register(state.Id)
	}

	m.announce(state, hadSword, wasActive)

	return msg, nil
}

// announce publishes milestone events for transitions this action
// caused. Publishing is best effort; the action already persisted.
func (m *Manager) announce(state *game.GameState, hadSword, wasActive bool) {
	if m.events == nil {
		return
	}
	if !hadSword && state.HasSword {
		m.events.SwordForged(state.Id)
	}
	if wasActive && !state.GameActive {
		m.events.GameOver(state.Id)
	}
}

// RunSession drives an interactive connection: name prompt, then a
// describe/menu/act loop until the adventure ends or the player quits.
func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	name, err := promptName(conn)
	if err != nil {
		return fmt.Errorf("reading adventurer name: %w", err)
	}

	state, _, returning, err := m.loadOrCreate(ctx, name)
	if err != nil {
		return err
	}
	gameId := state.Id

	conn.Write([]byte(greeting(name, returning)))

	if m.sub != nil {
		// Follow this game's event stream so the player hears about
		// things the background scheduler does, like the forge burning
		// down while they stand in the chapel.
		unsubscribe, err := m.sub.Subscribe(messaging.SubjectFor(gameId, "*"), func(data []byte) {
			var ev messaging.GameEvent
			if json.Unmarshal(data, &ev) != nil || ev.Message == "" {
				return
			}
			conn.Write([]byte(display.Notice(ev.Message)))
		})
		if err == nil {
			defer unsubscribe()
		}
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		state, blacksmith, _, err := m.loadOrCreate(ctx, name)
		if err != nil {
			return err
		}

		if !state.GameActive {
			again, err := PromptYN(conn, "Your adventure has come to an end. Start a new one (Y/N)? ")
			if err != nil {
				return err
			}
			if !again {
				fmt.Fprintf(conn, "Farewell, %s.\n", display.Capitalize(name))
				return nil
			}
			if err := m.games.Delete(ctx, gameId); err != nil {
				return fmt.Errorf("resetting game %q: %w", gameId, err)
			}
			continue
		}

		conn.Write([]byte(display.Wrap(actions.Describe(state.CurrentLocation)) + "\n\n"))

		available := m.handler.Available(state)
		for i, a := range available {
			conn.Write([]byte(display.MenuItem(i+1, actionLabel(a))))
		}

		choice, err := Prompt(conn, "\nWhat do you do? ")
		if err != nil {
			return err
		}

		action, quit := parseChoice(choice, available)
		if quit {
			fmt.Fprintf(conn, "Farewell, %s.\n", display.Capitalize(name))
			return nil
		}
		if action == "" {
			conn.Write([]byte("I don't understand that command.\n\n"))
			continue
		}

		msg, err := m.apply(ctx, state, blacksmith, action)
		var userErr *actions.UserError
		if errors.As(err, &userErr) {
			conn.Write([]byte(userErr.Message + "\n\n"))
			continue
		}
		if err != nil {
			return err
		}

		conn.Write([]byte(display.Wrap(msg) + "\n\n"))
	}
}

func promptName(conn io.ReadWriter) (string, error) {
	return Prompt(conn, "By what name shall your deeds be remembered? ",
		WithMaxTries(maxNameTries),
		WithValidator(func(str string) (bool, string) {
			if strings.TrimSpace(str) == "" {
				return false, "A nameless adventurer? Try again.\n"
			}
			for _, r := range str {
				if !unicode.IsLetter(r) && r != ' ' {
					return false, "Letters only, please.\n"
				}
			}
			return true, ""
		}))
}

// parseChoice maps player input to an action: a menu number, the action
// name itself, or a quit word.
func parseChoice(input string, available []actions.Action) (actions.Action, bool) {
	input = strings.TrimSpace(strings.ToLower(input))

	switch input {
	case "quit", "exit", "q":
		return "", true
	}

	if i, err := strconv.Atoi(input); err == nil {
		if i >= 1 && i <= len(available) {
			return available[i-1], false
		}
		return "", false
	}

	name := strings.ReplaceAll(input, " ", "_")
	for _, a := range available {
		if string(a) == name {
			return a, false
		}
	}
	return "", false
}

// actionLabel renders an action name for a menu line.
func actionLabel(a actions.Action) string {
	return display.Capitalize(strings.ReplaceAll(string(a), "_", " "))
}
