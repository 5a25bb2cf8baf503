package messaging

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event names carried on the per-game subjects.
const (
	EventSwordForged          = "sword_forged"
	EventBlacksmithBurnedDown = "blacksmith_burned_down"
	EventGameOver             = "game_over"
)

// Publisher is the piece of NatsServer the event layer uses.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// GameEvent is the wire payload for every game event.
type GameEvent struct {
	GameId  string `json:"game_id"`
	Event   string `json:"event"`
	Message string `json:"message,omitempty"`
	At      int64  `json:"at"`
}

// GameEvents publishes game milestones to per-game NATS subjects of the
// form "adventure.<game_id>.<event>". Consumers subscribe with a
// wildcard ("adventure.<game_id>.>") to follow one adventurer.
type GameEvents struct {
	pub Publisher
}

func NewGameEvents(pub Publisher) *GameEvents {
	return &GameEvents{pub: pub}
}

// SubjectFor builds the subject for one game's event stream.
func SubjectFor(gameId, event string) string {
	return fmt.Sprintf("adventure.%s.%s", gameId, event)
}

func (g *GameEvents) publish(gameId, event, message string) error {
	data, err := json.Marshal(GameEvent{
		GameId:  gameId,
		Event:   event,
		Message: message,
		At:      time.Now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", event, err)
	}
	return g.pub.Publish(SubjectFor(gameId, event), data)
}

// SwordForged announces a finished sword.
func (g *GameEvents) SwordForged(gameId string) error {
	return g.publish(gameId, EventSwordForged, "The sword is ready.")
}

// BlacksmithBurnedDown announces the forge catastrophe. The forge
// scheduler fires this when an unattended forge crosses the threshold,
// so a connected player hears about it without taking an action.
func (g *GameEvents) BlacksmithBurnedDown(gameId string) error {
	return g.publish(gameId, EventBlacksmithBurnedDown, "The blacksmith's shop burns down.")
}

// GameOver announces a finished adventure, win or lose.
func (g *GameEvents) GameOver(gameId string) error {
	return g.publish(gameId, EventGameOver, "The adventure has come to an end.")
}
