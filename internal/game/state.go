package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Location is a place an adventurer can be.
type Location string

const (
	LocationStart         Location = "start"
	LocationTown          Location = "town"
	LocationBlacksmith    Location = "blacksmith"
	LocationMysteriousMan Location = "mysterious_man"
	LocationChapel        Location = "chapel"
	LocationQuestGiver    Location = "quest_giver"
	LocationWizard        Location = "wizard"
	LocationForest        Location = "forest"
	LocationCave          Location = "cave"
	LocationTreasure      Location = "treasure"
)

func (l *Location) UnmarshalText(text []byte) error {
	loc := Location(text)
	switch loc {
	case LocationStart, LocationTown, LocationBlacksmith, LocationMysteriousMan,
		LocationChapel, LocationQuestGiver, LocationWizard, LocationForest,
		LocationCave, LocationTreasure:
		*l = loc
		return nil
	default:
		return fmt.Errorf("unknown location: %s", text)
	}
}

type SwordType string

const (
	SwordNone    SwordType = "none"
	SwordRegular SwordType = "regular"
	SwordHoly    SwordType = "holy"
	SwordEvil    SwordType = "evil"
)

func (s *SwordType) UnmarshalText(text []byte) error {
	st := SwordType(text)
	switch st {
	case SwordNone, SwordRegular, SwordHoly, SwordEvil:
		*s = st
		return nil
	default:
		return fmt.Errorf("unknown sword type: %s", text)
	}
}

// GameState is one adventurer's game, keyed by Id. The cache is the only
// system of record for it; nothing holds a copy across requests.
type GameState struct {
	Id                   string    `json:"id"`
	AdventurerName       string    `json:"adventurer_name"`
	CurrentLocation      Location  `json:"current_location"`
	HasSword             bool      `json:"has_sword"`
	SwordType            SwordType `json:"sword_type"`
	QuestAccepted        bool      `json:"quest_accepted"`
	PriestAlive          bool      `json:"priest_alive"`
	BlacksmithBurnedDown bool      `json:"blacksmith_burned_down"`
	FailedSwordAttempts  int       `json:"failed_sword_attempts"`
	HasBox               bool      `json:"has_box"`
	QuestGiversKilled    int       `json:"quest_givers_killed"`

	// LastStateUpdate is epoch milliseconds of the last write. It is a
	// logical clock for the forge scheduler's staleness guard, not
	// wall-clock truth.
	LastStateUpdate int64 `json:"last_state_update"`

	GameActive bool `json:"game_active"`
}

// BlacksmithState tracks the forge for one adventurer. It rides along in
// the same cache entry as the GameState it belongs to.
type BlacksmithState struct {
	Heat           int  `json:"heat"`
	IsHeatingForge bool `json:"is_heating_forge"`
	SwordRequested bool `json:"sword_requested"`
}

// GameId derives a stable game id from an adventurer name. An empty name
// gets a generated id.
func GameId(adventurerName string) string {
	id := strings.ToLower(strings.TrimSpace(adventurerName))
	if id == "" {
		return uuid.NewString()
	}
	return strings.ReplaceAll(id, " ", "_")
}

// NewGameState creates the default state for a first-seen adventurer.
func NewGameState(adventurerName string) (*GameState, *BlacksmithState) {
	return &GameState{
		Id:              GameId(adventurerName),
		AdventurerName:  adventurerName,
		CurrentLocation: LocationStart,
		SwordType:       SwordNone,
		PriestAlive:     true,
		LastStateUpdate: time.Now().UnixMilli(),
		GameActive:      true,
	}, &BlacksmithState{}
}
