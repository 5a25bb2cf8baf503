package actions

import (
	"github.com/pixil98/go-adventure/internal/game"
)

// HandlerFunc applies one action to the given states and returns the
// message shown to the player. Handlers mutate the states they are
// handed and nothing else.
type HandlerFunc func(state *game.GameState, blacksmith *game.BlacksmithState) string

const msgDontUnderstand = "I don't understand that command."
const msgAdventureOver = "Your adventure has come to an end. There is nothing left to do."

// moves is the location transition table. Every entry is available
// unconditionally from its source location.
var moves = map[game.Location]map[Action]game.Location{
	game.LocationStart: {
		ActionGoToTown:   game.LocationTown,
		ActionGoToForest: game.LocationForest,
	},
	game.LocationTown: {
		ActionBlacksmith:    game.LocationBlacksmith,
		ActionMysteriousMan: game.LocationMysteriousMan,
		ActionChapel:        game.LocationChapel,
		ActionQuestGiver:    game.LocationQuestGiver,
		ActionWizard:        game.LocationWizard,
	},
	game.LocationBlacksmith:    {ActionGoToTown: game.LocationTown},
	game.LocationMysteriousMan: {ActionGoToTown: game.LocationTown},
	game.LocationChapel:        {ActionGoToTown: game.LocationTown},
	game.LocationQuestGiver:    {ActionGoToTown: game.LocationTown},
	game.LocationWizard:        {ActionGoToTown: game.LocationTown},
	game.LocationForest: {
		ActionGoBack: game.LocationStart,
		ActionGoEast: game.LocationCave,
	},
	game.LocationCave: {
		ActionGoBack:         game.LocationForest,
		ActionGoTowardsLight: game.LocationTreasure,
	},
	game.LocationTreasure: {
		ActionExitCave: game.LocationStart,
	},
}

// Handler is the pure state machine: a Location x Action dispatch table
// built once at construction. Apply has no side effects beyond the
// states passed in.
type Handler struct {
	handlers map[game.Location]map[Action]HandlerFunc

	// menu preserves a stable presentation order per location for the
	// interactive surfaces.
	menu map[game.Location][]Action
}

func NewHandler() *Handler {
	h := &Handler{
		handlers: map[game.Location]map[Action]HandlerFunc{},
		menu: map[game.Location][]Action{
			game.LocationStart:         {ActionGoToTown, ActionGoToForest},
			game.LocationTown:          {ActionBlacksmith, ActionMysteriousMan, ActionQuestGiver, ActionChapel, ActionWizard},
			game.LocationBlacksmith:    {ActionRequestSword, ActionHeatForge, ActionCoolForge, ActionCheckSword, ActionGoToTown},
			game.LocationMysteriousMan: {ActionAcceptOffer, ActionDeclineOffer, ActionGoToTown},
			game.LocationChapel:        {ActionLookAtSword, ActionPray, ActionGoToTown},
			game.LocationQuestGiver:    {ActionAcceptQuest, ActionCheckProgress, ActionOfferSword, ActionResurrectQuestGiver, ActionGoToTown},
			game.LocationWizard:        {ActionKillWizard, ActionTalkToWizard, ActionCheat, ActionGoToTown},
			game.LocationForest:        {ActionGoBack, ActionGoEast},
			game.LocationCave:          {ActionGoBack, ActionGoTowardsLight},
			game.LocationTreasure:      {ActionTakeBox, ActionExitCave},
		},
	}

	h.register(game.LocationBlacksmith, ActionRequestSword, handleRequestSword)
	h.register(game.LocationBlacksmith, ActionHeatForge, handleHeatForge)
	h.register(game.LocationBlacksmith, ActionCoolForge, handleCoolForge)
	h.register(game.LocationBlacksmith, ActionCheckSword, handleCheckSword)

	h.register(game.LocationMysteriousMan, ActionAcceptOffer, handleAcceptOffer)
	h.register(game.LocationMysteriousMan, ActionDeclineOffer, handleDeclineOffer)

	h.register(game.LocationChapel, ActionLookAtSword, handleLookAtSword)
	h.register(game.LocationChapel, ActionPray, handlePray)

	h.register(game.LocationQuestGiver, ActionAcceptQuest, handleAcceptQuest)
	h.register(game.LocationQuestGiver, ActionCheckProgress, handleCheckProgress)
	h.register(game.LocationQuestGiver, ActionOfferSword, handleOfferSword)
	h.register(game.LocationQuestGiver, ActionResurrectQuestGiver, handleResurrectQuestGiver)

	h.register(game.LocationWizard, ActionKillWizard, handleKillWizard)
	h.register(game.LocationWizard, ActionTalkToWizard, handleTalkToWizard)
	h.register(game.LocationWizard, ActionCheat, handleCheat)
	h.register(game.LocationStart, ActionCheat, handleCheat)

	h.register(game.LocationTreasure, ActionTakeBox, handleTakeBox)

	return h
}

func (h *Handler) register(loc game.Location, action Action, fn HandlerFunc) {
	if h.handlers[loc] == nil {
		h.handlers[loc] = map[Action]HandlerFunc{}
	}
	h.handlers[loc][action] = fn
}

// Apply runs one action against the states. Movement is checked first,
// then the current location's handlers. Anything else is a UserError and
// leaves the states untouched.
func (h *Handler) Apply(state *game.GameState, blacksmith *game.BlacksmithState, action Action) (string, error) {
	if !state.GameActive {
		return "", NewUserError(msgAdventureOver)
	}

	if dest, ok := moves[state.CurrentLocation][action]; ok {
		state.CurrentLocation = dest
		return Describe(dest), nil
	}

	if fn, ok := h.handlers[state.CurrentLocation][action]; ok {
		return fn(state, blacksmith), nil
	}

	return "", NewUserError(msgDontUnderstand)
}

// Available lists the actions offered at the player's current location,
// in presentation order. State-dependent entries are filtered here so
// the surfaces can print menus without duplicating rules.
func (h *Handler) Available(state *game.GameState) []Action {
	var out []Action
	for _, a := range h.menu[state.CurrentLocation] {
		if a == ActionTakeBox && state.HasBox {
			continue
		}
		out = append(out, a)
	}
	return out
}
