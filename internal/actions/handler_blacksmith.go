package actions

import "github.com/pixil98/go-adventure/internal/game"

const (
	// HeatPerStoke is how much one heat_forge action adds; the
	// background scheduler adds 1 per tick on its own.
	HeatPerStoke = 5

	// SwordTemper is the exact heat at which a checked sword is done.
	// Hotter melts it, colder and the blacksmith tells you to wait.
	SwordTemper = 10

	// BurnDownHeat is where the forge destroys the blacksmith's shop.
	BurnDownHeat = 50

	// MaxSwordAttempts is how many melted swords the blacksmith puts up
	// with before refusing further work.
	MaxSwordAttempts = 3
)

func handleRequestSword(state *game.GameState, blacksmith *game.BlacksmithState) string {
	if state.HasSword {
		return "You already have a sword. You don't need another one."
	}

	if state.FailedSwordAttempts >= MaxSwordAttempts {
		return "The blacksmith refuses to forge you another sword. You have wasted too much of his time."
	}

	if state.FailedSwordAttempts > 0 {
		// A retry resets the forge so the player starts from cold.
		blacksmith.SwordRequested = true
		blacksmith.Heat = 0
		blacksmith.IsHeatingForge = false
		return "The blacksmith looks at you with disappointment. He says, 'Fine, but be more careful this time! If the forge gets too hot, the sword will melt.'"
	}

	blacksmith.SwordRequested = true
	return "The blacksmith agrees to forge you a sword. It will take some time and the forge needs to be heated to the correct temperature however."
}

func handleHeatForge(state *game.GameState, blacksmith *game.BlacksmithState) string {
	blacksmith.IsHeatingForge = true
	blacksmith.Heat += HeatPerStoke

	// The same burn-down rule the background scheduler applies, here
	// synchronously for a player stoking the forge on demand.
	if blacksmith.Heat >= BurnDownHeat {
		ApplyBurnDown(state, blacksmith)
		return "The forge roars out of control and flames race up the walls. The blacksmith's shop burns down around you."
	}

	return "You fire up the forge and it begins heating up. You should wait a while before checking on the sword."
}

func handleCoolForge(state *game.GameState, blacksmith *game.BlacksmithState) string {
	blacksmith.Heat = 0
	blacksmith.IsHeatingForge = false
	return "You throw a bucket of water over the forge. The coals sizzle and the forge cools down completely."
}

func handleCheckSword(state *game.GameState, blacksmith *game.BlacksmithState) string {
	switch {
	case blacksmith.Heat == SwordTemper:
		blacksmith.SwordRequested = false
		state.HasSword = true
		state.SwordType = game.SwordRegular
		return "The sword is ready. You take it from the blacksmith."

	case blacksmith.Heat > SwordTemper:
		blacksmith.SwordRequested = false
		state.FailedSwordAttempts++
		return "The sword has completely melted! The blacksmith looks at you with disappointment."

	default:
		return "The forge is not hot enough yet. The blacksmith tells you to wait."
	}
}

// ApplyBurnDown records the forge catastrophe: the shop is gone, the
// fire is out, and the heat is reset. It is never left at or above the
// threshold.
func ApplyBurnDown(state *game.GameState, blacksmith *game.BlacksmithState) {
	state.BlacksmithBurnedDown = true
	blacksmith.IsHeatingForge = false
	blacksmith.Heat = 0
}
