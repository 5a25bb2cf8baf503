package actions

import "github.com/pixil98/go-adventure/internal/game"

func handleLookAtSword(state *game.GameState, _ *game.BlacksmithState) string {
	if !state.PriestAlive {
		return "The chapel is silent. The priest's body lies where he fell, the curse still clinging to him."
	}

	switch state.SwordType {
	case game.SwordHoly:
		return "I have already blessed your sword child, go now and use it well."

	case game.SwordRegular:
		state.SwordType = game.SwordHoly
		return "The priest blesses your sword. You feel a warm glow."

	case game.SwordEvil:
		// The curse passes to the priest; the player keeps the blade.
		state.SwordType = game.SwordHoly
		state.PriestAlive = false
		state.HasSword = true
		return "The priest looks at your sword with fear. My child, this sword is cursed. I will transfer the curse to me."

	default:
		return "The priest looks at your empty hands. You feel a little embarrassed."
	}
}

func handlePray(state *game.GameState, _ *game.BlacksmithState) string {
	if !state.PriestAlive {
		return "You pray alone in the empty chapel. No guidance comes."
	}
	return "You pray for guidance."
}
