package actions

import "github.com/pixil98/go-adventure/internal/game"

func handleAcceptOffer(state *game.GameState, _ *game.BlacksmithState) string {
	if !state.HasSword {
		return "You don't have a sword for the wizard to enchant."
	}

	state.SwordType = game.SwordEvil
	return "You feel funny but powerful. Maybe I should accept a quest."
}

func handleDeclineOffer(_ *game.GameState, _ *game.BlacksmithState) string {
	return "You will not get another chance. ACCEPT MY OFFER!"
}
