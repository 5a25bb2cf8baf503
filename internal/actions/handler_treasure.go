package actions

import "github.com/pixil98/go-adventure/internal/game"

func handleTakeBox(state *game.GameState, _ *game.BlacksmithState) string {
	if state.HasBox {
		return "You already have the box."
	}

	state.HasBox = true
	return "You take the box and place it in your pocket. You hear a slight hum coming from the box as you touch it."
}
