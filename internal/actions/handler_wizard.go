package actions

import "github.com/pixil98/go-adventure/internal/game"

func handleKillWizard(state *game.GameState, _ *game.BlacksmithState) string {
	if !state.QuestAccepted {
		return "You don't have a quest to kill the wizard. The wizard looks at you with amusement. 'Did someone send you to kill me? Or did you just wander in here on your own?'"
	}

	if !state.HasSword && state.SwordType == game.SwordNone {
		state.CurrentLocation = game.LocationTown
		return "You try to attack the wizard with your bare hands. He laughs and waves his hand, sending you flying back out the door. 'Come back when you have a weapon at least!'"
	}

	switch state.SwordType {
	case game.SwordHoly:
		state.CurrentLocation = game.LocationTown
		state.QuestAccepted = false
		state.GameActive = false
		return "You strike the wizard down with your holy sword. It glows with righteous power as it pierces through his dark defenses. The wizard screams as he dissolves into shadow. The town cheers for you when you return with news of your victory. Your adventure has come to an end."

	case game.SwordEvil:
		state.GameActive = false
		return "As you raise your sword to strike, something strange happens. Your arm freezes mid-swing. The wizard's laughter echoes in the chamber as your vision begins to blur. 'Did you truly believe you could defeat me with that?' he asks, his voice suddenly seeming to come from inside your own head. You feel a cold sensation spreading through your body from your hand still gripping the sword. The world fades to darkness. Months later, villagers whisper of a new figure seen at the wizard's side, wearing your face but with eyes devoid of recognition. The adventure ends, but not in the way you had hoped."

	default:
		state.CurrentLocation = game.LocationTown
		state.HasSword = false
		state.SwordType = game.SwordNone
		return "You charge at the wizard with your ordinary sword. With a contemptuous flick of his wrist, he shatters your blade with magical force. The metal fragments turn to dust before they hit the ground. 'Pathetic,' the wizard sneers. 'Did you really think common steel could harm me?' You retreat hastily, knowing you'll need a more powerful weapon."
	}
}

func handleTalkToWizard(state *game.GameState, _ *game.BlacksmithState) string {
	if state.HasBox {
		return "The wizard notices the box in your pocket. 'Ah, you found my puzzle box! I've been looking for that. But it seems you haven't opened it yet.'"
	}
	return "The wizard eyes you suspiciously. 'What do you want? I'm very busy with my evil... err, important research.'"
}

func handleCheat(state *game.GameState, _ *game.BlacksmithState) string {
	if state.HasSword {
		return "The wizard shrugs. 'You already have a sword. Even I can't improve on that trick.'"
	}

	state.HasSword = true
	state.SwordType = game.SwordRegular
	return "The wizard chuckles and waves his hand. A sword materializes before you. 'Don't tell anyone I did that,' he winks."
}
