package actions

import "github.com/pixil98/go-adventure/internal/game"

// The quest giver is dead while QuestGiversKilled > 0; a holy sword can
// bring him back.
func questGiverDead(state *game.GameState) bool {
	return state.QuestGiversKilled > 0
}

func handleAcceptQuest(state *game.GameState, _ *game.BlacksmithState) string {
	if questGiverDead(state) {
		return "The quest giver lies dead on the ground. Nobody is left to give you a quest."
	}

	if state.QuestAccepted {
		return "You have already accepted the quest to defeat the evil wizard."
	}

	if !state.HasSword {
		return "You need a sword before you can accept this quest."
	}

	state.QuestAccepted = true
	return "You accept the quest to defeat the evil wizard. Be careful, he is very powerful."
}

func handleCheckProgress(state *game.GameState, _ *game.BlacksmithState) string {
	if questGiverDead(state) {
		return "The quest giver lies dead on the ground. Nobody is left to check your progress."
	}

	if !state.QuestAccepted {
		return "You haven't accepted any quests yet."
	}

	if !state.HasSword {
		return "You lost your sword! You'll need to get another one from the blacksmith."
	}

	switch state.SwordType {
	case game.SwordHoly:
		return "Your holy sword should be powerful enough to defeat the wizard. Good luck!"
	case game.SwordEvil:
		return "There's something strange about your sword. Are you sure you can trust that mysterious man?"
	default:
		return "Your sword is not powerful enough. Try visiting the chapel or the mysterious man."
	}
}

func handleOfferSword(state *game.GameState, _ *game.BlacksmithState) string {
	if questGiverDead(state) {
		return "The quest giver lies dead on the ground. Showing him your sword will not help."
	}

	if !state.HasSword {
		return "You have no sword to show him. The quest giver waits patiently."
	}

	switch state.SwordType {
	case game.SwordEvil:
		// The cursed blade acts on its own.
		state.QuestGiversKilled++
		state.QuestAccepted = false
		return "As you hold out the sword, it twists in your grip and drives itself through the quest giver's chest. He falls without a sound. The sword feels warm and satisfied."
	case game.SwordHoly:
		return "The quest giver marvels at the holy light running along the blade. 'The wizard doesn't stand a chance,' he says."
	default:
		return "The quest giver nods politely. 'A fine blade, but it will take more than common steel to defeat the wizard.'"
	}
}

func handleResurrectQuestGiver(state *game.GameState, _ *game.BlacksmithState) string {
	if !questGiverDead(state) {
		return "The quest giver is alive and well. He gives you a puzzled look."
	}

	if state.SwordType != game.SwordHoly {
		return "You have no power to bring back the dead."
	}

	state.QuestGiversKilled--
	return "You lay the holy sword across the quest giver's body. Light pours from the blade and his eyes flutter open. He stands, pale but alive, and does not ask what happened."
}
