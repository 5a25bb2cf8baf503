package actions

import "github.com/pixil98/go-adventure/internal/game"

var locationText = map[game.Location]string{
	game.LocationStart:         "You are at the beginning of your adventure. There's a path leading north towards a town, and another path leading east towards a forest.",
	game.LocationTown:          "You are in a bustling town. People are going about their business. You see a blacksmith, a mysterious man wandering the streets, a quest giver, and a chapel.",
	game.LocationBlacksmith:    "You are at the blacksmith's forge. The blacksmith is busy working.",
	game.LocationMysteriousMan: "You meet a mysterious man. He offers to enhance your sword with magic.",
	game.LocationChapel:        "You enter the chapel. The priest greets you warmly.",
	game.LocationQuestGiver:    "You meet a quest giver. He offers you a quest to defeat the evil wizard.",
	game.LocationWizard:        "You meet a wizard. He yells 'Are you here to kill me?!'",
	game.LocationForest:        "You are in a dark forest. The trees are tall and the air is thick, you can make out a faint trail heading further east.",
	game.LocationCave:          "You enter a dark cave at the end of the trail. The air is cold and damp. You see a faint light at the end of the cave.",
	game.LocationTreasure:      "You find a treasure chest at the end of the cave. Inside is a small decorative wooden box with no visible way of opening it.",
}

// Describe returns the narrative text for a location.
func Describe(loc game.Location) string {
	if text, ok := locationText[loc]; ok {
		return text
	}
	return "You are in an unknown location."
}
