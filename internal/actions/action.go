package actions

import "fmt"

// Action is one thing an adventurer can do. The wire form is the
// snake_case name; surfaces hand these to Apply directly, there is no
// free-text parsing in the core.
type Action string

const (
	// Movement
	ActionGoToTown       Action = "go_to_town"
	ActionGoToForest     Action = "go_to_forest"
	ActionGoBack         Action = "go_back"
	ActionGoEast         Action = "go_east"
	ActionGoTowardsLight Action = "go_towards_light"
	ActionExitCave       Action = "exit_cave"
	ActionBlacksmith     Action = "blacksmith"
	ActionMysteriousMan  Action = "mysterious_man"
	ActionChapel         Action = "chapel"
	ActionQuestGiver     Action = "quest_giver"
	ActionWizard         Action = "wizard"

	// Blacksmith
	ActionRequestSword Action = "request_sword"
	ActionHeatForge    Action = "heat_forge"
	ActionCoolForge    Action = "cool_forge"
	ActionCheckSword   Action = "check_sword"

	// Mysterious man
	ActionAcceptOffer  Action = "accept_offer"
	ActionDeclineOffer Action = "decline_offer"

	// Chapel
	ActionLookAtSword Action = "look_at_sword"
	ActionPray        Action = "pray"

	// Quest giver
	ActionAcceptQuest         Action = "accept_quest"
	ActionCheckProgress       Action = "check_progress"
	ActionOfferSword          Action = "offer_sword"
	ActionResurrectQuestGiver Action = "resurrect_quest_giver"

	// Wizard
	ActionKillWizard   Action = "kill_wizard"
	ActionTalkToWizard Action = "talk_to_wizard"
	ActionCheat        Action = "cheat"

	// Treasure
	ActionTakeBox Action = "take_box"
)

var allActions = map[Action]bool{
	ActionGoToTown: true, ActionGoToForest: true, ActionGoBack: true,
	ActionGoEast: true, ActionGoTowardsLight: true, ActionExitCave: true,
	ActionBlacksmith: true, ActionMysteriousMan: true, ActionChapel: true,
	ActionQuestGiver: true, ActionWizard: true,
	ActionRequestSword: true, ActionHeatForge: true, ActionCoolForge: true,
	ActionCheckSword: true,
	ActionAcceptOffer: true, ActionDeclineOffer: true,
	ActionLookAtSword: true, ActionPray: true,
	ActionAcceptQuest: true, ActionCheckProgress: true, ActionOfferSword: true,
	ActionResurrectQuestGiver: true,
	ActionKillWizard: true, ActionTalkToWizard: true, ActionCheat: true,
	ActionTakeBox: true,
}

// ParseAction validates a wire-form action name.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if !allActions[a] {
		return "", fmt.Errorf("unknown action: %s", s)
	}
	return a, nil
}

func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
