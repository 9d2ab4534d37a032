package core

// Action represents a semantic control action, abstracted from physical key
// presses. Steering is not an Action: direction keys go to the input router
// by name so every frontend shares one translation table.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Start button click
	ActionConfirm        // Enter, Space - acknowledge game over, or start when armed
	ActionScores         // T - open the run log
	ActionBack           // B, Esc - leave a sub-screen
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionConfirm:
		return "Confirm"
	case ActionScores:
		return "Scores"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
