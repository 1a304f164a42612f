package core

// State is a step of the agent lifecycle:
// Start → {Authenticating | PresentingDialog} → {Affirmed | Declined}.
type State int

const (
	StateStart State = iota
	StateAuthenticating
	StatePresentingDialog
	StateAffirmed
	StateDeclined
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateAuthenticating:
		return "authenticating"
	case StatePresentingDialog:
		return "presenting_dialog"
	case StateAffirmed:
		return "affirmed"
	case StateDeclined:
		return "declined"
	default:
		return "unknown"
	}
}
