// FILE: srunauth/src/internal/portal/state.go
package portal

// State is the progress of one authentication attempt
type State int

const (
	StateIdle State = iota
	StateChallengeRequested
	StateChallengeReceived
	StateLoginSubmitted
	StateSuccess
	StateFailure
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateChallengeRequested:
		return "challenge_requested"
	case StateChallengeReceived:
		return "challenge_received"
	case StateLoginSubmitted:
		return "login_submitted"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible in this attempt
func (s State) Terminal() bool {
	return s == StateSuccess || s == StateFailure
}
