package login

type state int

const (
	stateWelcome state = iota
	statePrompting
	stateAuthenticating
	stateLaunched
)

func (s state) String() string {
	switch s {
	case stateWelcome:
		return "welcome"
	case statePrompting:
		return "prompting"
	case stateAuthenticating:
		return "authenticating"
	case stateLaunched:
		return "launched"
	default:
		return "unknown"
	}
}
