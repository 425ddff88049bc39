package models

// LoginStatus is the outcome of a single login attempt against the hub
type LoginStatus int

const (
	// The hub accepted the session
	LoginStatusSuccess LoginStatus = iota
	// The hub rejected the session, ask for credentials again
	LoginStatusFailed
	// Anything else: no response, unexpected status code etc.
	LoginStatusIndeterminate
)

func (s LoginStatus) String() string {
	switch s {
	case LoginStatusSuccess:
		return "success"
	case LoginStatusFailed:
		return "failed"
	default:
		return "indeterminate"
	}
}
