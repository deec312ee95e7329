package onboarding

// Status is the tri-state onboarding flag for one user id. It is Unknown
// until the first check resolves for the current user and must be treated as
// "still loading" - never as complete - while Unknown.
type Status int

const (
	StatusUnknown Status = iota
	StatusIncomplete
	StatusComplete
)

func (s Status) String() string {
	switch s {
	case StatusIncomplete:
		return "incomplete"
	case StatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}
