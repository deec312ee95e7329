package routeguard

import "github.com/manyalawy/ballers-app/pkg/onboarding"

// State is the derived auth state the guard routes on.
type State int

const (
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticatedIncomplete
	StateAuthenticatedComplete
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticatedIncomplete:
		return "authenticated_incomplete"
	case StateAuthenticatedComplete:
		return "authenticated_complete"
	default:
		return "invalid"
	}
}

// ScreenGroup identifies which area of the app the user is currently in.
type ScreenGroup int

const (
	GroupAuth ScreenGroup = iota
	GroupOnboarding
	GroupMain
)

func (g ScreenGroup) String() string {
	switch g {
	case GroupAuth:
		return "auth"
	case GroupOnboarding:
		return "onboarding"
	case GroupMain:
		return "main"
	default:
		return "invalid"
	}
}

// Action is the navigation decision: stay put or replace the current
// location with the root of a screen group.
type Action int

const (
	ActionNone Action = iota
	ActionRedirectAuth
	ActionRedirectOnboarding
	ActionRedirectMain
)

func (a Action) String() string {
	switch a {
	case ActionRedirectAuth:
		return "redirect_auth"
	case ActionRedirectOnboarding:
		return "redirect_onboarding"
	case ActionRedirectMain:
		return "redirect_main"
	default:
		return "none"
	}
}

// Input is the full tuple the guard routes on. It is comparable so the
// stateful Guard can detect unchanged evaluations.
type Input struct {
	Loading       bool
	Authenticated bool
	Status        onboarding.Status
	Location      ScreenGroup
}

// StateOf derives the guard state from an input tuple. StatusUnknown counts
// as incomplete: the user is never navigated away from onboarding until the
// status is confirmed complete.
func StateOf(in Input) State {
	switch {
	case in.Loading:
		return StateLoading
	case !in.Authenticated:
		return StateUnauthenticated
	case in.Status == onboarding.StatusComplete:
		return StateAuthenticatedComplete
	default:
		return StateAuthenticatedIncomplete
	}
}

// Decide is the pure routing function: identical inputs always yield the
// identical action.
func Decide(in Input) Action {
	switch StateOf(in) {
	case StateLoading:
		return ActionNone
	case StateUnauthenticated:
		if in.Location != GroupAuth {
			return ActionRedirectAuth
		}
	case StateAuthenticatedIncomplete:
		if in.Location != GroupOnboarding {
			return ActionRedirectOnboarding
		}
	case StateAuthenticatedComplete:
		if in.Location != GroupMain {
			return ActionRedirectMain
		}
	}
	return ActionNone
}
