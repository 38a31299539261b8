package callback

import "fmt"

type State string

const (
	StateLoading State = "LOADING"
	StateSuccess State = "SUCCESS"
	StateFailure State = "FAILURE"
	StateError   State = "ERROR"
)

// Every page starts in LOADING and settles exactly once.
var validTransitions = map[State][]State{
	StateLoading: {StateSuccess, StateFailure, StateError},
}

func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s State) IsTerminal() bool {
	return s != StateLoading
}

func (v *View) transition(next State) error {
	if !v.State.CanTransitionTo(next) {
		return fmt.Errorf("cannot transition from %s to %s", v.State, next)
	}
	v.State = next
	return nil
}
