// Package menu implements the runner's screen state machine and the menu
// screens that feed it: main menu, instructions and game over.
package menu

import (
	"errors"
	"fmt"
)

// State is a screen of the application.
type State int

const (
	StateMainMenu State = iota
	StateInstructions
	StatePlaying
	StateGameOver
	StateExit // Terminal state
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StateInstructions:
		return "Instructions"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	case StateExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Event drives a transition.
type Event int

const (
	EventPlay Event = iota
	EventInstructions
	EventExit
	EventAnyKey
	EventSessionEnded
	EventReplay
	EventMainMenu
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventPlay:
		return "Play"
	case EventInstructions:
		return "Instructions"
	case EventExit:
		return "Exit"
	case EventAnyKey:
		return "AnyKey"
	case EventSessionEnded:
		return "SessionEnded"
	case EventReplay:
		return "Replay"
	case EventMainMenu:
		return "MainMenu"
	default:
		return "Unknown"
	}
}

// ErrInvalidTransition is returned for events a state does not accept.
var ErrInvalidTransition = errors.New("menu: invalid transition")

var transitions = map[State]map[Event]State{
	StateMainMenu: {
		EventPlay:         StatePlaying,
		EventInstructions: StateInstructions,
		EventExit:         StateExit,
	},
	StateInstructions: {
		EventAnyKey: StateMainMenu,
	},
	StatePlaying: {
		EventSessionEnded: StateGameOver,
	},
	StateGameOver: {
		EventReplay:   StatePlaying,
		EventMainMenu: StateMainMenu,
		EventExit:     StateExit,
	},
}

// Transition returns the state reached from s on ev.
func Transition(s State, ev Event) (State, error) {
	if next, ok := transitions[s][ev]; ok {
		return next, nil
	}
	return s, fmt.Errorf("%w: %s in %s", ErrInvalidTransition, ev, s)
}
