package menu

import (
	"errors"
	"testing"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from     State
		ev       Event
		expected State
	}{
		{StateMainMenu, EventPlay, StatePlaying},
		{StateMainMenu, EventInstructions, StateInstructions},
		{StateMainMenu, EventExit, StateExit},
		{StateInstructions, EventAnyKey, StateMainMenu},
		{StatePlaying, EventSessionEnded, StateGameOver},
		{StateGameOver, EventReplay, StatePlaying},
		{StateGameOver, EventMainMenu, StateMainMenu},
		{StateGameOver, EventExit, StateExit},
	}

	for _, tc := range tests {
		t.Run(tc.from.String()+"/"+tc.ev.String(), func(t *testing.T) {
			next, err := Transition(tc.from, tc.ev)
			if err != nil {
				t.Fatalf("Transition() failed: %v", err)
			}
			if next != tc.expected {
				t.Errorf("Transition(%s, %s) = %s, expected %s", tc.from, tc.ev, next, tc.expected)
			}
		})
	}
}

func TestTransitionInvalid(t *testing.T) {
	tests := []struct {
		from State
		ev   Event
	}{
		{StateMainMenu, EventReplay},
		{StateMainMenu, EventSessionEnded},
		{StateInstructions, EventPlay},
		{StatePlaying, EventExit},
		{StatePlaying, EventReplay},
		{StateGameOver, EventPlay},
		{StateGameOver, EventAnyKey},
		{StateExit, EventPlay},
		{StateExit, EventMainMenu},
	}

	for _, tc := range tests {
		t.Run(tc.from.String()+"/"+tc.ev.String(), func(t *testing.T) {
			next, err := Transition(tc.from, tc.ev)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("Transition(%s, %s) error = %v, expected ErrInvalidTransition", tc.from, tc.ev, err)
			}
			if next != tc.from {
				t.Errorf("invalid transition should stay in %s, got %s", tc.from, next)
			}
		})
	}
}

func TestSelectionEvents(t *testing.T) {
	mains := map[MainSelection]Event{
		MainPlay:         EventPlay,
		MainInstructions: EventInstructions,
		MainExit:         EventExit,
	}
	for sel, ev := range mains {
		if got := sel.Event(); got != ev {
			t.Errorf("MainSelection(%d).Event() = %s, expected %s", sel, got, ev)
		}
	}

	overs := map[GameOverSelection]Event{
		GameOverReplay:   EventReplay,
		GameOverMainMenu: EventMainMenu,
		GameOverExit:     EventExit,
	}
	for sel, ev := range overs {
		if got := sel.Event(); got != ev {
			t.Errorf("GameOverSelection(%d).Event() = %s, expected %s", sel, got, ev)
		}
	}
}
