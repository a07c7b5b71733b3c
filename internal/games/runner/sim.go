// Package runner implements the console runner: a character jumps over a
// single obstacle that scrolls in from the right edge. Simulation is a pure
// fixed-tick step; the Controller drives it against a core.Surface.
package runner

// Playfield geometry on the 80x25 grid.
const (
	ScreenW = 80
	ScreenH = 25

	SpawnColumn      = ScreenW - 7 // Column where a new obstacle appears
	OffscreenColumn  = -4          // Obstacle respawns once it moves left of this
	CollisionMinX    = 4           // Collision band, inclusive
	CollisionMaxX    = 10
	JumpPeak         = 6  // Ticks (and rows) of the rising half of a jump
	PlayerColumn     = 5  // Left column of the player sprite
	SpriteBaseRow    = 19 // Bottom row of grounded sprites
	GroundRow        = 22
	SpriteHeight     = 3
	ObstacleMaxRight = ScreenW - 1 // Obstacle is drawn only while ObstacleX is left of this
)

// JumpPhase is the player's vertical state.
type JumpPhase int

const (
	PhaseGrounded JumpPhase = iota
	PhaseRising
	PhaseFalling
)

// String returns a human-readable name for the phase.
func (p JumpPhase) String() string {
	switch p {
	case PhaseGrounded:
		return "Grounded"
	case PhaseRising:
		return "Rising"
	case PhaseFalling:
		return "Falling"
	default:
		return "Unknown"
	}
}

// Input is the player intent for one tick.
type Input int

const (
	InputNone Input = iota
	InputJump
	InputQuit
)

// String returns a human-readable name for the input.
func (in Input) String() string {
	switch in {
	case InputNone:
		return "None"
	case InputJump:
		return "Jump"
	case InputQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// State is everything that changes during one play session.
type State struct {
	Offset        int       // Rows above the ground; 0 = grounded
	Phase         JumpPhase // Grounded iff Offset == 0
	ObstacleX     int       // Leading column of the obstacle; may be negative
	Score         int       // Obstacles passed
	Ended         bool
	QuitRequested bool
	Tick          int // Steps applied so far
}

// Events reports what happened during a single Step.
type Events struct {
	Passed   bool // Obstacle left the screen and respawned
	Collided bool
	Quit     bool
}

// NewState returns the state at the start of a session.
func NewState() State {
	return State{
		Phase:     PhaseGrounded,
		ObstacleX: SpawnColumn,
	}
}

// Day reports whether the sky shows the sun. It flips with every obstacle passed.
func (s State) Day() bool {
	return s.Score%2 == 0
}

// Airborne reports whether a jump is in flight.
func (s State) Airborne() bool {
	return s.Phase != PhaseGrounded
}

// Step advances the simulation by one fixed tick.
// Steps on an ended state are no-ops.
func Step(s State, in Input) (State, Events) {
	var ev Events
	if s.Ended {
		return s, ev
	}
	s.Tick++

	if in == InputQuit {
		s.QuitRequested = true
		s.Ended = true
		ev.Quit = true
		return s, ev
	}

	// Only one jump in flight; requests while airborne are dropped.
	if in == InputJump && s.Phase == PhaseGrounded {
		s.Phase = PhaseRising
	}

	switch s.Phase {
	case PhaseRising:
		s.Offset++
		if s.Offset >= JumpPeak {
			s.Phase = PhaseFalling
		}
	case PhaseFalling:
		s.Offset--
		if s.Offset <= 0 {
			s.Offset = 0
			s.Phase = PhaseGrounded
		}
	}

	s.ObstacleX--
	if s.ObstacleX < OffscreenColumn {
		s.ObstacleX = SpawnColumn
		s.Score++
		ev.Passed = true
	}

	// Collision only counts while grounded.
	if s.ObstacleX >= CollisionMinX && s.ObstacleX <= CollisionMaxX && s.Offset == 0 {
		s.Ended = true
		ev.Collided = true
	}

	return s, ev
}
