// Package explore defines the agent capability, options and errors of the
// exploration driver.
package explore

import (
	"errors"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/mazewalk/mazegraph"
)

// Sentinel errors for exploration sessions.
var (
	// ErrAgentNil is returned when Explore is called without an agent.
	ErrAgentNil = errors.New("explore: agent is nil")

	// ErrUnreachable means the driver had to walk to a room it has no
	// confirmed path to. It signals a broken graph invariant.
	ErrUnreachable = errors.New("explore: no confirmed path to room")

	// ErrInconsistentWorld means walking back through the opposite exit did
	// not return the agent to the room it came from.
	ErrInconsistentWorld = errors.New("explore: exits are not reciprocal")

	// ErrMoveBudgetExceeded is returned once the session would exceed the
	// configured move budget. The moves made so far are returned with it.
	ErrMoveBudgetExceeded = errors.New("explore: move budget exceeded")
)

// Agent is the explorer's only window on the world: where it is, which exits
// it can see there, and a way to walk through one of them.
//
// Exits must be stable for a given room during a session. Travel is only
// called with a direction the current room lists as an exit.
type Agent interface {
	CurrentRoom() mazegraph.RoomID
	Exits() []mazegraph.Direction
	Travel(d mazegraph.Direction) error
}

// Option configures an Explorer.
type Option func(*Explorer)

// WithLogger sets the logger. V(1) logs every walk and escape, V(2) every move.
func WithLogger(log logr.Logger) Option {
	return func(e *Explorer) {
		e.log = log
	}
}

// WithMoveBudget caps the number of moves of one session; 0 means unlimited.
// Negative values are treated as 0.
func WithMoveBudget(n int) Option {
	return func(e *Explorer) {
		if n < 0 {
			n = 0
		}
		e.budget = n
	}
}
