// Package search provides tunable options, error definitions and the Path
// type shared by the breadth-first, depth-first and escape searches.
package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazewalk/mazegraph"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Step is one element of a Path: the direction taken to enter Room.
// The first step of every path has Via == mazegraph.None.
type Step struct {
	Via  mazegraph.Direction
	Room mazegraph.RoomID
}

// Path is a walk through confirmed edges, starting at Path[0].Room.
// An empty Path means the search found nothing.
type Path []Step

// Found reports whether the search reached its target.
func (p Path) Found() bool { return len(p) > 0 }

// Directions strips the leading None and returns the moves to replay the walk.
// The result is non-nil, so "already there" and "no path" both yield a
// zero-length slice; use Found to tell them apart.
func (p Path) Directions() []mazegraph.Direction {
	out := make([]mazegraph.Direction, 0, len(p))
	for _, s := range p {
		if s.Via != mazegraph.None {
			out = append(out, s.Via)
		}
	}

	return out
}

// Rooms lists the rooms of the walk, start first.
func (p Path) Rooms() []mazegraph.RoomID {
	out := make([]mazegraph.RoomID, len(p))
	for i, s := range p {
		out[i] = s.Room
	}

	return out
}

// End returns the last room of the walk.
func (p Path) End() (mazegraph.RoomID, bool) {
	if len(p) == 0 {
		return 0, false
	}

	return p[len(p)-1].Room, true
}

// extend returns a fresh path with one more step; p is left untouched so that
// sibling frontier entries never share a backing array.
func (p Path) extend(d mazegraph.Direction, id mazegraph.RoomID) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)

	return append(out, Step{Via: d, Room: id})
}

// Option configures search behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search runs.
type Option func(*Options)

// Options holds parameters and callbacks shared by every search routine.
type Options struct {
	// OnVisit is called when a room is taken off the frontier, with its
	// distance from the start. Returning an error aborts the search.
	OnVisit func(id mazegraph.RoomID, depth int) error

	// MaxDepth, if > 0, stops expanding paths longer than MaxDepth moves.
	// 0 means no limit.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with a no-op OnVisit and no depth limit.
func DefaultOptions() Options {
	return Options{
		OnVisit:  func(mazegraph.RoomID, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithOnVisit registers a callback run for every room taken off the frontier.
func WithOnVisit(fn func(id mazegraph.RoomID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the length of explored paths.
//
//	d > 0: limit to d moves
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

func buildOptions(g *mazegraph.Graph, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
