package search

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/mazegraph"
)

// EscapeDeadEnd finds the nearest room, counted in moves over Known edges,
// that still has an Unknown exit. It is the way out of fully explored
// territory: the same breadth-first expansion as BFS with "is not a dead end"
// as the goal.
//
// A from that is itself a frontier room yields a single-step path. An empty
// Path means every room reachable from from is fully explored.
//
// Errors:
//   - mazegraph.ErrRoomNotFound (wrapped) if from is not registered.
//   - ErrGraphNil, ErrOptionViolation, or a wrapped OnVisit error.
func EscapeDeadEnd(g *mazegraph.Graph, from mazegraph.RoomID, opts ...Option) (Path, error) {
	o, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasRoom(from) {
		return nil, fmt.Errorf("search: escape from %s: %w", from, mazegraph.ErrRoomNotFound)
	}

	return newWalker(g, o).run(from, func(id mazegraph.RoomID) (bool, error) {
		dead, err := g.IsDeadEnd(id)
		if err != nil {
			return false, fmt.Errorf("search: escape: %w", err)
		}
		return !dead, nil
	})
}

// EscapeNearestOpenRoom returns the moves of EscapeDeadEnd. The slice is empty
// when from is already a frontier room or when no frontier is reachable.
func EscapeNearestOpenRoom(g *mazegraph.Graph, from mazegraph.RoomID, opts ...Option) ([]mazegraph.Direction, error) {
	p, err := EscapeDeadEnd(g, from, opts...)
	if err != nil {
		return nil, err
	}

	return p.Directions(), nil
}
