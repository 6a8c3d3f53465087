// Package world is a concrete room world for the explorer: rooms on a grid,
// joined by exits, plus a Player that walks through them.
//
// A World is built by hand (AddRoom/Connect), loaded from a YAML or JSON map
// (Load, LoadFile) or generated as a random grid maze (Generate).
package world

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/multierr"

	"github.com/katalvlaran/mazewalk/mazegraph"
)

// Sentinel errors for world construction and movement.
var (
	// ErrDuplicateRoom indicates AddRoom was called twice with the same id.
	ErrDuplicateRoom = errors.New("world: duplicate room")

	// ErrNoRoom indicates a reference to a room the world does not hold.
	ErrNoRoom = errors.New("world: room not found")

	// ErrNoExit is returned by Player.Travel for a direction the room has no exit in.
	ErrNoExit = errors.New("world: no exit in that direction")

	// ErrNotReciprocal indicates an exit whose destination does not lead back.
	ErrNotReciprocal = errors.New("world: exit is not reciprocal")

	// ErrBadSize indicates a grid dimension below 1.
	ErrBadSize = errors.New("world: grid dimensions must be positive")

	// ErrMapMismatch indicates an explored graph disagrees with the world.
	ErrMapMismatch = errors.New("world: explored map does not match")
)

// Room is a single room with grid coordinates and its exits.
type Room struct {
	id    mazegraph.RoomID
	X, Y  int
	exits map[mazegraph.Direction]mazegraph.RoomID
}

// ID returns the room identity.
func (r *Room) ID() mazegraph.RoomID { return r.id }

// Exits lists the directions with a passage, in canonical n, s, e, w order.
func (r *Room) Exits() []mazegraph.Direction {
	out := make([]mazegraph.Direction, 0, len(r.exits))
	for _, d := range mazegraph.Directions {
		if _, ok := r.exits[d]; ok {
			out = append(out, d)
		}
	}

	return out
}

// Exit returns the room behind direction d.
func (r *Room) Exit(d mazegraph.Direction) (mazegraph.RoomID, bool) {
	id, ok := r.exits[d]

	return id, ok
}

// World is a set of rooms and a starting room.
type World struct {
	rooms map[mazegraph.RoomID]*Room
	start mazegraph.RoomID
}

// New returns an empty world whose players start in room start.
func New(start mazegraph.RoomID) *World {
	return &World{rooms: make(map[mazegraph.RoomID]*Room), start: start}
}

// AddRoom adds a room without exits.
func (w *World) AddRoom(id mazegraph.RoomID, x, y int) (*Room, error) {
	if _, ok := w.rooms[id]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateRoom, id)
	}
	r := &Room{id: id, X: x, Y: y, exits: make(map[mazegraph.Direction]mazegraph.RoomID, 4)}
	w.rooms[id] = r

	return r, nil
}

// Connect opens a two-way passage: a → b through d, b → a through d.Opposite().
func (w *World) Connect(d mazegraph.Direction, a, b mazegraph.RoomID) error {
	if !d.Valid() {
		return fmt.Errorf("world: connect %s and %s: %w", a, b, mazegraph.ErrInvalidDirection)
	}
	ra, ok := w.rooms[a]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoRoom, a)
	}
	rb, ok := w.rooms[b]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoRoom, b)
	}
	ra.exits[d] = b
	rb.exits[d.Opposite()] = a

	return nil
}

// Room returns the room with the given id.
func (w *World) Room(id mazegraph.RoomID) (*Room, bool) {
	r, ok := w.rooms[id]

	return r, ok
}

// Start returns the starting room id.
func (w *World) Start() mazegraph.RoomID { return w.start }

// Len reports the number of rooms.
func (w *World) Len() int { return len(w.rooms) }

// Rooms returns all rooms sorted by id.
func (w *World) Rooms() []*Room {
	out := make([]*Room, 0, len(w.rooms))
	for _, r := range w.rooms {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// Validate reports every problem at once: a missing start room, exits to
// unknown rooms and exits that do not lead back through the opposite direction.
func (w *World) Validate() error {
	var err error
	if _, ok := w.rooms[w.start]; !ok {
		err = multierr.Append(err, fmt.Errorf("%w: start room %s", ErrNoRoom, w.start))
	}
	for _, r := range w.Rooms() {
		for _, d := range r.Exits() {
			to := r.exits[d]
			dst, ok := w.rooms[to]
			if !ok {
				err = multierr.Append(err, fmt.Errorf("%w: room %s exit %s leads to %s", ErrNoRoom, r.id, d, to))
				continue
			}
			if back, ok := dst.exits[d.Opposite()]; !ok || back != r.id {
				err = multierr.Append(err, fmt.Errorf("%w: room %s exit %s to %s", ErrNotReciprocal, r.id, d, to))
			}
		}
	}

	return err
}

// Reachable returns the ids reachable from the start room, sorted ascending.
func (w *World) Reachable() []mazegraph.RoomID {
	seen := map[mazegraph.RoomID]bool{}
	if _, ok := w.rooms[w.start]; !ok {
		return nil
	}
	stack := []mazegraph.RoomID{w.start}
	seen[w.start] = true
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, to := range w.rooms[id].exits {
			if _, ok := w.rooms[to]; ok && !seen[to] {
				seen[to] = true
				stack = append(stack, to)
			}
		}
	}
	out := make([]mazegraph.RoomID, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Verify checks an explored graph against the world: every room reachable
// from the start must be registered, and each of its exits must be a Known
// edge to the right room. All mismatches are reported together.
func (w *World) Verify(g *mazegraph.Graph) error {
	var err error
	for _, id := range w.Reachable() {
		if !g.HasRoom(id) {
			err = multierr.Append(err, fmt.Errorf("%w: room %s was never mapped", ErrMapMismatch, id))
			continue
		}
		r := w.rooms[id]
		for _, d := range r.Exits() {
			edge, ok := g.Edge(id, d)
			if !ok {
				err = multierr.Append(err, fmt.Errorf("%w: room %s exit %s missing", ErrMapMismatch, id, d))
				continue
			}
			got, known := edge.Room()
			switch {
			case !known:
				err = multierr.Append(err, fmt.Errorf("%w: room %s exit %s still unknown", ErrMapMismatch, id, d))
			case got != r.exits[d]:
				err = multierr.Append(err, fmt.Errorf("%w: room %s exit %s mapped to %s, want %s", ErrMapMismatch, id, d, got, r.exits[d]))
			}
		}
	}

	return err
}
