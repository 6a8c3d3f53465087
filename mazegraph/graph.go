// File: graph.go
// Role: The graph store: room registration, directed edge insertion, neighbor and dead-end queries.
//
// Concurrency:
//   - All methods are safe for concurrent use; a single RWMutex guards the room catalog.
//
// Determinism:
//   - Rooms() and Frontier() return ids sorted ascending.
package mazegraph

import (
	"fmt"
	"sort"
	"sync"
)

// Graph maps each room to its EdgeMap. It only grows: rooms are never removed
// and an edge can only be overwritten, typically to resolve an Unknown.
type Graph struct {
	mu    sync.RWMutex
	rooms map[RoomID]*EdgeMap
}

// NewGraph returns an empty graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{rooms: make(map[RoomID]*EdgeMap)}
}

// AddVertex registers id with an empty EdgeMap.
// It reports false, without touching the existing entry, when id is already present.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id RoomID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.rooms[id]; exists {
		return false
	}
	g.rooms[id] = &EdgeMap{}

	return true
}

// AddEdge stores to at direction d of room from, registering from when needed.
// Any prior value is overwritten (last write wins). The edge is directed: no
// reverse edge is created. A Known destination is registered with an empty
// EdgeMap if it was never seen, so every referenced room has an entry.
//
// Errors:
//   - ErrInvalidDirection: d is not one of the four real directions.
//
// Complexity: O(1).
func (g *Graph) AddEdge(d Direction, from RoomID, to Edge) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %s on room %s", ErrInvalidDirection, d, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.room(from).set(d, to)
	if id, ok := to.Room(); ok {
		g.room(id)
	}

	return nil
}

// Link stores a Known directed edge from → to at direction d.
func (g *Graph) Link(d Direction, from, to RoomID) error {
	return g.AddEdge(d, from, Known(to))
}

// MarkUnknown stores a placeholder at direction d of room from.
func (g *Graph) MarkUnknown(d Direction, from RoomID) error {
	return g.AddEdge(d, from, Unknown())
}

// Connect records a traversed passage: a → b through d and b → a through the
// opposite direction. Both writes happen under one lock.
func (g *Graph) Connect(d Direction, a, b RoomID) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %s between rooms %s and %s", ErrInvalidDirection, d, a, b)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.room(a).set(d, Known(b))
	g.room(b).set(d.Opposite(), Known(a))

	return nil
}

// Neighbors returns a copy of the EdgeMap of id, or an empty map if id is absent.
// It never fails.
func (g *Graph) Neighbors(id RoomID) EdgeMap {
	g.mu.RLock()
	defer g.mu.RUnlock()

	m, ok := g.rooms[id]
	if !ok {
		return EdgeMap{}
	}

	return m.clone()
}

// Edge returns the edge stored at direction d of room id.
func (g *Graph) Edge(id RoomID, d Direction) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	m, ok := g.rooms[id]
	if !ok {
		return Edge{}, false
	}

	return m.Get(d)
}

// IsDeadEnd reports whether every stored edge of id is Known, i.e. the room
// has no placeholders left to explore.
//
// Errors:
//   - ErrRoomNotFound: id was never registered. Callers that only ask about
//     rooms they registered themselves never see it.
func (g *Graph) IsDeadEnd(id RoomID) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	m, ok := g.rooms[id]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}

	return !m.HasUnknown(), nil
}

// HasRoom reports whether id is registered.
func (g *Graph) HasRoom(id RoomID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.rooms[id]

	return ok
}

// Len reports the number of registered rooms.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.rooms)
}

// Rooms returns all registered ids sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Rooms() []RoomID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]RoomID, 0, len(g.rooms))
	for id := range g.rooms {
		out = append(out, id)
	}
	sortIDs(out)

	return out
}

// Frontier returns the rooms that still hold at least one Unknown edge, sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Frontier() []RoomID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []RoomID
	for id, m := range g.rooms {
		if m.HasUnknown() {
			out = append(out, id)
		}
	}
	sortIDs(out)

	return out
}

// UnknownCount reports the total number of placeholder edges in the graph.
func (g *Graph) UnknownCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, m := range g.rooms {
		for _, x := range m.exits {
			if !x.Edge.IsKnown() {
				n++
			}
		}
	}

	return n
}

// room returns the EdgeMap of id, creating it first. Caller holds mu for writing.
func (g *Graph) room(id RoomID) *EdgeMap {
	m, ok := g.rooms[id]
	if !ok {
		m = &EdgeMap{}
		g.rooms[id] = m
	}

	return m
}

func sortIDs(ids []RoomID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
