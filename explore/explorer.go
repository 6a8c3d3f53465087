// Package explore drives an agent through an unknown maze until every room
// reachable from its starting point is mapped.
//
// The driver knows only what the agent shows it: the id of the current room
// and its visible exits. It records every passage it walks through in a
// mazegraph.Graph, seeds Unknown placeholders for exits it has seen but not
// taken, and routes between known rooms with the searches of package search.
package explore

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/katalvlaran/mazewalk/mazegraph"
	"github.com/katalvlaran/mazewalk/search"
	"github.com/katalvlaran/mazewalk/worklist"
)

// Stats summarizes the last session.
type Stats struct {
	Rooms   int // rooms registered in the graph
	Moves   int // moves physically made
	Probes  int // exits walked through to discover a neighbor
	Walks   int // reroutes to a pending room
	Escapes int // escapes from a dead end to the nearest frontier room
}

// Explorer runs exploration sessions. Each session owns a fresh graph, which
// stays available through Graph() after the session ends.
//
// An Explorer is not safe for concurrent sessions.
type Explorer struct {
	log    logr.Logger
	budget int

	graph   *mazegraph.Graph
	session string
	stats   Stats

	// per-session state
	agent   Agent
	moves   []mazegraph.Direction
	pending *worklist.Stack[mazegraph.RoomID]
}

// New returns an Explorer with an empty graph and a discarding logger.
func New(opts ...Option) *Explorer {
	x := &Explorer{
		log:   logr.Discard(),
		graph: mazegraph.NewGraph(),
	}
	for _, opt := range opts {
		opt(x)
	}

	return x
}

// Explore maps the region reachable from the agent's current room and
// returns every move the agent made, in order.
//
// The session is one worklist loop over a stack of rooms pending
// exploration, seeded with the starting room. For each popped room:
//   - not registered yet: register it and explore it on the spot;
//   - a dead end: if some frontier room is still reachable, walk to the
//     popped room, escape to the nearest frontier room and explore that;
//   - otherwise: walk to it over confirmed edges and explore it.
//
// Exploring a room probes each exit whose edge is absent or Unknown: step
// through, connect both rooms, seed placeholders for the new room's other
// exits, queue the new room if it still has any, and step back.
//
// On error the moves made so far are returned along with it. ctx is checked
// once per popped room.
func (x *Explorer) Explore(ctx context.Context, agent Agent) ([]mazegraph.Direction, error) {
	if agent == nil {
		return nil, ErrAgentNil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	x.graph = mazegraph.NewGraph()
	x.session = uuid.NewString()
	x.stats = Stats{}
	x.agent = agent
	x.moves = nil
	x.pending = worklist.NewStack[mazegraph.RoomID](16)
	defer func() { x.agent = nil }()

	log := x.log.WithValues("session", x.session)
	start := agent.CurrentRoom()
	log.Info("exploration started", "start", start)

	x.pending.Push(start)
	for !x.pending.Empty() {
		if err := ctx.Err(); err != nil {
			return x.finish(log, err)
		}
		room, _ := x.pending.Pop()
		if err := x.visit(log, room); err != nil {
			return x.finish(log, err)
		}
	}

	return x.finish(log, nil)
}

func (x *Explorer) finish(log logr.Logger, err error) ([]mazegraph.Direction, error) {
	x.stats.Rooms = x.graph.Len()
	x.stats.Moves = len(x.moves)
	if err != nil {
		log.Error(err, "exploration aborted", "rooms", x.stats.Rooms, "moves", x.stats.Moves)
	} else {
		log.Info("exploration finished", "rooms", x.stats.Rooms, "moves", x.stats.Moves,
			"escapes", x.stats.Escapes, "walks", x.stats.Walks)
	}

	return x.moves, err
}

// visit applies the transition rule to one room popped off the pending stack.
func (x *Explorer) visit(log logr.Logger, room mazegraph.RoomID) error {
	if !x.graph.HasRoom(room) {
		// only the starting room is pushed before being registered, and the
		// agent is standing in it
		if here := x.agent.CurrentRoom(); here != room {
			return fmt.Errorf("%w: %s is unregistered and the agent is in %s", ErrUnreachable, room, here)
		}
		x.graph.AddVertex(room)
		if err := x.seedUnknown(room, mazegraph.None); err != nil {
			return err
		}

		return x.exploreHere(log)
	}

	dead, err := x.graph.IsDeadEnd(room)
	if err != nil {
		return err
	}
	if !dead {
		x.stats.Walks++
		if err = x.walkTo(log, room); err != nil {
			return err
		}

		return x.exploreHere(log)
	}

	escape, err := search.EscapeDeadEnd(x.graph, room)
	if err != nil {
		return err
	}
	if !escape.Found() {
		log.V(1).Info("nothing left to explore from dead end", "room", room)
		return nil
	}
	if err = x.walkTo(log, room); err != nil {
		return err
	}
	x.stats.Escapes++
	frontier, _ := escape.End()
	log.V(1).Info("escaping dead end", "room", room, "frontier", frontier, "moves", len(escape)-1)
	if err = x.walk(log, escape.Directions(), frontier); err != nil {
		return err
	}

	return x.exploreHere(log)
}

// exploreHere probes every unresolved exit of the agent's current room.
func (x *Explorer) exploreHere(log logr.Logger) error {
	here := x.agent.CurrentRoom()
	exits := x.agent.Exits()

	for _, d := range exits {
		if edge, ok := x.graph.Edge(here, d); ok && edge.IsKnown() {
			continue
		}

		if err := x.step(log, d); err != nil {
			return err
		}
		x.stats.Probes++
		next := x.agent.CurrentRoom()
		if err := x.graph.Connect(d, here, next); err != nil {
			return err
		}
		back := d.Opposite()
		if err := x.seedUnknown(next, back); err != nil {
			return err
		}
		dead, err := x.graph.IsDeadEnd(next)
		if err != nil {
			return err
		}
		if !dead {
			x.pending.Push(next)
		}

		if err = x.step(log, back); err != nil {
			return err
		}
		if now := x.agent.CurrentRoom(); now != here {
			return fmt.Errorf("%w: %s then %s from room %s ended in %s", ErrInconsistentWorld, d, back, here, now)
		}
	}

	return nil
}

// seedUnknown marks every exit of the agent's current room, except skip,
// that has no edge yet as Unknown.
func (x *Explorer) seedUnknown(room mazegraph.RoomID, skip mazegraph.Direction) error {
	known := x.graph.Neighbors(room)
	for _, d := range x.agent.Exits() {
		if d == skip || known.Has(d) {
			continue
		}
		if err := x.graph.MarkUnknown(d, room); err != nil {
			return err
		}
	}

	return nil
}

// walkTo moves the agent to target along the shortest confirmed path.
func (x *Explorer) walkTo(log logr.Logger, target mazegraph.RoomID) error {
	here := x.agent.CurrentRoom()
	if here == target {
		return nil
	}
	p, err := search.BFS(x.graph, here, target)
	if err != nil {
		return err
	}
	if !p.Found() {
		return fmt.Errorf("%w: %s → %s", ErrUnreachable, here, target)
	}
	log.V(1).Info("walking", "from", here, "to", target, "moves", len(p)-1)

	return x.walk(log, p.Directions(), target)
}

// walk replays moves and checks that the agent ends up in target.
func (x *Explorer) walk(log logr.Logger, moves []mazegraph.Direction, target mazegraph.RoomID) error {
	for _, d := range moves {
		if err := x.step(log, d); err != nil {
			return err
		}
	}
	if now := x.agent.CurrentRoom(); now != target {
		return fmt.Errorf("%w: walk to %s ended in %s", ErrInconsistentWorld, target, now)
	}

	return nil
}

// step makes one move and records it.
func (x *Explorer) step(log logr.Logger, d mazegraph.Direction) error {
	if x.budget > 0 && len(x.moves) >= x.budget {
		return fmt.Errorf("%w: %d moves", ErrMoveBudgetExceeded, x.budget)
	}
	from := x.agent.CurrentRoom()
	if err := x.agent.Travel(d); err != nil {
		return fmt.Errorf("explore: travel %s from room %s: %w", d, from, err)
	}
	x.moves = append(x.moves, d)
	log.V(2).Info("move", "dir", d.String(), "from", from, "to", x.agent.CurrentRoom())

	return nil
}

// Graph returns the graph of the last session.
func (x *Explorer) Graph() *mazegraph.Graph { return x.graph }

// Session returns the id of the last session, empty before the first one.
func (x *Explorer) Session() string { return x.session }

// Stats returns the counters of the last session.
func (x *Explorer) Stats() Stats { return x.stats }

// ShortestPath returns the moves from → to over confirmed edges of the
// current graph. Empty means already there or no known path.
func (x *Explorer) ShortestPath(from, to mazegraph.RoomID) ([]mazegraph.Direction, error) {
	return search.ShortestPath(x.graph, from, to)
}

// EscapeNearestOpenRoom returns the moves from from to the nearest room that
// still has an Unknown exit.
func (x *Explorer) EscapeNearestOpenRoom(from mazegraph.RoomID) ([]mazegraph.Direction, error) {
	return search.EscapeNearestOpenRoom(x.graph, from)
}

// Neighbors returns the exits recorded for id.
func (x *Explorer) Neighbors(id mazegraph.RoomID) mazegraph.EdgeMap {
	return x.graph.Neighbors(id)
}

// IsDeadEnd reports whether id has no Unknown exit left.
// It fails with mazegraph.ErrRoomNotFound for a room never seen.
func (x *Explorer) IsDeadEnd(id mazegraph.RoomID) (bool, error) {
	return x.graph.IsDeadEnd(id)
}
