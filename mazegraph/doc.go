// Package mazegraph is the graph store of a maze explorer: a directed graph
// of rooms whose edges are labelled by compass direction.
//
// What
//
//   - RoomID:    opaque room identity supplied by the world model.
//   - Direction: North, South, East, West (plus None for "no incoming
//     direction"), each with a unique Opposite().
//   - Edge:      Known(RoomID) or Unknown(), a tagged placeholder for an exit
//     whose destination is not discovered yet.
//   - EdgeMap:   Direction → Edge for one room, kept in insertion order.
//   - Graph:     RoomID → EdgeMap, growing monotonically during a session.
//
// Edges are directed. AddEdge, Link and MarkUnknown write exactly one entry;
// Connect is the single entry point that also writes the reverse edge, and is
// what an explorer calls after physically walking through an exit.
//
// Dead ends
//
//	A room is a dead end when none of its stored edges is Unknown.
//	IsDeadEnd fails with ErrRoomNotFound for a room that was never registered,
//	it never guesses.
//
// Usage
//
//	g := mazegraph.NewGraph()
//	g.AddVertex(1)
//	_ = g.Connect(mazegraph.East, 1, 2)       // 1 -e-> 2 and 2 -w-> 1
//	_ = g.MarkUnknown(mazegraph.North, 2)     // 2 has an unexplored exit
//	dead, _ := g.IsDeadEnd(2)                 // false
//
// Complexity
//
//   - AddVertex, AddEdge, Connect, Edge, IsDeadEnd: O(1) (a room has ≤ 4 exits)
//   - Rooms, Frontier: O(V log V)
package mazegraph
