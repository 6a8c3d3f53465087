// Package mazewalk maps an unknown maze by walking it.
//
// An agent sees only the room it stands in and that room's exits. mazewalk
// records every passage the agent walks through in a direction-labelled graph,
// keeps Unknown placeholders for exits it has seen but not taken, and uses
// breadth-first search to route between known rooms and out of fully explored
// territory.
//
// Layout:
//
//	worklist/  : generic FIFO queue and LIFO stack
//	mazegraph/ : RoomID, Direction, Edge (Known/Unknown), EdgeMap, Graph
//	search/    : BFS shortest path, DFS, escape search, traversal orders
//	explore/   : Agent capability and the Explorer session driver
//	world/     : map loader, grid maze generator, Player agent, Verify
//	config/    : environment and .env configuration for the command
//	cmd/       : the mazewalk command
//
// Quick ASCII example:
//
//	    1 ─e─ 2
//	          │n
//	          3
//
//	explored from room 1, the agent walks e w e n s and the map is complete.
//
//	go run ./cmd/mazewalk
package mazewalk
