// Package search implements breadth-first and depth-first path searches over
// a mazegraph.Graph, plus the escape search that leads out of fully explored
// territory to the nearest frontier room.
package search

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/mazegraph"
	"github.com/katalvlaran/mazewalk/worklist"
)

// goalFunc decides whether the room at the end of a frontier path terminates the search.
type goalFunc func(id mazegraph.RoomID) (bool, error)

// walker encapsulates mutable state of one breadth-first search.
type walker struct {
	graph   *mazegraph.Graph
	opts    Options
	queue   *worklist.Queue[Path]
	visited map[mazegraph.RoomID]bool
}

func newWalker(g *mazegraph.Graph, o Options) *walker {
	n := g.Len()

	return &walker{
		graph:   g,
		opts:    o,
		queue:   worklist.NewQueue[Path](n),
		visited: make(map[mazegraph.RoomID]bool, n),
	}
}

// run expands partial paths in FIFO order until goal accepts the last room of
// one of them. Only Known edges are followed, in EdgeMap insertion order.
func (w *walker) run(start mazegraph.RoomID, goal goalFunc) (Path, error) {
	w.visited[start] = true
	w.queue.Enqueue(Path{{Via: mazegraph.None, Room: start}})

	for !w.queue.Empty() {
		cur, _ := w.queue.Dequeue()
		id := cur[len(cur)-1].Room
		depth := len(cur) - 1

		if err := w.opts.OnVisit(id, depth); err != nil {
			return nil, fmt.Errorf("search: OnVisit error at room %s: %w", id, err)
		}
		done, err := goal(id)
		if err != nil {
			return nil, err
		}
		if done {
			return cur, nil
		}
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			continue
		}

		for _, x := range w.graph.Neighbors(id).Exits() {
			next, ok := x.Edge.Room()
			if !ok || w.visited[next] {
				continue
			}
			w.visited[next] = true
			w.queue.Enqueue(cur.extend(x.Dir, next))
		}
	}

	return Path{}, nil
}

// BFS returns the shortest walk (by number of moves) from → to over Known
// edges. Among equally short walks, the one discovered first in EdgeMap
// insertion order wins, so results are reproducible for a given graph.
//
// An unreachable target yields an empty Path and a nil error. from == to
// yields a single-step path with no moves.
//
// Errors: ErrGraphNil, ErrOptionViolation, or a wrapped OnVisit error.
//
// Complexity: O(V + E) rooms and edges, O(V·L) memory for frontier paths of length L.
func BFS(g *mazegraph.Graph, from, to mazegraph.RoomID, opts ...Option) (Path, error) {
	o, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}

	return newWalker(g, o).run(from, func(id mazegraph.RoomID) (bool, error) {
		return id == to, nil
	})
}

// ShortestPath returns the moves of BFS(g, from, to). The slice is empty when
// from == to or when to is unreachable over confirmed edges.
func ShortestPath(g *mazegraph.Graph, from, to mazegraph.RoomID, opts ...Option) ([]mazegraph.Direction, error) {
	p, err := BFS(g, from, to, opts...)
	if err != nil {
		return nil, err
	}

	return p.Directions(), nil
}

// BreadthFirstOrder lists the rooms reachable from start over Known edges in
// breadth-first visit order. A start that is not registered is still visited.
func BreadthFirstOrder(g *mazegraph.Graph, start mazegraph.RoomID, opts ...Option) ([]mazegraph.RoomID, error) {
	o, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}

	var order []mazegraph.RoomID
	w := newWalker(g, o)
	_, err = w.run(start, func(id mazegraph.RoomID) (bool, error) {
		order = append(order, id)
		return false, nil
	})

	return order, err
}
