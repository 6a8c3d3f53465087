package search

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/mazegraph"
	"github.com/katalvlaran/mazewalk/worklist"
)

// DFS returns some walk from → to over Known edges, found depth-first with an
// explicit stack. The walk is not necessarily the shortest; use BFS for that.
// Rooms are marked when pushed, so each room is entered at most once.
//
// Errors: ErrGraphNil, ErrOptionViolation, or a wrapped OnVisit error.
func DFS(g *mazegraph.Graph, from, to mazegraph.RoomID, opts ...Option) (Path, error) {
	o, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}

	stack := worklist.NewStack[Path](g.Len())
	visited := map[mazegraph.RoomID]bool{from: true}
	stack.Push(Path{{Via: mazegraph.None, Room: from}})

	for !stack.Empty() {
		cur, _ := stack.Pop()
		id := cur[len(cur)-1].Room
		depth := len(cur) - 1

		if err = o.OnVisit(id, depth); err != nil {
			return nil, fmt.Errorf("search: OnVisit error at room %s: %w", id, err)
		}
		if id == to {
			return cur, nil
		}
		if o.MaxDepth > 0 && depth >= o.MaxDepth {
			continue
		}

		for _, x := range g.Neighbors(id).Exits() {
			next, ok := x.Edge.Room()
			if !ok || visited[next] {
				continue
			}
			visited[next] = true
			stack.Push(cur.extend(x.Dir, next))
		}
	}

	return Path{}, nil
}

// stackItem is a room waiting on the depth-first stack.
type stackItem struct {
	id    mazegraph.RoomID
	depth int
}

// DepthFirstOrder lists the rooms reachable from start over Known edges in
// pre-order, descending into exits in EdgeMap insertion order. It produces
// the same order as the natural recursive traversal without recursing.
func DepthFirstOrder(g *mazegraph.Graph, start mazegraph.RoomID, opts ...Option) ([]mazegraph.RoomID, error) {
	o, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}

	var order []mazegraph.RoomID
	visited := make(map[mazegraph.RoomID]bool, g.Len())
	stack := worklist.NewStack[stackItem](g.Len())
	stack.Push(stackItem{id: start})

	for !stack.Empty() {
		it, _ := stack.Pop()
		if visited[it.id] {
			continue
		}
		visited[it.id] = true
		order = append(order, it.id)
		if err = o.OnVisit(it.id, it.depth); err != nil {
			return order, fmt.Errorf("search: OnVisit error at room %s: %w", it.id, err)
		}
		if o.MaxDepth > 0 && it.depth >= o.MaxDepth {
			continue
		}

		// push in reverse so the first exit is explored first
		exits := g.Neighbors(it.id).Exits()
		for i := len(exits) - 1; i >= 0; i-- {
			next, ok := exits[i].Edge.Room()
			if ok && !visited[next] {
				stack.Push(stackItem{id: next, depth: it.depth + 1})
			}
		}
	}

	return order, nil
}
