package search_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazewalk/mazegraph"
	"github.com/katalvlaran/mazewalk/search"
)

const (
	n = mazegraph.North
	s = mazegraph.South
	e = mazegraph.East
	w = mazegraph.West
)

// sevenRooms builds the classic seven-room directed fixture. Room 7 is given
// two east edges; the second (to 6) overwrites the first (to 1).
func sevenRooms(t *testing.T) *mazegraph.Graph {
	t.Helper()
	g := mazegraph.NewGraph()
	for id := mazegraph.RoomID(1); id <= 7; id++ {
		g.AddVertex(id)
	}
	edges := []struct {
		d        mazegraph.Direction
		from, to mazegraph.RoomID
	}{
		{n, 5, 3}, {s, 6, 3}, {e, 7, 1}, {w, 4, 7}, {e, 1, 2},
		{e, 7, 6}, {w, 2, 4}, {s, 3, 5}, {n, 2, 3}, {n, 4, 6},
	}
	for _, ed := range edges {
		require.NoError(t, g.Link(ed.d, ed.from, ed.to))
	}

	return g
}

// gridGraph builds a fully connected rows×cols grid with id = y*cols + x.
func gridGraph(t *testing.T, rows, cols int) *mazegraph.Graph {
	t.Helper()
	g := mazegraph.NewGraph()
	id := func(x, y int) mazegraph.RoomID { return mazegraph.RoomID(y*cols + x) }
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			g.AddVertex(id(x, y))
			if x+1 < cols {
				require.NoError(t, g.Connect(e, id(x, y), id(x+1, y)))
			}
			if y+1 < rows {
				require.NoError(t, g.Connect(s, id(x, y), id(x, y+1)))
			}
		}
	}

	return g
}

// replay follows moves from start over Known edges and returns the final room.
func replay(t *testing.T, g *mazegraph.Graph, start mazegraph.RoomID, moves []mazegraph.Direction) mazegraph.RoomID {
	t.Helper()
	cur := start
	for i, d := range moves {
		edge, ok := g.Edge(cur, d)
		require.True(t, ok, "move %d (%s) from room %s has no edge", i, d, cur)
		next, known := edge.Room()
		require.True(t, known, "move %d (%s) from room %s walks into a placeholder", i, d, cur)
		cur = next
	}

	return cur
}

func TestShortestPath_SevenRooms(t *testing.T) {
	g := sevenRooms(t)

	got, err := search.ShortestPath(g, 1, 6)
	require.NoError(t, err)
	assert.Equal(t, []mazegraph.Direction{e, w, n}, got)

	p, err := search.BFS(g, 1, 6)
	require.NoError(t, err)
	assert.Equal(t, []mazegraph.RoomID{1, 2, 4, 6}, p.Rooms())
	assert.Equal(t, mazegraph.None, p[0].Via, "first step has no incoming direction")
}

func TestShortestPath_SameRoom(t *testing.T) {
	g := sevenRooms(t)
	got, err := search.ShortestPath(g, 4, 4)
	require.NoError(t, err)
	assert.Empty(t, got)

	p, err := search.BFS(g, 4, 4)
	require.NoError(t, err)
	assert.True(t, p.Found())
	end, ok := p.End()
	require.True(t, ok)
	assert.Equal(t, mazegraph.RoomID(4), end)
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := sevenRooms(t)
	// 6 → 3 → 5 → 3 … never reaches 1
	p, err := search.BFS(g, 6, 1)
	require.NoError(t, err)
	assert.False(t, p.Found())
	assert.Empty(t, p.Directions())

	_, ok := p.End()
	assert.False(t, ok)
}

func TestShortestPath_IgnoresPlaceholders(t *testing.T) {
	g := mazegraph.NewGraph()
	require.NoError(t, g.MarkUnknown(n, 1))
	require.NoError(t, g.Connect(e, 1, 2))
	require.NoError(t, g.Connect(n, 2, 3))

	// an Unknown edge must never be walked, even though it is stored first
	got, err := search.ShortestPath(g, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []mazegraph.Direction{e, n}, got)
}

func TestShortestPath_GridIsMinimal(t *testing.T) {
	const rows, cols = 5, 6
	g := gridGraph(t, rows, cols)
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}

	for from := 0; from < rows*cols; from += 7 {
		for to := 0; to < rows*cols; to++ {
			got, err := search.ShortestPath(g, mazegraph.RoomID(from), mazegraph.RoomID(to))
			require.NoError(t, err)
			manhattan := abs(from%cols-to%cols) + abs(from/cols-to/cols)
			require.Len(t, got, manhattan, "path %d → %d", from, to)
			assert.Equal(t, mazegraph.RoomID(to), replay(t, g, mazegraph.RoomID(from), got))
		}
	}
}

func TestBFS_Errors(t *testing.T) {
	_, err := search.BFS(nil, 1, 2)
	assert.ErrorIs(t, err, search.ErrGraphNil)

	g := sevenRooms(t)
	_, err = search.BFS(g, 1, 6, search.WithMaxDepth(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	boom := errors.New("boom")
	_, err = search.BFS(g, 1, 6, search.WithOnVisit(func(id mazegraph.RoomID, _ int) error {
		if id == 4 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := sevenRooms(t)

	p, err := search.BFS(g, 1, 6, search.WithMaxDepth(2))
	require.NoError(t, err)
	assert.False(t, p.Found(), "room 6 is three moves away")

	p, err = search.BFS(g, 1, 6, search.WithMaxDepth(3))
	require.NoError(t, err)
	assert.True(t, p.Found())
}

func TestBFS_OnVisitDepths(t *testing.T) {
	g := sevenRooms(t)
	depths := map[mazegraph.RoomID]int{}
	_, err := search.BFS(g, 1, 5, search.WithOnVisit(func(id mazegraph.RoomID, d int) error {
		depths[id] = d
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, 0, depths[1])
	assert.Equal(t, 1, depths[2])
	assert.Equal(t, 2, depths[4])
	assert.Equal(t, 2, depths[3])
	assert.Equal(t, 3, depths[5])
}

func TestDFS_FindsAPath(t *testing.T) {
	g := sevenRooms(t)
	p, err := search.DFS(g, 1, 6)
	require.NoError(t, err)
	require.True(t, p.Found())
	assert.Equal(t, mazegraph.RoomID(1), p[0].Room)
	assert.Equal(t, mazegraph.RoomID(6), replay(t, g, 1, p.Directions()))
	assert.Equal(t, []mazegraph.RoomID{1, 2, 4, 6}, p.Rooms())

	p, err = search.DFS(g, 6, 1)
	require.NoError(t, err)
	assert.False(t, p.Found())

	_, err = search.DFS(nil, 1, 1)
	assert.ErrorIs(t, err, search.ErrGraphNil)
}

func TestTraversalOrders(t *testing.T) {
	g := sevenRooms(t)

	bft, err := search.BreadthFirstOrder(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []mazegraph.RoomID{1, 2, 4, 3, 7, 6, 5}, bft)

	dft, err := search.DepthFirstOrder(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []mazegraph.RoomID{1, 2, 4, 7, 6, 3, 5}, dft)

	shallow, err := search.DepthFirstOrder(g, 1, search.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []mazegraph.RoomID{1, 2}, shallow)

	lonely, err := search.BreadthFirstOrder(g, 99)
	require.NoError(t, err)
	assert.Equal(t, []mazegraph.RoomID{99}, lonely)
}

func TestEscape_NearestFrontier(t *testing.T) {
	// 1 -e- 2 -e- 3 -e- 4, plus 1 -s- 5 -s- 6
	g := mazegraph.NewGraph()
	require.NoError(t, g.Connect(e, 1, 2))
	require.NoError(t, g.Connect(e, 2, 3))
	require.NoError(t, g.Connect(e, 3, 4))
	require.NoError(t, g.Connect(s, 1, 5))
	require.NoError(t, g.Connect(s, 5, 6))
	require.NoError(t, g.MarkUnknown(n, 4))
	require.NoError(t, g.MarkUnknown(w, 6))

	got, err := search.EscapeNearestOpenRoom(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []mazegraph.Direction{e, e}, got)

	got, err = search.EscapeNearestOpenRoom(g, 5)
	require.NoError(t, err)
	assert.Equal(t, []mazegraph.Direction{s}, got)

	// property: the landing room is open and no shorter walk reaches one
	for _, start := range g.Rooms() {
		moves, err := search.EscapeNearestOpenRoom(g, start)
		require.NoError(t, err)
		end := replay(t, g, start, moves)
		dead, err := g.IsDeadEnd(end)
		require.NoError(t, err)
		assert.False(t, dead, "escape from %s landed on dead end %s", start, end)

		for _, open := range g.Frontier() {
			other, err := search.ShortestPath(g, start, open)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(other), len(moves), "room %s is closer to %s", open, start)
		}
	}
}

func TestEscape_AlreadyOpenAndFullyExplored(t *testing.T) {
	g := mazegraph.NewGraph()
	require.NoError(t, g.Connect(e, 1, 2))
	require.NoError(t, g.MarkUnknown(n, 1))

	p, err := search.EscapeDeadEnd(g, 1)
	require.NoError(t, err)
	assert.True(t, p.Found())
	assert.Empty(t, p.Directions())

	require.NoError(t, g.Link(n, 1, 2))
	p, err = search.EscapeDeadEnd(g, 2)
	require.NoError(t, err)
	assert.False(t, p.Found(), "fully explored region has no frontier")

	_, err = search.EscapeNearestOpenRoom(g, 77)
	assert.ErrorIs(t, err, mazegraph.ErrRoomNotFound)
}

func ExampleShortestPath() {
	g := mazegraph.NewGraph()
	_ = g.Connect(mazegraph.East, 1, 2)
	_ = g.Connect(mazegraph.North, 2, 3)
	_ = g.Connect(mazegraph.West, 3, 4)

	moves, err := search.ShortestPath(g, 1, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(moves)
	// Output:
	// [e n w]
}

func ExampleEscapeNearestOpenRoom() {
	g := mazegraph.NewGraph()
	_ = g.Connect(mazegraph.South, 1, 2)
	_ = g.Connect(mazegraph.East, 2, 3)
	_ = g.MarkUnknown(mazegraph.North, 3)

	moves, _ := search.EscapeNearestOpenRoom(g, 1)
	fmt.Println(moves)
	// Output:
	// [s e]
}
