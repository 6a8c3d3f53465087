package explore_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazewalk/explore"
	"github.com/katalvlaran/mazewalk/mazegraph"
	"github.com/katalvlaran/mazewalk/world"
)

const (
	n = mazegraph.North
	s = mazegraph.South
	e = mazegraph.East
	w = mazegraph.West
)

// corridor: 1 -e- 2 -n- 3
func corridor(t *testing.T) *world.World {
	t.Helper()
	wd := world.New(1)
	for id := mazegraph.RoomID(1); id <= 3; id++ {
		_, err := wd.AddRoom(id, int(id), 0)
		require.NoError(t, err)
	}
	require.NoError(t, wd.Connect(e, 1, 2))
	require.NoError(t, wd.Connect(n, 2, 3))

	return wd
}

// detour builds a world where a pending room gets fully resolved before it
// is popped, forcing an escape:
//
//	1 -n- 2 -n- 5
//	1 -s- 3
//	1 -e- 4
//	3 -s- 4
func detour(t *testing.T) *world.World {
	t.Helper()
	wd := world.New(1)
	for id := mazegraph.RoomID(1); id <= 5; id++ {
		_, err := wd.AddRoom(id, 0, 0)
		require.NoError(t, err)
	}
	require.NoError(t, wd.Connect(n, 1, 2))
	require.NoError(t, wd.Connect(s, 1, 3))
	require.NoError(t, wd.Connect(e, 1, 4))
	require.NoError(t, wd.Connect(s, 3, 4))
	require.NoError(t, wd.Connect(n, 2, 5))

	return wd
}

func newPlayer(t *testing.T, wd *world.World) *world.Player {
	t.Helper()
	p, err := world.NewPlayer(wd)
	require.NoError(t, err)

	return p
}

// replay walks moves through a fresh player and returns where it ends.
func replay(t *testing.T, wd *world.World, moves []mazegraph.Direction) mazegraph.RoomID {
	t.Helper()
	p := newPlayer(t, wd)
	for i, d := range moves {
		require.NoError(t, p.Travel(d), "move %d", i)
	}

	return p.CurrentRoom()
}

func TestExplore_Corridor(t *testing.T) {
	wd := corridor(t)
	p := newPlayer(t, wd)
	x := explore.New()

	moves, err := x.Explore(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, []mazegraph.Direction{e, w, e, n, s}, moves)
	assert.Equal(t, len(moves), p.Moves(), "every recorded move is a real move")
	assert.NoError(t, wd.Verify(x.Graph()))
	assert.NotEmpty(t, x.Session())

	st := x.Stats()
	assert.Equal(t, 3, st.Rooms)
	assert.Equal(t, 5, st.Moves)
	assert.Equal(t, 2, st.Probes)
	assert.Equal(t, 1, st.Walks)
	assert.Equal(t, 0, st.Escapes)

	path, err := x.ShortestPath(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []mazegraph.Direction{e, n}, path)

	out, err := x.EscapeNearestOpenRoom(3)
	require.NoError(t, err)
	assert.Empty(t, out, "fully explored region has no frontier")

	nb := x.Neighbors(2)
	assert.Equal(t, []mazegraph.Direction{w, n}, nb.Directions())

	dead, err := x.IsDeadEnd(2)
	require.NoError(t, err)
	assert.True(t, dead)
	_, err = x.IsDeadEnd(99)
	assert.ErrorIs(t, err, mazegraph.ErrRoomNotFound)
}

func TestExplore_EscapesFromResolvedRoom(t *testing.T) {
	wd := detour(t)
	p := newPlayer(t, wd)
	x := explore.New()

	moves, err := x.Explore(context.Background(), p)
	require.NoError(t, err)

	want := []mazegraph.Direction{
		n, s, s, n, e, w, // probe every exit of room 1
		e, n, s, // walk to 4, probe its north exit into 3
		n,    // 3 is resolved: walk there
		n, n, // escape to 2, the nearest room with an unknown exit
		n, s, // probe 2's north exit
	}
	assert.Equal(t, want, moves)
	assert.Equal(t, 1, x.Stats().Escapes)
	assert.NoError(t, wd.Verify(x.Graph()))
	assert.Equal(t, 0, x.Graph().UnknownCount())
	assert.Equal(t, mazegraph.RoomID(2), p.CurrentRoom())
}

func TestExplore_GeneratedMazes(t *testing.T) {
	for _, spec := range []world.GridSpec{
		{Width: 1, Height: 1},
		{Width: 5, Height: 1, Seed: 3},
		{Width: 6, Height: 6, Seed: 1},
		{Width: 9, Height: 7, Seed: 7, Loops: 12},
		{Width: 15, Height: 15, Seed: 2024, Loops: 40},
	} {
		spec := spec
		t.Run(fmt.Sprintf("%dx%d_seed%d_loops%d", spec.Width, spec.Height, spec.Seed, spec.Loops), func(t *testing.T) {
			wd, err := world.Generate(spec)
			require.NoError(t, err)
			p := newPlayer(t, wd)
			x := explore.New()

			moves, err := x.Explore(context.Background(), p)
			require.NoError(t, err)

			g := x.Graph()
			assert.Equal(t, wd.Len(), g.Len(), "every room is mapped")
			assert.Empty(t, g.Frontier(), "no placeholder survives a session")
			assert.NoError(t, wd.Verify(g))
			assert.Equal(t, p.CurrentRoom(), replay(t, wd, moves))

			// every confirmed shortest path replays to its target
			for _, to := range g.Rooms() {
				path, err := x.ShortestPath(wd.Start(), to)
				require.NoError(t, err)
				assert.Equal(t, to, replay(t, wd, path))
			}
		})
	}
}

func TestExplore_MoveBudget(t *testing.T) {
	wd := corridor(t)
	x := explore.New(explore.WithMoveBudget(3))

	moves, err := x.Explore(context.Background(), newPlayer(t, wd))
	assert.ErrorIs(t, err, explore.ErrMoveBudgetExceeded)
	assert.Len(t, moves, 3)

	unlimited := explore.New(explore.WithMoveBudget(-1))
	_, err = unlimited.Explore(context.Background(), newPlayer(t, wd))
	assert.NoError(t, err)
}

func TestExplore_InvalidInput(t *testing.T) {
	x := explore.New()
	_, err := x.Explore(context.Background(), nil)
	assert.ErrorIs(t, err, explore.ErrAgentNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	moves, err := x.Explore(ctx, newPlayer(t, corridor(t)))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, moves)
}

// fakeAgent walks an arbitrary, possibly inconsistent, exit table.
type fakeAgent struct {
	at    mazegraph.RoomID
	exits map[mazegraph.RoomID]map[mazegraph.Direction]mazegraph.RoomID
	err   error
}

func (f *fakeAgent) CurrentRoom() mazegraph.RoomID { return f.at }

func (f *fakeAgent) Exits() []mazegraph.Direction {
	var out []mazegraph.Direction
	for _, d := range mazegraph.Directions {
		if _, ok := f.exits[f.at][d]; ok {
			out = append(out, d)
		}
	}

	return out
}

func (f *fakeAgent) Travel(d mazegraph.Direction) error {
	if f.err != nil {
		return f.err
	}
	f.at = f.exits[f.at][d]

	return nil
}

func TestExplore_InconsistentWorld(t *testing.T) {
	// 1 -e-> 2, but 2 -w-> 3
	agent := &fakeAgent{
		at: 1,
		exits: map[mazegraph.RoomID]map[mazegraph.Direction]mazegraph.RoomID{
			1: {e: 2},
			2: {w: 3},
			3: {e: 2},
		},
	}
	moves, err := explore.New().Explore(context.Background(), agent)
	assert.ErrorIs(t, err, explore.ErrInconsistentWorld)
	assert.Equal(t, []mazegraph.Direction{e, w}, moves)
}

func TestExplore_TravelFailure(t *testing.T) {
	blocked := errors.New("door is locked")
	agent := &fakeAgent{
		at:    1,
		exits: map[mazegraph.RoomID]map[mazegraph.Direction]mazegraph.RoomID{1: {s: 2}, 2: {n: 1}},
		err:   blocked,
	}
	moves, err := explore.New().Explore(context.Background(), agent)
	assert.ErrorIs(t, err, blocked)
	assert.Empty(t, moves)
}

func TestExplore_SessionsAreIndependent(t *testing.T) {
	x := explore.New()
	_, err := x.Explore(context.Background(), newPlayer(t, corridor(t)))
	require.NoError(t, err)
	first, firstGraph := x.Session(), x.Graph()

	_, err = x.Explore(context.Background(), newPlayer(t, detour(t)))
	require.NoError(t, err)
	assert.NotEqual(t, first, x.Session())
	assert.NotSame(t, firstGraph, x.Graph(), "each session owns a fresh graph")
	assert.Equal(t, 3, firstGraph.Len())
	assert.Equal(t, 5, x.Graph().Len())
}

func ExampleExplorer_Explore() {
	wd, _ := world.Generate(world.GridSpec{Width: 4, Height: 3, Seed: 9})
	p, _ := world.NewPlayer(wd)

	x := explore.New()
	if _, err := x.Explore(context.Background(), p); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(x.Graph().Len(), len(x.Graph().Frontier()), wd.Verify(x.Graph()))
	// Output:
	// 12 0 <nil>
}
