package world

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazewalk/mazegraph"
)

// GridSpec describes a generated maze.
type GridSpec struct {
	Width, Height int
	// Loops is the number of extra passages opened after the maze is carved.
	// 0 yields a perfect maze (exactly one route between any two rooms).
	Loops int
	Seed  int64
}

// offsets maps each direction to its grid delta; y grows southwards.
var offsets = map[mazegraph.Direction][2]int{
	mazegraph.North: {0, -1},
	mazegraph.South: {0, 1},
	mazegraph.East:  {1, 0},
	mazegraph.West:  {-1, 0},
}

// Generate carves a Width×Height grid maze with Wilson's algorithm (loop-erased
// random walks), so every room is reachable and the maze is uniform over all
// spanning trees of the grid. Room ids are y*Width + x and the start is room 0.
// The same spec always yields the same world.
func Generate(spec GridSpec) (*World, error) {
	if spec.Width < 1 || spec.Height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, spec.Width, spec.Height)
	}
	rng := rand.New(rand.NewSource(spec.Seed))
	g := &grid{w: spec.Width, h: spec.Height, rng: rng, world: New(0)}

	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if _, err := g.world.AddRoom(g.id(x, y), x, y); err != nil {
				return nil, err
			}
		}
	}

	total := g.w * g.h
	inMaze := make([]bool, total)
	inMaze[rng.Intn(total)] = true
	remaining := total - 1

	for remaining > 0 {
		start := g.randomOutside(inMaze)
		// random walk until the maze is hit, remembering the last exit taken
		// from every cell; revisiting a cell overwrites it, which erases loops
		exit := map[int]mazegraph.Direction{}
		for cell := start; !inMaze[cell]; {
			d, next := g.randomStep(cell)
			exit[cell] = d
			cell = next
		}
		// carve the loop-erased path
		for cell := start; !inMaze[cell]; {
			d := exit[cell]
			next, _ := g.neighbor(cell, d)
			if err := g.world.Connect(d, mazegraph.RoomID(cell), mazegraph.RoomID(next)); err != nil {
				return nil, err
			}
			inMaze[cell] = true
			remaining--
			cell = next
		}
	}

	for i := 0; i < spec.Loops; i++ {
		g.openRandomWall()
	}

	return g.world, nil
}

type grid struct {
	w, h  int
	rng   *rand.Rand
	world *World
}

func (g *grid) id(x, y int) mazegraph.RoomID { return mazegraph.RoomID(y*g.w + x) }

func (g *grid) neighbor(cell int, d mazegraph.Direction) (int, bool) {
	off := offsets[d]
	x, y := cell%g.w+off[0], cell/g.w+off[1]
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return 0, false
	}

	return y*g.w + x, true
}

func (g *grid) randomStep(cell int) (mazegraph.Direction, int) {
	for {
		d := mazegraph.Directions[g.rng.Intn(len(mazegraph.Directions))]
		if next, ok := g.neighbor(cell, d); ok {
			return d, next
		}
	}
}

func (g *grid) randomOutside(inMaze []bool) int {
	for {
		if c := g.rng.Intn(len(inMaze)); !inMaze[c] {
			return c
		}
	}
}

// openRandomWall tries a bounded number of times to open a wall between two
// adjacent rooms that are not yet connected.
func (g *grid) openRandomWall() {
	if g.w*g.h < 2 {
		return
	}
	for attempt := 0; attempt < 64; attempt++ {
		cell := g.rng.Intn(g.w * g.h)
		d := mazegraph.Directions[g.rng.Intn(len(mazegraph.Directions))]
		next, ok := g.neighbor(cell, d)
		if !ok {
			continue
		}
		room := g.world.rooms[mazegraph.RoomID(cell)]
		if _, open := room.exits[d]; open {
			continue
		}
		_ = g.world.Connect(d, mazegraph.RoomID(cell), mazegraph.RoomID(next))
		return
	}
}
