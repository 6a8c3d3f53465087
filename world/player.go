package world

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/mazegraph"
)

// Player walks through a World. It satisfies explore.Agent.
type Player struct {
	world   *World
	current *Room
	moves   int
}

// NewPlayer places a player in the world's start room.
func NewPlayer(w *World) (*Player, error) {
	r, ok := w.rooms[w.start]
	if !ok {
		return nil, fmt.Errorf("%w: start room %s", ErrNoRoom, w.start)
	}

	return &Player{world: w, current: r}, nil
}

// CurrentRoom returns the id of the room the player stands in.
func (p *Player) CurrentRoom() mazegraph.RoomID { return p.current.id }

// Room returns the room the player stands in.
func (p *Player) Room() *Room { return p.current }

// Exits lists the exits of the current room.
func (p *Player) Exits() []mazegraph.Direction { return p.current.Exits() }

// Travel moves the player through exit d. The player stays put on error.
func (p *Player) Travel(d mazegraph.Direction) error {
	to, ok := p.current.exits[d]
	if !ok {
		return fmt.Errorf("%w: room %s has no %s exit", ErrNoExit, p.current.id, d)
	}
	next, ok := p.world.rooms[to]
	if !ok {
		return fmt.Errorf("%w: room %s exit %s leads to %s", ErrNoRoom, p.current.id, d, to)
	}
	p.current = next
	p.moves++

	return nil
}

// Moves reports how many successful moves the player made.
func (p *Player) Moves() int { return p.moves }
