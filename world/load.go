package world

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazewalk/mazegraph"
)

// mapDoc is the on-disk layout of a world map. JSON documents use the same
// keys, since every JSON document is valid YAML.
//
//	start: 0
//	rooms:
//	  - id: 0
//	    x: 3
//	    y: 5
//	    exits: {n: 1, e: 2}
type mapDoc struct {
	Start int       `yaml:"start"`
	Rooms []roomDoc `yaml:"rooms"`
}

type roomDoc struct {
	ID    int            `yaml:"id"`
	X     int            `yaml:"x"`
	Y     int            `yaml:"y"`
	Exits map[string]int `yaml:"exits"`
}

// Load reads a YAML or JSON map and validates it. Exits are taken as written
// (one direction each), so Validate catches one-way passages.
func Load(r io.Reader) (*World, error) {
	var doc mapDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("world: decode map: %w", err)
	}

	w := New(mazegraph.RoomID(doc.Start))
	var err error
	for _, rd := range doc.Rooms {
		if _, addErr := w.AddRoom(mazegraph.RoomID(rd.ID), rd.X, rd.Y); addErr != nil {
			err = multierr.Append(err, addErr)
		}
	}
	for _, rd := range doc.Rooms {
		room := w.rooms[mazegraph.RoomID(rd.ID)]
		for key, to := range rd.Exits {
			d, parseErr := mazegraph.ParseDirection(key)
			if parseErr != nil {
				err = multierr.Append(err, fmt.Errorf("world: room %d: %w", rd.ID, parseErr))
				continue
			}
			room.exits[d] = mazegraph.RoomID(to)
		}
	}
	if err != nil {
		return nil, err
	}
	if err = w.Validate(); err != nil {
		return nil, err
	}

	return w, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	defer f.Close()

	return Load(f)
}
