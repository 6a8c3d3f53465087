// File: types.go
// Role: Room identity, direction enumeration, the Known/Unknown edge variant and sentinel errors.
//
// Determinism:
//   - Directions enumerates the four real directions in a fixed order (n, s, e, w).
package mazegraph

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for graph store operations.
var (
	// ErrRoomNotFound is the lookup error raised when a query needs a room
	// that was never registered in the graph.
	ErrRoomNotFound = errors.New("mazegraph: room not found")

	// ErrInvalidDirection indicates a Direction outside {North, South, East, West}.
	ErrInvalidDirection = errors.New("mazegraph: invalid direction")
)

// RoomID identifies a room. Identities are created by the world model and
// never mutated by the graph.
type RoomID int

// String renders the identity as a plain decimal number.
func (id RoomID) String() string { return strconv.Itoa(int(id)) }

// Direction is one of the four compass directions. The zero value None marks
// the absent incoming direction of the first step of a path.
type Direction uint8

const (
	None Direction = iota
	North
	South
	East
	West
)

// Directions lists the four real directions in canonical order.
var Directions = [4]Direction{North, South, East, West}

// Opposite returns the direction leading back. It is total: None maps to None
// and so does any out-of-range value.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return None
	}
}

// Valid reports whether d is one of the four real directions.
func (d Direction) Valid() bool { return d >= North && d <= West }

// String returns the one-letter form used by world files and move logs.
func (d Direction) String() string {
	switch d {
	case North:
		return "n"
	case South:
		return "s"
	case East:
		return "e"
	case West:
		return "w"
	case None:
		return "-"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// ParseDirection accepts the one-letter forms ("n") and full names ("north").
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "n", "N", "north", "North":
		return North, nil
	case "s", "S", "south", "South":
		return South, nil
	case "e", "E", "east", "East":
		return East, nil
	case "w", "W", "west", "West":
		return West, nil
	}

	return None, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, uint8(d))
	}

	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so directions can be map
// keys in YAML/JSON documents.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}

// Edge is the value stored for one exit of a room: either a confirmed
// neighbor (Known) or a placeholder for an exit whose destination has not
// been discovered yet (Unknown). The zero value is Unknown.
type Edge struct {
	to    RoomID
	known bool
}

// Known returns a confirmed edge leading to id.
func Known(id RoomID) Edge { return Edge{to: id, known: true} }

// Unknown returns a placeholder edge.
func Unknown() Edge { return Edge{} }

// IsKnown reports whether the edge leads to a confirmed room.
func (e Edge) IsKnown() bool { return e.known }

// Room returns the destination and true for a Known edge, or (0, false).
func (e Edge) Room() (RoomID, bool) {
	if !e.known {
		return 0, false
	}

	return e.to, true
}

// String renders a Known edge as its room id and an Unknown edge as "?".
func (e Edge) String() string {
	if !e.known {
		return "?"
	}

	return e.to.String()
}
