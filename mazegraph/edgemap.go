// File: edgemap.go
// Role: Insertion-ordered Direction → Edge mapping for a single room.
//
// Determinism:
//   - Exits() and Directions() iterate in first-insertion order; overwriting a
//     direction keeps its original position. Search tie-breaks rely on this.
package mazegraph

import "strings"

// Exit pairs a direction with the edge stored for it.
type Exit struct {
	Dir  Direction
	Edge Edge
}

// EdgeMap maps directions to edges, remembering the order in which directions
// were first added. A room has at most four entries, so a slice scan beats a
// map here. The zero value is an empty map.
type EdgeMap struct {
	exits []Exit
}

// Get returns the edge stored for d.
func (m EdgeMap) Get(d Direction) (Edge, bool) {
	for _, x := range m.exits {
		if x.Dir == d {
			return x.Edge, true
		}
	}

	return Edge{}, false
}

// Has reports whether any edge, Known or Unknown, is stored for d.
func (m EdgeMap) Has(d Direction) bool {
	_, ok := m.Get(d)

	return ok
}

// Len reports the number of stored directions.
func (m EdgeMap) Len() int { return len(m.exits) }

// Exits returns a copy of the entries in insertion order.
func (m EdgeMap) Exits() []Exit {
	out := make([]Exit, len(m.exits))
	copy(out, m.exits)

	return out
}

// Directions returns the stored directions in insertion order.
func (m EdgeMap) Directions() []Direction {
	out := make([]Direction, len(m.exits))
	for i, x := range m.exits {
		out[i] = x.Dir
	}

	return out
}

// HasUnknown reports whether at least one entry is a placeholder.
func (m EdgeMap) HasUnknown() bool {
	for _, x := range m.exits {
		if !x.Edge.IsKnown() {
			return true
		}
	}

	return false
}

// String renders the map as "{n:3 e:?}".
func (m EdgeMap) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, x := range m.exits {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(x.Dir.String())
		b.WriteByte(':')
		b.WriteString(x.Edge.String())
	}
	b.WriteByte('}')

	return b.String()
}

// set stores e for d, last write wins.
func (m *EdgeMap) set(d Direction, e Edge) {
	for i := range m.exits {
		if m.exits[i].Dir == d {
			m.exits[i].Edge = e
			return
		}
	}
	m.exits = append(m.exits, Exit{Dir: d, Edge: e})
}

// clone returns a copy that shares no backing array with m.
func (m EdgeMap) clone() EdgeMap {
	return EdgeMap{exits: m.Exits()}
}
