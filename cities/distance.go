// Package cities - coordinate table and Euclidean distances.
//
// Routes are modeled as open paths leaving a depot at Origin: the first leg
// runs from (0,0) to the first city, then from city to city. No closing leg
// back to the depot is added.
package cities

import (
	"fmt"
	"math"
)

// Point is an integer 2D coordinate.
type Point struct {
	X int
	Y int
}

// Origin is the fixed depot every route starts from.
var Origin = Point{}

// Table maps a city index to its coordinate. It is owned by the driver and
// treated as read-only by every consumer.
type Table [Count]Point

// Distance returns the Euclidean distance between a and b.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// PathLength sums the legs of an origin-prefixed open path over symbols.
// Unlike the fixed-size evaluator it accepts any number of symbols, which
// makes it convenient for diagnostics and partial routes. Symbols are not
// checked for repeats.
//
// Complexity: O(len(symbols)).
func PathLength(symbols []byte, table *Table, alphabet *Alphabet) (float64, error) {
	if table == nil {
		return 0, ErrNilTable
	}
	if alphabet == nil {
		alphabet = std
	}

	var (
		sum  float64
		prev = Origin
		pos  int
		idx  int
	)
	for pos = 0; pos < len(symbols); pos++ {
		idx = alphabet.Index(symbols[pos])
		if idx < 0 {
			return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, symbols[pos], pos)
		}
		sum += Distance(prev, table[idx])
		prev = table[idx]
	}

	return sum, nil
}

// Distances caches every city-to-city leg and every depot leg of a Table.
// Built once per coordinate table; read-only afterwards.
type Distances struct {
	legs   [Count][Count]float64
	origin [Count]float64
}

// NewDistances precomputes all legs of table.
//
// Complexity: O(Count²) time and space.
func NewDistances(table *Table) (*Distances, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	d := &Distances{}

	var i, j int
	for i = 0; i < Count; i++ {
		d.origin[i] = Distance(Origin, table[i])
		for j = 0; j < Count; j++ {
			d.legs[i][j] = Distance(table[i], table[j])
		}
	}

	return d, nil
}

// Between returns the leg length between cities i and j.
// Indices must be in [0, Count); callers validate routes beforehand.
func (d *Distances) Between(i, j int) float64 { return d.legs[i][j] }

// FromOrigin returns the leg length from the depot to city i.
func (d *Distances) FromOrigin(i int) float64 { return d.origin[i] }
