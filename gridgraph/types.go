// Package gridgraph defines core types and sentinel errors for treating a
// dense 2D grid of integer cells as an implicit graph.
package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCell indicates a character the decoder could not map to a cell value.
	ErrBadCell = errors.New("gridgraph: invalid cell")
)

// Direction selects one of the four orthogonal moves.
type Direction int

const (
	// North decreases the row.
	North Direction = iota
	// East increases the column.
	East
	// South increases the row.
	South
	// West decreases the column.
	West
)

// Directions lists the four orthogonal directions in clockwise order.
var Directions = [4]Direction{North, East, South, West}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}

	return "invalid"
}

// Grid is an immutable rectangular grid stored row-major: cell (x,y) lives at
// Cells[y*Width+x]. Width and Height never change after construction.
type Grid struct {
	Width, Height int
	Cells         []int
}
