// Package grid is the spatial engine of the game: a fixed rectangle of
// cells that are either empty or hold a letter, with word extraction and
// the pathing used to move letters around.
package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goldenword/golden/tilemapping"
)

var ErrBadLayout = errors.New("bad grid layout")

// GridSize is the width or height of a grid.
type GridSize = uint8

// A Position in the grid. X grows to the east, Y to the south.
type Position struct {
	X uint8 `yaml:"x"`
	Y uint8 `yaml:"y"`
}

func NewPosition(x, y uint8) Position {
	return Position{X: x, Y: y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the four cardinal directions in the order every search
// of this package visits them.
var Directions = [4]Direction{North, East, South, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "none"
}

func (d Direction) delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	panic(fmt.Sprintf("unknown direction %d", d))
}

// A Grid stores one machine letter per cell, row-major. Empty cells hold
// tilemapping.EmptyMarker.
type Grid struct {
	width  GridSize
	height GridSize
	cells  []tilemapping.MachineLetter
}

// New returns an empty grid.
func New(width, height GridSize) *Grid {
	cells := make([]tilemapping.MachineLetter, int(width)*int(height))
	for i := range cells {
		cells[i] = tilemapping.EmptyMarker
	}
	return &Grid{width: width, height: height, cells: cells}
}

// FromRows builds a grid from a textual layout, one string per row. A
// space or a '.' is an empty cell; anything else must be a letter of ld.
// All rows must have the same number of characters.
func FromRows(ld *tilemapping.LetterDistribution, rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows) > 255 {
		return nil, fmt.Errorf("%w: %d rows", ErrBadLayout, len(rows))
	}
	runeRows := make([][]rune, len(rows))
	for i, r := range rows {
		runeRows[i] = []rune(r)
	}
	width := len(runeRows[0])
	if width == 0 || width > 255 {
		return nil, fmt.Errorf("%w: %d columns", ErrBadLayout, width)
	}
	g := New(GridSize(width), GridSize(len(rows)))
	for y, row := range runeRows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d",
				ErrBadLayout, y, len(row), width)
		}
		for x, rn := range row {
			if rn == ' ' || rn == tilemapping.ASCIIEmpty {
				continue
			}
			ml, err := ld.TileMapping().Val(rn)
			if err != nil {
				return nil, err
			}
			g.SetCell(NewPosition(uint8(x), uint8(y)), ml)
		}
	}
	return g, nil
}

func (g *Grid) Width() GridSize {
	return g.width
}

func (g *Grid) Height() GridSize {
	return g.height
}

func (g *Grid) index(p Position) int {
	return int(p.Y)*int(g.width) + int(p.X)
}

func (g *Grid) position(idx int) Position {
	return Position{X: uint8(idx % int(g.width)), Y: uint8(idx / int(g.width))}
}

// InGrid returns true if p lies within the grid.
func (g *Grid) InGrid(p Position) bool {
	return p.X < g.width && p.Y < g.height
}

// Neighbor returns the position next to p in direction d, and false if that
// position would lie off the grid. The bounds check happens on signed
// coordinates so that the west neighbor of x=0 is rejected, not wrapped.
func (g *Grid) Neighbor(p Position, d Direction) (Position, bool) {
	dx, dy := d.delta()
	x, y := int(p.X)+dx, int(p.Y)+dy
	if x < 0 || y < 0 || x >= int(g.width) || y >= int(g.height) {
		return Position{}, false
	}
	return Position{X: uint8(x), Y: uint8(y)}, true
}

// Cell returns the letter at p, or tilemapping.EmptyMarker.
func (g *Grid) Cell(p Position) tilemapping.MachineLetter {
	return g.cells[g.index(p)]
}

func (g *Grid) IsEmpty(p Position) bool {
	return g.Cell(p).IsEmpty()
}

func (g *Grid) SetCell(p Position, ml tilemapping.MachineLetter) {
	g.cells[g.index(p)] = ml
}

func (g *Grid) ClearCell(p Position) {
	g.SetCell(p, tilemapping.EmptyMarker)
}

// Positions returns every position of the grid, row by row.
func (g *Grid) Positions() []Position {
	ps := make([]Position, len(g.cells))
	for i := range g.cells {
		ps[i] = g.position(i)
	}
	return ps
}

// EmptyPositions returns the empty positions ordered by x, then y. The order
// does not depend on the storage layout, so a random draw among them is
// reproducible.
func (g *Grid) EmptyPositions() []Position {
	ps := []Position{}
	for x := 0; x < int(g.width); x++ {
		for y := 0; y < int(g.height); y++ {
			p := Position{X: uint8(x), Y: uint8(y)}
			if g.IsEmpty(p) {
				ps = append(ps, p)
			}
		}
	}
	return ps
}

func (g *Grid) NumEmpty() int {
	n := 0
	for _, c := range g.cells {
		if c.IsEmpty() {
			n++
		}
	}
	return n
}

// Intner draws uniform integers in [0, n).
type Intner interface {
	Intn(n int) int
}

// RandomEmptyCell draws one empty position uniformly with rng. It returns
// false, without touching rng, if the grid is full.
func (g *Grid) RandomEmptyCell(rng Intner) (Position, bool) {
	empties := g.EmptyPositions()
	if len(empties) == 0 {
		return Position{}, false
	}
	return empties[rng.Intn(len(empties))], true
}

// Copy returns a deep copy of the grid.
func (g *Grid) Copy() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  append([]tilemapping.MachineLetter(nil), g.cells...),
	}
}

// ToDisplayText renders the grid, one line per row.
func (g *Grid) ToDisplayText(ld *tilemapping.LetterDistribution) string {
	var sb strings.Builder
	for y := 0; y < int(g.height); y++ {
		for x := 0; x < int(g.width); x++ {
			sb.WriteRune(g.Cell(Position{X: uint8(x), Y: uint8(y)}).UserVisible(ld.TileMapping()))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
