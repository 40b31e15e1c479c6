package game

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/samber/lo"

	"github.com/goldenword/golden/grid"
	"github.com/goldenword/golden/tilemapping"
)

// CellPathingStatus tells a renderer how to highlight a cell while a letter
// is being dragged.
type CellPathingStatus uint8

const (
	// PathingNone is used when no path is shown.
	PathingNone CellPathingStatus = iota
	// PathingPath marks the cells of the path being previewed.
	PathingPath
	// PathingWalkable marks the cells the dragged letter could reach.
	PathingWalkable
	// PathingBlocked marks every other cell.
	PathingBlocked
)

func (s CellPathingStatus) String() string {
	switch s {
	case PathingPath:
		return "path"
	case PathingWalkable:
		return "walkable"
	case PathingBlocked:
		return "blocked"
	}
	return "none"
}

// Cell is one grid cell as it should be rendered. Letter is
// tilemapping.EmptyMarker for an empty cell.
type Cell struct {
	Position      grid.Position             `yaml:"position"`
	PathingStatus CellPathingStatus         `yaml:"pathing"`
	Letter        tilemapping.MachineLetter `yaml:"letter"`
}

// Snapshot is the state of a game after a tick.
type Snapshot struct {
	ClockRemainingMs uint32      `yaml:"clock_remaining_ms"`
	Grid             []Cell      `yaml:"grid"`
	FoundWords       []FoundWord `yaml:"found_words"`
}

// Fingerprint returns a 64-bit digest of the snapshot. Two snapshots with
// the same fingerprint are, for all practical purposes, identical.
func (s Snapshot) Fingerprint() uint64 {
	buf := make([]byte, 0, 4+4*len(s.Grid)+16*len(s.FoundWords))
	buf = binary.LittleEndian.AppendUint32(buf, s.ClockRemainingMs)
	for _, c := range s.Grid {
		buf = append(buf, c.Position.X, c.Position.Y, byte(c.PathingStatus), byte(c.Letter))
	}
	for _, fw := range s.FoundWords {
		buf = append(buf, fw.Word...)
		buf = append(buf, 0)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(fw.Score))
	}
	return xxhash.Sum64(buf)
}

// snapshot projects the game state. While a drag is active, the path to the
// hovered cell is shown, or the anchor alone if nothing is hovered; the path
// endpoints trade their rendered positions. If the hovered cell cannot be
// reached, no cell is highlighted.
func (g *Game) snapshot() Snapshot {
	var allowed grid.PositionSet
	var path []grid.Position
	if g.pathFrom != nil {
		allowed = g.grid.AllowedMovingPositions(*g.pathFrom)
		if g.pathTo != nil {
			path, _ = g.grid.MostDirectPath(*g.pathFrom, *g.pathTo)
		} else {
			path = []grid.Position{*g.pathFrom}
		}
	}

	cells := lo.Map(g.grid.Positions(), func(pos grid.Position, _ int) Cell {
		c := Cell{Position: pos, PathingStatus: PathingNone, Letter: g.grid.Cell(pos)}
		if len(path) == 0 {
			return c
		}
		switch {
		case lo.Contains(path, pos):
			c.PathingStatus = PathingPath
		case allowed.Contains(pos):
			c.PathingStatus = PathingWalkable
		default:
			c.PathingStatus = PathingBlocked
		}
		start, end := path[0], path[len(path)-1]
		if pos == start {
			c.Position = end
		} else if pos == end {
			c.Position = start
		}
		return c
	})

	return Snapshot{
		ClockRemainingMs: g.clock.RemainingMs(),
		Grid:             cells,
		FoundWords:       g.FoundWords(),
	}
}
