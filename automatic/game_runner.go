// Package automatic plays games without a human: a simple bot drags letters
// around until the grid fills up, and many such games can be played
// concurrently to collect statistics.
package automatic

import (
	"encoding/binary"
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/goldenword/golden/config"
	"github.com/goldenword/golden/game"
	"github.com/goldenword/golden/grid"
)

// GameRecord is what is logged about every game played.
type GameRecord struct {
	Seed        uint32           `yaml:"seed"`
	Score       int              `yaml:"score"`
	Ticks       int              `yaml:"ticks"`
	Finished    bool             `yaml:"finished"`
	Words       []game.FoundWord `yaml:"words"`
	Fingerprint uint64           `yaml:"fingerprint"`
}

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	rules    game.RuleDefiner
	clockMs  uint32
	width    grid.GridSize
	height   grid.GridSize
	maxTicks int
	tickMs   uint32
}

// NewGameRunner just instantiates and initializes a game runner.
func NewGameRunner(cfg *config.Config, rules game.RuleDefiner) *GameRunner {
	return &GameRunner{
		rules:    rules,
		clockMs:  cfg.GetUint32(config.ConfigClockMs),
		width:    grid.GridSize(cfg.GetUint(config.ConfigGridWidth)),
		height:   grid.GridSize(cfg.GetUint(config.ConfigGridHeight)),
		maxTicks: cfg.GetInt(config.ConfigAutoplayMaxTicks),
		tickMs:   cfg.GetUint32(config.ConfigAutoplayTickMs),
	}
}

// PlayGame plays one game to the end, or until the tick limit is reached.
// The same seed always yields the same record.
func (r *GameRunner) PlayGame(seed uint32) (*GameRecord, error) {
	g, err := game.NewGame(r.rules, r.clockMs, r.width, r.height, seed)
	if err != nil {
		return nil, fmt.Errorf("creating game %d: %w", seed, err)
	}
	b := newBot(seed)

	var snap game.Snapshot
	ticks := 0
	for ticks < r.maxTicks && g.State() == game.OnGoing {
		snap = g.Tick(r.tickMs, b.clicks(g), nil)
		ticks++
	}

	log.Debug().Uint32("seed", seed).Int("score", g.Score()).Int("ticks", ticks).
		Str("state", g.State().String()).Msg("game-over")

	return &GameRecord{
		Seed:        seed,
		Score:       g.Score(),
		Ticks:       ticks,
		Finished:    g.State() == game.Finished,
		Words:       g.FoundWords(),
		Fingerprint: snap.Fingerprint(),
	}, nil
}

// bot drags the most mobile letter of the grid to a random cell it can
// reach. It has its own generator, so it never draws from the game's.
type bot struct {
	rng     *frand.RNG
	pending bool
}

func newBot(seed uint32) *bot {
	var key [32]byte
	binary.LittleEndian.PutUint32(key[:4], seed)
	key[31] = 'b'
	return &bot{rng: frand.NewCustom(key[:], 1024, 8)}
}

// clicks returns the clicks of the next tick.
func (b *bot) clicks(g *game.Game) []grid.Position {
	gr := g.Grid()
	from, dragging := g.PathFrom()
	if !dragging {
		b.pending = false
		anchor, ok := mostMobileLetter(gr)
		if !ok {
			return nil
		}
		return []grid.Position{anchor}
	}
	if b.pending {
		// The last move did not go through; let go of the letter.
		b.pending = false
		return []grid.Position{from}
	}
	targets := reachableEmptyCells(gr, from)
	if len(targets) == 0 {
		return []grid.Position{from}
	}
	b.pending = true
	return []grid.Position{targets[b.rng.Intn(len(targets))]}
}

// mostMobileLetter returns the letter with the most reachable empty cells,
// the first one in row-major order on a tie.
func mostMobileLetter(gr *grid.Grid) (grid.Position, bool) {
	var best grid.Position
	bestCount := 0
	for _, p := range gr.Positions() {
		if gr.IsEmpty(p) {
			continue
		}
		if n := len(reachableEmptyCells(gr, p)); n > bestCount {
			best, bestCount = p, n
		}
	}
	return best, bestCount > 0
}

// reachableEmptyCells lists, in row-major order, the empty cells a letter at
// from can be moved to.
func reachableEmptyCells(gr *grid.Grid, from grid.Position) []grid.Position {
	allowed := gr.AllowedMovingPositions(from)
	cells := []grid.Position{}
	for _, p := range gr.Positions() {
		if p != from && gr.IsEmpty(p) && allowed.Contains(p) {
			cells = append(cells, p)
		}
	}
	return cells
}
