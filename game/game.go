// Package game encapsulates the main mechanics of a Golden Word game: a
// grid that letters fall onto every time the clock runs out, and a player
// who drags letters around to spell words before the grid fills up.
package game

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/goldenword/golden/clock"
	"github.com/goldenword/golden/grid"
	"github.com/goldenword/golden/lexicon"
	"github.com/goldenword/golden/tilemapping"
)

var ErrGridTooSmall = errors.New("grid cannot hold the initial letters")

// The generator is ChaCha8 with a fixed buffer size. Changing either
// changes every game played from a given seed.
const (
	rngBufferSize = 1024
	rngRounds     = 8
)

type GameState uint8

const (
	OnGoing GameState = iota
	Finished
)

func (s GameState) String() string {
	if s == Finished {
		return "finished"
	}
	return "ongoing"
}

type gridStatus uint8

const (
	gridNotFull gridStatus = iota
	gridFull
)

// FoundWord is a word removed from the grid, with the points it scored.
type FoundWord struct {
	Word  string `yaml:"word"`
	Score int    `yaml:"score"`
}

// Game is the actual internal game structure that controls the entire
// business logic of the game. It is mutated only through Tick, and is not
// safe for concurrent use.
type Game struct {
	rules RuleDefiner
	dist  *tilemapping.LetterDistribution
	dict  *lexicon.Dictionary

	state GameState
	seed  uint32
	rng   *frand.RNG
	clock *clock.Clock
	grid  *grid.Grid

	goldenWord      lexicon.Word
	goldenWordScore int

	triplets     []tilemapping.Triplet
	tripletIndex int

	score      int
	foundWords []FoundWord

	pathFrom *grid.Position
	pathTo   *grid.Position
}

// newRNG expands seed into the low four bytes of a 32-byte ChaCha8 key.
func newRNG(seed uint32) *frand.RNG {
	var key [32]byte
	binary.LittleEndian.PutUint32(key[:4], seed)
	return frand.NewCustom(key[:], rngBufferSize, rngRounds)
}

// NewGame creates a game. Identical arguments always produce identical
// games: the letter pool, the golden word and the initial grid are all drawn
// from a generator seeded with seed.
func NewGame(rules RuleDefiner, clockMs uint32, width, height grid.GridSize, seed uint32) (*Game, error) {
	if int(width)*int(height) < tilemapping.InitialGridLetters {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridTooSmall, width, height)
	}
	g := &Game{
		rules: rules,
		dist:  rules.LetterDistribution(),
		dict:  rules.Dictionary(),
		state: OnGoing,
		seed:  seed,
		rng:   newRNG(seed),
		clock: clock.New(clockMs),
		grid:  grid.New(width, height),
	}

	pool := g.dist.GeneratePool(g.rng)
	g.goldenWord = g.dict.RandomSixLetterWord(g.rng)
	g.goldenWordScore = g.dict.Score(g.goldenWord, g.goldenWord)
	g.triplets = pool.Triplets

	for _, ml := range pool.InitialSelection {
		pos, ok := g.grid.RandomEmptyCell(g.rng)
		if !ok {
			panic("missing an empty cell during initial grid generation")
		}
		g.grid.SetCell(pos, ml)
	}

	log.Debug().Uint32("clock-ms", clockMs).Uint8("width", width).
		Uint8("height", height).Uint32("seed", seed).
		Str("golden", g.goldenWord.UserVisible(g.dist)).
		Int("triplets", len(g.triplets)).Msg("new-game")
	return g, nil
}

// Tick advances the game by deltaMs milliseconds, then applies the clicks
// in order, then records the hovered cell. It returns the state to render.
// Positions outside of the grid are ignored. Once the game is finished,
// Tick only returns the last snapshot.
func (g *Game) Tick(deltaMs uint32, clicks []grid.Position, hovered *grid.Position) Snapshot {
	if g.state == Finished {
		return g.snapshot()
	}

	g.clock.Subtract(deltaMs)
	if g.clock.Expired() {
		if g.placeNewTriplet() == gridFull {
			return g.snapshot()
		}
	}

	for _, pos := range clicks {
		if !g.grid.InGrid(pos) {
			continue
		}
		if g.pathFrom == nil {
			if !g.grid.IsEmpty(pos) {
				from := pos
				g.pathFrom = &from
			}
			continue
		}
		if pos == *g.pathFrom {
			g.pathFrom = nil
			continue
		}
		if g.grid.MoveCell(*g.pathFrom, pos) != grid.Moved {
			continue
		}
		g.pathFrom = nil
		g.pathTo = nil
		g.removeFoundWords()
		// The clock only stays at zero here if no triplet was left to drop.
		if g.clock.Expired() {
			if g.placeNewTriplet() == gridFull {
				return g.snapshot()
			}
		}
	}

	if g.pathFrom != nil {
		if hovered != nil && g.grid.InGrid(*hovered) {
			to := *hovered
			g.pathTo = &to
		}
	} else {
		g.pathTo = nil
	}

	return g.snapshot()
}

// placeNewTriplet drops the next triplet, one letter at a time, and removes
// the words each letter completes before the next one falls. The clock is
// reset only once all three letters are placed.
func (g *Game) placeNewTriplet() gridStatus {
	if g.tripletIndex >= len(g.triplets) {
		log.Debug().Int("index", g.tripletIndex).Msg("no-triplet-left")
		return gridNotFull
	}
	triplet := g.triplets[g.tripletIndex]
	g.tripletIndex++

	for _, ml := range triplet {
		pos, ok := g.grid.RandomEmptyCell(g.rng)
		if !ok {
			g.state = Finished
			log.Debug().Int("score", g.score).Int("triplet", g.tripletIndex).
				Msg("grid-full")
			return gridFull
		}
		g.grid.SetCell(pos, ml)
		g.removeFoundWords()
	}
	log.Debug().Str("triplet", tilemapping.MachineWord(triplet[:]).UserVisible(g.dist.TileMapping())).
		Int("index", g.tripletIndex).Msg("placed-triplet")

	g.clock.Reset()
	return gridNotFull
}

// removeFoundWords clears the words spelled on the grid and scores them.
// A drag whose anchor was part of one of those words is cancelled.
func (g *Game) removeFoundWords() {
	matches := g.grid.RetrieveWords(g.dict, g.goldenWord)
	if len(matches) == 0 {
		return
	}
	if g.pathFrom != nil && grid.ContainsPosition(matches, *g.pathFrom) {
		g.pathFrom = nil
	}

	found := lo.Map(matches, func(m grid.Match, _ int) FoundWord {
		return FoundWord{Word: m.Word.UserVisible(g.dist), Score: m.Score}
	})
	g.foundWords = append(g.foundWords, found...)
	g.score += lo.SumBy(found, func(fw FoundWord) int { return fw.Score })

	for _, fw := range found {
		log.Debug().Str("word", fw.Word).Int("score", fw.Score).Msg("found-word")
	}
}

func (g *Game) Rules() RuleDefiner {
	return g.rules
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) Seed() uint32 {
	return g.seed
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) ClockMaxMs() uint32 {
	return g.clock.MaxMs()
}

func (g *Game) ClockRemainingMs() uint32 {
	return g.clock.RemainingMs()
}

func (g *Game) GridWidth() grid.GridSize {
	return g.grid.Width()
}

func (g *Game) GridHeight() grid.GridSize {
	return g.grid.Height()
}

// Grid returns a copy of the grid.
func (g *Game) Grid() *grid.Grid {
	return g.grid.Copy()
}

// PathFrom returns the anchor of the current drag, if any.
func (g *Game) PathFrom() (grid.Position, bool) {
	if g.pathFrom == nil {
		return grid.Position{}, false
	}
	return *g.pathFrom, true
}

// PathTo returns the target of the current drag, if any.
func (g *Game) PathTo() (grid.Position, bool) {
	if g.pathTo == nil {
		return grid.Position{}, false
	}
	return *g.pathTo, true
}

func (g *Game) GoldenWordScore() int {
	return g.goldenWordScore
}

// GoldenWord returns the letters of the golden word.
func (g *Game) GoldenWord() tilemapping.MachineWord {
	return g.goldenWord.Letters()
}

func (g *Game) TripletsCurrentIndex() int {
	return g.tripletIndex
}

// Triplets returns every triplet of the game, flattened, in the order they
// fall.
func (g *Game) Triplets() []tilemapping.MachineLetter {
	return lo.FlatMap(g.triplets, func(t tilemapping.Triplet, _ int) []tilemapping.MachineLetter {
		return t[:]
	})
}

// FoundWords returns a copy of every word found so far.
func (g *Game) FoundWords() []FoundWord {
	return append([]FoundWord{}, g.foundWords...)
}

// LetterScore panics if ml is not a letter of the game.
func (g *Game) LetterScore(ml tilemapping.MachineLetter) int {
	return g.dist.Score(ml)
}

// Letter panics if ml is not a letter of the game.
func (g *Game) Letter(ml tilemapping.MachineLetter) rune {
	lc, err := g.dist.LetterConfig(ml)
	if err != nil {
		panic(err)
	}
	return lc.Letter
}

func (g *Game) LettersTable() []tilemapping.LetterConfig {
	return g.dist.Letters()
}

// IsEmptyCell returns true if a snapshot letter denotes an empty cell.
func IsEmptyCell(ml tilemapping.MachineLetter) bool {
	return ml.IsEmpty()
}
