package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"lukechampine.com/frand"

	"github.com/goldenword/golden/grid"
	"github.com/goldenword/golden/lexicon"
	"github.com/goldenword/golden/tilemapping"
)

const (
	letterL = tilemapping.MachineLetter(11)
	letterZ = tilemapping.MachineLetter(25)
)

// gameWithGrid returns a game whose grid is replaced with the given layout
// and whose triplet queue is replaced with triplets.
func gameWithGrid(t *testing.T, clockMs uint32, triplets []tilemapping.Triplet, rows ...string) *Game {
	rules := defaultRules(t)
	gr, err := grid.FromRows(rules.LetterDistribution(), rows...)
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewGame(rules, clockMs, gr.Width(), gr.Height(), 1)
	if err != nil {
		t.Fatal(err)
	}
	g.grid = gr
	g.triplets = triplets
	return g
}

func pos(x, y uint8) grid.Position {
	return grid.NewPosition(x, y)
}

func TestNewGame(t *testing.T) {
	is := is.New(t)
	rules := defaultRules(t)
	g, err := NewGame(rules, 10000, 8, 8, 42)
	is.NoErr(err)

	is.Equal(g.State(), OnGoing)
	is.Equal(g.Score(), 0)
	is.Equal(g.ClockMaxMs(), uint32(10000))
	is.Equal(g.ClockRemainingMs(), uint32(10000))
	is.Equal(g.GridWidth(), grid.GridSize(8))
	is.Equal(g.GridHeight(), grid.GridSize(8))
	is.Equal(g.Grid().NumEmpty(), 64-tilemapping.InitialGridLetters)
	is.Equal(g.TripletsCurrentIndex(), 0)
	is.Equal(len(g.Triplets()), 3*tilemapping.TripletCount)
	is.Equal(len(g.GoldenWord()), 6)
	is.True(g.GoldenWordScore() > 100)
	is.Equal(len(g.FoundWords()), 0)

	_, dragging := g.PathFrom()
	is.True(!dragging)
}

func TestNewGameUsesWholePool(t *testing.T) {
	rules := defaultRules(t)
	g, err := NewGame(rules, 10000, 8, 8, 7)
	assert.NoError(t, err)

	counts := map[tilemapping.MachineLetter]int{}
	for _, ml := range g.Triplets() {
		counts[ml]++
	}
	gr := g.Grid()
	for _, p := range gr.Positions() {
		if !gr.IsEmpty(p) {
			counts[gr.Cell(p)]++
		}
	}
	for i, lc := range g.LettersTable() {
		assert.Equal(t, lc.Repartition, counts[tilemapping.MachineLetter(i)], "letter %c", lc.Letter)
	}
}

func TestNewGameGridTooSmall(t *testing.T) {
	is := is.New(t)
	rules := defaultRules(t)
	_, err := NewGame(rules, 10000, 2, 3, 1)
	is.True(errors.Is(err, ErrGridTooSmall))

	g, err := NewGame(rules, 10000, 3, 3, 1)
	is.NoErr(err)
	is.Equal(g.Grid().NumEmpty(), 1)
}

func TestSameSeedSameGame(t *testing.T) {
	is := is.New(t)
	rules := defaultRules(t)
	g1, err := NewGame(rules, 10000, 8, 8, 1234)
	is.NoErr(err)
	g2, err := NewGame(rules, 10000, 8, 8, 1234)
	is.NoErr(err)
	g3, err := NewGame(rules, 10000, 8, 8, 1235)
	is.NoErr(err)

	is.Equal(g1.Triplets(), g2.Triplets())
	is.Equal(g1.GoldenWord(), g2.GoldenWord())
	is.Equal(g1.Grid().ToDisplayText(rules.LetterDistribution()),
		g2.Grid().ToDisplayText(rules.LetterDistribution()))
	is.True(!assert.ObjectsAreEqual(g1.Triplets(), g3.Triplets()))
}

type tickInput struct {
	delta   uint32
	clicks  []grid.Position
	hovered *grid.Position
}

func randomInputs(n int, width, height uint8) []tickInput {
	var seed [32]byte
	seed[0] = 99
	rng := frand.NewCustom(seed[:], 1024, 8)
	randomPos := func() grid.Position {
		return pos(uint8(rng.Intn(int(width))), uint8(rng.Intn(int(height))))
	}
	inputs := make([]tickInput, n)
	for i := range inputs {
		in := tickInput{delta: uint32(rng.Intn(600))}
		for c := rng.Intn(3); c > 0; c-- {
			in.clicks = append(in.clicks, randomPos())
		}
		if rng.Intn(2) == 0 {
			h := randomPos()
			in.hovered = &h
		}
		inputs[i] = in
	}
	return inputs
}

func TestTickIsDeterministic(t *testing.T) {
	is := is.New(t)
	rules := defaultRules(t)
	for _, seed := range []uint32{0, 1, 77, 4000000000} {
		g1, err := NewGame(rules, 1000, 6, 6, seed)
		is.NoErr(err)
		g2, err := NewGame(rules, 1000, 6, 6, seed)
		is.NoErr(err)

		for _, in := range randomInputs(400, 6, 6) {
			s1 := g1.Tick(in.delta, in.clicks, in.hovered)
			s2 := g2.Tick(in.delta, in.clicks, in.hovered)
			is.Equal(s1, s2)
			is.Equal(s1.Fingerprint(), s2.Fingerprint())
		}
		is.Equal(g1.Score(), g2.Score())
		is.Equal(g1.State(), g2.State())
	}
}

func TestClickOnEmptyCell(t *testing.T) {
	is := is.New(t)
	g := gameWithGrid(t, 10000, nil,
		"Y..N",
		".E..",
		"Y.SO",
	)
	hovered := pos(3, 0)
	snap := g.Tick(0, []grid.Position{pos(1, 0)}, &hovered)

	_, ok := g.PathFrom()
	is.True(!ok)
	_, ok = g.PathTo()
	is.True(!ok)
	is.Equal(len(snap.Grid), 12)
	for _, c := range snap.Grid {
		is.Equal(c.PathingStatus, PathingNone)
	}
	is.Equal(snap.ClockRemainingMs, uint32(10000))
}

func TestSnapshotCellOrder(t *testing.T) {
	is := is.New(t)
	g := gameWithGrid(t, 10000, nil,
		"Y..N",
		".E..",
		"Y.SO",
	)
	snap := g.Tick(0, nil, nil)
	is.Equal(snap.Grid[0], Cell{Position: pos(0, 0), PathingStatus: PathingNone, Letter: 24})
	is.Equal(snap.Grid[3], Cell{Position: pos(3, 0), PathingStatus: PathingNone, Letter: 13})
	is.Equal(snap.Grid[4].Position, pos(0, 1))
	is.True(IsEmptyCell(snap.Grid[4].Letter))
	is.Equal(snap.Grid[11].Letter, tilemapping.MachineLetter(14))
}

func TestGridFullRoundTrip(t *testing.T) {
	is := is.New(t)
	// No word fits in a 4x3 grid, so nothing is ever cleared.
	g := gameWithGrid(t, 500,
		[]tilemapping.Triplet{{letterZ, letterZ, letterZ}, {letterZ, letterZ, letterZ}},
		"ABC.",
		"DE.F",
		".GHI",
	)

	snap := g.Tick(200, nil, nil)
	is.Equal(snap.ClockRemainingMs, uint32(300))
	is.Equal(g.Grid().NumEmpty(), 3)

	snap = g.Tick(300, nil, nil)
	is.Equal(g.State(), OnGoing)
	is.Equal(g.Grid().NumEmpty(), 0)
	is.Equal(g.TripletsCurrentIndex(), 1)
	is.Equal(snap.ClockRemainingMs, uint32(500))

	snap = g.Tick(600, nil, nil)
	is.Equal(g.State(), Finished)
	is.Equal(g.TripletsCurrentIndex(), 2)
	is.Equal(snap.ClockRemainingMs, uint32(0))

	// Finished games ignore every input.
	again := g.Tick(1000, []grid.Position{pos(0, 0), pos(3, 0)}, nil)
	is.Equal(again, snap)
	_, ok := g.PathFrom()
	is.True(!ok)
}

func TestDragAndMoveSpellsWord(t *testing.T) {
	is := is.New(t)
	g := gameWithGrid(t, 10000, nil,
		"TAB.E.",
		"...L..",
	)

	hovered := pos(3, 0)
	snap := g.Tick(0, []grid.Position{pos(3, 1)}, &hovered)
	from, ok := g.PathFrom()
	is.True(ok)
	is.Equal(from, pos(3, 1))
	to, ok := g.PathTo()
	is.True(ok)
	is.Equal(to, pos(3, 0))

	byPos := map[grid.Position]Cell{}
	for i, c := range snap.Grid {
		byPos[g.grid.Positions()[i]] = c
	}
	is.Equal(byPos[pos(3, 1)].PathingStatus, PathingPath)
	is.Equal(byPos[pos(3, 0)].PathingStatus, PathingPath)
	// The endpoints trade places for rendering.
	is.Equal(byPos[pos(3, 1)].Position, pos(3, 0))
	is.Equal(byPos[pos(3, 0)].Position, pos(3, 1))
	is.Equal(byPos[pos(3, 1)].Letter, letterL)
	is.Equal(byPos[pos(0, 1)].PathingStatus, PathingWalkable)
	is.Equal(byPos[pos(4, 0)].PathingStatus, PathingWalkable)
	// Letters bordering the reachable region are walkable too.
	is.Equal(byPos[pos(0, 0)].PathingStatus, PathingWalkable)

	snap = g.Tick(0, []grid.Position{pos(3, 0)}, nil)
	_, ok = g.PathFrom()
	is.True(!ok)
	_, ok = g.PathTo()
	is.True(!ok)
	is.Equal(snap.FoundWords, []FoundWord{{Word: "TABLE", Score: 16}})
	is.Equal(g.Score(), 16)
	is.Equal(g.Grid().NumEmpty(), 12)
	for _, c := range snap.Grid {
		is.Equal(c.PathingStatus, PathingNone)
	}
}

func TestClickAnchorAgainCancels(t *testing.T) {
	is := is.New(t)
	g := gameWithGrid(t, 10000, nil,
		"A..",
		"...",
		"..B",
	)
	g.Tick(0, []grid.Position{pos(0, 0)}, nil)
	_, ok := g.PathFrom()
	is.True(ok)

	hovered := pos(1, 1)
	snap := g.Tick(0, []grid.Position{pos(0, 0)}, &hovered)
	_, ok = g.PathFrom()
	is.True(!ok)
	_, ok = g.PathTo()
	is.True(!ok)
	for _, c := range snap.Grid {
		is.Equal(c.PathingStatus, PathingNone)
	}
}

func TestFailedMoveKeepsAnchor(t *testing.T) {
	is := is.New(t)
	ld := defaultRules(t).LetterDistribution()
	g := gameWithGrid(t, 10000, nil,
		"B.A",
		"AAA",
		".A.",
	)
	g.Tick(0, []grid.Position{pos(0, 0), pos(0, 2)}, nil)
	from, ok := g.PathFrom()
	is.True(ok)
	is.Equal(from, pos(0, 0))
	is.Equal(g.Grid().ToDisplayText(ld), "B.A\nAAA\n.A.\n")

	// The anchor is still there for the next click.
	g.Tick(0, []grid.Position{pos(0, 2), pos(1, 0)}, nil)
	_, ok = g.PathFrom()
	is.True(!ok)
	is.Equal(g.Grid().ToDisplayText(ld), ".BA\nAAA\n.A.\n")
}

func TestUnreachableHoverShowsNothing(t *testing.T) {
	is := is.New(t)
	g := gameWithGrid(t, 10000, nil,
		"B.A",
		"AAA",
		".A.",
	)
	hovered := pos(0, 2)
	snap := g.Tick(0, []grid.Position{pos(0, 0)}, &hovered)
	_, ok := g.PathTo()
	is.True(ok)
	for _, c := range snap.Grid {
		is.Equal(c.PathingStatus, PathingNone)
	}

	// Without a hovered cell, the anchor alone is the path.
	g.pathTo = nil
	snap = g.Tick(0, nil, nil)
	is.Equal(snap.Grid[0].PathingStatus, PathingPath)
	is.Equal(snap.Grid[1].PathingStatus, PathingWalkable)
	is.Equal(snap.Grid[6].PathingStatus, PathingBlocked)
}

func TestOutOfGridInputIgnored(t *testing.T) {
	is := is.New(t)
	g := gameWithGrid(t, 10000, nil,
		"A..",
		"...",
		"..B",
	)
	hovered := pos(9, 9)
	g.Tick(0, []grid.Position{pos(5, 0), pos(0, 0), pos(0, 7)}, &hovered)
	from, ok := g.PathFrom()
	is.True(ok)
	is.Equal(from, pos(0, 0))
	_, ok = g.PathTo()
	is.True(!ok)
}

func TestAnchorConsumedByFallingLetter(t *testing.T) {
	is := is.New(t)
	g := gameWithGrid(t, 1000,
		[]tilemapping.Triplet{{letterL, letterZ, letterZ}},
		"TAB.E",
		"ZZZZZ",
	)
	g.Tick(0, []grid.Position{pos(0, 0)}, nil)
	_, ok := g.PathFrom()
	is.True(ok)

	// The only empty cell receives the L, which completes TABLE.
	hovered := pos(1, 0)
	snap := g.Tick(1000, nil, &hovered)
	_, ok = g.PathFrom()
	is.True(!ok)
	_, ok = g.PathTo()
	is.True(!ok)
	is.Equal(snap.FoundWords, []FoundWord{{Word: "TABLE", Score: 16}})
	is.Equal(g.Grid().NumEmpty(), 3)
	is.Equal(snap.ClockRemainingMs, uint32(1000))
	is.Equal(g.State(), OnGoing)
}

func TestNoTripletLeft(t *testing.T) {
	is := is.New(t)
	g := gameWithGrid(t, 1000, nil,
		"A..",
		"...",
		"..B",
	)
	snap := g.Tick(5000, nil, nil)
	is.Equal(g.State(), OnGoing)
	is.Equal(snap.ClockRemainingMs, uint32(0))
	is.Equal(g.Grid().NumEmpty(), 7)

	g.Tick(0, []grid.Position{pos(0, 0), pos(1, 1)}, nil)
	is.Equal(g.State(), OnGoing)
	is.Equal(g.Grid().NumEmpty(), 7)
	is.True(!g.Grid().IsEmpty(pos(1, 1)))
}

func TestFoundWordsAccumulate(t *testing.T) {
	is := is.New(t)
	g := gameWithGrid(t, 10000, nil,
		"TAB.E.",
		"...L..",
	)
	snap := g.Tick(0, []grid.Position{pos(3, 1), pos(3, 0)}, nil)
	is.Equal(len(snap.FoundWords), 1)

	snap.FoundWords[0].Score = 0
	is.Equal(g.FoundWords()[0].Score, 16)

	later := g.Tick(100, nil, nil)
	is.Equal(later.FoundWords, []FoundWord{{Word: "TABLE", Score: 16}})
}

func TestLetterAccessors(t *testing.T) {
	rules := defaultRules(t)
	g, err := NewGame(rules, 10000, 8, 8, 3)
	assert.NoError(t, err)

	assert.Equal(t, 1, g.LetterScore(0))
	assert.Equal(t, 9, g.LetterScore(letterZ))
	assert.Equal(t, 'A', g.Letter(0))
	assert.Equal(t, 'Z', g.Letter(letterZ))
	assert.Len(t, g.LettersTable(), 26)
	assert.True(t, IsEmptyCell(tilemapping.EmptyMarker))
	assert.False(t, IsEmptyCell(0))

	assert.Panics(t, func() { g.LetterScore(200) })
	assert.Panics(t, func() { g.Letter(tilemapping.EmptyMarker) })

	golden, err := lexicon.NewWord(g.GoldenWord())
	assert.NoError(t, err)
	assert.True(t, rules.Dictionary().HasWord(golden))
}

func TestFingerprint(t *testing.T) {
	is := is.New(t)
	g := gameWithGrid(t, 1000, nil,
		"A..",
		"...",
		"..B",
	)
	s1 := g.Tick(0, nil, nil)
	s2 := g.Tick(0, nil, nil)
	is.Equal(s1.Fingerprint(), s2.Fingerprint())
	s3 := g.Tick(10, nil, nil)
	is.True(s1.Fingerprint() != s3.Fingerprint())
}

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	g := gameWithGrid(t, 10000, nil,
		"TAB.E.",
		"...L..",
	)
	g.Tick(0, []grid.Position{pos(3, 1), pos(3, 0)}, nil)
	txt := g.ToDisplayText()
	is.True(strings.HasPrefix(txt, "......   Clock: 10000/10000 ms\n"))
	is.True(strings.Contains(txt, "Score: 16"))
	is.True(strings.Contains(txt, "Next: none (0/0)"))
	is.True(strings.Contains(txt, "Found words (1): TABLE 16"))
}
