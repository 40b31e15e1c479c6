package grid

import (
	"sort"

	"github.com/goldenword/golden/lexicon"
	"github.com/goldenword/golden/tilemapping"
)

// Lexicon recognizes and scores words. *lexicon.Dictionary implements it.
type Lexicon interface {
	HasWord(w lexicon.Word) bool
	Score(w, golden lexicon.Word) int
}

// A Match is a word found on the grid, with its positions in reading order.
type Match struct {
	Word      lexicon.Word
	Positions []Position
	Score     int
}

func (m Match) contains(p Position) bool {
	for _, mp := range m.Positions {
		if mp == p {
			return true
		}
	}
	return false
}

// ContainsPosition returns true if any of the matches uses p.
func ContainsPosition(matches []Match, p Position) bool {
	for _, m := range matches {
		if m.contains(p) {
			return true
		}
	}
	return false
}

// FindWords returns the words currently readable on the grid, without
// modifying it. Every letter and direction yields at most one candidate,
// the longest dictionary prefix of the run of letters starting there.
// Candidates are then taken by decreasing score (discovery order breaks
// ties) and a candidate is dropped if it shares a cell with one already
// taken.
func (g *Grid) FindWords(lex Lexicon, golden lexicon.Word) []Match {
	candidates := g.findCandidates(lex, golden)

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	claimed := make([]bool, len(g.cells))
	matches := []Match{}
	for _, c := range candidates {
		taken := false
		for _, p := range c.Positions {
			if claimed[g.index(p)] {
				taken = true
				break
			}
		}
		if taken {
			continue
		}
		for _, p := range c.Positions {
			claimed[g.index(p)] = true
		}
		matches = append(matches, c)
	}
	return matches
}

// RetrieveWords finds the words like FindWords does, then empties every
// cell they use.
func (g *Grid) RetrieveWords(lex Lexicon, golden lexicon.Word) []Match {
	matches := g.FindWords(lex, golden)
	for _, m := range matches {
		for _, p := range m.Positions {
			g.ClearCell(p)
		}
	}
	return matches
}

// findCandidates visits the letters row by row, and each letter in
// Directions order.
func (g *Grid) findCandidates(lex Lexicon, golden lexicon.Word) []Match {
	candidates := []Match{}
	for idx, ml := range g.cells {
		if ml.IsEmpty() {
			continue
		}
		start := g.position(idx)
		for _, d := range Directions {
			if m, ok := g.longestWordFrom(start, d, lex, golden); ok {
				candidates = append(candidates, m)
			}
		}
	}
	return candidates
}

func (g *Grid) longestWordFrom(start Position, d Direction, lex Lexicon,
	golden lexicon.Word) (Match, bool) {

	positions := make([]Position, 0, lexicon.MaxLength)
	letters := make([]tilemapping.MachineLetter, 0, lexicon.MaxLength)
	positions = append(positions, start)
	letters = append(letters, g.Cell(start))

	cur := start
	for len(positions) < lexicon.MaxLength {
		next, ok := g.Neighbor(cur, d)
		if !ok || g.IsEmpty(next) {
			break
		}
		positions = append(positions, next)
		letters = append(letters, g.Cell(next))
		cur = next
	}

	// A longer word always scores at least as much as any of its prefixes,
	// so the first hit wins.
	for n := len(letters); n >= lexicon.MinLength; n-- {
		w, err := lexicon.NewWord(letters[:n])
		if err != nil {
			panic(err)
		}
		if lex.HasWord(w) {
			return Match{
				Word:      w,
				Positions: append([]Position(nil), positions[:n]...),
				Score:     lex.Score(w, golden),
			}, true
		}
	}
	return Match{}, false
}
