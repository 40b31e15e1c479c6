package game

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/goldenword/golden/tilemapping"
)

func splitSubN(s string, n int) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}
	return lo.Map(lo.Chunk(runes, n), func(chunk []rune, _ int) string {
		return string(chunk)
	})
}

// addText writes text to the right of lines, starting at row, and returns
// the lines, extended if the text runs past the bottom.
func addText(lines []string, row int, hpad int, width int, text string) []string {
	maxTextSize := 42

	for _, chunk := range splitSubN(text, maxTextSize) {
		for row >= len(lines) {
			lines = append(lines, strings.Repeat(" ", width))
		}
		lines[row] = lines[row] + strings.Repeat(" ", hpad) + chunk
		row++
	}
	return lines
}

// ToDisplayText turns the current state of the game into a displayable
// string: the grid, with the clock, score, golden word and next triplet on
// its right, then the words found so far.
func (g *Game) ToDisplayText() string {
	bt := strings.TrimSuffix(g.grid.ToDisplayText(g.dist), "\n")
	bts := strings.Split(bt, "\n")
	width := int(g.grid.Width())
	hpadding := 3

	bts = addText(bts, 0, hpadding, width, fmt.Sprintf("Clock: %d/%d ms",
		g.clock.RemainingMs(), g.clock.MaxMs()))
	bts = addText(bts, 1, hpadding, width, fmt.Sprintf("Score: %d", g.score))
	bts = addText(bts, 2, hpadding, width, fmt.Sprintf("Golden: %s (%d)",
		g.goldenWord.UserVisible(g.dist), g.goldenWordScore))

	next := "none"
	if g.tripletIndex < len(g.triplets) {
		t := g.triplets[g.tripletIndex]
		next = string(lo.Map(t[:], func(ml tilemapping.MachineLetter, _ int) rune {
			return ml.UserVisible(g.dist.TileMapping())
		}))
	}
	bts = addText(bts, 3, hpadding, width, fmt.Sprintf("Next: %s (%d/%d)",
		next, g.tripletIndex, len(g.triplets)))

	if from, ok := g.PathFrom(); ok {
		drag := fmt.Sprintf("Dragging: %v", from)
		if to, ok := g.PathTo(); ok {
			drag += fmt.Sprintf(" -> %v", to)
		}
		bts = addText(bts, 4, hpadding, width, drag)
	}

	if g.state == Finished {
		bts = addText(bts, 5, hpadding, width, "Game is over.")
	}

	words := lo.Map(g.foundWords, func(fw FoundWord, _ int) string {
		return fmt.Sprintf("%s %d", fw.Word, fw.Score)
	})
	bts = append(bts, "", fmt.Sprintf("Found words (%d): %s", len(words),
		strings.Join(words, ", ")))

	return strings.Join(bts, "\n")
}
