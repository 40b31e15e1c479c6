// Package lexicon holds the words of the game: the Word type with its
// length bounds and scoring, and the Dictionary used to recognize words on
// the grid.
package lexicon

import (
	"errors"
	"fmt"

	"github.com/goldenword/golden/tilemapping"
)

const (
	MinLength = 5
	MaxLength = 8

	// GoldenWordLength is the length of the words the golden word is drawn
	// from.
	GoldenWordLength = 6
	// GoldenWordBonus is added to the score of the golden word.
	GoldenWordBonus = 100
)

var (
	ErrInvalidWordLength = errors.New("invalid word length")
	ErrMissingMultiplier = errors.New("missing score multiplier")
)

// lengthMultipliers maps a word length to the factor applied to the sum of
// its letter values.
var lengthMultipliers = map[int]int{
	5: 1,
	6: 2,
	7: 3,
	8: 4,
}

// A Word is a sequence of machine letters between MinLength and MaxLength
// long. Two words are equal iff their letters are.
type Word struct {
	letters tilemapping.MachineWord
}

// NewWord copies letters into a Word, checking its length.
func NewWord(letters []tilemapping.MachineLetter) (Word, error) {
	if len(letters) < MinLength || len(letters) > MaxLength {
		return Word{}, fmt.Errorf("%w: %d", ErrInvalidWordLength, len(letters))
	}
	return Word{letters: append(tilemapping.MachineWord(nil), letters...)}, nil
}

// ParseWord turns a user-visible string into a Word.
func ParseWord(s string, ld *tilemapping.LetterDistribution) (Word, error) {
	mw, err := tilemapping.ToMachineWord(s, ld.TileMapping())
	if err != nil {
		return Word{}, err
	}
	return NewWord(mw)
}

// Letters returns a copy of the letters of the word.
func (w Word) Letters() tilemapping.MachineWord {
	return append(tilemapping.MachineWord(nil), w.letters...)
}

func (w Word) Len() int {
	return len(w.letters)
}

func (w Word) Equal(other Word) bool {
	return w.letters.Equal(other.letters)
}

func (w Word) UserVisible(ld *tilemapping.LetterDistribution) string {
	return w.letters.UserVisible(ld.TileMapping())
}

func (w Word) key() string {
	return w.letters.Key()
}

// Score returns the sum of the letter values times the length multiplier,
// plus GoldenWordBonus if w is the golden word.
func (w Word) Score(ld *tilemapping.LetterDistribution, golden Word) (int, error) {
	sum, err := ld.WordScore(w.letters)
	if err != nil {
		return 0, err
	}
	multiplier, ok := lengthMultipliers[w.Len()]
	if !ok {
		return 0, fmt.Errorf("%w: word of length %d", ErrMissingMultiplier, w.Len())
	}
	score := sum * multiplier
	if w.Equal(golden) {
		score += GoldenWordBonus
	}
	return score, nil
}
