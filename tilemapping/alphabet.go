package tilemapping

import (
	"errors"
	"fmt"
)

// A letter is internally represented by a MachineLetter: its index in the
// catalogue of a LetterDistribution. The first letter of the catalogue is 0,
// the second 1, and so on. Grid cells store MachineLetters, never runes.
//
// EmptyMarker is reserved for "no letter" (an empty grid cell). Since an
// alphabet holds at most MaxAlphabetSize letters it can never collide with a
// real catalogue entry.
const (
	MaxAlphabetSize = 64

	EmptyMarker MachineLetter = 0xFF

	// ASCIIEmpty is the user-friendly representation of an empty cell.
	ASCIIEmpty = '.'
)

var (
	ErrUnknownLetter      = errors.New("unknown letter")
	ErrUnknownLetterIndex = errors.New("unknown letter index")
)

// MachineLetter is a machine-only representation of a letter.
type MachineLetter byte

type MachineWord []MachineLetter

// IsEmpty returns true if the machine letter marks an empty cell.
func (ml MachineLetter) IsEmpty() bool {
	return ml == EmptyMarker
}

// A TileMapping maps a user-visible rune, like the letter B, to its
// MachineLetter counterpart and back.
type TileMapping struct {
	vals    map[rune]MachineLetter
	letters []rune
}

func newTileMapping(letters []rune) (*TileMapping, error) {
	if len(letters) > MaxAlphabetSize {
		return nil, fmt.Errorf("alphabet has %d letters, at most %d allowed",
			len(letters), MaxAlphabetSize)
	}
	tm := &TileMapping{
		vals:    make(map[rune]MachineLetter, len(letters)),
		letters: make([]rune, len(letters)),
	}
	for idx, rn := range letters {
		if _, ok := tm.vals[rn]; ok {
			return nil, fmt.Errorf("letter %q appears twice in alphabet", rn)
		}
		tm.vals[rn] = MachineLetter(idx)
		tm.letters[idx] = rn
	}
	return tm, nil
}

// Letter returns the letter that this position in the alphabet corresponds to.
func (tm *TileMapping) Letter(ml MachineLetter) (rune, error) {
	if int(ml) >= len(tm.letters) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownLetterIndex, ml)
	}
	return tm.letters[ml], nil
}

// Val returns the machine letter of this rune in the alphabet.
func (tm *TileMapping) Val(r rune) (MachineLetter, error) {
	val, ok := tm.vals[r]
	if !ok {
		return 0, fmt.Errorf("%w: `%c` not found in alphabet", ErrUnknownLetter, r)
	}
	return val, nil
}

// NumLetters returns the number of letters in this alphabet.
func (tm *TileMapping) NumLetters() int {
	return len(tm.letters)
}

// UserVisible turns the passed-in machine letter into a user-visible rune.
// Empty cells and unknown indices are shown as ASCIIEmpty.
func (ml MachineLetter) UserVisible(tm *TileMapping) rune {
	rn, err := tm.Letter(ml)
	if err != nil {
		return ASCIIEmpty
	}
	return rn
}

// UserVisible turns the passed-in machine word into a user-visible string.
func (mw MachineWord) UserVisible(tm *TileMapping) string {
	runes := make([]rune, len(mw))
	for i, l := range mw {
		runes[i] = l.UserVisible(tm)
	}
	return string(runes)
}

// Key returns a string holding the raw bytes of the word, usable as a map
// key.
func (mw MachineWord) Key() string {
	bts := make([]byte, len(mw))
	for i, l := range mw {
		bts[i] = byte(l)
	}
	return string(bts)
}

// Equal returns true if both words hold the same letters in the same order.
func (mw MachineWord) Equal(other MachineWord) bool {
	if len(mw) != len(other) {
		return false
	}
	for i := range mw {
		if mw[i] != other[i] {
			return false
		}
	}
	return true
}

// ToMachineWord creates a MachineWord from the given string.
func ToMachineWord(word string, tm *TileMapping) (MachineWord, error) {
	letters := make(MachineWord, 0, len(word))
	for _, ch := range word {
		ml, err := tm.Val(ch)
		if err != nil {
			return nil, err
		}
		letters = append(letters, ml)
	}
	return letters, nil
}
