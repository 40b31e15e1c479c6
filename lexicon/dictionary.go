package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/goldenword/golden/cache"
	"github.com/goldenword/golden/config"
	"github.com/goldenword/golden/data"
	"github.com/goldenword/golden/tilemapping"
)

var ErrNoSixLetterWords = errors.New("dictionary has no word of the golden word length")

// Intner draws uniform integers in [0, n).
type Intner interface {
	Intn(n int) int
}

// A Dictionary is the immutable set of valid words of a game, along with
// the words the golden word can be drawn from.
type Dictionary struct {
	name           string
	dist           *tilemapping.LetterDistribution
	words          map[string]struct{}
	sixLetterWords []Word
}

// newFolder returns a transformer that strips diacritics, so that ÉLÈVE
// reads as ELEVE.
func newFolder() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// ScanDictionary reads a word list, one word per line. Blank lines and
// lines starting with # are ignored. A word that does not parse into the
// alphabet of ld, or whose length is out of bounds, is skipped.
func ScanDictionary(name string, r io.Reader, ld *tilemapping.LetterDistribution) (*Dictionary, error) {
	d := &Dictionary{
		name:  name,
		dist:  ld,
		words: make(map[string]struct{}),
	}
	folder := newFolder()
	skipped := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		folded, _, err := transform.String(folder, line)
		if err != nil {
			skipped++
			continue
		}
		w, err := ParseWord(strings.ToUpper(folded), ld)
		if err != nil {
			skipped++
			continue
		}
		d.add(w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	log.Debug().Str("name", name).Int("words", len(d.words)).
		Int("six-letter-words", len(d.sixLetterWords)).Int("skipped", skipped).
		Msg("scanned-dictionary")
	return d, nil
}

func (d *Dictionary) add(w Word) {
	if _, ok := d.words[w.key()]; ok {
		return
	}
	d.words[w.key()] = struct{}{}
	if w.Len() == GoldenWordLength {
		d.sixLetterWords = append(d.sixLetterWords, w)
	}
}

func (d *Dictionary) Name() string {
	return d.name
}

func (d *Dictionary) LetterDistribution() *tilemapping.LetterDistribution {
	return d.dist
}

// HasWord is an exact-match lookup.
func (d *Dictionary) HasWord(w Word) bool {
	_, ok := d.words[w.key()]
	return ok
}

func (d *Dictionary) NumWords() int {
	return len(d.words)
}

func (d *Dictionary) NumSixLetterWords() int {
	return len(d.sixLetterWords)
}

// Validate checks the data invariants a game relies on.
func (d *Dictionary) Validate() error {
	if len(d.sixLetterWords) == 0 {
		return fmt.Errorf("%w: %s", ErrNoSixLetterWords, d.name)
	}
	return nil
}

// Score scores w against the golden word. Words in a dictionary always have
// a multiplier, so a failure here is a programming error and panics.
func (d *Dictionary) Score(w, golden Word) int {
	score, err := w.Score(d.dist, golden)
	if err != nil {
		panic(fmt.Sprintf("unable to score word %v: %v", w.letters, err))
	}
	return score
}

// RandomSixLetterWord draws the golden word uniformly among the six-letter
// words, in word-list order. It panics if there are none; Validate reports
// that case at startup.
func (d *Dictionary) RandomSixLetterWord(rng Intner) Word {
	if len(d.sixLetterWords) == 0 {
		panic(ErrNoSixLetterWords)
	}
	return d.sixLetterWords[rng.Intn(len(d.sixLetterWords))]
}

// GetDictionary loads the named word list against ld from the configured
// data path, or returns the cached dictionary.
func GetDictionary(cfg *config.Config, name string, ld *tilemapping.LetterDistribution) (*Dictionary, error) {
	name = strings.ToLower(name)
	key := "lexicon:" + name + ":" + ld.Name
	obj, err := cache.Load(cfg, key, func(cfg *config.Config, key string) (any, error) {
		f, err := data.FS(cfg.DataPath()).Open(path.Join(data.LexicaDir, name+".txt"))
		if err != nil {
			return nil, fmt.Errorf("opening lexicon %s: %w", name, err)
		}
		defer f.Close()
		return ScanDictionary(name, f, ld)
	})
	if err != nil {
		return nil, err
	}
	return obj.(*Dictionary), nil
}
