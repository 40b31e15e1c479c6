package tilemapping

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/goldenword/golden/cache"
	"github.com/goldenword/golden/config"
	"github.com/goldenword/golden/data"
)

var ErrBadPoolSize = errors.New("letter repartition does not match the pool size")

// LetterConfig is one entry of the letter catalogue.
type LetterConfig struct {
	Letter rune `yaml:"letter"`
	// Repartition is the number of copies of this letter in the pool.
	Repartition int `yaml:"repartition"`
	Score       int `yaml:"score"`
}

// LetterDistribution encodes the letters of the game: their order (which
// gives each one its MachineLetter), their point values and how many copies
// of each go into the letter pool.
type LetterDistribution struct {
	Name        string
	tilemapping *TileMapping
	letters     []LetterConfig
	numLetters  int
}

// NewLetterDistribution checks the catalogue and builds the distribution.
// The repartitions must add up to PoolSize.
func NewLetterDistribution(name string, letters []LetterConfig) (*LetterDistribution, error) {
	runes := make([]rune, len(letters))
	total := 0
	for i, lc := range letters {
		if lc.Repartition < 0 || lc.Score < 0 {
			return nil, fmt.Errorf("letter %q has a negative repartition or score", lc.Letter)
		}
		runes[i] = lc.Letter
		total += lc.Repartition
	}
	if total != PoolSize {
		return nil, fmt.Errorf("%w: distribution %s has %d letters, expected %d",
			ErrBadPoolSize, name, total, PoolSize)
	}
	tm, err := newTileMapping(runes)
	if err != nil {
		return nil, err
	}
	return &LetterDistribution{
		Name:        name,
		tilemapping: tm,
		letters:     append([]LetterConfig(nil), letters...),
		numLetters:  total,
	}, nil
}

// ScanLetterDistribution reads a distribution in CSV form, one letter per
// line: letter,repartition,score
func ScanLetterDistribution(name string, r io.Reader) (*LetterDistribution, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	letters := []LetterConfig{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		letter := strings.TrimSpace(record[0])
		if utf8.RuneCountInString(letter) != 1 {
			return nil, fmt.Errorf("letter %q must be a single character", letter)
		}
		rn, _ := utf8.DecodeRuneInString(letter)
		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, err
		}
		p, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, err
		}
		letters = append(letters, LetterConfig{Letter: rn, Repartition: n, Score: p})
	}
	return NewLetterDistribution(name, letters)
}

func (ld *LetterDistribution) TileMapping() *TileMapping {
	return ld.tilemapping
}

// NumLetters returns the total number of letters in the pool.
func (ld *LetterDistribution) NumLetters() int {
	return ld.numLetters
}

// Letters returns a copy of the full letter catalogue, in MachineLetter order.
func (ld *LetterDistribution) Letters() []LetterConfig {
	return append([]LetterConfig(nil), ld.letters...)
}

// LetterConfig returns the catalogue entry of the given machine letter.
func (ld *LetterDistribution) LetterConfig(ml MachineLetter) (LetterConfig, error) {
	if int(ml) >= len(ld.letters) {
		return LetterConfig{}, fmt.Errorf("%w: %d", ErrUnknownLetterIndex, ml)
	}
	return ld.letters[ml], nil
}

// Score gives the point value of the given machine letter. An index outside
// the catalogue is a programming error and panics.
func (ld *LetterDistribution) Score(ml MachineLetter) int {
	lc, err := ld.LetterConfig(ml)
	if err != nil {
		panic(err)
	}
	return lc.Score
}

// WordScore returns the plain sum of the letter values of mw.
func (ld *LetterDistribution) WordScore(mw MachineWord) (int, error) {
	score := 0
	for _, ml := range mw {
		lc, err := ld.LetterConfig(ml)
		if err != nil {
			return 0, err
		}
		score += lc.Score
	}
	return score, nil
}

func loadDistribution(cfg *config.Config, key string) (any, error) {
	name := strings.TrimPrefix(key, "letterdistribution:")
	f, err := data.FS(cfg.DataPath()).Open(
		path.Join(data.LetterDistributionDir, name+".csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ld, err := ScanLetterDistribution(name, f)
	if err != nil {
		return nil, fmt.Errorf("loading letter distribution %s: %w", name, err)
	}
	log.Debug().Str("name", name).Int("letters", ld.TileMapping().NumLetters()).
		Msg("loaded-letter-distribution")
	return ld, nil
}

// GetDistribution loads the named distribution from the configured data
// path, or returns the cached one.
func GetDistribution(cfg *config.Config, name string) (*LetterDistribution, error) {
	name = strings.ToLower(name)
	obj, err := cache.Load(cfg, "letterdistribution:"+name, loadDistribution)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("letter distribution %s not found: %w", name, err)
		}
		return nil, err
	}
	return obj.(*LetterDistribution), nil
}

// FrenchLetterDistribution returns the shipped French distribution.
func FrenchLetterDistribution(cfg *config.Config) (*LetterDistribution, error) {
	return GetDistribution(cfg, "french")
}
