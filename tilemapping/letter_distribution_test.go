package tilemapping

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/goldenword/golden/config"
)

var DefaultConfig = config.DefaultConfig()

func TestFrenchDistributionPoolSize(t *testing.T) {
	is := is.New(t)
	ld, err := FrenchLetterDistribution(DefaultConfig)
	is.NoErr(err)

	sum := 0
	for _, lc := range ld.Letters() {
		sum += lc.Repartition
	}
	is.Equal(sum, InitialGridLetters+3*TripletCount)
	is.Equal(ld.NumLetters(), PoolSize)
	is.Equal(ld.TileMapping().NumLetters(), 26)
}

func TestLetterDistributionScores(t *testing.T) {
	is := is.New(t)
	ld, err := FrenchLetterDistribution(DefaultConfig)
	is.NoErr(err)

	is.Equal(ld.Score(0), 1)  // A
	is.Equal(ld.Score(1), 7)  // B
	is.Equal(ld.Score(4), 1)  // E
	is.Equal(ld.Score(25), 9) // Z

	_, err = ld.LetterConfig(26)
	is.True(errors.Is(err, ErrUnknownLetterIndex))
	_, err = ld.LetterConfig(EmptyMarker)
	is.True(errors.Is(err, ErrUnknownLetterIndex))
}

func TestLetterDistributionWordScore(t *testing.T) {
	is := is.New(t)
	ld, err := FrenchLetterDistribution(DefaultConfig)
	is.NoErr(err)

	mw, err := ToMachineWord("TABLE", ld.TileMapping())
	is.NoErr(err)
	score, err := ld.WordScore(mw)
	is.NoErr(err)
	is.Equal(score, 16)

	_, err = ld.WordScore(MachineWord{0, 200})
	is.True(errors.Is(err, ErrUnknownLetterIndex))
}

func TestScorePanicsOnUnknownIndex(t *testing.T) {
	is := is.New(t)
	ld, err := FrenchLetterDistribution(DefaultConfig)
	is.NoErr(err)
	defer func() {
		is.True(recover() != nil)
	}()
	ld.Score(EmptyMarker)
}

func TestScanLetterDistributionBadSum(t *testing.T) {
	is := is.New(t)
	_, err := ScanLetterDistribution("tiny", strings.NewReader("A,3,1\nB,2,4\n"))
	is.True(errors.Is(err, ErrBadPoolSize))
}

func TestScanLetterDistributionMalformed(t *testing.T) {
	is := is.New(t)
	_, err := ScanLetterDistribution("bad", strings.NewReader("AB,200,1\n"))
	is.True(err != nil)
	_, err = ScanLetterDistribution("bad", strings.NewReader("A,lots,1\n"))
	is.True(err != nil)
	_, err = ScanLetterDistribution("bad", strings.NewReader("A,100,1\nA,100,1\n"))
	is.True(err != nil)
}

func TestGetDistributionUnknown(t *testing.T) {
	is := is.New(t)
	_, err := GetDistribution(DefaultConfig, "klingon")
	is.True(err != nil)
}
