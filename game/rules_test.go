package game

import (
	"errors"
	"path"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/goldenword/golden/config"
	"github.com/goldenword/golden/data"
	"github.com/goldenword/golden/lexicon"
	"github.com/goldenword/golden/tilemapping"
)

var DefaultConfig = config.DefaultConfig()

func defaultRules(t *testing.T) *GameRules {
	rules, err := NewBasicGameRules(DefaultConfig, "", "")
	if err != nil {
		t.Fatal(err)
	}
	return rules
}

func TestNewBasicGameRules(t *testing.T) {
	is := is.New(t)
	rules := defaultRules(t)
	is.Equal(rules.LexiconName(), "french")
	is.Equal(rules.LetterDistributionName(), "french")
	is.True(rules.Dictionary().NumSixLetterWords() > 0)

	again, err := NewBasicGameRules(DefaultConfig, "french", "french")
	is.NoErr(err)
	is.True(again.Dictionary() == rules.Dictionary())
}

func TestNewBasicGameRulesUnknownLexicon(t *testing.T) {
	is := is.New(t)
	_, err := NewBasicGameRules(DefaultConfig, "klingon", "")
	is.True(err != nil)
}

func TestNewGameRulesMismatchedDistribution(t *testing.T) {
	is := is.New(t)
	rules := defaultRules(t)

	f, err := data.FS("").Open(path.Join(data.LetterDistributionDir, "french.csv"))
	is.NoErr(err)
	defer f.Close()
	other, err := tilemapping.ScanLetterDistribution("french-copy", f)
	is.NoErr(err)

	_, err = NewGameRules(other, rules.Dictionary())
	is.True(errors.Is(err, ErrMismatchedDistribution))
}

func TestNewGameRulesWithoutGoldenCandidates(t *testing.T) {
	is := is.New(t)
	ld := defaultRules(t).LetterDistribution()
	dict, err := lexicon.ScanDictionary("tiny", strings.NewReader("TABLE\nCHANTER\n"), ld)
	is.NoErr(err)
	_, err = NewGameRules(ld, dict)
	is.True(errors.Is(err, lexicon.ErrNoSixLetterWords))
}
