package game

import (
	"errors"
	"fmt"

	"github.com/goldenword/golden/config"
	"github.com/goldenword/golden/lexicon"
	"github.com/goldenword/golden/tilemapping"
)

var ErrMismatchedDistribution = errors.New("dictionary was built against another letter distribution")

// RuleDefiner is an interface that is used for passing a set of rules
// to a game.
type RuleDefiner interface {
	LetterDistribution() *tilemapping.LetterDistribution
	Dictionary() *lexicon.Dictionary
}

// GameRules is a simple struct that encapsulates the instantiated objects
// needed to actually play a game. They are shared read-only by every game
// created from them.
type GameRules struct {
	dist *tilemapping.LetterDistribution
	dict *lexicon.Dictionary
}

func (g GameRules) LetterDistribution() *tilemapping.LetterDistribution {
	return g.dist
}

func (g GameRules) Dictionary() *lexicon.Dictionary {
	return g.dict
}

func (g GameRules) LexiconName() string {
	return g.dict.Name()
}

func (g GameRules) LetterDistributionName() string {
	return g.dist.Name
}

// NewGameRules checks that dist and dict can be played together.
func NewGameRules(dist *tilemapping.LetterDistribution, dict *lexicon.Dictionary) (*GameRules, error) {
	if dict.LetterDistribution() != dist {
		return nil, fmt.Errorf("%w: %s vs %s", ErrMismatchedDistribution,
			dict.LetterDistribution().Name, dist.Name)
	}
	if err := dict.Validate(); err != nil {
		return nil, err
	}
	return &GameRules{dist: dist, dict: dict}, nil
}

// NewBasicGameRules loads the named letter distribution and lexicon through
// the object cache. Empty names fall back to the configured defaults.
func NewBasicGameRules(cfg *config.Config, lexiconName, letterDistributionName string) (*GameRules, error) {
	if lexiconName == "" {
		lexiconName = cfg.GetString(config.ConfigDefaultLexicon)
	}
	if letterDistributionName == "" {
		letterDistributionName = cfg.GetString(config.ConfigDefaultLetterDistribution)
	}
	dist, err := tilemapping.GetDistribution(cfg, letterDistributionName)
	if err != nil {
		return nil, err
	}
	dict, err := lexicon.GetDictionary(cfg, lexiconName, dist)
	if err != nil {
		return nil, err
	}
	return NewGameRules(dist, dict)
}
