// Package testhelpers loads the shipped French data once for tests of every
// package.
package testhelpers

import (
	"github.com/goldenword/golden/config"
	"github.com/goldenword/golden/lexicon"
	"github.com/goldenword/golden/tilemapping"
)

var DefaultConfig = config.DefaultConfig()

func FrenchDistribution() *tilemapping.LetterDistribution {
	ld, err := tilemapping.FrenchLetterDistribution(DefaultConfig)
	if err != nil {
		panic(err)
	}
	return ld
}

func FrenchDictionary() *lexicon.Dictionary {
	d, err := lexicon.GetDictionary(DefaultConfig, "french", FrenchDistribution())
	if err != nil {
		panic(err)
	}
	return d
}
