package game

import (
	"testing"

	"github.com/matryer/is"
)

// Consecutive seeds share all but a few key bytes; their first draws must
// still look independent.
func TestFirstDrawOverSeeds(t *testing.T) {
	is := is.New(t)
	counts := [2]int{0, 0}
	for seed := uint32(1); seed <= 100000; seed++ {
		counts[newRNG(seed).Intn(2)]++
	}
	is.True(counts[0] > 48500)
	is.True(counts[0] < 51500)
}
